package utils

import (
	"io"
	"os"

	"github.com/spamlists/spamlists/src/internal/log"
)

func CloseOrWarn(file io.Closer) {
	if err := file.Close(); err != nil {
		log.Warnf("Failed to close file: %v", err)
	}
}

// RemoveOrWarn removes a leftover file, logging instead of failing.
func RemoveOrWarn(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Warnf("Failed to remove %s: %v", path, err)
	}
}

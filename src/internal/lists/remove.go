package lists

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spamlists/spamlists/src/internal/utils"
)

// removeFromList rewrites the list file at path without the given entries.
//
// Kept lines are streamed into a temporary file next to the original, which
// then receives the original permission bits and is renamed over it. Blank
// lines are not carried over. On failure the original is left untouched.
func removeFromList(path string, entries []string, report *ListReport) error {
	info, err := os.Stat(path)
	if err != nil {
		return notFoundOr(path, err)
	}

	src, err := openExisting(path)
	if err != nil {
		return err
	}
	defer utils.CloseOrWarn(src)

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			utils.RemoveOrWarn(tmpPath)
		}
	}()

	undesired := toSet(entries)
	w := bufio.NewWriter(tmp)
	err = scanLines(src, func(line string) error {
		if _, ok := undesired[line]; ok {
			report.Dropped = append(report.Dropped, line)
			return nil
		}
		_, err := w.WriteString(line + "\n")
		return err
	})
	if err != nil {
		return err
	}

	if err := w.Flush(); err != nil {
		return err
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to copy file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		utils.RemoveOrWarn(tmpPath)
		committed = true
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	committed = true
	return nil
}

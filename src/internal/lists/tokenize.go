package lists

import (
	"github.com/spamlists/spamlists/src/internal/hashing"
	"github.com/spamlists/spamlists/src/internal/utils"
)

// Snapshot is the content of one list file at the time it was read.
type Snapshot struct {
	Entries []string `json:"entries"`
	// Checksum is the MD5 of the raw file content.
	Checksum string `json:"checksum"`
}

// Tokenize returns the non-blank lines of the file at path, trimmed, in file
// order. Duplicates are kept.
func Tokenize(path string) ([]string, error) {
	snapshot, err := readSnapshot(path)
	if err != nil {
		return nil, err
	}
	return snapshot.Entries, nil
}

func readSnapshot(path string) (*Snapshot, error) {
	f, err := openExisting(path)
	if err != nil {
		return nil, err
	}
	defer utils.CloseOrWarn(f)

	reader := hashing.NewMD5Reader(f)
	result := []string{}
	err = scanLines(reader, func(line string) error {
		result = append(result, line)
		return nil
	})
	if err != nil {
		return nil, notFoundOr(path, err)
	}
	return &Snapshot{Entries: result, Checksum: reader.Checksum()}, nil
}

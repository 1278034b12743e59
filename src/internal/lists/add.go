package lists

import (
	"bytes"
	"os"
	"strings"
)

// addToList appends the entries missing from the list file at path.
//
// The file is read completely first; the entries already present are
// recorded as repeated (in file order) and the rest are appended in a single
// write. A newline is prepended when the file is non-empty and does not end
// with one. Nothing is written when there is nothing to insert.
func addToList(path string, entries []string, report *ListReport) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return notFoundOr(path, err)
	}

	candidates := toSet(entries)
	present := make(map[string]struct{})
	err = scanLines(bytes.NewReader(content), func(line string) error {
		if _, ok := present[line]; ok {
			return nil
		}
		present[line] = struct{}{}
		if _, ok := candidates[line]; ok {
			report.Repeated = append(report.Repeated, line)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, entry := range uniqueOrdered(entries) {
		if _, ok := present[entry]; !ok {
			report.Inserted = append(report.Inserted, entry)
		}
	}

	if len(report.Inserted) == 0 {
		return nil
	}

	payload := strings.Join(report.Inserted, "\n")
	if len(content) > 0 && content[len(content)-1] != '\n' {
		payload = "\n" + payload
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return notFoundOr(path, err)
	}
	if _, err := f.WriteString(payload); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

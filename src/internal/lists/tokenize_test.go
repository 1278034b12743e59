package lists

import (
	"errors"
	"path/filepath"
	"testing"

	apperrors "github.com/spamlists/spamlists/src/internal/errors"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"simple", "a.com\nb.com\n", []string{"a.com", "b.com"}},
		{"no trailing newline", "a.com\nb.com", []string{"a.com", "b.com"}},
		{"blank and padded lines", "\n  a.com  \n\t\n\nb.com\r\n", []string{"a.com", "b.com"}},
		{"duplicates kept", "a.com\na.com\n", []string{"a.com", "a.com"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, filepath.Join(t.TempDir(), "list"), tt.content)
			got, err := Tokenize(path)
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}
			if !equalStrings(got, tt.want) {
				t.Errorf("Tokenize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTokenize_MissingFile(t *testing.T) {
	_, err := Tokenize(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, apperrors.ErrFileNotFound) {
		t.Errorf("Expected FILE_NOT_FOUND, got %v", err)
	}
}

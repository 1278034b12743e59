package hashing

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"io"
	"strings"
	"testing"
)

type errorReader struct {
	err error
}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, e.err
}

func TestChecksumReader_PassesDataThrough(t *testing.T) {
	testData := "example.com\nnew.org\n"
	reader := NewMD5Reader(strings.NewReader(testData))

	allData, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(allData) != testData {
		t.Errorf("Expected %q, got %q", testData, string(allData))
	}
}

func TestChecksumReader_ReadError(t *testing.T) {
	expectedErr := errors.New("read error")
	reader := NewMD5Reader(&errorReader{err: expectedErr})

	if _, err := reader.Read(make([]byte, 10)); err != expectedErr {
		t.Errorf("Expected error %v, got %v", expectedErr, err)
	}
}

func TestChecksumReader_Checksum(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"single line", "example.com"},
		{"larger than one read", strings.Repeat("spam.net\n", 2000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewMD5Reader(strings.NewReader(tt.data))
			if _, err := io.ReadAll(reader); err != nil {
				t.Fatalf("Failed to read data: %v", err)
			}

			sum := md5.Sum([]byte(tt.data))
			if expected := hex.EncodeToString(sum[:]); reader.Checksum() != expected {
				t.Errorf("Expected checksum %s, got %s", expected, reader.Checksum())
			}
		})
	}
}

func TestChecksumReader_EmptyChecksum(t *testing.T) {
	reader := NewMD5Reader(strings.NewReader(""))
	if got := reader.Checksum(); got != "d41d8cd98f00b204e9800998ecf8427e" {
		t.Errorf("Expected MD5 of empty input, got %s", got)
	}
}

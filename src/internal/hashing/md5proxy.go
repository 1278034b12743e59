package hashing

import (
	"crypto/md5"
	"encoding/hex"
	"hash"
	"io"
)

// ChecksumReader calculates the MD5 checksum of data as it's read.
type ChecksumReader struct {
	reader   io.Reader
	checksum hash.Hash
}

// NewMD5Reader wraps reader.
func NewMD5Reader(reader io.Reader) *ChecksumReader {
	return &ChecksumReader{
		reader:   reader,
		checksum: md5.New(),
	}
}

// Read reads data from the underlying reader and feeds it to the checksum.
func (p *ChecksumReader) Read(buf []byte) (int, error) {
	n, err := p.reader.Read(buf)
	if n > 0 {
		// hash.Hash.Write never returns an error
		_, _ = p.checksum.Write(buf[:n])
	}
	return n, err
}

// Checksum returns the MD5 checksum, as a hex string, of everything read so far.
func (p *ChecksumReader) Checksum() string {
	return hex.EncodeToString(p.checksum.Sum(nil))
}

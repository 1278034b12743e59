// Package hashing provides MD5 checksum calculation utilities.
//
// ChecksumReader calculates the checksum of a stream while it is being read,
// so a file can be parsed and fingerprinted in a single pass:
//
//	f, _ := os.Open(path)
//	defer f.Close()
//
//	reader := hashing.NewMD5Reader(f)
//	content, _ := io.ReadAll(reader)
//	fmt.Printf("Read %d bytes, MD5: %s\n", len(content), reader.Checksum())
//
// The list read API uses these checksums as entity tags.
package hashing

package downloadmgr

import (
	"crypto/sha1"
	"encoding/hex"
	"hash"
)

// DigestWriter hashes and counts everything written to it.
// Nothing is retained besides the hash state
type DigestWriter struct {
	hash hash.Hash
	n    int64
}

// NewDigestWriter returns a sha1 DigestWriter
func NewDigestWriter() *DigestWriter {
	return &DigestWriter{hash: sha1.New()}
}

func (d *DigestWriter) Write(p []byte) (int, error) {
	n, err := d.hash.Write(p)
	d.n += int64(n)
	return n, err
}

// Sum returns the lowercase hex sha1 of everything written so far
func (d *DigestWriter) Sum() string {
	return hex.EncodeToString(d.hash.Sum(nil))
}

// Count returns the number of bytes written so far
func (d *DigestWriter) Count() int64 {
	return d.n
}

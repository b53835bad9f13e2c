package jcs

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/gowebpki/jcs"
)

// CanonicalizeLine returns the RFC 8785 (JCS) canonical form of one encoded
// record line. Two lines that differ only in key order or whitespace share a
// canonical form.
func CanonicalizeLine(line []byte) ([]byte, error) {
	return jcs.Transform(line)
}

// DigestLine canonicalizes a record line (RFC 8785) and returns a sha256 hex
// digest, suitable for deduplicating or integrity-checking recordings.
func DigestLine(line []byte) (string, error) {
	canonical, err := CanonicalizeLine(line)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

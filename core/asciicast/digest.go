package asciicast

import (
	"github.com/davidahmann/castline/core/jcs"
)

// LineDigest encodes the record and returns the sha256 hex digest of the
// line's RFC 8785 canonical form. The digest is stable across writers that
// order header keys differently, which makes it usable for deduplicating or
// integrity-checking recordings.
func LineDigest(record Record) (string, error) {
	line, err := record.MarshalLine()
	if err != nil {
		return "", err
	}
	return jcs.DigestLine(line)
}

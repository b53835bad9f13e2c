package asciicast

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// UTF8Decoder converts raw event bytes to displayable text for the wire,
// replacing invalid byte sequences with U+FFFD instead of failing.
//
// The decoder is incremental: an incomplete multi-byte sequence at the end of
// one Decode call is held back and reassembled with the bytes of the next
// call, so split sequences fed across successive calls on the same instance
// decode correctly. The held state makes an instance unsafe to share across
// concurrently encoded records; use one instance per logical byte stream, or
// Reset between unrelated streams.
type UTF8Decoder struct {
	tr      transform.Transformer
	pending []byte
}

// NewUTF8Decoder returns a decoder with no pending state.
func NewUTF8Decoder() *UTF8Decoder {
	return &UTF8Decoder{tr: unicode.UTF8.NewDecoder()}
}

// Decode converts p to text, emitting U+FFFD for invalid sequences. A
// trailing incomplete multi-byte sequence is withheld until the next Decode
// or Flush call.
func (d *UTF8Decoder) Decode(p []byte) string {
	src := p
	if len(d.pending) > 0 {
		src = append(d.pending, p...)
		d.pending = nil
	}
	out, rest := d.transform(src, false)
	if len(rest) > 0 {
		// rest may alias the caller's buffer.
		d.pending = append([]byte(nil), rest...)
	}
	return out
}

// Flush drains any withheld partial sequence, replacing it with U+FFFD, and
// leaves the decoder ready for a new stream.
func (d *UTF8Decoder) Flush() string {
	if len(d.pending) == 0 {
		d.tr.Reset()
		return ""
	}
	src := d.pending
	d.pending = nil
	out, _ := d.transform(src, true)
	d.tr.Reset()
	return out
}

// Reset discards all decoder state, including any withheld partial sequence.
func (d *UTF8Decoder) Reset() {
	d.pending = nil
	d.tr.Reset()
}

func (d *UTF8Decoder) transform(src []byte, atEOF bool) (string, []byte) {
	var out strings.Builder
	// U+FFFD is three bytes, so the transformed text can outgrow src.
	buf := make([]byte, len(src)*3+16)
	for {
		nDst, nSrc, err := d.tr.Transform(buf, src, atEOF)
		out.Write(buf[:nDst])
		src = src[nSrc:]
		switch err {
		case nil:
			return out.String(), src
		case transform.ErrShortDst:
			continue
		default:
			// ErrShortSrc: src ends inside a multi-byte sequence.
			return out.String(), src
		}
	}
}

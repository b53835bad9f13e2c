package asciicast

import "testing"

func TestUTF8DecoderPassesValidText(t *testing.T) {
	decoder := NewUTF8Decoder()
	if got := decoder.Decode([]byte("plain ascii")); got != "plain ascii" {
		t.Fatalf("unexpected text: %q", got)
	}
	if got := decoder.Decode([]byte("héllo ↑")); got != "héllo ↑" {
		t.Fatalf("unexpected text: %q", got)
	}
	if got := decoder.Flush(); got != "" {
		t.Fatalf("unexpected flush remainder: %q", got)
	}
}

func TestUTF8DecoderReplacesInvalidBytes(t *testing.T) {
	decoder := NewUTF8Decoder()
	got := decoder.Decode([]byte{'a', 0xff, 'b'})
	if got != "a�b" {
		t.Fatalf("unexpected replacement: %q", got)
	}
}

func TestUTF8DecoderWithholdsPartialSequence(t *testing.T) {
	decoder := NewUTF8Decoder()
	// First three bytes of the four-byte U+1F600.
	if got := decoder.Decode([]byte{0xF0, 0x9F, 0x98}); got != "" {
		t.Fatalf("partial sequence must be withheld, got %q", got)
	}
	if got := decoder.Decode([]byte{0x80}); got != "😀" {
		t.Fatalf("split sequence not reassembled: %q", got)
	}
}

func TestUTF8DecoderFlushReplacesWithheldPartial(t *testing.T) {
	decoder := NewUTF8Decoder()
	if got := decoder.Decode([]byte{'x', 0xE2, 0x86}); got != "x" {
		t.Fatalf("unexpected text: %q", got)
	}
	if got := decoder.Flush(); got != "�" {
		t.Fatalf("unexpected flush output: %q", got)
	}
	// Decoder is reusable after a flush.
	if got := decoder.Decode([]byte("next")); got != "next" {
		t.Fatalf("unexpected text after flush: %q", got)
	}
}

func TestUTF8DecoderResetDropsPartial(t *testing.T) {
	decoder := NewUTF8Decoder()
	_ = decoder.Decode([]byte{0xC3})
	decoder.Reset()
	// After the reset, 0xA9 is a stray continuation byte, not the tail of
	// the dropped sequence.
	if got := decoder.Decode([]byte{0xA9}); got != "�" {
		t.Fatalf("reset did not clear pending state: %q", got)
	}
}

func TestUTF8DecoderInstancesAreIndependent(t *testing.T) {
	left := NewUTF8Decoder()
	right := NewUTF8Decoder()
	_ = left.Decode([]byte{0xC3})
	if got := right.Decode([]byte{0xA9}); got != "�" {
		t.Fatalf("decoder state leaked across instances: %q", got)
	}
}

package asciicast

import (
	"encoding/json"
	"fmt"
)

// MarshalLine encodes the header as a single-line JSON object with version,
// width and height keys. The theme key is present only when a theme exists;
// an absent theme is omitted entirely, never written as null.
func (h Header) MarshalLine() ([]byte, error) {
	line, err := json.Marshal(h)
	if err != nil {
		return nil, fmt.Errorf("encode header line: %w", err)
	}
	return line, nil
}

// MarshalLine encodes the event as a 3-element JSON array
// [time, type, data]. Data is converted to text by a fresh replacement UTF-8
// decoder and finalized, so an event ending mid-sequence encodes the partial
// bytes as U+FFFD. Duration is intentionally never serialized; it is not
// part of the wire format.
func (e Event) MarshalLine() ([]byte, error) {
	decoder := NewUTF8Decoder()
	text := decoder.Decode(e.Data) + decoder.Flush()
	return marshalEventLine(e.Time, e.Type, text)
}

// MarshalLineWith encodes the event like MarshalLine but converts its bytes
// through a caller-owned decoder, so a multi-byte sequence split across the
// events of one byte stream is reassembled instead of replaced. The trailing
// partial bytes of this event, if any, stay in the decoder for the next one.
func (e Event) MarshalLineWith(decoder *UTF8Decoder) ([]byte, error) {
	return marshalEventLine(e.Time, e.Type, decoder.Decode(e.Data))
}

func marshalEventLine(time float64, eventType, data string) ([]byte, error) {
	line, err := json.Marshal([]any{time, eventType, data})
	if err != nil {
		return nil, fmt.Errorf("encode event line: %w", err)
	}
	return line, nil
}

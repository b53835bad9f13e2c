// Package asciicast implements the asciicast v2 record model: a header
// record describing recording-wide parameters followed by timed event
// records, each encoded as one JSON value per line.
//
// The package covers validation on construction and the wire encode/decode
// contract only. Reading and writing whole files, stream buffering, terminal
// capture and rendering belong to external collaborators that feed lines in
// and take lines out.
//
// Full format specification:
// https://github.com/asciinema/asciinema/blob/develop/doc/asciicast-v2.md
package asciicast

import (
	"fmt"

	coreerrors "github.com/davidahmann/castline/core/errors"
)

// FormatVersion is the only asciicast format version this codec supports.
const FormatVersion = 2

const (
	// EventOutput is data captured from the terminal's standard output.
	EventOutput = "o"
	// EventInput is data captured from the terminal's standard input.
	EventInput = "i"
)

// Record is one line of a recording, either a Header or an Event. DecodeLine
// resolves the concrete variant from the line's top-level JSON shape.
type Record interface {
	// MarshalLine encodes the record as a single JSON line without a
	// trailing newline. Line termination is the caller's job.
	MarshalLine() ([]byte, error)
}

// Theme is the color theme of the recorded terminal. All colors use the
// '#rrggbb' format; the format is documented, not enforced at this layer.
type Theme struct {
	// FG is the default text color.
	FG string `json:"fg"`
	// BG is the default background color.
	BG string `json:"bg"`
	// Palette is a colon separated list of the 8 or 16 terminal colors.
	Palette string `json:"palette"`
}

// Header is the recording-wide parameter record.
//
// Records are value objects: created once, read-only afterwards.
type Header struct {
	// Version of the asciicast file format. Must equal FormatVersion.
	Version int `json:"version"`
	// Width is the initial number of columns of the terminal.
	Width int `json:"width"`
	// Height is the initial number of lines of the terminal.
	Height int `json:"height"`
	// Theme is optional; when nil the encoded line carries no theme key.
	Theme *Theme `json:"theme,omitempty"`
}

// NewHeader builds a Header and validates it. Field types are enforced by
// the compiler; the one value constraint is the format version.
func NewHeader(version, width, height int, theme *Theme) (Header, error) {
	header := Header{
		Version: version,
		Width:   width,
		Height:  height,
		Theme:   theme,
	}
	if err := header.Validate(); err != nil {
		return Header{}, err
	}
	return header, nil
}

// Validate reports whether the header satisfies the format's value
// constraints.
func (h Header) Validate() error {
	if h.Version != FormatVersion {
		return coreerrors.Wrap(
			fmt.Errorf("unsupported asciicast format version %d", h.Version),
			coreerrors.CategoryValueConstraint,
			"header_version_unsupported",
			"only asciicast v2 headers can be constructed",
		)
	}
	return nil
}

// Event is one captured I/O event.
type Event struct {
	// Time is the elapsed time since the beginning of the recording in
	// seconds. Integer and real values are both valid on the wire.
	Time float64
	// Type is the event direction code. EventOutput and EventInput are the
	// documented values; other single-character codes are not rejected here,
	// semantic validation belongs upstream.
	Type string
	// Data holds the captured bytes. Always raw bytes internally, whatever
	// the text encoding used on the wire.
	Data []byte
	// Duration of the event in seconds. Non-standard extension field; never
	// serialized, never recovered by decoding.
	Duration *float64
}

// NewEvent builds an Event. All field types are enforced by the compiler and
// the format places no constraint on their values.
func NewEvent(time float64, eventType string, data []byte, duration *float64) Event {
	return Event{
		Time:     time,
		Type:     eventType,
		Data:     data,
		Duration: duration,
	}
}

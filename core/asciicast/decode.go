package asciicast

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	coreerrors "github.com/davidahmann/castline/core/errors"
)

// DecodeLine parses one raw line and returns the record variant matching its
// top-level JSON shape: an object decodes as a Header, an array as an Event.
// Any other shape (string, number, bool, null) is unsupported. The line is
// parsed exactly once; variant resolution branches on the parsed value.
func DecodeLine(line []byte) (Record, error) {
	decoder := json.NewDecoder(bytes.NewReader(line))
	decoder.UseNumber()
	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, coreerrors.Wrap(
			fmt.Errorf("parse record line: %w", err),
			coreerrors.CategoryMalformedJSON,
			"line_parse_failed",
			"each record line must hold exactly one JSON value",
		)
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, coreerrors.Wrap(
			fmt.Errorf("trailing data after record line"),
			coreerrors.CategoryMalformedJSON,
			"line_trailing_data",
			"each record line must hold exactly one JSON value",
		)
	}
	switch typed := value.(type) {
	case map[string]any:
		return decodeHeader(typed)
	case []any:
		return decodeEvent(typed)
	default:
		return nil, coreerrors.Wrap(
			fmt.Errorf("unsupported top-level JSON shape %T", value),
			coreerrors.CategoryUnsupportedShape,
			"line_shape_unsupported",
			"record lines are a JSON object (header) or array (event)",
		)
	}
}

// decodeHeader rebuilds a Header from the parsed object. Field type checks
// run in declaration order before the version value check, so a wrong-typed
// version reports the type error first. Keys beyond the header's field set
// are ignored; a theme sub-object must carry exactly fg, bg and palette.
func decodeHeader(fields map[string]any) (Header, error) {
	version, err := headerInt(fields, "version")
	if err != nil {
		return Header{}, err
	}
	width, err := headerInt(fields, "width")
	if err != nil {
		return Header{}, err
	}
	height, err := headerInt(fields, "height")
	if err != nil {
		return Header{}, err
	}
	var theme *Theme
	if raw, ok := fields["theme"]; ok && raw != nil {
		theme, err = decodeTheme(raw)
		if err != nil {
			return Header{}, err
		}
	}
	return NewHeader(version, width, height, theme)
}

// decodeEvent rebuilds an Event from the parsed array. The wire format is
// exactly [time, type, data]; duration is never on the wire, so a decoded
// event always has a nil Duration.
func decodeEvent(elements []any) (Event, error) {
	if len(elements) != 3 {
		return Event{}, coreerrors.Wrap(
			fmt.Errorf("event line has %d elements, want 3", len(elements)),
			coreerrors.CategoryValueConstraint,
			"event_arity",
			"event lines are [time, type, data]",
		)
	}
	number, ok := elements[0].(json.Number)
	if !ok {
		return Event{}, typeMismatch("time", elements[0], "integer or real number", "event_field_type")
	}
	time, err := number.Float64()
	if err != nil {
		return Event{}, coreerrors.Wrap(
			fmt.Errorf("event time %s out of range: %w", number, err),
			coreerrors.CategoryValueConstraint,
			"event_time_range",
			"event time must fit a 64-bit float",
		)
	}
	eventType, ok := elements[1].(string)
	if !ok {
		return Event{}, typeMismatch("event_type", elements[1], "string", "event_field_type")
	}
	data, ok := elements[2].(string)
	if !ok {
		return Event{}, typeMismatch("event_data", elements[2], "string", "event_field_type")
	}
	return NewEvent(time, eventType, []byte(data), nil), nil
}

func decodeTheme(raw any) (*Theme, error) {
	fields, ok := raw.(map[string]any)
	if !ok {
		return nil, typeMismatch("theme", raw, "object or null", "header_field_type")
	}
	for key := range fields {
		switch key {
		case "fg", "bg", "palette":
		default:
			return nil, coreerrors.Wrap(
				fmt.Errorf("theme has unexpected field %q", key),
				coreerrors.CategoryTypeMismatch,
				"theme_field_unknown",
				"theme carries exactly fg, bg and palette",
			)
		}
	}
	fg, err := themeString(fields, "fg")
	if err != nil {
		return nil, err
	}
	bg, err := themeString(fields, "bg")
	if err != nil {
		return nil, err
	}
	palette, err := themeString(fields, "palette")
	if err != nil {
		return nil, err
	}
	return &Theme{FG: fg, BG: bg, Palette: palette}, nil
}

// headerInt extracts a required exact-integer header field. A JSON number
// with a fraction or exponent part is a type mismatch even when numerically
// integral: the format does no implicit coercion. An absent required field
// reports a dedicated missing-field code under the same category.
func headerInt(fields map[string]any, name string) (int, error) {
	raw, ok := fields[name]
	if !ok || raw == nil {
		return 0, coreerrors.Wrap(
			fmt.Errorf("header field %q is missing", name),
			coreerrors.CategoryTypeMismatch,
			"header_field_missing",
			"version, width and height are required",
		)
	}
	number, ok := raw.(json.Number)
	if !ok {
		return 0, typeMismatch(name, raw, "integer", "header_field_type")
	}
	if strings.ContainsAny(number.String(), ".eE") {
		return 0, coreerrors.Wrap(
			fmt.Errorf("invalid type for field %s: non-integer number %s (possible type: integer)", name, number),
			coreerrors.CategoryTypeMismatch,
			"header_field_type",
			name+" must be an exact integer, floats are not coerced",
		)
	}
	value, err := number.Int64()
	if err != nil {
		return 0, coreerrors.Wrap(
			fmt.Errorf("header field %q out of range: %w", name, err),
			coreerrors.CategoryValueConstraint,
			"header_integer_range",
			"version, width and height must fit a 64-bit integer",
		)
	}
	return int(value), nil
}

func themeString(fields map[string]any, name string) (string, error) {
	raw, ok := fields[name]
	if !ok {
		return "", coreerrors.Wrap(
			fmt.Errorf("theme field %q is missing", name),
			coreerrors.CategoryTypeMismatch,
			"theme_field_missing",
			"theme carries exactly fg, bg and palette",
		)
	}
	value, ok := raw.(string)
	if !ok {
		return "", typeMismatch("theme."+name, raw, "string", "theme_field_type")
	}
	return value, nil
}

func typeMismatch(field string, got any, want, code string) error {
	return coreerrors.Wrap(
		fmt.Errorf("invalid type for field %s: %T (possible type: %s)", field, got, want),
		coreerrors.CategoryTypeMismatch,
		code,
		fmt.Sprintf("%s must be of type %s", field, want),
	)
}

// Package schema ships the JSON Schema documents for the asciicast v2 wire
// format and validates raw record lines against them. It is a strict
// pre-decode check for callers that want schema-grade diagnostics before
// constructing records; the codec itself does not depend on it.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonschema"

	coreerrors "github.com/davidahmann/castline/core/errors"
)

//go:embed header.schema.json
var headerSchemaJSON []byte

//go:embed event.schema.json
var eventSchemaJSON []byte

var (
	headerSchema = mustCompile(headerSchemaJSON)
	eventSchema  = mustCompile(eventSchemaJSON)
)

func mustCompile(document []byte) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	schema, err := compiler.Compile(document)
	if err != nil {
		panic(fmt.Sprintf("compile embedded asciicast schema: %v", err))
	}
	return schema
}

// ValidateHeaderLine checks a raw line against the header schema.
func ValidateHeaderLine(line []byte) error {
	return validateLine(headerSchema, line, "header")
}

// ValidateEventLine checks a raw line against the event schema.
func ValidateEventLine(line []byte) error {
	return validateLine(eventSchema, line, "event")
}

// ValidateLine routes a raw line to the header or event schema by its
// top-level JSON shape, mirroring the decoder's dispatch: objects are
// headers, arrays are events, anything else is unsupported.
func ValidateLine(line []byte) error {
	shape, err := topLevelShape(line)
	if err != nil {
		return err
	}
	switch shape {
	case '{':
		return ValidateHeaderLine(line)
	case '[':
		return ValidateEventLine(line)
	default:
		return coreerrors.Wrap(
			fmt.Errorf("unsupported top-level JSON shape"),
			coreerrors.CategoryUnsupportedShape,
			"line_shape_unsupported",
			"record lines are a JSON object (header) or array (event)",
		)
	}
}

func validateLine(schema *jsonschema.Schema, line []byte, kind string) error {
	if !json.Valid(line) {
		return coreerrors.Wrap(
			fmt.Errorf("parse %s line: invalid JSON", kind),
			coreerrors.CategoryMalformedJSON,
			"line_parse_failed",
			"each record line must hold exactly one JSON value",
		)
	}
	result := schema.ValidateJSON(line)
	if result.IsValid() {
		return nil
	}
	return fmt.Errorf("%s line schema validation failed: %v", kind, result.Errors)
}

// topLevelShape returns the first byte of the line's JSON value. Garbage
// that is not JSON at all reports malformed rather than unsupported.
func topLevelShape(line []byte) (byte, error) {
	if !json.Valid(line) {
		return 0, coreerrors.Wrap(
			fmt.Errorf("parse record line: invalid JSON"),
			coreerrors.CategoryMalformedJSON,
			"line_parse_failed",
			"each record line must hold exactly one JSON value",
		)
	}
	for _, b := range line {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, nil
	}
	return 0, coreerrors.Wrap(
		fmt.Errorf("empty record line"),
		coreerrors.CategoryMalformedJSON,
		"line_parse_failed",
		"each record line must hold exactly one JSON value",
	)
}

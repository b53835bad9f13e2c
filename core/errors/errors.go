package errors

import "errors"

// Category classifies a record codec failure. Every error produced by the
// encode/decode paths carries exactly one category.
type Category string

const (
	// CategoryTypeMismatch marks a field whose wire or runtime type is
	// outside its declared allowed set.
	CategoryTypeMismatch Category = "type_mismatch"
	// CategoryValueConstraint marks a field with the right type but an
	// invalid value, such as an unsupported format version.
	CategoryValueConstraint Category = "value_constraint"
	// CategoryUnsupportedShape marks a line whose top-level JSON value is
	// neither an object nor an array.
	CategoryUnsupportedShape Category = "unsupported_shape"
	// CategoryMalformedJSON marks a line the JSON layer could not parse at
	// all. The parse error is preserved as the cause.
	CategoryMalformedJSON Category = "malformed_json"
)

type classifiedError struct {
	category Category
	code     string
	hint     string
	cause    error
}

func (e *classifiedError) Error() string {
	if e.cause == nil {
		return "unknown error"
	}
	return e.cause.Error()
}

func (e *classifiedError) Unwrap() error {
	return e.cause
}

func (e *classifiedError) Category() Category {
	return e.category
}

func (e *classifiedError) Code() string {
	return e.code
}

func (e *classifiedError) Hint() string {
	return e.hint
}

func Wrap(cause error, category Category, code, hint string) error {
	if cause == nil {
		return nil
	}
	return &classifiedError{
		category: category,
		code:     code,
		hint:     hint,
		cause:    cause,
	}
}

func CategoryOf(err error) Category {
	var classified *classifiedError
	if errors.As(err, &classified) {
		return classified.category
	}
	return ""
}

func CodeOf(err error) string {
	var classified *classifiedError
	if errors.As(err, &classified) {
		return classified.code
	}
	return ""
}

func HintOf(err error) string {
	var classified *classifiedError
	if errors.As(err, &classified) {
		return classified.hint
	}
	return ""
}

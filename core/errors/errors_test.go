package errors

import (
	stderrors "errors"
	"testing"
)

func TestWrapRoundTrip(t *testing.T) {
	base := stderrors.New("boom")
	err := Wrap(base, CategoryTypeMismatch, "header_width_type", "width must be an integer")
	if err == nil {
		t.Fatal("expected wrapped error")
	}
	if CategoryOf(err) != CategoryTypeMismatch {
		t.Fatalf("unexpected category: %s", CategoryOf(err))
	}
	if CodeOf(err) != "header_width_type" {
		t.Fatalf("unexpected code: %s", CodeOf(err))
	}
	if HintOf(err) != "width must be an integer" {
		t.Fatalf("unexpected hint: %s", HintOf(err))
	}
	if !stderrors.Is(err, base) {
		t.Fatal("expected wrapped error to preserve cause")
	}
}

func TestUnknownErrorDefaults(t *testing.T) {
	err := stderrors.New("plain")
	if CategoryOf(err) != "" {
		t.Fatalf("unexpected category: %s", CategoryOf(err))
	}
	if CodeOf(err) != "" {
		t.Fatalf("unexpected code: %s", CodeOf(err))
	}
	if HintOf(err) != "" {
		t.Fatalf("unexpected hint: %s", HintOf(err))
	}
}

func TestWrapNilCauseReturnsNil(t *testing.T) {
	if got := Wrap(nil, CategoryMalformedJSON, "line_parse_failed", "skip the line"); got != nil {
		t.Fatalf("expected nil wrapped error, got=%v", got)
	}
}

func TestClassifiedErrorNilCauseDefaults(t *testing.T) {
	err := &classifiedError{
		category: CategoryUnsupportedShape,
		code:     "line_shape_unsupported",
		hint:     "record lines are objects or arrays",
	}
	if err.Error() != "unknown error" {
		t.Fatalf("unexpected nil-cause error text: %s", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected unwrap nil for nil cause")
	}
	if err.Category() != CategoryUnsupportedShape {
		t.Fatalf("unexpected category: %s", err.Category())
	}
	if err.Code() != "line_shape_unsupported" {
		t.Fatalf("unexpected code: %s", err.Code())
	}
	if err.Hint() != "record lines are objects or arrays" {
		t.Fatalf("unexpected hint: %s", err.Hint())
	}
}

func TestCategorySetIsStableAndUnique(t *testing.T) {
	categories := []Category{
		CategoryTypeMismatch,
		CategoryValueConstraint,
		CategoryUnsupportedShape,
		CategoryMalformedJSON,
	}
	seen := map[Category]struct{}{}
	for _, category := range categories {
		if category == "" {
			t.Fatalf("category must not be empty")
		}
		if _, exists := seen[category]; exists {
			t.Fatalf("duplicate category: %s", category)
		}
		seen[category] = struct{}{}
	}
	if len(seen) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(seen))
	}
}

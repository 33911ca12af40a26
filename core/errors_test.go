package core

import (
	"errors"
	"net/http"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestErrorConstructors_AssignStableCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category goerrors.Category
		textCode string
		code     int
	}{
		{
			name:     "external",
			err:      ExternalError(errors.New("dial tcp: refused"), "upstream failed", map[string]any{"status": 0}),
			category: goerrors.CategoryExternal,
			textCode: ServiceErrorExternalFailure,
			code:     http.StatusBadGateway,
		},
		{
			name:     "decoding",
			err:      DecodingError(errors.New("unexpected EOF"), "seller", "invalid seller payload"),
			category: goerrors.CategoryOperation,
			textCode: ServiceErrorDecodingFailed,
			code:     http.StatusBadGateway,
		},
		{
			name:     "not found",
			err:      NotFoundError("cluster", "ghost"),
			category: goerrors.CategoryNotFound,
			textCode: ServiceErrorNotFound,
			code:     http.StatusNotFound,
		},
		{
			name:     "validation",
			err:      ValidationError("bad input", goerrors.FieldError{Field: "id", Message: "required"}),
			category: goerrors.CategoryValidation,
			textCode: ServiceErrorBadInput,
			code:     http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rich *goerrors.Error
			if !goerrors.As(tt.err, &rich) {
				t.Fatalf("expected go-errors envelope, got %T", tt.err)
			}
			if rich.Category != tt.category {
				t.Fatalf("expected category %q, got %q", tt.category, rich.Category)
			}
			if rich.TextCode != tt.textCode {
				t.Fatalf("expected text code %q, got %q", tt.textCode, rich.TextCode)
			}
			if rich.Code != tt.code {
				t.Fatalf("expected code %d, got %d", tt.code, rich.Code)
			}
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	if !IsNotFound(NotFoundError("seller", "1")) {
		t.Fatalf("expected not found predicate")
	}
	if !IsDecodingError(DecodingError(nil, "seller", "empty body")) {
		t.Fatalf("expected decoding predicate")
	}
	if !IsExternalError(ExternalError(nil, "status 500", nil)) {
		t.Fatalf("expected external predicate")
	}
	if !IsBadInput(ValidationError("account is required")) {
		t.Fatalf("expected bad input predicate")
	}
	if IsNotFound(errors.New("plain")) || IsNotFound(nil) {
		t.Fatalf("expected plain errors to fail predicates")
	}
	if IsDecodingError(NotFoundError("seller", "1")) {
		t.Fatalf("expected predicates to be exclusive")
	}
}

func TestMapError_AssignsEnvelopeToPlainErrors(t *testing.T) {
	tests := []struct {
		input    error
		textCode string
	}{
		{input: errors.New("seller not found"), textCode: ServiceErrorNotFound},
		{input: errors.New("json: cannot unmarshal string"), textCode: ServiceErrorDecodingFailed},
		{input: errors.New("account name is required"), textCode: ServiceErrorBadInput},
	}
	for _, tt := range tests {
		mapped := MapError(tt.input)
		if mapped == nil {
			t.Fatalf("expected mapped error for %v", tt.input)
		}
		if mapped.TextCode != tt.textCode {
			t.Fatalf("%v: expected %q, got %q", tt.input, tt.textCode, mapped.TextCode)
		}
		if mapped.Code == 0 {
			t.Fatalf("%v: expected http status code", tt.input)
		}
	}
}

func TestMapError_PreservesRichErrors(t *testing.T) {
	original := NotFoundError("seller", "5")
	mapped := MapError(original)
	if mapped.TextCode != ServiceErrorNotFound || mapped.Code != http.StatusNotFound {
		t.Fatalf("expected envelope to be kept, got %#v", mapped)
	}
	if MapError(nil) != nil {
		t.Fatalf("expected nil for nil input")
	}
}

func TestMapError_FallsBackToTextCode(t *testing.T) {
	mapped := MapError(errors.New("connection reset"))
	if mapped == nil || mapped.TextCode == "" || mapped.Code == 0 {
		t.Fatalf("expected complete envelope, got %#v", mapped)
	}
}

package query

import (
	"net/http"

	"github.com/goliatone/go-commerce-vtex/core"
	goerrors "github.com/goliatone/go-errors"
)

func queryDependencyError(message string) error {
	return goerrors.New(message, goerrors.CategoryInternal).
		WithCode(http.StatusInternalServerError).
		WithTextCode(core.ServiceErrorInternal)
}

func queryValidationError(field string, message string) error {
	return core.ValidationError("query: validation failed", goerrors.FieldError{
		Field:   field,
		Message: message,
	})
}

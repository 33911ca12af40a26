package core

import (
	"fmt"
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	ServiceErrorBadInput        = "SERVICE_BAD_INPUT"
	ServiceErrorNotFound        = "SERVICE_NOT_FOUND"
	ServiceErrorDecodingFailed  = "SERVICE_DECODING_FAILED"
	ServiceErrorExternalFailure = "SERVICE_EXTERNAL_FAILURE"
	ServiceErrorInternal        = "SERVICE_INTERNAL_ERROR"
)

type ErrorMapper func(err error) *goerrors.Error

// ExternalError reports an upstream call that failed or answered with a
// non-success status.
func ExternalError(source error, message string, metadata map[string]any) error {
	var err *goerrors.Error
	if source == nil {
		err = goerrors.New(message, goerrors.CategoryExternal)
	} else {
		err = goerrors.Wrap(source, goerrors.CategoryExternal, message)
	}
	err = err.WithCode(http.StatusBadGateway).WithTextCode(ServiceErrorExternalFailure)
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

// DecodingError reports a response body that is not valid JSON or lacks the
// expected envelope.
func DecodingError(source error, resource string, message string) error {
	var err *goerrors.Error
	if source == nil {
		err = goerrors.New(message, goerrors.CategoryOperation)
	} else {
		err = goerrors.Wrap(source, goerrors.CategoryOperation, message)
	}
	return err.
		WithCode(http.StatusBadGateway).
		WithTextCode(ServiceErrorDecodingFailed).
		WithMetadata(map[string]any{"resource": resource})
}

func NotFoundError(resource string, id string) error {
	return goerrors.New(fmt.Sprintf("%s %q not found", resource, id), goerrors.CategoryNotFound).
		WithCode(http.StatusNotFound).
		WithTextCode(ServiceErrorNotFound).
		WithMetadata(map[string]any{"resource": resource, "id": id})
}

func ValidationError(message string, fields ...goerrors.FieldError) error {
	return goerrors.NewValidation(message, fields...).
		WithCode(http.StatusBadRequest).
		WithTextCode(ServiceErrorBadInput).
		WithSeverity(goerrors.SeverityError)
}

func IsDecodingError(err error) bool {
	return hasTextCode(err, ServiceErrorDecodingFailed)
}

func IsNotFound(err error) bool {
	return hasTextCode(err, ServiceErrorNotFound)
}

func IsExternalError(err error) bool {
	return hasTextCode(err, ServiceErrorExternalFailure)
}

func IsBadInput(err error) bool {
	return hasTextCode(err, ServiceErrorBadInput)
}

func hasTextCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		return false
	}
	return rich.TextCode == code
}

// MapError guarantees a go-errors envelope with a status code and text code.
func MapError(err error) *goerrors.Error {
	if err == nil {
		return nil
	}

	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return ensureErrorEnvelope(richErr)
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	switch {
	case strings.Contains(msg, "not found"):
		return newMappedError(err.Error(), goerrors.CategoryNotFound, ServiceErrorNotFound)
	case strings.Contains(msg, "decode"), strings.Contains(msg, "unmarshal"):
		return newMappedError(err.Error(), goerrors.CategoryOperation, ServiceErrorDecodingFailed)
	case strings.Contains(msg, "required"), strings.Contains(msg, "invalid"):
		return newMappedError(err.Error(), goerrors.CategoryBadInput, ServiceErrorBadInput)
	}

	mapped := goerrors.MapToError(err, goerrors.DefaultErrorMappers())
	return ensureErrorEnvelope(mapped)
}

func newMappedError(message string, category goerrors.Category, textCode string) *goerrors.Error {
	return ensureErrorEnvelope(goerrors.New(message, category).WithTextCode(textCode))
}

func ensureErrorEnvelope(err *goerrors.Error) *goerrors.Error {
	if err == nil {
		return nil
	}
	if err.Code == 0 {
		err.Code = httpStatusForCategory(err.Category)
	}
	if strings.TrimSpace(err.TextCode) == "" {
		err.TextCode = defaultTextCode(err.Category)
	}
	if err.Category == goerrors.CategoryInternal && strings.TrimSpace(err.Message) == "" {
		err.Message = "An unexpected error occurred"
	}
	return err
}

func defaultTextCode(category goerrors.Category) string {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return ServiceErrorBadInput
	case goerrors.CategoryNotFound:
		return ServiceErrorNotFound
	case goerrors.CategoryExternal:
		return ServiceErrorExternalFailure
	case goerrors.CategoryOperation:
		return ServiceErrorDecodingFailed
	default:
		return ServiceErrorInternal
	}
}

func httpStatusForCategory(category goerrors.Category) int {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return http.StatusBadRequest
	case goerrors.CategoryNotFound:
		return http.StatusNotFound
	case goerrors.CategoryExternal, goerrors.CategoryOperation:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

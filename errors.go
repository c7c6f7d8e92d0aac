package restapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/go-arrower/restapi/alog"
)

// ValidationErrorMessage is the message of every response with http.StatusUnprocessableEntity.
const ValidationErrorMessage = "Validation error"

// ErrorResponse is the body of all responses that are not successful.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Message string             `json:"message"`
	Status  int                `json:"status"`
	Details []ValidationDetail `json:"details,omitempty"`
}

// ValidationDetail describes one invalid field of a request body.
// Field is the path of the field starting with body, e.g. body.items[0].quantity.
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ValidationError carries the details of a failed validation.
// Use NewValidationError to create it as part of an echo.HTTPError.
type ValidationError struct {
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		msgs = append(msgs, d.Field+": "+d.Message)
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

// NewValidationError turns an error of binding or validating a request body into
// an echo.HTTPError with status http.StatusUnprocessableEntity.
// validator.ValidationErrors and json errors are mapped to one detail per field.
func NewValidationError(err error) *echo.HTTPError {
	return &echo.HTTPError{
		Code:     http.StatusUnprocessableEntity,
		Message:  ValidationErrorMessage,
		Internal: &ValidationError{Details: validationDetails(err)},
	}
}

func validationDetails(err error) []ValidationDetail {
	var (
		fieldErrs  validator.ValidationErrors
		typeErr    *json.UnmarshalTypeError
		syntaxErr  *json.SyntaxError
		httpErr    *echo.HTTPError
		validation *ValidationError
	)

	switch {
	case errors.As(err, &validation):
		return validation.Details
	case errors.As(err, &fieldErrs):
		details := make([]ValidationDetail, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			details = append(details, ValidationDetail{
				Field:   fieldPath(fe.Namespace()),
				Message: fieldMessage(fe),
				Type:    fe.Tag(),
			})
		}

		return details
	case errors.As(err, &typeErr):
		return []ValidationDetail{typeErrorDetail(typeErr, nil)}
	case errors.As(err, &syntaxErr):
		return []ValidationDetail{{Field: "body", Message: syntaxErr.Error(), Type: "json"}}
	case errors.As(err, &httpErr):
		return []ValidationDetail{{Field: "body", Message: fmt.Sprint(httpErr.Message), Type: "body"}}
	}

	return []ValidationDetail{{Field: "body", Message: err.Error(), Type: "body"}}
}

// fieldPath replaces the struct name of a validator namespace with body.
// Nested application structs name their payload field body already.
func fieldPath(namespace string) string {
	path := ""

	// the struct name can be generic and contain dots in its type arguments
	depth := 0

	for i, r := range namespace {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case '.':
			if depth == 0 {
				path = namespace[i+1:]
			}
		}

		if path != "" {
			break
		}
	}

	if path == "" {
		return "body"
	}

	if path == "body" || strings.HasPrefix(path, "body.") {
		return path
	}

	return "body." + path
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "oneof":
		return "value must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "email":
		return "value is not a valid email address"
	case "min":
		return "value must be at least " + fe.Param()
	}

	return fe.Error()
}

// NewHTTPErrorHandler renders all errors returned by controllers or middlewares as ErrorResponse.
// Unexpected errors become http.StatusInternalServerError with the error message and are logged.
func NewHTTPErrorHandler(logger alog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		detail := ErrorDetail{
			Message: err.Error(),
			Status:  http.StatusInternalServerError,
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			detail.Status = httpErr.Code
			detail.Message = fmt.Sprint(httpErr.Message)
		}

		var validation *ValidationError
		if errors.As(err, &validation) {
			detail.Details = validation.Details
		}

		if detail.Status >= http.StatusInternalServerError {
			logger.LogAttrs(c.Request().Context(), slog.LevelError, "request failed",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				alog.Error(err),
			)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(detail.Status)

			return
		}

		_ = c.JSON(detail.Status, ErrorResponse{Error: detail})
	}
}

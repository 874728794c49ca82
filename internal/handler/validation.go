package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"taskboard/internal/apperrors"
)

// CustomValidator wraps go-playground/validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds the request validator. Violations are reported under
// the wire field names (json/query tags), not the Go struct field names.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"json", "query"} {
			if tag, ok := fld.Tag.Lookup(key); ok {
				name := strings.SplitN(tag, ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
		}
		return fld.Name
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// bindAndValidate binds the request body (or query) into req and runs the
// declarative field rules. On any violation it writes a 400 envelope listing
// a message for every violated field, not just the first, and reports
// handled=true so the handler can stop.
func bindAndValidate(c echo.Context, req interface{}) (handled bool, err error) {
	if err := c.Bind(req); err != nil {
		return true, c.JSON(http.StatusBadRequest, apperrors.Envelope{
			Error:         true,
			Message:       "validation failed",
			MessageDetail: []string{"the request body could not be parsed"},
		})
	}
	if err := c.Validate(req); err != nil {
		return true, c.JSON(http.StatusBadRequest, apperrors.Envelope{
			Error:         true,
			Message:       "validation failed",
			MessageDetail: fieldMessages(err),
		})
	}
	return false, nil
}

// fieldMessages flattens a validator error into one ordered human-readable
// message per violated field.
func fieldMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("the %s field is required", fe.Field())
	case "email":
		return fmt.Sprintf("the %s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("the %s must be at least %s characters", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("the %s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("the %s must not be greater than %s", fe.Field(), fe.Param())
	case "datetime":
		return fmt.Sprintf("the %s must be a valid date in %s format", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("the %s field is invalid", fe.Field())
	}
}

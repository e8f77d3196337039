// Package web defines common components for a web application.
package web

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// JSONError provides type for explicit json encoded error response.
type JSONError struct {
	Message string `json:"message"`
}

// Error wraps a given err into json frinedly struct.
func Error(err error) JSONError {
	return JSONError{Message: err.Error()}
}

// ErrInvalidBody is reported when a request body cannot be decoded.
var ErrInvalidBody = errors.New("invalid request body")

// ValidationError describes the first failed field of err, or ErrInvalidBody
// when err is not a validation error.
func ValidationError(err error) JSONError {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return JSONError{Message: GetErrorMsg(ve[0])}
	}

	return Error(ErrInvalidBody)
}

// ErrInvalidID is reported when a path id is not a number.
var ErrInvalidID = errors.New("invalid id")

// URIError is ValidationError for path parameters.
func URIError(err error) JSONError {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return JSONError{Message: GetErrorMsg(ve[0])}
	}

	return Error(ErrInvalidID)
}

// GetErrorMsg returns a human readable message for the failed field.
func GetErrorMsg(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + fe.Param()
	case "email":
		return field + " must be a valid email"
	case "oneof":
		return field + " must be one of [" + fe.Param() + "]"
	case "decimal":
		return field + " must be a decimal string"
	case "url":
		return field + " must be a valid url"
	case "alphanum":
		return field + " must contain letters and digits only"
	}

	return field + " is invalid"
}

// Package web defines common components for a web application.
package web

import "github.com/go-playground/validator/v10"

// Response holds the common response type for all APIs.
//
// Failures carry only the Error field so that callers can branch on its
// presence. Warnings report degraded successes such as dropped participants.
type Response struct {
	Data     any      `json:"data,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// Error wraps a given err into the common response envelope.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// GetErrorMsg returns a human readable message for the first binding
// validation failure.
func GetErrorMsg(ve validator.ValidationErrors) string {
	field := ve[0]

	switch field.Tag() {
	case "required":
		return field.Field() + " field is required"
	case "min":
		return field.Field() + " field must be greater or equal to " + field.Param()
	case "max":
		return field.Field() + " field must be less or equal to " + field.Param()
	case "email":
		return field.Field() + " field must be a valid email address"
	case "gt":
		return field.Field() + " field must be greater than " + field.Param()
	}

	return field.Field() + " field is invalid"
}

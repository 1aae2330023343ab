// Package apperr carries the uniform error envelope and the single
// classifier that maps downstream failures to HTTP statuses. Handlers never
// map errors themselves; they attach them to the gin context and rely on the
// middleware calling Classify.
package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type FieldIssue struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Error is an application-raised HTTP error with a declared status and type.
type Error struct {
	Status  int
	Type    string
	Message string
	Details []FieldIssue
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Type: "NOT_FOUND", Message: message}
}

func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Type: "CONFLICT", Message: message}
}

func Validation(message string, details []FieldIssue) *Error {
	return &Error{Status: http.StatusBadRequest, Type: "VALIDATION_ERROR", Message: message, Details: details}
}

type Payload struct {
	Type    string       `json:"type"`
	Message string       `json:"message"`
	Details []FieldIssue `json:"details,omitempty"`
}

type Envelope struct {
	Error Payload `json:"error"`
}

func (e *Error) Envelope() Envelope {
	return Envelope{Error: Payload{Type: e.Type, Message: e.Message, Details: e.Details}}
}

// Classify maps an error to its HTTP form, first match wins:
// unique-constraint violation, record not found, request validation,
// application-raised *Error. A nil result means unclassified; the caller
// responds 500 and logs the full error.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return Conflict("duplicate value violates a unique constraint")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound("record not found")
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return Validation("request validation failed", issuesFrom(verrs))
	}
	// json.Decoder surfaces truncated bodies as io.ErrUnexpectedEOF and empty
	// bodies as io.EOF, not as *json.SyntaxError.
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return Validation("request body is not valid JSON for this operation", nil)
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func issuesFrom(verrs validator.ValidationErrors) []FieldIssue {
	issues := make([]FieldIssue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, FieldIssue{
			Field:   fieldPath(fe),
			Rule:    fe.Tag(),
			Message: issueMessage(fe),
		})
	}
	return issues
}

// fieldPath strips the request-struct name from the namespace so clients see
// "vintage_year", not "FundCreateRequest.vintage_year".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must not be empty"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	case "email":
		return "must be a valid email address"
	case "dateonly":
		return "must be a valid YYYY-MM-DD date"
	default:
		return fmt.Sprintf("failed rule %q", fe.Tag())
	}
}

package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ErrorCode classifies a field validation failure.
type ErrorCode string

const (
	CodeRequired      ErrorCode = "required"
	CodeInvalidFormat ErrorCode = "invalid_format"
)

type FieldError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ValidationErrors maps a field to its failure. An empty map means the draft is valid.
type ValidationErrors map[Field]FieldError

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, string(field))
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, v[Field(field)].Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Clone returns an independent copy.
func (v ValidationErrors) Clone() ValidationErrors {
	out := make(ValidationErrors, len(v))
	for field, err := range v {
		out[field] = err
	}
	return out
}

var (
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	nonDigits    = regexp.MustCompile(`\D`)
)

// Validate runs every field rule. Party size and special requests never fail.
func Validate(d Draft) ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(d.Name) == "" {
		errs[FieldName] = FieldError{Code: CodeRequired, Message: "Name is required"}
	}

	switch {
	case strings.TrimSpace(d.Email) == "":
		errs[FieldEmail] = FieldError{Code: CodeRequired, Message: "Email is required"}
	case !emailPattern.MatchString(d.Email):
		errs[FieldEmail] = FieldError{Code: CodeInvalidFormat, Message: "Email is invalid"}
	}

	switch {
	case strings.TrimSpace(d.Phone) == "":
		errs[FieldPhone] = FieldError{Code: CodeRequired, Message: "Phone number is required"}
	case len(nonDigits.ReplaceAllString(d.Phone, "")) != 10:
		errs[FieldPhone] = FieldError{Code: CodeInvalidFormat, Message: "Please enter a valid 10-digit phone number"}
	}

	if d.Date == "" {
		errs[FieldDate] = FieldError{Code: CodeRequired, Message: "Date is required"}
	}
	if d.Time == "" {
		errs[FieldTime] = FieldError{Code: CodeRequired, Message: "Time is required"}
	}

	return errs
}

// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// singleton validator instance
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Violation describes a single failed validation rule.
type Violation struct {
	// Field is the dotted JSON path of the offending field (e.g. "author.name").
	Field string `json:"field"`

	// Rule is the validation tag that failed (e.g. "required", "max").
	Rule string `json:"rule"`

	// Param is the rule parameter, if any (e.g. "10" for "max=10").
	Param string `json:"param,omitempty"`

	// Message is a human-readable description.
	Message string `json:"message"`
}

// String returns the violation message.
func (v Violation) String() string {
	return v.Message
}

// RequestValidationError represents a collection of validation errors.
type RequestValidationError struct {
	violations []Violation
}

// Violations returns the failed rules.
func (ve *RequestValidationError) Violations() []Violation {
	return ve.violations
}

// Error implements the error interface, returning a combined error message.
func (ve *RequestValidationError) Error() string {
	return JoinMessages(ve.violations)
}

// JoinMessages renders violations as a single message.
func JoinMessages(violations []Violation) string {
	if len(violations) == 0 {
		return "validation failed"
	}

	messages := make([]string, 0, len(violations))
	for _, v := range violations {
		messages = append(messages, v.Message)
	}

	return strings.Join(messages, "; ")
}

// GetValidator returns the singleton validator instance.
// Field names in violations use the json tag name when present.
// This function is thread-safe.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)
		// notblank also rejects whitespace-only strings. Registration of a
		// fixed tag cannot fail.
		_ = validate.RegisterValidation("notblank", validators.NotBlank) //nolint:errcheck // see above
	})

	return validate
}

// jsonFieldName reports the json name of a struct field.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}

// ValidateStruct validates a struct using the singleton validator.
// Returns nil if validation passes, or *RequestValidationError if validation fails.
func ValidateStruct(s interface{}) *RequestValidationError {
	v := GetValidator()

	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		// Unexpected error type (e.g. a nil or non-struct argument)
		return &RequestValidationError{
			violations: []Violation{
				{
					Field:   "unknown",
					Rule:    "unknown",
					Message: err.Error(),
				},
			},
		}
	}

	violations := make([]Violation, len(validationErrs))
	for i, fieldErr := range validationErrs {
		field := fieldPath(fieldErr)
		violations[i] = Violation{
			Field:   field,
			Rule:    fieldErr.Tag(),
			Param:   fieldErr.Param(),
			Message: translateError(fieldErr, field),
		}
	}

	return &RequestValidationError{violations: violations}
}

// fieldPath strips the top-level struct name from the error namespace,
// so nested fields read as "author.name".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok && rest != "" {
		return rest
	}
	return fe.Field()
}

// errorMessageTemplates maps validation tags to message templates.
var errorMessageTemplates = map[string]string{
	"required": "%s is required",
	"notblank": "%s must not be blank",
}

// errorMessageWithParam maps validation tags to templates that include param.
var errorMessageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
	"lt":    "%s must be less than %s",
}

// translateError converts a validator.FieldError to a human-readable message.
func translateError(fe validator.FieldError, field string) string {
	tag := fe.Tag()
	param := fe.Param()

	if template, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(template, field)
	}

	if template, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(template, field, param)
	}

	return translateMinMax(fe, field, tag, param)
}

// translateMinMax handles min/max validation with type-specific messages.
func translateMinMax(fe validator.FieldError, field, tag, param string) string {
	isString := fe.Kind() == reflect.String

	switch tag {
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}

package domain

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field error codes reported by ValidateInput.
const (
	CodeRequired    = "required"
	CodeInvalidType = "invalid_type"
)

// FieldError describes one offending input field.
type FieldError struct {
	Field string `json:"field"`
	Code  string `json:"code"`
}

// ValidationError carries one FieldError per rejected field.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Code)
	}
	return "invalid certificate data: " + strings.Join(parts, ", ")
}

// IsValidationError reports whether err wraps a *ValidationError and returns it.
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

var requiredFields = []string{"studentName", "courseName", "commission", "completionDate"}

var optionalFields = []string{"discordHandle", "personalMessage", "pronouns", "fileUrl"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateInput turns an untrusted decoded JSON object into a creation payload.
// Optional fields that are missing or null stay nil; a provided empty string is kept.
func ValidateInput(raw map[string]any) (CertificateInput, error) {
	var (
		in     CertificateInput
		failed = map[string]string{}
	)

	required := map[string]*string{
		"studentName":    &in.StudentName,
		"courseName":     &in.CourseName,
		"commission":     &in.Commission,
		"completionDate": &in.CompletionDate,
	}
	for _, name := range requiredFields {
		v, ok := raw[name]
		if !ok || v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			failed[name] = CodeInvalidType
			continue
		}
		*required[name] = s
	}

	optional := map[string]**string{
		"discordHandle":   &in.DiscordHandle,
		"personalMessage": &in.PersonalMessage,
		"pronouns":        &in.Pronouns,
		"fileUrl":         &in.FileURL,
	}
	for _, name := range optionalFields {
		v, ok := raw[name]
		if !ok || v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			failed[name] = CodeInvalidType
			continue
		}
		*optional[name] = &s
	}

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return CertificateInput{}, err
		}
		for _, fe := range verrs {
			if _, seen := failed[fe.Field()]; seen {
				continue
			}
			failed[fe.Field()] = fe.Tag()
		}
	}

	if len(failed) > 0 {
		ve := &ValidationError{}
		for _, name := range append(append([]string{}, requiredFields...), optionalFields...) {
			if code, ok := failed[name]; ok {
				ve.Fields = append(ve.Fields, FieldError{Field: name, Code: code})
			}
		}
		return CertificateInput{}, ve
	}
	return in, nil
}

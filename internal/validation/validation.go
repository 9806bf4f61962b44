package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/fedutinova/regexsmith/internal/common"
	"github.com/go-playground/validator/v10"
)

const DefaultMaxPromptLength = 500

type ValidationError = common.ValidationError

type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// First returns the first message, used as the short error string.
func (e ValidationErrors) First() string {
	if len(e) == 0 {
		return ""
	}
	return e[0].Message
}

type GenerateRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

type TestRequest struct {
	Regex      string  `json:"regex" validate:"required"`
	TestString *string `json:"test_string" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateGenerate expects an already trimmed prompt.
func ValidateGenerate(req GenerateRequest, maxLen int) ValidationErrors {
	if maxLen <= 0 {
		maxLen = DefaultMaxPromptLength
	}
	if errs := translate(validate.Struct(req)); len(errs) > 0 {
		return errs
	}
	if err := validate.Var(req.Prompt, fmt.Sprintf("max=%d", maxLen)); err != nil {
		return ValidationErrors{{
			Field:   "prompt",
			Message: fmt.Sprintf("prompt too long, keep it under %d characters", maxLen),
		}}
	}
	return nil
}

// ValidateTest expects an already trimmed regex. An empty test_string is
// allowed; a missing one is not.
func ValidateTest(req TestRequest) ValidationErrors {
	return translate(validate.Struct(req))
}

func translate(err error) ValidationErrors {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ValidationErrors{{Field: "request", Message: err.Error()}}
	}

	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.Ptr {
			return fmt.Sprintf("missing '%s' in request body", fe.Field())
		}
		return fmt.Sprintf("%s cannot be empty", fe.Field())
	case "max":
		return fmt.Sprintf("%s exceeds maximum length of %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

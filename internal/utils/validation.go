package utils

import (
	"html"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/microcosm-cc/bluemonday"
)

// Validator validates request payloads and renders failures through the
// English message catalog, using JSON field names.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
	sanitizer  *bluemonday.Policy
}

func NewValidator() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	translator, _ := uni.GetTranslator("en")

	// Registration only fails for duplicate tags, which cannot happen on a fresh validator.
	_ = enTranslations.RegisterDefaultTranslations(validate, translator)

	return &Validator{
		validate:   validate,
		translator: translator,
		sanitizer:  bluemonday.StrictPolicy(),
	}
}

// Struct validates data and returns one translated message per failing field.
// The error is non-nil only for unexpected (non field-level) failures.
func (v *Validator) Struct(data any) ([]string, error) {
	err := v.validate.Struct(data)
	if err == nil {
		return nil, nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, fieldErr.Translate(v.translator))
	}

	return messages, nil
}

// Sanitize strips markup and surrounding whitespace from user supplied text.
func (v *Validator) Sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(v.sanitizer.Sanitize(s)))
}

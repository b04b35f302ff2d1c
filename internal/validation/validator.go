package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/labstack/echo/v4"
)

type violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PayloadError carries field-level violations of the request payload shape
type PayloadError struct {
	violations []violation
}

func (e *PayloadError) Error() string {
	buff := bytes.NewBufferString("")

	for _, err := range e.violations {
		buff.WriteString(err.Message)
		buff.WriteString("\n")
	}

	return buff.String()
}

// Violation appends field violation to error
func (e *PayloadError) Violation(v violation) {
	e.violations = append(e.violations, v)
}

// MarshalJSON renders violations in response payload format
func (e *PayloadError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Errors []violation `json:"errors"`
	}{
		Errors: e.violations,
	})
}

// EchoValidator is echo-pluggable validator with translated messages
type EchoValidator struct {
	validator  *validator.Validate
	translator ut.Translator
}

// Echo builds EchoValidator
func Echo(validator *validator.Validate, translator ut.Translator) *EchoValidator {
	return &EchoValidator{
		validator:  validator,
		translator: translator,
	}
}

// Default builds EchoValidator with english translations registered
func Default() (*EchoValidator, error) {
	v := validator.New()

	enLocale := en.New()
	uniTranslator := ut.New(enLocale, enLocale)

	translator, found := uniTranslator.GetTranslator(enLocale.Locale())
	if !found {
		return nil, fmt.Errorf("no translator found for locale %s", enLocale.Locale())
	}

	if err := entranslations.RegisterDefaultTranslations(v, translator); err != nil {
		return nil, fmt.Errorf("failed to register validation translations - %w", err)
	}

	return Echo(v, translator), nil
}

// Validate validates provided struct
func (v *EchoValidator) Validate(i any) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return v.payloadError(ve)
	}

	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (v *EchoValidator) payloadError(ve validator.ValidationErrors) error {
	pldErr := &PayloadError{violations: make([]violation, 0)}
	for _, e := range ve {
		pldErr.Violation(violation{
			Field:   e.Field(),
			Message: e.Translate(v.translator),
		})
	}
	return pldErr
}

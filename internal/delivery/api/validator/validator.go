// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	"bookstore/internal/domain/entity"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// FieldError describes one rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *playground.Validate
}

// New builds a validator that reports JSON field names and knows the domain enums.
func New() *CustomValidator {
	validate := playground.New(playground.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			name, _, _ = strings.Cut(field.Tag.Get("query"), ",")
		}

		return name
	})

	mustRegister(validate, "location_type", func(fl playground.FieldLevel) bool {
		return entity.LocationType(fl.Field().String()).IsValid()
	})
	mustRegister(validate, "match_field", func(fl playground.FieldLevel) bool {
		return entity.MatchField(fl.Field().String()).IsValid()
	})
	mustRegister(validate, "role", func(fl playground.FieldLevel) bool {
		return entity.Role(fl.Field().String()).IsValid()
	})
	mustRegister(validate, "order_status", func(fl playground.FieldLevel) bool {
		return entity.OrderStatus(fl.Field().String()).IsValid()
	})
	mustRegister(validate, "payment_method", func(fl playground.FieldLevel) bool {
		return entity.PaymentMethod(fl.Field().String()).IsValid()
	})

	return &CustomValidator{validate: validate}
}

func mustRegister(validate *playground.Validate, tag string, fn playground.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validate validates a bound request struct.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// FieldErrors extracts per-field failures from a Validate error.
func FieldErrors(err error) ([]FieldError, bool) {
	var validationErrs playground.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, false
	}

	fields := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
	}

	return fields, true
}

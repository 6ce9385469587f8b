package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/BrandishItemSearch/internal/query"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator initializes the global validator
func InitValidator() {
	validateOnce.Do(func() {
		v := validator.New()

		// Report the form name (query parameter) instead of the struct field name
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			if name := f.Tag.Get("form"); name != "" && name != "-" {
				return name
			}
			return strings.ToLower(f.Name)
		})

		_ = v.RegisterValidation("sortkey", validateSortKey)
		_ = v.RegisterValidation("order", validateOrder)

		validate = &Validator{validate: v}
	})
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	InitValidator()
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by query parameter name
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "sortkey":
			errs[field] = fmt.Sprintf("Must be one of: %s", strings.Join(query.SortKeys, ", "))
		case "order":
			errs[field] = fmt.Sprintf("Must be %s or %s", query.Ascending, query.Descending)
		case "max":
			if e.Kind() == reflect.String {
				errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
			} else {
				errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
			}
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// Custom validation function for sort keys. Empty means the default key.
func validateSortKey(fl validator.FieldLevel) bool {
	key := fl.Field().String()
	return key == "" || query.IsValidSortKey(key)
}

// Custom validation function for sort direction. Empty means ascending.
func validateOrder(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", query.Ascending, query.Descending:
		return true
	}
	return false
}

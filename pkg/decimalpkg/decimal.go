// Package decimalpkg provides validation of decimal values transmitted as strings.
package decimalpkg

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Tag is the validation tag of ValidDecimal.
const Tag = "decimal"

// IsDecimal returns true if s holds a decimal number such as "-1.23" or "42350.00".
func IsDecimal(s string) bool {
	_, err := decimal.NewFromString(s)
	return err == nil
}

// ValidDecimal validates whether the field is a decimal string.
var ValidDecimal validator.Func = func(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		return IsDecimal(s)
	}
	return false
}

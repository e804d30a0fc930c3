package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var sortFieldCompile = regexp.MustCompile(`^[a-z][a-z0-9_]{0,62}$`)

// SortField accepts a single snake_case column name
func SortField(f1 validator.FieldLevel) bool {
	valid, ok := f1.Field().Interface().(string)
	if !ok {
		return false
	}
	return sortFieldCompile.MatchString(valid)
}

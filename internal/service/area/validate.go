package area

import (
	"errors"

	"areaadmin/pkg/validator"
)

const tagSortField = "sort_field"

var fieldMessages = map[string]string{
	"area_id.required":   "Please enter area ID",
	"area_id.max":        "Area ID cannot exceed 20 characters",
	"area_name.required": "Please enter area name",
	"area_name.max":      "Area name cannot exceed 100 characters",
	"status.required":    "Please select status",
	"status.oneof":       "Please select status",
}

// NewValidator the form validator with the sort field rule registered
func NewValidator() (validator.Validator, error) {
	v, err := validator.New()
	if err != nil {
		return nil, err
	}
	if err = validator.RegisterValidation(v, tagSortField, validator.SortField); err != nil {
		return nil, err
	}
	if err = validator.RegisterMessage(v, tagSortField, "{0} must be a lower case column name"); err != nil {
		return nil, err
	}
	return v, nil
}

// fieldErrors maps a validation failure to field keyed form messages
func fieldErrors(err error) map[string][]string {
	if err == nil {
		return nil
	}
	var errs validator.Errors
	if !errors.As(err, &errs) {
		return map[string][]string{"": {err.Error()}}
	}
	result := make(map[string][]string, len(errs))
	for _, fe := range errs {
		message, ok := fieldMessages[fe.Field+"."+fe.Tag]
		if !ok {
			message = fe.Message
		}
		result[fe.Field] = append(result[fe.Field], message)
	}
	return result
}

package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	translations "github.com/go-playground/validator/v10/translations/en"
	"go.uber.org/multierr"
)

type Validator interface {
	ValidateStruct(obj interface{}) error
	ValidateStructExcept(obj interface{}, fields ...string) error
	Engine() interface{}
}

// FieldError is one failed rule, Field is the json name of the field
type FieldError struct {
	Field   string
	Tag     string
	Param   string
	Message string
}

// Errors is returned by ValidateStruct when at least one rule failed
type Errors []FieldError

func (e Errors) Error() string {
	var errs error
	for _, fe := range e {
		errs = multierr.Append(errs, errors.New(fe.Message))
	}
	if errs == nil {
		return ""
	}
	return errs.Error()
}

// Fields groups the messages by field
func (e Errors) Fields() map[string][]string {
	result := make(map[string][]string, len(e))
	for _, fe := range e {
		result[fe.Field] = append(result[fe.Field], fe.Message)
	}
	return result
}

// New validator reading "binding" tags and reporting json field names
func New() (*defaultValidator, error) {
	v := &defaultValidator{Validate: validator.New()}
	v.Validate.SetTagName("binding")
	v.Validate.RegisterTagNameFunc(jsonName)
	v.translator, _ = ut.New(en.New()).GetTranslator("en")
	if err := translations.RegisterDefaultTranslations(v.Validate, v.translator); err != nil {
		return nil, err
	}
	return v, nil
}

type defaultValidator struct {
	Validate   *validator.Validate
	translator ut.Translator
}

// ValidateStruct receives any kind of type, but only performed struct or pointer to struct type.
func (v *defaultValidator) ValidateStruct(obj interface{}) error {
	err := v.defaultValidateStruct(obj)
	if err == nil {
		return nil
	}
	return v.Translate(err)
}

// ValidateStructExcept skips the named fields, names are Go field names
// relative to obj, e.g. "AreaID"
func (v *defaultValidator) ValidateStructExcept(obj interface{}, fields ...string) error {
	if obj == nil {
		return nil
	}
	if err := v.Validate.StructExcept(obj, fields...); err != nil {
		return v.Translate(err)
	}
	return nil
}

// Translate converts validator.ValidationErrors into Errors, anything else
// passes through
func (v *defaultValidator) Translate(err error) error {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err
	}
	result := make(Errors, 0, len(vErrs))
	for _, fe := range vErrs {
		result = append(result, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: fe.Translate(v.translator),
		})
	}
	return result
}

// Engine returns the underlying validator engine which powers the default
// Validator instance. This is useful if you want to register custom validations
// or struct level validations.
func (v *defaultValidator) Engine() interface{} {
	return v.Validate
}

func (v *defaultValidator) defaultValidateStruct(obj interface{}) error {
	if obj == nil {
		return nil
	}
	value := reflect.ValueOf(obj)
	switch value.Kind() { // nolint:exhaustive
	case reflect.Ptr:
		if value.IsNil() {
			return nil
		}
		return v.defaultValidateStruct(value.Elem().Interface())
	case reflect.Struct:
		return v.Validate.Struct(obj)
	case reflect.Slice, reflect.Array:
		count := value.Len()
		var errs validator.ValidationErrors
		for i := 0; i < count; i++ {
			var vErrs validator.ValidationErrors
			if err := v.defaultValidateStruct(value.Index(i).Interface()); errors.As(err, &vErrs) {
				errs = append(errs, vErrs...)
			} else if err != nil {
				return err
			}
		}
		if len(errs) == 0 {
			return nil
		}
		return errs
	default:
		return nil
	}
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

func RegisterValidation(v Validator, tag string, fn validator.Func, callValidationEvenIfNull ...bool) error {
	validate, ok := v.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return validate.RegisterValidation(tag, fn, callValidationEvenIfNull...)
}

// RegisterMessage attaches an English message to a custom tag, {0} is the field
func RegisterMessage(v Validator, tag, message string) error {
	dv, ok := v.(*defaultValidator)
	if !ok {
		return nil
	}
	return dv.Validate.RegisterTranslation(tag, dv.translator,
		func(ut ut.Translator) error {
			return ut.Add(tag, message, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, err := ut.T(tag, fe.Field())
			if err != nil {
				return fe.Error()
			}
			return msg
		})
}

func Var(v Validator, field interface{}, tag string) error {
	validate, ok := v.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return validate.Var(field, tag)
}

package req

import (
	"errors"
	"reflect"
	"strings"

	v10 "github.com/go-playground/validator/v10"
	"github.com/xy-planning-network/wings"
)

type validator struct {
	valid *v10.Validate
}

// newValidator constructs a validator naming fields by their "json" tag, else their "schema" tag,
// and understanding the "enum" rule.
func newValidator() validator {
	v := v10.New()
	_ = v.RegisterValidation("enum", validateEnumerable)
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "schema"} {
			if name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]; name != "" && name != "-" {
				return name
			}
		}

		return ""
	})

	return validator{v}
}

// validate checks the fields on structPtr match the rules set by "validate" struct tags,
// translating each failure into a ValidationError.
func (v validator) validate(structPtr any) error {
	err := v.valid.Struct(structPtr)
	if err == nil {
		return nil
	}

	var errs v10.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	validateErrs := make(ValidationErrors, 0, len(errs))
	for _, fe := range errs {
		field := fe.Namespace()
		if ns := strings.SplitN(field, ".", 2); len(ns) == 2 {
			field = ns[1]
		}

		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		rule += "; " + fe.Type().String()

		validateErrs = append(validateErrs, ValidationError{Field: field, Got: fe.Value(), Rule: rule})
	}

	return validateErrs
}

// validateEnumerable validates whether field is a valid wings.Enumerable or a non-empty slice of them.
func validateEnumerable(fl v10.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return validEnums(field)
	}

	vals := make([]reflect.Value, 0, field.Len())
	for i := 0; i < field.Len(); i++ {
		vals = append(vals, field.Index(i))
	}

	return validEnums(vals...)
}

func validEnums(items ...reflect.Value) bool {
	if len(items) == 0 {
		return false
	}

	for _, item := range items {
		enum, ok := item.Interface().(wings.Enumerable)
		if !ok || enum.Valid() != nil {
			return false
		}
	}

	return true
}

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/iancoleman/strcase"

	"github.com/aigovhub/lineage/pkg/contract"
	"github.com/aigovhub/lineage/pkg/entities"
)

type enumValue interface {
	IsValid() bool
}

func enumValidation[T interface {
	~string
	enumValue
}](fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(T)
	if !ok {
		return T(fl.Field().String()).IsValid()
	}

	return value.IsValid()
}

// NewValidator returns a validator aware of the closed vocabularies.
func NewValidator() (*validator.Validate, error) {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query", "params"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}

		return strcase.ToSnake(field.Name)
	})

	validations := map[string]validator.Func{
		"dataSensitivity":    enumValidation[entities.DataSensitivity],
		"dataClassification": enumValidation[entities.DataClassification],
		"datasetType":        enumValidation[entities.DatasetType],
		"dependencyType":     enumValidation[entities.DependencyType],
		"lineageDirection":   enumValidation[entities.Direction],
	}

	for tag, fn := range validations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("validation registration for '%s' failed: %w", tag, err)
		}
	}

	return validate, nil
}

func dereference(value interface{}) interface{} {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}

		return v.Elem().Interface()
	}

	return value
}

// NewErrorFromValidationError flattens validator errors into one contract error.
func NewErrorFromValidationError(err error) *contract.Error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to validate input", err)
	}

	validationErrors := make([]string, 0, len(errs))

	for _, err := range errs {
		field := err.Field()
		value := dereference(err.Value())

		var vErr string

		switch err.Tag() {
		case "required":
			vErr = fmt.Sprintf("Missing value for required parameter '%s'", field)
		case "max":
			vErr = fmt.Sprintf("Parameter '%s' exceeds the maximum length of %s", field, err.Param())
		default:
			vErr = fmt.Sprintf("Invalid value %v for parameter '%s' supplied", value, field)
		}

		validationErrors = append(validationErrors, vErr)
	}

	return contract.NewError(contract.ErrorCodeInvalidParameterValue, strings.Join(validationErrors, ", "))
}

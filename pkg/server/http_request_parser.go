package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/gjson"

	"github.com/aigovhub/lineage/pkg/contract"
	"github.com/aigovhub/lineage/pkg/validation"
)

type HTTPRequestParser struct {
	validator *validator.Validate
}

func NewHTTPRequestParser() (*HTTPRequestParser, error) {
	v, err := validation.NewValidator()
	if err != nil {
		return nil, err
	}

	return &HTTPRequestParser{
		validator: v,
	}, nil
}

func (p *HTTPRequestParser) ParseBody(ctx *fiber.Ctx, input interface{}) *contract.Error {
	if err := ctx.BodyParser(input); err != nil {
		var unmarshalErr *json.UnmarshalTypeError
		if errors.As(err, &unmarshalErr) {
			result := gjson.GetBytes(ctx.Body(), unmarshalErr.Field)
			value := result.Str
			if value == "" {
				value = result.Raw
			}

			return contract.NewError(
				contract.ErrorCodeInvalidParameterValue,
				fmt.Sprintf("Invalid value %s for parameter '%s' supplied", value, unmarshalErr.Field),
			)
		}

		return contract.NewError(contract.ErrorCodeBadRequest, err.Error())
	}

	if err := p.validator.Struct(input); err != nil {
		return validation.NewErrorFromValidationError(err)
	}

	return nil
}

func (p *HTTPRequestParser) ParseQuery(ctx *fiber.Ctx, input interface{}) *contract.Error {
	if err := ctx.QueryParser(input); err != nil {
		return contract.NewError(contract.ErrorCodeInvalidParameterValue, err.Error())
	}

	if err := p.validator.Struct(input); err != nil {
		return validation.NewErrorFromValidationError(err)
	}

	return nil
}

// ParseParams decodes path parameters only. Validation is left to the body or query
// parsing that follows, or to the service.
func (p *HTTPRequestParser) ParseParams(ctx *fiber.Ctx, input interface{}) *contract.Error {
	if err := ctx.ParamsParser(input); err != nil {
		return contract.NewError(contract.ErrorCodeInvalidParameterValue, err.Error())
	}

	return nil
}

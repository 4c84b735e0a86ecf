package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if fe.Tag() == "required" {
			return ValidationError(fmt.Sprintf("%s is required", fe.Field()))
		}
		return ValidationError(fmt.Sprintf("%s is invalid", fe.Field()))
	}
	return ValidationError("invalid request body")
}

package validator

import (
	"fmt"
	"strings"

	"campusrent/dto"
	"campusrent/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateStruct runs the struct tags and turns the first failure into an AppError.
func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "invalid request", err)
	}
	fe := fieldErrs[0]
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return errors.NewAppError(errors.ErrCodeRequiredField, field+" is required", err)
	case "oneof":
		return errors.NewAppError(errors.ErrCodeValidation,
			fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", ")), err)
	case "min", "max":
		return errors.NewAppError(errors.ErrCodeValidation,
			fmt.Sprintf("%s violates %s=%s", field, fe.Tag(), fe.Param()), err)
	default:
		return errors.NewAppError(errors.ErrCodeInvalidFormat, field+" is invalid", err)
	}
}

// ValidateBookingRequest checks the request shape; dates and durations are
// checked when the request is priced.
func ValidateBookingRequest(req *dto.BookingRequest) error {
	return validateStruct(req)
}

func ValidateReview(req *dto.CreateReviewRequest) error {
	return validateStruct(req)
}

func ValidateToggleFavorite(req *dto.ToggleFavoriteRequest) error {
	return validateStruct(req)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

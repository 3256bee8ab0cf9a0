// Package apperror maps validator field errors onto stable client messages.
package apperror

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	errRequired        = errors.New("is required")
	errMustBePositive  = errors.New("must be a positive number")
	errMustBePercent   = errors.New("must be between 0 and 100")
	errInvalidCycle    = errors.New("must be weekly or monthly")
	errInvalidStatus   = errors.New("must be safe, warning or over")
	errInvalidDate     = errors.New("must be a valid date in YYYY-MM-DD format")
	errInvalidDateTime = errors.New("must be a valid RFC3339 timestamp")
	errTooShort        = errors.New("is too short")
)

var customErrors = map[string]error{
	"SetLimitRequest.Category.required":              errRequired,
	"SetLimitRequest.LimitAmount.required":           errRequired,
	"SetLimitRequest.LimitAmount.gt":                 errMustBePositive,
	"SetLimitRequest.Cycle.required":                 errRequired,
	"SetLimitRequest.Cycle.oneof":                    errInvalidCycle,
	"LogSpendingRequest.Category.required":           errRequired,
	"LogSpendingRequest.AmountSpent.required":        errRequired,
	"LogSpendingRequest.AmountSpent.gt":              errMustBePositive,
	"LogSpendingRequest.Timestamp.datetime":          errInvalidDateTime,
	"UpsertReflectionRequest.WeekStartDate.required": errRequired,
	"UpsertReflectionRequest.WeekStartDate.datetime": errInvalidDate,
	"UpsertReflectionRequest.WeekEndDate.required":   errRequired,
	"UpsertReflectionRequest.WeekEndDate.datetime":   errInvalidDate,
	"UpsertReflectionRequest.OverallStatus.oneof":    errInvalidStatus,
	"ContributeRequest.Amount.required":              errRequired,
	"ContributeRequest.Amount.gt":                    errMustBePositive,
	"ContributeRequest.Date.datetime":                errInvalidDate,
	"UpdateProfileRequest.MonthlyIncome.required":    errRequired,
	"UpdateProfileRequest.MonthlyIncome.gt":          errMustBePositive,
	"UpdateProfileRequest.SavingsRate.lte":           errMustBePercent,
	"RegisterRequest.Username.min":                   errTooShort,
	"RegisterRequest.Password.min":                   errTooShort,
}

// CustomValidationError converts validator errors into a standardized list of
// field → message pairs.
func CustomValidationError(err error) []map[string]string {
	errList := make([]map[string]string, 0)

	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		for _, e := range validationErr {
			field := e.StructNamespace()
			key := field + "." + e.Tag()

			errMsg := fmt.Sprintf("%s is invalid", field)
			if v, ok := customErrors[key]; ok {
				errMsg = v.Error()
			}

			errList = append(errList, map[string]string{e.Field(): errMsg})
		}
	}
	return errList
}

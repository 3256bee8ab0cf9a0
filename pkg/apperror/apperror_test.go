package apperror

import (
	"errors"
	"testing"

	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/dto"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomValidationError_MappedMessages(t *testing.T) {
	v := validator.New()

	err := v.Struct(dto.SetLimitRequest{LimitAmount: -5, Cycle: "daily"})
	require.Error(t, err)

	errList := CustomValidationError(err)
	require.Len(t, errList, 3)

	messages := make(map[string]string)
	for _, item := range errList {
		for field, msg := range item {
			messages[field] = msg
		}
	}

	assert.Equal(t, "is required", messages["Category"])
	assert.Equal(t, "must be a positive number", messages["LimitAmount"])
	assert.Equal(t, "must be weekly or monthly", messages["Cycle"])
}

func TestCustomValidationError_UnmappedTagFallsBack(t *testing.T) {
	v := validator.New()

	err := v.Struct(dto.RegisterRequest{Username: "ab", Email: "not-an-email", Password: "longenough"})
	require.Error(t, err)

	errList := CustomValidationError(err)
	require.NotEmpty(t, errList)

	messages := make(map[string]string)
	for _, item := range errList {
		for field, msg := range item {
			messages[field] = msg
		}
	}

	assert.Equal(t, "is too short", messages["Username"])
	assert.Contains(t, messages["Email"], "is invalid")
}

func TestCustomValidationError_NonValidatorError(t *testing.T) {
	errList := CustomValidationError(errors.New("plain error"))
	assert.Empty(t, errList)
	assert.NotNil(t, errList, "handlers serialize this directly; must be an empty list, not null")
}

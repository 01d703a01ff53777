package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2024-06-01"))
	assert.False(t, IsValidDate("2024-13-01"))
	assert.False(t, IsValidDate("01-06-2024"))
	assert.False(t, IsValidDate(""))
}

func TestValidationErrors_ErrorAndToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "startDate", Message: "startDate is required"},
		{Field: "endDate", Message: "endDate must be a valid date"},
	}

	assert.Equal(t, "startDate: startDate is required; endDate: endDate must be a valid date", errs.Error())
	assert.Equal(t, map[string]string{
		"startDate": "startDate is required",
		"endDate":   "endDate must be a valid date",
	}, errs.ToMap())
}

package middleware

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupValidator(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	assert.NotNil(t, v)
}

func TestFormatValidationErrors(t *testing.T) {
	type upsertInput struct {
		CurrencyCode string `json:"currency_code" binding:"required,len=3"`
		Price        int64  `json:"price" binding:"gte=0"`
	}

	t.Run("reports each failed field", func(t *testing.T) {
		SetupValidator()

		err := binding.Validator.ValidateStruct(&upsertInput{CurrencyCode: "", Price: -1})
		require.Error(t, err)

		details := FormatValidationErrors(err)
		require.Len(t, details, 2)
		assert.Equal(t, "currency_code", details[0].Field)
		assert.Equal(t, "This field is required", details[0].Message)
		assert.Equal(t, "price", details[1].Field)
		assert.Equal(t, "Must be greater than or equal to 0", details[1].Message)
	})

	t.Run("length rule message names the expected length", func(t *testing.T) {
		SetupValidator()

		err := binding.Validator.ValidateStruct(&upsertInput{CurrencyCode: "US", Price: 100})
		require.Error(t, err)

		details := FormatValidationErrors(err)
		require.Len(t, details, 1)
		assert.Equal(t, "currency_code", details[0].Field)
		assert.Equal(t, "Must be exactly 3 characters", details[0].Message)
	})

	t.Run("non-validation errors yield no details", func(t *testing.T) {
		assert.Nil(t, FormatValidationErrors(errors.New("unexpected EOF")))
	})
}

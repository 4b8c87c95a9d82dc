package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestValidateRequired(t *testing.T) {
	t.Run("fails on empty string", func(t *testing.T) {
		err := validator.ValidateRequired("")
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrRequired)
		assert.Equal(t, "Required", err.Error())
	})

	t.Run("passes on any content", func(t *testing.T) {
		assert.NoError(t, validator.ValidateRequired("x"))
	})

	t.Run("whitespace counts as present", func(t *testing.T) {
		assert.NoError(t, validator.ValidateRequired("   "))
	})
}

func TestValidateEmail(t *testing.T) {
	t.Run("passes on valid address", func(t *testing.T) {
		assert.NoError(t, validator.ValidateEmail("a@b.co"))
	})

	t.Run("fails on malformed address", func(t *testing.T) {
		err := validator.ValidateEmail("not-an-email")
		assert.ErrorIs(t, err, validator.ErrInvalidEmail)
		assert.Equal(t, "Invalid email address", err.Error())
	})

	t.Run("fails on empty string", func(t *testing.T) {
		assert.ErrorIs(t, validator.ValidateEmail(""), validator.ErrInvalidEmail)
	})
}

func TestValidatePhone(t *testing.T) {
	t.Run("passes on complete number", func(t *testing.T) {
		assert.NoError(t, validator.ValidatePhone("(123) 456-7890"))
	})

	t.Run("passes on empty field", func(t *testing.T) {
		assert.NoError(t, validator.ValidatePhone(""))
	})

	t.Run("fails on partial number", func(t *testing.T) {
		err := validator.ValidatePhone("555-12")
		assert.ErrorIs(t, err, validator.ErrInvalidPhoneNumber)
		assert.Equal(t, "Invalid phone number", err.Error())
	})
}

func TestValidateZipCode(t *testing.T) {
	t.Run("passes on five digits", func(t *testing.T) {
		assert.NoError(t, validator.ValidateZipCode("12345"))
	})

	t.Run("passes on zip plus four", func(t *testing.T) {
		assert.NoError(t, validator.ValidateZipCode("12345-6789"))
	})

	t.Run("passes on empty field", func(t *testing.T) {
		assert.NoError(t, validator.ValidateZipCode(""))
	})

	t.Run("fails on short code", func(t *testing.T) {
		err := validator.ValidateZipCode("1234")
		assert.ErrorIs(t, err, validator.ErrInvalidZipCode)
		assert.Equal(t, "Invalid ZIP code", err.Error())
	})
}

func TestCombine(t *testing.T) {
	t.Run("first failing validator wins", func(t *testing.T) {
		check := validator.Combine(validator.ValidateRequired, validator.ValidateEmail)
		assert.ErrorIs(t, check(""), validator.ErrRequired)
	})

	t.Run("later validators still run", func(t *testing.T) {
		check := validator.Combine(validator.ValidateRequired, validator.ValidateEmail)
		assert.ErrorIs(t, check("not-an-email"), validator.ErrInvalidEmail)
	})

	t.Run("passes when every validator passes", func(t *testing.T) {
		check := validator.Combine(validator.ValidateRequired, validator.ValidateEmail)
		assert.NoError(t, check("a@b.co"))
	})

	t.Run("order encodes priority", func(t *testing.T) {
		reversed := validator.Combine(validator.ValidateEmail, validator.ValidateRequired)
		assert.ErrorIs(t, reversed(""), validator.ErrInvalidEmail)
	})

	t.Run("no validators means always valid", func(t *testing.T) {
		assert.NoError(t, validator.Combine()(""))
	})
}

package validator

import (
	"strings"
	"testing"

	domainerrors "userhub/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	FirstName string `json:"firstName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Gender    string `json:"gender" validate:"omitempty,oneof=male female"`
	Page      int    `query:"page" validate:"omitempty,gte=1"`
}

func TestCustomValidator_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&signup{FirstName: "Ann", Email: "ann@example.com", Password: "secret1", Gender: "female"})

	assert.NoError(t, err)
}

func TestCustomValidator_ReportsFieldsByTagName(t *testing.T) {
	v := New()

	err := v.Validate(&signup{Email: "nope", Password: "123", Gender: "other"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	details := appErr.Details()
	assert.Contains(t, details, "firstName is required")
	assert.Contains(t, details, "email must be a valid email address")
	assert.Contains(t, details, "password must be at least 6 characters")
	assert.Contains(t, details, "gender must be one of [male female]")
}

func TestCustomValidator_NonStruct(t *testing.T) {
	v := New()

	err := v.Validate("not a struct")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCustomValidator_ByteMaxCountsBytes(t *testing.T) {
	type credentials struct {
		Password string `json:"password" validate:"required,min=6,max=72,bytemax=72"`
	}
	v := New()

	// 40 runes, 80 bytes.
	multiByte := strings.Repeat("é", 40)
	err := v.Validate(&credentials{Password: multiByte})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "password must be at most 72 bytes", appErr.Details())

	assert.NoError(t, v.Validate(&credentials{Password: strings.Repeat("é", 36)}))
	assert.NoError(t, v.Validate(&credentials{Password: strings.Repeat("a", 72)}))
}

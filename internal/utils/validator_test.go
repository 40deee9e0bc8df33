// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type registerPayload struct {
	Name     string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,strong_password"`
}

func TestValidateStructOK(t *testing.T) {
	err := ValidateStruct(&registerPayload{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "Passw0rd",
	})
	assert.NoError(t, err)
}

func TestValidateStructCollectsErrors(t *testing.T) {
	err := ValidateStruct(&registerPayload{
		Name:  "",
		Email: "not-an-email",
	})
	assert.Error(t, err)

	fields := map[string]string{}
	for _, ve := range GetValidationErrors(err) {
		fields[ve.Field] = ve.Tag
	}

	assert.Equal(t, "required", fields["name"])
	assert.Equal(t, "email", fields["email"])
	assert.Equal(t, "required", fields["password"])
}

func TestStrongPassword(t *testing.T) {
	weak := []string{
		"short1A",       // too short
		"alllowercase1", // no uppercase
		"ALLUPPERCASE1", // no lowercase
		"NoDigitsHere",  // no number
	}
	for _, pw := range weak {
		err := ValidateStruct(&registerPayload{Name: "Jane", Email: "jane@example.com", Password: pw})
		assert.Error(t, err, pw)
	}

	err := ValidateStruct(&registerPayload{Name: "Jane", Email: "jane@example.com", Password: "Str0ngEnough"})
	assert.NoError(t, err)
}

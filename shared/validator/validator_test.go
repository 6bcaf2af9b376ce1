package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"safar/shared/failure"
	"safar/shared/validator"
)

type contactPayload struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

func TestValidate_OK(t *testing.T) {
	body := strings.NewReader(`{"name":"Aisha","email":"aisha@example.com","message":"hello"}`)

	payload := contactPayload{}
	err := validator.Validate(body, &payload)

	assert.NoError(t, err)
	assert.Equal(t, "Aisha", payload.Name)
}

func TestValidate_MissingRequiredField(t *testing.T) {
	body := strings.NewReader(`{"name":"Aisha","email":"aisha@example.com"}`)

	payload := contactPayload{}
	err := validator.Validate(body, &payload)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Contains(t, err.Error(), "Message")
}

func TestValidate_MalformedJSON(t *testing.T) {
	body := strings.NewReader(`{"name":`)

	payload := contactPayload{}
	err := validator.Validate(body, &payload)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("someone@example.com", "email"))
	assert.Error(t, validator.ValidateVar("not-an-email", "email"))
}

package dto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"safar/internal/domains/auth/model/dto"
	"safar/shared/validator"
)

func TestSignupRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name:    "complete body",
			payload: `{"email":"aisha@example.com","password":"s3cret-password","name":"Aisha Rahman"}`,
		},
		{
			name:    "missing name",
			payload: `{"email":"aisha@example.com","password":"s3cret-password"}`,
			wantErr: true,
		},
		{
			name:    "missing email",
			payload: `{"password":"s3cret-password","name":"Aisha Rahman"}`,
			wantErr: true,
		},
		{
			name:    "password too short",
			payload: `{"email":"aisha@example.com","password":"short","name":"Aisha Rahman"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.SignupRequest
			err := validator.Validate(strings.NewReader(tt.payload), &req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSignupRequest_ToUserModel(t *testing.T) {
	req := dto.SignupRequest{
		Email:    "aisha@example.com",
		Password: "s3cret-password",
		Name:     "Aisha Rahman",
	}

	user := req.ToUserModel("hashed")

	assert.Equal(t, "aisha@example.com", user.Email)
	assert.Equal(t, "hashed", user.Password)
	if assert.NotNil(t, user.FullName) {
		assert.Equal(t, "Aisha Rahman", *user.FullName)
	}
}

package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"safar/shared/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("s3cret-passw0rd")

	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-passw0rd", hash)
	assert.NoError(t, password.Verify("s3cret-passw0rd", hash))
}

func TestVerifyWrongPassword(t *testing.T) {
	hash, err := password.Hash("correct-horse")
	assert.NoError(t, err)

	err = password.Verify("battery-staple", hash)
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}

func TestHashEmptyPassword(t *testing.T) {
	_, err := password.Hash("")

	assert.Error(t, err)
}

func TestVerifyEmptyInputs(t *testing.T) {
	assert.ErrorIs(t, password.Verify("", "hash"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("pw", ""), password.ErrInvalidPassword)
}

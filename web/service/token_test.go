package service

import (
	"testing"

	"devfolio/config"
	"devfolio/database"
	"devfolio/database/model"

	"github.com/stretchr/testify/assert"
)

func TestTokenIssueAndValidate(t *testing.T) {
	setupTestDB(t)

	svc := TokenService{}

	token, err := svc.Issue(config.GetAdminUsername())
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	user, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, config.GetAdminUsername(), user.Username)
}

func TestTokenExpired(t *testing.T) {
	t.Setenv("TOKEN_MINUTES", "-1")
	setupTestDB(t)

	svc := TokenService{}

	token, err := svc.Issue(config.GetAdminUsername())
	assert.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenTamperedSignature(t *testing.T) {
	setupTestDB(t)

	svc := TokenService{}

	token, err := svc.Issue(config.GetAdminUsername())
	assert.NoError(t, err)

	_, err = svc.Validate(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenMissing(t *testing.T) {
	setupTestDB(t)

	svc := TokenService{}
	_, err := svc.Validate("")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestTokenForDeletedUser(t *testing.T) {
	setupTestDB(t)

	svc := TokenService{}

	token, err := svc.Issue(config.GetAdminUsername())
	assert.NoError(t, err)

	db := database.GetDB()
	err = db.Delete(&model.User{}, "username = ?", config.GetAdminUsername()).Error
	assert.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrUnknownSubject)
}

func TestTokenFromHeader(t *testing.T) {
	token, err := TokenFromHeader("Bearer abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = TokenFromHeader("")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = TokenFromHeader("Basic dXNlcjpwYXNz")
	assert.ErrorIs(t, err, ErrMissingToken)
}

package service

import (
	"testing"

	"devfolio/config"

	"github.com/stretchr/testify/assert"
)

func TestBootstrapAdminUser(t *testing.T) {
	setupTestDB(t)

	svc := UserService{}

	user, err := svc.GetUser(config.GetAdminUsername())
	assert.NoError(t, err)
	assert.Equal(t, config.GetAdminUsername(), user.Username)
	// Stored a bcrypt hash, not the configured plaintext.
	assert.NotEqual(t, config.GetAdminPassword(), user.Password)
}

func TestCheckUser(t *testing.T) {
	setupTestDB(t)

	svc := UserService{}

	user := svc.CheckUser(config.GetAdminUsername(), config.GetAdminPassword())
	assert.NotNil(t, user)

	assert.Nil(t, svc.CheckUser(config.GetAdminUsername(), "wrong-password"))
	assert.Nil(t, svc.CheckUser("nobody", config.GetAdminPassword()))
}

func TestUpdateFirstUser(t *testing.T) {
	setupTestDB(t)

	svc := UserService{}

	err := svc.UpdateFirstUser("owner", "secret-pass")
	assert.NoError(t, err)

	assert.NotNil(t, svc.CheckUser("owner", "secret-pass"))
	assert.Nil(t, svc.CheckUser(config.GetAdminUsername(), config.GetAdminPassword()))

	assert.Error(t, svc.UpdateFirstUser("", "x"))
	assert.Error(t, svc.UpdateFirstUser("x", ""))
}

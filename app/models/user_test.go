package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserValidate(t *testing.T) {
	user := User{Username: "jdoe", DisplayName: "Jane Doe"}
	assert.NoError(t, user.Validate())

	short := User{Username: "j"}
	assert.Error(t, short.Validate())

	empty := User{Username: "   "}
	assert.Error(t, empty.Validate())
}

func TestUserPassword(t *testing.T) {
	user := User{Username: "jdoe"}
	assert.NoError(t, user.SetPassword("s3cret"))
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "s3cret", user.PasswordHash)

	assert.True(t, user.CheckPassword("s3cret"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestUserDisplay(t *testing.T) {
	user := User{Username: "jdoe", DisplayName: "Jane Doe"}
	assert.Equal(t, "Jane Doe", user.Display())

	user.DisplayName = ""
	assert.Equal(t, "jdoe", user.Display())
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGravatarURL(t *testing.T) {
	// Known digest: trailing space and mixed case must not change it.
	assert.Equal(t,
		"https://www.gravatar.com/avatar/0bc83cb571cd1c50ba6f3e8a78ef1346?d=identicon",
		GravatarURL("MyEmailAddress@example.com "),
	)
	assert.Equal(t,
		GravatarURL("alice@example.com"),
		GravatarURL("  ALICE@EXAMPLE.COM"),
	)
}

func TestUserAvatarFallback(t *testing.T) {
	user := User{Email: "alice@example.com"}
	assert.Equal(t, GravatarURL("alice@example.com"), user.Avatar())

	user.AvatarPath = "https://cdn.example.com/alice.png"
	assert.Equal(t, "https://cdn.example.com/alice.png", user.Avatar())
}

func TestUserValidate(t *testing.T) {
	user := User{Username: "alice", Email: "alice@example.com", Password: "password123"}
	assert.Empty(t, user.Validate(""))

	user = User{Username: "alice", Email: "not-an-email", Password: "password123"}
	assert.Contains(t, user.Validate(""), "Invalid_email")

	user = User{Username: "alice", Email: "alice@example.com", Password: "123"}
	assert.Contains(t, user.Validate(""), "Invalid_password")

	user = User{Email: "alice@example.com"}
	assert.Contains(t, user.Validate("login"), "Required_password")
}

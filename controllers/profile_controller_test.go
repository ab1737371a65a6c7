package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newProfileRouter(server *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.Default()
	profile := r.Group("/profile")
	profile.GET("/:username", server.GetProfile)
	profile.Use(headerAuthForTests())
	profile.PATCH("/profile", server.UpdateProfile)
	return r
}

func TestGetProfile(t *testing.T) {
	server := newTestServer(t)
	r := newProfileRouter(server)

	alice := createTestUser(t, server, "alice", "alice@example.com")
	createTestPost(t, server, alice.ID, "hello")

	w := doJSON(t, r, http.MethodGet, "/profile/alice", nil, 0)
	assert.Equal(t, http.StatusOK, w.Code)
	body := parseResponse(t, w)
	profile := body["response"].(map[string]interface{})
	assert.Equal(t, "alice", profile["username"])
	// No stored avatar, so the gravatar fallback is served.
	assert.Contains(t, profile["avatar"], "gravatar.com/avatar/")
	assert.Len(t, profile["posts"].([]interface{}), 1)

	w = doJSON(t, r, http.MethodGet, "/profile/nosuchuser", nil, 0)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	server := newTestServer(t)
	r := newProfileRouter(server)

	alice := createTestUser(t, server, "alice", "alice@example.com")
	createTestUser(t, server, "bob", "bob@example.com")

	w := doJSON(t, r, http.MethodPatch, "/profile/profile", map[string]string{
		"username": "alice_updated",
	}, alice.ID)
	assert.Equal(t, http.StatusOK, w.Code)
	body := parseResponse(t, w)
	assert.Equal(t, "alice_updated", body["response"].(map[string]interface{})["username"])

	// Taking another user's username is a conflict.
	w = doJSON(t, r, http.MethodPatch, "/profile/profile", map[string]string{
		"username": "bob",
	}, alice.ID)
	assert.Equal(t, http.StatusConflict, w.Code)

	// An empty patch has nothing to apply.
	w = doJSON(t, r, http.MethodPatch, "/profile/profile", map[string]string{}, alice.ID)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// A stored avatar URL replaces the gravatar fallback.
	w = doJSON(t, r, http.MethodPatch, "/profile/profile", map[string]string{
		"avatar": "https://cdn.example.com/alice.png",
	}, alice.ID)
	assert.Equal(t, http.StatusOK, w.Code)
	body = parseResponse(t, w)
	assert.Equal(t, "https://cdn.example.com/alice.png", body["response"].(map[string]interface{})["avatar"])
}

package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/mlanda98/social-media/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newFollowRouter(server *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.Default()
	follow := r.Group("/follow")
	follow.Use(headerAuthForTests())
	follow.POST("/accept/:followId", server.AcceptFollow)
	follow.DELETE("/reject/:followId", server.RejectFollow)
	follow.DELETE("/unfollow/:userId", server.Unfollow)
	follow.GET("/followers", server.GetFollowers)
	follow.GET("/following", server.GetFollowing)
	follow.GET("/pending", server.GetPendingRequests)
	follow.GET("/count", server.GetFollowCounts)
	follow.GET("/suggested-user", server.GetSuggestedUsers)
	follow.POST("/:userId", server.RequestFollow)
	return r
}

func TestFollowLifecycle(t *testing.T) {
	server := newTestServer(t)
	r := newFollowRouter(server)

	alice := createTestUser(t, server, "alice", "alice@example.com")
	bob := createTestUser(t, server, "bob", "bob@example.com")
	carol := createTestUser(t, server, "carol", "carol@example.com")

	// Alice requests to follow Bob; the edge starts pending.
	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/follow/%d", bob.ID), nil, alice.ID)
	assert.Equal(t, http.StatusCreated, w.Code)
	body := parseResponse(t, w)
	edge := body["response"].(map[string]interface{})
	assert.Equal(t, models.FollowStatusPending, edge["status"])
	followID := uint(edge["id"].(float64))

	// A duplicate request is a conflict.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/follow/%d", bob.ID), nil, alice.ID)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Following yourself is rejected outright.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/follow/%d", alice.ID), nil, alice.ID)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Requests toward unknown users are a 404.
	w = doJSON(t, r, http.MethodPost, "/follow/9999", nil, alice.ID)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Only Bob may accept the request addressed to him.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/follow/accept/%d", followID), nil, carol.ID)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Bob sees the request in his pending list before deciding.
	w = doJSON(t, r, http.MethodGet, "/follow/pending", nil, bob.ID)
	assert.Equal(t, http.StatusOK, w.Code)
	body = parseResponse(t, w)
	pending := body["response"].([]interface{})
	assert.Len(t, pending, 1)

	// Bob accepts.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/follow/accept/%d", followID), nil, bob.ID)
	assert.Equal(t, http.StatusOK, w.Code)
	body = parseResponse(t, w)
	assert.Equal(t, models.FollowStatusAccepted, body["response"].(map[string]interface{})["status"])

	// Accepting twice is a conflict; accepted has no outgoing transition.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/follow/accept/%d", followID), nil, bob.ID)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Counts move by one on each side.
	w = doJSON(t, r, http.MethodGet, "/follow/count", nil, bob.ID)
	assert.Equal(t, http.StatusOK, w.Code)
	body = parseResponse(t, w)
	counts := body["response"].(map[string]interface{})
	assert.Equal(t, float64(1), counts["followers"])
	assert.Equal(t, float64(0), counts["following"])

	w = doJSON(t, r, http.MethodGet, "/follow/count", nil, alice.ID)
	body = parseResponse(t, w)
	counts = body["response"].(map[string]interface{})
	assert.Equal(t, float64(0), counts["followers"])
	assert.Equal(t, float64(1), counts["following"])

	// The edge shows up in both membership lists.
	w = doJSON(t, r, http.MethodGet, "/follow/followers", nil, bob.ID)
	body = parseResponse(t, w)
	followers := body["response"].([]interface{})
	assert.Len(t, followers, 1)
	follower := followers[0].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "alice", follower["username"])

	w = doJSON(t, r, http.MethodGet, "/follow/following", nil, alice.ID)
	body = parseResponse(t, w)
	following := body["response"].([]interface{})
	assert.Len(t, following, 1)
	followed := following[0].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "bob", followed["username"])

	// Unfollow removes only Alice's outgoing edge and zeroes the counts.
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/follow/unfollow/%d", bob.ID), nil, alice.ID)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/follow/count", nil, bob.ID)
	body = parseResponse(t, w)
	counts = body["response"].(map[string]interface{})
	assert.Equal(t, float64(0), counts["followers"])

	// Unfollowing a user you don't follow is a 404.
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/follow/unfollow/%d", bob.ID), nil, alice.ID)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRejectFollowRequest(t *testing.T) {
	server := newTestServer(t)
	r := newFollowRouter(server)

	alice := createTestUser(t, server, "alice", "alice@example.com")
	bob := createTestUser(t, server, "bob", "bob@example.com")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/follow/%d", alice.ID), nil, bob.ID)
	assert.Equal(t, http.StatusCreated, w.Code)
	body := parseResponse(t, w)
	followID := uint(body["response"].(map[string]interface{})["id"].(float64))

	// Only the followed user may reject.
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/follow/reject/%d", followID), nil, bob.ID)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Alice rejects; the edge is gone, not demoted.
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/follow/reject/%d", followID), nil, alice.ID)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/follow/pending", nil, alice.ID)
	body = parseResponse(t, w)
	assert.Len(t, body["response"].([]interface{}), 0)

	// Rejecting the same request again is a 404.
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/follow/reject/%d", followID), nil, alice.ID)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Bob may request again after the rejection.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/follow/%d", alice.ID), nil, bob.ID)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRejectAcceptedEdgeFails(t *testing.T) {
	server := newTestServer(t)
	r := newFollowRouter(server)

	alice := createTestUser(t, server, "alice", "alice@example.com")
	bob := createTestUser(t, server, "bob", "bob@example.com")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/follow/%d", bob.ID), nil, alice.ID)
	body := parseResponse(t, w)
	followID := uint(body["response"].(map[string]interface{})["id"].(float64))

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/follow/accept/%d", followID), nil, bob.ID)
	assert.Equal(t, http.StatusOK, w.Code)

	// An accepted edge only goes away via unfollow.
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/follow/reject/%d", followID), nil, bob.ID)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSuggestedUsersExcludesRelationships(t *testing.T) {
	server := newTestServer(t)
	r := newFollowRouter(server)

	alice := createTestUser(t, server, "alice", "alice@example.com")
	bob := createTestUser(t, server, "bob", "bob@example.com")
	carol := createTestUser(t, server, "carol", "carol@example.com")
	createTestUser(t, server, "dave", "dave@example.com")

	// Alice has an outgoing pending request to Bob and an incoming one
	// from Carol; both directions disqualify a suggestion.
	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/follow/%d", bob.ID), nil, alice.ID)
	assert.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/follow/%d", alice.ID), nil, carol.ID)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/follow/suggested-user", nil, alice.ID)
	assert.Equal(t, http.StatusOK, w.Code)
	body := parseResponse(t, w)
	suggestions := body["response"].([]interface{})
	assert.Len(t, suggestions, 1)
	assert.Equal(t, "dave", suggestions[0].(map[string]interface{})["username"])
}

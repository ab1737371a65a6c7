package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/mlanda98/social-media/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer builds a server backed by an in-memory SQLite database.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}

	server := &Server{DB: db}
	err = server.DB.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
		&models.Follow{},
		&models.ResetPassword{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return server
}

// authMiddlewareForTests pins the authenticated user to a fixed ID.
func authMiddlewareForTests(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

// headerAuthForTests reads the acting user from the X-Test-User header
// so one router can serve requests from several users.
func headerAuthForTests() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, err := strconv.ParseUint(c.GetHeader("X-Test-User"), 10, 32); err == nil && id > 0 {
			c.Set("userID", uint(id))
		}
		c.Next()
	}
}

func createTestUser(t *testing.T, server *Server, username, email string) *models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Email:    email,
		Password: "password123",
	}
	created, err := user.SaveUser(server.DB)
	if err != nil {
		t.Fatalf("Failed to create test user %s: %v", username, err)
	}
	return created
}

func createTestPost(t *testing.T, server *Server, userID uint, content string) *models.Post {
	t.Helper()

	post := models.Post{
		UserID:  userID,
		Content: content,
	}
	created, err := post.SavePost(server.DB)
	if err != nil {
		t.Fatalf("Failed to create test post: %v", err)
	}
	return created
}

// doJSON performs a request with an optional JSON body and optional
// acting user, and returns the recorded response.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, actingUser uint) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if actingUser > 0 {
		req.Header.Set("X-Test-User", strconv.FormatUint(uint64(actingUser), 10))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// parseResponse unmarshals the envelope body.
func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to parse response body %q: %v", w.Body.String(), err)
	}
	return body
}

package main

import (
	api "github.com/mlanda98/social-media"
)

// @title Social Media API
// @version 1.0
// @description API for users, posts, likes, comments, and the follow graph
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Provide a valid JWT as: Bearer <token>
func main() {
	api.Run()
}

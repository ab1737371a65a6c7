package controllers

import (
	"github.com/mlanda98/social-media/middlewares"
)

func (s *Server) initializeRoutes() {

	// Auth routes
	auth := s.Router.Group("/auth")
	{
		auth.POST("/register", middlewares.LoginRateLimitMiddleware(), s.Register)
		auth.POST("/login", middlewares.LoginRateLimitMiddleware(), s.Login)
		auth.POST("/password/forgot", middlewares.LoginRateLimitMiddleware(), s.ForgotPassword)
		auth.POST("/password/reset", middlewares.LoginRateLimitMiddleware(), s.ResetPassword)
	}

	// Follow routes (all authenticated)
	follow := s.Router.Group("/follow")
	follow.Use(middlewares.TokenAuthMiddleware(s.DB))
	{
		follow.POST("/accept/:followId", s.AcceptFollow)
		follow.DELETE("/reject/:followId", s.RejectFollow)
		follow.DELETE("/unfollow/:userId", s.Unfollow)
		follow.GET("/followers", s.GetFollowers)
		follow.GET("/following", s.GetFollowing)
		follow.GET("/pending", s.GetPendingRequests)
		follow.GET("/count", s.GetFollowCounts)
		follow.GET("/suggested-user", s.GetSuggestedUsers)
		// Keep last so it doesn't shadow the literal paths above.
		follow.POST("/:userId", s.RequestFollow)
	}

	// Post routes
	post := s.Router.Group("/post")
	{
		post.GET("/", s.GetPosts)
		post.GET("/user/:username", s.GetUserPosts)
		post.GET("/comments/:postId", s.GetPostComments)
		post.POST("/create", middlewares.TokenAuthMiddleware(s.DB), s.CreatePost)
		post.POST("/like/:postId", middlewares.TokenAuthMiddleware(s.DB), s.LikePost)
		post.POST("/comment/:postId", middlewares.TokenAuthMiddleware(s.DB), s.CreateComment)
		post.GET("/feed", middlewares.TokenAuthMiddleware(s.DB), s.GetFeed)
	}

	// Profile routes
	profile := s.Router.Group("/profile")
	{
		profile.PATCH("/profile", middlewares.TokenAuthMiddleware(s.DB), s.UpdateProfile)
		profile.PUT("/avatar", middlewares.TokenAuthMiddleware(s.DB), s.UpdateAvatar)
		profile.GET("/:username", s.GetProfile)
	}
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/mlanda98/social-media/models"
	httpctx "github.com/mlanda98/social-media/utils/httpctx"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreatePost godoc
// @Summary      Create a post
// @Description  Publish a new post as the authenticated user
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        post  body      PostCreateRequest  true  "Post payload"
// @Success      201   {object}  FeedPostDTO
// @Failure      422   {object}  map[string]string
// @Router       /post/create [post]
// @Security     BearerAuth
func (server *Server) CreatePost(c *gin.Context) {
	userID, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status": http.StatusUnauthorized,
			"error":  "Unauthorized",
		})
		return
	}

	var input PostCreateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  "Cannot unmarshal body",
		})
		return
	}

	post := models.Post{
		UserID:  userID,
		Content: input.Content,
	}
	post.Prepare()
	errorMessages := post.Validate()
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errorMessages,
		})
		return
	}

	created, err := post.SavePost(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error creating post",
		})
		return
	}

	// Reload with the author so the response matches the feed shape.
	full, err := post.FindPostByID(server.DB, created.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error loading post",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   http.StatusCreated,
		"response": postToFeedResponse(full),
	})
}

// GetPosts godoc
// @Summary      Global feed
// @Description  All posts, newest first, with authors, like counts and comments
// @Tags         posts
// @Produce      json
// @Success      200  {array}  FeedPostDTO
// @Router       /post/ [get]
func (server *Server) GetPosts(c *gin.Context) {
	post := models.Post{}
	posts, err := post.GlobalFeed(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error fetching posts",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": postsToFeedResponse(posts),
	})
}

// GetFeed godoc
// @Summary      Personal feed
// @Description  Posts by the authenticated user and the users they follow (accepted only)
// @Tags         posts
// @Produce      json
// @Success      200  {array}  FeedPostDTO
// @Router       /post/feed [get]
// @Security     BearerAuth
func (server *Server) GetFeed(c *gin.Context) {
	userID, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status": http.StatusUnauthorized,
			"error":  "Unauthorized",
		})
		return
	}

	follow := models.Follow{}
	authorIDs, err := follow.AcceptedFollowedIDs(server.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error resolving feed authors",
		})
		return
	}

	post := models.Post{}
	posts, err := post.PersonalFeed(server.DB, authorIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error fetching feed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": postsToFeedResponse(posts),
	})
}

// GetUserPosts godoc
// @Summary      Posts by user
// @Description  All posts authored by the named user, newest first
// @Tags         posts
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {array}   FeedPostDTO
// @Failure      404       {object}  map[string]string
// @Router       /post/user/{username} [get]
func (server *Server) GetUserPosts(c *gin.Context) {
	user := models.User{}
	found, err := user.FindUserByUsername(server.DB, c.Param("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, models.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status": http.StatusNotFound,
				"error":  "User not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error loading user",
		})
		return
	}

	post := models.Post{}
	posts, err := post.PostsByUser(server.DB, found.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error fetching posts",
		})
		return
	}

	follow := models.Follow{}
	counts, err := follow.CountRelationships(server.DB, found.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error counting relationships",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"response": gin.H{
			"posts":     postsToFeedResponse(posts),
			"followers": counts.Followers,
			"following": counts.Following,
		},
	})
}

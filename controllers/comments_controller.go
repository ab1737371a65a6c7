package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/mlanda98/social-media/models"
	httpctx "github.com/mlanda98/social-media/utils/httpctx"

	"github.com/gin-gonic/gin"
)

// CreateComment godoc
// @Summary      Comment on a post
// @Description  Add a comment to a post as the authenticated user
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        postId   path      int                   true  "Post ID"
// @Param        comment  body      CommentCreateRequest  true  "Comment payload"
// @Success      201      {object}  CommentDTO
// @Failure      404      {object}  map[string]string
// @Failure      422      {object}  map[string]string
// @Router       /post/comment/{postId} [post]
// @Security     BearerAuth
func (server *Server) CreateComment(c *gin.Context) {
	userID, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status": http.StatusUnauthorized,
			"error":  "Unauthorized",
		})
		return
	}

	postID, err := strconv.ParseUint(c.Param("postId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusBadRequest,
			"error":  "Invalid post ID",
		})
		return
	}

	var input CommentCreateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  "Cannot unmarshal body",
		})
		return
	}

	post := models.Post{}
	if _, err := post.FindPostByID(server.DB, uint(postID)); err != nil {
		if errors.Is(err, models.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status": http.StatusNotFound,
				"error":  "Post not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error loading post",
		})
		return
	}

	comment := models.Comment{
		UserID: userID,
		PostID: uint(postID),
		Body:   input.Content,
	}
	comment.Prepare()
	errorMessages := comment.Validate()
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errorMessages,
		})
		return
	}

	created, err := comment.SaveComment(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error creating comment",
		})
		return
	}

	// Attach the author so the response carries a username.
	user := models.User{}
	if author, err := user.FindUserByID(server.DB, userID); err == nil {
		created.Author = *author
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   http.StatusCreated,
		"response": commentToResponse(created),
	})
}

// GetPostComments godoc
// @Summary      List a post's comments
// @Description  All comments on a post, oldest first, with author usernames
// @Tags         comments
// @Produce      json
// @Param        postId  path      int  true  "Post ID"
// @Success      200     {array}   CommentDTO
// @Failure      404     {object}  map[string]string
// @Router       /post/comments/{postId} [get]
func (server *Server) GetPostComments(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("postId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusBadRequest,
			"error":  "Invalid post ID",
		})
		return
	}

	post := models.Post{}
	if _, err := post.FindPostByID(server.DB, uint(postID)); err != nil {
		if errors.Is(err, models.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status": http.StatusNotFound,
				"error":  "Post not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error loading post",
		})
		return
	}

	comment := models.Comment{}
	comments, err := comment.GetComments(server.DB, uint(postID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error fetching comments",
		})
		return
	}

	dtos := make([]CommentDTO, len(*comments))
	for i := range *comments {
		dtos[i] = commentToResponse(&(*comments)[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": dtos,
	})
}

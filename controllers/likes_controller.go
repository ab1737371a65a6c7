package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/mlanda98/social-media/models"
	"github.com/mlanda98/social-media/utils/formaterror"
	httpctx "github.com/mlanda98/social-media/utils/httpctx"

	"github.com/gin-gonic/gin"
)

// LikePost godoc
// @Summary      Like a post
// @Description  Like a post as the authenticated user; a post can be liked once
// @Tags         likes
// @Produce      json
// @Param        postId  path      int  true  "Post ID"
// @Success      201     {object}  map[string]interface{}
// @Failure      404     {object}  map[string]string
// @Failure      409     {object}  map[string]string
// @Router       /post/like/{postId} [post]
// @Security     BearerAuth
func (server *Server) LikePost(c *gin.Context) {
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

	like := models.Like{
		UserID: userID,
		PostID: uint(postID),
	}
	created, err := like.SaveLike(server.DB)
	if err != nil {
		if errors.Is(err, models.ErrAlreadyLiked) {
			c.JSON(http.StatusConflict, gin.H{
				"status": http.StatusConflict,
				"error":  "Post already liked",
			})
			return
		}
		formattedError := formaterror.FormatError(err.Error())
		c.JSON(http.StatusConflict, gin.H{
			"status": http.StatusConflict,
			"error":  formattedError,
		})
		return
	}

	likes, err := like.GetLikesInfo(server.DB, uint(postID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error counting likes",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": http.StatusCreated,
		"response": gin.H{
			"like":       created,
			"likesCount": len(*likes),
		},
	})
}

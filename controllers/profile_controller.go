package controllers

import (
	"errors"
	"net/http"

	"github.com/mlanda98/social-media/models"
	"github.com/mlanda98/social-media/utils/formaterror"
	httpctx "github.com/mlanda98/social-media/utils/httpctx"

	"github.com/gin-gonic/gin"
)

// GetProfile godoc
// @Summary      Public profile
// @Description  A user's public profile with their posts, newest first
// @Tags         profiles
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  ProfileDTO
// @Failure      404       {object}  map[string]string
// @Router       /profile/{username} [get]
func (server *Server) GetProfile(c *gin.Context) {
	user := models.User{}
	found, err := user.FindUserByUsername(server.DB, c.Param("username"))
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
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

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"response": ProfileDTO{
			ID:       found.ID,
			Username: found.Username,
			Avatar:   found.Avatar(),
			Posts:    postsToFeedResponse(posts),
		},
	})
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Description  Patch the authenticated user's username and/or avatar URL
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        profile  body      ProfileUpdateRequest  true  "Fields to update"
// @Success      200      {object}  UserDTO
// @Failure      409      {object}  map[string]string
// @Failure      422      {object}  map[string]string
// @Router       /profile/profile [patch]
// @Security     BearerAuth
func (server *Server) UpdateProfile(c *gin.Context) {
	userID, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status": http.StatusUnauthorized,
			"error":  "Unauthorized",
		})
		return
	}

	var input ProfileUpdateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  "Cannot unmarshal body",
		})
		return
	}

	user := models.User{
		Username:   input.Username,
		AvatarPath: input.Avatar,
	}
	errorMessages := user.Validate("update")
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errorMessages,
		})
		return
	}

	updated, err := user.UpdateProfile(server.DB, userID)
	if err != nil {
		formattedError := formaterror.FormatError(err.Error())
		c.JSON(http.StatusConflict, gin.H{
			"status": http.StatusConflict,
			"error":  formattedError,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": userToResponse(updated),
	})
}

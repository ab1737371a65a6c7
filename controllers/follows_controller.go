package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/mlanda98/social-media/cache"
	"github.com/mlanda98/social-media/models"
	httpctx "github.com/mlanda98/social-media/utils/httpctx"

	"github.com/gin-gonic/gin"
)

// followErrorStatus maps the follow state-machine errors onto HTTP
// statuses. Anything it doesn't know about is a server error.
func followErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrSelfFollow):
		return http.StatusBadRequest, "Cannot follow yourself"
	case errors.Is(err, models.ErrFollowExists):
		return http.StatusConflict, "Follow request already exists"
	case errors.Is(err, models.ErrFollowNotFound):
		return http.StatusNotFound, "Follow not found"
	case errors.Is(err, models.ErrNotFollowTarget):
		return http.StatusForbidden, "Only the followed user can act on this request"
	case errors.Is(err, models.ErrAlreadyAccepted):
		return http.StatusConflict, "Follow request already accepted"
	case errors.Is(err, models.ErrNotPending):
		return http.StatusBadRequest, "Follow request is not pending"
	case errors.Is(err, models.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	default:
		return http.StatusInternalServerError, "Error processing follow"
	}
}

// RequestFollow godoc
// @Summary      Request to follow a user
// @Description  Create a pending follow request toward another user
// @Tags         follows
// @Produce      json
// @Param        userId  path      int  true  "User ID to follow"
// @Success      201     {object}  FollowDTO
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Failure      409     {object}  map[string]string
// @Router       /follow/{userId} [post]
// @Security     BearerAuth
func (server *Server) RequestFollow(c *gin.Context) {
	requestorID, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status": http.StatusUnauthorized,
			"error":  "Unauthorized",
		})
		return
	}

	targetID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusBadRequest,
			"error":  "Invalid user ID",
		})
		return
	}

	target := models.User{}
	if _, err := target.FindUserByID(server.DB, uint(targetID)); err != nil {
		status, msg := followErrorStatus(err)
		c.JSON(status, gin.H{"status": status, "error": msg})
		return
	}

	follow := models.Follow{}
	created, err := follow.RequestFollow(server.DB, requestorID, uint(targetID))
	if err != nil {
		status, msg := followErrorStatus(err)
		c.JSON(status, gin.H{"status": status, "error": msg})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   http.StatusCreated,
		"response": followToResponse(created),
	})
}

// AcceptFollow godoc
// @Summary      Accept a follow request
// @Description  Accept a pending follow request addressed to the authenticated user
// @Tags         follows
// @Produce      json
// @Param        followId  path      int  true  "Follow request ID"
// @Success      200       {object}  FollowDTO
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Failure      409       {object}  map[string]string
// @Router       /follow/accept/{followId} [post]
// @Security     BearerAuth
func (server *Server) AcceptFollow(c *gin.Context) {
	userID, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status": http.StatusUnauthorized,
			"error":  "Unauthorized",
		})
		return
	}

	followID, err := strconv.ParseUint(c.Param("followId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusBadRequest,
			"error":  "Invalid follow ID",
		})
		return
	}

	follow := models.Follow{}
	accepted, err := follow.AcceptFollow(server.DB, uint(followID), userID)
	if err != nil {
		status, msg := followErrorStatus(err)
		c.JSON(status, gin.H{"status": status, "error": msg})
		return
	}

	cache.InvalidateFollowCounts(c.Request.Context(), accepted.FollowerID, accepted.FollowedID)

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": followToResponse(accepted),
	})
}

// RejectFollow godoc
// @Summary      Reject a follow request
// @Description  Delete a pending follow request addressed to the authenticated user
// @Tags         follows
// @Produce      json
// @Param        followId  path      int  true  "Follow request ID"
// @Success      200       {object}  map[string]string
// @Failure      400       {object}  map[string]string
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /follow/reject/{followId} [delete]
// @Security     BearerAuth
func (server *Server) RejectFollow(c *gin.Context) {
	userID, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status": http.StatusUnauthorized,
			"error":  "Unauthorized",
		})
		return
	}

	followID, err := strconv.ParseUint(c.Param("followId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusBadRequest,
			"error":  "Invalid follow ID",
		})
		return
	}

	follow := models.Follow{}
	if err := follow.RejectFollow(server.DB, uint(followID), userID); err != nil {
		status, msg := followErrorStatus(err)
		c.JSON(status, gin.H{"status": status, "error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": "Follow request rejected",
	})
}

// Unfollow godoc
// @Summary      Unfollow a user
// @Description  Remove the authenticated user's outgoing edge, pending or accepted
// @Tags         follows
// @Produce      json
// @Param        userId  path      int  true  "User ID to unfollow"
// @Success      200     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /follow/unfollow/{userId} [delete]
// @Security     BearerAuth
func (server *Server) Unfollow(c *gin.Context) {
	userID, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status": http.StatusUnauthorized,
			"error":  "Unauthorized",
		})
		return
	}

	targetID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusBadRequest,
			"error":  "Invalid user ID",
		})
		return
	}

	follow := models.Follow{}
	if err := follow.Unfollow(server.DB, userID, uint(targetID)); err != nil {
		status, msg := followErrorStatus(err)
		c.JSON(status, gin.H{"status": status, "error": msg})
		return
	}

	cache.InvalidateFollowCounts(c.Request.Context(), userID, uint(targetID))

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": "User unfollowed successfully",
	})
}

// GetFollowers godoc
// @Summary      List followers
// @Description  List accepted followers of the authenticated user
// @Tags         follows
// @Produce      json
// @Success      200  {array}  FollowEdgeDTO
// @Router       /follow/followers [get]
// @Security     BearerAuth
func (server *Server) GetFollowers(c *gin.Context) {
	userID, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status": http.StatusUnauthorized,
			"error":  "Unauthorized",
		})
		return
	}

	follow := models.Follow{}
	follows, err := follow.FollowersOf(server.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error fetching followers",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"response": followsToEdgeResponse(follows, func(f *models.Follow) *models.User {
			return &f.Follower
		}),
	})
}

// GetFollowing godoc
// @Summary      List following
// @Description  List users the authenticated user follows (accepted only)
// @Tags         follows
// @Produce      json
// @Success      200  {array}  FollowEdgeDTO
// @Router       /follow/following [get]
// @Security     BearerAuth
func (server *Server) GetFollowing(c *gin.Context) {
	userID, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status": http.StatusUnauthorized,
			"error":  "Unauthorized",
		})
		return
	}

	follow := models.Follow{}
	follows, err := follow.FollowingOf(server.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error fetching following",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"response": followsToEdgeResponse(follows, func(f *models.Follow) *models.User {
			return &f.Followed
		}),
	})
}

// GetPendingRequests godoc
// @Summary      List pending follow requests
// @Description  List incoming follow requests awaiting the authenticated user's decision
// @Tags         follows
// @Produce      json
// @Success      200  {array}  FollowEdgeDTO
// @Router       /follow/pending [get]
// @Security     BearerAuth
func (server *Server) GetPendingRequests(c *gin.Context) {
	userID, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status": http.StatusUnauthorized,
			"error":  "Unauthorized",
		})
		return
	}

	follow := models.Follow{}
	follows, err := follow.PendingFor(server.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error fetching pending requests",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"response": followsToEdgeResponse(follows, func(f *models.Follow) *models.User {
			return &f.Follower
		}),
	})
}

// GetFollowCounts godoc
// @Summary      Follow counts
// @Description  Accepted follower and following counts for the authenticated user
// @Tags         follows
// @Produce      json
// @Success      200  {object}  models.FollowCounts
// @Router       /follow/count [get]
// @Security     BearerAuth
func (server *Server) GetFollowCounts(c *gin.Context) {
	userID, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status": http.StatusUnauthorized,
			"error":  "Unauthorized",
		})
		return
	}

	ctx := c.Request.Context()

	var counts models.FollowCounts
	if cache.GetFollowCounts(ctx, userID, &counts) {
		c.JSON(http.StatusOK, gin.H{
			"status":   http.StatusOK,
			"response": counts,
		})
		return
	}

	follow := models.Follow{}
	fresh, err := follow.CountRelationships(server.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error counting relationships",
		})
		return
	}
	cache.SetFollowCounts(ctx, userID, fresh)

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": fresh,
	})
}

// GetSuggestedUsers godoc
// @Summary      Suggested users
// @Description  Users the authenticated user has no relationship with, in either direction
// @Tags         follows
// @Produce      json
// @Success      200  {array}  FollowUserDTO
// @Router       /follow/suggested-user [get]
// @Security     BearerAuth
func (server *Server) GetSuggestedUsers(c *gin.Context) {
	userID, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status": http.StatusUnauthorized,
			"error":  "Unauthorized",
		})
		return
	}

	follow := models.Follow{}
	users, err := follow.SuggestedUsers(server.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error fetching suggestions",
		})
		return
	}

	suggestions := make([]FollowUserDTO, len(*users))
	for i := range *users {
		suggestions[i] = userToFollowUser(&(*users)[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": suggestions,
	})
}

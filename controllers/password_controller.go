package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/mlanda98/social-media/mailer"
	"github.com/mlanda98/social-media/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ForgotPassword godoc
// @Summary      Request a password reset
// @Description  Send a reset link to the given email if an account exists
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        email  body      ForgotPasswordRequest  true  "Account email"
// @Success      200    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Failure      422    {object}  map[string]string
// @Router       /auth/password/forgot [post]
func (server *Server) ForgotPassword(c *gin.Context) {
	var input ForgotPasswordRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  "Cannot unmarshal body",
		})
		return
	}

	user := models.User{Email: input.Email}
	user.Prepare()
	errorMessages := user.Validate("forgotpassword")
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errorMessages,
		})
		return
	}

	err := server.DB.Model(models.User{}).Where("email = ?", user.Email).Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status": http.StatusNotFound,
				"error":  "No account with that email",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error loading user",
		})
		return
	}

	resetPassword := models.ResetPassword{Email: user.Email}
	resetPassword.Prepare()
	if errs := resetPassword.Validate(); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errs,
		})
		return
	}
	details, err := resetPassword.SaveDetails(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error creating reset token",
		})
		return
	}

	if err := mailer.SendResetPassword(user.Email, details.Token); err != nil {
		log.Printf("send reset mail: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error sending reset email",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": "Success, please check your email",
	})
}

// ResetPassword godoc
// @Summary      Reset password
// @Description  Set a new password using a reset token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        reset  body      ResetPasswordRequest  true  "Token and new password"
// @Success      200    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Failure      422    {object}  map[string]string
// @Router       /auth/password/reset [post]
func (server *Server) ResetPassword(c *gin.Context) {
	var input ResetPasswordRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  "Cannot unmarshal body",
		})
		return
	}

	if len(strings.TrimSpace(input.NewPassword)) < 6 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  "Password should be at least 6 characters",
		})
		return
	}

	resetPassword := models.ResetPassword{}
	err := server.DB.Where("token = ?", strings.TrimSpace(input.Token)).Take(&resetPassword).Error
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{
			"status": http.StatusForbidden,
			"error":  "Invalid or expired reset token",
		})
		return
	}

	user := models.User{Email: resetPassword.Email, Password: input.NewPassword}
	if err := user.UpdatePassword(server.DB); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Error updating password",
		})
		return
	}

	// Token is single use.
	if _, err := resetPassword.DeleteDetails(server.DB); err != nil {
		log.Printf("delete reset token: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": "Password updated, please log in",
	})
}

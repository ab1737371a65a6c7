package controllers

import (
	"net/http"
	"strings"

	"github.com/mlanda98/social-media/auth"
	"github.com/mlanda98/social-media/models"
	"github.com/mlanda98/social-media/security"
	"github.com/mlanda98/social-media/utils/formaterror"

	"github.com/gin-gonic/gin"
)

// Login godoc
// @Summary      Log in
// @Description  Authenticate with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Login payload"
// @Success      200          {object}  map[string]interface{}
// @Failure      422          {object}  map[string]string
// @Router       /auth/login [post]
func (server *Server) Login(c *gin.Context) {
	var input LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  "Cannot unmarshal body",
		})
		return
	}

	user := models.User{
		Email:    input.Email,
		Password: input.Password,
	}
	user.Prepare()
	errorMessages := user.Validate("login")
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errorMessages,
		})
		return
	}

	userData, err := server.SignIn(user.Email, user.Password)
	if err != nil {
		formattedError := formaterror.FormatError(err.Error())
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  formattedError,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": userData,
	})
}

// SignIn checks the credentials and mints a token for the user.
func (server *Server) SignIn(email, password string) (map[string]interface{}, error) {
	user := models.User{}

	normalizedEmail := strings.ToLower(email)
	err := server.DB.Model(models.User{}).Where("lower(email) = ?", normalizedEmail).Take(&user).Error
	if err != nil {
		return nil, err
	}
	// Any verification failure refuses the login, not just a mismatch:
	// a malformed stored hash must never mint a token.
	if err := security.VerifyPassword(user.Password, password); err != nil {
		return nil, err
	}
	token, err := auth.CreateToken(user.ID)
	if err != nil {
		return nil, err
	}

	userData := make(map[string]interface{})
	userData["token"] = token
	userData["id"] = user.PublicID
	userData["email"] = user.Email
	userData["username"] = user.Username
	userData["avatar"] = user.Avatar()

	return userData, nil
}

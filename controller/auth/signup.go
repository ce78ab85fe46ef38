package auth

import (
	"errors"
	"net"
	"net/http"
	"regexp"
	"strings"

	"codewithbuder/apperror"
	"codewithbuder/dto"
	"codewithbuder/services"

	"github.com/gin-gonic/gin"
)

func SignUpController(router *gin.Engine, provider *services.AuthProvider) {
	router.POST("/auth/signup", func(c *gin.Context) {
		Signup(c, provider)
	})
}

func Signup(c *gin.Context, provider *services.AuthProvider) {
	var request dto.SignupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := isValidEmail(request.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := provider.SignUp(c.Request.Context(), request.Email, request.Password, request.FirstName, request.LastName)
	if err != nil {
		if errors.Is(err, apperror.ErrAuthFailure) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	accessToken, err := provider.AccessToken(session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"uid":     session.SessionID,
		"token": gin.H{
			"accessToken": accessToken,
		},
	})
}

func isValidEmail(email string) error {
	const emailRegex = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	re := regexp.MustCompile(emailRegex)
	if !re.MatchString(email) {
		return errors.New("invalid email format")
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return errors.New("invalid email structure")
	}
	domain := parts[1]

	mxRecords, err := net.LookupMX(domain)
	if err != nil || len(mxRecords) == 0 {
		return errors.New("email domain does not have valid MX records")
	}

	return nil
}

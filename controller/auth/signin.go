package auth

import (
	"errors"
	"net/http"

	"codewithbuder/apperror"
	"codewithbuder/dto"
	"codewithbuder/services"

	"github.com/gin-gonic/gin"
)

func SignInController(router *gin.Engine, provider *services.AuthProvider) {
	router.POST("/auth/signin", func(c *gin.Context) {
		Signin(c, provider)
	})
}

func Signin(c *gin.Context, provider *services.AuthProvider) {
	var request dto.SigninRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := provider.SignIn(c.Request.Context(), request.Email, request.Password)
	if err != nil {
		if errors.Is(err, apperror.ErrAuthFailure) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
		return
	}

	accessToken, err := provider.AccessToken(session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login Successfully",
		"token": gin.H{
			"accessToken": accessToken,
		},
		"session": gin.H{
			"sessionId":    session.SessionID,
			"emailOrPhone": session.EmailOrPhone,
		},
	})
}

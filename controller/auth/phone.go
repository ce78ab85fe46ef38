package auth

import (
	"errors"
	"net/http"

	"codewithbuder/apperror"
	"codewithbuder/dto"
	"codewithbuder/services"

	"github.com/gin-gonic/gin"
)

func PhoneController(router *gin.Engine, provider *services.AuthProvider) {
	routes := router.Group("/auth/phone")
	{
		routes.POST("/start", func(c *gin.Context) {
			StartPhoneVerification(c, provider)
		})
		routes.POST("/verify", func(c *gin.Context) {
			VerifyPhone(c, provider)
		})
	}
}

func StartPhoneVerification(c *gin.Context, provider *services.AuthProvider) {
	var request dto.PhoneStartRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	pending, err := provider.StartPhoneVerification(c.Request.Context(), request.Phone, request.CaptchaToken)
	if err != nil {
		if errors.Is(err, apperror.ErrAuthFailure) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start phone verification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "OTP has been sent to your phone",
		"ref":     pending.Ref,
	})
}

func VerifyPhone(c *gin.Context, provider *services.AuthProvider) {
	var request dto.PhoneVerifyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	session, err := provider.ConfirmPhoneVerification(c.Request.Context(), request.Phone, request.Ref, request.OTP)
	if err != nil {
		if errors.Is(err, apperror.ErrAuthFailure) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify OTP"})
		return
	}

	accessToken, err := provider.AccessToken(session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Phone verified successfully",
		"uid":     session.SessionID,
		"token": gin.H{
			"accessToken": accessToken,
		},
	})
}

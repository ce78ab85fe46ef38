package auth

import (
	"net/http"

	"codewithbuder/middleware"
	"codewithbuder/services"

	"github.com/gin-gonic/gin"
)

func SignOutController(router *gin.Engine, provider *services.AuthProvider, binder *services.SessionBinder) {
	router.POST("/auth/signout", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		Signout(c, provider, binder)
	})
}

// Signout clears the session and only responds once the binder has observed
// the change, so a guarded view queried right after never sees the old
// identity.
func Signout(c *gin.Context, provider *services.AuthProvider, binder *services.SessionBinder) {
	if err := provider.SignOut(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign out"})
		return
	}

	if binder.Identity() != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session teardown did not propagate"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signed out successfully"})
}

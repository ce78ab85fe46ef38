package admin

import (
	"net/http"

	"codewithbuder/middleware"
	"codewithbuder/services"

	"github.com/gin-gonic/gin"
)

func DashboardController(router *gin.Engine, hub *services.Hub, binder *services.SessionBinder) {
	router.GET("/admin/dashboard", middleware.SessionGate(binder), func(c *gin.Context) {
		Dashboard(c, hub, binder)
	})
}

func Dashboard(c *gin.Context, hub *services.Hub, binder *services.SessionBinder) {
	identity := binder.Identity()

	fullName := "User"
	if identity != nil && identity.FullName != "" {
		fullName = identity.FullName
	}

	c.JSON(http.StatusOK, gin.H{
		"user":          fullName,
		"totalCourses":  hub.Courses.Len(),
		"totalBlogs":    hub.Blogs.Len(),
		"totalContacts": hub.Contacts.Len(),
	})
}

package course

import (
	"net/http"

	"codewithbuder/dto"
	"codewithbuder/middleware"
	"codewithbuder/services"

	"github.com/gin-gonic/gin"
)

func CourseController(router *gin.Engine, hub *services.Hub, gateway *services.WriteGateway) {
	router.GET("/courses", func(c *gin.Context) {
		ListCourses(c, hub)
	})
	router.POST("/course", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		CreateCourse(c, gateway)
	})
}

func ListCourses(c *gin.Context, hub *services.Hub) {
	response := gin.H{"courses": hub.Courses.Snapshot()}
	if hub.Courses.Err() != nil {
		// last-good data is still served; the flag tells the client it
		// may be stale
		response["stale"] = true
	}
	c.JSON(http.StatusOK, response)
}

func CreateCourse(c *gin.Context, gateway *services.WriteGateway) {
	var request dto.AddCourseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if fieldErrors := services.ValidateCourseForm(request); len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
		return
	}

	courseID, err := gateway.AddCourse(c.Request.Context(), request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create course"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Course created successfully",
		"courseId": courseID,
	})
}

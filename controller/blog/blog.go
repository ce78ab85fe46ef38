package blog

import (
	"net/http"
	"strings"

	"codewithbuder/dto"
	"codewithbuder/middleware"
	"codewithbuder/services"

	"github.com/gin-gonic/gin"
)

func BlogController(router *gin.Engine, hub *services.Hub, gateway *services.WriteGateway) {
	router.GET("/blogs", func(c *gin.Context) {
		ListBlogs(c, hub)
	})
	router.POST("/blog", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		CreateBlog(c, gateway)
	})
}

func ListBlogs(c *gin.Context, hub *services.Hub) {
	response := gin.H{"blogs": hub.Blogs.Snapshot()}
	if hub.Blogs.Err() != nil {
		response["stale"] = true
	}
	c.JSON(http.StatusOK, response)
}

func CreateBlog(c *gin.Context, gateway *services.WriteGateway) {
	var request dto.AddBlogRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	blogID, err := gateway.AddBlog(c.Request.Context(), request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create blog"})
		return
	}

	// ~200 words per minute, rounded up
	wordCount := len(strings.Fields(request.Content))
	readingTime := (wordCount + 199) / 200

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Blog created successfully",
		"blogId":      blogID,
		"readingTime": readingTime,
	})
}

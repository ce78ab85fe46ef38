package contact

import (
	"fmt"
	"net/http"

	"codewithbuder/dto"
	"codewithbuder/middleware"
	"codewithbuder/model"
	"codewithbuder/services"

	"github.com/gin-gonic/gin"
)

func ContactController(router *gin.Engine, hub *services.Hub, gateway *services.WriteGateway, binder *services.SessionBinder) {
	router.POST("/contact", func(c *gin.Context) {
		SubmitContact(c, gateway)
	})
	router.GET("/admin/contacts", middleware.SessionGate(binder), func(c *gin.Context) {
		ListContacts(c, hub)
	})
}

func SubmitContact(c *gin.Context, gateway *services.WriteGateway) {
	var request dto.ContactRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if fieldErrors := services.ValidateContactForm(request); len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
		return
	}

	messageID, err := gateway.AddContactMessage(c.Request.Context(), request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	// best-effort admin notification; the message itself is already stored
	go func(req dto.ContactRequest) {
		msg := model.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Subject: req.Subject,
			Message: req.Message,
		}
		if err := services.NotifyContactMessage(msg); err != nil {
			fmt.Printf("Warning: contact notification failed: %v\n", err)
		}
	}(request)

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Message sent successfully",
		"messageId": messageID,
	})
}

func ListContacts(c *gin.Context, hub *services.Hub) {
	response := gin.H{"contacts": hub.Contacts.Snapshot()}
	if hub.Contacts.Err() != nil {
		response["stale"] = true
	}
	c.JSON(http.StatusOK, response)
}

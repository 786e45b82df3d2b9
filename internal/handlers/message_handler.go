package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/greencityconnect/waste-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MessageHandler handles inbox and announcement HTTP requests
type MessageHandler struct {
	messageService *services.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

// GetInbox handles GET /inbox
func (h *MessageHandler) GetInbox(c *gin.Context) {
	userID, ok := currentSubjectID(c)
	if !ok {
		return
	}

	items, err := h.messageService.GetInbox(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get inbox: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetUnreadCount handles GET /inbox/unread-count
func (h *MessageHandler) GetUnreadCount(c *gin.Context) {
	userID, ok := currentSubjectID(c)
	if !ok {
		return
	}

	count, err := h.messageService.GetUnreadCount(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get unread count: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkRead handles POST /inbox/read
func (h *MessageHandler) MarkRead(c *gin.Context) {
	userID, ok := currentSubjectID(c)
	if !ok {
		return
	}

	if err := h.messageService.MarkMessagesAsRead(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark messages as read: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Messages marked as read"})
}

// SendMessage handles POST /admin/messages
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req struct {
		UserID string `json:"userId" binding:"required"`
		Text   string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	message, err := h.messageService.SendAdminMessage(c.Request.Context(), userID, req.Text)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

// CreateAnnouncement handles POST /admin/announcements
func (h *MessageHandler) CreateAnnouncement(c *gin.Context) {
	var req struct {
		Title   string `json:"title" binding:"required"`
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	announcement, err := h.messageService.CreateAnnouncement(c.Request.Context(), req.Title, req.Content)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, announcement)
}

// GetAnnouncements handles GET /admin/announcements
func (h *MessageHandler) GetAnnouncements(c *gin.Context) {
	announcements, err := h.messageService.GetAnnouncements(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get announcements: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, announcements)
}

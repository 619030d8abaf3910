package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nazmul-dev/campusmart/backend/internal/models"
	"github.com/nazmul-dev/campusmart/backend/internal/repositories"
	"github.com/nazmul-dev/campusmart/backend/internal/views"
	"gorm.io/gorm"
)

// ConversationHandler serves the derived conversation list and thread views
// and accepts new conversations/messages.
type ConversationHandler struct {
	engine                 *views.Engine
	conversationRepository repositories.ConversationRepository
	messageRepository      repositories.MessageRepository
	userRepository         repositories.UserRepository
}

// NewConversationHandler creates a new ConversationHandler
func NewConversationHandler(
	engine *views.Engine,
	convRepo repositories.ConversationRepository,
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
) *ConversationHandler {
	return &ConversationHandler{
		engine:                 engine,
		conversationRepository: convRepo,
		messageRepository:      messageRepo,
		userRepository:         userRepo,
	}
}

// RegisterConversationRoutes registers conversation routes
func (h *ConversationHandler) RegisterConversationRoutes(g *echo.Group) {
	g.GET("/conversations", h.GetConversationList)
	g.POST("/conversations", h.CreateConversation)
	g.GET("/conversations/:id/messages", h.GetConversationThread)
	g.POST("/conversations/:id/messages", h.SendMessage)
}

// GetConversationList returns the current user's derived conversation list
func (h *ConversationHandler) GetConversationList(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	list, err := h.engine.GetConversationList(c.Request().Context(), currentUserID)
	if err != nil {
		return viewHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"conversations": list},
	})
}

// CreateConversation opens (or reuses) the conversation between the current
// user and another user.
func (h *ConversationHandler) CreateConversation(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateConversationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.OtherUserID == currentUserID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot start a conversation with yourself")
	}

	if _, err := h.userRepository.GetUserByID(req.OtherUserID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	conversation, err := h.conversationRepository.GetOrCreateConversation(currentUserID, req.OtherUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": echo.Map{"conversation": conversation}})
}

// GetConversationThread returns the full thread of a conversation
func (h *ConversationHandler) GetConversationThread(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	thread, err := h.engine.GetConversationThread(c.Request().Context(), c.Param("id"), currentUserID)
	if err != nil {
		return viewHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"messages": thread},
	})
}

// SendMessage appends a message to a conversation the current user is part of
func (h *ConversationHandler) SendMessage(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	conversation, err := h.conversationRepository.GetConversationByID(c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Conversation not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if conversation.UserID1 != currentUserID && conversation.UserID2 != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Not a participant of this conversation")
	}

	message := &models.Message{
		ConversationID: conversation.ID,
		SenderID:       currentUserID,
		Content:        req.Content,
		SentAt:         time.Now(),
	}
	if err := h.messageRepository.CreateMessage(c.Request().Context(), message); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.conversationRepository.TouchLastMessage(conversation.ID, message.SentAt); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": echo.Map{"message": message}})
}

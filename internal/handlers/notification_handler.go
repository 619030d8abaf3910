package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nazmul-dev/campusmart/backend/internal/repositories"
	"github.com/nazmul-dev/campusmart/backend/internal/views"
)

// NotificationHandler serves the derived notification feed and read-state
// updates. The feed itself is assembled per request by the views engine.
type NotificationHandler struct {
	engine                 *views.Engine
	notificationRepository repositories.NotificationRepository
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(engine *views.Engine, notifRepo repositories.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{
		engine:                 engine,
		notificationRepository: notifRepo,
	}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotificationFeed)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.PUT("/notifications/:id/read", h.MarkAsRead)
	g.PUT("/notifications/read-all", h.MarkAllAsRead)
}

// GetNotificationFeed returns the current user's derived notification feed
func (h *NotificationHandler) GetNotificationFeed(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	feed, err := h.engine.GetNotificationFeed(c.Request().Context(), currentUserID)
	if err != nil {
		return viewHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"notifications": feed},
	})
}

// GetUnreadCount returns how many feed entries are unread
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	feed, err := h.engine.GetNotificationFeed(c.Request().Context(), currentUserID)
	if err != nil {
		return viewHTTPError(err)
	}

	count := 0
	for _, n := range feed {
		if !n.IsRead {
			count++
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"count": count}})
}

// MarkAsRead marks a notification as read
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	notifID := c.Param("id")
	if notifID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid notification ID")
	}

	if err := h.notificationRepository.MarkAsRead(notifID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"success": true}})
}

// MarkAllAsRead marks every entry of the current user's feed as read
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	feed, err := h.engine.GetNotificationFeed(c.Request().Context(), currentUserID)
	if err != nil {
		return viewHTTPError(err)
	}

	ids := make([]string, len(feed))
	for i, n := range feed {
		ids[i] = n.ID
	}
	if err := h.notificationRepository.MarkAllRead(ids); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"success": true}})
}

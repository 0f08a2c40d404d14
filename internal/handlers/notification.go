package handlers

import (
	"net/http"

	"github.com/vedp205/chronos-home/internal/auth"
	dom "github.com/vedp205/chronos-home/internal/domain"
	"github.com/vedp205/chronos-home/internal/dto"
	"github.com/vedp205/chronos-home/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	svc *service.NotificationService
}

func NewNotificationHandler(svc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List godoc
// @Summary      List unread due-soon notifications
// @Tags         notifications
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ListNotificationsResponse
// @Failure      500  {object}  map[string]string
// @Router       /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	list, err := h.svc.ListUnread(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notifications"})
		return
	}
	out := make([]dto.NotificationResponse, len(list))
	for i := range list {
		out[i] = notificationToResponse(list[i])
	}
	c.JSON(http.StatusOK, dto.ListNotificationsResponse{Items: out})
}

// MarkAllRead godoc
// @Summary      Mark all notifications as read
// @Tags         notifications
// @Security     CookieAuth
// @Success      204
// @Failure      500  {object}  map[string]string
// @Router       /notifications/read [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	if err := h.svc.MarkAllRead(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark notifications read"})
		return
	}
	c.Status(http.StatusNoContent)
}

func notificationToResponse(n dom.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        n.ID,
		TodoID:    n.TodoID,
		Title:     n.Title,
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
	}
}

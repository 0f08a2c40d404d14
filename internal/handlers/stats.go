package handlers

import (
	"net/http"

	"github.com/vedp205/chronos-home/internal/auth"
	"github.com/vedp205/chronos-home/internal/dto"
	"github.com/vedp205/chronos-home/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	svc *service.StatsService
}

func NewStatsHandler(svc *service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// Get godoc
// @Summary      Dashboard counters for the current user
// @Tags         stats
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.StatsResponse
// @Failure      500  {object}  map[string]string
// @Router       /stats [get]
func (h *StatsHandler) Get(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	s, err := h.svc.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, dto.StatsResponse{
		Projects:       s.Projects,
		ActiveProjects: s.ActiveProjects,
		Credentials:    s.Credentials,
		Notes:          s.Notes,
		MediaFiles:     s.MediaFiles,
		Todos:          s.Todos,
		ActiveTodos:    s.ActiveTodos,
		CompletedTodos: s.CompletedTodos,
		DueSoonTodos:   s.DueSoonTodos,
	})
}

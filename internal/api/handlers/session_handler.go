package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/procureflow/backend-go/internal/api/middleware"
	"github.com/procureflow/backend-go/internal/domain"
)

// SessionHandler exposes the navigation controller: current view,
// role-gated navigation and breadcrumbs.
type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

func (h *SessionHandler) View(c *gin.Context) {
	s := middleware.CurrentSession(c)

	c.JSON(http.StatusOK, s.Nav.View())
}

type navigateRequest struct {
	Screen string            `json:"screen" binding:"required"`
	Params map[string]string `json:"params"`
}

func (h *SessionHandler) Navigate(c *gin.Context) {
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "screen is required")
		return
	}

	screen, ok := domain.ParseScreen(req.Screen)
	if !ok {
		badRequest(c, "unknown screen")
		return
	}

	s := middleware.CurrentSession(c)
	if err := s.Nav.Navigate(screen, req.Params); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, s.Nav.View())
}

func (h *SessionHandler) Breadcrumbs(c *gin.Context) {
	s := middleware.CurrentSession(c)

	c.JSON(http.StatusOK, s.Nav.Breadcrumbs())
}

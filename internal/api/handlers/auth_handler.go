package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/procureflow/backend-go/internal/domain"
	"github.com/procureflow/backend-go/internal/session"
	"github.com/procureflow/backend-go/internal/store"
	"github.com/rs/zerolog/log"
)

type AuthHandler struct {
	store    *store.Store
	sessions *session.Manager
}

func NewAuthHandler(s *store.Store, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{store: s, sessions: sessions}
}

type loginRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// Login opens a demo session for a seeded user, picked by id or by role.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid login payload")
		return
	}

	var (
		user domain.User
		err  error
	)
	switch {
	case req.UserID != "":
		user, err = h.store.UserByID(req.UserID)
	case req.Role != "":
		role, ok := domain.ParseRole(req.Role)
		if !ok {
			badRequest(c, "unknown role")
			return
		}
		user, err = h.store.UserByRole(role)
	default:
		badRequest(c, "user_id or role is required")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}

	s := h.sessions.Login(user)
	log.Info().Str("user", user.Name).Str("role", string(user.Role)).Msg("session opened")

	c.JSON(http.StatusOK, gin.H{"token": s.Token, "user": user})
}

// Logout invalidates the bearer token; afterwards every screen is denied
// until a new login.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		badRequest(c, "missing session token")
		return
	}

	h.sessions.Logout(token)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Users lists the seeded demo identities for the login screen.
func (h *AuthHandler) Users(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Users())
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samridhisinghh987188/saas-contract-dashboard/middleware"
	"github.com/samridhisinghh987188/saas-contract-dashboard/service"
)

type AuthHandler struct {
	sessions *service.SessionManager
}

func NewAuthHandler(sessions *service.SessionManager) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	ExpiresAt string `json:"expires_at"`
}

// Login handles user login. There is no password and no credential
// check: any non-empty username gets a session. This mirrors the mock
// client and is a documented gap, not an oversight.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required"})
		return
	}

	user, err := h.sessions.Login(req.Username)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required"})
		return
	}

	expiresAt := ""
	if claims, err := service.DecodeToken(user.Token); err == nil && claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Format("2006-01-02T15:04:05Z07:00")
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:     user.Token,
		Username:  user.Username,
		ExpiresAt: expiresAt,
	})
}

// Logout clears the persisted session. The client is expected to
// navigate back to the login view on 200.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetCurrentUser returns the identity decoded from the request token.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"username": middleware.GetUsername(c),
		"role":     middleware.GetRole(c),
	})
}

// GetSession reports the server-side session state, including whether
// the initial restore is still running.
func (h *AuthHandler) GetSession(c *gin.Context) {
	resp := gin.H{"is_loading": h.sessions.IsLoading()}
	if user := h.sessions.Current(); user != nil {
		resp["authenticated"] = true
		resp["username"] = user.Username
	} else {
		resp["authenticated"] = false
	}
	c.JSON(http.StatusOK, resp)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thrashered1/SmartSaveAI/internal/errors"
	"github.com/thrashered1/SmartSaveAI/internal/middleware"
	"github.com/thrashered1/SmartSaveAI/internal/models"
	"github.com/thrashered1/SmartSaveAI/internal/services"
)

// AuthResponse is the login and register reply: a signed token plus the
// user it belongs to.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// AuthHandler serves registration and login.
type AuthHandler struct {
	users services.UserServicer
	audit services.AuditServicer
}

func NewAuthHandler(users services.UserServicer, audit services.AuditServicer) *AuthHandler {
	return &AuthHandler{users: users, audit: audit}
}

// Register godoc
// @Summary Register a new user
// @Description Creates an account and returns a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body services.RegisterRequest true "Registration payload"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, errors.Wrap(errors.ErrInvalidInput, err))
		return
	}

	user, err := h.users.Register(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		respondWithError(c, errors.Wrap(errors.ErrInternalServer, err))
		return
	}

	h.audit.Log(c.Request.Context(), user.ID, "register", "user", user.ID, c.ClientIP(), nil)
	c.JSON(http.StatusCreated, AuthResponse{Token: token, User: user})
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and returns a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body services.LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} map[string]interface{}
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, errors.Wrap(errors.ErrInvalidInput, err))
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		respondWithError(c, errors.Wrap(errors.ErrInternalServer, err))
		return
	}

	h.audit.Log(c.Request.Context(), user.ID, "login", "user", user.ID, c.ClientIP(), nil)
	c.JSON(http.StatusOK, AuthResponse{Token: token, User: user})
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sanuatmasai/Product-Recommendation/internal/service"
)

// AuthHandler handles registration and login endpoints.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler.
// Parameters:
//   - authService: auth service instance.
// Returns:
//   - *AuthHandler: initialized handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// Register handles POST /register.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"detail": "Invalid request: " + err.Error(),
		})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{
				"detail": "Username already registered",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": "Registration failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, userResponse{ID: user.ID, Username: user.Username})
}

type loginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Login handles POST /login with a form-encoded body (OAuth2 password style).
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"detail": "Invalid request: " + err.Error(),
		})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"detail": "Incorrect username or password",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": "Login failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, token)
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-auth-backend/internal/application"
	"github.com/oksasatya/go-auth-backend/internal/interface/middleware"
	"github.com/oksasatya/go-auth-backend/pkg/response"
	"github.com/oksasatya/go-auth-backend/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.Service, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

// credentialsRequest covers signup and login. Fields must be present and
// non-empty; format is not enforced beyond that.
type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userRef struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email and password are required", validation.ToDetails(err))
		return
	}

	sum, err := h.Svc.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Error(c, http.StatusBadRequest, "User already exists", nil)
			return
		}
		h.Logger.WithError(err).WithField("email", req.Email).Error("registration failed")
		response.Error(c, http.StatusInternalServerError, "Error during registration", nil)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    userRef{ID: sum.ID, Email: sum.Email},
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email and password are required", validation.ToDetails(err))
		return
	}

	token, exp, sum, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Invalid credentials", nil)
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Error(c, http.StatusInternalServerError, "Error during login", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"user":       userRef{ID: sum.ID, Email: sum.Email},
		"message":    "Login successful",
		"expires_at": exp,
	})
}

// Protected handles GET /protected-resource. The Auth middleware has
// already verified the token; this resolves the subject.
func (h *AuthHandler) Protected(c *gin.Context) {
	sum, err := h.Svc.GetIdentity(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.identityError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Hello %s, you are accessing a protected endpoint!", sum.Email),
		"user":    sum,
	})
}

// ValidateToken handles GET /validate-token. Any failure — absent or
// malformed token, bad signature, expired, unresolved subject — collapses
// to 401 {valid:false}; the endpoint exists for clients to probe token state.
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	sum, err := h.Svc.Validate(c.Request.Context(), middleware.BearerToken(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"user":  sum,
	})
}

// ResetUsers handles DELETE /admin/users. Mounted behind the admin guard.
func (h *AuthHandler) ResetUsers(c *gin.Context) {
	n, err := h.Svc.ResetAll(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("reset failed")
		response.Error(c, http.StatusInternalServerError, "Error during reset", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "All users deleted",
		"deleted": n,
	})
}

// Hello handles GET /hello, a connectivity check for the front end.
func (h *AuthHandler) Hello(c *gin.Context) {
	response.Message(c, http.StatusOK, "Hello! I'm a message that came from the backend")
}

func (h *AuthHandler) identityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "User not found", nil)
	case errors.Is(err, application.ErrUserInactive):
		response.Error(c, http.StatusUnauthorized, "User inactive", nil)
	default:
		h.Logger.WithError(err).Error("identity lookup failed")
		response.Error(c, http.StatusInternalServerError, "Error accessing protected endpoint", nil)
	}
}

package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-auth-backend/internal/interface/http"
	"github.com/oksasatya/go-auth-backend/internal/interface/middleware"
	"github.com/oksasatya/go-auth-backend/pkg/helpers"
)

// AuthModule wires the auth handlers into routes.
// Public: POST /api/signup, POST /api/login, GET /api/hello
// Protected: GET /api/protected-resource, GET /api/validate-token
// Admin: DELETE /api/admin/users
type AuthModule struct {
	Handler    *handlers.AuthHandler
	JWT        *helpers.JWTManager
	AdminToken string
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager, adminToken string) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt, AdminToken: adminToken}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/hello", m.Handler.Hello)
	rg.POST("/signup", m.Handler.Signup)
	rg.POST("/login", m.Handler.Login)
	// validates the bearer token itself, so it stays outside the Auth group
	rg.GET("/validate-token", m.Handler.ValidateToken)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/protected-resource", m.Handler.Protected)
	}

	admin := rg.Group("/admin")
	admin.Use(middleware.AdminAuth(m.AdminToken))
	{
		admin.DELETE("/users", m.Handler.ResetUsers)
	}
}

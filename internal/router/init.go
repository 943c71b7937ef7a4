package router

import (
	"github.com/oksasatya/go-auth-backend/internal/application"
	"github.com/oksasatya/go-auth-backend/internal/container"
	"github.com/oksasatya/go-auth-backend/internal/infrastructure/rediscache"
	handlers "github.com/oksasatya/go-auth-backend/internal/interface/http"
	"github.com/oksasatya/go-auth-backend/internal/router/modules"
)

func buildAuthModule() *modules.AuthModule {
	var cache application.IdentityCache
	if rdb := container.GetRedis(); rdb != nil {
		cache = rediscache.New(rdb, container.GetLogger())
	}

	service := application.NewService(
		container.GetUserRepo(),
		container.GetJWT(),
		cache,
		container.GetLogger(),
	)

	handler := handlers.NewAuthHandler(service, container.GetLogger())

	return modules.NewAuthModule(handler, container.GetJWT(), container.GetConfig().AdminToken)
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	r.Add(buildAuthModule())
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}

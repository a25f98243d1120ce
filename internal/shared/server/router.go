package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "registration-backend/internal/auth"
	"registration-backend/internal/evaluation"
	"registration-backend/internal/registrations"
	"registration-backend/internal/shared/config"
	"registration-backend/internal/shared/metrics"
	"registration-backend/internal/shared/server/middleware"
	"registration-backend/internal/shared/server/respond"
	"registration-backend/internal/users"
)

// RouterDeps carries the handlers the router wires up. Dependencies are
// built in bootstrap; the router only attaches them.
type RouterDeps struct {
	Config              config.Config
	RegistrationHandler *registrations.Handler
	EvaluationHandler   *evaluation.Handler
	UserHandler         *users.Handler
	GoogleAuth          *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"SUBMIT": {Rate: 1, Burst: 5},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && strings.HasSuffix(c.Request.URL.Path, "/submit") {
					return "SUBMIT"
				}
				return ""
			},
		}),
	)

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(api)
	}
	if deps.RegistrationHandler != nil {
		deps.RegistrationHandler.RegisterRoutes(api)
	}
	if deps.EvaluationHandler != nil {
		deps.EvaluationHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

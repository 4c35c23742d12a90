package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Footy64/api/internal/domain"
	"github.com/Footy64/api/internal/service"
)

// TokenVerifier checks a bearer token and returns the authenticated
// user id and email.
type TokenVerifier interface {
	Verify(tokenString string) (int64, string, error)
}

type Handler struct {
	services *service.Services
	tokens   TokenVerifier
	logger   *slog.Logger
}

func NewHandler(services *service.Services, tokens TokenVerifier, logger *slog.Logger) *Handler {
	return &Handler{
		services: services,
		tokens:   tokens,
		logger:   logger,
	}
}

func (h *Handler) InitRoutes(allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	config := cors.DefaultConfig()
	config.AllowMethods = []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	if containsWildcard(allowedOrigins) {
		config.AllowAllOrigins = true
		config.AllowCredentials = false
	} else {
		config.AllowOrigins = allowedOrigins
	}
	router.Use(cors.New(config))

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	teams := api.Group("/teams", h.requireAuth())
	{
		teams.POST("", h.CreateTeam)
		teams.GET("", h.ListTeams)
		teams.POST("/:teamId/members", h.AddTeamMember)
		teams.DELETE("/:teamId/members/:memberId", h.RemoveTeamMember)
	}

	matches := api.Group("/matches", h.requireAuth())
	{
		matches.POST("", h.CreateMatch)
		matches.GET("", h.ListMatches)
		matches.PATCH("/:matchId/score", h.UpdateScore)
	}

	users := api.Group("/users", h.requireAuth())
	{
		users.GET("/search", h.SearchUsers)
	}

	return router
}

func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func (h *Handler) errorResponse(c *gin.Context, status int, code, message string) {
	h.logger.Error("handler error", "code", code, "message", message, "status", status)
	c.JSON(status, domain.ErrorResponse{
		Error: domain.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

func (h *Handler) successResponse(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Package server exposes the site's REST API: the partner directory with
// on-demand geocoding, and CRUD for notices and calendar events.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jbnu-feel/feelgeo/internal/partners"
	"github.com/jbnu-feel/feelgeo/internal/repository"
	"github.com/jbnu-feel/feelgeo/internal/service"
)

// genericErrorMessage is shown when a failure carries no user-readable
// message, mirroring the fallback text of the original frontend.
const genericErrorMessage = "요청에 실패했습니다."

// Pinger reports backend connectivity for the health check.
// Satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the dependencies of the HTTP layer.
type Server struct {
	log      *slog.Logger
	catalog  *partners.Catalog
	resolver *service.Resolver
	repo     repository.Interface
	pinger   Pinger
}

// NewServer creates a Server with the given collaborators.
func NewServer(
	log *slog.Logger,
	catalog *partners.Catalog,
	resolver *service.Resolver,
	repo repository.Interface,
	pinger Pinger,
) *Server {
	return &Server{
		log:      log,
		catalog:  catalog,
		resolver: resolver,
		repo:     repo,
		pinger:   pinger,
	}
}

// Router builds the gin engine with all routes registered. The metrics
// handler is injected so the Prometheus registry stays owned by main.
func (s *Server) Router(metricsHandler http.Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", s.handleHealthz)
	router.GET("/metrics", gin.WrapH(metricsHandler))

	api := router.Group("/api")
	{
		api.GET("/partners", s.handleListPartners)
		api.GET("/partners/categories", s.handlePartnerCategories)
		api.GET("/partners/:id", s.handleGetPartner)
		api.GET("/partners/:id/location", s.handlePartnerLocation)
		api.POST("/geocode", s.handleGeocode)

		api.GET("/notices", s.handleListNotices)
		api.GET("/notices/pinned", s.handlePinnedNotices)
		api.GET("/notices/:id", s.handleGetNotice)
		api.POST("/notices", s.handleCreateNotice)
		api.PUT("/notices/:id", s.handleUpdateNotice)
		api.DELETE("/notices/:id", s.handleDeleteNotice)
		api.PUT("/notices/:id/pin", s.handlePinNotice)

		api.GET("/calendar/events", s.handleListEvents)
		api.GET("/calendar/events/all", s.handleAllEvents)
		api.GET("/calendar/events/:id", s.handleGetEvent)
		api.POST("/calendar/events", s.handleCreateEvent)
		api.PUT("/calendar/events/:id", s.handleUpdateEvent)
		api.DELETE("/calendar/events/:id", s.handleDeleteEvent)
	}

	return router
}

// handleHealthz reports liveness and database connectivity.
func (s *Server) handleHealthz(c *gin.Context) {
	if s.pinger != nil {
		if err := s.pinger.Ping(c.Request.Context()); err != nil {
			s.log.ErrorContext(c.Request.Context(), "Health check DB ping failed", "error", err)
			c.String(http.StatusServiceUnavailable, "DB ping failed")
			return
		}
	}
	c.String(http.StatusOK, "OK")
}

// errorJSON writes the standard {"message": ...} error payload.
func errorJSON(c *gin.Context, status int, message string) {
	if message == "" {
		message = genericErrorMessage
	}
	c.JSON(status, gin.H{"message": message})
}

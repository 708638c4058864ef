package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eappleew/Chat-Cheappt/internal/config"
	"github.com/eappleew/Chat-Cheappt/internal/infrastructure"
	middleware "github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/middlewares"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/routes"
)

type HTTPServer struct {
	engine   *gin.Engine
	infra    *infrastructure.Infrastructure
	apiRoute *routes.APIRoute
	config   *config.Config
}

func NewHttpServer(
	apiRoute *routes.APIRoute,
	infra *infrastructure.Infrastructure,
	cfg *config.Config,
) *HTTPServer {
	gin.SetMode(gin.ReleaseMode)
	server := HTTPServer{
		gin.New(),
		infra,
		apiRoute,
		cfg,
	}
	server.engine.Use(middleware.RequestID())
	server.engine.Use(middleware.TracingMiddleware(cfg.ServiceName))
	server.engine.Use(middleware.LoggingMiddleware(infra.Logger))
	server.engine.Use(middleware.MetricsMiddleware())
	server.engine.Use(middleware.CORSMiddleware())

	server.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	server.engine.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	// Generated image assets are served straight from the storage directory.
	server.engine.Static("/generated", cfg.ImageStoragePath)

	return &server
}

func (httpServer *HTTPServer) Run() error {
	httpServer.apiRoute.RegisterRouter(httpServer.engine)

	if err := httpServer.engine.Run(fmt.Sprintf(":%d", httpServer.config.HTTPPort)); err != nil {
		return err
	}
	return nil
}

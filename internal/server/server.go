package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"festfusion/config"
	"festfusion/internal/handler"
	"festfusion/internal/middleware"
	"festfusion/internal/redis"
	"festfusion/internal/transport/httpdto"
	"festfusion/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	Submissions *handler.SubmissionHandler
	Districts   *handler.DistrictHandler
	Admin       *handler.AdminHandler
}

func New(cfg *config.Config, l *logger.Logger) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.AppPort),
			Handler: engine,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}
}

func (s *Server) SetupRoutes(handlers *Handlers, limiter *redis.RateLimiter) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.CORSMiddleware())
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	s.engine.Use(middleware.ErrorHandler(s.logger))

	s.engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"message": "pong"}))
	})

	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"status": "healthy"}))
	})

	// Archived local files are served for human reference, mirroring the
	// folder-per-district layout.
	s.engine.Static("/uploads", s.config.UploadDir)

	v1 := s.engine.Group("/v1")
	{
		v1.GET("/districts", handlers.Districts.List)

		subs := v1.Group("/submissions")
		if limiter != nil {
			subs.Use(middleware.SubmissionRateLimitMiddleware(limiter))
		}
		{
			subs.POST("", handlers.Submissions.Create)
			subs.GET("/:id", handlers.Submissions.GetByID)
			subs.PUT("/:id/summaries", handlers.Submissions.EditSummaries)
			subs.POST("/:id/confirm", handlers.Submissions.Confirm)
		}

		admin := v1.Group("/admin", middleware.AdminAuthMiddleware(s.config.AdminJWTSecret))
		if limiter != nil {
			admin.Use(middleware.AdminRateLimitMiddleware(limiter))
		}
		{
			admin.GET("/diagnostics", handlers.Admin.Status)
			admin.POST("/diagnostics/sheet", handlers.Admin.CheckSheet)
		}
	}
}

func (s *Server) Start() error {
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Errorf("Error in starting the server: %s", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	if s.logger != nil {
		s.logger.Infof("Server is running on :%s", s.config.AppPort)
	}

	<-quit

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		if s.logger != nil {
			s.logger.Infof("Error in the graceful shutdown of the server: %s", err)
		}
		return err
	}

	if s.logger != nil {
		s.logger.Infof("Server stopped gracefully")
	}

	return nil
}

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vishnukant5129/AI-vs-Real-Image/internal/config"
	"github.com/vishnukant5129/AI-vs-Real-Image/internal/handler"
	"github.com/vishnukant5129/AI-vs-Real-Image/internal/repository"
	"github.com/vishnukant5129/AI-vs-Real-Image/internal/service"
)

type Server struct {
	httpServer *http.Server
	cfg        *config.Config
	log        *zap.Logger
}

func New(cfg *config.Config, log *zap.Logger) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	store, err := repository.NewS3RecordStore(&cfg.S3, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create record store: %w", err)
	}

	analysisService := service.NewAnalysisService(store, cfg, log)

	h := handler.NewHandler(analysisService, log)

	router.GET("/health", h.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/analyze", h.AnalyzeImage)
		api.GET("/history", h.GetHistory)
	}

	server := &Server{
		httpServer: &http.Server{
			Addr:           cfg.Server.Host + ":" + cfg.Server.Port,
			Handler:        router,
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   30 * time.Second,
			MaxHeaderBytes: 1 << 20, // 1 MB
		},
		cfg: cfg,
		log: log,
	}

	log.Info("Server created successfully",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port))

	return server, nil
}

func (s *Server) Run() error {
	s.log.Info("Server is running",
		zap.String("address", s.httpServer.Addr))

	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down server")
	return s.httpServer.Shutdown(ctx)
}

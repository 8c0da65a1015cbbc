package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Cirillio/DonationApp/internal/config"
	"github.com/Cirillio/DonationApp/pkg/e"
)

type Server struct {
	logger *slog.Logger
	server *http.Server
	cfg    *config.Config
}

func NewServer(ctx context.Context, config *config.Config, logger *slog.Logger, donations DonationService, renderer Renderer) *Server {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.Http.Port),
		Handler: InitRouter(ctx, config, logger, donations, renderer),
	}

	return &Server{
		logger: logger,
		server: server,
		cfg:    config,
	}
}

func InitRouter(ctx context.Context, cfg *config.Config, logger *slog.Logger, donations DonationService, renderer Renderer) *gin.Engine {
	r := gin.Default()

	h := NewHandler(logger, donations, renderer)
	docsURL := ginSwagger.URL("http://localhost:8080/swagger/doc.json")
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:8080"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true

	r.Use(cors.New(corsConfig))

	r.GET("/", h.ShowHomepage)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, docsURL))

	donation := r.Group("/donation", SessionMiddleware(cfg.Session.CookieName))
	{
		donation.GET("", h.GetDonation)
		donation.PUT("/blank", h.UpdateBlank)
		donation.PUT("/payment", h.UpdatePayment)
		donation.DELETE("/errors/:form/:field", h.ClearFieldError)
		donation.POST("/next", h.NextStep)
		donation.POST("/prev", h.PrevStep)
		donation.POST("/step/:n", h.GoToStep)
		donation.POST("/submit", h.Submit)
		donation.POST("/payment-result", h.PaymentResult)
		donation.POST("/reset", h.Reset)
		donation.GET("/leave", h.CheckUnsaved)
		donation.POST("/leave", h.RequestLeave)
		donation.POST("/leave/confirm", h.ConfirmLeave)
		donation.POST("/leave/cancel", h.CancelLeave)
	}

	return r
}

func (s *Server) Run(ctx context.Context) error {
	errResult := make(chan error, 1)
	go func() {
		s.logger.Info("starting listening", slog.String("address", s.server.Addr))
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errResult <- fmt.Errorf("http server failed: %w", err)
		} else if err == http.ErrServerClosed {
			s.logger.Info("HTTP server stopped gracefully")
			errResult <- nil
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down server due to context cancellation")
		if err := s.Stop(); err != nil {
			return e.Wrap("failed to stop HttpServer gracefully", err)
		}
		return ctx.Err()
	case err := <-errResult:
		return err
	}
}

func (s *Server) Stop() error {
	shutDownCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	err := s.server.Shutdown(shutDownCtx)
	s.logger.Info("Shutting down HTTP server")
	if err != nil {
		s.logger.Error("failed to shutdown HTTP Server", slog.String("error", err.Error()))
		return err
	}
	s.logger.Info("HTTP server shut down successfully")
	return nil
}

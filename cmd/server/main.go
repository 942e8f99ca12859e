package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"brigadas_admin_go/config"
	"brigadas_admin_go/db"
	"brigadas_admin_go/handlers"
	"brigadas_admin_go/logger"
	"brigadas_admin_go/middleware"
	"brigadas_admin_go/models"
	"brigadas_admin_go/services"
	"brigadas_admin_go/services/i18n"
	"brigadas_admin_go/services/jobs"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, warnings := config.Load()

	log := logger.Must(cfg.Environment, cfg.LogLevel)
	defer log.Sync() //nolint:errcheck
	zap.ReplaceGlobals(log)

	for _, w := range warnings {
		log.Warn("configuration", zap.String("warning", w))
	}

	if err := i18n.Load(); err != nil {
		log.Fatal("failed to load translations", zap.Error(err))
	}

	// Initialize database
	if err := db.Initialize(db.Options{
		Path:        cfg.DBPath,
		TursoURL:    cfg.TursoDatabaseURL,
		TursoToken:  cfg.TursoAuthToken,
		Environment: cfg.Environment,
	}); err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(&models.WizardDraft{}, &models.AuditLog{}, &models.ReportArchive{}); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	services.InitializeAPI(cfg, log)
	services.InitializeStorage(cfg)
	if cfg.AuthEnabled() {
		services.InitSecurityMonitor(cfg)
	}

	scheduler, err := jobs.StartScheduler(cfg, jobs.Deps{
		DB:      db.DB,
		Drafts:  services.NewDraftStore(db.DB, cfg.DraftTTL),
		Backend: services.API,
		Storage: services.Storage,
	})
	if err != nil {
		log.Fatal("failed to start scheduler", zap.Error(err))
	}

	e := newServer(cfg, log)

	go func() {
		log.Info("server starting", zap.String("port", cfg.ServerPort), zap.String("api", cfg.APIBaseURL))
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	<-scheduler.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
}

func newServer(cfg *config.Config, log *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				log.Warn("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			log.Info("request", fields...)
			return nil
		},
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})
	e.Use(middleware.CSPNonce())
	e.Use(middleware.Locale(cfg))
	e.Use(middleware.AdminAuth(cfg))
	e.Use(middleware.AuditContext())
	e.Use(middleware.CSRF(cfg))
	e.Use(middleware.CSRFToContext())

	// Archived reports on local disk
	if _, ok := services.Storage.(*services.LocalStorage); ok && !filepath.IsAbs(cfg.ReportsDir) {
		e.Static("/"+filepath.ToSlash(filepath.Clean(cfg.ReportsDir)), cfg.ReportsDir)
	}

	e.GET("/healthz", handlers.HealthzHandler)
	e.GET("/", handlers.DashboardHandler)

	writes := middleware.FormSubmitRateLimiter.Middleware()
	exports := middleware.ExportRateLimiter.Middleware()

	brigadas := e.Group("/brigadas")
	{
		brigadas.GET("", handlers.ListBrigadasHandler)

		// Simple editor
		brigadas.GET("/nueva", handlers.NewBrigadaPageHandler)
		brigadas.POST("/nueva", handlers.CreateBrigadaHandler, writes)
		brigadas.GET("/editar/:id", handlers.EditBrigadaPageHandler)
		brigadas.POST("/editar/:id", handlers.UpdateBrigadaHandler, writes)

		// Complete wizard
		brigadas.GET("/completa", handlers.WizardStartHandler)
		brigadas.GET("/editar-completa/:id", handlers.WizardEditHandler)
		brigadas.POST("/wizard/next", handlers.WizardNextHandler)
		brigadas.POST("/wizard/back", handlers.WizardBackHandler)
		brigadas.POST("/wizard/rows/add", handlers.WizardAddRowHandler)
		brigadas.POST("/wizard/rows/remove", handlers.WizardRemoveRowHandler)
		brigadas.POST("/wizard/submit", handlers.WizardSubmitHandler, writes)

		brigadas.GET("/:id", handlers.BrigadaDetailHandler)
		brigadas.GET("/:id/eliminar", handlers.DeleteBrigadaPageHandler)
		brigadas.POST("/:id/eliminar", handlers.DeleteBrigadaHandler, writes)
		brigadas.GET("/:id/export.pdf", handlers.ExportBrigadaPDFHandler, exports)
	}

	e.GET("/reportes/brigadas.xlsx", handlers.ExportInventoryHandler, exports)

	e.Any("/*", handlers.FallbackHandler)

	return e
}

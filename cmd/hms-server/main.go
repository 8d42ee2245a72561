package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/carebridge/hms/internal/config"
	"github.com/carebridge/hms/internal/domain/bed"
	"github.com/carebridge/hms/internal/domain/billing"
	"github.com/carebridge/hms/internal/domain/clinical"
	"github.com/carebridge/hms/internal/domain/encounter"
	"github.com/carebridge/hms/internal/domain/frontdesk"
	"github.com/carebridge/hms/internal/domain/hr"
	"github.com/carebridge/hms/internal/domain/immunization"
	"github.com/carebridge/hms/internal/domain/mortality"
	"github.com/carebridge/hms/internal/domain/patient"
	"github.com/carebridge/hms/internal/domain/pharmacy"
	"github.com/carebridge/hms/internal/domain/radiology"
	"github.com/carebridge/hms/internal/domain/scheduling"
	"github.com/carebridge/hms/internal/platform/middleware"
	"github.com/carebridge/hms/internal/platform/refdata"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hms-server",
		Short: "Hospital administration API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

// seedCmd dumps the built-in seed data as JSON, the same records every
// console starts from on boot.
func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Print the seed data loaded at startup",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed := map[string]interface{}{
				"patients":       patient.Seed(),
				"appointments":   scheduling.Seed(),
				"beds":           bed.Seed(),
				"invoices":       billing.Seed(),
				"medicines":      pharmacy.SeedMedicines(),
				"purchases":      pharmacy.SeedPurchases(),
				"radiology":      radiology.SeedTests(),
				"radiology_cats": radiology.SeedCategories(),
				"diagnoses":      clinical.Seed(),
				"opd_visits":     encounter.SeedOPD(),
				"ipd_admissions": encounter.SeedIPD(),
				"visitors":       frontdesk.SeedVisitors(),
				"calls":          frontdesk.SeedCalls(),
				"vaccinations":   immunization.Seed(),
				"death_records":  mortality.Seed(),
				"staff":          hr.Seed(),
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(seed)
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RequestTimeout(30 * time.Second))
	e.Use(middleware.BodyLimit(1 << 20))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	apiV1 := e.Group("/api/v1")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// Reference data
	refdata.NewHandler().RegisterRoutes(apiV1)

	// Entity consoles. Each store is seeded fresh at startup and owned by
	// exactly one service; state lives for the life of the process.
	patient.NewHandler(patient.NewService(patient.NewStore())).RegisterRoutes(apiV1)
	scheduling.NewHandler(scheduling.NewService(scheduling.NewStore())).RegisterRoutes(apiV1)
	bed.NewHandler(bed.NewService(bed.NewStore(), cfg.BedCapacityDisplay)).RegisterRoutes(apiV1)
	billing.NewHandler(billing.NewService(billing.NewStore(), time.Duration(cfg.PrintDelayMS)*time.Millisecond)).RegisterRoutes(apiV1)
	pharmacy.NewHandler(pharmacy.NewService(pharmacy.NewMedicineStore(), pharmacy.NewPurchaseStore())).RegisterRoutes(apiV1)
	radiology.NewHandler(radiology.NewService(radiology.NewTestStore(), radiology.NewCategoryStore())).RegisterRoutes(apiV1)
	clinical.NewHandler(clinical.NewService(clinical.NewStore())).RegisterRoutes(apiV1)
	encounter.NewHandler(encounter.NewService(encounter.NewOPDStore(), encounter.NewIPDStore())).RegisterRoutes(apiV1)
	frontdesk.NewHandler(frontdesk.NewService(frontdesk.NewVisitorStore(), frontdesk.NewCallStore())).RegisterRoutes(apiV1)
	immunization.NewHandler(immunization.NewService(immunization.NewStore())).RegisterRoutes(apiV1)
	mortality.NewHandler(mortality.NewService(mortality.NewStore())).RegisterRoutes(apiV1)
	hr.NewHandler(hr.NewService(hr.NewStore())).RegisterRoutes(apiV1)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}

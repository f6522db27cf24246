package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/prioritycare/pretriage/internal/config"
	"github.com/prioritycare/pretriage/internal/domain/catalog"
	"github.com/prioritycare/pretriage/internal/domain/classify"
	"github.com/prioritycare/pretriage/internal/domain/flow"
	"github.com/prioritycare/pretriage/internal/domain/patient"
	"github.com/prioritycare/pretriage/internal/domain/reporting"
	"github.com/prioritycare/pretriage/internal/domain/triage"
	"github.com/prioritycare/pretriage/internal/platform/auth"
	"github.com/prioritycare/pretriage/internal/platform/db"
	"github.com/prioritycare/pretriage/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "triage-server",
		Short: "Pre-triage decision API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the pre-triage API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	// migrate up
	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	// migrate status
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	// migrate down - keep as warning
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Rollback last migration (not supported)",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("WARNING: migrate down is destructive and not supported by the built-in runner.")
			fmt.Println("Roll forward with a new migration instead.")
			return nil
		},
	})

	return cmd
}

// patientContextSource is what the triage wiring needs from the patient
// service: age and sex for a registered patient.
type patientContextSource interface {
	Context(ctx context.Context, id uuid.UUID) (flow.PatientContext, error)
}

// patientDirectory adapts the patient service to triage.PatientDirectory,
// translating the patient package's not-found error so the triage service
// never imports the patient package.
type patientDirectory struct {
	patients patientContextSource
}

func (d patientDirectory) Context(ctx context.Context, id uuid.UUID) (flow.PatientContext, error) {
	pc, err := d.patients.Context(ctx, id)
	if errors.Is(err, patient.ErrNotFound) {
		return flow.PatientContext{}, triage.ErrPatientNotFound
	}
	return pc, err
}

// publicRoutes lists the unauthenticated surface: the kiosk intake
// endpoints and the health probes. Everything else requires a bearer
// token outside development. Keys are "METHOD route-pattern" as echo
// registers them.
var publicRoutes = map[string]bool{
	"POST /api/v1/triage/sessions":    true,
	"POST /api/v1/triage/answers":     true,
	"GET /api/v1/triage/sessions/:id": true,
	"GET /api/v1/questions":           true,
	"GET /api/v1/questions/:code":     true,
	"GET /healthz":                    true,
	"GET /healthz/db":                 true,
}

func isPublicRoute(c echo.Context) bool {
	return publicRoutes[c.Request().Method+" "+c.Path()]
}

// parseLogLevel maps the configured level name to a zerolog level,
// defaulting to info for unknown values.
func parseLogLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func runServer() error {
	// Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Logger
	logger := zerolog.New(os.Stdout).Level(parseLogLevel(cfg.LogLevel)).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).Level(parseLogLevel(cfg.LogLevel)).With().Timestamp().Logger()
	}

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	// Database
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	// Question catalog, flow graph and classification rules. These fail
	// only on inconsistent built-in data, so a panic at startup is right.
	questions := catalog.Default()
	nav, err := flow.NewNavigator(questions, flow.DefaultGraph())
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid question flow graph")
	}
	engine, err := classify.NewEngine(classify.DefaultRules())
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid classification rules")
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
	e.Use(middleware.SanitizeWithLogger(logger))
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.RequestTimeout(30 * time.Second))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Auth middleware. Kiosk intake routes and health probes stay open;
	// the staff surfaces behind RequireRole need the bearer token.
	if cfg.IsDev() {
		e.Use(auth.DevAuthMiddleware())
	} else {
		e.Use(auth.JWTMiddleware(auth.JWTConfig{
			SigningKey: []byte(cfg.JWTSecret),
			Skipper:    isPublicRoute,
		}))
	}

	// Audit middleware
	e.Use(middleware.Audit(logger))

	// API group
	apiV1 := e.Group("/api/v1")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	// Health checks
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/healthz/db", db.HealthHandler(pool))

	// -- Register domain handlers --

	txRunner := func(ctx context.Context, fn func(ctx context.Context) error) error {
		return db.WithTx(ctx, pool, fn)
	}

	// Patient domain
	patientRepo := patient.NewRepoPG(pool)
	patientSvc := patient.NewService(patientRepo)
	patientHandler := patient.NewHandler(patientSvc)
	patientHandler.RegisterRoutes(apiV1)

	// Triage domain
	sessionRepo := triage.NewSessionRepoPG(pool)
	answerRepo := triage.NewAnswerRepoPG(pool)
	triageSvc := triage.NewService(
		sessionRepo,
		answerRepo,
		patientDirectory{patients: patientSvc},
		questions,
		nav,
		engine,
		txRunner,
		logger,
	)
	triageHandler := triage.NewHandler(triageSvc, questions)
	triageHandler.RegisterRoutes(apiV1)

	// Reporting domain
	reportRepo := reporting.NewRepoPG(pool)
	reportSvc := reporting.NewService(reportRepo)
	reportHandler := reporting.NewHandler(reportSvc)
	reportHandler.RegisterRoutes(apiV1)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		var serveErr error
		if cfg.TLSEnabled {
			serveErr = e.StartTLS(addr, cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			serveErr = e.Start(addr)
		}
		if serveErr != nil && serveErr != http.ErrServerClosed {
			logger.Fatal().Err(serveErr).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}

package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "duewatch/docs"
	"duewatch/internal/config"
	"duewatch/internal/database"
	"duewatch/internal/monitor"
	"duewatch/internal/notification"
	"duewatch/internal/obligation"
	"duewatch/internal/report"
	"duewatch/internal/scheduler"
	"duewatch/pkg/currency"
	mw "duewatch/pkg/middleware"
)

//	@title			DueWatch API
//	@version		1.0
//	@description	Obligation monitoring, due-date alerts and aging/forecast reports.
//	@BasePath		/api/v1

func main() {
	// Load .env file
	dotenvErr := godotenv.Load()

	// Load configuration
	cfg := config.Load()

	log := newLogger(cfg.LogLevel)
	if dotenvErr != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	log.Info().Msg("Connected to database")

	money, err := currency.New(cfg.Locale, cfg.CurrencyUnit)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid currency configuration")
	}

	// Obligation read side
	obligationRepo := obligation.NewRepository(db)

	// Notification feature
	notificationRepo := notification.NewRepository(db)
	notificationService := notification.NewService(notificationRepo)
	notificationHandler := notification.NewHandler(notificationService)

	// Monitoring engine
	emitter := monitor.NewEmitter(obligationRepo, notificationRepo, money, cfg.ScanConcurrency, log)
	monitorHandler := monitor.NewHandler(emitter)
	scanJob := monitor.NewScanJob(emitter, obligationRepo, log)

	// Reports
	reportService := report.NewService(obligationRepo)
	reportHandler := report.NewHandler(reportService)

	// Periodic scan
	sched := scheduler.New(log)
	if err := sched.AddInterval(cfg.ScanInterval, scanJob); err != nil {
		log.Fatal().Err(err).Msg("Failed to register scan job")
	}
	sched.Start()
	defer sched.Stop()

	if cfg.ScanOnStart {
		go func() {
			if err := sched.RunNow(scanJob); err != nil {
				log.Error().Err(err).Msg("Startup scan failed")
			}
		}()
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(mw.TenantMiddleware)

		r.Mount("/notifications", notificationHandler.Routes())
		r.Mount("/monitor", monitorHandler.Routes())
		r.Mount("/reports", reportHandler.Routes())
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down")
	server.Close()
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

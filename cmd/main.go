package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	adminLoginHandler "github.com/palmblack/PalmBlack-BookingService/internal/api/handlers/admin_login"
	adminLogoutHandler "github.com/palmblack/PalmBlack-BookingService/internal/api/handlers/admin_logout"
	cancelAppointmentHandler "github.com/palmblack/PalmBlack-BookingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/palmblack/PalmBlack-BookingService/internal/api/handlers/create_appointment"
	getAppointmentStatsHandler "github.com/palmblack/PalmBlack-BookingService/internal/api/handlers/get_appointment_stats"
	getAppointmentsHandler "github.com/palmblack/PalmBlack-BookingService/internal/api/handlers/get_appointments"
	getAvailabilityHandler "github.com/palmblack/PalmBlack-BookingService/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/palmblack/PalmBlack-BookingService/internal/api/handlers/get_available_slots"
	resetAvailabilityHandler "github.com/palmblack/PalmBlack-BookingService/internal/api/handlers/reset_availability"
	updateAvailabilityHandler "github.com/palmblack/PalmBlack-BookingService/internal/api/handlers/update_availability"
	"github.com/palmblack/PalmBlack-BookingService/internal/api/middleware"
	"github.com/palmblack/PalmBlack-BookingService/internal/config"
	appointmentRepo "github.com/palmblack/PalmBlack-BookingService/internal/infra/storage/appointment"
	availabilityRepo "github.com/palmblack/PalmBlack-BookingService/internal/infra/storage/availability"
	sessionStore "github.com/palmblack/PalmBlack-BookingService/internal/infra/storage/session"
	"github.com/palmblack/PalmBlack-BookingService/internal/integrations/mailer"
	appointmentsService "github.com/palmblack/PalmBlack-BookingService/internal/service/appointments"
	availabilityService "github.com/palmblack/PalmBlack-BookingService/internal/service/availability"
	authService "github.com/palmblack/PalmBlack-BookingService/internal/service/auth"
	createAppointmentUC "github.com/palmblack/PalmBlack-BookingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/palmblack/PalmBlack-BookingService/internal/usecase/get_available_slots"
	"github.com/palmblack/PalmBlack-BookingService/pkg/dbmetrics"
	"github.com/palmblack/PalmBlack-BookingService/pkg/logger"
	"github.com/palmblack/PalmBlack-BookingService/pkg/metrics"
	"github.com/palmblack/PalmBlack-BookingService/pkg/simpletxmanager"
	"github.com/palmblack/PalmBlack-BookingService/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting PalmBlack-BookingService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (%s)", cfg.Redis.Address)

	sessions := sessionStore.NewStore(redisClient, time.Duration(cfg.Auth.SessionTTLMinutes)*time.Minute)

	// Repositories and transaction manager, with metrics when enabled
	var (
		appointmentRepository  *appointmentRepo.Repository
		availabilityRepository *availabilityRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Confirmation mailer is optional, bookings work without it
	var confirmationMailer createAppointmentUC.Mailer
	if cfg.Mailer.Enabled {
		confirmationMailer = mailer.NewClient(
			cfg.Mailer.SMTPHost,
			cfg.Mailer.SMTPPort,
			cfg.Mailer.Username,
			cfg.Mailer.Password,
			cfg.Mailer.From,
		)
		log.Info("Confirmation mailer enabled (smtp=%s:%d)", cfg.Mailer.SMTPHost, cfg.Mailer.SMTPPort)
	}

	// Services
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, txMgr, log)
	authSvc := authService.NewService(
		authService.NewStaticAuthenticator(cfg.Auth.Username, cfg.Auth.Password, cfg.Auth.DisplayName),
		sessions,
		log,
	)

	// Use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(appointmentRepository, confirmationMailer, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(appointmentRepository, availabilityRepository, log)

	// Handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAppointmentStats := getAppointmentStatsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(availabilitySvc, log)
	resetAvailability := resetAvailabilityHandler.NewHandler(availabilitySvc, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	adminLogout := adminLogoutHandler.NewHandler(authSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (booking page)
	// ============================================================

	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (admin dashboard, X-Admin-Token header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AdminAuth(authSvc, log))

	protected.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/stats", getAppointmentStats.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	protected.HandleFunc("/availability", updateAvailability.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/availability/reset", resetAvailability.Handle).Methods(http.MethodPost)

	protected.HandleFunc("/admin/logout", adminLogout.Handle).Methods(http.MethodPost)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

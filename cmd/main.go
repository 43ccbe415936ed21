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
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	cancelReservationHandler "github.com/lensastudio/booking-service/internal/api/handlers/cancel_reservation"
	completePaymentHandler "github.com/lensastudio/booking-service/internal/api/handlers/complete_payment"
	createPaymentInvoiceHandler "github.com/lensastudio/booking-service/internal/api/handlers/create_payment_invoice"
	createReservationHandler "github.com/lensastudio/booking-service/internal/api/handlers/create_reservation"
	getAvailableSlotsHandler "github.com/lensastudio/booking-service/internal/api/handlers/get_available_slots"
	getPaymentRemindersHandler "github.com/lensastudio/booking-service/internal/api/handlers/get_payment_reminders"
	getReservationHandler "github.com/lensastudio/booking-service/internal/api/handlers/get_reservation"
	getStudioReservationsHandler "github.com/lensastudio/booking-service/internal/api/handlers/get_studio_reservations"
	getUserReservationsHandler "github.com/lensastudio/booking-service/internal/api/handlers/get_user_reservations"
	paymentNotificationHandler "github.com/lensastudio/booking-service/internal/api/handlers/payment_notification"
	rescheduleReservationHandler "github.com/lensastudio/booking-service/internal/api/handlers/reschedule_reservation"
	"github.com/lensastudio/booking-service/internal/api/middleware"
	"github.com/lensastudio/booking-service/internal/config"
	addonBookingRepo "github.com/lensastudio/booking-service/internal/infra/storage/addonbooking"
	reservationRepo "github.com/lensastudio/booking-service/internal/infra/storage/reservation"
	studioCatalogClient "github.com/lensastudio/booking-service/internal/integrations/studiocatalog"
	jobsService "github.com/lensastudio/booking-service/internal/service/jobs"
	paymentsService "github.com/lensastudio/booking-service/internal/service/payments"
	remindersService "github.com/lensastudio/booking-service/internal/service/reminders"
	reservationsService "github.com/lensastudio/booking-service/internal/service/reservations"
	createReservationUC "github.com/lensastudio/booking-service/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/lensastudio/booking-service/internal/usecase/get_available_slots"
	rescheduleReservationUC "github.com/lensastudio/booking-service/internal/usecase/reschedule_reservation"
	"github.com/lensastudio/booking-service/pkg/dbmetrics"
	"github.com/lensastudio/booking-service/pkg/logger"
	"github.com/lensastudio/booking-service/pkg/metrics"
	"github.com/lensastudio/booking-service/pkg/simpletxmanager"
	"github.com/lensastudio/booking-service/pkg/txmanager"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting LensaStudio BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (when enabled)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the database
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

	// Initialize integration clients
	catalogClient := studioCatalogClient.NewClient(
		cfg.StudioCatalog.URL,
		time.Duration(cfg.StudioCatalog.Timeout)*time.Second,
		log,
	)
	log.Info("StudioCatalog client initialized (url=%s, timeout=%ds)",
		cfg.StudioCatalog.URL, cfg.StudioCatalog.Timeout)

	midtransEnv := midtrans.Sandbox
	if cfg.Midtrans.Environment == "production" {
		midtransEnv = midtrans.Production
	}
	snapClient := &snap.Client{}
	snapClient.New(cfg.Midtrans.ServerKey, midtransEnv)
	log.Info("Midtrans Snap client initialized (env=%s)", cfg.Midtrans.Environment)

	// Initialize repositories (with or without metrics)
	var (
		reservationRepository  *reservationRepo.Repository
		addonBookingRepository *addonBookingRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		addonBookingRepository = addonBookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		addonBookingRepository = addonBookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Initialize services
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		addonBookingRepository,
		txMgr,
		log,
	)
	paymentSvc := paymentsService.NewService(
		reservationRepository,
		snapClient,
		cfg.Midtrans.ServerKey,
		log,
	)
	reminderSvc := remindersService.NewService(reservationRepository, log)
	jobSvc := jobsService.NewService(
		reservationRepository,
		addonBookingRepository,
		txMgr,
		log,
	)

	// Initialize use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		addonBookingRepository,
		catalogClient,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		addonBookingRepository,
		catalogClient,
		txMgr,
		log,
	)
	rescheduleReservationUseCase := rescheduleReservationUC.NewUseCase(
		reservationRepository,
		addonBookingRepository,
		catalogClient,
		txMgr,
		log,
	)

	// Initialize handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	rescheduleReservation := rescheduleReservationHandler.NewHandler(rescheduleReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	getStudioReservations := getStudioReservationsHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	completePayment := completePaymentHandler.NewHandler(reservationSvc, log)
	createPaymentInvoice := createPaymentInvoiceHandler.NewHandler(paymentSvc, log)
	paymentNotification := paymentNotificationHandler.NewHandler(paymentSvc, log)
	getPaymentReminders := getPaymentRemindersHandler.NewHandler(reminderSvc, log)

	// Start background jobs
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Jobs.AutoCancelSpec, func() {
		jobSvc.AutoCancelExpiredReservations(context.Background())
	}); err != nil {
		log.Fatal("Failed to schedule auto-cancel job: %v", err)
	}
	if _, err := scheduler.AddFunc(cfg.Jobs.CompletePastSpec, func() {
		jobSvc.CompletePastReservations(context.Background())
	}); err != nil {
		log.Fatal("Failed to schedule complete-past job: %v", err)
	}
	scheduler.Start()
	log.Info("Background jobs scheduled (auto_cancel=%s, complete_past=%s)",
		cfg.Jobs.AutoCancelSpec, cfg.Jobs.CompletePastSpec)

	// Set up the router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Slot availability for a facility
	api.HandleFunc("/studios/{studioId}/facilities/{facilityId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Payment gateway notifications (authenticated by signature)
	api.HandleFunc("/payments/midtrans/notification",
		paymentNotification.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (require X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Reservations ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/reschedule", rescheduleReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/complete-payment", completePayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}/invoice", createPaymentInvoice.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/me/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// --- Studio staff ---
	protected.HandleFunc("/studios/{studioId}/reservations", getStudioReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/studios/{studioId}/payment-reminders", getPaymentReminders.Handle).Methods(http.MethodGet)

	// Create the HTTP server
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

	cronCtx := scheduler.Stop()
	<-cronCtx.Done()
	log.Info("Background jobs stopped")

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

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

	"github.com/go-co-op/gocron/v2"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	attachPaymentHandler "github.com/rmarchan/ReservaCanchasService/internal/api/handlers/attach_payment"
	cancelReservationHandler "github.com/rmarchan/ReservaCanchasService/internal/api/handlers/cancel_reservation"
	createCourtHandler "github.com/rmarchan/ReservaCanchasService/internal/api/handlers/create_court"
	createReservationHandler "github.com/rmarchan/ReservaCanchasService/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/rmarchan/ReservaCanchasService/internal/api/handlers/delete_reservation"
	getCourtsHandler "github.com/rmarchan/ReservaCanchasService/internal/api/handlers/get_courts"
	getReservationHandler "github.com/rmarchan/ReservaCanchasService/internal/api/handlers/get_reservation"
	getUserReservationsHandler "github.com/rmarchan/ReservaCanchasService/internal/api/handlers/get_user_reservations"
	getWeeklyScheduleHandler "github.com/rmarchan/ReservaCanchasService/internal/api/handlers/get_weekly_schedule"
	sweepExpiredHandler "github.com/rmarchan/ReservaCanchasService/internal/api/handlers/sweep_expired"
	updateCourtHandler "github.com/rmarchan/ReservaCanchasService/internal/api/handlers/update_court"
	updateReservationHandler "github.com/rmarchan/ReservaCanchasService/internal/api/handlers/update_reservation"
	updateReservationStatusHandler "github.com/rmarchan/ReservaCanchasService/internal/api/handlers/update_reservation_status"
	"github.com/rmarchan/ReservaCanchasService/internal/api/middleware"
	"github.com/rmarchan/ReservaCanchasService/internal/config"
	"github.com/rmarchan/ReservaCanchasService/internal/domain"
	"github.com/rmarchan/ReservaCanchasService/internal/infra/events"
	courtRepo "github.com/rmarchan/ReservaCanchasService/internal/infra/storage/court"
	reservationRepo "github.com/rmarchan/ReservaCanchasService/internal/infra/storage/reservation"
	paymentServiceClient "github.com/rmarchan/ReservaCanchasService/internal/integrations/paymentservice"
	courtsService "github.com/rmarchan/ReservaCanchasService/internal/service/courts"
	reservationsService "github.com/rmarchan/ReservaCanchasService/internal/service/reservations"
	createReservationUC "github.com/rmarchan/ReservaCanchasService/internal/usecase/create_reservation"
	editReservationUC "github.com/rmarchan/ReservaCanchasService/internal/usecase/edit_reservation"
	getWeeklyScheduleUC "github.com/rmarchan/ReservaCanchasService/internal/usecase/get_weekly_schedule"
	sweepExpiredUC "github.com/rmarchan/ReservaCanchasService/internal/usecase/sweep_expired"
	"github.com/rmarchan/ReservaCanchasService/pkg/dbmetrics"
	"github.com/rmarchan/ReservaCanchasService/pkg/logger"
	"github.com/rmarchan/ReservaCanchasService/pkg/metrics"
	"github.com/rmarchan/ReservaCanchasService/pkg/simpletxmanager"
	"github.com/rmarchan/ReservaCanchasService/pkg/txmanager"
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

	log.Info("Starting ReservaCanchasService...")
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

	// Event publisher: RabbitMQ when enabled, no-op otherwise.
	var eventPublisher reservationsService.EventPublisher
	if cfg.Events.Enabled {
		publisher, err := events.NewPublisher(cfg.Events.URL, cfg.Events.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
		eventPublisher = publisher
		log.Info("Event publisher connected (exchange=%s)", cfg.Events.Exchange)
	} else {
		eventPublisher = events.NewNoopPublisher()
		log.Info("Event publishing disabled, using no-op publisher")
	}

	paymentClient := paymentServiceClient.NewClient(
		cfg.PaymentService.URL,
		time.Duration(cfg.PaymentService.Timeout)*time.Second,
		log,
	)
	log.Info("Payment service client initialized (url=%s, timeout=%ds)",
		cfg.PaymentService.URL, cfg.PaymentService.Timeout)

	var (
		reservationRepository *reservationRepo.Repository
		courtRepository       *courtRepo.Repository
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
		courtRepository = courtRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		courtRepository = courtRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	reservationSvc := reservationsService.NewService(
		reservationRepository,
		paymentClient,
		txMgr,
		eventPublisher,
		log,
	)
	courtSvc := courtsService.NewService(courtRepository, log)

	createReservationUseCase := createReservationUC.New(
		reservationRepository,
		courtRepository,
		txMgr,
		eventPublisher,
		log,
	)
	editReservationUseCase := editReservationUC.New(
		reservationRepository,
		courtRepository,
		txMgr,
		log,
	)
	getWeeklyScheduleUseCase := getWeeklyScheduleUC.New(
		reservationRepository,
		courtRepository,
		log,
	)
	sweepExpiredUseCase := sweepExpiredUC.New(
		reservationRepository,
		txMgr,
		eventPublisher,
		log,
	)

	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getWeeklySchedule := getWeeklyScheduleHandler.NewHandler(getWeeklyScheduleUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	updateReservation := updateReservationHandler.NewHandler(editReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationSvc, log)
	attachPayment := attachPaymentHandler.NewHandler(reservationSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	sweepExpired := sweepExpiredHandler.NewHandler(sweepExpiredUseCase, cfg.Booking.GracePeriodDays, log)
	createCourt := createCourtHandler.NewHandler(courtSvc, log)
	updateCourt := updateCourtHandler.NewHandler(courtSvc, log)
	getCourts := getCourtsHandler.NewHandler(courtSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/reservas/semanal/{canchaId}", getWeeklySchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/canchas", getCourts.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/canchas/{id}", getCourts.HandleGet).Methods(http.MethodGet)

	// Protected routes (require X-User-ID header)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/reservas", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservas/cancelar-vencidas", sweepExpired.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservas/{id}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservas/{id}", updateReservation.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/reservas/{id}", deleteReservation.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/reservas/{id}/cancelar", cancelReservation.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/reservas/{id}/estado", updateReservationStatus.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/reservas/{id}/pago", attachPayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/usuarios/{userId}/reservas", getUserReservations.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/canchas", createCourt.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/canchas/{id}", updateCourt.Handle).Methods(http.MethodPut)

	// Optional in-process sweep job.
	var scheduler gocron.Scheduler
	if cfg.Booking.SweepEnabled {
		scheduler, err = gocron.NewScheduler()
		if err != nil {
			log.Fatal("Failed to create scheduler: %v", err)
		}
		_, err = scheduler.NewJob(
			gocron.CronJob(cfg.Booking.SweepSchedule, false),
			gocron.NewTask(func() {
				result, err := sweepExpiredUseCase.Execute(context.Background(), sweepExpiredUC.Request{
					Now:       time.Now(),
					GraceDays: cfg.Booking.GracePeriodDays,
				})
				if err != nil {
					log.Error("Scheduled sweep failed: %v", err)
					return
				}
				if len(result.CancelledIDs) > 0 {
					log.Info("Scheduled sweep cancelled %d expired reservations", len(result.CancelledIDs))
				}
			}),
			gocron.WithName("sweep-expired-reservations"),
		)
		if err != nil {
			log.Fatal("Failed to register sweep job: %v", err)
		}
		scheduler.Start()
		log.Info("Expiration sweep scheduled (cron=%q, grace=%dd)",
			cfg.Booking.SweepSchedule, cfg.Booking.GracePeriodDays)
	} else {
		log.Info("In-process expiration sweep disabled (grace=%dd)", domain.DefaultGracePeriodDays)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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

	if scheduler != nil {
		if err := scheduler.Shutdown(); err != nil {
			log.Warn("Scheduler shutdown failed: %v", err)
		}
	}

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
		log.Fatal("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}

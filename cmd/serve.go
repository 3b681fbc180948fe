package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addCourtHandler "github.com/m04kA/SMC-SportsBookingService/internal/api/handlers/add_court"
	attachSessionPaymentHandler "github.com/m04kA/SMC-SportsBookingService/internal/api/handlers/attach_session_payment"
	checkSlotConflictsHandler "github.com/m04kA/SMC-SportsBookingService/internal/api/handlers/check_slot_conflicts"
	checkinHandler "github.com/m04kA/SMC-SportsBookingService/internal/api/handlers/checkin"
	createCoachProfileHandler "github.com/m04kA/SMC-SportsBookingService/internal/api/handlers/create_coach_profile"
	createFacilityHandler "github.com/m04kA/SMC-SportsBookingService/internal/api/handlers/create_facility"
	createFacilityBookingHandler "github.com/m04kA/SMC-SportsBookingService/internal/api/handlers/create_facility_booking"
	createReviewHandler "github.com/m04kA/SMC-SportsBookingService/internal/api/handlers/create_review"
	createSessionRequestHandler "github.com/m04kA/SMC-SportsBookingService/internal/api/handlers/create_session_request"
	finalizeSessionBookingHandler "github.com/m04kA/SMC-SportsBookingService/internal/api/handlers/finalize_session_booking"
	getAvailableCourtsHandler "github.com/m04kA/SMC-SportsBookingService/internal/api/handlers/get_available_courts"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SportsBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-SportsBookingService/internal/api/handlers/get_booking"
	getCoachHandler "github.com/m04kA/SMC-SportsBookingService/internal/api/handlers/get_coach"
	getFacilityHandler "github.com/m04kA/SMC-SportsBookingService/internal/api/handlers/get_facility"
	getSessionBookingHandler "github.com/m04kA/SMC-SportsBookingService/internal/api/handlers/get_session_booking"
	getSessionRequestHandler "github.com/m04kA/SMC-SportsBookingService/internal/api/handlers/get_session_request"
	getUserBookingsHandler "github.com/m04kA/SMC-SportsBookingService/internal/api/handlers/get_user_bookings"
	listCoachRequestsHandler "github.com/m04kA/SMC-SportsBookingService/internal/api/handlers/list_coach_requests"
	listFacilitiesHandler "github.com/m04kA/SMC-SportsBookingService/internal/api/handlers/list_facilities"
	listReviewsHandler "github.com/m04kA/SMC-SportsBookingService/internal/api/handlers/list_reviews"
	listSlotsHandler "github.com/m04kA/SMC-SportsBookingService/internal/api/handlers/list_slots"
	respondSessionRequestHandler "github.com/m04kA/SMC-SportsBookingService/internal/api/handlers/respond_session_request"
	retryVerificationHandler "github.com/m04kA/SMC-SportsBookingService/internal/api/handlers/retry_verification"
	setCoachAvailabilityHandler "github.com/m04kA/SMC-SportsBookingService/internal/api/handlers/set_coach_availability"
	"github.com/m04kA/SMC-SportsBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-SportsBookingService/internal/config"
	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/booking"
	coachRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/coach"
	facilityRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/facility"
	reviewRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/review"
	sessionBookingRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/sessionbooking"
	sessionRequestRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/sessionrequest"
	"github.com/m04kA/SMC-SportsBookingService/internal/integrations/verification"
	artifactsService "github.com/m04kA/SMC-SportsBookingService/internal/service/artifacts"
	bookingsService "github.com/m04kA/SMC-SportsBookingService/internal/service/bookings"
	checkinService "github.com/m04kA/SMC-SportsBookingService/internal/service/checkin"
	coachesService "github.com/m04kA/SMC-SportsBookingService/internal/service/coaches"
	facilitiesService "github.com/m04kA/SMC-SportsBookingService/internal/service/facilities"
	reviewsService "github.com/m04kA/SMC-SportsBookingService/internal/service/reviews"
	sessionsService "github.com/m04kA/SMC-SportsBookingService/internal/service/sessions"
	attachSessionPaymentUC "github.com/m04kA/SMC-SportsBookingService/internal/usecase/attach_session_payment"
	checkSlotConflictsUC "github.com/m04kA/SMC-SportsBookingService/internal/usecase/check_slot_conflicts"
	createFacilityBookingUC "github.com/m04kA/SMC-SportsBookingService/internal/usecase/create_facility_booking"
	createSessionRequestUC "github.com/m04kA/SMC-SportsBookingService/internal/usecase/create_session_request"
	finalizeSessionBookingUC "github.com/m04kA/SMC-SportsBookingService/internal/usecase/finalize_session_booking"
	getAvailableCourtsUC "github.com/m04kA/SMC-SportsBookingService/internal/usecase/get_available_courts"
	getAvailableSlotsUC "github.com/m04kA/SMC-SportsBookingService/internal/usecase/get_available_slots"
	respondSessionRequestUC "github.com/m04kA/SMC-SportsBookingService/internal/usecase/respond_session_request"
	setCoachAvailabilityUC "github.com/m04kA/SMC-SportsBookingService/internal/usecase/set_coach_availability"
	"github.com/m04kA/SMC-SportsBookingService/migrations"
	"github.com/m04kA/SMC-SportsBookingService/pkg/logger"
	"github.com/m04kA/SMC-SportsBookingService/pkg/metrics"
	"github.com/m04kA/SMC-SportsBookingService/pkg/migrator"
	"github.com/m04kA/SMC-SportsBookingService/pkg/mq"
	"github.com/m04kA/SMC-SportsBookingService/pkg/txmanager"
)

// businessMetrics бизнес-счетчики, общие для use cases и сервисов
type businessMetrics interface {
	IncBookingCreated(kind string)
	IncSlotConflict(sport string)
	IncArtifactFailure(kind string)
}

// eventPublisher публикация доменных событий
type eventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
	Close() error
}

func runServer(ctx context.Context, configPath string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting SMC-SportsBookingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Каталог слотов фиксируется на старте
	catalog, err := domain.NewSlotCatalog(cfg.Booking.Slots)
	if err != nil {
		return fmt.Errorf("invalid slot catalog: %w", err)
	}
	log.Info("Slot catalog loaded: %d slots", catalog.Len())

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Database.AutoMigrate {
		if err := migrator.New(db, migrations.FS, log).Up(ctx); err != nil {
			return err
		}
		log.Info("Database migrations applied")
	}

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		bizMetrics       businessMetrics = metrics.Nop{}
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		metrics.RegisterDBStats(cfg.Metrics.ServiceName, db)
		bizMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Публикация доменных событий (если включена)
	var publisher eventPublisher = mq.NopPublisher{}
	if cfg.Events.Enabled {
		amqpPublisher, err := mq.NewPublisher(cfg.Events.URL, cfg.Events.Exchange, log)
		if err != nil {
			return fmt.Errorf("failed to connect to message broker: %w", err)
		}
		publisher = amqpPublisher
		log.Info("Domain events are published to exchange %s", cfg.Events.Exchange)
	}
	defer publisher.Close()

	// Инициализируем интеграционных клиентов
	verificationClient := verification.NewClient(
		cfg.Verification.URL,
		time.Duration(cfg.Verification.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (VerificationService=%s timeout=%ds)",
		cfg.Verification.URL, cfg.Verification.Timeout)

	// Инициализируем репозитории
	facilityRepository := facilityRepo.NewRepository(db)
	bookingRepository := bookingRepo.NewRepository(db)
	coachRepository := coachRepo.NewRepository(db)
	requestRepository := sessionRequestRepo.NewRepository(db)
	sessionBookingRepository := sessionBookingRepo.NewRepository(db)
	reviewRepository := reviewRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	artifactSvc := artifactsService.NewService(
		verificationClient,
		bookingRepository,
		sessionBookingRepository,
		bizMetrics,
		log,
	)
	facilitySvc := facilitiesService.NewService(facilityRepository, log)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		sessionBookingRepository,
		coachRepository,
		artifactSvc,
		log,
	)
	coachSvc := coachesService.NewService(coachRepository, reviewRepository, log)
	reviewSvc := reviewsService.NewService(reviewRepository, log)
	sessionSvc := sessionsService.NewService(requestRepository, coachRepository, log)
	checkinSvc := checkinService.NewService(bookingRepository, sessionBookingRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, facilityRepository, catalog, log)
	getAvailableCourtsUseCase := getAvailableCourtsUC.NewUseCase(bookingRepository, facilityRepository, catalog, log)
	checkSlotConflictsUseCase := checkSlotConflictsUC.NewUseCase(bookingRepository, facilityRepository, catalog, log)
	createFacilityBookingUseCase := createFacilityBookingUC.NewUseCase(
		bookingRepository,
		facilityRepository,
		catalog,
		artifactSvc,
		publisher,
		bizMetrics,
		txMgr,
		createFacilityBookingUC.Options{
			Attempts: cfg.Booking.InsertAttempts,
			Delay:    cfg.Booking.RetryDelay(),
		},
		log,
	)
	setCoachAvailabilityUseCase := setCoachAvailabilityUC.NewUseCase(coachRepository, catalog, txMgr, log)
	createSessionRequestUseCase := createSessionRequestUC.NewUseCase(
		coachRepository,
		requestRepository,
		publisher,
		txMgr,
		log,
	)
	respondSessionRequestUseCase := respondSessionRequestUC.NewUseCase(
		requestRepository,
		coachRepository,
		facilityRepository,
		publisher,
		txMgr,
		log,
	)
	attachSessionPaymentUseCase := attachSessionPaymentUC.NewUseCase(requestRepository, txMgr, log)
	finalizeSessionBookingUseCase := finalizeSessionBookingUC.NewUseCase(
		requestRepository,
		coachRepository,
		sessionBookingRepository,
		artifactSvc,
		publisher,
		bizMetrics,
		txMgr,
		log,
	)

	// Инициализируем handlers
	listSlots := listSlotsHandler.NewHandler(catalog)
	listFacilities := listFacilitiesHandler.NewHandler(facilitySvc, log)
	getFacility := getFacilityHandler.NewHandler(facilitySvc, log)
	createFacility := createFacilityHandler.NewHandler(facilitySvc, log)
	addCourt := addCourtHandler.NewHandler(facilitySvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailableCourts := getAvailableCourtsHandler.NewHandler(getAvailableCourtsUseCase, log)
	checkSlotConflicts := checkSlotConflictsHandler.NewHandler(checkSlotConflictsUseCase, log)
	createFacilityBooking := createFacilityBookingHandler.NewHandler(createFacilityBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	retryVerification := retryVerificationHandler.NewHandler(bookingSvc, log)
	getSessionBooking := getSessionBookingHandler.NewHandler(bookingSvc, log)
	createCoachProfile := createCoachProfileHandler.NewHandler(coachSvc, log)
	getCoach := getCoachHandler.NewHandler(coachSvc, log)
	setCoachAvailability := setCoachAvailabilityHandler.NewHandler(setCoachAvailabilityUseCase, log)
	createReview := createReviewHandler.NewHandler(reviewSvc, log)
	listReviews := listReviewsHandler.NewHandler(reviewSvc, log)
	createSessionRequest := createSessionRequestHandler.NewHandler(createSessionRequestUseCase, log)
	getSessionRequest := getSessionRequestHandler.NewHandler(sessionSvc, log)
	listCoachRequests := listCoachRequestsHandler.NewHandler(sessionSvc, log)
	respondSessionRequest := respondSessionRequestHandler.NewHandler(respondSessionRequestUseCase, log)
	attachSessionPayment := attachSessionPaymentHandler.NewHandler(attachSessionPaymentUseCase, log)
	finalizeSessionBooking := finalizeSessionBookingHandler.NewHandler(finalizeSessionBookingUseCase, log)
	checkin := checkinHandler.NewHandler(checkinSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/slots", listSlots.Handle).Methods(http.MethodGet)

	// --- Объекты и корты ---
	api.HandleFunc("/facilities", listFacilities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityId}", getFacility.Handle).Methods(http.MethodGet)

	// --- Доступность ---
	api.HandleFunc("/courts/available", getAvailableCourts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courts/{courtId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courts/{courtId}/check-slots", checkSlotConflicts.Handle).Methods(http.MethodPost)

	// --- Тренеры ---
	api.HandleFunc("/coaches/{coachId}", getCoach.Handle).Methods(http.MethodGet)
	api.HandleFunc("/coaches/{coachId}/reviews", listReviews.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Управление объектами (администратор) ---
	protected.HandleFunc("/facilities", createFacility.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/facilities/{facilityId}/courts", addCourt.Handle).Methods(http.MethodPost)

	// --- Бронирования кортов ---
	protected.HandleFunc("/bookings", createFacilityBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/verification", retryVerification.HandleFacility).Methods(http.MethodPost)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Тренеры ---
	protected.HandleFunc("/coaches", createCoachProfile.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/coaches/{coachId}/availability", setCoachAvailability.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/coaches/{coachId}/reviews", createReview.Handle).Methods(http.MethodPost)

	// --- Заявки на тренировки ---
	protected.HandleFunc("/coaches/{coachId}/session-requests", createSessionRequest.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/coaches/{coachId}/session-requests", listCoachRequests.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/session-requests", listCoachRequests.HandleMine).Methods(http.MethodGet)
	protected.HandleFunc("/session-requests/{requestId}", getSessionRequest.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/session-requests/{requestId}/respond", respondSessionRequest.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/session-requests/{requestId}/payment-proof", attachSessionPayment.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/session-requests/{requestId}/booking", finalizeSessionBooking.Handle).Methods(http.MethodPost)

	// --- Оформленные тренировки ---
	protected.HandleFunc("/session-bookings/{bookingId}", getSessionBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/session-bookings/{bookingId}/verification", retryVerification.HandleSession).Methods(http.MethodPost)

	// --- Проверка на входе (охрана) ---
	protected.HandleFunc("/checkin/{code}", checkin.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

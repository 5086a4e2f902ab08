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

	cancelReservationHandler "github.com/m04kA/RSM-FacilityService/internal/api/handlers/cancel_reservation"
	completeReservationHandler "github.com/m04kA/RSM-FacilityService/internal/api/handlers/complete_reservation"
	createFacilityHandler "github.com/m04kA/RSM-FacilityService/internal/api/handlers/create_facility"
	createReservationHandler "github.com/m04kA/RSM-FacilityService/internal/api/handlers/create_reservation"
	deleteFacilityHandler "github.com/m04kA/RSM-FacilityService/internal/api/handlers/delete_facility"
	getAvailableSlotsHandler "github.com/m04kA/RSM-FacilityService/internal/api/handlers/get_available_slots"
	getFacilityHandler "github.com/m04kA/RSM-FacilityService/internal/api/handlers/get_facility"
	getFacilityReservationsHandler "github.com/m04kA/RSM-FacilityService/internal/api/handlers/get_facility_reservations"
	getOccupancyReportHandler "github.com/m04kA/RSM-FacilityService/internal/api/handlers/get_occupancy_report"
	getReservationHandler "github.com/m04kA/RSM-FacilityService/internal/api/handlers/get_reservation"
	getResidentReservationsHandler "github.com/m04kA/RSM-FacilityService/internal/api/handlers/get_resident_reservations"
	listFacilitiesHandler "github.com/m04kA/RSM-FacilityService/internal/api/handlers/list_facilities"
	updateFacilityHandler "github.com/m04kA/RSM-FacilityService/internal/api/handlers/update_facility"
	"github.com/m04kA/RSM-FacilityService/internal/api/middleware"
	"github.com/m04kA/RSM-FacilityService/internal/config"
	facilityRepo "github.com/m04kA/RSM-FacilityService/internal/infra/storage/facility"
	reservationRepo "github.com/m04kA/RSM-FacilityService/internal/infra/storage/reservation"
	residentServiceClient "github.com/m04kA/RSM-FacilityService/internal/integrations/residentservice"
	facilitiesService "github.com/m04kA/RSM-FacilityService/internal/service/facilities"
	reservationsService "github.com/m04kA/RSM-FacilityService/internal/service/reservations"
	createReservationUC "github.com/m04kA/RSM-FacilityService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/RSM-FacilityService/internal/usecase/get_available_slots"
	getOccupancyReportUC "github.com/m04kA/RSM-FacilityService/internal/usecase/get_occupancy_report"
	"github.com/m04kA/RSM-FacilityService/pkg/dbmetrics"
	"github.com/m04kA/RSM-FacilityService/pkg/logger"
	"github.com/m04kA/RSM-FacilityService/pkg/metrics"
	"github.com/m04kA/RSM-FacilityService/pkg/simpletxmanager"
	"github.com/m04kA/RSM-FacilityService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting RSM-FacilityService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент ResidentService
	residentClient := residentServiceClient.NewClient(
		cfg.ResidentService.URL,
		time.Duration(cfg.ResidentService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (ResidentService=%s timeout=%ds)",
		cfg.ResidentService.URL, cfg.ResidentService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		facilityRepository    *facilityRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		facilityRepository = facilityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		facilityRepository = facilityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		facilityRepository,
		residentClient,
		log,
	)
	facilitySvc := facilitiesService.NewService(
		facilityRepository,
		residentClient,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		facilityRepository,
		residentClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		facilityRepository,
		log,
	)

	getOccupancyReportUseCase := getOccupancyReportUC.NewUseCase(
		reservationRepository,
		facilityRepository,
		residentClient,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getOccupancyReport := getOccupancyReportHandler.NewHandler(getOccupancyReportUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	completeReservation := completeReservationHandler.NewHandler(reservationSvc, log)
	getResidentReservations := getResidentReservationsHandler.NewHandler(reservationSvc, log)
	getFacilityReservations := getFacilityReservationsHandler.NewHandler(reservationSvc, log)
	createFacility := createFacilityHandler.NewHandler(facilitySvc, log)
	getFacility := getFacilityHandler.NewHandler(facilitySvc, log)
	listFacilities := listFacilitiesHandler.NewHandler(facilitySvc, log)
	updateFacility := updateFacilityHandler.NewHandler(facilitySvc, log)
	deleteFacility := deleteFacilityHandler.NewHandler(facilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты объекта на дату
	api.HandleFunc("/facilities/{facilityId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Карточка объекта
	api.HandleFunc("/facilities/{facilityId}", getFacility.Handle).Methods(http.MethodGet)

	// Список объектов площадки
	api.HandleFunc("/sites/{siteId}/facilities", listFacilities.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// Завершение бронирования (для менеджеров)
	protected.HandleFunc("/reservations/{reservationId}/complete", completeReservation.Handle).Methods(http.MethodPatch)

	// История бронирований жителя
	protected.HandleFunc("/residents/{residentId}/reservations", getResidentReservations.Handle).Methods(http.MethodGet)

	// --- Управление объектами (для менеджеров) ---
	// Создание объекта
	protected.HandleFunc("/facilities", createFacility.Handle).Methods(http.MethodPost)

	// Обновление объекта
	protected.HandleFunc("/facilities/{facilityId}", updateFacility.Handle).Methods(http.MethodPut)

	// Удаление объекта
	protected.HandleFunc("/facilities/{facilityId}", deleteFacility.Handle).Methods(http.MethodDelete)

	// Список бронирований объекта
	protected.HandleFunc("/facilities/{facilityId}/reservations", getFacilityReservations.Handle).Methods(http.MethodGet)

	// Отчет занятости объекта
	protected.HandleFunc("/facilities/{facilityId}/occupancy-report", getOccupancyReport.Handle).Methods(http.MethodGet)

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
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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

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

	adminLoginHandler "github.com/m04kA/NSS-BookingService/internal/api/handlers/admin_login"
	cancelAppointmentHandler "github.com/m04kA/NSS-BookingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/NSS-BookingService/internal/api/handlers/create_appointment"
	createFeedbackHandler "github.com/m04kA/NSS-BookingService/internal/api/handlers/create_feedback"
	createPromotionHandler "github.com/m04kA/NSS-BookingService/internal/api/handlers/create_promotion"
	deletePromotionHandler "github.com/m04kA/NSS-BookingService/internal/api/handlers/delete_promotion"
	getAppointmentHandler "github.com/m04kA/NSS-BookingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/NSS-BookingService/internal/api/handlers/get_available_slots"
	getClientAppointmentsHandler "github.com/m04kA/NSS-BookingService/internal/api/handlers/get_client_appointments"
	getReportsHandler "github.com/m04kA/NSS-BookingService/internal/api/handlers/get_reports"
	getSalonAppointmentsHandler "github.com/m04kA/NSS-BookingService/internal/api/handlers/get_salon_appointments"
	getSalonScheduleHandler "github.com/m04kA/NSS-BookingService/internal/api/handlers/get_salon_schedule"
	listFeedbackHandler "github.com/m04kA/NSS-BookingService/internal/api/handlers/list_feedback"
	listMastersHandler "github.com/m04kA/NSS-BookingService/internal/api/handlers/list_masters"
	listPromotionsHandler "github.com/m04kA/NSS-BookingService/internal/api/handlers/list_promotions"
	listServicesHandler "github.com/m04kA/NSS-BookingService/internal/api/handlers/list_services"
	publishFeedbackHandler "github.com/m04kA/NSS-BookingService/internal/api/handlers/publish_feedback"
	updateAppointmentStatusHandler "github.com/m04kA/NSS-BookingService/internal/api/handlers/update_appointment_status"
	updateSalonScheduleHandler "github.com/m04kA/NSS-BookingService/internal/api/handlers/update_salon_schedule"
	"github.com/m04kA/NSS-BookingService/internal/api/middleware"
	"github.com/m04kA/NSS-BookingService/internal/config"
	adminRepo "github.com/m04kA/NSS-BookingService/internal/infra/storage/admin"
	appointmentRepo "github.com/m04kA/NSS-BookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/NSS-BookingService/internal/infra/storage/catalog"
	feedbackRepo "github.com/m04kA/NSS-BookingService/internal/infra/storage/feedback"
	promotionRepo "github.com/m04kA/NSS-BookingService/internal/infra/storage/promotion"
	scheduleRepo "github.com/m04kA/NSS-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/NSS-BookingService/internal/integrations/notify"
	"github.com/m04kA/NSS-BookingService/internal/jobs"
	appointmentsService "github.com/m04kA/NSS-BookingService/internal/service/appointments"
	authService "github.com/m04kA/NSS-BookingService/internal/service/auth"
	catalogService "github.com/m04kA/NSS-BookingService/internal/service/catalog"
	feedbackService "github.com/m04kA/NSS-BookingService/internal/service/feedback"
	promotionsService "github.com/m04kA/NSS-BookingService/internal/service/promotions"
	reportsService "github.com/m04kA/NSS-BookingService/internal/service/reports"
	scheduleService "github.com/m04kA/NSS-BookingService/internal/service/schedule"
	createAppointmentUC "github.com/m04kA/NSS-BookingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/NSS-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/NSS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/NSS-BookingService/pkg/logger"
	"github.com/m04kA/NSS-BookingService/pkg/metrics"
	"github.com/m04kA/NSS-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/NSS-BookingService/pkg/txmanager"
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

	log.Info("Starting NSS-BookingService...")
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

	// Клиент email-уведомлений
	notifyClient := notify.NewClient(
		cfg.Notifications.Enabled,
		cfg.Notifications.SendGridAPIKey,
		cfg.Notifications.FromEmail,
		cfg.Notifications.FromName,
		log,
	)
	log.Info("Notification client initialized (enabled=%t)", cfg.Notifications.Enabled)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		catalogRepository     *catalogRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		promotionRepository   *promotionRepo.Repository
		feedbackRepository    *feedbackRepo.Repository
		adminRepository       *adminRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		promotionRepository = promotionRepo.NewRepository(wrappedDB)
		feedbackRepository = feedbackRepo.NewRepository(wrappedDB)
		adminRepository = adminRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		promotionRepository = promotionRepo.NewRepository(db)
		feedbackRepository = feedbackRepo.NewRepository(db)
		adminRepository = adminRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	timeProvider := &createAppointmentUC.RealTimeProvider{}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, notifyClient, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)
	promotionsSvc := promotionsService.NewService(promotionRepository, timeProvider, log)
	feedbackSvc := feedbackService.NewService(feedbackRepository, log)
	reportsSvc := reportsService.NewService(appointmentRepository, feedbackRepository, log)
	authSvc := authService.NewService(
		adminRepository,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
		timeProvider,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		scheduleRepository,
		txMgr,
		notifyClient,
		timeProvider,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		scheduleRepository,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentSvc, log)
	getSalonAppointments := getSalonAppointmentsHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	listMasters := listMastersHandler.NewHandler(catalogSvc, log)
	getSalonSchedule := getSalonScheduleHandler.NewHandler(scheduleSvc, log)
	updateSalonSchedule := updateSalonScheduleHandler.NewHandler(scheduleSvc, log)
	listPromotions := listPromotionsHandler.NewHandler(promotionsSvc, log)
	createPromotion := createPromotionHandler.NewHandler(promotionsSvc, log)
	deletePromotion := deletePromotionHandler.NewHandler(promotionsSvc, log)
	createFeedback := createFeedbackHandler.NewHandler(feedbackSvc, log)
	listFeedback := listFeedbackHandler.NewHandler(feedbackSvc, log)
	publishFeedback := publishFeedbackHandler.NewHandler(feedbackSvc, log)
	getReports := getReportsHandler.NewHandler(reportsSvc, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Витрина салона
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/masters", listMasters.Handle).Methods(http.MethodGet)
	api.HandleFunc("/promotions", listPromotions.Handle).Methods(http.MethodGet)
	api.HandleFunc("/feedback", listFeedback.Handle).Methods(http.MethodGet)
	api.HandleFunc("/feedback", createFeedback.Handle).Methods(http.MethodPost)
	api.HandleFunc("/salon/schedule", getSalonSchedule.Handle).Methods(http.MethodGet)

	// Сетка доступных слотов
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Вход администратора
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// CLIENT ROUTES (требуют X-User-ID header)
	// ============================================================

	client := api.PathPrefix("").Subrouter()
	client.Use(middleware.Auth)

	// Создание записи
	client.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	client.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	client.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// История записей клиента
	client.HandleFunc("/clients/{clientId}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer JWT)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(authSvc))

	// Календарь и управление записями
	admin.HandleFunc("/appointments", getSalonAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.HandleAdmin).Methods(http.MethodPatch)

	// Расписание салона
	admin.HandleFunc("/schedule", updateSalonSchedule.Handle).Methods(http.MethodPut)

	// Акции
	admin.HandleFunc("/promotions", listPromotions.HandleAdmin).Methods(http.MethodGet)
	admin.HandleFunc("/promotions", createPromotion.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/promotions/{promotionId}", deletePromotion.Handle).Methods(http.MethodDelete)

	// Отзывы
	admin.HandleFunc("/feedback", listFeedback.HandleAdmin).Methods(http.MethodGet)
	admin.HandleFunc("/feedback/{feedbackId}/publish", publishFeedback.Handle).Methods(http.MethodPatch)

	// Отчёты
	admin.HandleFunc("/reports", getReports.Handle).Methods(http.MethodGet)

	// Фоновые задачи
	var scheduler *jobs.Scheduler
	if cfg.Jobs.Enabled {
		scheduler = jobs.NewScheduler(appointmentRepository, notifyClient, log)
		if err := scheduler.Start(cfg.Jobs.CompletionSpec, cfg.Jobs.ReminderSpec); err != nil {
			log.Fatal("Failed to start job scheduler: %v", err)
		}
	}

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

	// Останавливаем фоновые задачи
	if scheduler != nil {
		scheduler.Stop()
	}

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

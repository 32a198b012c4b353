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

	blockSlotHandler "github.com/tapcafe/TapCafe-SlotService/internal/api/handlers/block_slot"
	cancelOrderHandler "github.com/tapcafe/TapCafe-SlotService/internal/api/handlers/cancel_order"
	confirmPaymentHandler "github.com/tapcafe/TapCafe-SlotService/internal/api/handlers/confirm_payment"
	createOrderHandler "github.com/tapcafe/TapCafe-SlotService/internal/api/handlers/create_order"
	createTemplateHandler "github.com/tapcafe/TapCafe-SlotService/internal/api/handlers/create_template"
	deleteTemplateHandler "github.com/tapcafe/TapCafe-SlotService/internal/api/handlers/delete_template"
	getAvailableSlotsHandler "github.com/tapcafe/TapCafe-SlotService/internal/api/handlers/get_available_slots"
	getDayAvailabilityHandler "github.com/tapcafe/TapCafe-SlotService/internal/api/handlers/get_day_availability"
	getOrderHandler "github.com/tapcafe/TapCafe-SlotService/internal/api/handlers/get_order"
	getUserOrdersHandler "github.com/tapcafe/TapCafe-SlotService/internal/api/handlers/get_user_orders"
	initTemplatesHandler "github.com/tapcafe/TapCafe-SlotService/internal/api/handlers/init_templates"
	listTemplatesHandler "github.com/tapcafe/TapCafe-SlotService/internal/api/handlers/list_templates"
	updateTemplateHandler "github.com/tapcafe/TapCafe-SlotService/internal/api/handlers/update_template"
	"github.com/tapcafe/TapCafe-SlotService/internal/api/middleware"
	"github.com/tapcafe/TapCafe-SlotService/internal/config"
	availabilityRepo "github.com/tapcafe/TapCafe-SlotService/internal/infra/storage/availability"
	orderRepo "github.com/tapcafe/TapCafe-SlotService/internal/infra/storage/order"
	templateRepo "github.com/tapcafe/TapCafe-SlotService/internal/infra/storage/template"
	paymentsClient "github.com/tapcafe/TapCafe-SlotService/internal/integrations/payments"
	bookingService "github.com/tapcafe/TapCafe-SlotService/internal/service/booking"
	ordersService "github.com/tapcafe/TapCafe-SlotService/internal/service/orders"
	slotsService "github.com/tapcafe/TapCafe-SlotService/internal/service/slots"
	templatesService "github.com/tapcafe/TapCafe-SlotService/internal/service/templates"
	createOrderUC "github.com/tapcafe/TapCafe-SlotService/internal/usecase/create_order"
	getAvailableSlotsUC "github.com/tapcafe/TapCafe-SlotService/internal/usecase/get_available_slots"
	"github.com/tapcafe/TapCafe-SlotService/pkg/dbmetrics"
	"github.com/tapcafe/TapCafe-SlotService/pkg/logger"
	"github.com/tapcafe/TapCafe-SlotService/pkg/metrics"
	"github.com/tapcafe/TapCafe-SlotService/pkg/simpletxmanager"
	"github.com/tapcafe/TapCafe-SlotService/pkg/txmanager"
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

	log.Info("Starting TapCafe-SlotService...")
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

	// Инициализируем клиента платежного шлюза
	payments := paymentsClient.NewClient(
		cfg.Payments.URL,
		cfg.Payments.KeyID,
		cfg.Payments.KeySecret,
		time.Duration(cfg.Payments.Timeout)*time.Second,
		log,
	)
	log.Info("Payments client initialized (url=%s, timeout=%ds)", cfg.Payments.URL, cfg.Payments.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		templateRepository     *templateRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		orderRepository        *orderRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		templateRepository = templateRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		orderRepository = orderRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		templateRepository = templateRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		orderRepository = orderRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	templatesSvc := templatesService.NewService(templateRepository, log)
	slotsSvc := slotsService.NewService(availabilityRepository, templateRepository, log)
	bookingSvc := bookingService.NewService(availabilityRepository, log)
	ordersSvc := ordersService.NewService(orderRepository, bookingSvc, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(slotsSvc, log)
	createOrderUseCase := createOrderUC.NewUseCase(
		bookingSvc,
		orderRepository,
		payments,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createTemplate := createTemplateHandler.NewHandler(templatesSvc, log)
	listTemplates := listTemplatesHandler.NewHandler(templatesSvc, log)
	updateTemplate := updateTemplateHandler.NewHandler(templatesSvc, log)
	deleteTemplate := deleteTemplateHandler.NewHandler(templatesSvc, log)
	initTemplates := initTemplatesHandler.NewHandler(templatesSvc, log)
	getDayAvailability := getDayAvailabilityHandler.NewHandler(slotsSvc, log)
	blockSlot := blockSlotHandler.NewHandler(slotsSvc, log)
	createOrder := createOrderHandler.NewHandler(createOrderUseCase, log)
	cancelOrder := cancelOrderHandler.NewHandler(ordersSvc, log)
	confirmPayment := confirmPaymentHandler.NewHandler(ordersSvc, log)
	getOrder := getOrderHandler.NewHandler(ordersSvc, log)
	getUserOrders := getUserOrdersHandler.NewHandler(ordersSvc, log)

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

	// Доступные слоты выдачи на дату (чекаут)
	api.HandleFunc("/cafes/{cafeId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Шаблоны слотов (админка кафе) ---
	// Создание шаблона
	protected.HandleFunc("/cafes/{cafeId}/slots", createTemplate.Handle).Methods(http.MethodPost)

	// Список шаблонов кафе (включая неактивные)
	protected.HandleFunc("/cafes/{cafeId}/slots", listTemplates.Handle).Methods(http.MethodGet)

	// Генерация сетки шаблонов по умолчанию
	protected.HandleFunc("/cafes/{cafeId}/slots/init", initTemplates.Handle).Methods(http.MethodPost)

	// Частичное обновление шаблона
	protected.HandleFunc("/cafes/{cafeId}/slots/{templateId}", updateTemplate.Handle).Methods(http.MethodPatch)

	// Удаление шаблона
	protected.HandleFunc("/cafes/{cafeId}/slots/{templateId}", deleteTemplate.Handle).Methods(http.MethodDelete)

	// --- Журнал доступности (админка кафе) ---
	// Просмотр всего дня без фильтрации по времени
	protected.HandleFunc("/cafes/{cafeId}/availability", getDayAvailability.Handle).Methods(http.MethodGet)

	// Ручная блокировка/разблокировка слота
	protected.HandleFunc("/availability/{slotId}/block", blockSlot.Handle).Methods(http.MethodPatch)

	// --- Заказы ---
	// Создание заказа с бронированием слота
	protected.HandleFunc("/orders", createOrder.Handle).Methods(http.MethodPost)

	// Получение заказа по ID
	protected.HandleFunc("/orders/{orderId}", getOrder.Handle).Methods(http.MethodGet)

	// Отмена заказа
	protected.HandleFunc("/orders/{orderId}/cancel", cancelOrder.Handle).Methods(http.MethodPatch)

	// Подтверждение оплаты заказа
	protected.HandleFunc("/orders/{orderId}/payment/confirm", confirmPayment.Handle).Methods(http.MethodPost)

	// История заказов пользователя
	protected.HandleFunc("/users/{userId}/orders", getUserOrders.Handle).Methods(http.MethodGet)

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

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

	createSaleHandler "github.com/m04kA/SMC-SalePlannerService/internal/api/handlers/create_sale"
	deleteSaleHandler "github.com/m04kA/SMC-SalePlannerService/internal/api/handlers/delete_sale"
	getPlatformRulesHandler "github.com/m04kA/SMC-SalePlannerService/internal/api/handlers/get_platform_rules"
	getProductSalesHandler "github.com/m04kA/SMC-SalePlannerService/internal/api/handlers/get_product_sales"
	getSaleHandler "github.com/m04kA/SMC-SalePlannerService/internal/api/handlers/get_sale"
	moveSaleHandler "github.com/m04kA/SMC-SalePlannerService/internal/api/handlers/move_sale"
	validatePlacementHandler "github.com/m04kA/SMC-SalePlannerService/internal/api/handlers/validate_placement"
	"github.com/m04kA/SMC-SalePlannerService/internal/api/middleware"
	"github.com/m04kA/SMC-SalePlannerService/internal/config"
	saleRepo "github.com/m04kA/SMC-SalePlannerService/internal/infra/storage/sale"
	platformServiceClient "github.com/m04kA/SMC-SalePlannerService/internal/integrations/platformservice"
	platformsService "github.com/m04kA/SMC-SalePlannerService/internal/service/platforms"
	salesService "github.com/m04kA/SMC-SalePlannerService/internal/service/sales"
	createSaleUC "github.com/m04kA/SMC-SalePlannerService/internal/usecase/create_sale"
	moveSaleUC "github.com/m04kA/SMC-SalePlannerService/internal/usecase/move_sale"
	validatePlacementUC "github.com/m04kA/SMC-SalePlannerService/internal/usecase/validate_placement"
	"github.com/m04kA/SMC-SalePlannerService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalePlannerService/pkg/logger"
	"github.com/m04kA/SMC-SalePlannerService/pkg/metrics"
	"github.com/m04kA/SMC-SalePlannerService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-SalePlannerService/pkg/txmanager"
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

	log.Info("Starting SMC-SalePlannerService...")
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

	// Инициализируем клиент сервиса площадок
	platformClient := platformServiceClient.NewClient(
		cfg.PlatformService.URL,
		time.Duration(cfg.PlatformService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (PlatformService=%s timeout=%ds)",
		cfg.PlatformService.URL, cfg.PlatformService.Timeout)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var saleRepository *saleRepo.Repository

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		saleRepository = saleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		saleRepository = saleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	salesSvc := salesService.NewService(saleRepository, log)
	platformsSvc := platformsService.NewService(platformClient, log)

	// Инициализируем use cases
	createSaleUseCase := createSaleUC.NewUseCase(
		saleRepository,
		platformClient,
		txMgr,
		log,
	)

	moveSaleUseCase := moveSaleUC.NewUseCase(
		saleRepository,
		platformClient,
		txMgr,
		log,
	)

	validatePlacementUseCase := validatePlacementUC.NewUseCase(
		saleRepository,
		platformClient,
		log,
	)

	// Инициализируем handlers
	createSale := createSaleHandler.NewHandler(createSaleUseCase, log)
	moveSale := moveSaleHandler.NewHandler(moveSaleUseCase, log)
	validatePlacement := validatePlacementHandler.NewHandler(validatePlacementUseCase, log)
	getSale := getSaleHandler.NewHandler(salesSvc, log)
	deleteSale := deleteSaleHandler.NewHandler(salesSvc, log)
	getProductSales := getProductSalesHandler.NewHandler(salesSvc, log)
	getPlatformRules := getPlatformRulesHandler.NewHandler(platformsSvc, log)

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

	// Спекулятивная проверка размещения (дергается UI при перетаскивании)
	api.HandleFunc("/sales/validate", validatePlacement.Handle).Methods(http.MethodPost)

	// Правила площадки (cooldown, максимальная длительность, исключения)
	api.HandleFunc("/platforms/{platformId}/rules", getPlatformRules.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Распродажи ---
	// Размещение распродажи
	protected.HandleFunc("/sales", createSale.Handle).Methods(http.MethodPost)

	// Получение распродажи по ID
	protected.HandleFunc("/sales/{saleId}", getSale.Handle).Methods(http.MethodGet)

	// Удаление распродажи
	protected.HandleFunc("/sales/{saleId}", deleteSale.Handle).Methods(http.MethodDelete)

	// Перемещение распродажи с каскадным сдвигом соседей
	protected.HandleFunc("/sales/{saleId}/move", moveSale.Handle).Methods(http.MethodPost)

	// --- Календарь товара ---
	// Распродажи товара с фильтрацией по площадке и периоду
	protected.HandleFunc("/products/{productId}/sales", getProductSales.Handle).Methods(http.MethodGet)

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

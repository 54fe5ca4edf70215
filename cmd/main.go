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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	calculatePriceHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/calculate_price"
	cancelBookingHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/check_availability"
	convertCurrencyHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/convert_currency"
	createBookingHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/get_user_bookings"
	getVenueBookingsHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/get_venue_bookings"
	updateBookingStatusHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBooking/internal/config"
	ratesCache "github.com/m04kA/SMC-VenueBooking/internal/infra/cache/rates"
	blackoutRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/blackout"
	bookingRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/booking"
	discountRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/discount"
	pricingRuleRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/pricing_rule"
	venueRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueBooking/internal/integrations/fxservice"
	bookingsService "github.com/m04kA/SMC-VenueBooking/internal/service/bookings"
	"github.com/m04kA/SMC-VenueBooking/internal/service/currency"
	"github.com/m04kA/SMC-VenueBooking/internal/service/discount"
	"github.com/m04kA/SMC-VenueBooking/internal/service/pricing"
	calculatePriceUC "github.com/m04kA/SMC-VenueBooking/internal/usecase/calculate_price"
	checkAvailabilityUC "github.com/m04kA/SMC-VenueBooking/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-VenueBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-VenueBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueBooking/pkg/logger"
	"github.com/m04kA/SMC-VenueBooking/pkg/metrics"
	"github.com/m04kA/SMC-VenueBooking/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("VENUE_CONFIG"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-VenueBooking...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	// nil *metrics.Metrics безопасен: все методы проверяют получатель
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
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

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	venueRepository := venueRepo.NewRepository(wrappedDB)
	blackoutRepository := blackoutRepo.NewRepository(wrappedDB)
	ruleRepository := pricingRuleRepo.NewRepository(wrappedDB)
	discountRepository := discountRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Источник курсов валют: сервис курсов, опционально через Redis
	var liveRates currency.RateSource
	var redisClient *redis.Client

	if cfg.FXService.Enabled {
		fxClient := fxservice.NewClient(
			cfg.FXService.URL,
			cfg.Currency.Base,
			time.Duration(cfg.FXService.Timeout)*time.Second,
			log,
		)
		liveRates = fxClient
		log.Info("FX service client initialized (url=%s, timeout=%ds)", cfg.FXService.URL, cfg.FXService.Timeout)

		if cfg.Redis.Enabled {
			redisClient = redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})

			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			if err := redisClient.Ping(pingCtx).Err(); err != nil {
				// Кэш деградирует сам: при ошибках Redis курсы берутся напрямую
				log.Warn("Redis is not reachable at %s: %v", cfg.Redis.Addr, err)
			}
			cancel()

			liveRates = ratesCache.NewCache(
				redisClient,
				fxClient,
				cfg.Currency.Base,
				time.Duration(cfg.Redis.RatesTTL)*time.Second,
				log,
			)
			log.Info("FX rates cached in Redis (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.RatesTTL)
		}
	}

	staticRates := currency.DefaultRates().WithOverrides(cfg.Currency.Rates)
	converter := currency.NewConverter(liveRates, staticRates, metricsCollector, log)

	// Инициализируем сервисы
	ruleSelector, err := pricing.NewRuleSelector(cfg.Pricing.RuleSelection)
	if err != nil {
		log.Fatal("Invalid pricing rule selection %q: %v", cfg.Pricing.RuleSelection, err)
	}

	discountValidator := discount.NewValidator(discountRepository, &discount.RealTimeProvider{}, metricsCollector, log)
	calculator := pricing.NewCalculator(ruleSelector, discountValidator, metricsCollector, log)

	bookingSvc := bookingsService.NewService(
		bookingRepository,
		venueRepository,
		log,
	)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		blackoutRepository,
		metricsCollector,
		log,
	)

	calculatePriceUseCase := calculatePriceUC.NewUseCase(
		venueRepository,
		ruleRepository,
		calculator,
		converter,
		cfg.Pricing.AllowFullDayWrap,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		venueRepository,
		bookingRepository,
		blackoutRepository,
		ruleRepository,
		calculator,
		txMgr,
		cfg.Pricing.AllowFullDayWrap,
		log,
	)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	calculatePrice := calculatePriceHandler.NewHandler(calculatePriceUseCase, log)
	convertCurrency := convertCurrencyHandler.NewHandler(converter, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getVenueBookings := getVenueBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверка доступности площадки
	api.HandleFunc("/venues/{venueId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Расчет стоимости аренды
	api.HandleFunc("/venues/{venueId}/quote", calculatePrice.Handle).Methods(http.MethodPost)

	// Конвертация валют
	api.HandleFunc("/currency/convert", convertCurrency.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление площадкой (для владельцев) ---
	protected.HandleFunc("/venues/{venueId}/bookings", getVenueBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Warn("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/Droply-AvailabilityService/internal/api/handlers"
	clearDayOverrideHandler "github.com/m04kA/Droply-AvailabilityService/internal/api/handlers/clear_day_override"
	createSessionHandler "github.com/m04kA/Droply-AvailabilityService/internal/api/handlers/create_session"
	deleteSessionHandler "github.com/m04kA/Droply-AvailabilityService/internal/api/handlers/delete_session"
	getDaySlotsHandler "github.com/m04kA/Droply-AvailabilityService/internal/api/handlers/get_day_slots"
	getMonthViewHandler "github.com/m04kA/Droply-AvailabilityService/internal/api/handlers/get_month_view"
	getRulesHandler "github.com/m04kA/Droply-AvailabilityService/internal/api/handlers/get_rules"
	setDayOverrideHandler "github.com/m04kA/Droply-AvailabilityService/internal/api/handlers/set_day_override"
	setWeekendLockHandler "github.com/m04kA/Droply-AvailabilityService/internal/api/handlers/set_weekend_lock"
	updateDefaultsHandler "github.com/m04kA/Droply-AvailabilityService/internal/api/handlers/update_defaults"
	"github.com/m04kA/Droply-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/Droply-AvailabilityService/internal/availability"
	"github.com/m04kA/Droply-AvailabilityService/internal/config"
	"github.com/m04kA/Droply-AvailabilityService/internal/domain"
	sessionRepo "github.com/m04kA/Droply-AvailabilityService/internal/infra/storage/session"
	rulesService "github.com/m04kA/Droply-AvailabilityService/internal/service/rules"
	getDaySlotsUC "github.com/m04kA/Droply-AvailabilityService/internal/usecase/get_day_slots"
	getMonthViewUC "github.com/m04kA/Droply-AvailabilityService/internal/usecase/get_month_view"
	"github.com/m04kA/Droply-AvailabilityService/pkg/logger"
	"github.com/m04kA/Droply-AvailabilityService/pkg/metrics"
)

// localTimeProvider текущее время в часовом поясе календаря
type localTimeProvider struct {
	location *time.Location
}

func (p localTimeProvider) Now() time.Time {
	return time.Now().In(p.location)
}

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

	log.Info("Starting Droply-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Calendar.Location()
	if err != nil {
		log.Fatal("Failed to load calendar timezone %q: %v", cfg.Calendar.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, nil)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище сессий и фоновая очистка неактивных
	sessions := sessionRepo.NewRepository(cfg.Sessions.MaxSessions, cfg.Sessions.IdleTTL())
	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	janitorDone := make(chan struct{})
	go func() {
		defer close(janitorDone)
		sessions.RunJanitor(janitorCtx, cfg.Sessions.JanitorInterval(), log, metricsCollector)
	}()
	log.Info("Session store initialized (max_sessions=%d, idle_ttl=%s, janitor_interval=%s)",
		cfg.Sessions.MaxSessions, cfg.Sessions.IdleTTL(), cfg.Sessions.JanitorInterval())

	// Инициализируем сервисы
	mutator := availability.NewMutator(cfg.Calendar.UnlockScope())
	rulesSvc := rulesService.NewService(
		sessions,
		mutator,
		rulesService.SessionDefaults{
			DurationMinutes: cfg.Calendar.DefaultDurationMinutes,
			WorkingHours: domain.WorkingHours{
				StartHour: cfg.Calendar.StartHour,
				EndHour:   cfg.Calendar.EndHour,
			},
			LockWeekends: cfg.Calendar.LockWeekends,
		},
		localTimeProvider{location: location},
		metricsCollector,
		log,
	)
	log.Info("Rules service initialized (weekend_unlock_scope=%s, timezone=%s)", mutator.UnlockScope(), location)

	// Инициализируем use cases
	getMonthViewUseCase := getMonthViewUC.NewUseCase(rulesSvc, metricsCollector, location, log)
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(rulesSvc, metricsCollector, location, log)

	// Инициализируем handlers
	createSession := createSessionHandler.NewHandler(rulesSvc, log)
	deleteSession := deleteSessionHandler.NewHandler(rulesSvc, log)
	getRules := getRulesHandler.NewHandler(rulesSvc, log)
	updateDefaults := updateDefaultsHandler.NewHandler(rulesSvc, log)
	setWeekendLock := setWeekendLockHandler.NewHandler(rulesSvc, log)
	setDayOverride := setDayOverrideHandler.NewHandler(rulesSvc, log)
	clearDayOverride := clearDayOverrideHandler.NewHandler(rulesSvc, log)
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	getMonthView := getMonthViewHandler.NewHandler(getMonthViewUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"status":   "ok",
			"sessions": sessions.Count(),
		})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, log)
		api.Use(limiter.Middleware)
		log.Info("Rate limit enabled (requests_per_minute=%d, burst=%d)",
			cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}

	// --- Сессии ---
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", deleteSession.Handle).Methods(http.MethodDelete)

	// --- Правила ---
	api.HandleFunc("/sessions/{sessionId}/rules", getRules.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/rules/defaults", updateDefaults.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/rules/weekend-lock", setWeekendLock.Handle).Methods(http.MethodPut)

	// --- Правила конкретной даты ---
	api.HandleFunc("/sessions/{sessionId}/days/{date}", setDayOverride.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/days/{date}", clearDayOverride.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{sessionId}/days/{date}/slots", getDaySlots.Handle).Methods(http.MethodGet)

	// --- Календарь ---
	api.HandleFunc("/sessions/{sessionId}/calendar", getMonthView.Handle).Methods(http.MethodGet)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем очистку сессий
	stopJanitor()
	<-janitorDone
	log.Info("Session janitor stopped")

	log.Info("Server stopped gracefully")
}

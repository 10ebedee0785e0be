// Iris API — REST сервис для запросов, фильтрации и описательной
// статистики над эталонным датасетом ирисов.
//
// Хранилище выбирается по окружению: если задан DB_URL, датасет
// живёт в PostgreSQL (таблица засевается из вшитого CSV при первом
// старте); иначе используется вшитый датасет в памяти процесса.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shaiso/iris-api/internal/api"
	"github.com/shaiso/iris-api/internal/dataset"
	"github.com/shaiso/iris-api/internal/repo"
	"github.com/shaiso/iris-api/internal/telemetry"
)

var (
	startTime = time.Now()
	reqTotal  = promauto.NewCounter(prometheus.CounterOpts{
		Name: "iris_api_http_requests_total",
		Help: "Total HTTP requests handled by iris-api",
	})
)

func main() {
	// Инициализируем structured logging
	logger := telemetry.SetupLogger()
	logger.Info("starting iris-api")

	// Загружаем эталонный датасет. Без него сервис бесполезен:
	// любая ошибка загрузки фатальна.
	flowers, err := dataset.Load()
	if err != nil {
		logger.Error("failed to load dataset", "error", err)
		os.Exit(1)
	}
	logger.Info("dataset loaded", "records", len(flowers))

	cfg := api.Config{Logger: logger}

	if os.Getenv("DB_URL") != "" {
		// Подключаемся к базе данных и засеваем её датасетом
		pool, err := repo.NewPool(context.Background())
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		flowerRepo := repo.NewFlowerRepo(pool)
		if err := flowerRepo.EnsureSchema(context.Background()); err != nil {
			logger.Error("failed to create schema", "error", err)
			os.Exit(1)
		}
		if err := flowerRepo.SeedIfEmpty(context.Background(), flowers); err != nil {
			logger.Error("failed to seed dataset", "error", err)
			os.Exit(1)
		}
		logger.Info("connected to database")

		cfg.Flowers = flowerRepo
		cfg.Species = repo.NewSpeciesRepo(pool)
	} else {
		// Без DB_URL работаем поверх датасета в памяти
		store := dataset.NewStore(flowers)
		cfg.Flowers = store
		cfg.Species = store
		logger.Info("using in-memory store")
	}

	handler := api.NewHandler(cfg)

	mux := http.NewServeMux()

	// Health и metrics
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		reqTotal.Inc()
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "ok %s", time.Since(startTime))
	})
	mux.Handle("/metrics", promhttp.Handler())

	// Регистрируем API маршруты
	handler.RegisterRoutes(mux)

	addr := ":8080"
	if v := os.Getenv("API_PORT"); v != "" {
		addr = ":" + v
	}

	// Создаём HTTP сервер с возможностью graceful shutdown
	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Запускаем сервер в горутине
	go func() {
		logger.Info("listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Ожидаем сигнал завершения
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	<-ctx.Done()
	logger.Info("shutting down")

	// Graceful shutdown с таймаутом 10 секунд
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("stopped")
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"carousel-workers/internal/common/camunda"
	"carousel-workers/internal/common/config"
	"carousel-workers/internal/common/database"
	"carousel-workers/internal/common/logger"
	"carousel-workers/internal/common/observability"
	"carousel-workers/internal/embedding"
	"carousel-workers/internal/selection"
	"carousel-workers/pkg/catalog"

	rt "carousel-workers/internal/workers/content/resolve-template"
	st "carousel-workers/internal/workers/content/select-template"
)

// retryWithBackoff attempts to execute a function with exponential backoff.
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Camunda Client with retry ---
	var camundaClient *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		camundaClient, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
			ConnectionTimeout:      10 * time.Second,
			RequestTimeout:         time.Duration(cfg.Camunda.RequestTimeout) * time.Millisecond,
		})
		return err
	}, 10, 2*time.Second, zapLog, "Camunda client initialization")

	if err != nil {
		zapLog.Fatal("camunda client failed after retries", zap.Error(err))
	}
	zapLog.Info("Camunda client connected successfully")

	// --- Init Redis with retry (embedding cache, optional) ---
	var redis *database.RedisClient
	if cfg.Database.Redis.Enabled {
		err = retryWithBackoff(func() error {
			var err error
			redis, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return redis.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redis.Close()
		zapLog.Info("Redis connected successfully")
	}

	// --- Load Template Catalog ---
	var cat *catalog.Catalog
	if cfg.Catalog.Path != "" {
		cat, err = catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			zapLog.Fatal("catalog load failed", zap.Error(err), zap.String("path", cfg.Catalog.Path))
		}
		zapLog.Info("template catalog loaded", zap.String("path", cfg.Catalog.Path), zap.Int("templates", cat.Len()))
	} else {
		cat = catalog.Default()
		zapLog.Info("using built-in template catalog", zap.Int("templates", cat.Len()))
	}

	// --- Embedding Provider (optional) ---
	var provider embedding.Provider
	if cfg.Embedding.Enabled {
		ollama := embedding.NewOllama(embedding.Config{
			BaseURL: cfg.Embedding.BaseURL,
			Preset:  embedding.Preset(cfg.Embedding.Preset),
			Timeout: time.Duration(cfg.Embedding.Timeout) * time.Millisecond,
		}, log)
		provider = ollama

		if redis != nil && cfg.Embedding.CacheTTL > 0 {
			provider = embedding.NewCachedProvider(
				ollama,
				redis.Client,
				time.Duration(cfg.Embedding.CacheTTL)*time.Second,
				log,
			)
		}
		zapLog.Info("embedding provider configured",
			zap.String("preset", cfg.Embedding.Preset),
			zap.Bool("cached", redis != nil && cfg.Embedding.CacheTTL > 0),
		)
	} else {
		zapLog.Info("embedding disabled, selections will use keyword scoring")
	}

	selector := selection.New(
		cat,
		provider,
		selection.TonePolicy{MaxBoost: cfg.Selection.ToneMaxBoost},
		log,
	)

	// --- Register Workers ---
	var workers []*camunda.CamundaWorker

	if wcfg := cfg.Workers[st.TaskType]; wcfg.Enabled {
		handler := st.NewHandler(
			&st.Config{
				Timeout: time.Duration(wcfg.Timeout) * time.Millisecond,
			},
			selector, log,
		)
		workers = append(workers, camunda.NewWorker(
			camundaClient.GetClient(), st.TaskType,
			wcfg.MaxJobsActive, time.Duration(wcfg.Timeout)*time.Millisecond,
			handler.Handle, zapLog,
		))
	} else {
		zapLog.Info("worker disabled", zap.String("taskType", st.TaskType))
	}

	if wcfg := cfg.Workers[rt.TaskType]; wcfg.Enabled {
		handler := rt.NewHandler(
			&rt.Config{
				Timeout: time.Duration(wcfg.Timeout) * time.Millisecond,
			},
			cat, log,
		)
		workers = append(workers, camunda.NewWorker(
			camundaClient.GetClient(), rt.TaskType,
			wcfg.MaxJobsActive, time.Duration(wcfg.Timeout)*time.Millisecond,
			handler.Handle, zapLog,
		))
	} else {
		zapLog.Info("worker disabled", zap.String("taskType", rt.TaskType))
	}

	zapLog.Info("All workers registered successfully", zap.Int("count", len(workers)))

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			checkCtx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
			defer cancel()
			if err := camundaClient.HealthCheck(checkCtx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(map[string]string{
					"status": "not ready",
					"error":  err.Error(),
				})
				return
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	for _, w := range workers {
		w.Stop()
	}

	if err := camundaClient.Close(); err != nil {
		zapLog.Error("Error closing Camunda client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

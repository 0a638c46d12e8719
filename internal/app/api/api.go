package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"healthtracker/internal/app/config"
	"healthtracker/internal/app/dsn"
	"healthtracker/internal/app/handler"
	"healthtracker/internal/app/middleware"
	"healthtracker/internal/app/pkg/cache"
	"healthtracker/internal/app/pkg/coach"
	"healthtracker/internal/app/pkg/fitness"
	"healthtracker/internal/app/pkg/storage"
	"healthtracker/internal/app/repository"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

// Application собирает все зависимости сервиса
type Application struct {
	Config     *config.Config
	Repository *repository.Repository
	Handler    *handler.Handler
	Router     *gin.Engine

	redis *cache.RedisCache
}

// New поднимает обязательную БД и необязательные Redis, MinIO, Google Fit и Gemini.
// Если необязательный сервис недоступен, приложение работает без него.
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	ConfigureLogging(cfg.LogFormat)

	repo, err := repository.New(dsn.Dialector())
	if err != nil {
		return nil, err
	}
	if err := repo.AutoMigrate(); err != nil {
		_ = repo.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	app := &Application{Config: cfg, Repository: repo}

	var metricsCache fitness.Cache
	rc, err := cache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.MetricsTTL)
	if err != nil {
		log.WithError(err).Warn("redis unavailable, metrics will not be cached")
	} else {
		app.redis = rc
		metricsCache = rc
	}

	var images handler.ImageStorage
	if cfg.MinIO.AccessKey != "" {
		m, err := storage.NewMinIO(ctx,
			net.JoinHostPort(cfg.MinIO.Host, cfg.MinIO.Port),
			cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, cfg.MinIO.Bucket,
			cfg.MinIO.UseSSL, cfg.MinIO.PublicBase)
		if err != nil {
			log.WithError(err).Warn("minio unavailable, image upload disabled")
		} else {
			images = m
		}
	} else {
		log.Info("minio credentials not set, image upload disabled")
	}

	var source fitness.Source
	if opts := fitness.ClientOptionsFromEnv(); opts != nil {
		gf, err := fitness.NewGoogleFit(ctx, opts...)
		if err != nil {
			log.WithError(err).Warn("google fit client init failed, serving mock metrics")
		} else {
			source = gf
		}
	} else {
		log.Info("google credentials not set, serving mock metrics")
	}
	metrics := fitness.NewService(source, metricsCache, cfg.Fitness.Timeout)

	if cfg.Coach.APIKey == "" {
		log.Warn("GEMINI_API_KEY not set, coach endpoints will answer 503")
	}
	gemini := coach.NewGeminiClient(cfg.Coach.Endpoint, cfg.Coach.Model, cfg.Coach.APIKey, coach.GenerationConfig{
		Temperature:     cfg.Coach.Temperature,
		TopK:            cfg.Coach.TopK,
		TopP:            cfg.Coach.TopP,
		MaxOutputTokens: cfg.Coach.MaxTokens,
	}, cfg.Coach.Timeout)

	app.Handler = handler.NewHandler(repo, cfg, images, metrics, coach.New(gemini))
	app.Router = NewRouter(cfg, app.Handler)
	return app, nil
}

// NewRouter регистрирует middleware и маршруты
func NewRouter(cfg *config.Config, h *handler.Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log.StandardLogger()))
	router.Use(middleware.CORS(cfg.CORSOrigins))
	h.RegisterHandler(router)
	return router
}

// ConfigureLogging выбирает формат логов: "json" или текст
func ConfigureLogging(format string) {
	if format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
		return
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

// Run слушает порт до SIGINT/SIGTERM и затем корректно останавливает сервер
func (a *Application) Run() error {
	addr := net.JoinHostPort(a.Config.ServiceHost, strconv.Itoa(a.Config.ServicePort))
	srv := &http.Server{
		Addr:              addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("server start up")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(ctx)
	log.Info("server down")
	return err
}

func (a *Application) Close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.Repository != nil {
		_ = a.Repository.Close()
	}
}

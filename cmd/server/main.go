package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/outliner-coach/letmeknowme/internal/cache"
	"github.com/outliner-coach/letmeknowme/internal/config"
	"github.com/outliner-coach/letmeknowme/internal/logger"
	"github.com/outliner-coach/letmeknowme/internal/metrics"
	"github.com/outliner-coach/letmeknowme/internal/remote"
	"github.com/outliner-coach/letmeknowme/internal/repository"
	"github.com/outliner-coach/letmeknowme/internal/service"
	"github.com/outliner-coach/letmeknowme/internal/transport/rest"
	"github.com/outliner-coach/letmeknowme/internal/transport/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("", "info").WithError(err).Fatal("invalid configuration")
	}

	log := logger.New(cfg.Environment, cfg.LogLevel)
	log.WithField("backend", cfg.ReportBackend).Info("starting letmeknowme")
	ctx := context.Background()

	// Report store
	var (
		reportRepo  repository.ReportRepo
		contentRepo repository.ContentRepo
	)

	switch cfg.ReportBackend {
	case config.BackendRemote:
		store := remote.NewReportStore(remote.NewClient(cfg.RemoteBaseURL, cfg.RemoteTimeout, log))
		reportRepo, contentRepo = store, store
		log.WithField("base_url", cfg.RemoteBaseURL).Info("using hosted report store")

	default:
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.WithError(err).Fatal("failed to connect to MongoDB")
		}
		defer mongoClient.Disconnect(ctx)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = mongoClient.Ping(pingCtx, nil)
		cancel()
		if err != nil {
			log.WithError(err).Fatal("failed to ping MongoDB")
		}
		log.Info("connected to MongoDB")

		db := mongoClient.Database(cfg.MongoDB)
		reportRepo = repository.NewReportRepo(db)
		contentRepo = repository.NewContentRepo(db)
	}

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr(),
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.WithError(err).Fatal("failed to ping Redis")
	}
	log.Info("connected to Redis")

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Initialize WebSocket hub
	wsHub := ws.NewHub(log)
	defer wsHub.Close()

	// Initialize caches
	contentCache := cache.NewContentCache(rdb, cfg.ContentCacheTTL)
	recentReports := cache.NewRecentReports(rdb)

	// Initialize services
	authSvc := service.NewAuthService(cfg.HostUsername, cfg.HostPassword, cfg.JWTSecret)
	contentSvc := service.NewContentService(contentRepo, contentCache, log)
	reportSvc := service.NewReportService(reportRepo, recentReports, contentSvc, authSvc, m, service.ReportOptions{
		MinResponses:  cfg.MinResponses,
		PublicBaseURL: cfg.PublicBaseURL,
	}, log)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	reportSvc.SetBroadcaster(wsHub)

	router := rest.NewRouter(&rest.Container{
		AuthService:    authSvc,
		ReportService:  reportSvc,
		ContentService: contentSvc,
		WSHub:          wsHub,
		Gatherer:       reg,
		Logger:         log,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).WithField("min_responses", cfg.MinResponses).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}

	log.Info("server exited")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"splash-go/internal/api/handler"
	"splash-go/internal/api/middleware"
	"splash-go/internal/api/router"
	"splash-go/internal/config"
	"splash-go/internal/infra/database"
	infraES "splash-go/internal/infra/elasticsearch"
	infraKafka "splash-go/internal/infra/kafka"
	infraRedis "splash-go/internal/infra/redis"
	"splash-go/internal/model"
	"splash-go/internal/repository"
	"splash-go/internal/service"
	"splash-go/internal/session"
	"splash-go/internal/unsplash"
	"splash-go/pkg/logger"

	_ "splash-go/api/openapi"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title Splash-Go API
// @version 1.0
// @description 图片浏览网关 API 服务

// @host 127.0.0.1:8000
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 本地表：搜索历史与最近搜索
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	if err := database.AutoMigrate(&model.SearchHistory{}, &model.RecentSearch{}); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	store := newSessionStore(cfg)
	defer infraRedis.Close()

	client, err := unsplash.NewClient(unsplash.Options{
		BaseURL:         cfg.Unsplash.BaseURL,
		AccessKey:       cfg.Unsplash.AccessKey,
		Timeout:         cfg.Unsplash.TimeoutDuration(),
		RequestsPerHour: cfg.Unsplash.RateLimit.RequestsPerHour,
		Burst:           cfg.Unsplash.RateLimit.Burst,
		Session:         store,
	})
	if err != nil {
		logger.Fatal("Failed to create upstream client", zap.Error(err))
	}

	// 下载任务队列（未配置 broker 时下载接口返回错误）
	if len(cfg.Kafka.Brokers) > 0 {
		if err := infraKafka.InitProducer(&cfg.Kafka); err != nil {
			logger.Fatal("Failed to init kafka producer", zap.Error(err))
		}
		defer infraKafka.CloseProducer()
	}

	// 初始化 Elasticsearch（可选，失败则搜索联想降级到 DB）
	if len(cfg.Elasticsearch.Hosts) > 0 {
		if err := infraES.Init(&cfg.Elasticsearch); err != nil {
			logger.Warn("Elasticsearch init failed, suggestions will fallback to DB", zap.Error(err))
		} else {
			defer infraES.Close()
			if err := infraES.InitIndexes(); err != nil {
				logger.Warn("Elasticsearch index init failed", zap.Error(err))
			}
		}
	}

	// 初始化依赖（Service -> Repository -> Handler）
	perPage := cfg.Unsplash.PerPage
	photoSvc := unsplash.NewPhotoService(client)
	userSvc := unsplash.NewUserService(client)
	loginSvc := unsplash.NewLoginService(client, unsplash.OAuthOptions{
		OAuthURL:    cfg.Unsplash.OAuthURL,
		SecretKey:   cfg.Unsplash.SecretKey,
		RedirectURI: cfg.Unsplash.RedirectURI,
	})

	db := database.Get()
	photoRepo := repository.NewPhotosRepository(photoSvc, perPage)
	collectionRepo := repository.NewCollectionRepository(unsplash.NewCollectionService(client), perPage)
	topicRepo := repository.NewTopicRepository(unsplash.NewTopicService(client), perPage)
	searchRepo := repository.NewSearchRepository(unsplash.NewSearchService(client), perPage)
	userRepo := repository.NewUserRepository(userSvc, store, perPage)
	loginRepo := repository.NewLoginRepository(loginSvc, userSvc, store)

	searchService := service.NewSearchService(
		repository.NewSearchHistoryRepository(db),
		repository.NewRecentSearchRepository(db),
	)
	downloadService := service.NewDownloadService(photoRepo, nil, cfg.Kafka.Topics["photo_download"])

	if infraES.Enabled() {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			ok, failed, err := searchService.ReindexHistory(ctx)
			if err != nil {
				logger.Warn("Reindex search history failed", zap.Error(err))
				return
			}
			logger.Info("Search history reindexed", zap.Int("success", ok), zap.Int("failed", failed))
		}()
	}

	gin.SetMode(cfg.App.Mode)
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	r.GET("/healthz", healthCheckHandler)

	router.Setup(r, router.Handlers{
		Auth:       handler.NewAuthHandler(loginRepo),
		User:       handler.NewUserHandler(userRepo),
		Photo:      handler.NewPhotoHandler(photoRepo, downloadService),
		Collection: handler.NewCollectionHandler(collectionRepo),
		Topic:      handler.NewTopicHandler(topicRepo),
		Search:     handler.NewSearchHandler(searchRepo, searchService),
	}, middleware.LoginRequired(loginRepo))

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
		zap.String("database", cfg.Database.Driver),
		zap.String("session", cfg.Session.Backend),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
}

// newSessionStore 按配置选择登录态存储
func newSessionStore(cfg *config.Config) session.Store {
	if cfg.Session.Backend != "redis" {
		return session.NewMemoryStore(cfg.Session.Key)
	}
	client, err := infraRedis.Init(&cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to init redis", zap.Error(err))
	}
	return session.NewRedisStore(client, cfg.Session.Key)
}

// healthCheckHandler 健康检查接口，登录态存储不可用时返回 503
func healthCheckHandler(c *gin.Context) {
	cfg := config.Get()
	status, code := "ok", http.StatusOK
	if err := infraRedis.Ping(c.Request.Context()); err != nil {
		logger.Warn("Health check: redis unavailable", zap.Error(err))
		status, code = "degraded", http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   cfg.App.Name,
		"version":   cfg.App.Version,
	})
}

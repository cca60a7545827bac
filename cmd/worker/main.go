package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"splash-go/internal/config"
	infraKafka "splash-go/internal/infra/kafka"
	infraMinio "splash-go/internal/infra/minio"
	"splash-go/internal/service"
	"splash-go/pkg/logger"

	"go.uber.org/zap"
)

const groupID = "splash-go-download-worker"

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := infraMinio.Init(&cfg.MinIO); err != nil {
		logger.Fatal("Failed to init minio", zap.Error(err))
	}

	topic := cfg.Kafka.Topics["photo_download"]
	if topic == "" || len(cfg.Kafka.Brokers) == 0 {
		logger.Fatal("Kafka download topic is not configured")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	worker := service.NewDownloadWorker(nil, nil, cfg.MinIO.Bucket)

	logger.Info("Download worker started",
		zap.String("topic", topic),
		zap.String("group", groupID),
		zap.String("bucket", cfg.MinIO.Bucket),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	infraKafka.StartDownloadConsumer(ctx, cfg.Kafka.Brokers, topic, groupID, worker.Handle)
	logger.Info("Download worker stopped")
}

package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"splash-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// DownloadHandler 处理下载任务的回调函数
type DownloadHandler func(ctx context.Context, task *DownloadTask) error

// messageReader kafka.Reader 中用到的部分
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// StartDownloadConsumer 启动下载任务消费者，阻塞直到 ctx 取消
func StartDownloadConsumer(ctx context.Context, brokers []string, topic, groupID string, handler DownloadHandler) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		Topic:       topic,
		GroupID:     groupID,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.FirstOffset,
	})
	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("Failed to close kafka consumer", zap.Error(err))
		}
	}()

	logger.Info("Kafka download consumer started",
		zap.String("topic", topic),
		zap.String("group", groupID),
	)
	consumeDownloads(ctx, reader, handler)
	logger.Info("Kafka download consumer stopped")
}

// consumeDownloads 逐条处理并提交 offset。处理失败的任务不重试，
// 记录日志后照常提交，避免一张坏图阻塞整个分区。
func consumeDownloads(ctx context.Context, reader messageReader, handler DownloadHandler) {
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("Failed to fetch kafka message", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}

		task, err := DecodeDownloadTask(msg.Value)
		if err != nil {
			logger.Error("Discard malformed download task",
				zap.Error(err),
				zap.ByteString("value", msg.Value),
			)
		} else if err := handler(ctx, task); err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("Failed to handle download task",
				zap.String("task_id", task.TaskID),
				zap.String("photo_id", task.PhotoID),
				zap.Error(err),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			logger.Error("Failed to commit kafka message", zap.Int64("offset", msg.Offset), zap.Error(err))
		}
	}
}

// DecodeDownloadTask 解析消息体，缺少图片 ID 或地址时返回错误
func DecodeDownloadTask(value []byte) (*DownloadTask, error) {
	var task DownloadTask
	if err := json.Unmarshal(value, &task); err != nil {
		return nil, fmt.Errorf("decode download task: %w", err)
	}
	if task.PhotoID == "" || task.URL == "" {
		return nil, errors.New("download task missing photo_id or url")
	}
	return &task, nil
}

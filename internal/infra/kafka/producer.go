package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"splash-go/internal/config"
	"splash-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var ErrProducerNotInitialized = errors.New("kafka producer not initialized")

// messageWriter kafka.Writer 中用到的部分
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

var producer messageWriter

// DownloadTask 图片下载任务消息体
type DownloadTask struct {
	TaskID    string    `json:"task_id"`
	PhotoID   string    `json:"photo_id"`
	Quality   string    `json:"quality"`
	URL       string    `json:"url"`
	Requested time.Time `json:"requested_at"`
}

// ObjectName 下载结果在对象存储中的路径
func (t *DownloadTask) ObjectName() string {
	return fmt.Sprintf("%s/%s-%s.jpg", t.PhotoID, t.Quality, t.TaskID)
}

// InitProducer 初始化 Kafka 生产者。同一张图片的任务按 key 落到同一分区
func InitProducer(cfg *config.KafkaConfig) error {
	if len(cfg.Brokers) == 0 {
		return errors.New("kafka brokers is empty")
	}
	producer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized", zap.Strings("brokers", cfg.Brokers))
	return nil
}

// SendDownloadTask 投递下载任务
func SendDownloadTask(ctx context.Context, topic string, task *DownloadTask) error {
	if producer == nil {
		return ErrProducerNotInitialized
	}
	payload, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal download task: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(task.PhotoID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "task_id", Value: []byte(task.TaskID)},
			{Key: "quality", Value: []byte(task.Quality)},
		},
	}
	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("send download task: %w", err)
	}

	logger.Info("Download task sent",
		zap.String("task_id", task.TaskID),
		zap.String("photo_id", task.PhotoID),
		zap.String("topic", topic),
	)
	return nil
}

// CloseProducer 关闭生产者
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	err := producer.Close()
	producer = nil
	logger.Info("Kafka producer closed")
	return err
}

package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	infraKafka "splash-go/internal/infra/kafka"
	infraMinio "splash-go/internal/infra/minio"
	"splash-go/pkg/logger"

	"go.uber.org/zap"
)

// UploadFunc 保存下载结果，默认为 infraMinio.UploadFile
type UploadFunc func(ctx context.Context, bucket, objectName string, reader io.Reader, size int64, contentType string) (string, error)

// DownloadWorker 消费下载任务，把图片保存到对象存储
type DownloadWorker struct {
	http   *http.Client
	upload UploadFunc
	bucket string
}

func NewDownloadWorker(httpClient *http.Client, upload UploadFunc, bucket string) *DownloadWorker {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Minute}
	}
	if upload == nil {
		upload = infraMinio.UploadFile
	}
	return &DownloadWorker{http: httpClient, upload: upload, bucket: bucket}
}

// Handle 处理一个下载任务
func (w *DownloadWorker) Handle(ctx context.Context, task *infraKafka.DownloadTask) error {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, task.URL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := w.http.Do(req)
	if err != nil {
		return fmt.Errorf("download %s: %w", task.PhotoID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download %s: unexpected status %d", task.PhotoID, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectName, err := w.upload(ctx, w.bucket, task.ObjectName(), resp.Body, resp.ContentLength, contentType)
	if err != nil {
		return err
	}

	logger.Info("Photo downloaded",
		zap.String("task_id", task.TaskID),
		zap.String("photo_id", task.PhotoID),
		zap.String("object", objectName),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

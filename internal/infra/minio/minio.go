package minio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"splash-go/internal/config"
	"splash-go/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

const defaultContentType = "image/jpeg"

var ErrNotInitialized = errors.New("minio client not initialized")

var client *minio.Client

// Init 连接对象存储，下载结果所在的 bucket 不存在时创建
func Init(cfg *config.MinIOConfig) error {
	c, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := ensureBucket(ctx, c, cfg.Bucket); err != nil {
		return err
	}

	client = c
	logger.Info("MinIO connected", zap.String("endpoint", cfg.Endpoint), zap.String("bucket", cfg.Bucket))
	return nil
}

func ensureBucket(ctx context.Context, c *minio.Client, bucket string) error {
	exists, err := c.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", bucket, err)
	}
	if exists {
		return nil
	}
	if err := c.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %s: %w", bucket, err)
	}
	logger.Info("MinIO bucket created", zap.String("bucket", bucket))
	return nil
}

// UploadFile 保存一张下载好的图片，size 未知时传 -1。返回对象名
func UploadFile(ctx context.Context, bucket, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if client == nil {
		return "", ErrNotInitialized
	}
	if contentType == "" {
		contentType = defaultContentType
	}
	info, err := client.PutObject(ctx, bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", objectName, err)
	}
	logger.Debug("Object stored",
		zap.String("bucket", bucket),
		zap.String("object", info.Key),
		zap.Int64("size", info.Size),
	)
	return info.Key, nil
}

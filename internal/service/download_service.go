package service

import (
	"context"
	"fmt"
	"time"

	infraKafka "splash-go/internal/infra/kafka"
	"splash-go/internal/model"
	"splash-go/internal/repository"
	"splash-go/internal/resource"
	"splash-go/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PublishFunc 投递下载任务，默认为 infraKafka.SendDownloadTask
type PublishFunc func(ctx context.Context, topic string, task *infraKafka.DownloadTask) error

type DownloadService struct {
	photos  *repository.PhotosRepository
	publish PublishFunc
	topic   string
}

func NewDownloadService(photos *repository.PhotosRepository, publish PublishFunc, topic string) *DownloadService {
	if publish == nil {
		publish = infraKafka.SendDownloadTask
	}
	return &DownloadService{photos: photos, publish: publish, topic: topic}
}

// Enqueue 下载一张图片：先通知上游统计下载，再按质量取图片地址交给下载队列。
// 只负责投递，不跟踪下载进度。
func (s *DownloadService) Enqueue(ctx context.Context, photoID string, quality model.Quality) (resource.Resource[infraKafka.DownloadTask], error) {
	photoRes, err := s.photos.GetPhoto(ctx, photoID)
	if err != nil {
		return resource.Empty[infraKafka.DownloadTask](), err
	}
	photo, ok := photoRes.Value()
	if !ok {
		return resource.Map(photoRes, func(model.Photo) infraKafka.DownloadTask { return infraKafka.DownloadTask{} }), nil
	}

	linkRes, err := s.photos.TrackDownload(ctx, photoID)
	if err != nil {
		return resource.Empty[infraKafka.DownloadTask](), err
	}
	link, ok := linkRes.Value()
	if !ok {
		return resource.Map(linkRes, func(model.DownloadLink) infraKafka.DownloadTask { return infraKafka.DownloadTask{} }), nil
	}

	url := photo.Urls.URL(quality)
	if url == "" {
		url = link.URL
	}
	if url == "" {
		reason := fmt.Sprintf("photo %s has no %s url", photoID, quality)
		return resource.Error[infraKafka.DownloadTask](nil, &reason), nil
	}

	task := infraKafka.DownloadTask{
		TaskID:    uuid.NewString(),
		PhotoID:   photoID,
		Quality:   string(quality),
		URL:       url,
		Requested: time.Now().UTC(),
	}
	if err := s.publish(ctx, s.topic, &task); err != nil {
		if resource.IsCancellation(ctx, err) {
			return resource.Empty[infraKafka.DownloadTask](), err
		}
		logger.Error("Send download task failed", zap.String("photo_id", photoID), zap.Error(err))
		reason := fmt.Sprintf("提交下载任务失败: %v", err)
		return resource.Error[infraKafka.DownloadTask](nil, &reason), nil
	}
	return resource.Success(task), nil
}

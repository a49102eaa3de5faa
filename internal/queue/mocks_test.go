package queue

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"

	"github.com/lucavs/blog-api/internal/models"
)

type VideoRepoMock struct {
	mock.Mock
}

func (m *VideoRepoMock) GetByID(ctx context.Context, id int64) (*models.Video, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *VideoRepoMock) Create(ctx context.Context, video *models.Video) (int64, error) {
	args := m.Called(ctx, video)
	return args.Get(0).(int64), args.Error(1)
}

func (m *VideoRepoMock) UpdateStatus(ctx context.Context, id int64, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *VideoRepoMock) UpdateStatusAndPath(ctx context.Context, id int64, status, filepath string) error {
	args := m.Called(ctx, id, status, filepath)
	return args.Error(0)
}

type StorageMock struct {
	mock.Mock
}

func (m *StorageMock) Upload(ctx context.Context, bucket, key string, file []byte, contentType string) error {
	args := m.Called(ctx, bucket, key, file, contentType)
	return args.Error(0)
}

func (m *StorageMock) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	args := m.Called(ctx, bucket, key)
	if v := args.Get(0); v != nil {
		return v.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StorageMock) Remove(ctx context.Context, bucket string, keys []string) error {
	args := m.Called(ctx, bucket, keys)
	return args.Error(0)
}

func (m *StorageMock) PublicURL(bucket, key string) string {
	return fmt.Sprintf("https://store.example.com/storage/v1/object/public/%s/%s", bucket, key)
}

type TranscoderMock struct {
	mock.Mock
}

func (m *TranscoderMock) Transcode(ctx context.Context, videoID int64, filePath string) (string, error) {
	args := m.Called(ctx, videoID, filePath)
	return args.String(0), args.Error(1)
}

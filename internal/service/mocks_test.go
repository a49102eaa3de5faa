package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/lucavs/blog-api/internal/models"
)

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

type PostRepoMock struct {
	mock.Mock
}

func (m *PostRepoMock) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PostRepoMock) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	args := m.Called(ctx, limit, offset)
	if v := args.Get(0); v != nil {
		return v.([]*models.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PostRepoMock) FilterByDate(ctx context.Context, year, month, day int, limit, offset int) ([]*models.Post, error) {
	args := m.Called(ctx, year, month, day, limit, offset)
	if v := args.Get(0); v != nil {
		return v.([]*models.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PostRepoMock) NextID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PostRepoMock) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *PostRepoMock) Update(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *PostRepoMock) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PostRepoMock) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Get(0).(int), args.Error(1)
}

type MediaServiceMock struct {
	mock.Mock
}

func (m *MediaServiceMock) UploadImage(ctx context.Context, file []byte, originalName, contentType string) (string, error) {
	args := m.Called(ctx, file, originalName, contentType)
	return args.String(0), args.Error(1)
}

type VideoServiceMock struct {
	mock.Mock
}

func (m *VideoServiceMock) QueueVideo(ctx context.Context, file []byte, originalName, contentType string) (int64, error) {
	args := m.Called(ctx, file, originalName, contentType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *VideoServiceMock) GetVideo(ctx context.Context, id int64) (*models.Video, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

type EnqueuerMock struct {
	mock.Mock
}

func (m *EnqueuerMock) EnqueueProcess(videoID int64) error {
	args := m.Called(videoID)
	return args.Error(0)
}

type LoginRepoMock struct {
	mock.Mock
}

func (m *LoginRepoMock) GetByToken(ctx context.Context, token string) (*models.PersistentLogin, error) {
	args := m.Called(ctx, token)
	if v := args.Get(0); v != nil {
		return v.(*models.PersistentLogin), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *LoginRepoMock) Create(ctx context.Context, login *models.PersistentLogin) error {
	args := m.Called(ctx, login)
	return args.Error(0)
}

func (m *LoginRepoMock) Remove(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *LoginRepoMock) RemoveExpired(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

package service

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cfg "github.com/lucavs/blog-api/configs"
)

func mediaConfig(t *testing.T) cfg.Config {
	t.Helper()
	return cfg.Config{
		UploadDir: t.TempDir(),
		Storage: cfg.Storage{
			ImagesBucket: "blog-images",
			VideosBucket: "blog-videos",
		},
	}
}

func conflictError() error {
	return &awshttp.ResponseError{
		ResponseError: &smithyhttp.ResponseError{
			Response: &smithyhttp.Response{
				Response: &http.Response{StatusCode: http.StatusConflict},
			},
			Err: errors.New("Duplicate"),
		},
	}
}

func TestUploadImage_DisallowedExtension(t *testing.T) {
	ctx := context.Background()
	st := new(StorageMock)
	svc := NewMediaService(mediaConfig(t), st)

	// No upload attempt, no error: a rejected file just yields no URL.
	url, err := svc.UploadImage(ctx, []byte("data"), "payload.exe", "application/octet-stream")
	require.NoError(t, err)
	require.Empty(t, url)
	st.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadImage_Success(t *testing.T) {
	ctx := context.Background()
	st := new(StorageMock)
	svc := NewMediaService(mediaConfig(t), st)

	st.On("Upload", mock.Anything, "blog-images", "cat.png", []byte("data"), "image/png").
		Return(nil).Once()

	url, err := svc.UploadImage(ctx, []byte("data"), "cat.png", "image/png")
	require.NoError(t, err)
	require.Equal(t, "https://store.example.com/storage/v1/object/public/blog-images/cat.png", url)
	st.AssertExpectations(t)
}

func TestUploadImage_SanitizesKey(t *testing.T) {
	ctx := context.Background()
	st := new(StorageMock)
	svc := NewMediaService(mediaConfig(t), st)

	st.On("Upload", mock.Anything, "blog-images", "my_cat.png", mock.Anything, mock.Anything).
		Return(nil).Once()

	url, err := svc.UploadImage(ctx, []byte("data"), "my cat.png", "image/png")
	require.NoError(t, err)
	require.Contains(t, url, "my_cat.png")
	st.AssertExpectations(t)
}

func TestUploadImage_ConflictIsSuccess(t *testing.T) {
	ctx := context.Background()
	st := new(StorageMock)
	svc := NewMediaService(mediaConfig(t), st)

	// Object already exists: reuse the deterministic public URL.
	st.On("Upload", mock.Anything, "blog-images", "cat.png", mock.Anything, mock.Anything).
		Return(conflictError()).Once()

	url, err := svc.UploadImage(ctx, []byte("data"), "cat.png", "image/png")
	require.NoError(t, err)
	require.Equal(t, "https://store.example.com/storage/v1/object/public/blog-images/cat.png", url)
	st.AssertExpectations(t)
}

func TestUploadImage_FallsBackToLocalFile(t *testing.T) {
	ctx := context.Background()
	st := new(StorageMock)
	conf := mediaConfig(t)
	svc := NewMediaService(conf, st)

	st.On("Upload", mock.Anything, "blog-images", "cat.png", mock.Anything, mock.Anything).
		Return(errors.New("storage unavailable")).Once()

	url, err := svc.UploadImage(ctx, []byte("data"), "cat.png", "image/png")
	require.NoError(t, err)
	require.Equal(t, "/uploads/cat.png", url)

	// The bytes must actually be on disk at the served path.
	written, err := os.ReadFile(filepath.Join(conf.UploadDir, "cat.png"))
	require.NoError(t, err)
	require.Equal(t, []byte("data"), written)
	st.AssertExpectations(t)
}

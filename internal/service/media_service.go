package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	cfg "github.com/lucavs/blog-api/configs"
)

// MediaService uploads post images to the object store. Image keys
// reuse the sanitized original filename, so re-uploading the same name
// is last-write-wins.
type MediaService interface {
	UploadImage(ctx context.Context, file []byte, originalName, contentType string) (string, error)
}

type mediaService struct {
	config  cfg.Config
	storage ObjectStorage
}

func NewMediaService(cfg cfg.Config, storage ObjectStorage) MediaService {
	return &mediaService{config: cfg, storage: storage}
}

// UploadImage pushes the file to the images bucket and returns its
// public URL. A disallowed extension returns an empty URL with no side
// effects. An object-already-exists conflict counts as success. Any
// other storage error degrades to a locally served file so post
// creation stays available.
func (s *mediaService) UploadImage(ctx context.Context, file []byte, originalName, contentType string) (string, error) {
	if !AllowedFile(originalName) {
		slog.Info("image rejected: extension not allowed", "filename", originalName)
		return "", nil
	}

	filename := SanitizeFilename(originalName)
	bucket := s.config.Storage.ImagesBucket

	err := s.storage.Upload(ctx, bucket, filename, file, contentType)
	if err != nil {
		if IsStorageConflict(err) {
			slog.Info("image already exists in storage, reusing", "filename", filename)
			return s.storage.PublicURL(bucket, filename), nil
		}
		return s.saveLocal(filename, file)
	}

	return s.storage.PublicURL(bucket, filename), nil
}

func (s *mediaService) saveLocal(filename string, file []byte) (string, error) {
	if err := os.MkdirAll(s.config.UploadDir, 0o755); err != nil {
		slog.Error(err.Error())
		return "", fmt.Errorf("failed to process file: %w", err)
	}

	localPath := filepath.Join(s.config.UploadDir, filename)
	if err := os.WriteFile(localPath, file, 0o644); err != nil {
		slog.Error(err.Error())
		return "", fmt.Errorf("failed to process file: %w", err)
	}

	slog.Warn("storage upload failed, image saved to local fallback", "filename", filename)
	return "/uploads/" + filename, nil
}

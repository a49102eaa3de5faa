package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	cfg "github.com/lucavs/blog-api/configs"
	"github.com/lucavs/blog-api/internal/models"
	"github.com/lucavs/blog-api/internal/repository"
)

// VideoEnqueuer schedules the one-shot processing job for a queued
// video. Implemented by the queue package on top of asynq.
type VideoEnqueuer interface {
	EnqueueProcess(videoID int64) error
}

// VideoService is the synchronous-accept/asynchronous-process boundary
// for video uploads. QueueVideo returns a provisional id immediately;
// the transcode happens later, off the request path.
type VideoService interface {
	QueueVideo(ctx context.Context, file []byte, originalName, contentType string) (int64, error)
	GetVideo(ctx context.Context, id int64) (*models.Video, error)
}

type videoService struct {
	config   cfg.Config
	vr       repository.VideoRepository
	storage  ObjectStorage
	enqueuer VideoEnqueuer
}

func NewVideoService(cfg cfg.Config, vr repository.VideoRepository, storage ObjectStorage, enqueuer VideoEnqueuer) VideoService {
	return &videoService{
		config:   cfg,
		vr:       vr,
		storage:  storage,
		enqueuer: enqueuer,
	}
}

// QueueVideo uploads the raw bytes under the upload/ prefix, inserts a
// queued video row and schedules processing. The returned id must be
// treated as provisional: the row stays non-processed until the
// background job finishes.
func (s *videoService) QueueVideo(ctx context.Context, file []byte, originalName, contentType string) (int64, error) {
	if !AllowedFile(originalName) {
		slog.Info("video rejected: extension not allowed", "filename", originalName)
		return 0, models.ErrNotAllowed
	}

	// Sniff the payload; a recognized type outside the allow-list means
	// the extension lies about the content.
	if kind, err := filetype.Match(file); err == nil && kind != types.Unknown {
		if _, ok := allowedExtensions[kind.Extension]; !ok {
			slog.Info("video rejected: content type not allowed", "detected", kind.Extension)
			return 0, models.ErrNotAllowed
		}
	}

	// Video filenames become durable identifiers referenced by posts,
	// so they get a random key instead of the original name.
	id := uuid.New()
	filename := hex.EncodeToString(id[:]) + "." + FileExtension(originalName)
	key := "upload/" + filename
	bucket := s.config.Storage.VideosBucket

	if err := s.storage.Upload(ctx, bucket, key, file, contentType); err != nil {
		slog.Error(err.Error())
		return 0, fmt.Errorf("error uploading file to storage: %w", err)
	}

	video := models.Video{
		Filename: filename,
		Filepath: s.storage.PublicURL(bucket, key),
		Status:   models.VideoStatusQueued,
	}
	videoID, err := s.vr.Create(ctx, &video)
	if err != nil {
		slog.Error(err.Error())
		return 0, fmt.Errorf("error inserting file record: %w", err)
	}

	if err := s.enqueuer.EnqueueProcess(videoID); err != nil {
		slog.Error(err.Error())
		return 0, fmt.Errorf("error scheduling file processing: %w", err)
	}

	return videoID, nil
}

func (s *videoService) GetVideo(ctx context.Context, id int64) (*models.Video, error) {
	video, err := s.vr.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting video info: %w", err)
	}
	if video == nil {
		return nil, models.ErrNotFound
	}
	return video, nil
}

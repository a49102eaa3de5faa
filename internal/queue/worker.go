package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hibiken/asynq"
	"github.com/lucavs/blog-api/internal/models"
)

func (w *Worker) HandleProcessVideoTask(ctx context.Context, task *asynq.Task) error {
	var payload ProcessVideoPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	return w.ProcessVideo(ctx, payload.VideoID)
}

// ProcessVideo downloads the raw upload, hands it to the transcoder and
// moves the video row to a terminal status. One attempt only: any
// failure marks the row failed and the task is not retried. The status
// updates are not transactional with the external calls, so a crash
// mid-flight can leave a row stuck in processing.
func (w *Worker) ProcessVideo(ctx context.Context, videoID int64) error {
	video, err := w.vr.GetByID(ctx, videoID)
	if err != nil {
		return fmt.Errorf("error fetching video %d: %w", videoID, err)
	}
	if video == nil {
		return fmt.Errorf("video %d: %w", videoID, models.ErrNotFound)
	}

	// A replayed task for a video that already reached a terminal
	// status must not reprocess it.
	if !models.TransitionAllowed(video.Status, models.VideoStatusProcessing) {
		slog.Info("skipping video in non-processable state", "video_id", videoID, "status", video.Status)
		return nil
	}

	bucket := w.config.Storage.VideosBucket
	rawKey := "upload/" + video.Filename

	scratchPath, err := w.downloadToScratch(ctx, bucket, rawKey, video.Filename)
	if err != nil {
		w.markFailed(ctx, videoID)
		return fmt.Errorf("error downloading file from storage: %w", err)
	}
	defer os.Remove(scratchPath)

	if err := w.vr.UpdateStatus(ctx, videoID, models.VideoStatusProcessing); err != nil {
		w.markFailed(ctx, videoID)
		return fmt.Errorf("error updating video status: %w", err)
	}

	slog.Info("sending video to transcoder", "video_id", videoID)
	playlistURL, err := w.transcoder.Transcode(ctx, videoID, scratchPath)
	if err != nil {
		w.markFailed(ctx, videoID)
		return fmt.Errorf("error processing video %d: %w", videoID, err)
	}

	if err := w.vr.UpdateStatusAndPath(ctx, videoID, models.VideoStatusProcessed, playlistURL); err != nil {
		w.markFailed(ctx, videoID)
		return fmt.Errorf("error updating video status: %w", err)
	}

	// Space reclamation; the processed manifest has replaced the raw
	// upload as the playable reference.
	if err := w.storage.Remove(ctx, bucket, []string{rawKey}); err != nil {
		slog.Warn("failed to remove raw upload", "video_id", videoID, "key", rawKey)
	}

	slog.Info("video processed", "video_id", videoID, "playlist", playlistURL)
	return nil
}

func (w *Worker) downloadToScratch(ctx context.Context, bucket, key, filename string) (string, error) {
	data, err := w.storage.Download(ctx, bucket, key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.config.UploadDir, 0o755); err != nil {
		return "", err
	}

	scratchPath := filepath.Join(w.config.UploadDir, filename)
	if err := os.WriteFile(scratchPath, data, 0o644); err != nil {
		return "", err
	}
	return scratchPath, nil
}

func (w *Worker) markFailed(ctx context.Context, videoID int64) {
	if err := w.vr.UpdateStatus(ctx, videoID, models.VideoStatusFailed); err != nil {
		slog.Error("failed to mark video as failed", "video_id", videoID, "error", err.Error())
	}
}

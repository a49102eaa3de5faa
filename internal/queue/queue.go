package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
)

// Enqueuer schedules one-shot processing tasks on asynq. Task ids are
// derived from the video id, so enqueueing the same video twice while a
// task is still pending is a no-op rather than a duplicate job.
type Enqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

func (e *Enqueuer) EnqueueProcess(videoID int64) error {
	payload, err := json.Marshal(ProcessVideoPayload{VideoID: videoID})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypeProcessVideo, payload)

	_, err = e.client.Enqueue(task,
		asynq.TaskID(fmt.Sprintf("process_%d", videoID)),
		asynq.MaxRetry(0),
		asynq.Timeout(30*time.Minute),
	)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			slog.Info("processing task already queued", "video_id", videoID)
			return nil
		}
		return err
	}

	slog.Info("processing task scheduled", "video_id", videoID)
	return nil
}

package queue

import (
	cfg "github.com/lucavs/blog-api/configs"
	"github.com/lucavs/blog-api/internal/repository"
	"github.com/lucavs/blog-api/internal/service"
)

const TaskTypeProcessVideo = "video:process"

type ProcessVideoPayload struct {
	VideoID int64 `json:"video_id"`
}

type Worker struct {
	config     cfg.Config
	vr         repository.VideoRepository
	storage    service.ObjectStorage
	transcoder service.TranscoderService
}

func NewWorker(
	cfg cfg.Config,
	vr repository.VideoRepository,
	storage service.ObjectStorage,
	transcoder service.TranscoderService) *Worker {
	return &Worker{
		config:     cfg,
		vr:         vr,
		storage:    storage,
		transcoder: transcoder,
	}
}

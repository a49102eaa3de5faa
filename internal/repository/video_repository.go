package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/lucavs/blog-api/internal/models"
)

type VideoRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Video, error)
	Create(ctx context.Context, video *models.Video) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	UpdateStatusAndPath(ctx context.Context, id int64, status, filepath string) error
}

type videoRepository struct {
	db *sql.DB
}

func NewVideoRepository(db *sql.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) GetByID(ctx context.Context, id int64) (*models.Video, error) {
	query := `SELECT id, filename, filepath, status FROM videos WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var video models.Video
	err := row.Scan(&video.ID, &video.Filename, &video.Filepath, &video.Status)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) Create(ctx context.Context, video *models.Video) (int64, error) {
	query := `
		INSERT INTO videos (filename, filepath, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query, video.Filename, video.Filepath, video.Status).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *videoRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE videos SET status = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *videoRepository) UpdateStatusAndPath(ctx context.Context, id int64, status, filepath string) error {
	query := `UPDATE videos SET status = $1, filepath = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, status, filepath, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

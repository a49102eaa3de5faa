package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/lib/pq"
	"github.com/lucavs/blog-api/internal/models"
)

type PostRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	List(ctx context.Context, limit, offset int) ([]*models.Post, error)
	FilterByDate(ctx context.Context, year, month, day int, limit, offset int) ([]*models.Post, error)
	NextID(ctx context.Context) (int64, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	Remove(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

// IsUniqueViolation reports whether err is a Postgres duplicate-key error.
// Concurrent creators racing on the same max+1 id land here.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

const postColumns = `id, title, content, image, video_id, created_year, created_month, created_day, created_time`

func scanPost(row interface{ Scan(...any) error }) (*models.Post, error) {
	var post models.Post
	var image sql.NullString
	var videoID sql.NullInt64
	err := row.Scan(&post.ID, &post.Title, &post.Content, &image, &videoID,
		&post.CreatedYear, &post.CreatedMonth, &post.CreatedDay, &post.CreatedTime)
	if err != nil {
		return nil, err
	}
	post.Image = image.String
	if videoID.Valid {
		post.VideoID = &videoID.Int64
	}
	return &post, nil
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return post, nil
}

func (r *postRepository) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY id DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	return collectPosts(rows)
}

func (r *postRepository) FilterByDate(ctx context.Context, year, month, day int, limit, offset int) ([]*models.Post, error) {
	// Zero means "any" for each date part.
	query := `SELECT ` + postColumns + ` FROM posts
		WHERE ($1 = 0 OR created_year = $1)
		  AND ($2 = 0 OR created_month = $2)
		  AND ($3 = 0 OR created_day = $3)
		ORDER BY id DESC LIMIT $4 OFFSET $5`
	rows, err := r.db.QueryContext(ctx, query, year, month, day, limit, offset)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	return collectPosts(rows)
}

func collectPosts(rows *sql.Rows) ([]*models.Post, error) {
	var posts []*models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (r *postRepository) NextID(ctx context.Context) (int64, error) {
	query := `SELECT COALESCE(MAX(id), 0) + 1 FROM posts`
	var id int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&id); err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (id, title, content, image, video_id, created_year, created_month, created_day, created_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query, post.ID, post.Title, post.Content,
		nullString(post.Image), nullInt64(post.VideoID),
		post.CreatedYear, post.CreatedMonth, post.CreatedDay, post.CreatedTime)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts
		SET title = $1, content = $2, image = $3, video_id = $4
		WHERE id = $5
	`
	_, err := r.db.ExecContext(ctx, query, post.Title, post.Content,
		nullString(post.Image), nullInt64(post.VideoID), post.ID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *postRepository) Remove(ctx context.Context, id int64) error {
	query := `DELETE FROM posts WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *postRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return count, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt64(n *int64) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *n, Valid: true}
}

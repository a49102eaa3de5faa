package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/lucavs/blog-api/internal/models"
)

type PersistentLoginRepository interface {
	GetByToken(ctx context.Context, token string) (*models.PersistentLogin, error)
	Create(ctx context.Context, login *models.PersistentLogin) error
	Remove(ctx context.Context, token string) error
	RemoveExpired(ctx context.Context, before time.Time) (int64, error)
}

type persistentLoginRepository struct {
	db *sql.DB
}

func NewPersistentLoginRepository(db *sql.DB) PersistentLoginRepository {
	return &persistentLoginRepository{db: db}
}

func (r *persistentLoginRepository) GetByToken(ctx context.Context, token string) (*models.PersistentLogin, error) {
	query := `SELECT user_id, token, expires_at FROM persistent_logins WHERE token = $1`
	row := r.db.QueryRowContext(ctx, query, token)

	var login models.PersistentLogin
	err := row.Scan(&login.UserID, &login.Token, &login.ExpiresAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return &login, nil
}

func (r *persistentLoginRepository) Create(ctx context.Context, login *models.PersistentLogin) error {
	query := `INSERT INTO persistent_logins (user_id, token, expires_at) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, login.UserID, login.Token, login.ExpiresAt)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *persistentLoginRepository) Remove(ctx context.Context, token string) error {
	query := `DELETE FROM persistent_logins WHERE token = $1`
	_, err := r.db.ExecContext(ctx, query, token)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *persistentLoginRepository) RemoveExpired(ctx context.Context, before time.Time) (int64, error) {
	query := `DELETE FROM persistent_logins WHERE expires_at < $1`
	res, err := r.db.ExecContext(ctx, query, before)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}

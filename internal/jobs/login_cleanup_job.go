package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/lucavs/blog-api/internal/repository"
)

type LoginCleanupJob struct {
	pl repository.PersistentLoginRepository
}

func NewLoginCleanupJob(pl repository.PersistentLoginRepository) *LoginCleanupJob {
	return &LoginCleanupJob{pl: pl}
}

// PurgeExpired drops remember-me tokens past their expiry.
func (c *LoginCleanupJob) PurgeExpired() {
	ctx := context.Background()

	removed, err := c.pl.RemoveExpired(ctx, time.Now())
	if err != nil {
		slog.Info(err.Error())
		return
	}
	if removed > 0 {
		slog.Info("purged expired persistent logins", "count", removed)
	}
}

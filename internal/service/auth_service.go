package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	cfg "github.com/lucavs/blog-api/configs"
	"github.com/lucavs/blog-api/internal/models"
	"github.com/lucavs/blog-api/internal/repository"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const rememberTokenTTL = 30 * 24 * time.Hour

// AuthService checks the single configured admin credential pair and
// manages remember-me tokens. Tokens are stored hashed; the cookie
// carries the plaintext.
type AuthService interface {
	Authenticate(username, password string) bool
	CreatePersistentToken(ctx context.Context, userID string) (string, error)
	CheckToken(ctx context.Context, token string) (bool, error)
	RevokeToken(ctx context.Context, token string) error
}

type authService struct {
	config cfg.Config
	pl     repository.PersistentLoginRepository
	now    func() time.Time
}

func NewAuthService(cfg cfg.Config, pl repository.PersistentLoginRepository) AuthService {
	return &authService{config: cfg, pl: pl, now: time.Now}
}

func (s *authService) Authenticate(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.config.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.config.AdminPassword)) == 1
	return userOK && passOK
}

func (s *authService) CreatePersistentToken(ctx context.Context, userID string) (string, error) {
	token, err := gonanoid.New(32)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	login := models.PersistentLogin{
		UserID:    userID,
		Token:     hashToken(token),
		ExpiresAt: s.now().Add(rememberTokenTTL),
	}
	if err := s.pl.Create(ctx, &login); err != nil {
		return "", fmt.Errorf("error creating persistent login: %w", err)
	}

	return token, nil
}

func (s *authService) CheckToken(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	login, err := s.pl.GetByToken(ctx, hashToken(token))
	if err != nil {
		return false, fmt.Errorf("error fetching persistent login: %w", err)
	}
	if login == nil {
		return false, nil
	}

	return login.ExpiresAt.After(s.now()), nil
}

func (s *authService) RevokeToken(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.pl.Remove(ctx, hashToken(token))
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	cfg "github.com/lucavs/blog-api/configs"
	"github.com/lucavs/blog-api/internal/transfer"
)

// TranscoderService sends a raw video to the external transcoding
// microservice and returns the playable manifest URL.
type TranscoderService interface {
	Transcode(ctx context.Context, videoID int64, filePath string) (string, error)
}

type transcoderService struct {
	baseURL string
	client  *http.Client
}

func NewTranscoderService(cfg cfg.Config) TranscoderService {
	return &transcoderService{
		baseURL: cfg.TranscoderURL,
		// Transcoding a long video takes a while; the timeout is the
		// only bound on a job.
		client: &http.Client{Timeout: 30 * time.Minute},
	}
}

func (s *transcoderService) Transcode(ctx context.Context, videoID int64, filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		slog.Info(err.Error())
		return "", err
	}
	if err := writer.Close(); err != nil {
		slog.Info(err.Error())
		return "", err
	}

	url := fmt.Sprintf("%s/upload/%d", s.baseURL, videoID)
	req, err := http.NewRequestWithContext(ctx, "POST", url, &body)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		slog.Info("transcoder returned non-200 status", "status", resp.StatusCode, "body", string(msg))
		return "", fmt.Errorf("transcoder returned status %d", resp.StatusCode)
	}

	var result transfer.TranscodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		slog.Info(err.Error())
		return "", fmt.Errorf("failed to decode transcoder response: %w", err)
	}
	if result.MasterPlaylist == "" {
		return "", errors.New("transcoder response missing master_playlist")
	}

	return result.MasterPlaylist, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	cfg "github.com/lucavs/blog-api/configs"
	"github.com/lucavs/blog-api/internal/models"
	"github.com/lucavs/blog-api/internal/repository"
	"github.com/lucavs/blog-api/internal/transfer"
)

// Post ids are allocated as max(id)+1; concurrent creators race and the
// loser retries the whole read/insert round.
const maxCreateRetries = 3

type PostService interface {
	CreatePost(ctx context.Context, pc *transfer.PostCreation, image, video *transfer.FileUpload) (*models.Post, error)
	UpdatePost(ctx context.Context, postID int64, pc *transfer.PostCreation, image, video *transfer.FileUpload) (*models.Post, error)
	GetPost(ctx context.Context, postID int64) (*models.Post, error)
	ListRecent(ctx context.Context, page int) ([]*models.Post, bool, error)
	FilterByDate(ctx context.Context, year, month, day string, page int) ([]*models.Post, error)
	DeletePost(ctx context.Context, postID int64) error
}

type postService struct {
	config cfg.Config
	pr     repository.PostRepository
	media  MediaService
	videos VideoService
	now    func() time.Time
}

func NewPostService(cfg cfg.Config, pr repository.PostRepository, media MediaService, videos VideoService) PostService {
	return &postService{
		config: cfg,
		pr:     pr,
		media:  media,
		videos: videos,
		now:    time.Now,
	}
}

// CreatePost uploads any supplied media, allocates the next post id and
// inserts the row. A duplicate-id conflict retries the whole
// read-max/insert sequence up to maxCreateRetries before giving up.
func (s *postService) CreatePost(ctx context.Context, pc *transfer.PostCreation, image, video *transfer.FileUpload) (*models.Post, error) {
	if pc == nil || pc.Content == "" {
		slog.Info("post rejected: content is empty")
		return nil, models.ErrInvalidInput
	}

	imageURL, videoID, err := s.attachMedia(ctx, pc.VideoID, image, video)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	now := s.now().UTC()
	post := models.Post{
		Title:        pc.Title,
		Content:      pc.Content,
		Image:        imageURL,
		VideoID:      videoID,
		CreatedYear:  now.Year(),
		CreatedMonth: int(now.Month()),
		CreatedDay:   now.Day(),
		CreatedTime:  now.Format("15:04:05"),
	}

	for attempt := 0; attempt < maxCreateRetries; attempt++ {
		id, err := s.pr.NextID(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create post: %w", err)
		}
		post.ID = id

		err = s.pr.Create(ctx, &post)
		if err == nil {
			return &post, nil
		}
		if !repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("failed to create post: %w", err)
		}
		slog.Info("post id conflict, retrying", "id", id, "attempt", attempt+1)
	}

	return nil, errors.New("failed to create post: id allocation retries exhausted")
}

// UpdatePost overwrites title and content unconditionally and replaces
// media references only when new files are supplied. A pre-uploaded
// video id takes precedence over a fresh video file.
func (s *postService) UpdatePost(ctx context.Context, postID int64, pc *transfer.PostCreation, image, video *transfer.FileUpload) (*models.Post, error) {
	if pc == nil {
		return nil, models.ErrInvalidInput
	}

	post, err := s.pr.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	if post == nil {
		slog.Info("post not found for update", "post_id", postID)
		return nil, models.ErrNotFound
	}

	post.Title = pc.Title
	post.Content = pc.Content

	imageURL, videoID, err := s.attachMedia(ctx, pc.VideoID, image, video)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	if imageURL != "" {
		post.Image = imageURL
	}
	if videoID != nil {
		post.VideoID = videoID
	}

	if err := s.pr.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// attachMedia runs the optional uploads. A disallowed file is skipped
// rather than failing the whole post.
func (s *postService) attachMedia(ctx context.Context, preUploadedID int64, image, video *transfer.FileUpload) (string, *int64, error) {
	var imageURL string
	var videoID *int64

	if image != nil {
		url, err := s.media.UploadImage(ctx, image.Data, image.Filename, image.ContentType)
		if err != nil {
			return "", nil, err
		}
		imageURL = url
	}

	if preUploadedID > 0 {
		videoID = &preUploadedID
	} else if video != nil {
		id, err := s.videos.QueueVideo(ctx, video.Data, video.Filename, video.ContentType)
		if err != nil {
			if errors.Is(err, models.ErrNotAllowed) {
				slog.Info("video skipped: file type not allowed", "filename", video.Filename)
			} else {
				return "", nil, err
			}
		} else {
			videoID = &id
		}
	}

	return imageURL, videoID, nil
}

func (s *postService) GetPost(ctx context.Context, postID int64) (*models.Post, error) {
	post, err := s.pr.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve post: %w", err)
	}
	if post == nil {
		return nil, models.ErrNotFound
	}

	s.hydrate(ctx, post)
	return post, nil
}

func (s *postService) ListRecent(ctx context.Context, page int) ([]*models.Post, bool, error) {
	if page < 1 {
		page = 1
	}
	limit := s.config.PostsPerPage
	offset := (page - 1) * limit

	posts, err := s.pr.List(ctx, limit, offset)
	if err != nil {
		return nil, false, fmt.Errorf("failed to retrieve posts: %w", err)
	}

	for _, post := range posts {
		s.hydrate(ctx, post)
	}

	total, err := s.pr.Count(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to retrieve posts: %w", err)
	}

	return posts, total > page*limit, nil
}

func (s *postService) FilterByDate(ctx context.Context, year, month, day string, page int) ([]*models.Post, error) {
	if page < 1 {
		page = 1
	}
	limit := s.config.PostsPerPage
	offset := (page - 1) * limit

	posts, err := s.pr.FilterByDate(ctx, datePart(year), datePart(month), datePart(day), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to filter posts: %w", err)
	}

	for _, post := range posts {
		s.hydrate(ctx, post)
	}
	return posts, nil
}

// DeletePost removes the post row only. The associated video row and
// its stored objects are left in place: videos remain addressable
// through the video API and are never cascade-deleted.
func (s *postService) DeletePost(ctx context.Context, postID int64) error {
	if err := s.pr.Remove(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete post %d: %w", postID, err)
	}
	return nil
}

// hydrate fills display-only fields. A failed video lookup leaves the
// post usable without its video.
func (s *postService) hydrate(ctx context.Context, post *models.Post) {
	post.Timestamp = formatDate(post.CreatedYear, post.CreatedMonth, post.CreatedDay, post.CreatedTime)

	if post.VideoID != nil {
		video, err := s.videos.GetVideo(ctx, *post.VideoID)
		if err != nil {
			slog.Warn("failed to load video for post", "post_id", post.ID, "video_id", *post.VideoID)
			return
		}
		post.Video = video
	}
}

func formatDate(year, month, day int, clock string) string {
	if year == 0 || month == 0 || day == 0 || clock == "" {
		return ""
	}
	t, err := time.Parse("15:04:05", clock)
	if err != nil {
		return fmt.Sprintf("%d-%d-%d %s", year, month, day, clock)
	}
	dt := time.Date(year, time.Month(month), day, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	return dt.Format("2006-01-02 03:04 PM")
}

// datePart parses a filter value; "any" or junk means no filtering.
func datePart(v string) int {
	if v == "" || v == "any" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

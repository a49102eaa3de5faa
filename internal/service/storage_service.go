package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cfg "github.com/lucavs/blog-api/configs"
)

// ObjectStorage is the bucket-scoped object store consumed by the media
// and video services. Backed by any S3-compatible endpoint.
type ObjectStorage interface {
	Upload(ctx context.Context, bucket, key string, file []byte, contentType string) error
	Download(ctx context.Context, bucket, key string) ([]byte, error)
	Remove(ctx context.Context, bucket string, keys []string) error
	PublicURL(bucket, key string) string
}

type StorageService struct {
	config cfg.Config
}

func NewStorageService(cfg cfg.Config) *StorageService {
	return &StorageService{config: cfg}
}

func (s *StorageService) s3Client() *s3.Client {
	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(s.config.Storage.AccessKey, s.config.Storage.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		slog.Info(err.Error())
		log.Fatal(err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.Storage.Endpoint)
		o.UsePathStyle = true
	})
}

func (s *StorageService) Upload(ctx context.Context, bucket, key string, file []byte, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file),
		ContentType: aws.String(contentType),
	}

	_, err := s.s3Client().PutObject(ctx, input)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	return nil
}

func (s *StorageService) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	result, err := s.s3Client().GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer result.Body.Close()

	return io.ReadAll(result.Body)
}

func (s *StorageService) Remove(ctx context.Context, bucket string, keys []string) error {
	client := s.s3Client()
	for _, key := range keys {
		_, err := client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			slog.Info(err.Error())
			return err
		}
	}
	return nil
}

// PublicURL returns the deterministic public location for an object.
func (s *StorageService) PublicURL(bucket, key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.config.Storage.PublicURL, bucket, key)
}

// IsStorageConflict reports whether err means the object already exists.
func IsStorageConflict(err error) bool {
	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		return respErr.HTTPStatusCode() == http.StatusConflict
	}
	return false
}

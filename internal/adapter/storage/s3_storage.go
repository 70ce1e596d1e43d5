package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"quiz-zone/internal/config"
	"quiz-zone/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutObjectAPI is the part of *s3.Client used by S3Storage.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Storage uploads objects to an S3-compatible bucket (AWS, R2, MinIO).
type S3Storage struct {
	client        PutObjectAPI
	bucket        string
	publicBaseURL string
}

// NewS3Client builds a path-style client with static credentials.
func NewS3Client(cfg config.StorageConfig) *s3.Client {
	awsCfg := aws.Config{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})
}

func NewS3Storage(client PutObjectAPI, cfg config.StorageConfig) *S3Storage {
	base := strings.TrimRight(cfg.PublicBaseURL, "/")
	if base == "" && cfg.Endpoint != "" {
		base = strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}
	return &S3Storage{client: client, bucket: cfg.Bucket, publicBaseURL: base}
}

var _ domain.ObjectStorage = (*S3Storage)(nil)

// Put uploads body under key and returns its public URL.
func (s *S3Storage) Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	key = strings.TrimLeft(key, "/")
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", domain.NewStorageError(fmt.Errorf("put %s/%s: %w", s.bucket, key, err))
	}
	return s.publicBaseURL + "/" + key, nil
}

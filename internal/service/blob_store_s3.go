package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Config struct {
	Region        string
	Bucket        string
	PublicBaseURL string
}

// S3BlobStore stores uploads in a single bucket and returns public URLs.
type S3BlobStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3BlobStore(ctx context.Context, config S3Config) (*S3BlobStore, error) {
	if config.Bucket == "" {
		return nil, fmt.Errorf("missing s3 bucket")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(config.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	baseURL := strings.TrimRight(config.PublicBaseURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", config.Bucket, config.Region)
	}

	return &S3BlobStore{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  config.Bucket,
		baseURL: baseURL,
	}, nil
}

func (s *S3BlobStore) Put(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store object: %w", err)
	}
	return fmt.Sprintf("%s/%s", s.baseURL, key), nil
}

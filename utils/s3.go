package utils

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the subset of the S3 client used for uploads.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Storage struct {
	client  S3API
	bucket  string
	baseURL string
}

// NewS3Storage loads the default AWS config for region. Objects are served
// from cloudFrontURL when set, otherwise from the bucket's virtual-hosted URL.
func NewS3Storage(ctx context.Context, region, bucket, cloudFrontURL string) (*S3Storage, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config for S3: %w", err)
	}
	return NewS3StorageWithClient(s3.NewFromConfig(cfg), region, bucket, cloudFrontURL), nil
}

func NewS3StorageWithClient(client S3API, region, bucket, cloudFrontURL string) *S3Storage {
	base := strings.TrimSuffix(cloudFrontURL, "/")
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}
	return &S3Storage{client: client, bucket: bucket, baseURL: base}
}

func (s *S3Storage) Save(ctx context.Context, key, contentType string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}
	return nil
}

func (s *S3Storage) URL(key string) string {
	return fmt.Sprintf("%s/%s", s.baseURL, key)
}

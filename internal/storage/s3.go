package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// S3Store keeps uploads in an S3 bucket under a fixed key prefix and
// returns the public object URL.
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
	logs   *zap.SugaredLogger
}

// NewS3Store builds the client from the ambient AWS configuration.
func NewS3Store(ctx context.Context, bucket, prefix, region string, logger *zap.SugaredLogger) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &S3Store{
		client: s3.NewFromConfig(awsCfg),
		bucket: bucket,
		prefix: prefix,
		logs:   logger,
	}, nil
}

func (s *S3Store) Save(ctx context.Context, r io.Reader, originalName string) (string, error) {
	key := s.prefix + "/" + uniqueName(originalName)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		return "", fmt.Errorf("upload to s3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
	s.logs.Infow("image stored", "url", publicURL)
	return publicURL, nil
}

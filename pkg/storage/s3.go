package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"socialhub/pkg/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type S3 struct {
	client   *s3.S3
	uploader *s3manager.Uploader
	bucket   string
}

func NewS3(cfg *config.Config) (*S3, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.AWSRegion),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		),
	}

	// MinIO and other S3-compatible endpoints
	if cfg.AWSEndpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.AWSEndpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
		if cfg.S3UseSSL == "false" {
			awsConfig.DisableSSL = aws.Bool(true)
		}
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	client := s3.New(sess)
	store := &S3{
		client:   client,
		uploader: s3manager.NewUploaderWithClient(client),
		bucket:   cfg.S3BucketName,
	}

	if _, err := client.HeadBucket(&s3.HeadBucketInput{Bucket: aws.String(store.bucket)}); err != nil {
		if _, err := client.CreateBucket(&s3.CreateBucketInput{Bucket: aws.String(store.bucket)}); err != nil {
			return nil, fmt.Errorf("bucket %s unavailable: %w", store.bucket, err)
		}
	}

	return store, nil
}

func (s *S3) Save(ctx context.Context, name string, r io.Reader, contentType string) (string, error) {
	input := &s3manager.UploadInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String("uploads/" + name),
		Body:   r,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.uploader.UploadWithContext(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}
	return s.objectURL("uploads/" + name), nil
}

func (s *S3) objectURL(key string) string {
	endpoint := aws.StringValue(s.client.Config.Endpoint)
	if endpoint != "" && !strings.Contains(endpoint, "amazonaws.com") {
		protocol := "https"
		if aws.BoolValue(s.client.Config.DisableSSL) {
			protocol = "http"
		}
		endpoint = strings.TrimPrefix(endpoint, "http://")
		endpoint = strings.TrimPrefix(endpoint, "https://")
		return fmt.Sprintf("%s://%s/%s/%s", protocol, endpoint, s.bucket, key)
	}

	region := aws.StringValue(s.client.Config.Region)
	if region == "" {
		region = "us-east-1"
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, region, key)
}

package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	log "github.com/sirupsen/logrus"
)

// photoKeyPrefix namespaces uploaded event photos within the bucket
const photoKeyPrefix = "event-photos/"

// presignTTL bounds how long a presigned URL stays usable
const presignTTL = 5 * time.Minute

// S3Service hands out presigned URLs for event photo uploads and reads
type S3Service struct {
	Client *s3.Client
	Bucket string
}

// InitializeS3Client initializes the S3 client
func InitializeS3Client() *s3.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return s3.NewFromConfig(cfg)
}

// GenerateUploadURL returns a presigned PUT URL for a new event photo along
// with the object key the caller should attach to the event.
func (s *S3Service) GenerateUploadURL(ctx context.Context, fileName, fileType string) (string, string, error) {
	key := photoKeyPrefix + time.Now().Format("20060102150405") + "-" + fileName
	params := &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}

	presigner := s3.NewPresignClient(s.Client)
	presignedURL, err := presigner.PresignPutObject(ctx, params, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", "", fmt.Errorf("failed to presign photo upload: %w", err)
	}
	return presignedURL.URL, key, nil
}

// GenerateReadURL returns a presigned GET URL for a stored event photo
func (s *S3Service) GenerateReadURL(ctx context.Context, key string) (string, error) {
	params := &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	}

	presigner := s3.NewPresignClient(s.Client)
	presignedURL, err := presigner.PresignGetObject(ctx, params, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", fmt.Errorf("failed to presign photo read: %w", err)
	}
	return presignedURL.URL, nil
}

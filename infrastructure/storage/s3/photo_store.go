// Package s3 stores uploaded photos in an S3 bucket with public-read access.
package s3

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"

	"shopping-backend/application/ports"
	"shopping-backend/infrastructure/config"
	apperrors "shopping-backend/pkg/errors"
)

// PhotoStore implements ports.PhotoStore on top of an S3 bucket
type PhotoStore struct {
	uploader   *manager.Uploader
	bucketName string
	logger     *zap.Logger
}

// NewClient connects to the configured S3 endpoint. A non-empty S3Endpoint
// switches to path-style addressing with static credentials, as used against
// LocalStack or minio.
func NewClient(awsCfg aws.Config, cfg *config.Config) *s3.Client {
	if cfg.S3Endpoint == "" {
		return s3.NewFromConfig(awsCfg)
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		o.UsePathStyle = true
		o.Credentials = credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")
	})
}

// NewPhotoStore creates a new PhotoStore
func NewPhotoStore(client *s3.Client, bucketName string, logger *zap.Logger) ports.PhotoStore {
	return &PhotoStore{
		uploader:   manager.NewUploader(client),
		bucketName: bucketName,
		logger:     logger,
	}
}

// Upload writes the photo bytes under key with public-read access and returns
// the object's location URL. Objects are written once and never mutated.
func (s *PhotoStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	result, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		s.logger.Error("Failed to upload photo",
			zap.Error(err),
			zap.String("bucket", s.bucketName),
			zap.String("key", key),
		)
		return "", apperrors.NewExternalError("s3", err)
	}

	s.logger.Info("Photo uploaded",
		zap.String("key", key),
		zap.String("location", result.Location),
	)
	return result.Location, nil
}

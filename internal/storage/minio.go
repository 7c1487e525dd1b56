package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"gallery-auction/utils"
)

// MinioStore stores images in a MinIO/S3 bucket
type MinioStore struct {
	client *minio.Client
	bucket string
}

// NewMinioStore builds a client from MINIO_* environment variables
func NewMinioStore() (*MinioStore, error) {
	endpoint := utils.GetEnv("MINIO_ENDPOINT", "localhost:9000")
	accessKeyID := utils.GetEnv("MINIO_ACCESS_KEY", "minioadmin")
	secretAccessKey := utils.GetEnv("MINIO_SECRET_KEY", "minioadmin")
	bucket := utils.GetEnv("MINIO_BUCKET", "gallery")
	useSSL := utils.GetEnv("MINIO_USE_SSL", "false") == "true"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: failed to create minio client: %w", err)
	}

	return &MinioStore{client: client, bucket: bucket}, nil
}

// Upload writes the object and returns its public URL
func (s *MinioStore) Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return "", fmt.Errorf("storage: failed to check bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("storage: failed to create bucket: %w", err)
		}
	}

	info, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("storage: failed to upload object: %w", err)
	}

	utils.Info("object uploaded", map[string]any{
		"bucket": info.Bucket,
		"key":    info.Key,
		"size":   info.Size,
	})

	url := fmt.Sprintf("%s/%s/%s", s.client.EndpointURL(), s.bucket, objectName)
	return url, nil
}

// Delete removes the object; deleting a missing object is not an error
func (s *MinioStore) Delete(ctx context.Context, objectName string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("storage: failed to delete object: %w", err)
	}
	return nil
}

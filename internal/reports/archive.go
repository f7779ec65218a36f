package reports

import (
	"bytes"
	"context"
	"fmt"

	"salesspark_backend/platform/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Archive stores report documents under an object key.
type Archive interface {
	Store(ctx context.Context, key string, data []byte) error
}

// MinIOArchive keeps reports in an S3-compatible bucket.
type MinIOArchive struct {
	client *minio.Client
	bucket string
}

// NewMinIOArchive returns nil without error when MinIO is not configured.
func NewMinIOArchive(cfg config.ReportStorageConfig) (*MinIOArchive, error) {
	if !cfg.IsMinIOEnabled() {
		return nil, nil
	}

	client, err := minio.New(cfg.GetMinIOEndpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.GetMinIOAccessKey(), cfg.GetMinIOSecretKey(), ""),
		Secure: cfg.GetMinIOUseSSL(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &MinIOArchive{client: client, bucket: cfg.GetMinioBucketReports()}, nil
}

// EnsureBucketExists creates the report bucket if it doesn't exist.
func (a *MinIOArchive) EnsureBucketExists(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", a.bucket, err)
		}
	}
	return nil
}

func (a *MinIOArchive) Store(ctx context.Context, key string, data []byte) error {
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

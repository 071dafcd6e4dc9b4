package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/roxanekm/report-generator/pkg/config"
)

// reportURLExpiry is how long presigned report links stay valid
const reportURLExpiry = 7 * 24 * time.Hour

// MinIOClient archives rendered reports in a MinIO bucket
type MinIOClient struct {
	client *minio.Client
	bucket string
}

// NewMinIOClient creates a new MinIO report store
func NewMinIOClient(cfg *config.StorageConfig) (*MinIOClient, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	client := &MinIOClient{
		client: minioClient,
		bucket: cfg.BucketName,
	}

	if err := client.ensureBucket(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return client, nil
}

// ensureBucket creates the report bucket when it does not exist yet.
// Reports stay private; access goes through presigned URLs only.
func (m *MinIOClient) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// SaveReport uploads the Markdown document and returns a presigned URL
func (m *MinIOClient) SaveReport(ctx context.Context, objectName, markdown string) (string, error) {
	reader := bytes.NewReader([]byte(markdown))
	_, err := m.client.PutObject(ctx, m.bucket, objectName, reader, int64(len(markdown)), minio.PutObjectOptions{
		ContentType: "text/markdown",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload report: %w", err)
	}

	url, err := m.client.PresignedGetObject(ctx, m.bucket, objectName, reportURLExpiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return url.String(), nil
}

// ListReports lists archived report object names, newest keys included
func (m *MinIOClient) ListReports(ctx context.Context, prefix string) ([]string, error) {
	var reports []string

	objectCh := m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	for object := range objectCh {
		if object.Err != nil {
			return nil, fmt.Errorf("error listing reports: %w", object.Err)
		}
		reports = append(reports, object.Key)
	}

	return reports, nil
}

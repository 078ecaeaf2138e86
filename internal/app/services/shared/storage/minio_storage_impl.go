package storage

import (
	"context"
	"mindmatch-service/internal/app/contracts"
	"mindmatch-service/internal/pkg/exceptions"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	bucketName  string
}

func NewMinioStorage(minioClient *minio.Client, bucketName string) contracts.StorageService {
	return &minioStorage{
		MinioClient: minioClient,
		bucketName:  bucketName,
	}
}

func (m *minioStorage) PresignedGetURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, m.bucketName, objectKey, expiry, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioPresignObject(err)
	}

	return presignedURL.String(), nil
}

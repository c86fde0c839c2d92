package oss

import (
	"context"
	"fmt"

	"ClipFlow.com/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type MinioStorage struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

var defaultStorage Storage

// Init connects to MinIO and makes sure the bucket exists.
func Init() error {
	cfg := config.ConfigInfo.Minio
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return errors.WithMessage(err, "failed to create minio client")
	}

	exists, err := client.BucketExists(context.Background(), cfg.Bucket)
	if err != nil {
		return errors.WithMessage(err, "failed to check bucket")
	}
	if !exists {
		if err := client.MakeBucket(context.Background(), cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return errors.WithMessage(err, "failed to create bucket")
		}
		logrus.Infof("created bucket %s", cfg.Bucket)
	}

	defaultStorage = &MinioStorage{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: fmt.Sprintf("%s/%s", cfg.PublicBaseURL, cfg.Bucket),
	}
	return nil
}

func Default() Storage {
	return defaultStorage
}

func (s *MinioStorage) StoreFile(ctx context.Context, objectName, filePath, contentType string) (string, error) {
	_, err := s.client.FPutObject(ctx, s.bucket, objectName, filePath,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.WithMessagef(err, "failed to store object %s", objectName)
	}
	return fmt.Sprintf("%s/%s", s.baseURL, objectName), nil
}

func (s *MinioStorage) Remove(ctx context.Context, objectName string) error {
	return s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
}

func (s *MinioStorage) Exists(ctx context.Context, objectName string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, objectName, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *MinioStorage) ObjectFromURL(url string) string {
	return trimURLPrefix(url, s.baseURL)
}

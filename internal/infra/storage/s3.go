// Package storage publica arquivos (avatares) num bucket compatível com S3.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/consultorio/internal/config"
)

type ObjectStorage interface {
	// Put grava o objeto e devolve a URL pública dele.
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

type putObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Storage struct {
	client    putObjectAPI
	bucket    string
	publicURL string
}

func NewS3Storage(cfg *config.Config) *S3Storage {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKeyID,
			cfg.S3SecretAccessKey,
			"",
		),
	}

	// MinIO, R2 e afins
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &S3Storage{
		client:    s3.New(opts),
		bucket:    cfg.S3Bucket,
		publicURL: publicBaseURL(cfg),
	}
}

func publicBaseURL(cfg *config.Config) string {
	if cfg.S3PublicURL != "" {
		return cfg.S3PublicURL
	}
	if cfg.S3Endpoint != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(cfg.S3Endpoint, "/"), cfg.S3Bucket)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
}

func (s *S3Storage) Put(
	ctx context.Context,
	key string,
	body []byte,
	contentType string,
) (string, error) {

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=86400"),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return s.publicURL + "/" + key, nil
}

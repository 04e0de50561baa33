package adapters

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API は S3ObjectStore が利用する s3.Client のメソッドだけを切り出したインターフェースです。
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3ObjectStore は S3 バケットに対するダウンロードとアップロードを担当します。
type S3ObjectStore struct {
	client S3API
}

// NewS3ObjectStore は依存関係を注入して S3ObjectStore を初期化します。
func NewS3ObjectStore(client S3API) (*S3ObjectStore, error) {
	if client == nil {
		return nil, fmt.Errorf("s3 client is required")
	}
	return &S3ObjectStore{client: client}, nil
}

// Download は bucket/key のオブジェクトを読み込んでバイト列で返します。
func (s *S3ObjectStore) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("s3://%s/%s の取得に失敗しました: %w", bucket, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("s3://%s/%s の読み込みに失敗しました: %w", bucket, key, err)
	}
	return data, nil
}

// Upload は data を bucket/key に書き込みます。既存オブジェクトは上書きされます。
func (s *S3ObjectStore) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("s3://%s/%s への保存に失敗しました: %w", bucket, key, err)
	}

	slog.DebugContext(ctx, "S3へ保存しました", "bucket", bucket, "key", key, "size", len(data))
	return nil
}

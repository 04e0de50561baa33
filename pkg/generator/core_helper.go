package generator

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"github.com/shouni/stack-badge-kit/pkg/domain"
)

func (g *BadgeGenerator) resolve(req domain.BadgeRequest) (domain.ResolvedRequest, string, error) {
	if err := g.cfg.Validate(); err != nil {
		return domain.ResolvedRequest{}, "", err
	}
	return req.Resolve(), g.cfg.BucketName, nil
}

func (g *BadgeGenerator) fetchTemplate(ctx context.Context) (*image.NRGBA, error) {
	raw, err := g.source.FetchTemplate(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: テンプレートの取得に失敗しました: %w", domain.ErrStorageUnavailable, err)
	}

	img, err := g.codec.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: テンプレートを画像として読み込めません: %w", domain.ErrDecode, err)
	}
	return img, nil
}

// persist は短すぎるキーを除いてエンコード済みの画像をアップロードします。
func (g *BadgeGenerator) persist(ctx context.Context, bucket, text string, data []byte) (PersistResult, error) {
	key := StorageKey(text)
	if !shouldUpload(key) {
		slog.DebugContext(ctx, "保存キーが短いためアップロードをスキップします", "key", key)
		return PersistResult{Key: key}, nil
	}

	objectKey := g.cfg.UploadPrefix + key
	if err := g.uploader.Upload(ctx, bucket, objectKey, data, domain.ContentTypePNG); err != nil {
		return PersistResult{Key: objectKey}, fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}

	slog.InfoContext(ctx, "バッジを保存しました", "bucket", bucket, "key", objectKey)
	return PersistResult{Key: objectKey, Uploaded: true}, nil
}

package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/stack-badge-kit/pkg/config"
	"github.com/shouni/stack-badge-kit/pkg/domain"
)

var _ BadgeRenderer = (*BadgeGenerator)(nil)

// BadgeGenerator はテンプレート取得、合成、保存、レスポンス生成を一直線に行う基盤クラスです。
// 保持するのは不変の依存関係だけなので、並行した呼び出しからも利用できます。
type BadgeGenerator struct {
	cfg        config.Config
	source     TemplateSource
	uploader   ObjectUploader
	codec      ImageCodec
	compositor Composer
}

// NewBadgeGenerator は依存関係を注入して BadgeGenerator を初期化します。
// cfg のテンプレートキーとアップロードプレフィックスが空なら固定値で補います。
func NewBadgeGenerator(cfg config.Config, source TemplateSource, uploader ObjectUploader, codec ImageCodec, compositor Composer) (*BadgeGenerator, error) {
	if source == nil {
		return nil, fmt.Errorf("source is required")
	}
	if uploader == nil {
		return nil, fmt.Errorf("uploader is required")
	}
	if codec == nil {
		return nil, fmt.Errorf("codec is required")
	}
	if compositor == nil {
		return nil, fmt.Errorf("compositor is required")
	}

	return &BadgeGenerator{
		cfg:        cfg.WithDefaults(),
		source:     source,
		uploader:   uploader,
		codec:      codec,
		compositor: compositor,
	}, nil
}

// Generate は1回の呼び出しでバッジを生成し、base64 のレスポンスを返します。
// 保存の失敗はログに残すだけで、レスポンスの生成は継続します。
func (g *BadgeGenerator) Generate(ctx context.Context, req domain.BadgeRequest) (*domain.Response, error) {
	in, bucket, err := g.resolve(req)
	if err != nil {
		return nil, err
	}

	template, err := g.fetchTemplate(ctx)
	if err != nil {
		return nil, err
	}

	output, err := g.compositor.Compose(template, in.Text)
	if err != nil {
		return nil, fmt.Errorf("バッジの合成に失敗しました: %w", err)
	}

	data, err := g.codec.Encode(output)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEncode, err)
	}

	var stored PersistResult
	if in.Save {
		stored, err = g.persist(ctx, bucket, in.Text, data)
		if err != nil {
			slog.WarnContext(ctx, "バッジの保存に失敗しました。レスポンスはそのまま返します", "bucket", bucket, "key", stored.Key, "error", err)
		}
	}

	slog.InfoContext(ctx, "バッジを生成しました",
		"text", in.Text,
		"save", in.Save,
		"key", stored.Key,
		"uploaded", stored.Uploaded,
		"width", output.Bounds().Dx(),
		"height", output.Bounds().Dy(),
	)
	return domain.NewImageResponse(data), nil
}

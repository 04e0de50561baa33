package generator

import (
	"context"
	"image"

	"github.com/shouni/stack-badge-kit/pkg/domain"
)

// BadgeRenderer はビジネスロジック層が利用する統合窓口です。
type BadgeRenderer interface {
	Generate(ctx context.Context, req domain.BadgeRequest) (*domain.Response, error)
}

// TemplateSource は、テンプレート画像の生バイト列を取得するためのインターフェースです。
type TemplateSource interface {
	FetchTemplate(ctx context.Context) ([]byte, error)
}

// ObjectUploader は、生成したバッジをオブジェクトストレージへ保存するためのインターフェースです。
type ObjectUploader interface {
	// Upload は bucket/key に data を書き込みます。既存のオブジェクトは上書きされます。
	Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error
}

// ImageCodec は、画像のデコードとエンコードを担当するインターフェースです。
type ImageCodec interface {
	Decode(data []byte) (*image.NRGBA, error)
	Encode(img image.Image) ([]byte, error)
}

// Composer は、テンプレートとテキストから出力画像を組み立てるインターフェースです。
type Composer interface {
	Compose(template *image.NRGBA, text string) (*image.NRGBA, error)
}

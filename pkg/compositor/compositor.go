package compositor

import (
	"fmt"
	"image"

	"github.com/shouni/stack-badge-kit/pkg/domain"
	"github.com/shouni/stack-badge-kit/pkg/imgutil"
)

// Compositor はテンプレートの左右キャップと、テキストを描いた中央ストリップを連結します。
type Compositor struct {
	codec ImageCodec
}

// NewCompositor は依存関係を注入して Compositor を初期化します。
func NewCompositor(codec ImageCodec) (*Compositor, error) {
	if codec == nil {
		return nil, fmt.Errorf("codec is required")
	}
	return &Compositor{codec: codec}, nil
}

// Compose は template と text から出力画像を組み立てます。
// テキストが長い場合は出力が横に伸びるだけで切り詰めは行いません。
func (c *Compositor) Compose(template *image.NRGBA, text string) (*image.NRGBA, error) {
	if template == nil {
		return nil, fmt.Errorf("template is nil: %w", domain.ErrComposition)
	}

	begin, err := c.strip(template, beginRect)
	if err != nil {
		return nil, err
	}
	middleSrc, err := c.strip(template, middleRect)
	if err != nil {
		return nil, err
	}
	end, err := c.strip(template, endRect)
	if err != nil {
		return nil, err
	}

	width := MiddleWidth(c.codec.MeasureText(text))
	middle := c.codec.Resize(middleSrc, width, StripHeight)
	c.codec.DrawText(middle, text, TextAnchor)

	out, err := imgutil.HConcat(begin, middle, end)
	if err != nil {
		return nil, fmt.Errorf("ストリップの連結に失敗しました: %v: %w", err, domain.ErrComposition)
	}
	return out, nil
}

// strip はテンプレートから固定範囲を切り出し、範囲全体が取れたかを検証します。
func (c *Compositor) strip(template *image.NRGBA, rect image.Rectangle) (*image.NRGBA, error) {
	b := template.Bounds()
	if !rect.Add(b.Min).In(b) {
		return nil, fmt.Errorf("テンプレート %dx%d から範囲 %v を切り出せません (最小 %dx%d): %w",
			b.Dx(), b.Dy(), rect, MinTemplateSize.X, MinTemplateSize.Y, domain.ErrComposition)
	}
	return c.codec.Crop(template, rect.Add(b.Min)), nil
}

// MiddleWidth はテキスト幅から中央ストリップの幅を求めます。
func MiddleWidth(textWidth int) int {
	if textWidth < 0 {
		textWidth = 0
	}
	return textWidth + MiddlePadding
}

// OutputWidth はテキスト幅から出力画像全体の幅を求めます。
func OutputWidth(textWidth int) int {
	return BeginWidth + MiddleWidth(textWidth) + EndWidth
}

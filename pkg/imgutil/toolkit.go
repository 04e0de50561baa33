package imgutil

import (
	"fmt"
	"image"
	"image/draw"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	// DefaultFontSize はラベル描画に使うフォントサイズ（px）です。
	DefaultFontSize = 14
	fontDPI         = 72
)

// AreaResample は縮小・拡大の方向に関係なく使う単一のリサンプリング方針です。
// 縮小時はカーネルが倍率分だけ広がり画素面積の加重平均になり、拡大時は滑らかな線形補間になります。
var AreaResample = imaging.Linear

// Toolkit は imaging と x/image/font を使った画像処理の実装です。
// font.Face は並行利用できないため描画と計測はロックで直列化します。
type Toolkit struct {
	mu     sync.Mutex
	face   font.Face
	filter imaging.ResampleFilter
}

// NewToolkit は埋め込みの Go Regular フォントで Toolkit を初期化します。
func NewToolkit() (*Toolkit, error) {
	return NewToolkitWithFont(goregular.TTF, DefaultFontSize)
}

// NewToolkitWithFont は任意の TrueType/OpenType フォントで Toolkit を初期化します。
func NewToolkitWithFont(ttf []byte, size float64) (*Toolkit, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size must be positive: %v", size)
	}
	otFont, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("フォントの解析に失敗しました: %w", err)
	}
	face, err := opentype.NewFace(otFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("フォントフェイスの作成に失敗しました: %w", err)
	}

	return &Toolkit{
		face:   face,
		filter: AreaResample,
	}, nil
}

// Decode は DecodeNRGBA のメソッド版です。
func (t *Toolkit) Decode(data []byte) (*image.NRGBA, error) {
	return DecodeNRGBA(data)
}

// Encode は EncodePNG のメソッド版です。
func (t *Toolkit) Encode(img image.Image) ([]byte, error) {
	return EncodePNG(img)
}

// Crop は rect の範囲を切り出した新しいバッファを返します。
// rect が画像外にはみ出す場合は重なる部分だけが返ります。
func (t *Toolkit) Crop(img image.Image, rect image.Rectangle) *image.NRGBA {
	return imaging.Crop(img, rect)
}

// Resize は img を width x height に変換します。
func (t *Toolkit) Resize(img image.Image, width, height int) *image.NRGBA {
	return imaging.Resize(img, width, height, t.filter)
}

// MeasureText はベースライン基準で text を描画したときの送り幅を px 単位（切り上げ）で返します。
func (t *Toolkit) MeasureText(text string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return font.MeasureString(t.face, text).Ceil()
}

// DrawText は at をベースラインの起点として黒色のアンチエイリアス付きテキストを描画します。
func (t *Toolkit) DrawText(dst draw.Image, text string, at image.Point) {
	t.mu.Lock()
	defer t.mu.Unlock()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: t.face,
		Dot:  fixed.P(at.X, at.Y),
	}
	d.DrawString(text)
}

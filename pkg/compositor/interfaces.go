package compositor

import (
	"image"
	"image/draw"
)

// ImageCodec は Compositor が利用する画像処理の窓口です。
// テストでは固定の計測値を返すフェイクに差し替えます。
type ImageCodec interface {
	// Crop は rect の範囲を切り出した新しいバッファを返します。
	Crop(img image.Image, rect image.Rectangle) *image.NRGBA
	// Resize は img を width x height にリサンプリングします。
	Resize(img image.Image, width, height int) *image.NRGBA
	// MeasureText は text の描画幅を px で返します。
	MeasureText(text string) int
	// DrawText は at をベースライン起点として text を描画します。
	DrawText(dst draw.Image, text string, at image.Point)
}

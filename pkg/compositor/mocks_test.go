package compositor

import (
	"image"
	"image/color"
	"image/draw"
)

// fakeCodec は固定の計測値を返し、呼び出し内容を記録するテスト用の ImageCodec なのだ。
type fakeCodec struct {
	charWidth int

	crops      []image.Rectangle
	resizeW    int
	resizeH    int
	drawnText  string
	drawnAt    image.Point
	drawCalled bool
}

func (f *fakeCodec) Crop(img image.Image, rect image.Rectangle) *image.NRGBA {
	f.crops = append(f.crops, rect)
	r := rect.Intersect(img.Bounds())
	out := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), img, r.Min, draw.Src)
	return out
}

func (f *fakeCodec) Resize(img image.Image, width, height int) *image.NRGBA {
	f.resizeW, f.resizeH = width, height
	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	c := img.At(img.Bounds().Min.X, img.Bounds().Min.Y)
	draw.Draw(out, out.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return out
}

func (f *fakeCodec) MeasureText(text string) int {
	return len(text) * f.charWidth
}

func (f *fakeCodec) DrawText(dst draw.Image, text string, at image.Point) {
	f.drawCalled = true
	f.drawnText = text
	f.drawnAt = at
}

// newTemplate は列ごとに色の異なるテンプレートを作るヘルパーなのだ。
// R 成分に列番号が入るので、連結後の画素からどの列由来か判別できる。
func newTemplate(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 7, A: 200})
		}
	}
	return img
}

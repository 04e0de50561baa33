package imgutil

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"

	"github.com/disintegration/imaging"
)

// DecodeNRGBA は画像データ（PNG, GIF, JPEG等）をアルファチャンネル付きの NRGBA に変換します。
// 元画像が不透明であっても常に4チャンネルのバッファを返します。
func DecodeNRGBA(data []byte) (*image.NRGBA, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return imaging.Clone(img), nil
}

// EncodePNG は画像を PNG 形式のバイト列にエンコードします。
func EncodePNG(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, fmt.Errorf("image is nil")
	}
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// HConcat は同じ高さの画像を左から順に横方向へ連結します。
func HConcat(images ...*image.NRGBA) (*image.NRGBA, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("no images to concatenate")
	}

	for i, img := range images {
		if img == nil {
			return nil, fmt.Errorf("image %d is nil", i)
		}
	}

	height := images[0].Bounds().Dy()
	width := 0
	for i, img := range images {
		if h := img.Bounds().Dy(); h != height {
			return nil, fmt.Errorf("image %d height mismatch: got %d, want %d", i, h, height)
		}
		width += img.Bounds().Dx()
	}

	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	x := 0
	for _, img := range images {
		// Paste は合成せずに画素をコピーするので透過情報もそのまま残る
		out = imaging.Paste(out, img, image.Pt(x, 0))
		x += img.Bounds().Dx()
	}
	return out, nil
}

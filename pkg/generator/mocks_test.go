package generator

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// --- Mocks ---

type mockSource struct {
	data  []byte
	err   error
	calls int
}

func (m *mockSource) FetchTemplate(ctx context.Context) ([]byte, error) {
	m.calls++
	return m.data, m.err
}

type upload struct {
	bucket      string
	key         string
	data        []byte
	contentType string
}

type mockUploader struct {
	err     error
	uploads []upload
}

func (m *mockUploader) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	m.uploads = append(m.uploads, upload{bucket: bucket, key: key, data: data, contentType: contentType})
	return m.err
}

type mockComposer struct {
	out  *image.NRGBA
	err  error
	text string
}

func (m *mockComposer) Compose(template *image.NRGBA, text string) (*image.NRGBA, error) {
	m.text = text
	return m.out, m.err
}

type mockCodec struct {
	decoded   *image.NRGBA
	decodeErr error
	encoded   []byte
	encodeErr error
}

func (m *mockCodec) Decode(data []byte) (*image.NRGBA, error) {
	return m.decoded, m.decodeErr
}

func (m *mockCodec) Encode(img image.Image) ([]byte, error) {
	return m.encoded, m.encodeErr
}

// templatePNG は 144x27 の半透明テンプレートを PNG で返すヘルパーなのだ。
func templatePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 144, 27))
	for x := 0; x < 144; x++ {
		for y := 0; y < 27; y++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 153, B: uint8(x), A: 230})
		}
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("failed to encode template: %v", err)
	}
	return buf.Bytes()
}

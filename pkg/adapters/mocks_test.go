package adapters

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

var errNotFound = errors.New("NoSuchKey")

// mockS3 は S3API のテスト用モックなのだ。
type mockS3 struct {
	objects map[string][]byte
	getErr  error
	putErr  error

	lastPut  *s3.PutObjectInput
	putCount int
}

func (m *mockS3) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	data, ok := m.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)]
	if !ok {
		return nil, errNotFound
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (m *mockS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	m.putCount++
	m.lastPut = params
	if m.putErr != nil {
		return nil, m.putErr
	}
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	if m.objects == nil {
		m.objects = make(map[string][]byte)
	}
	m.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)] = body
	return &s3.PutObjectOutput{}, nil
}

// mockReader は remoteio.InputReader のテスト用モックなのだ。
// 使わないメソッドは埋め込んだインターフェースで解決する。
type mockReader struct {
	remoteio.InputReader
	data    []byte
	err     error
	lastURI string
	closed  bool
}

type trackingCloser struct {
	io.Reader
	onClose func()
}

func (t *trackingCloser) Close() error {
	t.onClose()
	return nil
}

func (m *mockReader) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	m.lastURI = uri
	if m.err != nil {
		return nil, m.err
	}
	return &trackingCloser{Reader: bytes.NewReader(m.data), onClose: func() { m.closed = true }}, nil
}

// mockHTTPClient は httpkit.ClientInterface を実装するのだ。
type mockHTTPClient struct {
	httpkit.ClientInterface
	data    []byte
	err     error
	lastURL string
	called  bool

	// unsafeErr が設定されていれば IsSafeURL は拒否を返す。
	unsafeErr error
}

func (m *mockHTTPClient) IsSafeURL(url string) (bool, error) {
	if m.unsafeErr != nil {
		return false, m.unsafeErr
	}
	return true, nil
}

func (m *mockHTTPClient) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	m.called = true
	m.lastURL = url
	return m.data, m.err
}

package adapters

import (
	"context"
	"fmt"
	"io"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// ObjectDownloader はバケットとキーからオブジェクトを取得する最小のインターフェースです。
type ObjectDownloader interface {
	Download(ctx context.Context, bucket, key string) ([]byte, error)
}

// BucketTemplateSource は設定済みのバケット上の固定キーからテンプレートを取得します。
type BucketTemplateSource struct {
	store  ObjectDownloader
	bucket string
	key    string
}

// NewBucketTemplateSource は BucketTemplateSource を初期化します。
func NewBucketTemplateSource(store ObjectDownloader, bucket, key string) (*BucketTemplateSource, error) {
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if bucket == "" || key == "" {
		return nil, fmt.Errorf("bucket and key are required")
	}
	return &BucketTemplateSource{store: store, bucket: bucket, key: key}, nil
}

// FetchTemplate はテンプレート画像のバイト列を返します。
func (s *BucketTemplateSource) FetchTemplate(ctx context.Context) ([]byte, error) {
	return s.store.Download(ctx, s.bucket, s.key)
}

// RemoteTemplateSource は go-remote-io の InputReader 経由で URI からテンプレートを読み込みます。
// gs:// やローカルパスなど、InputReader が扱えるものであれば何でも構いません。
type RemoteTemplateSource struct {
	reader remoteio.InputReader
	uri    string
}

// NewRemoteTemplateSource は RemoteTemplateSource を初期化します。
func NewRemoteTemplateSource(reader remoteio.InputReader, uri string) (*RemoteTemplateSource, error) {
	if reader == nil {
		return nil, fmt.Errorf("reader is required")
	}
	if uri == "" {
		return nil, fmt.Errorf("uri is required")
	}
	return &RemoteTemplateSource{reader: reader, uri: uri}, nil
}

// FetchTemplate はテンプレート画像のバイト列を返します。
func (s *RemoteTemplateSource) FetchTemplate(ctx context.Context) ([]byte, error) {
	rc, err := s.reader.Open(ctx, s.uri)
	if err != nil {
		return nil, fmt.Errorf("%s のオープンに失敗しました: %w", s.uri, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%s の読み込みに失敗しました: %w", s.uri, err)
	}
	return data, nil
}

// HTTPTemplateSource は HTTP(S) の URL からテンプレートを取得します。
// 取得前に client.IsSafeURL で SSRF 対策の URL 検証を行います。
type HTTPTemplateSource struct {
	client httpkit.ClientInterface
	url    string
}

// NewHTTPTemplateSource は HTTPTemplateSource を初期化します。
func NewHTTPTemplateSource(client httpkit.ClientInterface, url string) (*HTTPTemplateSource, error) {
	if client == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	if url == "" {
		return nil, fmt.Errorf("url is required")
	}
	return &HTTPTemplateSource{client: client, url: url}, nil
}

// FetchTemplate はテンプレート画像のバイト列を返します。
func (s *HTTPTemplateSource) FetchTemplate(ctx context.Context) ([]byte, error) {
	// ここでの検証は名前解決が FetchBytes とは別なので DNS Rebinding は防げない。
	// 接続時の IP 検証は httpkit.New が組み立てる securenet のクライアントが担う。
	if safe, err := s.client.IsSafeURL(s.url); !safe || err != nil {
		if err == nil {
			err = fmt.Errorf("%s は許可されていません", s.url)
		}
		return nil, fmt.Errorf("安全ではないURLが指定されました: %w", err)
	}

	data, err := s.client.FetchBytes(ctx, s.url)
	if err != nil {
		return nil, fmt.Errorf("%s の取得に失敗しました: %w", s.url, err)
	}
	return data, nil
}

package domain

import (
	"encoding/base64"
	"net/http"

	"github.com/shouni/stack-badge-kit/pkg/utils"
)

const (
	// TemplateKey はバッジの元になるテンプレート画像のオブジェクトキーです。
	TemplateKey = "Launch-Stack-Icons/generic-launch-stack.png"
	// UploadPrefix は生成したバッジを保存する際のキープレフィックスです。
	UploadPrefix = "Launch-Stack-Icons/"
	// ImageExtension は保存キーに付与する拡張子です。
	ImageExtension = ".png"
	// ContentTypePNG はレスポンスとアップロードの両方で使う MIME タイプです。
	ContentTypePNG = "image/png"
)

// BadgeRequest はトリガーから渡される入力 JSON です。
// 未指定のフィールドを判別するためにポインタで受けます。
type BadgeRequest struct {
	TextInput *string `json:"textInput,omitempty"`
	SaveToS3  *bool   `json:"saveToS3,omitempty"`
}

// ResolvedRequest はデフォルト値を適用済みの入力です。
type ResolvedRequest struct {
	Text string
	Save bool
}

// Resolve は未指定フィールドにデフォルト値（テキストは空、保存は true）を適用します。
func (r BadgeRequest) Resolve() ResolvedRequest {
	return ResolvedRequest{
		Text: utils.DerefOr(r.TextInput, ""),
		Save: utils.DerefOr(r.SaveToS3, true),
	}
}

// ResponseHeaders はレスポンスに付与する固定ヘッダーです。
// Access-Control-Allow-Credentials は文字列ではなく真偽値として出力します。
type ResponseHeaders struct {
	ContentType      string `json:"content-type"`
	AllowOrigin      string `json:"Access-Control-Allow-Origin"`
	AllowCredentials bool   `json:"Access-Control-Allow-Credentials"`
}

// Response は呼び出し元へ返す JSON 互換のエンベロープです。
type Response struct {
	IsBase64Encoded bool            `json:"isBase64Encoded"`
	StatusCode      int             `json:"statusCode"`
	Headers         ResponseHeaders `json:"headers"`
	Body            string          `json:"body"`
}

// NewImageResponse はエンコード済み画像バイト列を base64 化してエンベロープに包みます。
func NewImageResponse(data []byte) *Response {
	return &Response{
		IsBase64Encoded: true,
		StatusCode:      http.StatusOK,
		Headers: ResponseHeaders{
			ContentType:      ContentTypePNG,
			AllowOrigin:      "*",
			AllowCredentials: true,
		},
		Body: base64.StdEncoding.EncodeToString(data),
	}
}

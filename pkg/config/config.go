package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/shouni/stack-badge-kit/pkg/domain"
)

// 環境変数名
const (
	EnvBucketName  = "BucketName"
	EnvLogLevel    = "LOG_LEVEL"
	EnvTemplateURI = "TEMPLATE_URI"
)

// Config はハンドラーへ明示的に渡すプロセス単位の設定です。
type Config struct {
	BucketName   string
	TemplateKey  string
	UploadPrefix string
	// TemplateURI が空でなければ、バケット上の TemplateKey の代わりにこの URI からテンプレートを取得します。
	// http(s)://, gs://, s3:// またはローカルパスを受け付けます。
	TemplateURI string
	LogLevel    slog.Level
}

// LoadFromEnv はプロセスの環境変数から Config を読み込みます。
func LoadFromEnv() (Config, error) {
	return Load(os.Getenv)
}

// Load は getenv から Config を組み立てます。
// バケット名が未設定の場合は domain.ErrConfiguration を返します。
func Load(getenv func(string) string) (Config, error) {
	cfg := Config{
		BucketName:  strings.TrimSpace(getenv(EnvBucketName)),
		TemplateURI: strings.TrimSpace(getenv(EnvTemplateURI)),
		LogLevel:    parseLevel(getenv(EnvLogLevel)),
	}.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// WithDefaults は空のテンプレートキーとアップロードプレフィックスに固定値を補った Config を返します。
func (c Config) WithDefaults() Config {
	if c.TemplateKey == "" {
		c.TemplateKey = domain.TemplateKey
	}
	if c.UploadPrefix == "" {
		c.UploadPrefix = domain.UploadPrefix
	}
	return c
}

// Validate は必須項目を検証します。
func (c Config) Validate() error {
	if c.BucketName == "" {
		return fmt.Errorf("環境変数 %s が未設定です: %w", EnvBucketName, domain.ErrConfiguration)
	}
	return nil
}

// parseLevel は解釈できない値を Info として扱います。
func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
	"github.com/shouni/go-remote-io/pkg/remoteio"

	"github.com/shouni/stack-badge-kit/pkg/adapters"
	"github.com/shouni/stack-badge-kit/pkg/compositor"
	"github.com/shouni/stack-badge-kit/pkg/config"
	"github.com/shouni/stack-badge-kit/pkg/domain"
	"github.com/shouni/stack-badge-kit/pkg/generator"
	"github.com/shouni/stack-badge-kit/pkg/imgutil"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	gen, err := newGenerator(context.Background(), cfg)
	if err != nil {
		slog.Error("初期化に失敗しました", "error", err)
		os.Exit(1)
	}

	slog.Info("[boot] badge generator ready", "bucket", cfg.BucketName, "template", cfg.TemplateKey, "templateURI", cfg.TemplateURI)
	lambda.Start(func(ctx context.Context, req domain.BadgeRequest) (*domain.Response, error) {
		return gen.Generate(ctx, req)
	})
}

func newGenerator(ctx context.Context, cfg config.Config) (*generator.BadgeGenerator, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}

	s3Client := s3.NewFromConfig(awsCfg)
	store, err := adapters.NewS3ObjectStore(s3Client)
	if err != nil {
		return nil, err
	}
	source, err := newTemplateSource(ctx, cfg, s3Client, store)
	if err != nil {
		return nil, err
	}

	toolkit, err := imgutil.NewToolkit()
	if err != nil {
		return nil, err
	}
	comp, err := compositor.NewCompositor(toolkit)
	if err != nil {
		return nil, err
	}

	return generator.NewBadgeGenerator(cfg, source, store, toolkit, comp)
}

// templateFetchTimeout は HTTP(S) でテンプレートを取得する際のタイムアウトです。
const templateFetchTimeout = 10 * time.Second

// newTemplateSource は TEMPLATE_URI のスキームからテンプレートの取得元を選びます。
// 未設定ならバケット上の固定キー、http(s):// は httpkit、gs:// は GCS、
// それ以外 (s3:// とローカルパス) は S3 クライアントを持つ UniversalInputReader を使います。
func newTemplateSource(ctx context.Context, cfg config.Config, s3Client *s3.Client, store adapters.ObjectDownloader) (generator.TemplateSource, error) {
	uri := cfg.TemplateURI
	switch {
	case uri == "":
		return adapters.NewBucketTemplateSource(store, cfg.BucketName, cfg.TemplateKey)
	case strings.HasPrefix(uri, "http://"), strings.HasPrefix(uri, "https://"):
		return adapters.NewHTTPTemplateSource(httpkit.New(templateFetchTimeout), uri)
	case remoteio.IsGCSURI(uri):
		factory, err := gcsfactory.New(ctx)
		if err != nil {
			return nil, fmt.Errorf("GCSファクトリの初期化に失敗しました: %w", err)
		}
		reader, err := factory.InputReader()
		if err != nil {
			_ = factory.Close()
			return nil, err
		}
		return adapters.NewRemoteTemplateSource(reader, uri)
	default:
		return adapters.NewRemoteTemplateSource(remoteio.NewUniversalInputReader(nil, s3Client), uri)
	}
}

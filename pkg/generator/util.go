package generator

import (
	"github.com/shouni/stack-badge-kit/pkg/domain"
	"github.com/shouni/stack-badge-kit/pkg/utils"
)

// StorageKey はテキストから保存キー（プレフィックスなし）を導出します。
func StorageKey(text string) string {
	return utils.Slugify(text) + domain.ImageExtension
}

// shouldUpload は拡張子だけのキーを除外します。
// TODO: この閾値は空文字対策と思われるため、意図を確認して minKeyLength の扱いを見直す
func shouldUpload(key string) bool {
	return len(key) > minKeyLength
}

package utils

import "strings"

// DerefOr は、ポインタを安全にデリファレンスします。
// ポインタがnilの場合は def を返します。
func DerefOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// Slugify は、前後の空白を取り除き、半角スペースを1文字ずつハイフンへ置き換えます。
// タブや改行など半角スペース以外の内部の空白はそのまま残ります。
func Slugify(text string) string {
	return strings.ReplaceAll(strings.TrimSpace(text), " ", "-")
}

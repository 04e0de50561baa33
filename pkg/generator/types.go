package generator

const (
	// minKeyLength 以下の長さの保存キーはアップロードしない
	minKeyLength = 4
)

// PersistResult は保存処理の結果です。
type PersistResult struct {
	Key      string
	Uploaded bool
}

package domain

import "errors"

// バッジ生成パイプラインのエラー分類です。呼び出し側は errors.Is で判定します。
var (
	// ErrConfiguration はバケット名などの必須設定が欠けている場合のエラーです。
	ErrConfiguration = errors.New("configuration error")
	// ErrStorageUnavailable はオブジェクトストレージの取得・保存に失敗した場合のエラーです。
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrDecode は画像として解釈できないバイト列を受け取った場合のエラーです。
	ErrDecode = errors.New("image decode error")
	// ErrEncode は画像のエンコードに失敗した場合のエラーです。
	ErrEncode = errors.New("image encode error")
	// ErrComposition はストリップの形状が一致せず連結できない場合のエラーです。
	ErrComposition = errors.New("image composition error")
)

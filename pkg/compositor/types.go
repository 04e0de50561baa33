package compositor

import "image"

// テンプレート画像上の固定レイアウトです。
const (
	StripHeight = 27

	beginMinX  = 0
	beginMaxX  = 10
	middleMinX = 10
	middleMaxX = 15
	endMinX    = 110
	endMaxX    = 144

	// MiddlePadding は計測したテキスト幅に足す余白です（空文字でも中央は3px残る）。
	MiddlePadding = 3
)

var (
	beginRect  = image.Rect(beginMinX, 0, beginMaxX, StripHeight)
	middleRect = image.Rect(middleMinX, 0, middleMaxX, StripHeight)
	endRect    = image.Rect(endMinX, 0, endMaxX, StripHeight)

	// TextAnchor は中央ストリップ上のテキストのベースライン起点です。
	TextAnchor = image.Pt(2, 19)

	// MinTemplateSize はテンプレートとして受け付ける最小サイズです。
	MinTemplateSize = image.Pt(endMaxX, StripHeight)
)

// BeginWidth と EndWidth は左右キャップの幅です。
const (
	BeginWidth = beginMaxX - beginMinX
	EndWidth   = endMaxX - endMinX
)

package generator

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"

	"github.com/jinford/export-batch/internal/module/export/domain"
)

// Vector は共有入力のサマリーカードをSVGとして生成するExecutorです
//
// 設定:
//   - width: 画像幅（デフォルト400、範囲64〜4096）
//   - height: 画像高さ（デフォルト120、範囲64〜4096）
func Vector(ctx context.Context, input *domain.Input, cfg domain.Config) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	width, err := intOption(cfg, "width", 400)
	if err != nil {
		return nil, err
	}
	height, err := intOption(cfg, "height", 120)
	if err != nil {
		return nil, err
	}
	if width < 64 || width > 4096 || height < 64 || height > 4096 {
		return nil, fmt.Errorf("width/height は64〜4096の範囲である必要があります (got %dx%d)", width, height)
	}

	// 入力サイズに応じたバーの長さ（上限で飽和）
	barMax := width - 40
	barWidth := len(input.Data) / 16
	if barWidth > barMax {
		barWidth = barMax
	}
	if barWidth < 4 {
		barWidth = 4
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n", width, height, width, height)
	fmt.Fprintf(&buf, `  <rect width="%d" height="%d" fill="#1e2430"/>`+"\n", width, height)
	fmt.Fprintf(&buf, `  <text x="20" y="34" font-family="monospace" font-size="16" fill="#e8eaed">%s</text>`+"\n", escapeXML(input.Name))
	fmt.Fprintf(&buf, `  <text x="20" y="58" font-family="monospace" font-size="12" fill="#9aa0a6">%d bytes</text>`+"\n", len(input.Data))
	fmt.Fprintf(&buf, `  <rect x="20" y="%d" width="%d" height="12" rx="3" fill="#4c8bf5"/>`+"\n", height-36, barWidth)
	buf.WriteString("</svg>\n")

	return buf.Bytes(), nil
}

// escapeXML はSVG内のテキストノード用に特殊文字をエスケープします
func escapeXML(s string) string {
	var buf bytes.Buffer
	// EscapeTextはwriterエラーを返すが、bytes.Bufferでは発生しない
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

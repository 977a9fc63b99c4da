package generator

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/jinford/export-batch/internal/module/export/domain"
)

// documentTemplate はプレーンテキスト文書のレイアウトです
var documentTemplate = template.Must(template.New("document").Parse(`{{.Rule}}
{{.Header}}
{{.Rule}}

source: {{.Name}}
size:   {{.Size}} bytes

{{.Rule}}

{{.Body}}
`))

type documentData struct {
	Rule   string
	Header string
	Name   string
	Size   int
	Body   string
}

// Document は共有入力をプレーンテキスト文書として整形するExecutorです
//
// 設定:
//   - header: 文書先頭の見出し（デフォルトは入力ファイル名）
//   - line_width: 本文の折り返し幅（デフォルト80、最小20）
func Document(ctx context.Context, input *domain.Input, cfg domain.Config) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	header, err := stringOption(cfg, "header", input.Name)
	if err != nil {
		return nil, err
	}
	lineWidth, err := intOption(cfg, "line_width", 80)
	if err != nil {
		return nil, err
	}
	if lineWidth < 20 {
		return nil, fmt.Errorf("line_width は20以上である必要があります (got %d)", lineWidth)
	}

	var buf bytes.Buffer
	data := documentData{
		Rule:   strings.Repeat("=", lineWidth),
		Header: header,
		Name:   input.Name,
		Size:   len(input.Data),
		Body:   wrapText(string(input.Data), lineWidth),
	}
	if err := documentTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("文書テンプレートの展開に失敗: %w", err)
	}

	return buf.Bytes(), nil
}

// wrapText は本文を指定幅で単語境界を保ちながら折り返します
func wrapText(text string, width int) string {
	var out strings.Builder

	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			out.WriteString("\n")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			if len(current)+1+len(word) > width {
				out.WriteString(current)
				out.WriteString("\n")
				current = word
				continue
			}
			current += " " + word
		}
		out.WriteString(current)
		out.WriteString("\n")
	}

	return strings.TrimRight(out.String(), "\n")
}

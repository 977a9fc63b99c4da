package generator

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jinford/export-batch/internal/module/export/domain"
)

// archiveManifestName はアーカイブに同梱するマニフェストのエントリ名
const archiveManifestName = "MANIFEST.txt"

// Archive は共有入力をZIPアーカイブとして梱包するExecutorです
// ペイロード本体と内容を説明するマニフェストの2エントリを書き込みます
//
// 設定:
//   - compress: trueならDeflate圧縮、falseなら無圧縮格納（デフォルトtrue）
func Archive(ctx context.Context, input *domain.Input, cfg domain.Config) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	compress, err := boolOption(cfg, "compress", true)
	if err != nil {
		return nil, err
	}

	method := zip.Deflate
	if !compress {
		method = zip.Store
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	// 成果物を決定的にするため固定タイムスタンプを使う
	modified := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	payload := &zip.FileHeader{Name: input.Name, Method: method, Modified: modified}
	w, err := zw.CreateHeader(payload)
	if err != nil {
		return nil, fmt.Errorf("ZIPエントリの作成に失敗: %w", err)
	}
	if _, err := w.Write(input.Data); err != nil {
		return nil, fmt.Errorf("ZIPエントリの書き込みに失敗: %w", err)
	}

	manifest := &zip.FileHeader{Name: archiveManifestName, Method: method, Modified: modified}
	w, err = zw.CreateHeader(manifest)
	if err != nil {
		return nil, fmt.Errorf("ZIPマニフェストの作成に失敗: %w", err)
	}
	fmt.Fprintf(w, "name: %s\nsize: %d bytes\n", input.Name, len(input.Data))

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("ZIPのクローズに失敗: %w", err)
	}

	return buf.Bytes(), nil
}

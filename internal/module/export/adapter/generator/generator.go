// Package generator は各ジョブ種別に対応する標準Executorを提供します
// すべてのExecutorは純粋な変換（入力ペイロード→成果物バイト列）であり、I/Oを行いません
package generator

import (
	"fmt"

	"github.com/jinford/export-batch/internal/module/export/domain"
)

// Defaults は標準のジョブ種別とExecutorの対応を返します
func Defaults() map[domain.JobKind]domain.Executor {
	return map[domain.JobKind]domain.Executor{
		domain.KindDocument: Document,
		domain.KindRaster:   Raster,
		domain.KindVector:   Vector,
		domain.KindArchive:  Archive,
	}
}

// RegisterDefaults は標準Executor一式をRegistryへ登録します
func RegisterDefaults(reg *domain.Registry) error {
	for kind, fn := range Defaults() {
		if err := reg.Register(kind, fn); err != nil {
			return fmt.Errorf("標準Executorの登録に失敗: %w", err)
		}
	}
	return nil
}

// ExtensionFor はジョブ種別に対応する成果物の拡張子を返します
func ExtensionFor(kind domain.JobKind) string {
	switch kind {
	case domain.KindDocument:
		return ".txt"
	case domain.KindRaster:
		return ".png"
	case domain.KindVector:
		return ".svg"
	case domain.KindArchive:
		return ".zip"
	default:
		return ".bin"
	}
}

// intOption は設定から整数値を取り出します。キーが無ければデフォルト値を返します
func intOption(cfg domain.Config, key string, defaultValue int) (int, error) {
	v, ok := cfg[key]
	if !ok {
		return defaultValue, nil
	}

	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("設定 %s は整数である必要があります (got %T)", key, v)
	}
}

// stringOption は設定から文字列値を取り出します。キーが無ければデフォルト値を返します
func stringOption(cfg domain.Config, key, defaultValue string) (string, error) {
	v, ok := cfg[key]
	if !ok {
		return defaultValue, nil
	}

	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("設定 %s は文字列である必要があります (got %T)", key, v)
	}

	return s, nil
}

// boolOption は設定から真偽値を取り出します。キーが無ければデフォルト値を返します
func boolOption(cfg domain.Config, key string, defaultValue bool) (bool, error) {
	v, ok := cfg[key]
	if !ok {
		return defaultValue, nil
	}

	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("設定 %s は真偽値である必要があります (got %T)", key, v)
	}

	return b, nil
}

// Package manifest はYAML形式のジョブマニフェストを読み込みます
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jinford/export-batch/internal/module/export/domain"
)

// File はマニフェストのルート構造です
type File struct {
	Jobs []JobEntry `yaml:"jobs"`
}

// JobEntry はマニフェスト上のジョブ1件分の記述です
type JobEntry struct {
	Kind   string         `yaml:"kind"`
	Name   string         `yaml:"name"`
	Config map[string]any `yaml:"config"`
}

// Load はマニフェストファイルを読み込みジョブリストへ変換します
func Load(path string) ([]domain.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("マニフェストの読み込みに失敗: %w", err)
	}

	return Parse(data)
}

// Parse はYAMLバイト列をジョブリストへ変換します
//
// kindの文字列は構文チェックのみで、登録済み種別かどうかは検証しません。
// 未登録種別は実行時にそのジョブだけのFailure結果として報告されます。
func Parse(data []byte) ([]domain.Job, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("マニフェストの解析に失敗: %w", err)
	}

	jobs := make([]domain.Job, 0, len(f.Jobs))
	for i, e := range f.Jobs {
		if e.Name == "" {
			return nil, fmt.Errorf("jobs[%d]: name は必須です", i)
		}
		if e.Kind == "" {
			return nil, fmt.Errorf("jobs[%d] (%s): kind は必須です", i, e.Name)
		}

		jobs = append(jobs, domain.Job{
			Kind:       domain.JobKind(e.Kind),
			Identifier: e.Name,
			Config:     domain.Config(e.Config),
		})
	}

	return jobs, nil
}

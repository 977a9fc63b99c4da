package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/jinford/export-batch/internal/module/export/adapter/generator"
	"github.com/jinford/export-batch/internal/module/export/adapter/manifest"
	"github.com/jinford/export-batch/internal/module/export/domain"
)

// ManifestValidateAction はマニフェストを実行せずに検証するコマンドのアクション
func ManifestValidateAction(ctx context.Context, cmd *cli.Command) error {
	manifestPath := cmd.String("manifest")

	jobs, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	// 未登録種別は実行時にFailureとなるため、ここでは警告として表示する
	known := make(map[domain.JobKind]bool)
	for kind := range generator.Defaults() {
		known[kind] = true
	}

	unknown := 0
	for _, job := range jobs {
		if !known[job.Kind] {
			fmt.Printf("警告: %s は未登録のジョブ種別です (kind=%s)\n", job.Identifier, job.Kind)
			unknown++
		}
	}

	fmt.Printf("検証OK: %d件のジョブ（うち未登録種別 %d件）\n", len(jobs), unknown)

	return nil
}

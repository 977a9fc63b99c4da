package commands

import (
	"context"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	"github.com/jinford/export-batch/internal/module/export/adapter/generator"
	"github.com/jinford/export-batch/internal/module/export/domain"
)

// KindsAction は利用可能なジョブ種別を表示するコマンドのアクション
func KindsAction(ctx context.Context, cmd *cli.Command) error {
	registry := domain.NewRegistry()
	if err := generator.RegisterDefaults(registry); err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Kind", "Extension")

	for _, kind := range registry.Kinds() {
		table.Append(string(kind), generator.ExtensionFor(kind))
	}

	table.Render()

	return nil
}

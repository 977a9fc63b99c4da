package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jinford/export-batch/cmd/export-batch/commands"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 構造化ログの設定（設定読み込み後にcommands側で再設定される）
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	app := &cli.Command{
		Name:  "export-batch",
		Usage: "共有入力から複数形式のエクスポート成果物を並列生成するツール",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "マニフェストに従ってエクスポートバッチを実行",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "env",
						Usage: "環境変数ファイルパス",
						Value: ".env",
					},
					&cli.StringFlag{
						Name:     "manifest",
						Usage:    "ジョブマニフェスト(YAML)のパス",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "input",
						Usage:    "共有入力ペイロードのファイルパス",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "out",
						Usage: "成果物の出力ディレクトリ（省略時は環境変数またはデフォルトの./exports）",
					},
					&cli.IntFlag{
						Name:  "concurrency",
						Usage: "同時実行数の上限（省略時は環境変数またはデフォルトの4）",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "進捗表示を抑制",
					},
				},
				Action: commands.RunAction,
			},
			{
				Name:   "kinds",
				Usage:  "利用可能なジョブ種別を表示",
				Action: commands.KindsAction,
			},
			{
				Name:  "manifest",
				Usage: "マニフェスト管理コマンド",
				Commands: []*cli.Command{
					{
						Name:  "validate",
						Usage: "マニフェストを実行せずに検証",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "manifest",
								Usage:    "ジョブマニフェスト(YAML)のパス",
								Required: true,
							},
						},
						Action: commands.ManifestValidateAction,
					},
				},
			},
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shouni/gutenberg-tweet-go/internal/builder"
	"github.com/shouni/gutenberg-tweet-go/internal/pipeline"
	"github.com/shouni/gutenberg-tweet-go/internal/segmenter"
)

// パイプライン全体のデフォルトの最大実行時間
const defaultContextTimeout = 10 * time.Minute

// runCmd は、メインのCLIコマンド定義です。
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "ストーリーを上限文字数以内のツイートに分割します。",
	Long: `
Project Gutenberg 形式のストーリーを段落に分解し、各段落を文 → 節 → 読点 → 単語 の順で
上限文字数以内のツイートへ分割します。出力は1行1ツイートです。

-iまたは--inputオプションで入力元 (ローカルパス、gs://bucket/object、http(s)://) を指定してください。
-oまたは--outputオプションで出力先 (ローカルパス、gs://bucket/object) を指定すると、そこに書き込まれます。
指定しない場合は標準出力に出力されます。
`,
	RunE: runMainLogic,
}

// init関数でサブコマンド固有のフラグを定義します。
func init() {
	addRunFlags(runCmd)
	runCmd.MarkFlagRequired("input")
}

// addRunFlags は run サブコマンドのフラグを cmd に定義します。
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "分割対象のストーリー (ローカルパス、gs://、http(s)://)")
	cmd.Flags().StringP("output", "o", "", "ツイートを出力するファイルパス (省略時は標準出力)")
	cmd.Flags().IntP("limit", "l", segmenter.DefaultLimit, "1ツイートあたりの最大文字数")
	cmd.Flags().IntP("parallel", "p", segmenter.DefaultConcurrency, "同時に分割する最大段落数")
	cmd.Flags().DurationP("scraper-timeout", "s", 15*time.Second, "Web入力時のHTTPタイムアウト時間")
	cmd.Flags().Duration("timeout", defaultContextTimeout, "パイプライン全体のタイムアウト時間")
}

// newCmdOptionsFromFlags は cobra.Command のフラグから CmdOptions 構造体を生成します。
func newCmdOptionsFromFlags(cmd *cobra.Command) (pipeline.CmdOptions, error) {
	input, err := cmd.Flags().GetString("input")
	if err != nil {
		return pipeline.CmdOptions{}, fmt.Errorf("inputフラグの取得に失敗しました: %w", err)
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return pipeline.CmdOptions{}, fmt.Errorf("outputフラグの取得に失敗しました: %w", err)
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return pipeline.CmdOptions{}, fmt.Errorf("limitフラグの取得に失敗しました: %w", err)
	}
	maxParallel, err := cmd.Flags().GetInt("parallel")
	if err != nil {
		return pipeline.CmdOptions{}, fmt.Errorf("parallelフラグの取得に失敗しました: %w", err)
	}
	scraperTimeout, err := cmd.Flags().GetDuration("scraper-timeout")
	if err != nil {
		return pipeline.CmdOptions{}, fmt.Errorf("scraper-timeoutフラグの取得に失敗しました: %w", err)
	}

	if input == "" {
		return pipeline.CmdOptions{}, fmt.Errorf("--input には空でない入力元を指定する必要があります")
	}
	if maxParallel < 1 {
		return pipeline.CmdOptions{}, fmt.Errorf("--parallel には1以上の値を指定する必要があります")
	}

	opts := pipeline.CmdOptions{
		InputPath:      input,
		OutputFilePath: output,
		Limit:          limit,
		MaxParallel:    maxParallel,
		ScraperTimeout: scraperTimeout,
	}

	return opts, nil
}

// runMainLogicはCLIのメインロジックを実行し、フラグをパイプラインに渡します。
func runMainLogic(cmd *cobra.Command, args []string) error {
	opts, err := newCmdOptionsFromFlags(cmd)
	if err != nil {
		return err
	}

	timeout, err := cmd.Flags().GetDuration("timeout")
	if err != nil {
		return fmt.Errorf("timeoutフラグの取得に失敗しました: %w", err)
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	p, closer, err := builder.BuildPipeline(ctx, opts)
	if err != nil {
		closer()
		return fmt.Errorf("パイプラインの構築に失敗しました: %w", err)
	}
	defer closer()

	if err := p.Execute(ctx); err != nil {
		return fmt.Errorf("パイプラインの実行中にエラーが発生しました: %w", err)
	}

	return nil
}

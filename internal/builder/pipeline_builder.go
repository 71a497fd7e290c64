package builder

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/storage"
	textpipe "github.com/shouni/web-text-pipe-go/pkg/builder"

	"github.com/shouni/gutenberg-tweet-go/internal/pipeline"
	"github.com/shouni/gutenberg-tweet-go/internal/segmenter"
)

// webScraperParallel は、Web 入力時のスクレイピング同時実行数です。入力URLは常に1件です。
const webScraperParallel = 1

// BuildPipeline は、必要なすべての依存関係を構築し、DIされた Pipeline インスタンスと
// 外部クライアントのクリーンアップ関数を返します。
// GCS クライアントは入力または出力が gs:// の場合のみ、スクレイパーは入力が http(s):// の場合のみ初期化します。
func BuildPipeline(ctx context.Context, opts pipeline.CmdOptions) (*pipeline.Pipeline, func(), error) {
	closer := func() {}

	// ----------------------------------------------------------------
	// 1. 分割ロジックの構築 (外部リソースを確保する前に設定値を検証する)
	// ----------------------------------------------------------------

	seg, err := segmenter.New(opts.Limit)
	if err != nil {
		return nil, closer, fmt.Errorf("Segmenterの初期化に失敗しました: %w", err)
	}
	executor := segmenter.NewExecutor(seg, opts.MaxParallel)

	// ----------------------------------------------------------------
	// 2. GCS クライアントの初期化とクリーンアップ設定
	// ----------------------------------------------------------------

	var gcsClient *storage.Client
	if pipeline.IsGCSURI(opts.InputPath) || pipeline.IsGCSURI(opts.OutputFilePath) {
		gcsClient, err = storage.NewClient(ctx)
		if err != nil {
			return nil, closer, fmt.Errorf("GCSクライアントの初期化に失敗しました: %w", err)
		}
		closer = func() {
			if err := gcsClient.Close(); err != nil {
				slog.Warn("GCSクライアントのクローズに失敗しました", slog.String("error", err.Error()))
			}
		}
	}

	// ----------------------------------------------------------------
	// 3. Web 入力のための依存関係の具体化
	// ----------------------------------------------------------------

	var fetcher pipeline.ContentFetcher
	if pipeline.IsWebURL(opts.InputPath) {
		scraperExecutor, err := textpipe.BuildReliableScraperExecutor(opts.ScraperTimeout, webScraperParallel)
		if err != nil {
			return nil, closer, fmt.Errorf("ReliableScraperExecutorの初期化に失敗しました: %w", err)
		}
		fetcher = pipeline.NewWebContentFetcherImpl(scraperExecutor)
	}

	// ----------------------------------------------------------------
	// 4. パイプラインステージの実装とPipelineの構築 (DIの実行)
	// ----------------------------------------------------------------

	source := pipeline.NewStorySourceImpl(pipeline.NewLocalGCSInputReader(gcsClient), fetcher)
	generator := pipeline.NewTweetGeneratorImpl(executor)

	var gcsWriter pipeline.GCSOutputWriter
	if gcsClient != nil {
		gcsWriter = pipeline.NewGCSFileWriter(gcsClient)
	}
	output := pipeline.NewTweetOutputWriterImpl(gcsWriter)

	return pipeline.NewPipeline(opts, source, generator, output), closer, nil
}

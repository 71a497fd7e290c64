package pipeline

import (
	"context"
	"io"
	"time"

	extTypes "github.com/shouni/go-web-exact/v2/pkg/types"
)

// ----------------------------------------------------------------
// 共通構造体
// ----------------------------------------------------------------

// CmdOptions は CLI オプションの値を集約するための構造体です。
type CmdOptions struct {
	// InputPath はストーリーの入力元です (ローカルパス、gs://、http(s)://)。
	InputPath string
	// OutputFilePath はツイートの出力先です (ローカルパス、gs://、空文字は標準出力)。
	OutputFilePath string
	Limit          int
	MaxParallel    int
	ScraperTimeout time.Duration
}

// ----------------------------------------------------------------
// パイプラインステージのインターフェース (DIの契約)
// ----------------------------------------------------------------

// StorySource は、入力元からストーリーを読み込み、段落の並びに変換するステージの契約です。
type StorySource interface {
	Load(ctx context.Context, opts CmdOptions) ([]string, error)
}

// TweetGenerator は、段落をツイートの並びに分割するステージの契約です。
type TweetGenerator interface {
	Generate(ctx context.Context, opts CmdOptions, paragraphs []string) ([]string, error)
}

// OutputWriter は、ツイートを1行1件で出力先へ書き出すステージの契約です。
type OutputWriter interface {
	Write(ctx context.Context, opts CmdOptions, tweets []string) error
}

// ----------------------------------------------------------------
// ステージ実装が依存するインターフェース
// ----------------------------------------------------------------

// InputReader は、ローカルファイルや GCS オブジェクトをストリームとして開きます。
type InputReader interface {
	Open(ctx context.Context, filePath string) (io.ReadCloser, error)
}

// ContentFetcher は、Web 上のストーリー本文を取得します。
type ContentFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// ScraperRunner は、リトライ機能付きの並列スクレイパーの契約です。
type ScraperRunner interface {
	ScrapeInParallel(ctx context.Context, urls []string) []extTypes.URLResult
}

// GCSOutputWriter は、GCS オブジェクトへの書き込みの契約です。
type GCSOutputWriter interface {
	WriteToGCS(ctx context.Context, bucketName, objectPath string, content string) error
}

// ----------------------------------------------------------------
// Pipeline コア構造
// ----------------------------------------------------------------

// Pipeline はアプリケーションの実行パイプラインを定義し、DIされた依存関係を保持します。
type Pipeline struct {
	Options CmdOptions

	Source    StorySource
	Generator TweetGenerator
	Output    OutputWriter
}

// NewPipeline は CmdOptions とステージの具象実装を受け取り、Pipelineインスタンスを構築します。
func NewPipeline(
	opts CmdOptions,
	source StorySource,
	generator TweetGenerator,
	output OutputWriter,
) *Pipeline {
	return &Pipeline{
		Options:   opts,
		Source:    source,
		Generator: generator,
		Output:    output,
	}
}

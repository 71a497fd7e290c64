package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/gutenberg-tweet-go/internal/segmenter"
)

// ParagraphExecutor は段落の並列分割の抽象化です。
type ParagraphExecutor interface {
	Execute(ctx context.Context, paragraphs []string) (segmenter.Result, error)
}

// TweetGeneratorImpl は TweetGenerator インターフェースの具象実装です。
type TweetGeneratorImpl struct {
	executor ParagraphExecutor
}

// NewTweetGeneratorImpl は TweetGeneratorImpl の新しいインスタンスを作成します。
func NewTweetGeneratorImpl(executor ParagraphExecutor) *TweetGeneratorImpl {
	return &TweetGeneratorImpl{
		executor: executor,
	}
}

// Generate は段落をツイートに分割します。
// 分割しきれず LIMIT を超えたツイートはエラーにせず、警告ログを出して出力に含めます。
func (g *TweetGeneratorImpl) Generate(ctx context.Context, opts CmdOptions, paragraphs []string) ([]string, error) {
	result, err := g.executor.Execute(ctx, paragraphs)
	if err != nil {
		return nil, fmt.Errorf("段落の分割に失敗しました: %w", err)
	}

	for _, over := range result.OverLimit {
		slog.Warn("⚠️ 分割可能な区切りが見つからず、上限を超えたツイートを出力します。",
			slog.Int("paragraph", over.Paragraph+1),
			slog.Int("length", over.Length),
			slog.Int("limit", opts.Limit))
	}

	slog.Info("ツイートへの分割が完了しました",
		slog.Int("paragraphs", result.Paragraphs),
		slog.Int("tweets", len(result.Tweets)),
		slog.Int("over_limit", len(result.OverLimit)))

	return result.Tweets, nil
}

// 型アサーションチェック
var (
	_ TweetGenerator    = (*TweetGeneratorImpl)(nil)
	_ ParagraphExecutor = (*segmenter.Executor)(nil)
)

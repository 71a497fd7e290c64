package segmenter

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Executor は、段落ごとの分割を並列に実行します。
// 段落同士は状態を共有しないため、結果は入力と同じ読み順に並べ直すだけで済みます。
type Executor struct {
	segmenter   *Segmenter
	concurrency int
}

// NewExecutor は新しい Executor インスタンスを作成します。
func NewExecutor(segmenter *Segmenter, concurrency int) *Executor {
	if concurrency < 1 {
		concurrency = 1
	}

	return &Executor{
		segmenter:   segmenter,
		concurrency: concurrency,
	}
}

// Execute は全段落を分割し、読み順に連結したツイートと統計情報を返します。
func (e *Executor) Execute(ctx context.Context, paragraphs []string) (Result, error) {
	segmented := make([][]string, len(paragraphs))

	slog.Info("段落の分割を開始します",
		slog.Int("paragraphs", len(paragraphs)),
		slog.Int("limit", e.segmenter.Limit()),
		slog.Int("max_parallel", e.concurrency))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i, p := range paragraphs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("段落 %d の分割がコンテキストキャンセルにより中断されました: %w", i+1, err)
			}
			segmented[i] = e.segmenter.Segment(p)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	result := Result{
		Tweets:     make([]string, 0, len(paragraphs)),
		Paragraphs: len(paragraphs),
	}
	for i, tweets := range segmented {
		for _, idx := range e.segmenter.OverLimit(tweets) {
			result.OverLimit = append(result.OverLimit, OverLimitTweet{
				Paragraph: i,
				Text:      tweets[idx],
				Length:    length(tweets[idx]),
			})
		}
		result.Tweets = append(result.Tweets, tweets...)
	}

	return result, nil
}

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shouni/web-text-pipe-go/pkg/runner"
)

// ErrNoWebContent は、URL から本文を一件も取得できなかった場合に返されます。
var ErrNoWebContent = errors.New("Webコンテンツを取得できませんでした")

// WebContentFetcherImpl は ContentFetcher インターフェースの具象実装です。
// その唯一の責務は、スクレイピング実行者に処理を委譲することです。
type WebContentFetcherImpl struct {
	scraperRunner ScraperRunner
}

// NewWebContentFetcherImpl は WebContentFetcherImpl の新しいインスタンスを作成します。
// ここで注入されるのは、リトライ機能を持つ runner.ReliableScraper です。
func NewWebContentFetcherImpl(scraperRunner ScraperRunner) *WebContentFetcherImpl {
	return &WebContentFetcherImpl{
		scraperRunner: scraperRunner,
	}
}

// Fetch は、URL の本文テキストを取得します。
func (w *WebContentFetcherImpl) Fetch(ctx context.Context, url string) (string, error) {
	slog.Info("Webコンテンツの抽出処理を ScraperRunner に委譲します。", slog.String("url", url))

	results := w.scraperRunner.ScrapeInParallel(ctx, []string{url})
	for _, res := range results {
		if res.URL == url && res.Content != "" {
			return res.Content, nil
		}
	}

	return "", fmt.Errorf("%w (URL: %s)", ErrNoWebContent, url)
}

// ----------------------------------------------------------------
// 型アサーションチェック
// ----------------------------------------------------------------

var (
	_ ScraperRunner  = (*runner.ReliableScraper)(nil)
	_ ContentFetcher = (*WebContentFetcherImpl)(nil)
)

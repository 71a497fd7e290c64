package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/gutenberg-tweet-go/internal/paragraph"
)

// ErrWebFetcherMissing は、Web フェッチャーなしで http(s):// が指定された場合に返されます。
var ErrWebFetcherMissing = errors.New("URLが指定されましたが、Webフェッチャーが初期化されていません")

// StorySourceImpl は StorySource インターフェースの具象実装です。
// 入力パスのスキームに応じて、ファイル (ローカル/GCS) または Web から本文を読み込みます。
type StorySourceImpl struct {
	reader  InputReader
	fetcher ContentFetcher
}

// NewStorySourceImpl は StorySourceImpl の新しいインスタンスを作成します。
// Web 入力を使用しない場合、fetcher には nil を渡すことができます。
func NewStorySourceImpl(reader InputReader, fetcher ContentFetcher) *StorySourceImpl {
	return &StorySourceImpl{
		reader:  reader,
		fetcher: fetcher,
	}
}

// Load は入力元を読み込み、段落の並びを返します。
func (s *StorySourceImpl) Load(ctx context.Context, opts CmdOptions) ([]string, error) {
	if opts.InputPath == "" {
		return nil, fmt.Errorf("処理対象のストーリーを指定してください。-i/--input オプションで入力元を指定してください。")
	}

	if IsWebURL(opts.InputPath) {
		return s.loadFromWeb(ctx, opts.InputPath)
	}
	return s.loadFromFile(ctx, opts.InputPath)
}

func (s *StorySourceImpl) loadFromFile(ctx context.Context, path string) ([]string, error) {
	rc, err := s.reader.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("入力ファイルの読み込みに失敗しました: %w", err)
	}
	defer rc.Close()

	paragraphs, err := paragraph.Read(rc)
	if err != nil {
		return nil, fmt.Errorf("入力ファイルの読み込みに失敗しました (%s): %w", path, err)
	}

	slog.Info("ストーリーを読み込みました", slog.String("source", path))
	return paragraphs, nil
}

func (s *StorySourceImpl) loadFromWeb(ctx context.Context, url string) ([]string, error) {
	if s.fetcher == nil {
		return nil, ErrWebFetcherMissing
	}

	content, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("Webからのストーリー取得に失敗しました: %w", err)
	}

	slog.Info("Webからストーリーを取得しました", slog.String("source", url), slog.Int("bytes", len(content)))
	return paragraph.Assemble(strings.Split(content, "\n")), nil
}

// 型アサーションチェック
var _ StorySource = (*StorySourceImpl)(nil)

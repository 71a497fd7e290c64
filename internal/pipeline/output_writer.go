package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/shouni/go-utils/iohandler"
)

// TweetOutputWriterImpl は OutputWriter インターフェースの具象実装です。
// 出力先が gs:// なら GCS へ、それ以外はローカルファイルまたは標準出力へ書き出します。
type TweetOutputWriterImpl struct {
	gcsWriter GCSOutputWriter
}

// NewTweetOutputWriterImpl は TweetOutputWriterImpl の新しいインスタンスを作成します。
// GCS へ出力しない場合、gcsWriter には nil を渡すことができます。
func NewTweetOutputWriterImpl(gcsWriter GCSOutputWriter) *TweetOutputWriterImpl {
	return &TweetOutputWriterImpl{
		gcsWriter: gcsWriter,
	}
}

// Write はツイートを1行1件で出力します。
func (w *TweetOutputWriterImpl) Write(ctx context.Context, opts CmdOptions, tweets []string) error {
	content := FormatTweets(tweets)
	dest := opts.OutputFilePath

	if IsGCSURI(dest) {
		return w.writeToGCS(ctx, dest, content)
	}

	if dest != "" {
		dir := filepath.Dir(dest)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("ディレクトリの作成に失敗しました (%s): %w", dir, err)
		}
	}

	if err := iohandler.WriteOutputString(dest, content); err != nil {
		return fmt.Errorf("ファイルへの書き込みに失敗しました: %w", err)
	}
	if dest != "" {
		slog.Info("最終生成完了 - ファイルに書き込みました", slog.String("file", dest))
	}

	return nil
}

func (w *TweetOutputWriterImpl) writeToGCS(ctx context.Context, uri, content string) error {
	if w.gcsWriter == nil {
		return ErrGCSClientMissing
	}

	bucketName, objectName, err := ParseGCSURI(uri)
	if err != nil {
		return err
	}
	if err := w.gcsWriter.WriteToGCS(ctx, bucketName, objectName, content); err != nil {
		return err
	}

	slog.Info("最終生成完了 - GCSに書き込みました", slog.String("uri", uri))
	return nil
}

// FormatTweets は、ツイートを改行終端の1行1件のテキストに整形します。
// 末尾の空白は取り除き、空になったツイートは出力しません。行頭の字下げは保持します。
func FormatTweets(tweets []string) string {
	var sb strings.Builder
	for _, tweet := range tweets {
		tweet = strings.TrimRightFunc(tweet, unicode.IsSpace)
		if tweet == "" {
			continue
		}
		sb.WriteString(tweet)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// 型アサーションチェック
var _ OutputWriter = (*TweetOutputWriterImpl)(nil)

package pipeline

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
)

// tweetContentType は、出力するツイートファイルの Content-Type です。
const tweetContentType = "text/plain; charset=utf-8"

// GCSFileWriter は GCSOutputWriter インターフェースの具象実装です。
type GCSFileWriter struct {
	client *storage.Client
}

// NewGCSFileWriter は新しい GCSFileWriter インスタンスを作成します。
func NewGCSFileWriter(client *storage.Client) *GCSFileWriter {
	return &GCSFileWriter{client: client}
}

// WriteToGCS は指定されたバケットとパスにコンテンツを書き込みます。
func (w *GCSFileWriter) WriteToGCS(ctx context.Context, bucketName, objectPath string, content string) error {
	wc := w.client.Bucket(bucketName).Object(objectPath).NewWriter(ctx)
	wc.ContentType = tweetContentType

	if _, err := wc.Write([]byte(content)); err != nil {
		wc.Close() // 書き込みエラー時は必ず閉じる
		return fmt.Errorf("GCSへのコンテンツ書き込みに失敗しました: %w", err)
	}

	// Close が実際のアップロードを確定させる
	if err := wc.Close(); err != nil {
		return fmt.Errorf("GCS Writerのクローズに失敗しました (アップロード失敗): %w", err)
	}

	return nil
}

// 型アサーションチェック
var _ GCSOutputWriter = (*GCSFileWriter)(nil)

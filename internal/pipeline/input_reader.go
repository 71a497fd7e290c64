package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloud.google.com/go/storage"
)

// LocalGCSInputReader は InputReader の具象実装であり、
// ローカルファイルと GCS オブジェクトの読み込みを処理します。
type LocalGCSInputReader struct {
	gcsClient *storage.Client
}

// NewLocalGCSInputReader は LocalGCSInputReader の新しいインスタンスを作成します。
// GCS を使用しない場合は nil を渡すことができます。
func NewLocalGCSInputReader(gcsClient *storage.Client) *LocalGCSInputReader {
	return &LocalGCSInputReader{
		gcsClient: gcsClient,
	}
}

// Open は、ファイルパスを検査し、ローカルファイルまたはGCSからストリームを開きます。
func (r *LocalGCSInputReader) Open(ctx context.Context, filePath string) (io.ReadCloser, error) {
	if IsGCSURI(filePath) {
		return r.openGCSObject(ctx, filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("ローカルファイルのオープンに失敗しました: %w", err)
	}
	return file, nil
}

// openGCSObject は、GCS URI からオブジェクトを読み込み、io.ReadCloser を返します。
func (r *LocalGCSInputReader) openGCSObject(ctx context.Context, gcsURI string) (io.ReadCloser, error) {
	if r.gcsClient == nil {
		return nil, ErrGCSClientMissing
	}

	bucketName, objectName, err := ParseGCSURI(gcsURI)
	if err != nil {
		return nil, err
	}

	rc, err := r.gcsClient.Bucket(bucketName).Object(objectName).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("GCSファイルの読み込みに失敗しました (URI: %s): %w", gcsURI, err)
	}
	return rc, nil
}

// 型アサーションチェック
var _ InputReader = (*LocalGCSInputReader)(nil)

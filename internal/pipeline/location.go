package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

const gcsScheme = "gs://"

var (
	// ErrInvalidGCSURI は gs://bucket-name/object-name の形式でない URI に対して返されます。
	ErrInvalidGCSURI = errors.New("無効なGCS URI形式です")
	// ErrGCSClientMissing は GCS クライアントなしで gs:// が指定された場合に返されます。
	ErrGCSClientMissing = errors.New("GCS URIが指定されましたが、GCSクライアントが初期化されていません")
)

// IsGCSURI は、パスが GCS オブジェクトを指しているかどうかを返します。
func IsGCSURI(path string) bool {
	return strings.HasPrefix(path, gcsScheme)
}

// IsWebURL は、パスが HTTP(S) の URL かどうかを返します。
func IsWebURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// ParseGCSURI は gs://bucket-name/object-name をバケット名とオブジェクト名に分解します。
func ParseGCSURI(uri string) (bucketName, objectName string, err error) {
	if !IsGCSURI(uri) {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidGCSURI, uri)
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, gcsScheme), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %s (gs://bucket-name/object-name の形式で指定してください)", ErrInvalidGCSURI, uri)
	}

	return parts[0], parts[1], nil
}

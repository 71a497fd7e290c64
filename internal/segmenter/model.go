package segmenter

import (
	"errors"
	"unicode/utf8"
)

// DefaultLimit は、1ツイートあたりのデフォルトの最大文字数です。
const DefaultLimit = 140

// ContinuationMarker は、文の途中で強制的に分割した際に行末へ付加する継続記号です。
const ContinuationMarker = "..."

// DefaultConcurrency は、Executor が同時に分割する段落数のデフォルト値です。
const DefaultConcurrency = 4

// Abbreviations は、直後のピリオドを文末とみなさない敬称・略語の一覧です。
var Abbreviations = []string{"Mr", "Mrs", "Ms", "Dr", "Jr", "St"}

// ErrInvalidLimit は、LIMIT が継続記号を収める余地のない値だった場合に返されます。
var ErrInvalidLimit = errors.New("limit must be greater than the continuation marker length")

// markerLen は継続記号の文字数です。
var markerLen = utf8.RuneCountInString(ContinuationMarker)

// OverLimitTweet は、分割しきれずに LIMIT を超えたまま出力されるツイートを表します。
type OverLimitTweet struct {
	// Paragraph は、そのツイートが由来する段落の0始まりのインデックスです。
	Paragraph int
	Text      string
	Length    int
}

// Result は Executor による分割結果を保持します。
type Result struct {
	// Tweets は読み順に並んだ全ツイートです。
	Tweets     []string
	Paragraphs int
	OverLimit  []OverLimitTweet
}

// length は文字列の長さを文字 (コードポイント) 単位で返します。
func length(s string) int {
	return utf8.RuneCountInString(s)
}

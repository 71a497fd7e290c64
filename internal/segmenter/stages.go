package segmenter

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// closingMarks は、区切り記号の直後に続いてもその断片に含める閉じ引用符・閉じ括弧です。
const closingMarks = `["'’”)\]]*`

var (
	// 文末: 敬称の直後を除く [.!?] の連続、閉じ引用符、空白
	sentenceBoundary = regexp2.MustCompile(
		`(?<!\b(?:`+abbreviationAlternation()+`))[.!?]+`+closingMarks+`\s+`, regexp2.None)
	clauseBoundary = regexp2.MustCompile(`[;:]`+closingMarks+`\s*`, regexp2.None)
	commaBoundary  = regexp2.MustCompile(`,`+closingMarks+`\s*`, regexp2.None)
)

// SplitFunc は、1つのチャンクをより小さいチャンクの並びに分割する純粋関数です。
type SplitFunc func(chunk string, limit int) []string

// Stage は分割カスケードの1段階です。
type Stage struct {
	Name  string
	Split SplitFunc
}

// DefaultStages は、文 → 節 → 読点 → 単語 の順に並んだ分割カスケードを返します。
func DefaultStages() []Stage {
	return []Stage{
		{Name: "sentence", Split: splitSentences},
		{Name: "clause", Split: splitClauses},
		{Name: "comma", Split: splitCommas},
		{Name: "word", Split: splitWords},
	}
}

func splitSentences(chunk string, _ int) []string {
	return splitAfter(sentenceBoundary, chunk)
}

func splitClauses(chunk string, _ int) []string {
	return splitAfter(clauseBoundary, chunk)
}

func splitCommas(chunk string, _ int) []string {
	return splitAfter(commaBoundary, chunk)
}

// splitWords は、空白区切りの単語を貪欲に詰め込み、行が溢れる位置で継続記号を付けて改行します。
// 単語を追加できるのは、追加後の長さが limit - len(ContinuationMarker) 未満に収まる場合のみです。
// 1単語だけで limit を超える場合はそのまま出力されます。
func splitWords(chunk string, limit int) []string {
	threshold := limit - markerLen

	var lines []string
	var line []string
	lineLen := 0 // 各単語の後ろに付く空白1文字分を含む

	for _, word := range strings.Fields(chunk) {
		wordLen := length(word)
		if len(line) > 0 && lineLen+wordLen >= threshold {
			lines = append(lines, strings.Join(line, " ")+ContinuationMarker)
			line = line[:0]
			lineLen = 0
		}
		line = append(line, word)
		lineLen += wordLen + 1
	}
	if len(line) > 0 {
		lines = append(lines, strings.Join(line, " "))
	}

	return lines
}

// splitAfter は、re に一致した箇所の直後でチャンクを分割します。
// 一致した区切り文字列は直前の断片に残り、空の断片は生成しません。
// regexp2 の一致位置はルーン単位のため、バイト位置へ変換してから元の文字列を切り出します。
// 不正な UTF-8 バイトもそのまま保持されます。
func splitAfter(re *regexp2.Regexp, chunk string) []string {
	offsets := byteOffsets(chunk)

	var pieces []string
	last := 0
	m, err := re.FindRunesMatch([]rune(chunk))
	for err == nil && m != nil {
		if end := offsets[m.Index+m.Length]; end > last {
			pieces = append(pieces, chunk[last:end])
			last = end
		}
		m, err = re.FindNextMatch(m)
	}
	if last < len(chunk) {
		pieces = append(pieces, chunk[last:])
	}

	return pieces
}

// byteOffsets は、ルーン位置 i に対応するバイト位置を offsets[i] に持つ表を返します。
// 末尾には len(s) が入ります。不正なバイトは []rune 変換と同じく1ルーンとして数えます。
func byteOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}

func abbreviationAlternation() string {
	escaped := make([]string, 0, len(Abbreviations))
	for _, abbr := range Abbreviations {
		escaped = append(escaped, regexp2.Escape(abbr))
	}
	return strings.Join(escaped, "|")
}

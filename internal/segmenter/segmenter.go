package segmenter

import "fmt"

// Segmenter は、1つの段落を LIMIT 以下のツイートの並びに分割します。
// 状態を持たないため、複数のゴルーチンから同時に利用できます。
type Segmenter struct {
	limit  int
	stages []Stage
}

// New は、指定された LIMIT で Segmenter を初期化します。
// LIMIT は継続記号の文字数より大きくなければなりません。
func New(limit int) (*Segmenter, error) {
	if limit <= markerLen {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	return &Segmenter{
		limit:  limit,
		stages: DefaultStages(),
	}, nil
}

// Limit は設定された最大文字数を返します。
func (s *Segmenter) Limit() int {
	return s.limit
}

// Fits は、文字列が LIMIT 以内に収まるかどうかを返します。
func (s *Segmenter) Fits(text string) bool {
	return length(text) <= s.limit
}

// Segment は段落をツイートの並びに分割します。
// LIMIT 以内の段落はそのまま1要素で返し、超える場合は各ステージを順に適用します。
// 各ステージは LIMIT を超えているチャンクだけを分割し、収まったチャンクは以降のステージを素通りします。
func (s *Segmenter) Segment(paragraph string) []string {
	if s.Fits(paragraph) {
		return []string{paragraph}
	}

	chunks := []string{paragraph}
	for _, stage := range s.stages {
		chunks = s.splitOversized(chunks, stage.Split)
	}

	return chunks
}

// splitOversized は、LIMIT を超えるチャンクだけを split で置き換え、順序を保って連結します。
func (s *Segmenter) splitOversized(chunks []string, split SplitFunc) []string {
	out := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		if s.Fits(chunk) {
			out = append(out, chunk)
			continue
		}
		out = append(out, split(chunk, s.limit)...)
	}
	return out
}

// OverLimit は、tweets のうち LIMIT を超えている要素のインデックスを返します。
func (s *Segmenter) OverLimit(tweets []string) []int {
	var indices []int
	for i, tweet := range tweets {
		if !s.Fits(tweet) {
			indices = append(indices, i)
		}
	}
	return indices
}

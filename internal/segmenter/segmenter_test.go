package segmenter

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefault(t *testing.T) *Segmenter {
	t.Helper()
	s, err := New(DefaultLimit)
	require.NoError(t, err)
	return s
}

// words は比較用に継続記号と句読点を落とした単語列を返す
func words(texts ...string) []string {
	var out []string
	for _, text := range texts {
		text = strings.ReplaceAll(text, ContinuationMarker, " ")
		out = append(out, strings.Fields(text)...)
	}
	return out
}

func TestNewRejectsTooSmallLimit(t *testing.T) {
	for _, limit := range []int{-1, 0, 1, 3} {
		_, err := New(limit)
		assert.ErrorIs(t, err, ErrInvalidLimit, "limit %d", limit)
	}

	s, err := New(4)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Limit())
}

func TestSegmentShortParagraphUnchanged(t *testing.T) {
	s := newDefault(t)

	tests := []string{
		"",
		"It was a dark and stormy night.",
		"Dr. Smith arrived. He was late; nobody minded, of course.",
		strings.Repeat("x", DefaultLimit),
		strings.Repeat("é", DefaultLimit),
	}
	for _, p := range tests {
		assert.Equal(t, []string{p}, s.Segment(p))
	}
}

func TestSegmentSentences(t *testing.T) {
	s := newDefault(t)
	p := "Dr. Smith arrived at the old house on the hill just after the church bells had rung for the evening service. " +
		"Mrs. Smith was already waiting for him at the gate."

	got := s.Segment(p)

	assert.Equal(t, []string{
		"Dr. Smith arrived at the old house on the hill just after the church bells had rung for the evening service. ",
		"Mrs. Smith was already waiting for him at the gate.",
	}, got)
	assert.Equal(t, p, strings.Join(got, ""))
}

func TestSegmentAbbreviationGuard(t *testing.T) {
	s := newDefault(t)
	p := "Dr. Smith arrived. " + strings.Repeat("The rain kept falling all night long. ", 4)

	got := s.Segment(p)

	require.NotEmpty(t, got)
	assert.Equal(t, "Dr. Smith arrived. ", got[0])
	for _, tweet := range got {
		assert.NotEqual(t, "Dr. ", tweet)
	}
}

func TestSplitSentencesAbbreviations(t *testing.T) {
	for _, abbr := range Abbreviations {
		chunk := "Ask " + abbr + ". Brown about it. Then leave."
		assert.Equal(t,
			[]string{"Ask " + abbr + ". Brown about it. ", "Then leave."},
			splitSentences(chunk, DefaultLimit), abbr)
	}

	// 単語の一部であれば敬称とはみなさない
	assert.Equal(t,
		[]string{"Visit the FirSt. ", "Then go."},
		splitSentences("Visit the FirSt. Then go.", DefaultLimit))
}

func TestSplitSentencesPunctuationAndQuotes(t *testing.T) {
	tests := []struct {
		name  string
		chunk string
		want  []string
	}{
		{
			name:  "no boundary",
			chunk: "no sentence boundary here",
			want:  []string{"no sentence boundary here"},
		},
		{
			name:  "question and exclamation",
			chunk: "Who goes there? Stop! Friend.",
			want:  []string{"Who goes there? ", "Stop! ", "Friend."},
		},
		{
			name:  "closing quote stays with the sentence",
			chunk: `"Stop!" cried the old man. They ran.`,
			want:  []string{`"Stop!" `, "cried the old man. ", "They ran."},
		},
		{
			name:  "closing bracket stays with the sentence",
			chunk: "He left (quietly.) Nobody noticed.",
			want:  []string{"He left (quietly.) ", "Nobody noticed."},
		},
		{
			name:  "ellipsis is a single boundary",
			chunk: "Well... perhaps not.",
			want:  []string{"Well... ", "perhaps not."},
		},
		{
			name:  "decimal point is not a boundary",
			chunk: "It cost 3.50 shillings. Too much.",
			want:  []string{"It cost 3.50 shillings. ", "Too much."},
		},
		{
			name:  "trailing whitespace is kept",
			chunk: "One.  Two.   ",
			want:  []string{"One.  ", "Two.   "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitSentences(tt.chunk, DefaultLimit))
		})
	}
}

func TestSegmentClauses(t *testing.T) {
	s := newDefault(t)
	p := "The wind rose; the shutters banged against the stone walls of the cottage: " +
		"no one inside the house could sleep through the noise, and the dogs howled until dawn."

	assert.Equal(t, []string{
		"The wind rose; ",
		"the shutters banged against the stone walls of the cottage: ",
		"no one inside the house could sleep through the noise, and the dogs howled until dawn.",
	}, s.Segment(p))
}

func TestSplitClausesAndCommas(t *testing.T) {
	assert.Equal(t,
		[]string{"first; ", "second: ", "third;", "fourth"},
		splitClauses("first; second: third;fourth", DefaultLimit))
	assert.Equal(t,
		[]string{`"Yes," `, "he said, ", "smiling"},
		splitCommas(`"Yes," he said, smiling`, DefaultLimit))
	assert.Equal(t,
		[]string{"no delimiter"},
		splitCommas("no delimiter", DefaultLimit))
}

func TestSegmentCommaNearMidpoint(t *testing.T) {
	s := newDefault(t)
	p := strings.Repeat("a", 120) + ", " + strings.Repeat("b", 128)
	require.Equal(t, 250, utf8.RuneCountInString(p))

	assert.Equal(t, []string{
		strings.Repeat("a", 120) + ", ",
		strings.Repeat("b", 128),
	}, s.Segment(p))
}

func TestSegmentOversizedToken(t *testing.T) {
	s := newDefault(t)
	token := strings.Repeat("x", 200)

	got := s.Segment(token)

	assert.Equal(t, []string{token}, got)
	assert.Equal(t, []int{0}, s.OverLimit(got))
}

func TestSegmentOversizedTokenInsideSentence(t *testing.T) {
	s := newDefault(t)
	token := strings.Repeat("x", 200)

	got := s.Segment("Smith was here " + token + " and then left")

	assert.Equal(t, []string{"Smith was here...", token + "...", "and then left"}, got)
	assert.Equal(t, []int{1}, s.OverLimit(got))
}

func TestSegmentWordStage(t *testing.T) {
	s := newDefault(t)
	p := "the quick brown fox jumps over the lazy dog and keeps running through the fields and the forests " +
		"without ever stopping to rest or eat or drink until night"

	got := s.Segment(p)

	assert.Equal(t, []string{
		"the quick brown fox jumps over the lazy dog and keeps running through the fields and the forests " +
			"without ever stopping to rest or eat or...",
		"drink until night",
	}, got)
	assert.Equal(t, words(p), words(got...))
}

func TestSplitWords(t *testing.T) {
	assert.Equal(t,
		[]string{"aaa bbb...", "ccc ddd...", "eee"},
		splitWords("aaa bbb ccc ddd eee", 12))

	// 追加後の長さがちょうど limit-3 になる単語は次の行へ送られる
	assert.Equal(t, []string{"abc...", "def"}, splitWords("abc def", 10))
	assert.Equal(t, []string{"abc de"}, splitWords("abc de", 10))

	// 連続する空白は単語として扱わない
	assert.Equal(t, []string{"a b"}, splitWords("  a \t  b  ", 10))
}

func TestSegmentMultibyte(t *testing.T) {
	s := newDefault(t)
	p := strings.TrimSpace(strings.Repeat("«Café» naïve résumé ", 9))

	got := s.Segment(p)

	require.Len(t, got, 2)
	assert.True(t, strings.HasSuffix(got[0], ContinuationMarker))
	assert.Empty(t, s.OverLimit(got))
	assert.Equal(t, words(p), words(got...))
}

func TestSegmentKeepsInvalidUTF8Bytes(t *testing.T) {
	s := newDefault(t)
	sentence := "caf\xe9 au lait. "
	p := strings.Repeat(sentence, 12)
	require.Greater(t, utf8.RuneCountInString(p), DefaultLimit)

	got := s.Segment(p)

	require.Len(t, got, 12)
	for _, tweet := range got {
		assert.Equal(t, sentence, tweet)
	}
	assert.Equal(t, p, strings.Join(got, ""))
	assert.NotContains(t, strings.Join(got, ""), "\uFFFD")

	short := "caf\xe9."
	assert.Equal(t, []string{short}, s.Segment(short))
}

func TestSplitAfterSlicesOriginalBytes(t *testing.T) {
	chunk := "na\xefve, r\xe9sum\xe9, «Café», end"

	got := splitCommas(chunk, DefaultLimit)

	assert.Equal(t, []string{"na\xefve, ", "r\xe9sum\xe9, ", "«Café», ", "end"}, got)
	assert.Equal(t, chunk, strings.Join(got, ""))
}

func TestSegmentProperties(t *testing.T) {
	s := newDefault(t)
	paragraphs := []string{
		strings.Repeat("It was the best of times, it was the worst of times; it was the age of wisdom. ", 6),
		strings.Repeat("Mr. Lorry looked at Miss Manette, who sat silent, and said nothing at all ", 5),
		`"I am not going," said she, "to be talked out of it: not by you, not by anybody!" And off she went, ` +
			`slamming the door so hard that the pictures on the landing rattled in their frames for a full minute.`,
	}

	for _, p := range paragraphs {
		got := s.Segment(p)

		assert.Empty(t, s.OverLimit(got), "every tweet fits")
		assert.Equal(t, words(p), words(got...), "word order is preserved")
		for _, tweet := range got {
			assert.NotEmpty(t, tweet)
			// 分割済みのツイートを再投入しても変化しない
			assert.Equal(t, []string{tweet}, s.Segment(tweet))
		}
	}
}

func TestSegmentSmallLimit(t *testing.T) {
	s, err := New(20)
	require.NoError(t, err)

	got := s.Segment("One two three. Four five six seven eight nine ten eleven.")

	assert.Equal(t, []string{
		"One two three. ",
		"Four five six...",
		"seven eight nine...",
		"ten eleven.",
	}, got)
}

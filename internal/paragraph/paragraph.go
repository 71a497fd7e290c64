package paragraph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// lineSeparator は、段落内で折り返された行を結合する際に挟む区切り文字です。
const lineSeparator = " "

// Assemble は、入力行の並びを論理的な段落の並びにまとめます。
// 空行が段落の区切りとなり、段落内の折り返し行は半角スペース1つで結合されます。
// 入力が空であれば空のスライスを返します。
func Assemble(lines []string) []string {
	paragraphs := []string{}
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			paragraphs = append(paragraphs, current.String())
			current.Reset()
		}
	}

	for _, line := range lines {
		line = strings.TrimRight(line, "\r\n")
		if isBlank(line) {
			flush()
			continue
		}
		if current.Len() > 0 {
			current.WriteString(lineSeparator)
		}
		current.WriteString(line)
	}
	flush()

	return paragraphs
}

// Read は、リーダーから全行を読み込み、段落の並びに変換します。
// 1行の長さに上限はありません。
func Read(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)

	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("入力の読み取り中にエラーが発生しました: %w", err)
		}
	}

	return Assemble(lines), nil
}

// 空白のみの行も空行として扱う
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

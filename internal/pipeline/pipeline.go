package pipeline

import (
	"context"
	"fmt"
	"log/slog"
)

const (
	PhaseSource  = "ストーリー読み込みフェーズ"
	PhaseSegment = "ツイート分割フェーズ"
	PhaseOutput  = "出力フェーズ"
)

// Execute は、読み込み → 分割 → 出力 の順にステージを実行します。
// いずれかのステージが失敗した時点で中断し、以降の出力は行いません。
func (p *Pipeline) Execute(ctx context.Context) error {
	// 1. ストーリー読み込みステージ
	paragraphs, err := p.Source.Load(ctx, p.Options)
	if err != nil {
		return fmt.Errorf("%sでエラーが発生しました: %w", PhaseSource, err)
	}
	slog.Info("ストーリーを段落に分解しました", slog.Int("paragraphs", len(paragraphs)))

	// 2. ツイート分割ステージ
	tweets, err := p.Generator.Generate(ctx, p.Options, paragraphs)
	if err != nil {
		return fmt.Errorf("%sでエラーが発生しました: %w", PhaseSegment, err)
	}

	// 3. 出力ステージ
	if err := p.Output.Write(ctx, p.Options, tweets); err != nil {
		return fmt.Errorf("%sでエラーが発生しました: %w", PhaseOutput, err)
	}

	slog.Info("処理が正常に完了しました。", slog.Int("tweets", len(tweets)))
	return nil
}

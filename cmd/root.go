package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/shouni/go-cli-base"
)

// appName は CLI アプリケーション名です。
const appName = "gutenberg-tweet-go"

// Execute は、CLIアプリケーションのルートエントリポイントです。
// 全てのサブコマンドをルートコマンドにアタッチし、実行を開始します。
func Execute() {
	clibase.Execute(appName, nil, createPreRunE(nil), runCmd)
}

// createPreRunE は、clibase共通のPersistentPreRunEロジックとアプリケーション固有のロジックを結合した関数を作成します。
func createPreRunE(preRunE func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if clibase.Flags.Verbose {
			// Verboseモードではファイル名と行番号を含む詳細なログを出力
			log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
			log.Println("INFO: Verbose mode enabled.")
		} else {
			log.SetFlags(log.Ldate | log.Ltime)
		}

		if preRunE != nil {
			return preRunE(cmd, args)
		}
		return nil
	}
}

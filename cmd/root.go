package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shouni/go-chara-kit/internal/config"
	"github.com/shouni/go-chara-kit/pkg/store"
)

// opts はコマンドラインから渡される実行時パラメータなのだ。
var opts struct {
	LibraryDir string // --library
	Labeled    bool   // --labeled (scene compose)
	Kind       string // --kind (preset)
}

var rootCmd = &cobra.Command{
	Use:   "chara-kit",
	Short: "AI画像生成用のキャラクター／シーンプロンプトを管理・合成するのだ。",
	Long: `キャラクターとシーンのライブラリ（JSONファイル群）を読み込み、
階層化されたデフォルト値とプリセットから完成プロンプトを組み立てるツールなのだ。`,
	SilenceUsage: true,
}

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags() {
	rootCmd.PersistentFlags().StringVarP(&opts.LibraryDir, "library", "l", "", "ライブラリディレクトリのパスなのだ（未指定なら環境変数 CHARA_LIBRARY_DIR）。")
}

func init() {
	addAppFlags()
	rootCmd.AddCommand(composeCmd, sceneCmd, presetCmd, galleryCmd)
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStore は設定とフラグからファイルストアを構築するのだ。
func openStore() *store.FileStore {
	cfg := config.LoadConfig()
	dir := cfg.LibraryDir
	if opts.LibraryDir != "" {
		dir = opts.LibraryDir
	}
	return store.New(dir, cfg.SaveLimit())
}

// loadLibrary はストアを開いてライブラリ全体を読み込むのだ。
func loadLibrary(ctx context.Context) (*store.FileStore, *store.Library, error) {
	fs := openStore()
	lib, err := fs.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("ライブラリの読み込みに失敗したのだ: %w", err)
	}
	return fs, lib, nil
}

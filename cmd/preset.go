package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shouni/go-chara-kit/pkg/domain"
	"github.com/shouni/go-chara-kit/pkg/registry"
)

// presetCmd は、名前付き再利用テキスト（プリセット）を扱う親コマンドなのだ。
var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "セクションごとの再利用プリセットを管理しますなのだ。",
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "指定セクションのプリセットを名前順で一覧しますなのだ。",
	Args:  cobra.NoArgs,
	RunE:  presetListCommand,
}

var presetSaveCmd = &cobra.Command{
	Use:   "save <name> <text>",
	Short: "プリセットを保存しますなのだ（同名なら本文を上書き）。",
	Args:  cobra.ExactArgs(2),
	RunE:  presetSaveCommand,
}

var presetDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "プリセットをIDで削除しますなのだ。",
	Args:  cobra.ExactArgs(1),
	RunE:  presetDeleteCommand,
}

func init() {
	presetCmd.PersistentFlags().StringVarP(&opts.Kind, "kind", "k", string(domain.SectionPhysicalDescription), "対象セクション種別なのだ。")
	presetCmd.AddCommand(presetListCmd, presetSaveCmd, presetDeleteCmd)
}

// presetKind はフラグからセクション種別を検証付きで取り出すのだ。
func presetKind() (domain.SectionKind, error) {
	kind := domain.SectionKind(opts.Kind)
	if !kind.IsValid() {
		return "", fmt.Errorf("未知のセクション種別なのだ: %q", opts.Kind)
	}
	return kind, nil
}

func presetListCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	kind, err := presetKind()
	if err != nil {
		return err
	}

	_, lib, err := loadLibrary(ctx)
	if err != nil {
		return err
	}

	reg := registry.Load(lib.Presets)
	presets := reg.ByKind(kind)
	if len(presets) == 0 {
		fmt.Printf("セクション %s のプリセットはまだ無いのだ。\n", kind.Label())
		return nil
	}

	for _, p := range presets {
		fmt.Printf("%s\t%s\t%s\n", p.ID, p.Name, p.Text)
	}
	return nil
}

func presetSaveCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	kind, err := presetKind()
	if err != nil {
		return err
	}

	fs, lib, err := loadLibrary(ctx)
	if err != nil {
		return err
	}

	reg := registry.Load(lib.Presets)
	p, err := reg.Upsert(kind, args[0], args[1])
	if err != nil {
		return fmt.Errorf("プリセットの保存に失敗したのだ: %w", err)
	}

	lib.Presets = reg.Snapshot()
	if err := fs.Save(ctx, lib); err != nil {
		return err
	}

	fmt.Printf("プリセットを保存したのだ: %s (%s)\n", p.Name, p.ID)
	return nil
}

func presetDeleteCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	fs, lib, err := loadLibrary(ctx)
	if err != nil {
		return err
	}

	reg := registry.Load(lib.Presets)
	reg.Delete(args[0])

	lib.Presets = reg.Snapshot()
	if err := fs.Save(ctx, lib); err != nil {
		return err
	}

	fmt.Printf("プリセットを削除したのだ: %s\n", args[0])
	return nil
}

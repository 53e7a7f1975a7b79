package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shouni/go-chara-kit/pkg/compose"
	"github.com/shouni/go-chara-kit/pkg/domain"
	"github.com/shouni/go-chara-kit/pkg/store"
)

// sceneCmd は、シーン（複数キャラクター）関連の操作をまとめた親コマンドなのだ。
var sceneCmd = &cobra.Command{
	Use:   "scene",
	Short: "複数キャラクターのシーンプロンプトを扱いますなのだ。",
}

var sceneComposeCmd = &cobra.Command{
	Use:   "compose <scene> [prompt]",
	Short: "シーンの完成プロンプトを合成しますなのだ。",
	Long: `シーンのメンバー順に各キャラクターの句を組み立て、シーン全体の設定と
結合するのだ。既定はカンマ結合のフラット形式（生成機への送出用）で、
--labeled を付けるとプレビュー向けのブロック形式になるのだよ。`,
	Args: cobra.RangeArgs(1, 2),
	RunE: sceneComposeCommand,
}

var sceneAddPromptCmd = &cobra.Command{
	Use:   "add-prompt <scene> <title>",
	Short: "デフォルト初期値を適用した新しいシーンプロンプトを追加しますなのだ。",
	Long: `シーンデフォルト → グローバルデフォルトの優先順で各セクションの初期値を
一度だけ解決し、新しいシーンプロンプトとして保存するのだ。`,
	Args: cobra.ExactArgs(2),
	RunE: sceneAddPromptCommand,
}

func init() {
	sceneComposeCmd.Flags().BoolVar(&opts.Labeled, "labeled", false, "ブロック形式（プレビュー用）で出力するのだ。")
	sceneCmd.AddCommand(sceneComposeCmd, sceneAddPromptCmd)
}

// resolveScenePrompt はシーンと対象プロンプトを特定する共通処理なのだ。
func resolveScenePrompt(lib *store.Library, args []string) (*domain.Scene, domain.ScenePrompt, error) {
	scene := lib.ResolveScene(args[0])
	if scene == nil {
		return nil, domain.ScenePrompt{}, fmt.Errorf("シーンが見つからないのだ: %q", args[0])
	}

	switch {
	case len(args) == 2:
		sp := scene.ResolveScenePrompt(args[1])
		if sp == nil {
			return nil, domain.ScenePrompt{}, fmt.Errorf("シーンプロンプトが見つからないのだ: %q", args[1])
		}
		return scene, *sp, nil
	case len(scene.ScenePrompts) > 0:
		return scene, scene.ScenePrompts[0], nil
	default:
		return scene, domain.ScenePrompt{}, nil
	}
}

func sceneComposeCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	_, lib, err := loadLibrary(ctx)
	if err != nil {
		return err
	}

	scene, sp, err := resolveScenePrompt(lib, args)
	if err != nil {
		return err
	}

	// メンバー一覧は削除済みキャラクターを指していることがあるため、
	// 解決できないIDはスキップされる
	members := scene.MemberCharacters(lib.CharacterIndex())

	slog.Info("シーンプロンプトを合成するのだ",
		"scene", scene.Name,
		"prompt", sp.Title,
		"members", len(members),
		"labeled", opts.Labeled,
	)

	if opts.Labeled {
		fmt.Println(compose.SceneLabeled(sp, members))
		return nil
	}
	fmt.Println(compose.SceneFlat(sp, members))
	return nil
}

func sceneAddPromptCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	fs, lib, err := loadLibrary(ctx)
	if err != nil {
		return err
	}

	scene := lib.ResolveScene(args[0])
	if scene == nil {
		return fmt.Errorf("シーンが見つからないのだ: %q", args[0])
	}

	sp := compose.NewScenePrompt(args[1], *scene, lib.GlobalDefaults)

	for i := range lib.Scenes {
		if lib.Scenes[i].ID == scene.ID {
			lib.Scenes[i].ScenePrompts = append(lib.Scenes[i].ScenePrompts, sp)
		}
	}

	if err := fs.Save(ctx, lib); err != nil {
		return fmt.Errorf("シーンプロンプトの保存に失敗したのだ: %w", err)
	}

	fmt.Printf("シーンプロンプトを追加したのだ: %s (%s)\n", sp.Title, sp.ID)
	return nil
}

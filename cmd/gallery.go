package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shouni/go-chara-kit/pkg/gallery"
)

// galleryCmd は、キャラクターまたはシーンのギャラリー表示順を出力するのだ。
var galleryCmd = &cobra.Command{
	Use:   "gallery <character|scene>",
	Short: "ギャラリーの表示順（重複排除済み）を一覧しますなのだ。",
	Long: `プロフィール画像 → プロンプト付随画像 → 単独画像 の3段階の固定順で
画像列を出力するのだ。サムネイル一覧もフルスクリーン閲覧もこの同じ列を
共有するので、ここで見える順序がそのまま画面の順序なのだよ。`,
	Args: cobra.ExactArgs(1),
	RunE: galleryCommand,
}

func galleryCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	_, lib, err := loadLibrary(ctx)
	if err != nil {
		return err
	}

	var owner gallery.Owner
	if char := lib.ResolveCharacter(args[0]); char != nil {
		owner = *char
	} else if scene := lib.ResolveScene(args[0]); scene != nil {
		owner = *scene
	} else {
		return fmt.Errorf("キャラクターもシーンも見つからないのだ: %q", args[0])
	}

	images := gallery.OrderedImages(owner)
	if len(images) == 0 {
		fmt.Println("画像はまだ無いのだ。")
		return nil
	}

	for i, img := range images {
		fmt.Printf("%3d\t%s\t%d bytes\n", i+1, img.ID, len(img.Data))
	}
	return nil
}

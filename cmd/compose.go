package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shouni/go-chara-kit/pkg/compose"
	"github.com/shouni/go-chara-kit/pkg/domain"
)

// composeCmd は、1キャラクター分の完成プロンプトを組み立てて出力するのだ。
var composeCmd = &cobra.Command{
	Use:   "compose <character> [prompt]",
	Short: "キャラクターの完成プロンプトを合成しますなのだ。",
	Long: `キャラクター本体のプロンプト、キャラクターデフォルト、グローバルデフォルトを
優先順に解決して、1つの完成プロンプト文字列を組み立てるのだ。
prompt を省略した場合は、そのキャラクターの最初のプロンプトを使うのだよ。`,
	Args: cobra.RangeArgs(1, 2),
	RunE: composeCommand,
}

func composeCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	_, lib, err := loadLibrary(ctx)
	if err != nil {
		return err
	}

	char := lib.ResolveCharacter(args[0])
	if char == nil {
		return fmt.Errorf("キャラクターが見つからないのだ: %q", args[0])
	}

	var prompt domain.Prompt
	switch {
	case len(args) == 2:
		p := char.ResolvePrompt(args[1])
		if p == nil {
			return fmt.Errorf("プロンプトが見つからないのだ: %q", args[1])
		}
		prompt = *p
	case len(char.Prompts) > 0:
		prompt = char.Prompts[0]
	default:
		// プロンプトが1つも無くてもデフォルトだけで合成できる
		prompt = domain.Prompt{}
	}

	slog.Info("プロンプトを合成するのだ",
		"character", char.Name,
		"prompt", prompt.Title,
	)

	fmt.Println(compose.Single(*char, prompt, lib.GlobalDefaults))
	return nil
}

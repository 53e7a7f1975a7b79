package compose

import (
	"strings"
	"testing"

	"github.com/shouni/go-chara-kit/pkg/domain"
)

func TestSingleBasicExample(t *testing.T) {
	char := domain.Character{ID: "c1", Name: "Rin"}
	prompt := domain.Prompt{PhysicalDescription: "tall"}

	got := Single(char, prompt, nil)
	want := "Name:\nRin\n\nPhysical Description:\ntall"
	if got != want {
		t.Errorf("期待値 %q, 実際の値 %q", want, got)
	}
}

func TestSingleEmpty(t *testing.T) {
	t.Run("全セクション不在なら空文字列", func(t *testing.T) {
		if got := Single(domain.Character{}, domain.Prompt{}, nil); got != "" {
			t.Errorf("期待値は空文字列, 実際の値 %q", got)
		}
	})

	t.Run("名前が空白のみでも省略されること", func(t *testing.T) {
		char := domain.Character{Name: "   "}
		if got := Single(char, domain.Prompt{}, nil); got != "" {
			t.Errorf("期待値は空文字列, 実際の値 %q", got)
		}
	})
}

func TestSingleDefaultResolution(t *testing.T) {
	global := domain.Defaults{}
	global.Set(domain.KeyLighting, "soft light")
	global.Set(domain.KeyEnvironment, "studio")

	char := domain.Character{
		Name:     "Rin",
		Defaults: domain.Defaults{},
	}
	char.Defaults.Set(domain.KeyEnvironment, "forest")

	prompt := domain.Prompt{Environment: ""}

	got := Single(char, prompt, global)

	if !strings.Contains(got, "Environment:\nforest") {
		t.Errorf("キャラクターデフォルトが適用されていません: %q", got)
	}
	if !strings.Contains(got, "Lighting:\nsoft light") {
		t.Errorf("グローバルデフォルトが適用されていません: %q", got)
	}

	t.Run("プロンプト本文はデフォルトより優先されること", func(t *testing.T) {
		prompt.Environment = "ruins"
		got := Single(char, prompt, global)
		if !strings.Contains(got, "Environment:\nruins") || strings.Contains(got, "forest") {
			t.Errorf("プロンプト本文が優先されていません: %q", got)
		}
	})
}

func TestSingleSectionOrder(t *testing.T) {
	char := domain.Character{Name: "Rin"}
	prompt := domain.Prompt{
		PhysicalDescription: "tall",
		Outfit:              "armor",
		Pose:                "standing",
		Environment:         "ruins",
		Lighting:            "dusk",
		StyleModifiers:      "watercolor",
		TechnicalModifiers:  "8k",
		NegativePrompt:      "blurry",
		AdditionalInfo:      "from chapter 3",
	}

	got := Single(char, prompt, nil)

	// 出現位置の比較で固定順を検証する
	markers := []string{
		"Name:",
		"Physical Description:",
		"Outfit:",
		"Pose:",
		"Environment:",
		"Lighting:",
		"Style Modifiers:",
		"Technical Modifiers:",
		"Negative prompt:",
		"Additional Information:",
	}
	prev := -1
	for _, m := range markers {
		idx := strings.Index(got, m)
		if idx < 0 {
			t.Fatalf("セクション %q が出力に含まれていません: %q", m, got)
		}
		if idx <= prev {
			t.Errorf("セクション %q の位置(%d)が直前のセクション(%d)より前です", m, idx, prev)
		}
		prev = idx
	}

	t.Run("セクション間は空行1つで区切られること", func(t *testing.T) {
		if strings.Contains(got, "\n\n\n") {
			t.Errorf("連続した空行が含まれています: %q", got)
		}
	})
}

func TestSingleNegativePrefix(t *testing.T) {
	char := domain.Character{Name: "Rin"}

	t.Run("通常はプレフィックスが付与されること", func(t *testing.T) {
		prompt := domain.Prompt{NegativePrompt: "blurry"}
		got := Single(char, prompt, nil)
		if !strings.Contains(got, "Negative prompt: blurry") {
			t.Errorf("プレフィックスが付与されていません: %q", got)
		}
	})

	t.Run("保存済み本文が既にプレフィックスを持つ場合は二重化しないこと", func(t *testing.T) {
		prompt := domain.Prompt{NegativePrompt: "Negative prompt: blurry"}
		got := Single(char, prompt, nil)
		if strings.Contains(got, "Negative prompt: Negative prompt:") {
			t.Errorf("プレフィックスが二重化しています: %q", got)
		}
		if !strings.Contains(got, "Negative prompt: blurry") {
			t.Errorf("ネガティブプロンプトが欠落しています: %q", got)
		}
	})
}

func TestSingleAdditionalInfoPromptOnly(t *testing.T) {
	// 追加情報はプロンプト階層にのみ存在し、デフォルト解決の対象外
	char := domain.Character{Name: "Rin"}
	prompt := domain.Prompt{AdditionalInfo: "  holds a lantern  "}

	got := Single(char, prompt, nil)
	want := "Name:\nRin\n\nAdditional Information:\nholds a lantern"
	if got != want {
		t.Errorf("期待値 %q, 実際の値 %q", want, got)
	}
}

func TestSingleIdempotent(t *testing.T) {
	global := domain.Defaults{}
	global.Set(domain.KeyStyle, "cel-shaded")

	char := domain.Character{Name: "Rin"}
	prompt := domain.Prompt{PhysicalDescription: "tall", NegativePrompt: "blurry"}

	first := Single(char, prompt, global)
	second := Single(char, prompt, global)
	if first != second {
		t.Errorf("同一入力で出力が変わりました:\n1回目 %q\n2回目 %q", first, second)
	}
}

package compose

import (
	"strings"

	"github.com/shouni/go-chara-kit/pkg/domain"
)

// negativeSeparator はフラット形式でネガティブプロンプトを区切るリテラルです。
// 前段が空でも先頭に付与される仕様で、これは生成サービス側の書式に合わせた
// 既存の契約なので変更してはいけません。
const negativeSeparator = " ### "

// SceneFlat はクリップボード送出・生成機連携向けの1行（カンマ結合）形式で
// シーンプロンプトを組み立てます。
//
// キャラクター句とシーン全体のパートは保存値の素読みであり、この関数の中では
// シーン／グローバルデフォルトへのフォールバックは行いません（新規作成時に
// SeedSceneDefaults で解決済みの値が保存されている前提です）。
func SceneFlat(sp domain.ScenePrompt, characters []domain.Character) string {
	parts := make([]string, 0, len(characters)+5)

	// 1. キャラクター句をシーンの並び順のまま組み立てる
	for _, char := range characters {
		parts = append(parts, characterClause(sp, char))
	}

	// 2. シーン全体のパートを固定順で追加する
	for _, v := range []string{
		sp.Environment,
		sp.Lighting,
		sp.StyleModifiers,
		sp.TechnicalModifiers,
		sp.AdditionalInfo,
	} {
		if cleaned, ok := domain.Clean(v); ok {
			parts = append(parts, cleaned)
		}
	}

	result := strings.Join(parts, ", ")

	// 3. ネガティブプロンプトは本文が空でも必ず末尾に付く
	if neg, ok := domain.Clean(sp.NegativePrompt); ok {
		result += negativeSeparator + neg
	}

	return result
}

// characterClause は1キャラクター分のカンマ結合句を組み立てます。
// 明示設定が1つもないキャラクターは名前だけの句になります。
func characterClause(sp domain.ScenePrompt, char domain.Character) string {
	fields := []string{char.Name}

	settings, ok := sp.Settings(char.ID)
	if !ok {
		return char.Name
	}

	if v, ok := domain.Clean(settings.PhysicalDescription); ok {
		fields = append(fields, v)
	}
	if v, ok := domain.Clean(settings.Outfit); ok {
		fields = append(fields, "wearing "+v)
	}
	if v, ok := domain.Clean(settings.Pose); ok {
		fields = append(fields, v)
	}
	if v, ok := domain.Clean(settings.AdditionalInfo); ok {
		fields = append(fields, v)
	}

	return strings.Join(fields, ", ")
}

// noContentFallback はブロックが1つも生成されなかった場合の表示文字列です。
const noContentFallback = "No prompt content yet"

// SceneLabeled は人間が確認するプレビュー向けのブロック形式でシーンプロンプトを
// 組み立てます。ブロック間は空行で区切られます。
func SceneLabeled(sp domain.ScenePrompt, characters []domain.Character) string {
	blocks := make([]string, 0, len(characters)+2)

	// 1. キャラクターブロック。設定のないキャラクターも省略せず明示する
	for _, char := range characters {
		blocks = append(blocks, characterBlock(sp, char))
	}

	// 2. シーン設定ブロック。1行も無ければブロックごと省略する
	if sceneBlock := sceneSettingsBlock(sp); sceneBlock != "" {
		blocks = append(blocks, sceneBlock)
	}

	// 3. ネガティブブロック
	if neg, ok := domain.Clean(sp.NegativePrompt); ok {
		blocks = append(blocks, "[Negative]\n"+neg)
	}

	if len(blocks) == 0 {
		return noContentFallback
	}
	return strings.Join(blocks, "\n\n")
}

// characterBlock は「[名前]」見出し付きの1キャラクター分ブロックを組み立てます。
func characterBlock(sp domain.ScenePrompt, char domain.Character) string {
	var sb strings.Builder
	sb.WriteString("[" + char.Name + "]")

	settings, found := sp.Settings(char.ID)
	if !found || settings.IsEmpty() {
		sb.WriteString("\n(No settings)")
		return sb.String()
	}

	for _, line := range []struct {
		label string
		value string
	}{
		{"Description", settings.PhysicalDescription},
		{"Outfit", settings.Outfit},
		{"Pose", settings.Pose},
		{"Additional", settings.AdditionalInfo},
	} {
		if v, ok := domain.Clean(line.value); ok {
			sb.WriteString("\n" + line.label + ": " + v)
		}
	}
	return sb.String()
}

// sceneSettingsBlock はシーン全体の設定ブロックを組み立てます。
// 存在する行が1つも無い場合は空文字列を返します。
func sceneSettingsBlock(sp domain.ScenePrompt) string {
	lines := make([]string, 0, 5)
	for _, line := range []struct {
		label string
		value string
	}{
		{"Environment", sp.Environment},
		{"Lighting", sp.Lighting},
		{"Style", sp.StyleModifiers},
		{"Technical", sp.TechnicalModifiers},
		{"Additional", sp.AdditionalInfo},
	} {
		if v, ok := domain.Clean(line.value); ok {
			lines = append(lines, line.label+": "+v)
		}
	}

	if len(lines) == 0 {
		return ""
	}
	return "[Scene Settings]\n" + strings.Join(lines, "\n")
}

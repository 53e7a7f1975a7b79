package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// SceneCharacterSettings は、あるシーンプロンプトにおける1キャラクター分の
// 明示的な設定です。エントリが存在しないキャラクターは「名前のみで登場」として
// 扱われます。各フィールドはこの階層ではデフォルト解決されません。
type SceneCharacterSettings struct {
	PhysicalDescription string `json:"physical_description,omitempty"`
	Outfit              string `json:"outfit,omitempty"`
	Pose                string `json:"pose,omitempty"`
	AdditionalInfo      string `json:"additional_info,omitempty"`

	// AppliedPresets は表示用の注釈です（Prompt と同じ扱い）。
	AppliedPresets map[SectionKind]string `json:"applied_presets,omitempty"`

	// SourcePromptID は設定の読み込み元となったキャラクタープロンプトを記録する
	// 来歴情報であり、合成には使用しません。
	SourcePromptID string `json:"source_prompt_id,omitempty"`
}

// IsEmpty は表示対象となるフィールドが1つも存在しないかどうかを返します。
func (s SceneCharacterSettings) IsEmpty() bool {
	return !Present(s.PhysicalDescription) &&
		!Present(s.Outfit) &&
		!Present(s.Pose) &&
		!Present(s.AdditionalInfo)
}

// SceneCharacterSettingsFromPrompt は既存のキャラクタープロンプトから
// シーン用設定を組み立てます。読み込み元のIDを来歴として記録します。
func SceneCharacterSettingsFromPrompt(p Prompt) SceneCharacterSettings {
	return SceneCharacterSettings{
		PhysicalDescription: p.PhysicalDescription,
		Outfit:              p.Outfit,
		Pose:                p.Pose,
		AdditionalInfo:      p.AdditionalInfo,
		SourcePromptID:      p.ID,
	}
}

// ScenePrompt は複数キャラクターをまたぐ1つのプロンプト草稿です。
// physical-description / outfit / pose はキャラクター側の設定なので、
// シーン全体のフィールドには含まれません。
type ScenePrompt struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Environment        string `json:"environment,omitempty"`
	Lighting           string `json:"lighting,omitempty"`
	StyleModifiers     string `json:"style_modifiers,omitempty"`
	TechnicalModifiers string `json:"technical_modifiers,omitempty"`
	NegativePrompt     string `json:"negative_prompt,omitempty"`
	AdditionalInfo     string `json:"additional_info,omitempty"`

	AppliedPresets map[SectionKind]string `json:"applied_presets,omitempty"`

	Images []Image `json:"images,omitempty"`

	// CharacterSettings はキャラクターIDから明示設定へのマップです。
	// 明示設定を持つキャラクターのみが現れます。
	CharacterSettings map[string]SceneCharacterSettings `json:"character_settings,omitempty"`
}

// Settings は指定キャラクターの明示設定と存在有無を返します。
func (sp ScenePrompt) Settings(characterID string) (SceneCharacterSettings, bool) {
	s, ok := sp.CharacterSettings[characterID]
	return s, ok
}

// Scene は複数キャラクターからなる1つの場面定義を保持します。
// CharacterIDs の並び順は意味を持ち、他所の正規順序とは独立に保存されます。
type Scene struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Description      string        `json:"description,omitempty"`
	Notes            string        `json:"notes,omitempty"`
	CharacterIDs     []string      `json:"character_ids,omitempty"`
	ScenePrompts     []ScenePrompt `json:"scene_prompts,omitempty"`
	ProfileImage     []byte        `json:"profile_image,omitempty"`
	StandaloneImages []Image       `json:"standalone_images,omitempty"`
	Defaults         Defaults      `json:"defaults,omitempty"`

	GeneratorID string `json:"generator_id,omitempty"`
	ThemeID     string `json:"theme_id,omitempty"`
}

// NewScene は名前からシーンを生成します。
func NewScene(name string) Scene {
	return Scene{
		ID:       uuid.NewString(),
		Name:     name,
		Defaults: make(Defaults),
	}
}

// String はシーンの情報を文字列で返すのだ。
func (s Scene) String() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.ID)
}

// FindScenePrompt はIDからシーンプロンプトを特定します。
func (s Scene) FindScenePrompt(id string) *ScenePrompt {
	for i := range s.ScenePrompts {
		if s.ScenePrompts[i].ID == id {
			return &s.ScenePrompts[i]
		}
	}
	return nil
}

// ResolveScenePrompt はIDまたはタイトル（大文字小文字を無視）でシーンプロンプトを
// 特定します。
func (s Scene) ResolveScenePrompt(key string) *ScenePrompt {
	if sp := s.FindScenePrompt(key); sp != nil {
		return sp
	}
	for i := range s.ScenePrompts {
		if strings.EqualFold(s.ScenePrompts[i].Title, key) {
			return &s.ScenePrompts[i]
		}
	}
	return nil
}

// MemberCharacters はメンバーIDの並び順を保ったままキャラクター実体を解決します。
// 削除済みなどで解決できないIDは、エラーにせず黙ってスキップします。
// メンバー一覧は他所で削除されたキャラクターを参照し続けることがあるためです。
func (s Scene) MemberCharacters(index CharactersMap) []Character {
	members := make([]Character, 0, len(s.CharacterIDs))
	for _, id := range s.CharacterIDs {
		if char := index.FindCharacter(id); char != nil {
			members = append(members, *char)
		}
	}
	return members
}

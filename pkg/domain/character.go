package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Image は画像の識別子と生のバイナリペイロードを保持します。
// 重複判定はIDではなくペイロードのバイト一致で行います（ギャラリー側の契約）。
type Image struct {
	ID   string `json:"id"`
	Data []byte `json:"data"`
}

// NewImage はペイロードから新しい画像エントリを生成します。
func NewImage(data []byte) Image {
	return Image{
		ID:   uuid.NewString(),
		Data: data,
	}
}

// Prompt は1キャラクター用のプロンプト草稿です。
// セクションごとの本文は省略可能で、空白のみの値は「なし」として扱われます。
type Prompt struct {
	ID                  string `json:"id"`
	Title               string `json:"title"`
	PhysicalDescription string `json:"physical_description,omitempty"`
	Outfit              string `json:"outfit,omitempty"`
	Pose                string `json:"pose,omitempty"`
	Environment         string `json:"environment,omitempty"`
	Lighting            string `json:"lighting,omitempty"`
	StyleModifiers      string `json:"style_modifiers,omitempty"`
	TechnicalModifiers  string `json:"technical_modifiers,omitempty"`
	NegativePrompt      string `json:"negative_prompt,omitempty"`

	// AdditionalInfo はデフォルト解決の対象外で、プロンプト階層にのみ存在します。
	AdditionalInfo string `json:"additional_info,omitempty"`

	// AppliedPresets は「現在の本文が既知プリセットと一致しているか」をUIに示す
	// 表示用の注釈であり、合成アルゴリズムの入力には含めません。
	AppliedPresets map[SectionKind]string `json:"applied_presets,omitempty"`

	Images []Image `json:"images,omitempty"`
}

// NewPrompt はタイトルだけを持つ空のプロンプトを生成します。
func NewPrompt(title string) Prompt {
	return Prompt{
		ID:    uuid.NewString(),
		Title: title,
	}
}

// Section は指定セクションの本文を返します。未知のセクションは空文字列です。
func (p Prompt) Section(kind SectionKind) string {
	switch kind {
	case SectionPhysicalDescription:
		return p.PhysicalDescription
	case SectionOutfit:
		return p.Outfit
	case SectionPose:
		return p.Pose
	case SectionEnvironment:
		return p.Environment
	case SectionLighting:
		return p.Lighting
	case SectionStyle:
		return p.StyleModifiers
	case SectionTechnical:
		return p.TechnicalModifiers
	case SectionNegative:
		return p.NegativePrompt
	default:
		return ""
	}
}

// SetSection は指定セクションの本文を書き換えます。
func (p *Prompt) SetSection(kind SectionKind, value string) {
	switch kind {
	case SectionPhysicalDescription:
		p.PhysicalDescription = value
	case SectionOutfit:
		p.Outfit = value
	case SectionPose:
		p.Pose = value
	case SectionEnvironment:
		p.Environment = value
	case SectionLighting:
		p.Lighting = value
	case SectionStyle:
		p.StyleModifiers = value
	case SectionTechnical:
		p.TechnicalModifiers = value
	case SectionNegative:
		p.NegativePrompt = value
	}
}

// Character はAI画像生成の題材となるキャラクター定義を保持します。
// 同一性はIDのみで判定し、編集を経てもIDは安定です。
type Character struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Bio              string   `json:"bio,omitempty"`
	Prompts          []Prompt `json:"prompts,omitempty"`
	ProfileImage     []byte   `json:"profile_image,omitempty"`
	StandaloneImages []Image  `json:"standalone_images,omitempty"`
	Defaults         Defaults `json:"defaults,omitempty"`

	// GeneratorID / ThemeID はグローバル設定を上書きする任意の識別子です。
	// ここでは不透明な文字列として保持するだけで、解釈は外側の層に委ねます。
	GeneratorID string `json:"generator_id,omitempty"`
	ThemeID     string `json:"theme_id,omitempty"`
}

// NewCharacter は名前からキャラクターを生成します。
func NewCharacter(name string) Character {
	return Character{
		ID:       uuid.NewString(),
		Name:     name,
		Defaults: make(Defaults),
	}
}

// String はキャラクターの情報を文字列で返すのだ。
func (c Character) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.ID)
}

// FindPrompt はIDからプロンプトを特定します。見つからない場合は nil を返します。
func (c Character) FindPrompt(id string) *Prompt {
	for i := range c.Prompts {
		if c.Prompts[i].ID == id {
			return &c.Prompts[i]
		}
	}
	return nil
}

// ResolvePrompt はIDまたはタイトル（大文字小文字を無視）でプロンプトを特定します。
func (c Character) ResolvePrompt(key string) *Prompt {
	if p := c.FindPrompt(key); p != nil {
		return p
	}
	for i := range c.Prompts {
		if strings.EqualFold(c.Prompts[i].Title, key) {
			return &c.Prompts[i]
		}
	}
	return nil
}

// CharactersMap はIDをキーとしたキャラクターの検索用マップなのだ。
type CharactersMap map[string]Character

// BuildCharactersMap はスライス形式のデータを検索効率の良いマップ形式に変換するのだ。
func BuildCharactersMap(chars []Character) CharactersMap {
	m := make(CharactersMap, len(chars))
	for _, c := range chars {
		m[c.ID] = c
	}
	return m
}

// FindCharacter はIDからキャラクター情報を特定します。
func (m CharactersMap) FindCharacter(id string) *Character {
	if m == nil {
		return nil
	}
	if char, ok := m[id]; ok {
		res := char
		return &res
	}
	return nil
}

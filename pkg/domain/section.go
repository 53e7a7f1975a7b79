package domain

// SectionKind はプロンプトを構成するセクションの閉じた列挙です。
// 追加情報（AdditionalInfo）はセクションではなくプロンプト直下の自由記述であり、
// この列挙には含まれません。
type SectionKind string

const (
	SectionPhysicalDescription SectionKind = "physical-description"
	SectionOutfit              SectionKind = "outfit"
	SectionPose                SectionKind = "pose"
	SectionEnvironment         SectionKind = "environment"
	SectionLighting            SectionKind = "lighting"
	SectionStyle               SectionKind = "style"
	SectionTechnical           SectionKind = "technical"
	SectionNegative            SectionKind = "negative"
)

// DefaultKey はデフォルト値マップのキーです。SectionKind と 1:1 で対応します。
type DefaultKey string

const (
	KeyPhysicalDescription DefaultKey = "physicalDescription"
	KeyOutfit              DefaultKey = "outfit"
	KeyPose                DefaultKey = "pose"
	KeyEnvironment         DefaultKey = "environment"
	KeyLighting            DefaultKey = "lighting"
	KeyStyle               DefaultKey = "styleModifiers"
	KeyTechnical           DefaultKey = "technicalModifiers"
	KeyNegative            DefaultKey = "negativePrompt"
)

// sectionEntry はセクション1種の全属性を保持する定義行です。
type sectionEntry struct {
	Kind        SectionKind
	Key         DefaultKey
	Label       string
	Placeholder string
	IconTag     string
}

// sectionTable は全セクションの唯一の定義表です。
// Kind と Key の全単射はこの1つの表から両方向の参照を導出することで機械的に保証します。
// 表の並び順は単一キャラクター合成時の出力順でもあります。
var sectionTable = []sectionEntry{
	{SectionPhysicalDescription, KeyPhysicalDescription, "Physical Description", "tall, silver hair, green eyes...", "person.fill"},
	{SectionOutfit, KeyOutfit, "Outfit", "school uniform, red scarf...", "tshirt.fill"},
	{SectionPose, KeyPose, "Pose", "standing, arms crossed...", "figure.stand"},
	{SectionEnvironment, KeyEnvironment, "Environment", "ruined castle, forest at dusk...", "leaf.fill"},
	{SectionLighting, KeyLighting, "Lighting", "soft backlight, golden hour...", "sun.max.fill"},
	{SectionStyle, KeyStyle, "Style Modifiers", "watercolor, cel-shaded...", "paintbrush.fill"},
	{SectionTechnical, KeyTechnical, "Technical Modifiers", "8k, sharp focus, masterpiece...", "gearshape.fill"},
	{SectionNegative, KeyNegative, "Negative prompt", "low quality, bad anatomy...", "nosign"},
}

var (
	byKind = make(map[SectionKind]sectionEntry, len(sectionTable))
	byKey  = make(map[DefaultKey]sectionEntry, len(sectionTable))
)

func init() {
	for _, e := range sectionTable {
		byKind[e.Kind] = e
		byKey[e.Key] = e
	}
}

// AllSectionKinds は定義順（＝合成時の固定順）の全セクションを返します。
func AllSectionKinds() []SectionKind {
	kinds := make([]SectionKind, 0, len(sectionTable))
	for _, e := range sectionTable {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

// AllDefaultKeys は定義順の全デフォルトキーを返します。
func AllDefaultKeys() []DefaultKey {
	keys := make([]DefaultKey, 0, len(sectionTable))
	for _, e := range sectionTable {
		keys = append(keys, e.Key)
	}
	return keys
}

// DefaultKey は対応するデフォルトキーを返します。
func (k SectionKind) DefaultKey() DefaultKey {
	return byKind[k].Key
}

// Label は表示用ラベルを返します。
func (k SectionKind) Label() string {
	return byKind[k].Label
}

// Placeholder は入力欄のプレースホルダ文字列を返します。
func (k SectionKind) Placeholder() string {
	return byKind[k].Placeholder
}

// IconTag はUI層が解釈する不透明なアイコン識別子を返します。
func (k SectionKind) IconTag() string {
	return byKind[k].IconTag
}

// IsValid は定義表に存在するセクションかどうかを返します。
func (k SectionKind) IsValid() bool {
	_, ok := byKind[k]
	return ok
}

// SectionKind は対応するセクション種別を返します。
func (d DefaultKey) SectionKind() SectionKind {
	return byKey[d].Kind
}

// IsValid は定義表に存在するキーかどうかを返します。
func (d DefaultKey) IsValid() bool {
	_, ok := byKey[d]
	return ok
}

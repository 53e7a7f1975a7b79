package compose

import (
	"strings"

	"github.com/shouni/go-chara-kit/pkg/domain"
)

const (
	negativePrefix  = "Negative prompt: "
	nameLabel       = "Name"
	additionalLabel = "Additional Information"
)

// Single は1キャラクター分の完成プロンプトを組み立てます。
// セクションの順序は固定（Name → 定義表順 → Additional Information）で、
// 存在しないセクションは見出しごと省略されます。全セクションが存在しない場合は
// 空文字列を返します。同じ入力に対しては常にバイト単位で同一の出力を返します。
func Single(char domain.Character, prompt domain.Prompt, global domain.Defaults) string {
	sections := make([]string, 0, len(domain.AllSectionKinds())+2)

	// 1. 名前はデフォルト解決の対象外だが、存在すれば先頭のセクションになる
	if name, ok := domain.Clean(char.Name); ok {
		sections = append(sections, block(nameLabel, name))
	}

	// 2. 各セクションを固定順で解決して積む
	for _, kind := range domain.AllSectionKinds() {
		key := kind.DefaultKey()
		scoped, _ := char.Defaults.Get(key)
		globalValue, _ := global.Get(key)

		value, ok := Resolve(prompt.Section(kind), scoped, globalValue)
		if !ok {
			continue
		}

		if kind == domain.SectionNegative {
			sections = append(sections, negativeLine(value))
			continue
		}
		sections = append(sections, block(kind.Label(), value))
	}

	// 3. 追加情報はプロンプト階層にのみ存在し、デフォルト解決を経ずに末尾へ
	if info, ok := domain.Clean(prompt.AdditionalInfo); ok {
		sections = append(sections, block(additionalLabel, info))
	}

	return strings.Join(sections, "\n\n")
}

// block は「ラベル行＋本文」の2行形式のセクションを組み立てます。
func block(label, value string) string {
	return label + ":\n" + value
}

// negativeLine はネガティブプロンプトを1行形式で組み立てます。
// 保存済みの本文がすでにプレフィックスで始まっている場合は二重に付与しません。
func negativeLine(value string) string {
	if strings.HasPrefix(value, negativePrefix) {
		return value
	}
	return negativePrefix + value
}

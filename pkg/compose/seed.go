package compose

import (
	"github.com/google/uuid"

	"github.com/shouni/go-chara-kit/pkg/domain"
)

// sceneWideKeys は、シーンプロンプト直下に保存されるセクションのキー一覧です。
// physical-description / outfit / pose はキャラクター単位の設定なので含めません。
var sceneWideKeys = []domain.DefaultKey{
	domain.KeyEnvironment,
	domain.KeyLighting,
	domain.KeyStyle,
	domain.KeyTechnical,
	domain.KeyNegative,
}

// SeedSceneDefaults は新規シーンプロンプト作成時の初期値を決定します。
// 各キーについて、プロンプト本文なしの状態で Resolve を適用します。
// つまりシーンデフォルトがグローバルデフォルトに厳密に優先し、
// 空白のみのシーンデフォルトは「なし」としてグローバルへフォールバックします。
// この解決は作成時に一度だけ行われ、読み出しのたびに再適用されることはありません。
func SeedSceneDefaults(scene domain.Scene, global domain.Defaults) map[domain.DefaultKey]string {
	seeded := make(map[domain.DefaultKey]string, len(sceneWideKeys))
	for _, key := range sceneWideKeys {
		scoped, _ := scene.Defaults.Get(key)
		globalValue, _ := global.Get(key)
		if v, ok := Resolve("", scoped, globalValue); ok {
			seeded[key] = v
		}
	}
	return seeded
}

// NewScenePrompt はデフォルト初期値を適用済みの新しいシーンプロンプトを生成します。
func NewScenePrompt(title string, scene domain.Scene, global domain.Defaults) domain.ScenePrompt {
	seeded := SeedSceneDefaults(scene, global)
	return domain.ScenePrompt{
		ID:                 uuid.NewString(),
		Title:              title,
		Environment:        seeded[domain.KeyEnvironment],
		Lighting:           seeded[domain.KeyLighting],
		StyleModifiers:     seeded[domain.KeyStyle],
		TechnicalModifiers: seeded[domain.KeyTechnical],
		NegativePrompt:     seeded[domain.KeyNegative],
	}
}

package compose

import (
	"testing"

	"github.com/shouni/go-chara-kit/pkg/domain"
)

func TestSeedSceneDefaults(t *testing.T) {
	t.Run("シーンデフォルトがグローバルに厳密に優先されること", func(t *testing.T) {
		scene := domain.Scene{Defaults: domain.Defaults{}}
		scene.Defaults.Set(domain.KeyEnvironment, "A")

		global := domain.Defaults{}
		global.Set(domain.KeyEnvironment, "B")
		global.Set(domain.KeyLighting, "C")

		seeded := SeedSceneDefaults(scene, global)

		if seeded[domain.KeyEnvironment] != "A" {
			t.Errorf("environment の期待値 'A', 実際の値 '%s'", seeded[domain.KeyEnvironment])
		}
		if seeded[domain.KeyLighting] != "C" {
			t.Errorf("lighting の期待値 'C', 実際の値 '%s'", seeded[domain.KeyLighting])
		}
	})

	t.Run("空白のみのシーンデフォルトはグローバルへフォールバックすること", func(t *testing.T) {
		// 過去の回帰: 空白のみのシーンデフォルトが「存在する」と判定されて
		// グローバル値を覆い隠していた
		scene := domain.Scene{Defaults: domain.Defaults{domain.KeyEnvironment: "   "}}

		global := domain.Defaults{}
		global.Set(domain.KeyEnvironment, "B")

		seeded := SeedSceneDefaults(scene, global)
		if seeded[domain.KeyEnvironment] != "B" {
			t.Errorf("期待値 'B', 実際の値 '%s'", seeded[domain.KeyEnvironment])
		}
	})

	t.Run("どの層にも無いキーは結果に含まれないこと", func(t *testing.T) {
		seeded := SeedSceneDefaults(domain.Scene{}, nil)
		if len(seeded) != 0 {
			t.Errorf("期待値は空マップ, 実際の値 %v", seeded)
		}
	})

	t.Run("キャラクター単位のキーは初期値の対象外であること", func(t *testing.T) {
		global := domain.Defaults{}
		global.Set(domain.KeyOutfit, "armor")
		global.Set(domain.KeyPose, "standing")
		global.Set(domain.KeyPhysicalDescription, "tall")

		seeded := SeedSceneDefaults(domain.Scene{}, global)
		for _, key := range []domain.DefaultKey{
			domain.KeyOutfit, domain.KeyPose, domain.KeyPhysicalDescription,
		} {
			if _, ok := seeded[key]; ok {
				t.Errorf("キャラクター単位のキー %s が初期値に含まれています", key)
			}
		}
	})
}

func TestNewScenePrompt(t *testing.T) {
	scene := domain.Scene{Defaults: domain.Defaults{}}
	scene.Defaults.Set(domain.KeyEnvironment, "ruins")

	global := domain.Defaults{}
	global.Set(domain.KeyNegative, "blurry")

	sp := NewScenePrompt("opening", scene, global)

	if sp.ID == "" {
		t.Error("IDが採番されていません")
	}
	if sp.Title != "opening" {
		t.Errorf("タイトルの期待値 'opening', 実際の値 '%s'", sp.Title)
	}
	if sp.Environment != "ruins" {
		t.Errorf("environment の期待値 'ruins', 実際の値 '%s'", sp.Environment)
	}
	if sp.NegativePrompt != "blurry" {
		t.Errorf("negative の期待値 'blurry', 実際の値 '%s'", sp.NegativePrompt)
	}

	t.Run("初期値は作成時にのみ適用されること", func(t *testing.T) {
		// 作成後にシーンデフォルトを変えても既存プロンプトには波及しない
		scene.Defaults.Set(domain.KeyEnvironment, "desert")
		if sp.Environment != "ruins" {
			t.Errorf("作成済みプロンプトが再解決されています: '%s'", sp.Environment)
		}
	})
}

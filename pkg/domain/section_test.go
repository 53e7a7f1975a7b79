package domain

import "testing"

func TestSectionBijection(t *testing.T) {
	kinds := AllSectionKinds()
	keys := AllDefaultKeys()

	if len(kinds) != 8 {
		t.Fatalf("セクション数の期待値 8, 実際の値 %d", len(kinds))
	}
	if len(keys) != len(kinds) {
		t.Fatalf("キー数(%d)とセクション数(%d)が一致しません", len(keys), len(kinds))
	}

	t.Run("Kind→Key→Kind の往復が恒等であること", func(t *testing.T) {
		for _, kind := range kinds {
			if got := kind.DefaultKey().SectionKind(); got != kind {
				t.Errorf("%s: 往復結果 %s", kind, got)
			}
		}
	})

	t.Run("Key→Kind→Key の往復が恒等であること", func(t *testing.T) {
		for _, key := range keys {
			if got := key.SectionKind().DefaultKey(); got != key {
				t.Errorf("%s: 往復結果 %s", key, got)
			}
		}
	})

	t.Run("キーに重複が無いこと", func(t *testing.T) {
		seen := make(map[DefaultKey]bool)
		for _, key := range keys {
			if seen[key] {
				t.Errorf("キーが重複しています: %s", key)
			}
			seen[key] = true
		}
	})
}

func TestSectionAttributes(t *testing.T) {
	for _, kind := range AllSectionKinds() {
		if kind.Label() == "" {
			t.Errorf("%s: ラベルが空です", kind)
		}
		if kind.Placeholder() == "" {
			t.Errorf("%s: プレースホルダが空です", kind)
		}
		if !kind.IsValid() {
			t.Errorf("%s: IsValid が false です", kind)
		}
	}

	if SectionKind("unknown").IsValid() {
		t.Error("未知のセクションが IsValid=true になっています")
	}
	if DefaultKey("unknown").IsValid() {
		t.Error("未知のキーが IsValid=true になっています")
	}
}

func TestSectionNegativeLabel(t *testing.T) {
	// ネガティブプロンプトのラベルは合成出力のプレフィックスそのものであり、
	// 変更すると保存済みデータのプレフィックス重複判定が壊れる
	if got := SectionNegative.Label(); got != "Negative prompt" {
		t.Errorf("期待値 'Negative prompt', 実際の値 '%s'", got)
	}
}

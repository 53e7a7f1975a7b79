package compose

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name          string
		promptValue   string
		scopedDefault string
		globalDefault string
		want          string
		ok            bool
	}{
		{"プロンプト本文が最優先", "from prompt", "from scope", "from global", "from prompt", true},
		{"本文なしならスコープ付きデフォルト", "", "from scope", "from global", "from scope", true},
		{"スコープも無ければグローバル", "", "", "from global", "from global", true},
		{"全層なし", "", "", "", "", false},
		{"空白のみの本文は不在扱い", "   \n", "from scope", "from global", "from scope", true},
		{"空白のみのスコープはグローバルへフォールバック", "", " \t ", "from global", "from global", true},
		{"空白のみのグローバルも不在扱い", "", "", "   ", "", false},
		{"返り値は空白除去済み", "  from prompt  ", "", "", "from prompt", true},
		{"デフォルトと同一内容でも本文が勝つ", "same", "same", "same", "same", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.promptValue, tt.scopedDefault, tt.globalDefault)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Resolve(%q, %q, %q) = (%q, %v), 期待値 (%q, %v)",
					tt.promptValue, tt.scopedDefault, tt.globalDefault, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestResolveIsPure(t *testing.T) {
	// 同じ入力に対して常に同じ結果を返すこと（再入可能・冪等）
	for i := 0; i < 3; i++ {
		got, ok := Resolve("a", "b", "c")
		if got != "a" || !ok {
			t.Fatalf("%d回目の呼び出しで結果が変わりました: (%q, %v)", i+1, got, ok)
		}
	}
}

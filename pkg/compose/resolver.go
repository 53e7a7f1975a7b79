// Package compose は、階層化されたデフォルト値とプロンプト本文から
// 完成したプロンプト文字列を組み立てる純粋な合成ロジックを提供します。
// このパッケージの関数はI/Oを行わず、入力を一切変更しません。
package compose

import "github.com/shouni/go-chara-kit/pkg/domain"

// Resolve は1セクション分の有効値を厳密な優先順位で決定します。
// プロンプト本文 → スコープ付きデフォルト（キャラクター／シーン）→ グローバルデフォルト
// の順に走査し、最初に「存在する」（空白除去後に空でない）値を返します。
// どの層にも存在しない場合は ok=false を返します。
//
// 存在するプロンプト本文はデフォルトと内容が同一でも常に勝ちます。
// 判定は存在有無のみで、値の等価比較による短絡は行いません。
func Resolve(promptValue, scopedDefault, globalDefault string) (string, bool) {
	if v, ok := domain.Clean(promptValue); ok {
		return v, true
	}
	if v, ok := domain.Clean(scopedDefault); ok {
		return v, true
	}
	if v, ok := domain.Clean(globalDefault); ok {
		return v, true
	}
	return "", false
}

package domain

import "strings"

// Clean は前後の空白（スペース・タブ・改行）を除去した値と、
// その値が「存在する」（空でない）かどうかを返します。
// 空白のみの値を「存在する」と誤判定する回帰が過去に起きたため、
// 存在判定は各所で個別に書かずに必ずこのヘルパーを経由します。
func Clean(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// Present は空白除去後に空でないかどうかだけを返します。
func Present(s string) bool {
	_, ok := Clean(s)
	return ok
}

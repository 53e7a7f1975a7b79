// Package gallery は、キャラクター／シーン共通のギャラリー表示順と
// 重複排除の規則を提供します。サムネイル一覧とフルスクリーン閲覧は
// 必ず同じ1本の列を共有しなければならないため（N番目のタップはN番目の
// スワイプ位置を開く）、順序の導出はこのパッケージの1関数に集約します。
package gallery

import (
	"crypto/sha256"

	"github.com/shouni/go-chara-kit/pkg/domain"
)

// Owner はギャラリーを持つエンティティの構造的な能力です。
// Character と Scene はギャラリーの観点では同型（プロフィール画像＋
// プロンプト付随画像＋単独画像）なので、3フィールドを公開するものなら
// 何でも同じ順序規則で扱えます。
type Owner interface {
	// GalleryID はプロフィール画像の合成エントリIDの材料になる所有者IDです。
	GalleryID() string
	// GalleryProfileData はプロフィール画像のペイロードです。なければ nil。
	GalleryProfileData() []byte
	// GalleryPromptImages は全プロンプトの画像を、プロンプト順・画像順を保って
	// 平坦化したものです。
	GalleryPromptImages() []domain.Image
	// GalleryStandaloneImages はどのプロンプトにも属さない単独画像です。
	GalleryStandaloneImages() []domain.Image
}

// OrderedImages は所有者の全画像を決定的な1本の列として返します。
//
//  1. プロフィール画像は、プロンプト画像・単独画像のいずれともバイト一致
//     しない場合に限り、合成エントリとして先頭に置かれる
//  2. 続いて全プロンプトの画像をプロンプト順・元の画像順のまま（この段階では
//     重複排除しない）
//  3. 最後に単独画像を元の順のまま（同じく重複排除しない）
func OrderedImages(owner Owner) []domain.Image {
	prompts := owner.GalleryPromptImages()
	standalone := owner.GalleryStandaloneImages()

	ordered := make([]domain.Image, 0, len(prompts)+len(standalone)+1)

	if profile := owner.GalleryProfileData(); len(profile) > 0 {
		if !containsPayload(profile, prompts, standalone) {
			ordered = append(ordered, domain.Image{
				ID:   "profile-" + owner.GalleryID(),
				Data: profile,
			})
		}
	}

	ordered = append(ordered, prompts...)
	ordered = append(ordered, standalone...)
	return ordered
}

// containsPayload はペイロードがいずれかの画像リストにバイト一致で含まれるかを
// 判定します。比較はダイジェスト経由で行います。
func containsPayload(payload []byte, lists ...[]domain.Image) bool {
	target := sha256.Sum256(payload)
	for _, list := range lists {
		for _, img := range list {
			if sha256.Sum256(img.Data) == target {
				return true
			}
		}
	}
	return false
}

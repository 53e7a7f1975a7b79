// Package registry は、セクション種別ごとに名前付きの再利用テキスト
// （プリセット）を管理します。
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/shouni/go-chara-kit/pkg/domain"
)

const (
	matchCacheExpiration = 5 * time.Minute
	matchCacheCleanup    = 15 * time.Minute
)

// Preset はセクション種別に紐づく名前付きの再利用テキストです。
// (kind, name) の大文字小文字を無視した組が論理的な同一性です。
type Preset struct {
	ID   string             `json:"id"`
	Kind domain.SectionKind `json:"kind"`
	Name string             `json:"name"`
	Text string             `json:"text"`
}

// Registry はプリセットの登録・検索を担います。複数ゴルーチンからの
// 同時読み出しに対して安全です。
type Registry struct {
	mu      sync.RWMutex
	presets []Preset

	// matchCache は Matching の完全一致検索結果を保持します。
	// 本文編集のたびに全フィールドで再計算が走るUI都合の検索なので、
	// 変更があるまでは結果を使い回します。
	matchCache *cache.Cache
}

// New は空のレジストリを生成します。
func New() *Registry {
	return &Registry{
		matchCache: cache.New(matchCacheExpiration, matchCacheCleanup),
	}
}

// Load は永続化層から読み戻したプリセット群でレジストリを初期化します。
func Load(presets []Preset) *Registry {
	r := New()
	r.presets = append(r.presets, presets...)
	return r
}

// Snapshot は永続化のための防御的コピーを返します。
func (r *Registry) Snapshot() []Preset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshot := make([]Preset, len(r.presets))
	copy(snapshot, r.presets)
	return snapshot
}

// Upsert はプリセットを保存します。同じ (kind, name) のプリセットが
// 大文字小文字を無視して既に存在する場合は、複製せずその本文を上書きします。
func (r *Registry) Upsert(kind domain.SectionKind, name, text string) (Preset, error) {
	cleanName, ok := domain.Clean(name)
	if !ok {
		return Preset{}, fmt.Errorf("プリセット名が空です")
	}
	cleanText, ok := domain.Clean(text)
	if !ok {
		return Preset{}, fmt.Errorf("プリセット本文が空です")
	}
	if !kind.IsValid() {
		return Preset{}, fmt.Errorf("未知のセクション種別です: %q", kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	defer r.matchCache.Flush()

	for i := range r.presets {
		if r.presets[i].Kind == kind && strings.EqualFold(r.presets[i].Name, cleanName) {
			r.presets[i].Text = cleanText
			return r.presets[i], nil
		}
	}

	p := Preset{
		ID:   uuid.NewString(),
		Kind: kind,
		Name: cleanName,
		Text: cleanText,
	}
	r.presets = append(r.presets, p)
	return p, nil
}

// Delete はIDでプリセットを削除します。存在しないIDは何もしません。
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	defer r.matchCache.Flush()

	for i := range r.presets {
		if r.presets[i].ID == id {
			r.presets = append(r.presets[:i], r.presets[i+1:]...)
			return
		}
	}
}

// Find はIDでプリセットを検索します。
func (r *Registry) Find(id string) *Preset {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.presets {
		if r.presets[i].ID == id {
			res := r.presets[i]
			return &res
		}
	}
	return nil
}

// ByKind は指定セクションのプリセットを名前順（大文字小文字を無視）で返します。
func (r *Registry) ByKind(kind domain.SectionKind) []Preset {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []Preset
	for _, p := range r.presets {
		if p.Kind == kind {
			result = append(result, p)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
	})
	return result
}

// Matching は、本文が既知プリセットと完全一致（空白除去後）するかを判定する
// 純粋な問い合わせです。UI側はこれで「適用中プリセット名」の注釈を導出します。
func (r *Registry) Matching(kind domain.SectionKind, text string) *Preset {
	cleanText, ok := domain.Clean(text)
	if !ok {
		return nil
	}

	cacheKey := string(kind) + "\x00" + cleanText
	if hit, found := r.matchCache.Get(cacheKey); found {
		if p, ok := hit.(Preset); ok {
			res := p
			return &res
		}
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.presets {
		if p.Kind == kind && p.Text == cleanText {
			r.matchCache.Set(cacheKey, p, cache.DefaultExpiration)
			res := p
			return &res
		}
	}
	return nil
}

package store

import (
	"strings"

	"github.com/shouni/go-chara-kit/pkg/domain"
)

// ResolveCharacter はIDまたは名前（大文字小文字を無視）でキャラクターを
// 特定します。CLIからの指定を想定した緩い検索です。
func (l *Library) ResolveCharacter(key string) *domain.Character {
	for i := range l.Characters {
		if l.Characters[i].ID == key {
			res := l.Characters[i]
			return &res
		}
	}
	for i := range l.Characters {
		if strings.EqualFold(l.Characters[i].Name, key) {
			res := l.Characters[i]
			return &res
		}
	}
	return nil
}

// ResolveScene はIDまたは名前（大文字小文字を無視）でシーンを特定します。
func (l *Library) ResolveScene(key string) *domain.Scene {
	for i := range l.Scenes {
		if l.Scenes[i].ID == key {
			res := l.Scenes[i]
			return &res
		}
	}
	for i := range l.Scenes {
		if strings.EqualFold(l.Scenes[i].Name, key) {
			res := l.Scenes[i]
			return &res
		}
	}
	return nil
}

// Package store は、ライブラリ全体（キャラクター・シーン・プリセット・
// グローバルデフォルト）のJSONファイル永続化を担います。
// 各エンティティの構造化表現（フィールド名とセクション／キー列挙）は
// 外部の保存・同期層が依存する安定した契約です。
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/shouni/go-chara-kit/pkg/domain"
	"github.com/shouni/go-chara-kit/pkg/registry"
)

const (
	charactersFile = "characters.json"
	scenesFile     = "scenes.json"
	presetsFile    = "presets.json"
	defaultsFile   = "defaults.json"
)

// Library はロード済みのライブラリ全体のスナップショットです。
// 合成系の関数はこのスナップショットに対する純粋な読み出しとして動作します。
type Library struct {
	Characters     []domain.Character `json:"characters"`
	Scenes         []domain.Scene     `json:"scenes"`
	Presets        []registry.Preset  `json:"presets"`
	GlobalDefaults domain.Defaults    `json:"global_defaults"`
}

// CharacterIndex は検索用のキャラクターマップを構築します。
func (l *Library) CharacterIndex() domain.CharactersMap {
	return domain.BuildCharactersMap(l.Characters)
}

// FileStore はディレクトリ配下の4つのJSONファイルとしてライブラリを永続化します。
type FileStore struct {
	dir     string
	limiter *rate.Limiter

	mu      sync.Mutex
	pending *Library // 保存レート制限中に退避された最新スナップショット

	loadGroup singleflight.Group
}

// New は指定ディレクトリのファイルストアを生成します。
// saveLimit は AutoSave の最短保存間隔です（UI連打による書き込みの抑制）。
func New(dir string, saveLimit rate.Limit) *FileStore {
	return &FileStore{
		dir:     dir,
		limiter: rate.NewLimiter(saveLimit, 1),
	}
}

// Load はライブラリ全体を読み込みます。4ファイルは並行に読みます。
// 同時に複数の Load が走った場合は singleflight で1回の読み込みに束ねます。
// ファイルが存在しない場合は空のライブラリとして扱います（初回起動）。
func (fs *FileStore) Load(ctx context.Context) (*Library, error) {
	v, err, _ := fs.loadGroup.Do("load", func() (interface{}, error) {
		return fs.loadAll(ctx)
	})
	if err != nil {
		return nil, err
	}

	lib, ok := v.(*Library)
	if !ok {
		return nil, fmt.Errorf("singleflight から予期しない型が返されました: %T", v)
	}
	return lib, nil
}

func (fs *FileStore) loadAll(ctx context.Context) (*Library, error) {
	lib := &Library{GlobalDefaults: make(domain.Defaults)}

	eg, _ := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return readJSON(filepath.Join(fs.dir, charactersFile), &lib.Characters)
	})
	eg.Go(func() error {
		return readJSON(filepath.Join(fs.dir, scenesFile), &lib.Scenes)
	})
	eg.Go(func() error {
		return readJSON(filepath.Join(fs.dir, presetsFile), &lib.Presets)
	})
	eg.Go(func() error {
		return readJSON(filepath.Join(fs.dir, defaultsFile), &lib.GlobalDefaults)
	})

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("ライブラリの読み込みに失敗しました: %w", err)
	}

	slog.Debug("ライブラリを読み込みました",
		"dir", fs.dir,
		"characters", len(lib.Characters),
		"scenes", len(lib.Scenes),
		"presets", len(lib.Presets),
	)
	return lib, nil
}

// Save はライブラリ全体を即時に書き出します。4ファイルは並行に書きます。
func (fs *FileStore) Save(ctx context.Context, lib *Library) error {
	if err := os.MkdirAll(fs.dir, 0o755); err != nil {
		return fmt.Errorf("ライブラリディレクトリの作成に失敗しました: %w", err)
	}

	eg, _ := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return writeJSON(filepath.Join(fs.dir, charactersFile), lib.Characters)
	})
	eg.Go(func() error {
		return writeJSON(filepath.Join(fs.dir, scenesFile), lib.Scenes)
	})
	eg.Go(func() error {
		return writeJSON(filepath.Join(fs.dir, presetsFile), lib.Presets)
	})
	eg.Go(func() error {
		return writeJSON(filepath.Join(fs.dir, defaultsFile), lib.GlobalDefaults)
	})

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("ライブラリの書き込みに失敗しました: %w", err)
	}

	slog.Debug("ライブラリを保存しました", "dir", fs.dir)
	return nil
}

// AutoSave は編集のたびに呼ばれる保存入口です。レート制限内であれば即時保存し、
// 制限中はスナップショットを退避して後続の Flush に委ねます。
func (fs *FileStore) AutoSave(ctx context.Context, lib *Library) error {
	if !fs.limiter.Allow() {
		fs.mu.Lock()
		fs.pending = lib
		fs.mu.Unlock()
		slog.Debug("保存をスキップして退避しました（レート制限中）", "dir", fs.dir)
		return nil
	}
	return fs.Save(ctx, lib)
}

// Flush は退避中のスナップショットがあれば書き出します。終了時に必ず呼びます。
func (fs *FileStore) Flush(ctx context.Context) error {
	fs.mu.Lock()
	lib := fs.pending
	fs.pending = nil
	fs.mu.Unlock()

	if lib == nil {
		return nil
	}
	return fs.Save(ctx, lib)
}

// readJSON はファイルをデコードします。ファイルが無い場合はゼロ値のままにします。
func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%s の読み込みに失敗しました: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s のデコードに失敗しました: %w", filepath.Base(path), err)
	}
	return nil
}

// writeJSON は整形付きJSONとしてファイルへ書き出します。
func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%s のエンコードに失敗しました: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%s の書き込みに失敗しました: %w", filepath.Base(path), err)
	}
	return nil
}

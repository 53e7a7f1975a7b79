package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"
	"golang.org/x/time/rate"
)

// デフォルト値の定義なのだ
const (
	DefaultLibraryDir   = "library"
	DefaultSaveInterval = 2 * time.Second
)

// Config はアプリケーション全体の環境設定を保持する構造体なのだ。
type Config struct {
	LibraryDir   string        // ライブラリJSON群を置くディレクトリ
	SaveInterval time.Duration // AutoSave の最短保存間隔
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	cfg := &Config{
		LibraryDir:   envutil.GetEnv("CHARA_LIBRARY_DIR", DefaultLibraryDir),
		SaveInterval: DefaultSaveInterval,
	}

	if raw := envutil.GetEnv("CHARA_SAVE_INTERVAL", ""); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.SaveInterval = d
		}
	}
	return cfg
}

// SaveLimit は AutoSave 用のレート制限値を返すのだ。
func (c *Config) SaveLimit() rate.Limit {
	return rate.Every(c.SaveInterval)
}

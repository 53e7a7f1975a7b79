package domain

// Defaults はデフォルトキーごとに高々1つの値を持つマッピングです。
// グローバル・キャラクター・シーンの各スコープで同じ型を使います。
// 空白のみの値は「空文字列として保存」ではなく「エントリなし」として扱います。
type Defaults map[DefaultKey]string

// Set は値を設定します。空白のみの値はエントリの削除として扱います。
func (d Defaults) Set(key DefaultKey, value string) {
	cleaned, ok := Clean(value)
	if !ok {
		delete(d, key)
		return
	}
	d[key] = cleaned
}

// Get はキーに対応する値と存在有無を返します。
// 保存経路を経ていない生データ（JSONを直接編集した場合など）に
// 空白のみの値が紛れていても「なし」と判定します。
func (d Defaults) Get(key DefaultKey) (string, bool) {
	if d == nil {
		return "", false
	}
	return Clean(d[key])
}

// Clone は防御的コピーを返します。
func (d Defaults) Clone() Defaults {
	if d == nil {
		return nil
	}
	copied := make(Defaults, len(d))
	for k, v := range d {
		copied[k] = v
	}
	return copied
}

package domain

// Character と Scene はギャラリー表示の観点では構造的に同型です。
// ここでは両者に同じアクセサ一式を実装し、順序規則そのものは
// gallery パッケージの1関数に委ねます。規則を型ごとに複製しないこと。

// GalleryID はギャラリー所有者としてのIDを返します。
func (c Character) GalleryID() string { return c.ID }

// GalleryProfileData はプロフィール画像のペイロードを返します。
func (c Character) GalleryProfileData() []byte { return c.ProfileImage }

// GalleryPromptImages は全プロンプトの画像をプロンプト順のまま平坦化して返します。
func (c Character) GalleryPromptImages() []Image {
	var images []Image
	for _, p := range c.Prompts {
		images = append(images, p.Images...)
	}
	return images
}

// GalleryStandaloneImages は単独画像を元の順で返します。
func (c Character) GalleryStandaloneImages() []Image { return c.StandaloneImages }

// GalleryID はギャラリー所有者としてのIDを返します。
func (s Scene) GalleryID() string { return s.ID }

// GalleryProfileData はプロフィール画像のペイロードを返します。
func (s Scene) GalleryProfileData() []byte { return s.ProfileImage }

// GalleryPromptImages は全シーンプロンプトの画像をプロンプト順のまま平坦化して返します。
func (s Scene) GalleryPromptImages() []Image {
	var images []Image
	for _, sp := range s.ScenePrompts {
		images = append(images, sp.Images...)
	}
	return images
}

// GalleryStandaloneImages は単独画像を元の順で返します。
func (s Scene) GalleryStandaloneImages() []Image { return s.StandaloneImages }

package assets

import (
	"fmt"

	"asset-cache/core/render"
)

// ImageToTex uploads images[name] and stores the result as textures[name].
// On any failure neither cache changes.
func (m *Manager) ImageToTex(name string) (render.Texture, error) {
	img, err := m.Image(name)
	if err != nil {
		return nil, err
	}
	tex, err := m.backend.Upload(img)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image %q: %w", name, err)
	}
	m.PutTexture(name, tex)
	return tex, nil
}

// TexToImage reads textures[name] back and stores the result as images[name].
// On any failure neither cache changes.
func (m *Manager) TexToImage(name string) (render.Image, error) {
	tex, err := m.Texture(name)
	if err != nil {
		return nil, err
	}
	img, err := m.backend.Readback(tex)
	if err != nil {
		return nil, fmt.Errorf("failed to read back texture %q: %w", name, err)
	}
	m.PutImage(name, img)
	return img, nil
}

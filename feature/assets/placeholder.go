package assets

import (
	"fmt"
	"image/color"

	"asset-cache/core/render"
)

// PlaceholderFontSize is the text size of every placeholder.
const PlaceholderFontSize = 16

// AddGetPlaceholder renders text in white on a width x height target cleared to
// fill, stores it as textures[text] and returns it. The previously active view
// is replaced by restore, or by the backend's default view when restore is nil.
//
// It holds the process-wide render scope for its whole duration.
func (m *Manager) AddGetPlaceholder(text string, fill color.Color, width, height int, restore render.View) (render.Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("placeholder %q %dx%d: %w", text, width, height, render.ErrInvalidSize)
	}

	scope := render.Acquire(m.backend, restore)
	defer scope.Release()

	target, err := m.backend.NewTarget(width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate placeholder target: %w", err)
	}
	scope.Redirect(target)

	m.backend.Clear(fill)
	m.backend.DrawText(text, 0, 0, PlaceholderFontSize, color.White)

	tex := target.Texture()
	m.PutTexture(text, tex)
	return tex, nil
}

// Package preview shows the texture cache in an Ebitengine window.
//
// Textures are laid out in a grid with their names beneath them. Space plays
// the next cached sound and P adds a placeholder texture.
package preview

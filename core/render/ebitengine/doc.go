// Package ebitengine implements render.Backend on top of Ebitengine.
//
// Textures are *ebiten.Image values drawn with nearest filtering, text goes
// through text/v2 and sounds are decoded with audio/wav into 16-bit stereo PCM
// that can be handed to an audio.Player.
//
// Readback and any draw call require a running game loop, so a Backend is
// meant to be driven from ebiten.Game. Call SetScreen at the top of Draw so
// the default view follows the frame's screen image.
package ebitengine

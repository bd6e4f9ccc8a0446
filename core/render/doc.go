// Package render defines the contract between the asset cache and the
// rendering/audio subsystem that actually decodes, uploads and draws.
//
// The cache never touches pixels or samples itself. It stores the opaque
// handles produced by a Backend and asks the Backend to convert between them.
//
// # Handles
//
//   - Image: a CPU-resident decoded pixel buffer.
//   - Texture: a drawable owned by the rendering context.
//   - Sound: a decoded, playback-ready clip.
//
// # Backends
//
// Two implementations ship with the module:
//
//   - render/software: a CPU renderer built on gogpu/gg. Used by the CLI and tests.
//   - render/ebitengine: the Ebitengine GPU renderer used by the game itself.
//
// # Views
//
// Exactly one View is active at a time. Drawing calls (Clear, DrawText) target
// the active view, so callers that redirect rendering must restore the previous
// view when done. See the Scope type for the guarded form of that dance.
package render

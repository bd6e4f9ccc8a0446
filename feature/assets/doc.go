// Package assets is the asset cache: three name-keyed caches (images, textures,
// sounds) filled by batch loads and read by the rest of the game.
//
// # Construction
//
// A Manager can start empty (New) and be filled later, or be filled while it is
// built:
//
//   - NewConfigured loads up to three optional directories (textures, raw images, sounds).
//   - NewConventional loads the fixed layout: assets/*.png as textures and
//     assets/sounds/*.wav as sounds.
//
// Both are thin wrappers over New followed by LoadConfigured or LoadConventional,
// so "empty then load" and "construct with load" always end in the same state.
//
// # Loading
//
// Every directory is one batch: the source is scanned, one task per file is run
// by core/batch under the configured policy, and the results are merged into the
// cache only after every task has finished. A file that fails to open or decode
// is logged and skipped. A path with no usable name aborts the batch with
// ErrMalformedPath before any file is opened.
//
// When two entries of one batch share a name, the one merged last wins and a
// warning is logged.
//
// # Conversion and placeholders
//
// ImageToTex and TexToImage copy an entry between the image and texture caches
// through the backend. AddGetPlaceholder renders text onto an offscreen target and
// stores the result as a texture. It holds the process-wide render scope while
// it runs and always leaves the caller's restore view (or the default view) active.
//
// # HTTP
//
// Feature mounts a read-mostly inspector on a Fiber router (see handler.go).
package assets

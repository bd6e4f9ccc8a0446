// Package software is a CPU-only render.Backend.
//
// Images and textures are both *image.RGBA underneath. Uploading and reading back
// copy the pixels, so the two representations never alias. Offscreen targets
// and text are drawn with gogpu/gg using the embedded Go Regular font, which
// means the backend needs neither a window nor a GPU. The CLI and the test
// suite both use it.
//
// Sounds are decoded from RIFF/WAVE with go-audio/wav and kept as PCM samples.
package software

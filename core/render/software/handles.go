package software

import (
	"image"
	"image/draw"
	"time"

	"asset-cache/core/render"
)

// Image is a CPU pixel buffer.
type Image struct {
	pix *image.RGBA
}

// NewImage wraps a copy of src.
func NewImage(src image.Image) *Image {
	return &Image{pix: cloneRGBA(src)}
}

func (i *Image) Size() (int, int) {
	b := i.pix.Bounds()
	return b.Dx(), b.Dy()
}

func (i *Image) RGBA() *image.RGBA { return i.pix }

// Texture is the software stand-in for a GPU texture.
type Texture struct {
	pix    *image.RGBA
	filter render.Filter
}

func (t *Texture) Size() (int, int) {
	b := t.pix.Bounds()
	return b.Dx(), b.Dy()
}

func (t *Texture) Filter() render.Filter { return t.filter }

// Pixels returns the texture contents. Callers must not mutate them.
func (t *Texture) Pixels() *image.RGBA { return t.pix }

// Sound holds interleaved PCM samples.
type Sound struct {
	samples  []int
	rate     int
	channels int
	bitDepth int
}

func (s *Sound) Duration() time.Duration {
	if s.rate == 0 || s.channels == 0 {
		return 0
	}
	frames := len(s.samples) / s.channels
	return time.Duration(frames) * time.Second / time.Duration(s.rate)
}

func (s *Sound) SampleRate() int { return s.rate }
func (s *Sound) Channels() int   { return s.channels }
func (s *Sound) BitDepth() int   { return s.bitDepth }

// Samples returns the interleaved PCM data.
func (s *Sound) Samples() []int { return s.samples }

func cloneRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

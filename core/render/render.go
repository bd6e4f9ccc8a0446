package render

import (
	"errors"
	"image"
	"image/color"
	"io"
	"time"
)

var (
	// ErrUnsupportedHandle is returned when a handle from another backend is passed in.
	ErrUnsupportedHandle = errors.New("handle was not produced by this backend")
	// ErrInvalidSize is returned for non-positive render target dimensions.
	ErrInvalidSize = errors.New("render target dimensions must be positive")
)

// Filter is the sampling mode a texture is drawn with.
type Filter int

const (
	FilterLinear Filter = iota
	FilterNearest
)

func (f Filter) String() string {
	if f == FilterNearest {
		return "nearest"
	}
	return "linear"
}

// Image is a decoded pixel buffer living in CPU memory.
type Image interface {
	Size() (width, height int)
	// RGBA exposes the pixels. Callers must not mutate the returned buffer.
	RGBA() *image.RGBA
}

// Texture is a drawable tied to the lifetime of the rendering context.
type Texture interface {
	Size() (width, height int)
	Filter() Filter
}

// Sound is a decoded clip tied to the lifetime of the audio subsystem.
type Sound interface {
	Duration() time.Duration
	SampleRate() int
	Channels() int
}

// View is an opaque camera/render destination. A nil View is never active;
// backends return their default view from DefaultView.
type View interface {
	// Name identifies the view in logs.
	Name() string
}

// Target is an offscreen view whose contents can be kept as a texture.
type Target interface {
	View
	Texture() Texture
}

// Decoder turns encoded bytes into handles. Every call may fail per input.
type Decoder interface {
	DecodeImage(r io.Reader) (Image, error)
	// LoadTexture decodes and uploads in one step. Implementations pin
	// nearest-neighbour sampling on the result.
	LoadTexture(r io.Reader) (Texture, error)
	DecodeSound(r io.Reader) (Sound, error)
}

// Uploader moves pixels between CPU and renderer memory.
type Uploader interface {
	Upload(img Image) (Texture, error)
	Readback(tex Texture) (Image, error)
}

// Renderer owns the process-wide active view and draws into it.
type Renderer interface {
	NewTarget(width, height int) (Target, error)
	ActiveView() View
	SetView(v View)
	DefaultView() View
	Clear(c color.Color)
	// DrawText draws s with its top-left corner at (x, y).
	DrawText(s string, x, y, size float64, c color.Color)
}

// Backend is the full external subsystem the asset cache depends on.
type Backend interface {
	Decoder
	Uploader
	Renderer
}

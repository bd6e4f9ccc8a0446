package software

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"sync"

	"asset-cache/core/render"

	"github.com/go-audio/wav"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	_ "golang.org/x/image/webp"
)

// ErrInvalidWAV is returned when a sound stream is not RIFF/WAVE.
var ErrInvalidWAV = errors.New("not a valid wav stream")

// view is a gg drawing context that can be made active.
type view struct {
	name string
	dc   *gg.Context
}

func (v *view) Name() string { return v.name }

// Texture snapshots the current contents of the view.
func (v *view) Texture() render.Texture {
	return &Texture{pix: cloneRGBA(v.dc.Image()), filter: render.FilterNearest}
}

var _ render.Backend = (*Backend)(nil)

// Backend implements render.Backend on the CPU.
type Backend struct {
	mu     sync.Mutex
	screen *view
	active render.View
	font   *text.FontSource
	faces  map[float64]text.Face
}

// New creates a backend whose default view is a width x height screen.
func New(width, height int) (*Backend, error) {
	if width <= 0 || height <= 0 {
		return nil, render.ErrInvalidSize
	}
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to load default font: %w", err)
	}
	screen := &view{name: "screen", dc: gg.NewContext(width, height)}
	return &Backend{
		screen: screen,
		active: screen,
		font:   src,
		faces:  make(map[float64]text.Face),
	}, nil
}

// DecodeImage decodes PNG, JPEG, GIF or WebP into a CPU image.
func (b *Backend) DecodeImage(r io.Reader) (render.Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return NewImage(src), nil
}

// LoadTexture decodes an image and uploads it with nearest sampling.
func (b *Backend) LoadTexture(r io.Reader) (render.Texture, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture: %w", err)
	}
	return &Texture{pix: cloneRGBA(src), filter: render.FilterNearest}, nil
}

// DecodeSound decodes a RIFF/WAVE stream into PCM samples.
func (b *Backend) DecodeSound(r io.Reader) (render.Sound, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound: %w", err)
	}
	d := wav.NewDecoder(bytes.NewReader(data))
	if !d.IsValidFile() {
		return nil, ErrInvalidWAV
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode sound: %w", err)
	}
	return &Sound{
		samples:  buf.Data,
		rate:     int(d.SampleRate),
		channels: int(d.NumChans),
		bitDepth: int(d.BitDepth),
	}, nil
}

// Upload copies img into a new texture.
func (b *Backend) Upload(img render.Image) (render.Texture, error) {
	if img == nil || img.RGBA() == nil {
		return nil, render.ErrUnsupportedHandle
	}
	return &Texture{pix: cloneRGBA(img.RGBA()), filter: render.FilterNearest}, nil
}

// Readback copies a texture produced by this backend into a new image.
func (b *Backend) Readback(tex render.Texture) (render.Image, error) {
	t, ok := tex.(*Texture)
	if !ok {
		return nil, render.ErrUnsupportedHandle
	}
	return NewImage(t.pix), nil
}

// NewTarget allocates an offscreen view.
func (b *Backend) NewTarget(width, height int) (render.Target, error) {
	if width <= 0 || height <= 0 {
		return nil, render.ErrInvalidSize
	}
	return &view{
		name: fmt.Sprintf("target %dx%d", width, height),
		dc:   gg.NewContext(width, height),
	}, nil
}

func (b *Backend) ActiveView() render.View {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.active
}

func (b *Backend) SetView(v render.View) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if v == nil {
		v = b.screen
	}
	b.active = v
}

func (b *Backend) DefaultView() render.View { return b.screen }

// Clear fills the active view. Views from other backends are ignored.
func (b *Backend) Clear(c color.Color) {
	if v := b.activeContext(); v != nil {
		v.dc.ClearWithColor(gg.FromColor(c))
	}
}

// DrawText draws s with its top-left corner at (x, y).
func (b *Backend) DrawText(s string, x, y, size float64, c color.Color) {
	v := b.activeContext()
	if v == nil {
		return
	}
	face := b.face(size)
	v.dc.SetFont(face)
	v.dc.SetColor(c)
	v.dc.DrawString(s, x, y+face.Metrics().Ascent)
}

// Screen returns a copy of the default view's pixels.
func (b *Backend) Screen() *image.RGBA {
	return cloneRGBA(b.screen.dc.Image())
}

func (b *Backend) activeContext() *view {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, _ := b.active.(*view)
	return v
}

func (b *Backend) face(size float64) text.Face {
	b.mu.Lock()
	defer b.mu.Unlock()
	f, ok := b.faces[size]
	if !ok {
		f = b.font.Face(size)
		b.faces[size] = f
	}
	return f
}

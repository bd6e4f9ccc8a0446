package ebitengine

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"io"
	"sync"
	"time"

	"asset-cache/core/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultSampleRate is used when New is given a non-positive rate.
const DefaultSampleRate = 44100

// Image is a CPU image.
type Image struct {
	pix *image.RGBA
}

func (i *Image) Size() (int, int) {
	b := i.pix.Bounds()
	return b.Dx(), b.Dy()
}

func (i *Image) RGBA() *image.RGBA { return i.pix }

// Texture is a GPU image plus the filter it is drawn with.
type Texture struct {
	img    *ebiten.Image
	filter render.Filter
}

func (t *Texture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *Texture) Filter() render.Filter { return t.filter }

// Ebiten returns the underlying image.
func (t *Texture) Ebiten() *ebiten.Image { return t.img }

// DrawOptions returns options that draw t with its filter.
func (t *Texture) DrawOptions() *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	if t.filter == render.FilterNearest {
		op.Filter = ebiten.FilterNearest
	} else {
		op.Filter = ebiten.FilterLinear
	}
	return op
}

// Sound is decoded 16-bit little-endian stereo PCM.
type Sound struct {
	ctx *audio.Context
	pcm []byte
}

func (s *Sound) Duration() time.Duration {
	frames := int64(len(s.pcm) / 4)
	return time.Duration(frames) * time.Second / time.Duration(s.ctx.SampleRate())
}

func (s *Sound) SampleRate() int { return s.ctx.SampleRate() }
func (s *Sound) Channels() int   { return 2 }

// Player creates a fresh player for the clip.
func (s *Sound) Player() *audio.Player {
	return s.ctx.NewPlayerFromBytes(s.pcm)
}

// view is an ebiten image that draw calls can be routed to.
type view struct {
	name string
	img  *ebiten.Image
}

func (v *view) Name() string { return v.name }

func (v *view) Texture() render.Texture {
	return &Texture{img: v.img, filter: render.FilterNearest}
}

var _ render.Backend = (*Backend)(nil)

// Backend implements render.Backend with Ebitengine.
type Backend struct {
	audio *audio.Context
	font  *text.GoTextFaceSource

	mu     sync.Mutex
	screen *view
	active render.View
}

// New creates a backend. Only one audio context may exist per process, so pass
// an existing one when the game already has it; nil creates a new context at
// sampleRate.
func New(actx *audio.Context, sampleRate int) (*Backend, error) {
	if actx == nil {
		if sampleRate <= 0 {
			sampleRate = DefaultSampleRate
		}
		actx = audio.NewContext(sampleRate)
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load default font: %w", err)
	}
	screen := &view{name: "screen"}
	return &Backend{
		audio:  actx,
		font:   src,
		screen: screen,
		active: screen,
	}, nil
}

// SetScreen points the default view at this frame's screen image.
func (b *Backend) SetScreen(screen *ebiten.Image) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.screen.img = screen
}

func (b *Backend) DecodeImage(r io.Reader) (render.Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return &Image{pix: toRGBA(src)}, nil
}

func (b *Backend) LoadTexture(r io.Reader) (render.Texture, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture: %w", err)
	}
	return &Texture{img: ebiten.NewImageFromImage(src), filter: render.FilterNearest}, nil
}

func (b *Backend) DecodeSound(r io.Reader) (render.Sound, error) {
	stream, err := wav.DecodeWithSampleRate(b.audio.SampleRate(), r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sound: %w", err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound: %w", err)
	}
	return &Sound{ctx: b.audio, pcm: pcm}, nil
}

func (b *Backend) Upload(img render.Image) (render.Texture, error) {
	if img == nil || img.RGBA() == nil {
		return nil, render.ErrUnsupportedHandle
	}
	return &Texture{img: ebiten.NewImageFromImage(img.RGBA()), filter: render.FilterNearest}, nil
}

func (b *Backend) Readback(tex render.Texture) (render.Image, error) {
	t, ok := tex.(*Texture)
	if !ok {
		return nil, render.ErrUnsupportedHandle
	}
	w, h := t.Size()
	pix := image.NewRGBA(image.Rect(0, 0, w, h))
	t.img.ReadPixels(pix.Pix)
	return &Image{pix: pix}, nil
}

func (b *Backend) NewTarget(width, height int) (render.Target, error) {
	if width <= 0 || height <= 0 {
		return nil, render.ErrInvalidSize
	}
	return &view{
		name: fmt.Sprintf("target %dx%d", width, height),
		img:  ebiten.NewImage(width, height),
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

func (b *Backend) Clear(c color.Color) {
	if dst := b.activeImage(); dst != nil {
		dst.Fill(c)
	}
}

// DrawText draws s with its top-left corner at (x, y).
func (b *Backend) DrawText(s string, x, y, size float64, c color.Color) {
	dst := b.activeImage()
	if dst == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, &text.GoTextFace{Source: b.font, Size: size}, op)
}

func (b *Backend) activeImage() *ebiten.Image {
	b.mu.Lock()
	defer b.mu.Unlock()
	if v, ok := b.active.(*view); ok {
		return v.img
	}
	return nil
}

func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

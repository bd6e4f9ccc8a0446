package preview

import (
	"context"
	"fmt"
	"image/color"

	"asset-cache/core/render/ebitengine"
	"asset-cache/feature/assets"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

const (
	cell    = 96
	padding = 8
)

var background = color.RGBA{15, 15, 18, 255}

// Game implements ebiten.Game over a loaded manager.
type Game struct {
	backend *ebitengine.Backend
	manager *assets.Manager
	logger  *zap.Logger
	width   int
	height  int

	nextSound   int
	placeholder int
	player      *audio.Player
}

// New creates a preview of m. The manager must use backend.
func New(backend *ebitengine.Backend, m *assets.Manager, logger *zap.Logger, width, height int) *Game {
	return &Game{backend: backend, manager: m, logger: logger, width: width, height: height}
}

// Load runs the conventional load before the window opens.
func (g *Game) Load(ctx context.Context) error {
	report, err := g.manager.LoadConventional(ctx)
	if err != nil {
		return err
	}
	for kind, sum := range report {
		g.logger.Info("Preview loaded", zap.String("kind", string(kind)), zap.Int("loaded", sum.Loaded))
	}
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.playNext()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.placeholder++
		name := fmt.Sprintf("placeholder %d", g.placeholder)
		if _, err := g.manager.AddGetPlaceholder(name, color.RGBA{R: 200, A: 255}, cell, cell/2, nil); err != nil {
			g.logger.Warn("Placeholder failed", zap.Error(err))
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.backend.SetScreen(screen)
	screen.Fill(background)

	cols := max(1, g.width/(cell+padding))
	for i, name := range g.manager.Names(assets.KindTexture) {
		tex, err := g.manager.Texture(name)
		if err != nil {
			continue
		}
		t, ok := tex.(*ebitengine.Texture)
		if !ok {
			continue
		}

		x := float64(padding + (i%cols)*(cell+padding))
		y := float64(padding + (i/cols)*(cell+padding+16))
		w, h := t.Size()
		scale := min(1, float64(cell)/float64(max(w, h)))

		op := t.DrawOptions()
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x, y)
		screen.DrawImage(t.Ebiten(), op)
		g.backend.DrawText(name, x, y+cell, 12, color.White)
	}
}

func (g *Game) Layout(int, int) (int, int) {
	return g.width, g.height
}

func (g *Game) playNext() {
	names := g.manager.Names(assets.KindSound)
	if len(names) == 0 {
		return
	}
	name := names[g.nextSound%len(names)]
	g.nextSound++

	snd, err := g.manager.Sound(name)
	if err != nil {
		return
	}
	s, ok := snd.(*ebitengine.Sound)
	if !ok {
		return
	}
	if g.player != nil {
		_ = g.player.Close()
	}
	g.player = s.Player()
	g.player.Play()
}

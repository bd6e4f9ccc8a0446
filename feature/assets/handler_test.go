package assets_test

import (
	"context"
	"encoding/json"
	"image/png"
	"io"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"asset-cache/core/scan"
	"asset-cache/feature/assets"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T) (*fiber.App, *assets.Manager) {
	t.Helper()
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "assets", "hero.png"), 10, 6)
	writeWAV(t, filepath.Join(root, "assets", "sounds", "step.wav"), 1600)

	m, err := assets.NewConventional(context.Background(), newBackend(t), scan.FS{Root: root}, zap.NewNop())
	require.NoError(t, err)

	app := fiber.New()
	feature := assets.NewFeature(m, zap.NewNop())
	assert.Equal(t, "assets", feature.Name())
	assert.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))
	return app, m
}

func decodeJSON(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestHandleList(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/assets", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeJSON(t, resp.Body)
	assert.Equal(t, []any{"hero"}, body["textures"])
	assert.Equal(t, []any{"step"}, body["sounds"])
	assert.Empty(t, body["images"])
}

func TestHandleListKind(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/assets/sound", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeJSON(t, resp.Body)
	assert.Equal(t, "sounds", body["kind"])
	assert.Equal(t, []any{"step"}, body["names"])

	resp, err = app.Test(httptest.NewRequest("GET", "/assets/fonts", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleInfo(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/assets/textures/hero", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeJSON(t, resp.Body)
	assert.Equal(t, float64(10), body["width"])
	assert.Equal(t, float64(6), body["height"])
	assert.Equal(t, "nearest", body["filter"])

	resp, err = app.Test(httptest.NewRequest("GET", "/assets/sounds/step", nil))
	require.NoError(t, err)
	body = decodeJSON(t, resp.Body)
	assert.Equal(t, float64(200), body["duration_ms"])
	assert.Equal(t, float64(8000), body["sample_rate"])

	resp, err = app.Test(httptest.NewRequest("GET", "/assets/images/hero", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandlePNG(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/assets/textures/hero/png", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get(fiber.HeaderContentType))

	img, err := png.Decode(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())

	resp, err = app.Test(httptest.NewRequest("GET", "/assets/sounds/step/png", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandlePlaceholder(t *testing.T) {
	app, m := setupApp(t)

	req := httptest.NewRequest("POST", "/assets/placeholders",
		strings.NewReader(`{"text":"HP: 10","color":"#ff0000","width":64,"height":32}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	tex, err := m.Texture("HP: 10")
	require.NoError(t, err)
	w, h := tex.Size()
	assert.Equal(t, 64, w)
	assert.Equal(t, 32, h)

	req = httptest.NewRequest("POST", "/assets/placeholders",
		strings.NewReader(`{"text":"bad","color":"red","width":0,"height":32}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	req = httptest.NewRequest("POST", "/assets/placeholders",
		strings.NewReader(`{"text":"x","color":"nope","width":4,"height":4}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleConvert(t *testing.T) {
	app, m := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/assets/hero/convert?to=image", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	_, err = m.Image("hero")
	assert.NoError(t, err)

	resp, err = app.Test(httptest.NewRequest("POST", "/assets/ghost/convert?to=texture", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/assets/hero/convert?to=sound", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

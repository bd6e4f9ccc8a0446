package assets

import (
	"bytes"
	"errors"
	"image/png"

	"asset-cache/core/logger"
	"asset-cache/core/render"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the asset inspector.
type Handler struct {
	manager *Manager
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(manager *Manager, logger *zap.Logger) *Handler {
	return &Handler{manager: manager, logger: logger}
}

// RegisterRoutes registers the inspector routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/assets")
	group.Get("/", h.HandleList)
	group.Post("/placeholders", h.HandlePlaceholder)
	group.Get("/:kind", h.HandleListKind)
	group.Get("/:kind/:name", h.HandleInfo)
	group.Get("/:kind/:name/png", h.HandlePNG)
	group.Post("/:name/convert", h.HandleConvert)
}

// HandleList returns the names held by every cache.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	out := fiber.Map{}
	for _, k := range Kinds {
		out[string(k)] = h.manager.Names(k)
	}
	return c.JSON(out)
}

// HandleListKind returns the names held by one cache.
func (h *Handler) HandleListKind(c *fiber.Ctx) error {
	kind, err := ParseKind(c.Params("kind"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"kind":  kind,
		"names": h.manager.Names(kind),
	})
}

// HandleInfo describes one cached entry.
func (h *Handler) HandleInfo(c *fiber.Ctx) error {
	kind, err := ParseKind(c.Params("kind"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	name := c.Params("name")

	switch kind {
	case KindImage:
		img, err := h.manager.Image(name)
		if err != nil {
			return h.fail(c, err)
		}
		w, hgt := img.Size()
		return c.JSON(fiber.Map{"kind": kind, "name": name, "width": w, "height": hgt})
	case KindTexture:
		tex, err := h.manager.Texture(name)
		if err != nil {
			return h.fail(c, err)
		}
		w, hgt := tex.Size()
		return c.JSON(fiber.Map{"kind": kind, "name": name, "width": w, "height": hgt, "filter": tex.Filter().String()})
	default:
		snd, err := h.manager.Sound(name)
		if err != nil {
			return h.fail(c, err)
		}
		return c.JSON(fiber.Map{
			"kind":        kind,
			"name":        name,
			"duration_ms": snd.Duration().Milliseconds(),
			"sample_rate": snd.SampleRate(),
			"channels":    snd.Channels(),
		})
	}
}

// HandlePNG encodes an image, or a texture read back from the renderer, as PNG.
func (h *Handler) HandlePNG(c *fiber.Ctx) error {
	kind, err := ParseKind(c.Params("kind"))
	if err != nil || kind == KindSound {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "only images and textures can be encoded"})
	}
	name := c.Params("name")

	var img render.Image
	if kind == KindImage {
		img, err = h.manager.Image(name)
	} else {
		var tex render.Texture
		tex, err = h.manager.Texture(name)
		if err == nil {
			img, err = h.manager.Backend().Readback(tex)
		}
	}
	if err != nil {
		return h.fail(c, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img.RGBA()); err != nil {
		return h.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(buf.Bytes())
}

// PlaceholderRequest is the body of POST /assets/placeholders.
type PlaceholderRequest struct {
	Text   string `json:"text"`
	Color  string `json:"color"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// HandlePlaceholder synthesises a placeholder texture.
func (h *Handler) HandlePlaceholder(c *fiber.Ctx) error {
	var req PlaceholderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "text is required"})
	}
	fill, err := ParseColor(req.Color)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tex, err := h.manager.AddGetPlaceholder(req.Text, fill, req.Width, req.Height, nil)
	if err != nil {
		return h.fail(c, err)
	}
	w, hgt := tex.Size()
	logger.WithRayID(h.logger, c).Info("Placeholder created", zap.String("name", req.Text))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"name": req.Text, "width": w, "height": hgt})
}

// HandleConvert runs ImageToTex (?to=texture) or TexToImage (?to=image).
func (h *Handler) HandleConvert(c *fiber.Ctx) error {
	name := c.Params("name")
	to, err := ParseKind(c.Query("to"))
	if err != nil || to == KindSound {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "to must be texture or image"})
	}

	if to == KindTexture {
		_, err = h.manager.ImageToTex(name)
	} else {
		_, err = h.manager.TexToImage(name)
	}
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"name": name, "converted_to": to})
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	l := logger.WithRayID(h.logger, c)
	switch {
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, render.ErrInvalidSize):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	l.Error("Inspector request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

package assets

import (
	"fmt"
	"strings"
)

// Kind names one of the three caches.
type Kind string

const (
	KindImage   Kind = "images"
	KindTexture Kind = "textures"
	KindSound   Kind = "sounds"
)

// Kinds lists every cache in display order.
var Kinds = []Kind{KindImage, KindTexture, KindSound}

// ParseKind accepts the plural or singular cache name.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "images", "image":
		return KindImage, nil
	case "textures", "texture":
		return KindTexture, nil
	case "sounds", "sound":
		return KindSound, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Pattern is the file pattern scanned for this kind.
func (k Kind) Pattern() string {
	if k == KindSound {
		return "*.wav"
	}
	return "*.png"
}

func (k Kind) singular() string {
	return strings.TrimSuffix(string(k), "s")
}

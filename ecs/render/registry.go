package render

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	imagesMu sync.RWMutex
	images   = map[string]*ebiten.Image{}
)

// RegisterImage stores an image by key.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	imagesMu.Lock()
	images[key] = img
	imagesMu.Unlock()
}

// GetImage returns a cached image by key.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	imagesMu.RLock()
	defer imagesMu.RUnlock()
	return images[key]
}

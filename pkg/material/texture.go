package material

import (
	"fmt"
	"image"
	"sync"

	"github.com/lumen-render/lumen/pkg/core"
)

// TextureAtlas is an explicitly owned texture lookup table. Textures are
// registered up front and receive sequential IDs; during rendering the
// atlas is only read, so sampling takes no lock. Registration is guarded
// for callers that load textures concurrently.
type TextureAtlas struct {
	mu       sync.Mutex
	textures []image.Image
}

// NewTextureAtlas creates an empty atlas
func NewTextureAtlas() *TextureAtlas {
	return &TextureAtlas{}
}

// Add registers a decoded image and returns its texture ID
func (a *TextureAtlas) Add(img image.Image) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.textures = append(a.textures, img)
	return len(a.textures) - 1
}

// Len returns the number of registered textures
func (a *TextureAtlas) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.textures)
}

// Sample returns the color at texture coordinates u, v in [0, 1].
// The v axis is flipped (image rows grow downward) and the pixel lookup
// is clamped to the image bounds.
func (a *TextureAtlas) Sample(id int, u, v float64) (core.Vec3, error) {
	if id < 0 || id >= len(a.textures) {
		return core.Vec3{}, fmt.Errorf("texture atlas: unknown texture id %d", id)
	}
	img := a.textures[id]
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	x := int(u * float64(width))
	y := int((1.0 - v) * float64(height))
	if x > width-1 {
		x = width - 1
	}
	if y > height-1 {
		y = height - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
	return core.NewVec3(
		float64(r)/65535.0,
		float64(g)/65535.0,
		float64(b)/65535.0,
	), nil
}

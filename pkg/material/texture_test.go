package material

import (
	"image"
	"image/color"
	"testing"
)

// twoByTwo builds an image with distinct corner colors:
// top row red, green; bottom row blue, white.
func twoByTwo() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 255, 0, 255})
	img.SetRGBA(0, 1, color.RGBA{0, 0, 255, 255})
	img.SetRGBA(1, 1, color.RGBA{255, 255, 255, 255})
	return img
}

func TestTextureAtlas_SequentialIDs(t *testing.T) {
	atlas := NewTextureAtlas()

	first := atlas.Add(twoByTwo())
	second := atlas.Add(twoByTwo())

	if first != 0 || second != 1 {
		t.Errorf("Expected IDs 0 and 1, got %d and %d", first, second)
	}
	if atlas.Len() != 2 {
		t.Errorf("Expected 2 textures, got %d", atlas.Len())
	}
}

func TestTextureAtlas_SampleFlipsV(t *testing.T) {
	atlas := NewTextureAtlas()
	id := atlas.Add(twoByTwo())

	tests := []struct {
		name     string
		u, v     float64
		expected [3]float64
	}{
		// v near 1 maps to the top image row
		{"top left", 0.1, 0.9, [3]float64{1, 0, 0}},
		{"top right", 0.9, 0.9, [3]float64{0, 1, 0}},
		{"bottom left", 0.1, 0.1, [3]float64{0, 0, 1}},
		{"bottom right", 0.9, 0.1, [3]float64{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := atlas.Sample(id, tt.u, tt.v)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			for axis, want := range tt.expected {
				if diff := got.Axis(axis) - want; diff > 1e-3 || diff < -1e-3 {
					t.Errorf("Expected %v, got %v", tt.expected, got)
					break
				}
			}
		})
	}
}

func TestTextureAtlas_SampleClampsToBounds(t *testing.T) {
	atlas := NewTextureAtlas()
	id := atlas.Add(twoByTwo())

	// u=1 and v=0 both land exactly on the far edge and must clamp to
	// the last pixel instead of reading out of bounds
	got, err := atlas.Sample(id, 1.0, 0.0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got.X < 0.99 || got.Y < 0.99 || got.Z < 0.99 {
		t.Errorf("Expected white bottom-right pixel, got %v", got)
	}

	if _, err := atlas.Sample(id, -0.5, 1.5); err != nil {
		t.Errorf("Out-of-range coordinates must clamp, got error: %v", err)
	}
}

func TestTextureAtlas_SampleUnknownID(t *testing.T) {
	atlas := NewTextureAtlas()
	atlas.Add(twoByTwo())

	for _, id := range []int{-1, 1, 42} {
		if _, err := atlas.Sample(id, 0.5, 0.5); err == nil {
			t.Errorf("Expected error for texture id %d", id)
		}
	}
}

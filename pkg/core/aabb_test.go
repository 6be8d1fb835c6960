package core

import (
	"math/rand"
	"testing"
)

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name      string
		origin    Vec3
		direction Vec3
		expectHit bool
	}{
		{"through center", NewVec3(0, 0, 5), NewVec3(0, 0, -1), true},
		{"away from box", NewVec3(0, 0, 5), NewVec3(0, 0, 1), false},
		{"off axis miss", NewVec3(5, 5, 5), NewVec3(-1, 0, 0), false},
		{"diagonal through corner region", NewVec3(3, 3, 3), NewVec3(-1, -1, -1), true},
		{"origin inside", NewVec3(0, 0, 0), NewVec3(1, 0, 0), true},
		{"grazing along face", NewVec3(-5, 1, 0), NewVec3(1, 0, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := NewRay(tt.origin, tt.direction)
			if got := box.Hit(ray); got != tt.expectHit {
				t.Errorf("Expected hit=%t, got %t", tt.expectHit, got)
			}
		})
	}
}

func TestAABB_HitDegenerateDirection(t *testing.T) {
	// A ray parallel to an axis hits only if its origin lies inside the
	// slab on that axis
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name      string
		origin    Vec3
		direction Vec3
		expectHit bool
	}{
		{"parallel inside slabs", NewVec3(0, 0, 5), NewVec3(0, 0, -1), true},
		{"parallel outside x slab", NewVec3(2, 0, 5), NewVec3(0, 0, -1), false},
		{"parallel outside y slab", NewVec3(0, -3, 5), NewVec3(0, 0, -1), false},
		{"parallel on boundary", NewVec3(1, 0, 5), NewVec3(0, 0, -1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := NewRay(tt.origin, tt.direction)
			if got := box.Hit(ray); got != tt.expectHit {
				t.Errorf("Expected hit=%t, got %t", tt.expectHit, got)
			}
		})
	}
}

func TestAABB_Merge(t *testing.T) {
	a := NewAABB(NewVec3(-1, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(0, -2, 0.5), NewVec3(3, 0.5, 2))

	merged := a.Merge(b)

	if !merged.Contains(a) || !merged.Contains(b) {
		t.Errorf("Merged box %v must contain both inputs", merged)
	}
	if merged.Min != NewVec3(-1, -2, 0) || merged.Max != NewVec3(3, 1, 2) {
		t.Errorf("Unexpected merged bounds: %v", merged)
	}
}

func TestAABB_MergeCommutativeAssociative(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	randomBox := func() AABB {
		p := NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
		q := NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
		return NewAABB(p.Min(q), p.Max(q))
	}

	for trial := 0; trial < 50; trial++ {
		a, b, c := randomBox(), randomBox(), randomBox()

		if a.Merge(b) != b.Merge(a) {
			t.Fatalf("Merge not commutative for %v, %v", a, b)
		}
		left := a.Merge(b).Merge(c)
		right := a.Merge(b.Merge(c))
		if left != right {
			t.Fatalf("Merge not associative: %v vs %v", left, right)
		}
	}
}

func TestAABB_HalfSurfaceArea(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(2, 3, 4))
	// xy + yz + zx = 6 + 12 + 8
	if got := box.HalfSurfaceArea(); got != 26 {
		t.Errorf("Expected 26, got %f", got)
	}

	// A degenerate (flat) box still has area from its two long faces
	flat := NewAABB(NewVec3(0, 0, 0), NewVec3(2, 3, 0))
	if got := flat.HalfSurfaceArea(); got != 6 {
		t.Errorf("Expected 6, got %f", got)
	}
}

func TestNewAABBFromPoints(t *testing.T) {
	box := NewAABBFromPoints(
		NewVec3(1, -2, 3),
		NewVec3(-1, 5, 0),
		NewVec3(0, 0, 7),
	)

	if box.Min != NewVec3(-1, -2, 0) || box.Max != NewVec3(1, 5, 7) {
		t.Errorf("Unexpected bounds: %v", box)
	}
	if !box.IsValid() {
		t.Error("Expected a valid box")
	}
}

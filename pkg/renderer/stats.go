package renderer

import "time"

// Stats summarizes a completed render
type Stats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Workers         int
	PrimaryRays     int64
	Duration        time.Duration
}

// RaysPerSecond returns the primary-ray throughput of the render
func (s Stats) RaysPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.PrimaryRays) / s.Duration.Seconds()
}

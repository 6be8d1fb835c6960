package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/integrator"
	"github.com/lumen-render/lumen/pkg/scene"
)

// Config holds the per-render parameters
type Config struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	NumWorkers      int // 0 means one worker per logical CPU
	Seed            int64
}

// DefaultConfig returns sensible defaults for a quick render
func DefaultConfig() Config {
	return Config{
		Width:           800,
		Height:          450,
		SamplesPerPixel: 64,
		MaxDepth:        8,
	}
}

// Renderer drives per-pixel multi-sample color estimation over a scene.
// The scene and camera are shared read-only across workers; each worker
// owns its RNG and the disjoint output rows assigned to it, so the pixel
// buffer needs no synchronization.
type Renderer struct {
	scene  *scene.Scene
	camera *Camera
	tracer *integrator.PathTracer
	config Config
}

// New creates a renderer for a scene and camera
func New(scn *scene.Scene, camera *Camera, config Config) *Renderer {
	return &Renderer{
		scene:  scn,
		camera: camera,
		tracer: integrator.NewPathTracer(config.MaxDepth),
		config: config,
	}
}

// Render traces the full frame and returns a width*height*3 byte buffer,
// row-major, top row first, together with render statistics. It runs to
// completion synchronously.
func (r *Renderer) Render() ([]byte, Stats) {
	width, height := r.config.Width, r.config.Height
	buffer := make([]byte, width*height*3)

	workers := r.config.NumWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	seed := r.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()

	rows := make(chan int, height)
	for j := 0; j < height; j++ {
		rows <- j
	}
	close(rows)

	var wg sync.WaitGroup
	for id := 0; id < workers; id++ {
		wg.Add(1)
		go func(workerSeed int64) {
			defer wg.Done()
			sampler := core.NewRandomSampler(rand.New(rand.NewSource(workerSeed)))
			for j := range rows {
				r.renderRow(j, buffer[j*width*3:(j+1)*width*3], sampler)
			}
		}(seed + int64(id))
	}
	wg.Wait()

	return buffer, Stats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: r.config.SamplesPerPixel,
		MaxDepth:        r.config.MaxDepth,
		Workers:         workers,
		PrimaryRays:     int64(width) * int64(height) * int64(r.config.SamplesPerPixel),
		Duration:        time.Since(start),
	}
}

// renderRow fills one output row. Row 0 is the top of the image, so the
// vertical image-plane coordinate is flipped. Sub-pixel jitter uses a tent
// filter on both axes; samples are averaged, clamped to [0, 1] and
// truncated to bytes with the 255.99 convention (no gamma correction).
func (r *Renderer) renderRow(j int, row []byte, sampler core.Sampler) {
	width, height := r.config.Width, r.config.Height
	samples := r.config.SamplesPerPixel
	flippedJ := height - 1 - j

	for i := 0; i < width; i++ {
		var color core.Vec3
		for sample := 0; sample < samples; sample++ {
			s := (float64(i) + core.SampleTent(sampler)) / float64(width)
			t := (float64(flippedJ) + core.SampleTent(sampler)) / float64(height)
			ray := r.camera.GetRay(s, t, sampler)
			color = color.Add(r.tracer.RayColor(ray, r.scene, sampler, 0))
		}

		color = color.Multiply(1.0 / float64(samples)).Clamp(0, 1)
		row[i*3+0] = byte(color.X * 255.99)
		row[i*3+1] = byte(color.Y * 255.99)
		row[i*3+2] = byte(color.Z * 255.99)
	}
}

// Render is the package-level convenience entry point: it renders a scene
// with an already-built BVH through the given camera and returns the raw
// pixel buffer.
func Render(scn *scene.Scene, camera *Camera, width, height, maxDepth, samplesPerPixel int) []byte {
	r := New(scn, camera, Config{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        maxDepth,
	})
	buffer, _ := r.Render()
	return buffer
}

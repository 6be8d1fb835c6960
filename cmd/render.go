package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/urfave/cli"

	"github.com/lumen-render/lumen/pkg/renderer"
	"github.com/lumen-render/lumen/pkg/scene"
)

// RenderFrame renders a preset scene to an image file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene name argument")
	}
	sceneName := ctx.Args().First()

	config := renderer.Config{
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("max-depth"),
		NumWorkers:      ctx.Int("workers"),
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = defaultWorkerCount()
	}
	logSystemCapacity()

	start := time.Now()
	scn, camSpec, err := scene.Preset(sceneName)
	if err != nil {
		return err
	}
	nodes, leaves, primitives, maxDepth := scn.BVH().Stats()
	logger.Infof("built scene %q: %d primitives, bvh: %d nodes, %d leaves, max depth %d (%s)",
		sceneName, primitives, nodes, leaves, maxDepth, time.Since(start))

	aspectRatio := float64(config.Width) / float64(config.Height)
	camera := renderer.NewCamera(
		camSpec.LookFrom, camSpec.LookAt, camSpec.Up,
		camSpec.VerticalFov, aspectRatio, camSpec.FocalLength, camSpec.LensRadius,
	)

	buffer, stats := renderer.New(scn, camera, config).Render()

	outFile := ctx.String("out")
	if err := writeImage(outFile, buffer, config.Width, config.Height); err != nil {
		return fmt.Errorf("writing %s: %w", outFile, err)
	}

	displayFrameStats(stats)
	logger.Noticef("frame written to %s", outFile)
	return nil
}

// ListScenes prints the available preset scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)
	for _, name := range scene.PresetNames() {
		fmt.Println(name)
	}
	return nil
}

func displayFrameStats(stats renderer.Stats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Samples/px", "Max depth", "Workers", "Rays/sec", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.MaxDepth),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%.0f", stats.RaysPerSecond()),
		stats.Duration.Round(time.Millisecond).String(),
	})
	table.Render()

	logger.Noticef("frame statistics\n%s", buf.String())
}

// defaultWorkerCount picks one worker per logical CPU, falling back to the
// runtime's view when the system probe fails.
func defaultWorkerCount() int {
	count, err := cpu.Counts(true)
	if err != nil || count < 1 {
		return runtime.NumCPU()
	}
	return count
}

func logSystemCapacity() {
	count, err := cpu.Counts(true)
	if err != nil {
		logger.Debugf("cpu probe failed: %v", err)
		return
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		logger.Debugf("memory probe failed: %v", err)
		return
	}
	logger.Infof("system capacity: %d logical cpus, %.1f GiB memory available",
		count, float64(vm.Available)/(1<<30))
}

// imageFormat returns the lower-cased output extension without the dot
func imageFormat(path string) string {
	idx := strings.LastIndex(path, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(path[idx+1:])
}

package main

import (
	"os"

	"github.com/lumen-render/lumen/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "lumen"
	app.Usage = "render scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a preset scene to an image file",
			Description: `
Build the BVH for the selected preset scene and render it with the
path-tracing integrator. The output format is chosen by the file
extension: .png or .ppm.`,
			ArgsUsage: "scene_name",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 800,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 450,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 64,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Value: 8,
					Usage: "maximum recursion depth for scattered rays",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of render workers (0 = one per logical CPU)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "list-scenes",
			Usage:  "list available preset scenes",
			Action: cmd.ListScenes,
		},
	}

	app.Run(os.Args)
}

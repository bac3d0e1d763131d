package main

import (
	"os"

	"github.com/df07/go-motionblur-raytracer/cmd"
	"github.com/df07/go-motionblur-raytracer/pkg/log"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "motionblur-raytracer"
	app.Usage = "render sphere scenes with depth of field and motion blur"
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
			Usage: "render a single frame",
			Description: `
Render one of the built-in scenes with a thin-lens camera and an open shutter.

The frame is written as a plain-text PPM (P3) to stdout by default. Use --out
with a .ppm or .png filename to write a file instead. Log output always goes
to stderr.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:   "scene, s",
					Value:  "random",
					Usage:  "scene to render (see the scenes command)",
					EnvVar: "RAYTRACER_SCENE",
				},
				cli.IntFlag{
					Name:   "width",
					Value:  0,
					Usage:  "frame width; height follows the camera aspect ratio (0 = scene default)",
					EnvVar: "RAYTRACER_WIDTH",
				},
				cli.IntFlag{
					Name:   "spp",
					Value:  0,
					Usage:  "samples per pixel (0 = scene default)",
					EnvVar: "RAYTRACER_SPP",
				},
				cli.IntFlag{
					Name:   "depth",
					Value:  50,
					Usage:  "maximum number of bounces per path",
					EnvVar: "RAYTRACER_DEPTH",
				},
				cli.IntFlag{
					Name:   "workers, w",
					Value:  0,
					Usage:  "number of render workers (0 = number of CPUs)",
					EnvVar: "RAYTRACER_WORKERS",
				},
				cli.IntFlag{
					Name:   "tile-size",
					Value:  32,
					Usage:  "tile edge length in pixels",
					EnvVar: "RAYTRACER_TILE_SIZE",
				},
				cli.Int64Flag{
					Name:   "seed",
					Value:  42,
					Usage:  "seed for the scene layout and the per-tile sample streams",
					EnvVar: "RAYTRACER_SEED",
				},
				cli.StringFlag{
					Name:   "out, o",
					Value:  "-",
					Usage:  "output destination: - for stdout, or a .ppm / .png filename",
					EnvVar: "RAYTRACER_OUT",
				},
				cli.BoolFlag{
					Name:   "single-threaded",
					Usage:  "render scanline by scanline on one goroutine",
					EnvVar: "RAYTRACER_SINGLE_THREADED",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.New("raytracer").Errorf("%v", err)
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/HuynhNguyenPhuc/laurel/cmd"
	"github.com/HuynhNguyenPhuc/laurel/log"
)

var logger = log.New("laurel")

func main() {
	app := cli.NewApp()
	app.Name = "laurel"
	app.Usage = "render scenes with a CPU offline ray tracer"
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
			Name:  "whitted",
			Usage: "render the sphere grid with recursive Whitted ray tracing",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 1280,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 1024,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "max-bounces",
					Value: 50,
					Usage: "maximum ray recursion depth",
				},
				cli.StringFlag{
					Name:  "output, o",
					Value: "whitted.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderWhitted,
		},
		{
			Name:  "path",
			Usage: "render the sphere grid with the one-bounce MIS path tracer",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 1280,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 1024,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "max-bounces",
					Value: 2,
					Usage: "maximum ray recursion depth",
				},
				cli.IntFlag{
					Name:  "num-samples",
					Value: 100,
					Usage: "hemisphere samples per bounce",
				},
				cli.StringFlag{
					Name:  "output, o",
					Value: "path.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderPath,
		},
		{
			Name:  "march",
			Usage: "render single scattering through a homogeneous sphere",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 640,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 480,
					Usage: "frame height",
				},
				cli.Float64Flag{
					Name:  "sigma",
					Value: 0.45,
					Usage: "absorption coefficient of the medium",
				},
				cli.IntFlag{
					Name:  "steps",
					Value: 10,
					Usage: "ray march steps through the medium",
				},
				cli.BoolFlag{
					Name:  "backward",
					Usage: "march from the exit point toward the eye",
				},
				cli.StringFlag{
					Name:  "output, o",
					Value: "march.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderMarch,
		},
		{
			Name:  "mesh",
			Usage: "render a textured wavefront OBJ mesh",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 1280,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 1024,
					Usage: "frame height",
				},
				cli.StringFlag{
					Name:  "mesh",
					Usage: "path to the .obj mesh file",
				},
				cli.StringFlag{
					Name:  "texture",
					Usage: "path to the texture file",
				},
				cli.IntFlag{
					Name:  "tex-width",
					Value: 4096,
					Usage: "texture width for raw RGB textures",
				},
				cli.IntFlag{
					Name:  "tex-height",
					Value: 4096,
					Usage: "texture height for raw RGB textures",
				},
				cli.StringFlag{
					Name:  "output, o",
					Value: "mesh.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderMesh,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

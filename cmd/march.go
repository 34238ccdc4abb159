package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/HuynhNguyenPhuc/laurel/pkg/core"
	"github.com/HuynhNguyenPhuc/laurel/pkg/geometry"
	"github.com/HuynhNguyenPhuc/laurel/pkg/integrator"
	"github.com/HuynhNguyenPhuc/laurel/pkg/material"
	"github.com/HuynhNguyenPhuc/laurel/pkg/renderer"
)

// RenderMarch renders single scattering through a homogeneous sphere by ray
// marching, in either forward or backward composite order
func RenderMarch(ctx *cli.Context) error {
	setupLogging(ctx)

	width := ctx.Int("width")
	height := ctx.Int("height")
	sigma := ctx.Float64("sigma")
	steps := ctx.Int("steps")
	backward := ctx.Bool("backward")
	output := ctx.String("output")

	if width <= 0 || height <= 0 {
		return fmt.Errorf("width and height must be positive")
	}
	if sigma < 0 {
		return fmt.Errorf("sigma must be non-negative")
	}
	if steps <= 0 {
		return fmt.Errorf("steps must be positive")
	}

	marcher := &integrator.VolumeMarcher{
		SigmaA: float32(sigma),
		Steps:  steps,
	}
	if backward {
		marcher.Sphere = geometry.NewSphere(core.NewVec3(0, 0, -5), 3.0,
			material.NewMatte(core.NewVec3(0, 0, 0), 0.1, 0.9, 0.5, 32.0))
		marcher.Light = core.NewLight(core.NewVec3(4, 4, -7), core.NewVec3(1.3, 0.3, 0.9), 10.0)
		marcher.Background = core.NewVec3(0.572, 0.772, 0.921)
		marcher.Backward = true
	} else {
		marcher.Sphere = geometry.NewSphere(core.NewVec3(0, 0, -5), 3.0,
			material.NewMatte(core.NewVec3(0, 0, 0), 0.1, 0.9, 0.5, 32.0))
		marcher.Light = core.NewLight(core.NewVec3(2, 2, -7), core.NewVec3(1, 1, 1), 10.0)
		marcher.Background = core.NewVec3(1, 0, 0)
	}

	camera := renderer.NewCamera(core.NewVec3(0, 0, 0), 90.0, width, height)

	fb, stats := renderer.New(camera, width, height).Render(marcher)

	if err := fb.WriteFile(output, renderer.ToneLinear); err != nil {
		return err
	}

	displayRenderStats(stats)
	logger.Noticef("image saved as %s", output)
	return nil
}

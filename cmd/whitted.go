package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/HuynhNguyenPhuc/laurel/pkg/core"
	"github.com/HuynhNguyenPhuc/laurel/pkg/integrator"
	"github.com/HuynhNguyenPhuc/laurel/pkg/renderer"
	"github.com/HuynhNguyenPhuc/laurel/pkg/scene"
)

// RenderWhitted renders the sphere grid scene with the Whitted integrator
func RenderWhitted(ctx *cli.Context) error {
	setupLogging(ctx)

	width := ctx.Int("width")
	height := ctx.Int("height")
	maxBounces := ctx.Int("max-bounces")
	output := ctx.String("output")

	if width <= 0 || height <= 0 {
		return fmt.Errorf("width and height must be positive")
	}
	if maxBounces < 0 {
		return fmt.Errorf("max-bounces must be non-negative")
	}

	sc := scene.NewWhittedScene(core.NewVec3(0, 0, 0))
	camera := renderer.NewCamera(sc.CameraPosition, sc.FOV, width, height)

	fb, stats := renderer.New(camera, width, height).
		Render(integrator.NewWhitted(sc, maxBounces))

	if err := fb.WriteFile(output, renderer.ToneLinear); err != nil {
		return err
	}

	displayRenderStats(stats)
	logger.Noticef("image saved as %s", output)
	return nil
}

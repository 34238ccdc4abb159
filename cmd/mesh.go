package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/HuynhNguyenPhuc/laurel/pkg/integrator"
	"github.com/HuynhNguyenPhuc/laurel/pkg/renderer"
	"github.com/HuynhNguyenPhuc/laurel/pkg/scene"
)

// RenderMesh renders a textured OBJ mesh with the Blinn-Phong pass
func RenderMesh(ctx *cli.Context) error {
	setupLogging(ctx)

	width := ctx.Int("width")
	height := ctx.Int("height")
	output := ctx.String("output")
	meshPath := ctx.String("mesh")
	texturePath := ctx.String("texture")
	textureWidth := ctx.Int("tex-width")
	textureHeight := ctx.Int("tex-height")

	if width <= 0 || height <= 0 {
		return fmt.Errorf("width and height must be positive")
	}
	if meshPath == "" || texturePath == "" {
		return fmt.Errorf("both --mesh and --texture are required")
	}

	sc, err := scene.NewMeshScene(meshPath, texturePath, textureWidth, textureHeight)
	if err != nil {
		return err
	}

	camera := renderer.NewCamera(sc.CameraPosition, sc.FOV, width, height)

	fb, stats := renderer.New(camera, width, height).
		Render(integrator.NewBlinnPhong(sc))

	if err := fb.WriteFile(output, renderer.ToneSRGB); err != nil {
		return err
	}

	displayRenderStats(stats)
	logger.Noticef("image saved as %s", output)
	return nil
}

package renderer

import (
	"github.com/chewxy/math32"

	"github.com/HuynhNguyenPhuc/laurel/pkg/core"
)

// Camera is a pinhole camera at a fixed position looking down -Z
type Camera struct {
	Origin     core.Vec3
	width      int
	height     int
	tanHalfFov float32
	aspect     float32
}

// NewCamera creates a pinhole camera with a vertical field of view in degrees.
// A 90 degree FOV reproduces the plain normalized-device-coordinate mapping.
func NewCamera(origin core.Vec3, vfovDegrees float32, width, height int) *Camera {
	return &Camera{
		Origin:     origin,
		width:      width,
		height:     height,
		tanHalfFov: math32.Tan(vfovDegrees * math32.Pi / 360.0),
		aspect:     float32(width) / float32(height),
	}
}

// GetRay builds the primary ray through the center of pixel (x, y)
func (c *Camera) GetRay(x, y int) core.Ray {
	px := c.tanHalfFov * (2.0*(float32(x)+0.5)/float32(c.width) - 1.0) * c.aspect
	py := c.tanHalfFov * (1.0 - 2.0*(float32(y)+0.5)/float32(c.height))
	return core.NewRay(c.Origin, core.NewVec3(px, py, -1))
}

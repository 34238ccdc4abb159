package integrator

import (
	"math/rand"

	"github.com/chewxy/math32"

	"github.com/HuynhNguyenPhuc/laurel/pkg/core"
	"github.com/HuynhNguyenPhuc/laurel/pkg/geometry"
	"github.com/HuynhNguyenPhuc/laurel/pkg/scene"
)

// BlinnPhong is the non-recursive textured shading pass for mesh scenes:
// an ambient term plus per-light diffuse and half-vector specular terms.
// Shadow rays and facing tests use the geometric normal; diffuse and
// specular shading use the barycentric-interpolated normal.
type BlinnPhong struct {
	scene *scene.Scene
}

// NewBlinnPhong creates a Blinn-Phong integrator over the given scene
func NewBlinnPhong(sc *scene.Scene) *BlinnPhong {
	return &BlinnPhong{scene: sc}
}

// Li returns the radiance arriving along the ray
func (b *BlinnPhong) Li(ray core.Ray, _ *rand.Rand) core.Vec3 {
	hit, prim, ok := b.scene.Tree.NearestHit(ray)
	if !ok {
		return b.scene.Background
	}

	point := ray.At(hit.T)
	shadingNormal := prim.NormalAt(point, hit)
	geometricNormal := shadingNormal

	tri, isTriangle := prim.(*geometry.Triangle)
	if isTriangle {
		geometricNormal = tri.FaceNormal()
	}

	// Both normals face the viewer
	if shadingNormal.Dot(ray.Direction) > 0 {
		shadingNormal = shadingNormal.Negate()
	}
	if geometricNormal.Dot(ray.Direction) > 0 {
		geometricNormal = geometricNormal.Negate()
	}

	mat := prim.Material()
	baseColor := mat.Color
	if isTriangle && mat.Texture != nil {
		st := tri.TexCoordAt(hit)
		baseColor = mat.Texture.Sample(st.X, st.Y)
	}

	finalColor := baseColor.Multiply(mat.KA)

	for _, light := range b.scene.Lights {
		toLight := light.Position.Subtract(point)
		lightDir := toLight.Normalize()
		lightDist := toLight.Length()

		shadowRay := core.NewRay(point.Add(geometricNormal.Multiply(shadowBias)), lightDir)
		sHit, _, blocked := b.scene.Tree.NearestHit(shadowRay)
		if blocked && sHit.T < lightDist {
			continue
		}
		if geometricNormal.Dot(lightDir) <= 0 {
			continue
		}

		diffuse := baseColor.Multiply(mat.KD * light.Intensity * math32.Max(0, shadingNormal.Dot(lightDir)))

		viewDir := ray.Direction.Negate()
		halfway := lightDir.Add(viewDir).Normalize()
		specAngle := math32.Max(0, shadingNormal.Dot(halfway))
		specular := core.NewVec3(1, 1, 1).Multiply(mat.KS * light.Intensity * math32.Pow(specAngle, mat.Shininess))

		finalColor = finalColor.Add(diffuse).Add(specular)
	}

	return finalColor
}

package integrator

import (
	"math/rand"

	"github.com/chewxy/math32"

	"github.com/HuynhNguyenPhuc/laurel/pkg/core"
	"github.com/HuynhNguyenPhuc/laurel/pkg/scene"
)

// Origin offset for shadow and indirect rays in the path integrator
const pathEpsilon = 1e-4

// Path is a one-bounce path tracer combining a light-sampled direct estimate
// with a hemisphere-sampled indirect estimate under multiple importance
// weighting. Randomness comes from the caller-provided stream, which the
// renderer partitions deterministically per tile.
type Path struct {
	scene      *scene.Scene
	maxBounces int
	numSamples int
}

// NewPath creates a path integrator over the given scene
func NewPath(sc *scene.Scene, maxBounces, numSamples int) *Path {
	return &Path{scene: sc, maxBounces: maxBounces, numSamples: numSamples}
}

// Li returns the radiance arriving along the ray
func (p *Path) Li(ray core.Ray, random *rand.Rand) core.Vec3 {
	return p.cast(ray, 0, random)
}

func (p *Path) cast(ray core.Ray, depth int, random *rand.Rand) core.Vec3 {
	if depth > p.maxBounces {
		return p.scene.Background
	}

	hit, prim, ok := p.scene.Tree.NearestHit(ray)
	if !ok {
		return p.scene.Background
	}

	point := ray.At(hit.T)
	normal := prim.NormalAt(point, hit)
	mat := prim.Material()

	brdf := mat.Color.Multiply(mat.KD / math32.Pi)
	pdfBRDF := float32(1.0 / (2.0 * math32.Pi))

	// Direct estimate: light sampling only
	var direct core.Vec3
	for _, light := range p.scene.Lights {
		toLight := light.Position.Subtract(point)
		dist2 := toLight.Dot(toLight)
		dist := math32.Sqrt(dist2)
		wi := toLight.Divide(dist)

		shadowRay := core.NewRay(point.Add(normal.Multiply(pathEpsilon)), wi)
		if sHit, _, blocked := p.scene.Tree.NearestHit(shadowRay); blocked && sHit.T < dist {
			continue
		}

		cosTheta := math32.Max(0, normal.Dot(wi))
		radiance := light.Color.Multiply(light.Intensity / dist2)
		// pdf_light = 1 for a point light
		direct = direct.Add(brdf.MultiplyVec(radiance).Multiply(cosTheta))
	}

	// Indirect estimate: uniform hemisphere sampling in a tangent frame
	nt, nb := coordinateSystem(normal)
	var indirectSum core.Vec3
	for i := 0; i < p.numSamples; i++ {
		r1 := random.Float32()
		r2 := random.Float32()
		sample := sampleHemisphere(r1, r2)
		wi := nb.Multiply(sample.X).
			Add(normal.Multiply(sample.Y)).
			Add(nt.Multiply(sample.Z)).
			Normalize()
		cosTheta := math32.Max(0, normal.Dot(wi))

		bounced := core.NewRay(point.Add(wi.Multiply(pathEpsilon)), wi)
		radiance := p.cast(bounced, depth+1, random)
		indirectSum = indirectSum.Add(radiance.MultiplyVec(brdf).Multiply(cosTheta / pdfBRDF))
	}
	indirect := indirectSum.Divide(float32(p.numSamples))

	// Balance-weighted combination of the two estimators
	const pdfLight = 1.0
	wLight := pdfLight / (pdfLight + pdfBRDF)
	wBRDF := pdfBRDF / (pdfLight + pdfBRDF)

	return direct.Multiply(wLight).Add(indirect.Multiply(wBRDF))
}

// coordinateSystem builds a tangent and bitangent orthonormal to the normal
func coordinateSystem(n core.Vec3) (nt, nb core.Vec3) {
	if math32.Abs(n.X) > math32.Abs(n.Y) {
		nt = core.NewVec3(n.Z, 0, -n.X).Normalize()
	} else {
		nt = core.NewVec3(0, -n.Z, n.Y).Normalize()
	}
	nb = n.Cross(nt)
	return nt, nb
}

// sampleHemisphere maps two uniform variates to a direction on the local
// hemisphere with the up axis in Y
func sampleHemisphere(r1, r2 float32) core.Vec3 {
	sinTheta := math32.Sqrt(1 - r1*r1)
	phi := 2 * math32.Pi * r2
	return core.NewVec3(sinTheta*math32.Cos(phi), r1, sinTheta*math32.Sin(phi))
}

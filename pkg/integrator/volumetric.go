package integrator

import (
	"math/rand"

	"github.com/chewxy/math32"

	"github.com/HuynhNguyenPhuc/laurel/pkg/core"
	"github.com/HuynhNguyenPhuc/laurel/pkg/geometry"
)

// VolumeMarcher renders single scattering through a homogeneous absorbing
// sphere by marching the ray segment between the sphere's entry and exit
// points. Two composite orders are available: the forward marcher walks from
// the entry point and accumulates in-scatter under the running transmission;
// the backward marcher walks from the exit point toward the eye, seeding the
// result with the sphere's base color and attenuating it at every step.
type VolumeMarcher struct {
	Sphere     *geometry.Sphere
	Light      core.Light
	SigmaA     float32
	Steps      int
	Background core.Vec3
	Backward   bool
}

// Li returns the radiance arriving along the ray
func (m *VolumeMarcher) Li(ray core.Ray, _ *rand.Rand) core.Vec3 {
	t0, t1, ok := m.Sphere.IntersectSpan(ray)
	if !ok {
		return m.Background
	}

	entry := ray.At(t0)
	exit := ray.At(t1)
	if m.Backward {
		return m.marchBackward(entry, exit)
	}
	return m.marchForward(entry, exit)
}

// transfer is the Beer-Lambert transmittance over the given distance
func (m *VolumeMarcher) transfer(distance float32) float32 {
	tau := math32.Exp(-distance * m.SigmaA)
	return math32.Max(0, math32.Min(tau, 1))
}

// inScatter returns the light arriving at a sample point inside the medium,
// attenuated by the distance the light travels through the sphere to reach it
func (m *VolumeMarcher) inScatter(point core.Vec3, stepSize float32) core.Vec3 {
	lightDir := point.Subtract(m.Light.Position).Normalize()
	lightRay := core.NewRay(m.Light.Position, lightDir)

	hit, ok := m.Sphere.Intersect(lightRay)
	if !ok {
		return core.Vec3{}
	}

	entryPoint := lightRay.At(hit.T)
	transferDistance := point.Subtract(entryPoint).Length()
	return m.Light.Color.Multiply(stepSize * m.transfer(transferDistance))
}

func (m *VolumeMarcher) marchForward(entry, exit core.Vec3) core.Vec3 {
	var result core.Vec3
	transmission := float32(1.0)

	span := exit.Subtract(entry)
	stepSize := span.Length() / float32(m.Steps)
	stepDir := span.Divide(float32(m.Steps))
	current := entry.Add(stepDir.Multiply(0.5))

	attenuation := m.transfer(stepSize)

	for i := 0; i < m.Steps; i++ {
		scattered := m.inScatter(current, stepSize)
		transmission *= attenuation
		result = result.Add(scattered.Multiply(transmission))
		current = current.Add(stepDir)
	}

	return m.Background.Multiply(transmission).Add(result)
}

func (m *VolumeMarcher) marchBackward(entry, exit core.Vec3) core.Vec3 {
	result := m.Sphere.Material().Color
	transmission := float32(1.0)

	span := entry.Subtract(exit)
	stepSize := span.Length() / float32(m.Steps)
	stepDir := span.Divide(float32(m.Steps))
	current := exit.Add(stepDir.Multiply(0.5))

	attenuation := m.transfer(stepSize)

	for i := 0; i < m.Steps; i++ {
		scattered := m.inScatter(current, stepSize)
		transmission *= attenuation
		result = result.Add(scattered).Multiply(attenuation)
		current = current.Add(stepDir)
	}

	return m.Background.Multiply(transmission).Add(result)
}

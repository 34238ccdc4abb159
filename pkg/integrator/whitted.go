// Package integrator contains the shading evaluators: Whitted recursion,
// the one-bounce MIS path estimator, the textured Blinn-Phong pass, and the
// volumetric single-scattering ray marchers.
package integrator

import (
	"math/rand"

	"github.com/chewxy/math32"

	"github.com/HuynhNguyenPhuc/laurel/pkg/core"
	"github.com/HuynhNguyenPhuc/laurel/pkg/material"
	"github.com/HuynhNguyenPhuc/laurel/pkg/optics"
	"github.com/HuynhNguyenPhuc/laurel/pkg/scene"
)

const (
	// Origin offset for reflection and refraction rays
	recursionBias = 1e-3
	// Origin offset for shadow rays
	shadowBias = 1e-4
)

// Whitted evaluates radiance by classic recursive ray tracing: perfect
// mirrors and dielectrics recurse, matte surfaces gather direct lighting
// with shadow rays.
type Whitted struct {
	scene      *scene.Scene
	maxBounces int
}

// NewWhitted creates a Whitted integrator over the given scene
func NewWhitted(sc *scene.Scene, maxBounces int) *Whitted {
	return &Whitted{scene: sc, maxBounces: maxBounces}
}

// Li returns the radiance arriving along the ray
func (w *Whitted) Li(ray core.Ray, _ *rand.Rand) core.Vec3 {
	return w.cast(ray, 0)
}

func (w *Whitted) cast(ray core.Ray, depth int) core.Vec3 {
	if depth > w.maxBounces {
		return w.scene.Background
	}

	hit, prim, ok := w.scene.Tree.NearestHit(ray)
	if !ok {
		return w.scene.Background
	}

	point := ray.At(hit.T)
	normal := prim.NormalAt(point, hit)
	mat := prim.Material()

	switch mat.Kind {
	case material.Mirror:
		reflected := optics.Reflect(ray.Direction, normal)
		return w.cast(core.NewRay(point.Add(normal.Multiply(recursionBias)), reflected), depth+1)

	case material.Dielectric:
		reflected := optics.Reflect(ray.Direction, normal)
		reflectedColor := w.cast(core.NewRay(point.Add(normal.Multiply(recursionBias)), reflected), depth+1)

		var refractedColor core.Vec3
		refracted, inside := optics.Refract(ray.Direction, normal, mat.IOR)
		if !refracted.IsZero() {
			bias := normal.Multiply(recursionBias)
			if !inside {
				bias = bias.Negate()
			}
			refractedColor = w.cast(core.NewRay(point.Add(bias), refracted), depth+1)
		}

		kr := optics.Fresnel(ray.Direction, normal, mat.IOR)
		return reflectedColor.Multiply(kr).Add(refractedColor.Multiply(1 - kr))

	default:
		return w.shadeMatte(ray, point, normal, mat)
	}
}

// shadeMatte accumulates per-light diffuse and specular terms, skipping
// lights whose shadow ray is blocked before reaching them
func (w *Whitted) shadeMatte(ray core.Ray, point, normal core.Vec3, mat *material.Material) core.Vec3 {
	var color core.Vec3

	for _, light := range w.scene.Lights {
		toLight := light.Position.Subtract(point)
		lightDir := toLight.Normalize()
		lightDist2 := toLight.Dot(toLight)

		shadowRay := core.NewRay(point.Add(normal.Multiply(shadowBias)), lightDir)
		if sHit, _, blocked := w.scene.Tree.NearestHit(shadowRay); blocked && sHit.T*sHit.T < lightDist2 {
			continue
		}

		diffuse := mat.Color.Multiply(mat.KD * light.Intensity * math32.Max(0, lightDir.Dot(normal)))

		reflectedDir := optics.Reflect(ray.Direction, normal)
		specAngle := math32.Max(0, reflectedDir.Dot(lightDir.Negate()))
		specular := core.NewVec3(1, 1, 1).Multiply(mat.KS * light.Intensity * math32.Pow(specAngle, mat.Shininess))

		color = color.Add(diffuse).Add(specular)
	}
	return color
}

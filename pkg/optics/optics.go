// Package optics provides the reflection, refraction, and Fresnel kernels
// shared by the shading integrators.
package optics

import (
	"github.com/chewxy/math32"

	"github.com/HuynhNguyenPhuc/laurel/pkg/core"
)

// Reflect returns the unit reflection of incident about normal.
// Both inputs are expected to be unit length.
func Reflect(incident, normal core.Vec3) core.Vec3 {
	return incident.Subtract(normal.Multiply(2 * incident.Dot(normal))).Normalize()
}

// Refract bends incident through a surface with the given material index of
// refraction, following Snell's law. The inside flag reports that the ray was
// exiting the medium: the refracted ray then leaves on the side the given
// normal points to, so the caller offsets its origin by +N·ε instead of -N·ε.
// Total internal reflection returns the zero vector.
func Refract(incident, normal core.Vec3, ior float32) (refracted core.Vec3, inside bool) {
	c := -incident.Dot(normal)
	eta := ior
	if c < 0 {
		// Exiting the medium
		normal = normal.Negate()
		c = -c
		eta = 1.0 / ior
		inside = true
	}

	sin2T := (1.0 - c*c) / (eta * eta)
	if sin2T > 1.0 {
		return core.Vec3{}, inside
	}

	cosT := math32.Sqrt(1.0 - sin2T)
	refracted = incident.Divide(eta).Add(normal.Multiply(c/eta - cosT))
	return refracted, inside
}

// Fresnel returns the unpolarized reflectance for the incident direction,
// averaging the s- and p-polarized terms. Total internal reflection yields 1.
func Fresnel(incident, normal core.Vec3, ior float32) float32 {
	cosI := incident.Dot(normal)
	if cosI > 1 {
		cosI = 1
	} else if cosI < -1 {
		cosI = -1
	}

	etaI, etaT := float32(1.0), ior
	if cosI > 0 {
		etaI, etaT = etaT, etaI
	}

	sinT := etaI / etaT * math32.Sqrt(math32.Max(0, 1.0-cosI*cosI))
	if sinT >= 1.0 {
		return 1.0
	}

	cosT := math32.Sqrt(math32.Max(0, 1.0-sinT*sinT))
	cosI = math32.Abs(cosI)
	rs := (etaT*cosI - etaI*cosT) / (etaT*cosI + etaI*cosT)
	rp := (etaI*cosI - etaT*cosT) / (etaI*cosI + etaT*cosT)
	return (rs*rs + rp*rp) / 2.0
}

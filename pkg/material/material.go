package material

import (
	"github.com/HuynhNguyenPhuc/laurel/pkg/core"
)

// Kind discriminates how a material responds to light
type Kind int

const (
	// Matte surfaces are shaded with diffuse and specular terms from direct lighting
	Matte Kind = iota
	// Mirror surfaces reflect incoming rays perfectly
	Mirror
	// Dielectric surfaces both reflect and refract, weighted by Fresnel
	Dielectric
)

// Material bundles the shading coefficients for a primitive. Materials are
// owned by the scene and read-only during rendering.
type Material struct {
	Color     core.Vec3 // Base color, RGB in [0,1]
	Albedo    float32   // Albedo factor
	KA        float32   // Ambient coefficient
	KD        float32   // Diffuse coefficient
	KS        float32   // Specular coefficient
	KT        float32   // Transparency coefficient
	IOR       float32   // Index of refraction
	Shininess float32   // Specular exponent
	Kind      Kind
	Texture   *Texture // Optional base color texture, sampled via triangle UVs
}

// NewMaterial creates a material with the given shading coefficients
func NewMaterial(color core.Vec3, albedo, kA, kD, kS, kT, ior, shininess float32, kind Kind) *Material {
	return &Material{
		Color:     color,
		Albedo:    albedo,
		KA:        kA,
		KD:        kD,
		KS:        kS,
		KT:        kT,
		IOR:       ior,
		Shininess: shininess,
		Kind:      kind,
	}
}

// NewMatte creates a diffuse/specular material
func NewMatte(color core.Vec3, kA, kD, kS, shininess float32) *Material {
	return NewMaterial(color, 1.0, kA, kD, kS, 0.0, 1.0, shininess, Matte)
}

// NewMirror creates a perfectly reflective material
func NewMirror(color core.Vec3) *Material {
	return NewMaterial(color, 1.0, 0.3, 0.5, 0.5, 0.0, 1.0, 32.0, Mirror)
}

// NewDielectric creates a transparent material with the given index of refraction
func NewDielectric(color core.Vec3, ior float32) *Material {
	return NewMaterial(color, 1.0, 0.3, 0.5, 0.5, 0.8, ior, 32.0, Dielectric)
}

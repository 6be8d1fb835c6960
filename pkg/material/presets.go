package material

import "github.com/lumen-render/lumen/pkg/core"

// Plaster is a matte off-white surface with a soft highlight
func Plaster() Material {
	return Material{
		Ambient:          core.NewVec3(0.1, 0.1, 0.1),
		Diffuse:          core.NewVec3(0.8, 0.8, 0.8),
		Specular:         core.NewVec3(0.8, 0.8, 0.8),
		SpecularExponent: 0,
		OpticalDensity:   1.0,
	}
}

// Luminous is a pure emitter: it scatters nothing and only contributes
// its emissive color
func Luminous() Material {
	return Material{
		Emissive:       core.NewVec3(1, 1, 1),
		OpticalDensity: 1.0,
	}
}

// Mirror is a sharp reflector; specular components above one model a
// highlight brighter than the incident estimate
func Mirror() Material {
	return Material{
		Specular:         core.NewVec3(2, 2, 2),
		SpecularExponent: 1000,
		OpticalDensity:   1.0,
	}
}

// Glass is mostly transmissive with a sharp reflective component
func Glass() Material {
	return Material{
		Specular:           core.NewVec3(2, 2, 2),
		TransmissionFilter: core.NewVec3(1, 1, 1),
		Dissolve:           0.9,
		SpecularExponent:   1000,
		OpticalDensity:     1.5,
	}
}

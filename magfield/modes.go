package magfield

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat/distuv"
)

// Mode is one plane wave of the superposition.
type Mode struct {
	K            float64
	Direction    r3.Vec // Unit propagation direction
	Polarization r3.Vec // Unit vector transverse to Direction
	Phase        float64
	Amplitude    float64
}

// UniformSource provides uniform deviates over [min, max).
type UniformSource interface {
	Uniform(min, max float64) float64
}

const pcgStream = 0x9e3779b97f4a7c15

type pcgSource struct {
	src rand.Source
}

// NewUniformSource returns a PCG backed source. Seed 0 is seeded from
// entropy, any other seed is deterministic.
func NewUniformSource(seed int64) UniformSource {
	if seed == 0 {
		return &pcgSource{src: rand.NewPCG(rand.Uint64(), rand.Uint64())}
	}
	return &pcgSource{src: rand.NewPCG(uint64(seed), pcgStream)}
}

func (ps *pcgSource) Uniform(min, max float64) float64 {
	return distuv.Uniform{Min: min, Max: max, Src: ps.src}.Rand()
}

// GenerateModes draws an isotropic direction, a transverse polarization
// rotated by a random angle about the direction, and a random phase for
// each wavenumber of sp. Four deviates are consumed per mode, in the order
// phi, cos(theta), alpha, beta.
func GenerateModes(sp Spectrum, src UniformSource) (modes []Mode) {
	modes = make([]Mode, len(sp.K))
	for i := range modes {
		var (
			phi      = src.Uniform(-math.Pi, math.Pi)
			costheta = src.Uniform(-1, 1)
			alpha    = src.Uniform(0, 2*math.Pi)
			beta     = src.Uniform(0, 2*math.Pi)
			sintheta = math.Sqrt(1 - costheta*costheta)
		)
		sinphi, cosphi := math.Sincos(phi)
		sinalpha, cosalpha := math.Sincos(alpha)
		modes[i] = Mode{
			K: sp.K[i],
			Direction: r3.Vec{
				X: sintheta * cosphi,
				Y: sintheta * sinphi,
				Z: costheta,
			},
			Polarization: r3.Vec{
				X: costheta*cosphi*cosalpha + sinphi*sinalpha,
				Y: costheta*sinphi*cosalpha - cosphi*sinalpha,
				Z: -sintheta * cosalpha,
			},
			Phase:     beta,
			Amplitude: sp.Amplitude[i],
		}
	}
	return
}

package magfield

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/turbfield/utils"
)

// Spectrum holds the wavenumber grid and the normalized mode amplitudes.
type Spectrum struct {
	K, Amplitude []float64
}

// SampleSpectrum places p.Nm wavenumbers log-uniformly over [Kmin, Kmax]
// and weights them by G(k) = k^q / (1+k^2)^((s+q)/2), normalized so that
// sum(A^2) = 2*Brms^2.
//
// Under WeightingBendover the bend-over length multiplies k only inside the
// weight, never the k later used in the plane wave argument. The asymmetry
// is intentional and must be kept.
func SampleSpectrum(p Parameters) (sp Spectrum, err error) {
	if err = p.Validate(); err != nil {
		return
	}
	var (
		Nm = p.Nm
		w  = make([]float64, Nm)
	)
	sp.K = utils.Logspace(math.Log10(p.Kmin), math.Log10(p.Kmax), Nm)
	switch p.Weighting {
	case WeightingBendover:
		// (k1-k0)/k1 times k is the log bin width at k
		dk0 := (sp.K[1] - sp.K[0]) / sp.K[1]
		for i, k := range sp.K {
			k *= p.Bendover
			w[i] = gk(k, p.S, p.Q) * dk0 * k * k * k
		}
	case WeightingClassic:
		alpha := math.Pow(p.Kmax/p.Kmin, 1./float64(Nm-1))
		for i, k := range sp.K {
			w[i] = gk(k, p.S, p.Q) * k * (alpha - 1)
		}
	}
	sum := floats.Sum(w)
	if !(sum > 0) || math.IsInf(sum, 0) {
		err = fmt.Errorf("%w: spectral weights sum to %g over k in [%g, %g]",
			ErrInvalidSpectrum, sum, p.Kmin, p.Kmax)
		return
	}
	floats.Scale(2./sum, w)
	sp.Amplitude = w
	for i := range sp.Amplitude {
		sp.Amplitude[i] = math.Sqrt(sp.Amplitude[i]) * p.Brms
	}
	return
}

func gk(k, s, q float64) float64 {
	return math.Pow(k, q) / math.Pow(1+k*k, (s+q)/2)
}

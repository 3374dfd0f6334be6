package magfield

import (
	"fmt"
	"math"
	"strings"
)

type Weighting uint8

const (
	// WeightingBendover scales k by the bend-over length inside G(k) and
	// applies a log-bin width and a k^2 volume element.
	WeightingBendover Weighting = iota
	// WeightingClassic uses G(k) * dk on the raw wavenumber grid.
	WeightingClassic
)

var WeightingNames = map[string]Weighting{
	"bendover": WeightingBendover,
	"classic":  WeightingClassic,
}

func NewWeighting(label string) (w Weighting, err error) {
	var ok bool
	if w, ok = WeightingNames[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("%w: unknown weighting %q", ErrInvalidParameter, label)
	}
	return
}

func (w Weighting) String() string {
	switch w {
	case WeightingBendover:
		return "bendover"
	case WeightingClassic:
		return "classic"
	}
	return fmt.Sprintf("Weighting(%d)", uint8(w))
}

// Parameters fully determine a TD13 realization. A zero Seed draws the
// random source from entropy; any other value makes the realization
// reproducible.
type Parameters struct {
	Brms       float64
	Kmin, Kmax float64
	S, Q       float64 // Spectral indices, Q is the low wavenumber index
	Bendover   float64 // Bend-over length, used only in the spectral weights
	Nm         int
	Seed       int64
	Weighting  Weighting
}

// ParametersFromScales builds Parameters from the outer and inner scales,
// kmin = 1/Lmax and kmax = 1/Lmin.
func ParametersFromScales(Brms, Lmin, Lmax, s, q, bendover float64, Nm int, seed int64) Parameters {
	return Parameters{
		Brms:     Brms,
		Kmin:     1. / Lmax,
		Kmax:     1. / Lmin,
		S:        s,
		Q:        q,
		Bendover: bendover,
		Nm:       Nm,
		Seed:     seed,
	}
}

func (p Parameters) Lmin() float64 { return 1. / p.Kmax }

func (p Parameters) Lmax() float64 { return 1. / p.Kmin }

func (p Parameters) Validate() (err error) {
	finite := func(vals ...float64) bool {
		for _, v := range vals {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
		return true
	}
	switch {
	case !finite(p.Brms, p.Kmin, p.Kmax, p.S, p.Q, p.Bendover):
		err = fmt.Errorf("%w: non-finite value in %+v", ErrInvalidParameter, p)
	case p.Kmin > p.Kmax:
		err = fmt.Errorf("%w: kmin %g > kmax %g", ErrInvalidSpectrum, p.Kmin, p.Kmax)
	case p.Nm <= 1:
		err = fmt.Errorf("%w: need at least two wave modes to build the k grid, have %d",
			ErrInsufficientModes, p.Nm)
	case p.Kmin <= 0:
		err = fmt.Errorf("%w: kmin must be positive, have %g", ErrInvalidParameter, p.Kmin)
	case p.Brms < 0:
		err = fmt.Errorf("%w: Brms must be non-negative, have %g", ErrInvalidParameter, p.Brms)
	case p.Weighting == WeightingBendover && p.Bendover <= 0:
		err = fmt.Errorf("%w: bend-over scale must be positive, have %g", ErrInvalidParameter, p.Bendover)
	case p.Weighting > WeightingClassic:
		err = fmt.Errorf("%w: unknown weighting %v", ErrInvalidParameter, p.Weighting)
	}
	return
}

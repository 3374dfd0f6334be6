package magfield

import (
	"fmt"
	"math"
	"sync"

	"github.com/ajroetker/go-highway/hwy"
	"gonum.org/v1/gonum/spatial/r3"
)

// MagneticField is evaluated once per propagation step.
type MagneticField interface {
	GetField(pos r3.Vec) r3.Vec
}

// UniformField is the same vector everywhere.
type UniformField struct {
	B r3.Vec
}

func (uf UniformField) GetField(r3.Vec) r3.Vec { return uf.B }

/*
TD13Field is a turbulent field realization after Tautz & Dosch (2013): a sum
of Nm plane waves with log-spaced wavenumbers, isotropic directions and
transverse polarizations,

	B(x) = sum_i A_i * xi_i * cos(k_i * (kappa_i . x) + beta_i)

The mode set is built once and never modified, so GetField is safe for
concurrent use.
*/
type TD13Field struct {
	params  Parameters
	modes   []Mode
	store   *ModeStore
	scratch sync.Pool // *[]float64 holding the phase and cosine columns
}

func NewTD13Field(p Parameters) (f *TD13Field, err error) {
	var (
		sp    Spectrum
		store *ModeStore
	)
	if sp, err = SampleSpectrum(p); err != nil {
		return nil, fmt.Errorf("TD13Field: %w", err)
	}
	modes := GenerateModes(sp, NewUniformSource(p.Seed))
	if store, err = NewModeStore(modes); err != nil {
		return nil, fmt.Errorf("TD13Field: %w", err)
	}
	f = &TD13Field{
		params: p,
		modes:  modes,
		store:  store,
	}
	return
}

func NewTD13FieldFromScales(Brms, Lmin, Lmax, s, q, bendover float64,
	Nm int, seed int64) (f *TD13Field, err error) {
	return NewTD13Field(ParametersFromScales(Brms, Lmin, Lmax, s, q, bendover, Nm, seed))
}

func MustNewTD13Field(p Parameters) (f *TD13Field) {
	var err error
	if f, err = NewTD13Field(p); err != nil {
		panic(err)
	}
	return
}

// Parameters returns the settings the field was realized from.
func (f *TD13Field) Parameters() Parameters { return f.params }

func (f *TD13Field) NumModes() int { return len(f.modes) }

// Modes returns a copy of the realized mode set.
func (f *TD13Field) Modes() (modes []Mode) {
	modes = make([]Mode, len(f.modes))
	copy(modes, f.modes)
	return
}

func (f *TD13Field) GetField(pos r3.Vec) r3.Vec {
	return f.GetFieldVectorized(pos)
}

// GetFieldScalar sums the modes one at a time.
func (f *TD13Field) GetFieldScalar(pos r3.Vec) (B r3.Vec) {
	for _, m := range f.modes {
		z := r3.Dot(pos, m.Direction)
		B = r3.Add(B, r3.Scale(m.Amplitude*math.Cos(m.K*z+m.Phase), m.Polarization))
	}
	return
}

// GetFieldVectorized runs the mode sum in three batched passes over the
// padded store: the phase k*(kappa . x)+beta into a scratch column, its
// cosine, then the amplitude weighted polarization accumulated per lane.
func (f *TD13Field) GetFieldVectorized(pos r3.Vec) (B r3.Vec) {
	var (
		ms    = f.store
		n     = ms.padded
		lanes = hwy.MaxLanes[float64]()
		buf   = f.getScratch(2*n + lanes)
		arg   = (*buf)[:n]
		c     = (*buf)[n : 2*n]
	)
	phaseBatch(pos, ms.col(colDirX), ms.col(colDirY), ms.col(colDirZ),
		ms.col(colK), ms.col(colPhase), arg)
	cosBatch(arg, c)
	B = sumBatch(ms.col(colAmplitude), c,
		ms.col(colPolX), ms.col(colPolY), ms.col(colPolZ), (*buf)[2*n:2*n+lanes])
	f.scratch.Put(buf)
	return
}

func (f *TD13Field) getScratch(size int) *[]float64 {
	if buf, ok := f.scratch.Get().(*[]float64); ok && len(*buf) == size {
		return buf
	}
	buf := make([]float64, size)
	return &buf
}

// CorrelationLength follows Harari et al., JHEP03(2002)045:
//
//	Lc = Lmax/2 * (s-1)/s * (1 - (Lmin/Lmax)^s) / (1 - (Lmin/Lmax)^(s-1))
//
// The removable singularities at s = 0, s = 1 and Lmin = Lmax return their
// limits.
func (f *TD13Field) CorrelationLength() float64 {
	return CorrelationLength(f.params.Lmin(), f.params.Lmax(), f.params.S)
}

func CorrelationLength(Lmin, Lmax, s float64) (Lc float64) {
	const tol = 1.e-12
	var (
		r = Lmin / Lmax
	)
	Lc = Lmax / 2
	switch {
	case math.Abs(1-r) < tol:
		// (1-r^s)/(1-r^(s-1)) -> s/(s-1)
	case math.Abs(s-1) < tol:
		Lc *= (1 - r) / -math.Log(r)
	case math.Abs(s) < tol:
		Lc *= math.Log(r) * r / (r - 1)
	default:
		Lc *= (s - 1) / s
		Lc *= 1 - math.Pow(r, s)
		Lc /= 1 - math.Pow(r, s-1)
	}
	return
}

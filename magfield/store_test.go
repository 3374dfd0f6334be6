package magfield

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/go-highway/hwy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestModeStore(t *testing.T) {
	for Nm := 1; Nm <= 13; Nm++ {
		modes := make([]Mode, Nm)
		for i := range modes {
			f := float64(i + 1)
			modes[i] = Mode{
				K:            f,
				Direction:    r3.Vec{X: f + 0.1, Y: f + 0.2, Z: f + 0.3},
				Polarization: r3.Vec{X: -f, Y: -2 * f, Z: -3 * f},
				Phase:        0.5 * f,
				Amplitude:    10 * f,
			}
		}
		ms, err := NewModeStore(modes)
		require.NoError(t, err)
		assert.Equal(t, Nm, ms.Len())
		assert.Equal(t, 0, ms.Padded()%LaneWidth)
		assert.True(t, ms.Padded() >= Nm && ms.Padded() < Nm+LaneWidth)
		assert.True(t, ms.Offset() >= 0 && ms.Offset() < LaneWidth)
		assert.True(t, ms.Aligned())
		assert.Equal(t, int(nColumns)*ms.Padded(), len(ms.data))
		for i, m := range modes {
			assert.Equal(t, m.Polarization.X, ms.col(colPolX)[i])
			assert.Equal(t, m.Polarization.Y, ms.col(colPolY)[i])
			assert.Equal(t, m.Polarization.Z, ms.col(colPolZ)[i])
			assert.Equal(t, m.Direction.X, ms.col(colDirX)[i])
			assert.Equal(t, m.Direction.Y, ms.col(colDirY)[i])
			assert.Equal(t, m.Direction.Z, ms.col(colDirZ)[i])
			assert.Equal(t, m.Amplitude, ms.col(colAmplitude)[i])
			assert.Equal(t, m.K, ms.col(colK)[i])
			assert.Equal(t, m.Phase, ms.col(colPhase)[i])
		}
		// Padding never contributes
		for i := Nm; i < ms.Padded(); i++ {
			assert.Equal(t, 0., ms.col(colAmplitude)[i])
		}
	}
	{
		_, err := NewModeStore(nil)
		assert.True(t, errors.Is(err, ErrInsufficientModes))
	}
}

func TestBatchKernels(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	column := func(n int, lo, hi float64) (c []float64) {
		c = make([]float64, n)
		for i := range c {
			c[i] = lo + (hi-lo)*rng.Float64()
		}
		return
	}
	// Lengths around every lane count hit both the full and the tail passes
	for n := 1; n <= 17; n++ {
		var (
			kx, ky, kz = column(n, -1, 1), column(n, -1, 1), column(n, -1, 1)
			k, beta    = column(n, 0.1, 10), column(n, 0, 2*math.Pi)
			amp        = column(n, 0, 1)
			xi0, xi1   = column(n, -1, 1), column(n, -1, 1)
			xi2        = column(n, -1, 1)
			pos        = r3.Vec{X: 1.5, Y: -0.25, Z: 3}
			arg        = make([]float64, n)
			c          = make([]float64, n)
			buf        = make([]float64, hwy.MaxLanes[float64]())
		)
		phaseBatch(pos, kx, ky, kz, k, beta, arg)
		cosBatch(arg, c)
		var want r3.Vec
		for i := 0; i < n; i++ {
			a := k[i]*(pos.X*kx[i]+pos.Y*ky[i]+pos.Z*kz[i]) + beta[i]
			assert.InDelta(t, a, arg[i], 1.e-12)
			assert.InDelta(t, math.Cos(arg[i]), c[i], 1.e-13)
			want = r3.Add(want, r3.Scale(amp[i]*c[i], r3.Vec{X: xi0[i], Y: xi1[i], Z: xi2[i]}))
		}
		got := sumBatch(amp, c, xi0, xi1, xi2, buf)
		assert.InDelta(t, want.X, got.X, 1.e-12)
		assert.InDelta(t, want.Y, got.Y, 1.e-12)
		assert.InDelta(t, want.Z, got.Z, 1.e-12)
	}
	{ // Zero amplitude entries add nothing
		c := []float64{1, 1, 1, 1, 1}
		one := []float64{1, 1, 1, 1, 1}
		buf := make([]float64, hwy.MaxLanes[float64]())
		got := sumBatch([]float64{1, 2, 0, 0, 0}, c, one, one, one, buf)
		assert.Equal(t, r3.Vec{X: 3, Y: 3, Z: 3}, got)
	}
}

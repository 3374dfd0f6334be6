package magfield

import (
	"github.com/ajroetker/go-highway/hwy"
	"github.com/ajroetker/go-highway/hwy/contrib/algo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// phaseBatch writes arg[i] = k[i]*(kappa_i . pos) + beta[i] over the SoA
// direction columns.
func phaseBatch(pos r3.Vec, kx, ky, kz, k, beta, arg []float64) {
	size := min(len(kx), len(ky), len(kz), len(k), len(beta), len(arg))

	vPx := hwy.Set(pos.X)
	vPy := hwy.Set(pos.Y)
	vPz := hwy.Set(pos.Z)

	hwy.ProcessWithTail[float64](size,
		func(offset int) {
			z := hwy.Mul(vPx, hwy.Load(kx[offset:]))
			z = hwy.FMA(vPy, hwy.Load(ky[offset:]), z)
			z = hwy.FMA(vPz, hwy.Load(kz[offset:]), z)
			a := hwy.FMA(hwy.Load(k[offset:]), z, hwy.Load(beta[offset:]))
			hwy.Store(a, arg[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[float64](count)
			z := hwy.Mul(vPx, hwy.MaskLoad(mask, kx[offset:]))
			z = hwy.FMA(vPy, hwy.MaskLoad(mask, ky[offset:]), z)
			z = hwy.FMA(vPz, hwy.MaskLoad(mask, kz[offset:]), z)
			a := hwy.FMA(hwy.MaskLoad(mask, k[offset:]), z, hwy.MaskLoad(mask, beta[offset:]))
			hwy.MaskStore(mask, a, arg[offset:])
		},
	)
}

// cosBatch overwrites c with cos(arg).
func cosBatch(arg, c []float64) {
	algo.CosTransform64(arg, c)
}

// sumBatch accumulates amp[i]*c[i]*xi_i into one vector per component and
// reduces each across its lanes. buf needs hwy.MaxLanes[float64]() entries.
func sumBatch(amp, c, xi0, xi1, xi2, buf []float64) r3.Vec {
	size := min(len(amp), len(c), len(xi0), len(xi1), len(xi2))

	acc0 := hwy.Set(0.)
	acc1 := hwy.Set(0.)
	acc2 := hwy.Set(0.)

	hwy.ProcessWithTail[float64](size,
		func(offset int) {
			mag := hwy.Mul(hwy.Load(amp[offset:]), hwy.Load(c[offset:]))
			acc0 = hwy.FMA(mag, hwy.Load(xi0[offset:]), acc0)
			acc1 = hwy.FMA(mag, hwy.Load(xi1[offset:]), acc1)
			acc2 = hwy.FMA(mag, hwy.Load(xi2[offset:]), acc2)
		},
		func(offset, count int) {
			mask := hwy.TailMask[float64](count)
			mag := hwy.Mul(hwy.MaskLoad(mask, amp[offset:]), hwy.MaskLoad(mask, c[offset:]))
			acc0 = hwy.FMA(mag, hwy.MaskLoad(mask, xi0[offset:]), acc0)
			acc1 = hwy.FMA(mag, hwy.MaskLoad(mask, xi1[offset:]), acc1)
			acc2 = hwy.FMA(mag, hwy.MaskLoad(mask, xi2[offset:]), acc2)
		},
	)
	return r3.Vec{
		X: reduceLanes(acc0, buf),
		Y: reduceLanes(acc1, buf),
		Z: reduceLanes(acc2, buf),
	}
}

func reduceLanes(v hwy.Vec[float64], buf []float64) float64 {
	hwy.Store(v, buf)
	return floats.Sum(buf)
}

package utils

import (
	"math"
)

// Logspace returns N values spaced uniformly in log10 between 10^start and
// 10^stop, both ends included.
func Logspace(start, stop float64, N int) (v []float64) {
	var (
		delta = stop - start
	)
	v = make([]float64, N)
	if N == 1 {
		v[0] = math.Pow(10, start)
		return
	}
	for i := range v {
		v[i] = math.Pow(10, float64(i)/float64(N-1)*delta+start)
	}
	return
}

// Linspace returns N values spaced uniformly between start and stop, both
// ends included.
func Linspace(start, stop float64, N int) (v []float64) {
	v = make([]float64, N)
	if N == 1 {
		v[0] = start
		return
	}
	for i := range v {
		v[i] = start + float64(i)*(stop-start)/float64(N-1)
	}
	return
}

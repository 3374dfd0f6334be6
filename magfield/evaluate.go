package magfield

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/turbfield/utils"
)

// EvaluateMany evaluates field at every position, splitting the positions
// over NP goroutines. The field must be safe for concurrent reads.
func EvaluateMany(field MagneticField, positions []r3.Vec, NP int) (B []r3.Vec) {
	B = make([]r3.Vec, len(positions))
	if len(positions) == 0 {
		return
	}
	pm := utils.NewPartitionMap(NP, len(positions))
	pm.Run(func(bn, kMin, kMax int) {
		for k := kMin; k < kMax; k++ {
			B[k] = field.GetField(positions[k])
		}
	})
	return
}

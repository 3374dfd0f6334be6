package cmd

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/turbfield/magfield"
	"github.com/notargets/turbfield/utils"
)

type FieldSample struct {
	X  float64 `csv:"x"`
	Y  float64 `csv:"y"`
	Z  float64 `csv:"z"`
	Bx float64 `csv:"bx"`
	By float64 `csv:"by"`
	Bz float64 `csv:"bz"`
	B  float64 `csv:"b"`
}

// SampleCmd evaluates the field along a straight line
var SampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Evaluate the field at evenly spaced points on a line segment",
	Long: `
Evaluates the field at N points from --from to --to inclusive and writes
x,y,z,bx,by,bz,b as CSV.

turbfield sample --from 0,0,0 --to 100,0,0 -n 1000 -o line.csv`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			from, to r3.Vec
			f        *magfield.TD13Field
		)
		N, _ := cmd.Flags().GetInt("points")
		NP, _ := cmd.Flags().GetInt("parallel")
		scalar, _ := cmd.Flags().GetBool("scalar")
		outFile, _ := cmd.Flags().GetString("output")
		if from, err = vecFlag(cmd.Flags(), "from"); err != nil {
			return
		}
		if to, err = vecFlag(cmd.Flags(), "to"); err != nil {
			return
		}
		if N < 1 {
			return fmt.Errorf("need at least one point, have %d", N)
		}
		if f, err = buildField(viper.GetViper()); err != nil {
			return
		}
		var field magfield.MagneticField = f
		if scalar {
			field = scalarField{f}
		}
		start := time.Now()
		samples := SampleLine(field, from, to, N, NP)
		slog.Info("sampled", "points", N, "parallel", NP, "scalar", scalar,
			"elapsed", time.Since(start))
		if err = writeCSV(cmd.OutOrStdout(), outFile, samples); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(SampleCmd)
	SampleCmd.Flags().Float64Slice("from", []float64{0, 0, 0}, "start point x,y,z")
	SampleCmd.Flags().Float64Slice("to", []float64{10, 0, 0}, "end point x,y,z")
	SampleCmd.Flags().IntP("points", "n", 101, "number of sample points")
	SampleCmd.Flags().IntP("parallel", "p", runtime.NumCPU(), "number of goroutines evaluating the field")
	SampleCmd.Flags().Bool("scalar", false, "use the mode by mode evaluation instead of the batched one")
	SampleCmd.Flags().StringP("output", "o", "-", "CSV output file, - for stdout")
}

// scalarField routes GetField to the mode by mode path.
type scalarField struct {
	f *magfield.TD13Field
}

func (sf scalarField) GetField(pos r3.Vec) r3.Vec { return sf.f.GetFieldScalar(pos) }

func SampleLine(field magfield.MagneticField, from, to r3.Vec, N, NP int) (samples []*FieldSample) {
	var (
		t   = utils.Linspace(0, 1, N)
		pos = make([]r3.Vec, N)
	)
	for i := range pos {
		pos[i] = r3.Add(from, r3.Scale(t[i], r3.Sub(to, from)))
	}
	B := magfield.EvaluateMany(field, pos, NP)
	samples = make([]*FieldSample, N)
	for i := range samples {
		samples[i] = &FieldSample{
			X: pos[i].X, Y: pos[i].Y, Z: pos[i].Z,
			Bx: B[i].X, By: B[i].Y, Bz: B[i].Z,
			B: r3.Norm(B[i]),
		}
	}
	return
}

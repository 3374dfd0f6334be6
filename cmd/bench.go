package cmd

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"time"

	"github.com/ajroetker/go-highway/hwy"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sys/cpu"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/turbfield/magfield"
	"github.com/notargets/turbfield/utils"
)

type BenchResult struct {
	Path          string
	Evaluations   int
	Elapsed       time.Duration
	MaxDeviation  float64 // Largest component difference from the scalar path
	EvalPerSecond float64
}

// BenchCmd measures field evaluation throughput
var BenchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure field evaluation throughput of the scalar and batched paths",
	Long: `
Evaluates the field at random positions with the mode by mode path, the
batched path and the batched path spread over goroutines, and reports
evaluations per second along with the largest deviation from the scalar path.

turbfield bench --nm 1024 --evals 100000 --profile cpu`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			f *magfield.TD13Field
		)
		N, _ := cmd.Flags().GetInt("evals")
		NP, _ := cmd.Flags().GetInt("parallel")
		extent, _ := cmd.Flags().GetFloat64("extent")
		prof, _ := cmd.Flags().GetString("profile")
		profDir, _ := cmd.Flags().GetString("profilePath")
		if N < 1 {
			return fmt.Errorf("need at least one evaluation, have %d", N)
		}
		switch prof {
		case "":
		case "cpu":
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(profDir)).Stop()
		case "mem":
			defer profile.Start(profile.MemProfile, profile.ProfilePath(profDir)).Stop()
		default:
			return fmt.Errorf("unknown profile %q, use cpu or mem", prof)
		}
		if f, err = buildField(viper.GetViper()); err != nil {
			return
		}
		slog.Info("cpu features", "arch", runtime.GOARCH,
			"avx", cpu.X86.HasAVX, "avx2", cpu.X86.HasAVX2, "fma", cpu.X86.HasFMA,
			"asimd", cpu.ARM64.HasASIMD, "lane_width", magfield.LaneWidth,
			"simd_lanes", hwy.MaxLanes[float64]())
		for _, res := range RunBench(f, N, NP, extent) {
			slog.Info("bench", "path", res.Path, "evaluations", res.Evaluations,
				"elapsed", res.Elapsed, "eval_per_second", fmt.Sprintf("%.4g", res.EvalPerSecond),
				"max_deviation", res.MaxDeviation)
		}
		slog.Info("memory", "usage", utils.ReadMemUsage().String())
		return
	},
}

func init() {
	rootCmd.AddCommand(BenchCmd)
	BenchCmd.Flags().IntP("evals", "n", 100000, "number of field evaluations per path")
	BenchCmd.Flags().IntP("parallel", "p", runtime.NumCPU(), "goroutines for the parallel path")
	BenchCmd.Flags().Float64("extent", 100, "positions are drawn from [-extent, extent]^3")
	BenchCmd.Flags().String("profile", "", "write a cpu or mem profile")
	BenchCmd.Flags().String("profilePath", ".", "directory for profile output")
}

// RunBench times each evaluation path over the same N random positions. It
// returns nothing when N < 1.
func RunBench(f *magfield.TD13Field, N, NP int, extent float64) (results []BenchResult) {
	if N < 1 {
		return
	}
	var (
		pos = make([]r3.Vec, N)
		ref = make([]r3.Vec, N)
		got = make([]r3.Vec, N)
		u   = magfield.NewUniformSource(1)
	)
	for i := range pos {
		pos[i] = r3.Vec{
			X: u.Uniform(-extent, extent),
			Y: u.Uniform(-extent, extent),
			Z: u.Uniform(-extent, extent),
		}
	}
	deviation := func(B []r3.Vec) (dev float64) {
		for i := range B {
			d := r3.Sub(B[i], ref[i])
			dev = math.Max(dev, math.Max(math.Abs(d.X), math.Max(math.Abs(d.Y), math.Abs(d.Z))))
		}
		return
	}
	result := func(path string, elapsed time.Duration, B []r3.Vec) BenchResult {
		return BenchResult{
			Path:          path,
			Evaluations:   N,
			Elapsed:       elapsed,
			MaxDeviation:  deviation(B),
			EvalPerSecond: float64(N) / math.Max(elapsed.Seconds(), 1.e-9),
		}
	}
	start := time.Now()
	for i := range pos {
		ref[i] = f.GetFieldScalar(pos[i])
	}
	results = append(results, result("scalar", time.Since(start), ref))

	start = time.Now()
	for i := range pos {
		got[i] = f.GetFieldVectorized(pos[i])
	}
	results = append(results, result("vectorized", time.Since(start), got))

	start = time.Now()
	par := magfield.EvaluateMany(f, pos, NP)
	results = append(results, result(fmt.Sprintf("vectorized/%d", NP), time.Since(start), par))
	return
}

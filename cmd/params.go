package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/turbfield/InputParameters"
	"github.com/notargets/turbfield/magfield"
)

// loadParameters takes the turbulence parameters from the run deck when one
// is given, otherwise from flags, environment and config file.
func loadParameters(v *viper.Viper) (p magfield.Parameters, err error) {
	var ip *InputParameters.InputParametersTD13
	if deck := v.GetString("inputConditionsFile"); len(deck) != 0 {
		var data []byte
		if data, err = os.ReadFile(deck); err != nil {
			return
		}
		ip = &InputParameters.InputParametersTD13{}
		if err = ip.Parse(data); err != nil {
			err = fmt.Errorf("parsing %s: %w", deck, err)
			return
		}
		ip.Print(os.Stderr)
	} else {
		ip = &InputParameters.InputParametersTD13{
			Brms:          v.GetFloat64("brms"),
			Lmin:          v.GetFloat64("lmin"),
			Lmax:          v.GetFloat64("lmax"),
			SpectralIndex: v.GetFloat64("s"),
			LowIndex:      v.GetFloat64("q"),
			Bendover:      v.GetFloat64("bendover"),
			Modes:         v.GetInt("nm"),
			Seed:          v.GetInt64("seed"),
			Weighting:     v.GetString("weighting"),
		}
	}
	if p, err = ip.Parameters(); err != nil {
		return
	}
	slog.Debug("turbulence parameters",
		"brms", p.Brms, "kmin", p.Kmin, "kmax", p.Kmax, "s", p.S, "q", p.Q,
		"bendover", p.Bendover, "nm", p.Nm, "seed", p.Seed, "weighting", p.Weighting)
	return
}

func buildField(v *viper.Viper) (f *magfield.TD13Field, err error) {
	var p magfield.Parameters
	if p, err = loadParameters(v); err != nil {
		return
	}
	if f, err = magfield.NewTD13Field(p); err != nil {
		return
	}
	slog.Info("field realized",
		"modes", f.NumModes(), "correlation_length", f.CorrelationLength())
	return
}

// vecFlag reads an x,y,z float slice flag.
func vecFlag(fs *pflag.FlagSet, name string) (v r3.Vec, err error) {
	var c []float64
	if c, err = fs.GetFloat64Slice(name); err != nil {
		return
	}
	if len(c) != 3 {
		err = fmt.Errorf("--%s needs three components, have %v", name, c)
		return
	}
	v = r3.Vec{X: c[0], Y: c[1], Z: c[2]}
	return
}

package InputParameters

import (
	"fmt"
	"io"

	"github.com/ghodss/yaml"

	"github.com/notargets/turbfield/magfield"
)

// Parameters obtained from the YAML input file. Either the length scales
// (Lmin, Lmax) or the wavenumbers (Kmin, Kmax) are given, the scales win when
// both are present.
type InputParametersTD13 struct {
	Title         string  `json:"Title"`
	Brms          float64 `json:"Brms"`
	Lmin          float64 `json:"Lmin"`
	Lmax          float64 `json:"Lmax"`
	Kmin          float64 `json:"Kmin"`
	Kmax          float64 `json:"Kmax"`
	SpectralIndex float64 `json:"SpectralIndex"`
	LowIndex      float64 `json:"LowIndex"` // q, zero unless a low wavenumber rise is wanted
	Bendover      float64 `json:"Bendover"`
	Modes         int     `json:"Modes"`
	Seed          int64   `json:"Seed"` // Zero draws the realization from entropy
	Weighting     string  `json:"Weighting"`
}

func (ip *InputParametersTD13) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParametersTD13) Parameters() (p magfield.Parameters, err error) {
	p = magfield.Parameters{
		Brms:     ip.Brms,
		Kmin:     ip.Kmin,
		Kmax:     ip.Kmax,
		S:        ip.SpectralIndex,
		Q:        ip.LowIndex,
		Bendover: ip.Bendover,
		Nm:       ip.Modes,
		Seed:     ip.Seed,
	}
	if ip.Lmin != 0 || ip.Lmax != 0 {
		if ip.Lmin <= 0 || ip.Lmax <= 0 {
			err = fmt.Errorf("%w: Lmin and Lmax must both be positive, have %g and %g",
				magfield.ErrInvalidParameter, ip.Lmin, ip.Lmax)
			return
		}
		p.Kmin, p.Kmax = 1./ip.Lmax, 1./ip.Lmin
	}
	if len(ip.Weighting) != 0 {
		if p.Weighting, err = magfield.NewWeighting(ip.Weighting); err != nil {
			return
		}
	}
	err = p.Validate()
	return
}

func (ip *InputParametersTD13) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "%8.5f\t\t= Brms\n", ip.Brms)
	if ip.Lmin != 0 || ip.Lmax != 0 {
		fmt.Fprintf(w, "[%g, %g]\t\t= [Lmin, Lmax]\n", ip.Lmin, ip.Lmax)
	} else {
		fmt.Fprintf(w, "[%g, %g]\t\t= [Kmin, Kmax]\n", ip.Kmin, ip.Kmax)
	}
	fmt.Fprintf(w, "%8.5f\t\t= Spectral Index\n", ip.SpectralIndex)
	fmt.Fprintf(w, "%8.5f\t\t= Low Index\n", ip.LowIndex)
	fmt.Fprintf(w, "%8.5f\t\t= Bendover\n", ip.Bendover)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Modes\n", ip.Modes)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Seed\n", ip.Seed)
	fmt.Fprintf(w, "[%s]\t\t\t= Weighting\n", ip.Weighting)
}

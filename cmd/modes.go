package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/turbfield/magfield"
)

type ModeRecord struct {
	Index     int     `csv:"index"`
	K         float64 `csv:"k"`
	Amplitude float64 `csv:"amplitude"`
	Phase     float64 `csv:"phase"`
	DirX      float64 `csv:"dir_x"`
	DirY      float64 `csv:"dir_y"`
	DirZ      float64 `csv:"dir_z"`
	PolX      float64 `csv:"pol_x"`
	PolY      float64 `csv:"pol_y"`
	PolZ      float64 `csv:"pol_z"`
}

// ModesCmd dumps the realized mode set
var ModesCmd = &cobra.Command{
	Use:   "modes",
	Short: "Write the realized wave modes as CSV",
	Long: `
Builds the realization and writes one row per wave mode: wavenumber,
amplitude, phase, propagation direction and polarization.

turbfield modes --nm 16 --seed 7 -o modes.csv`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			f *magfield.TD13Field
		)
		outFile, _ := cmd.Flags().GetString("output")
		if f, err = buildField(viper.GetViper()); err != nil {
			return
		}
		if err = writeCSV(cmd.OutOrStdout(), outFile, ModeRecords(f.Modes())); err != nil {
			return fmt.Errorf("writing modes: %w", err)
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(ModesCmd)
	ModesCmd.Flags().StringP("output", "o", "-", "CSV output file, - for stdout")
}

func ModeRecords(modes []magfield.Mode) (recs []*ModeRecord) {
	recs = make([]*ModeRecord, len(modes))
	for i, m := range modes {
		recs[i] = &ModeRecord{
			Index:     i,
			K:         m.K,
			Amplitude: m.Amplitude,
			Phase:     m.Phase,
			DirX:      m.Direction.X,
			DirY:      m.Direction.Y,
			DirZ:      m.Direction.Z,
			PolX:      m.Polarization.X,
			PolY:      m.Polarization.Y,
			PolZ:      m.Polarization.Z,
		}
	}
	return
}

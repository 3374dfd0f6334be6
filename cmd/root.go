/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "turbfield",
	Short: "Synthetic turbulent magnetic fields after Tautz & Dosch (2013)",
	Long: `
Builds a random realization of a turbulent vector field as a superposition of
plane waves with a power law spectrum, then samples, exports or benchmarks it.

turbfield sample --lmin 0.1 --lmax 10 --nm 256 --seed 42 -o field.csv`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(viper.GetBool("verbose"))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.turbfield.yaml)")
	pf.StringP("inputConditionsFile", "I", "", "YAML run deck with the turbulence parameters, overrides the flags")
	pf.Float64("brms", 1, "RMS field strength")
	pf.Float64("lmin", 0.1, "smallest turbulent length scale, kmax = 1/lmin")
	pf.Float64("lmax", 10, "largest turbulent length scale, kmin = 1/lmax")
	pf.Float64("s", 5./3., "spectral index")
	pf.Float64("q", 0, "low wavenumber spectral index")
	pf.Float64("bendover", 1, "bend-over length scale, only used in the spectral weights")
	pf.Int("nm", 256, "number of wave modes, at least 2")
	pf.Int64("seed", 0, "random seed, 0 draws from entropy")
	pf.String("weighting", "bendover", "spectral weighting: bendover or classic")
	pf.BoolP("verbose", "v", false, "debug logging")
	if err := viper.BindPFlags(pf); err != nil {
		panic(err)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		// Search config in home directory with name ".turbfield" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".turbfield")
	}
	viper.SetEnvPrefix("TURBFIELD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

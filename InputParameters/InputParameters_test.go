package InputParameters

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/turbfield/magfield"
)

func TestInputParametersTD13(t *testing.T) {
	{ // Length scales
		fileInput := []byte(`
Title: Galactic turbulence
Brms: 1.
Lmin: 0.1
Lmax: 10
SpectralIndex: 1.6666666666666667
Bendover: 1.
Modes: 256
Seed: 42
`)
		var input InputParametersTD13
		require.NoError(t, input.Parse(fileInput))
		var buf bytes.Buffer
		input.Print(&buf)
		assert.True(t, strings.HasPrefix(buf.String(), "\"Galactic turbulence\"\t\t= Title\n"))
		assert.Contains(t, buf.String(), "[0.1, 10]\t\t= [Lmin, Lmax]\n")
		assert.Equal(t, "Galactic turbulence", input.Title)
		assert.Equal(t, 256, input.Modes)
		p, err := input.Parameters()
		require.NoError(t, err)
		assert.Equal(t, 0.1, p.Kmin)
		assert.Equal(t, 10., p.Kmax)
		assert.Equal(t, int64(42), p.Seed)
		assert.Equal(t, magfield.WeightingBendover, p.Weighting)
	}
	{ // Wavenumbers and a named weighting
		fileInput := []byte(`
Brms: 2.
Kmin: 0.5
Kmax: 50
SpectralIndex: 1.5
LowIndex: 2
Bendover: 3.
Modes: 8
Weighting: Classic
`)
		var input InputParametersTD13
		require.NoError(t, input.Parse(fileInput))
		var buf bytes.Buffer
		input.Print(&buf)
		assert.Contains(t, buf.String(), "[0.5, 50]\t\t= [Kmin, Kmax]\n")
		p, err := input.Parameters()
		require.NoError(t, err)
		assert.Equal(t, 0.5, p.Kmin)
		assert.Equal(t, 50., p.Kmax)
		assert.Equal(t, 2., p.Q)
		assert.Equal(t, magfield.WeightingClassic, p.Weighting)
	}
	{ // Invalid decks fail before any field is built
		var input InputParametersTD13
		require.NoError(t, input.Parse([]byte("Brms: 1\nLmin: 10\nLmax: 0.1\nSpectralIndex: 1.5\nBendover: 1\nModes: 8\n")))
		_, err := input.Parameters()
		assert.True(t, errors.Is(err, magfield.ErrInvalidSpectrum))
		input.Lmax = 0
		input.Lmin = 1
		_, err = input.Parameters()
		assert.True(t, errors.Is(err, magfield.ErrInvalidParameter))
		input = InputParametersTD13{Brms: 1, Kmin: 1, Kmax: 2, Bendover: 1, Modes: 1}
		_, err = input.Parameters()
		assert.True(t, errors.Is(err, magfield.ErrInsufficientModes))
		input.Modes, input.Weighting = 4, "none"
		_, err = input.Parameters()
		assert.True(t, errors.Is(err, magfield.ErrInvalidParameter))
	}
	{
		var input InputParametersTD13
		assert.Error(t, input.Parse([]byte("Modes: [1, 2")))
	}
}

package sim

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/teller-sim/sim/trace"
)

func TestParseScenario_AllFields(t *testing.T) {
	// GIVEN a scenario document setting every field
	doc := []byte(`
lambda: 0.75
tellers: 3
horizon: 240
seed: 99
trace_level: ticks
`)

	// WHEN parsed and applied over the defaults
	sc, err := ParseScenario(doc)
	require.NoError(t, err)
	require.NoError(t, sc.Validate())
	cfg := sc.ApplyTo(NewSimConfig(1, 1, 42))

	// THEN every field is overridden
	assert.Equal(t, SimConfig{
		Lambda:     0.75,
		NumTellers: 3,
		Horizon:    240,
		Seed:       99,
		TraceLevel: trace.TraceLevelTicks,
	}, cfg)
}

func TestParseScenario_PartialFields_KeepBase(t *testing.T) {
	sc, err := ParseScenario([]byte("tellers: 4\n"))
	require.NoError(t, err)

	cfg := sc.ApplyTo(NewSimConfig(2.5, 1, 42))

	assert.Equal(t, 2.5, cfg.Lambda)
	assert.Equal(t, 4, cfg.NumTellers)
	assert.Equal(t, DefaultHorizon, cfg.Horizon)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestParseScenario_UnknownField_Rejected(t *testing.T) {
	_, err := ParseScenario([]byte("lamda: 2\n"))
	assert.Error(t, err)
}

func TestScenario_Validate_RejectsBadRanges(t *testing.T) {
	for _, doc := range []string{"lambda: 0\n", "tellers: -1\n", "horizon: 0\n", "trace_level: all\n"} {
		sc, err := ParseScenario([]byte(doc))
		require.NoError(t, err, doc)
		assert.True(t, errors.Is(sc.Validate(), ErrInvalidParameter), doc)
	}
}

func TestLoadScenario_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lambda: 1.25\nseed: 5\n"), 0o644))

	sc, err := LoadScenario(path)
	require.NoError(t, err)
	require.NotNil(t, sc.Lambda)
	assert.Equal(t, 1.25, *sc.Lambda)
	require.NotNil(t, sc.Seed)
	assert.Equal(t, int64(5), *sc.Seed)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestShippedScenarios_LoadValidateAndRun(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "scenarios", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			sc, err := LoadScenario(path)
			require.NoError(t, err)
			require.NoError(t, sc.Validate())

			m, _, err := RunSimulation(sc.ApplyTo(NewSimConfig(1, 1, 42)))
			require.NoError(t, err)
			assert.Equal(t, m.TotalArrived, m.TotalServed)
		})
	}
}

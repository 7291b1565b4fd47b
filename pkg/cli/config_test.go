package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toyinlola/idsrank/pkg/interfaces"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_MissingDefaultFile_ReturnsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "terminal", cfg.Output.Format)
	assert.False(t, cfg.Weights.IsSet())
}

func TestLoadConfig_MissingExplicitFile_Error(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoadConfig_WeightsAndCosts(t *testing.T) {
	path := writeFile(t, "idsrank.yml", `
version: "1"
weights:
  detection: 0.5
  tco: 0.1
costs:
  num_devices: 250
  base_audit_fee: 90000
output:
  format: json
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.Weights.IsSet())
	m := cfg.Weights.Map()
	assert.Equal(t, 0.5, m[interfaces.DimensionDetection])
	assert.Equal(t, 0.1, m[interfaces.DimensionTCO])
	// Unset dimensions keep their defaults.
	assert.Equal(t, 0.25, m[interfaces.DimensionASC])

	params := cfg.Costs.Params()
	assert.Equal(t, 250.0, params.NumDevices)
	assert.Equal(t, 90000.0, params.BaseAuditFee)
	// Unset cost fields keep their defaults.
	assert.Equal(t, 350.0, params.HardwareCostPerMB)

	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadConfig_InvalidYAML_Error(t *testing.T) {
	path := writeFile(t, "bad.yml", "weights: [not a map")

	_, err := LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

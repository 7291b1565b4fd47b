package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toyinlola/idsrank/pkg/interfaces"
)

func TestLoadCandidates_ParsesEntriesAndWeights(t *testing.T) {
	path := writeFile(t, "candidates.yml", `
candidates:
  - name: cnn-lstm
    detection: 90
    asc: 95
    tco: 500000
    deployment: 0.5
    efficiency: 0.002
  - name: random-forest
    detection: 80
    asc: 85
    tco: 300000
    deployment: 0.8
    efficiency: 0.004
weights:
  detection: 0.4
`)

	file, err := LoadCandidates(path)
	require.NoError(t, err)
	require.Len(t, file.Candidates, 2)

	c := file.Candidates[0].Candidate()
	assert.Equal(t, "cnn-lstm", c.Name)
	assert.Equal(t, 90.0, c.Scores[interfaces.DimensionDetection])
	assert.Equal(t, 500000.0, c.Scores[interfaces.DimensionTCO])

	require.NotNil(t, file.Weights)
	assert.Equal(t, 0.4, *file.Weights.Detection)
}

func TestLoadCandidates_EmptyFile_Error(t *testing.T) {
	path := writeFile(t, "empty.yml", "candidates: []\n")

	_, err := LoadCandidates(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}

func TestLoadModels_ParsesRawMetrics(t *testing.T) {
	path := writeFile(t, "models.yml", `
models:
  - name: cnn-lstm
    accuracy: 99.1
    f1_score: 98.7
    recall: 98.9
    fpr: 0.002
    training_time_s: 3600
    inference_time_s: 0.004
    model_size_mb: 45
    edge_deployable: false
    architecture: hybrid
    interpretability: low
`)

	file, err := LoadModels(path)
	require.NoError(t, err)
	require.Len(t, file.Models, 1)

	m := file.Models[0].Metrics()
	assert.Equal(t, "cnn-lstm", m.Name)
	assert.Equal(t, 99.1, m.Accuracy)
	assert.Equal(t, interfaces.ArchitectureHybrid, m.Architecture)
	assert.Equal(t, interfaces.InterpretabilityLow, m.Interpretability)
	assert.False(t, m.EdgeDeployable)
}

func TestSaveModels_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.yml")
	original := &ModelFile{
		Models: []ModelEntry{
			{
				Name: "edge-ids", Accuracy: 95, F1Score: 94, Recall: 93,
				FPR: 0.01, TrainingTimeSec: 600, InferenceTimeSec: 0.002,
				ModelSizeMB: 5, EdgeDeployable: true,
				Architecture: "attention", Interpretability: "medium",
			},
		},
	}

	require.NoError(t, SaveModels(path, original))

	loaded, err := LoadModels(path)
	require.NoError(t, err)
	assert.Equal(t, original.Models, loaded.Models)
}

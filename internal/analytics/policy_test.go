package analytics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	assert.Equal(t, 70, p.PracticeAccuracyThreshold)
	assert.Equal(t, 3, p.PracticeMinAttempts)
	assert.Equal(t, 8000, p.SlowResponseMs)
	assert.Equal(t, 5, p.MaxRecommendations)
	assert.True(t, p.NeedsPractice(69, 3))
	assert.False(t, p.NeedsPractice(70, 3))
	assert.False(t, p.NeedsPractice(0, 2))
}

func TestParsePolicyOverlay(t *testing.T) {
	p, err := ParsePolicy([]byte("slowResponseMs: 5000\nmaxRecommendations: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, 5000, p.SlowResponseMs)
	assert.Equal(t, 3, p.MaxRecommendations)
	// Untouched keys keep their defaults.
	assert.Equal(t, 70, p.PracticeAccuracyThreshold)
	assert.Equal(t, 30, p.AnalysisDays)
}

func TestParsePolicyJSON(t *testing.T) {
	p, err := ParsePolicy([]byte(`{"foundationalBelow": 50, "stretchFrom": 90}`))
	require.NoError(t, err)
	assert.Equal(t, 50, p.FoundationalBelow)
	assert.Equal(t, 90, p.StretchFrom)
}

func TestParsePolicyEmpty(t *testing.T) {
	p, err := ParsePolicy(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultPolicy(), p)
}

func TestParsePolicyInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unknown key", "slowResponse: 5000\n"},
		{"out of range", "practiceAccuracyThreshold: 150\n"},
		{"wrong type", "maxRecommendations: lots\n"},
		{"fractional", "weaknessLimit: 2.5\n"},
		{"bands inverted", "foundationalBelow: 90\nstretchFrom: 80\n"},
		{"not a mapping", "- 1\n- 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePolicy([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestLoadPolicy(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "policy.yaml")
	require.NoError(t, os.WriteFile(good, []byte("weeklyTargetAttempts: 20\n"), 0o644))

	p, err := LoadPolicy(good)
	require.NoError(t, err)
	assert.Equal(t, 20, p.WeeklyTargetAttempts)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("mistakeLimit: -1\n"), 0o644))
	_, err = LoadPolicy(bad)
	var invalid *ErrInvalidPolicy
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, bad, invalid.Path)

	_, err = LoadPolicy(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

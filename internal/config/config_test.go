package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsZeroValueNotError(t *testing.T) {
	fc, err := Load(filepath.Join(t.TempDir(), "absent.kdl"))
	require.NoError(t, err)
	assert.Nil(t, fc.SimilarityThreshold)
}

func TestLoad_ParsesKnownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".smartdiff.kdl")
	content := `similarity_threshold 0.45
n_max 5000
recursive false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	fc, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, fc.SimilarityThreshold)
	assert.InDelta(t, 0.45, *fc.SimilarityThreshold, 1e-9)
	require.NotNil(t, fc.NMax)
	assert.Equal(t, 5000, *fc.NMax)
}

func TestApplyDefaults_NilReceiverReturnsDefaults(t *testing.T) {
	var fc *FileConfig
	opts := fc.ApplyDefaults()
	assert.Equal(t, 0.30, opts.SimilarityThreshold)
}

func TestApplyDefaults_OverridesOnlySetFields(t *testing.T) {
	threshold := 0.55
	fc := &FileConfig{SimilarityThreshold: &threshold}
	opts := fc.ApplyDefaults()
	assert.Equal(t, 0.55, opts.SimilarityThreshold)
	assert.Equal(t, 0.10, opts.SignaturePrefilter) // untouched default
}

func TestApplyDefaults_EmptyPatternSlicesDoNotOverrideDefaults(t *testing.T) {
	fc := &FileConfig{FilePatterns: nil}
	opts := fc.ApplyDefaults()
	assert.Nil(t, opts.FilePatterns)
}

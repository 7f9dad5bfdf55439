// Package config is the CLI's ambient configuration layer: it loads
// `.smartdiff.kdl` defaults and lets flags from cmd/smartdiff override them,
// mirroring the teacher's loadConfigWithOverrides pattern in cmd/lci. The
// core pipeline (internal/api and below) never touches this package - it
// only ever sees an in-memory types.Options (SPEC_FULL's AMBIENT STACK /
// configuration boundary).
package config

import (
	"os"

	"github.com/sblinch/kdl-go"

	"github.com/standardbeagle/smart-diff/internal/types"
)

// FileConfig is the subset of types.Options a KDL config file may supply
// defaults for (§6's tunables).
type FileConfig struct {
	SimilarityThreshold *float64 `kdl:"similarity_threshold"`
	SignaturePrefilter  *float64 `kdl:"signature_prefilter"`
	WeightSignature     *float64 `kdl:"weight_signature"`
	WeightBody          *float64 `kdl:"weight_body"`
	WeightContext       *float64 `kdl:"weight_context"`
	NMax                *int     `kdl:"n_max"`
	SizeRatioThreshold  *float64 `kdl:"size_ratio_threshold"`
	FanoutThreshold     *int     `kdl:"fanout_threshold"`
	Recursive           *bool    `kdl:"recursive"`
	IncludeHidden       *bool    `kdl:"include_hidden"`
	FilePatterns        []string `kdl:"file_patterns"`
	IgnorePatterns      []string `kdl:"ignore_patterns"`
}

// Load reads path if it exists, returning a zero-value FileConfig (every
// field nil/empty, meaning "use the built-in default") when it doesn't -
// an absent config file is never an error.
func Load(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &FileConfig{}, nil
	}
	if err != nil {
		return nil, err
	}

	var fc FileConfig
	if err := kdl.Unmarshal(data, &fc); err != nil {
		return nil, err
	}
	return &fc, nil
}

// ApplyDefaults layers fc over types.DefaultOptions(), returning the
// resulting Options. CLI flags are applied on top of this by the caller,
// since flags always win over the config file.
func (fc *FileConfig) ApplyDefaults() types.Options {
	opts := types.DefaultOptions()
	if fc == nil {
		return opts
	}
	if fc.SimilarityThreshold != nil {
		opts.SimilarityThreshold = *fc.SimilarityThreshold
	}
	if fc.SignaturePrefilter != nil {
		opts.SignaturePrefilter = *fc.SignaturePrefilter
	}
	if fc.WeightSignature != nil {
		opts.Weights.Signature = *fc.WeightSignature
	}
	if fc.WeightBody != nil {
		opts.Weights.Body = *fc.WeightBody
	}
	if fc.WeightContext != nil {
		opts.Weights.Context = *fc.WeightContext
	}
	if fc.NMax != nil {
		opts.NMax = *fc.NMax
	}
	if fc.SizeRatioThreshold != nil {
		opts.SizeRatioThreshold = *fc.SizeRatioThreshold
	}
	if fc.FanoutThreshold != nil {
		opts.FanoutThreshold = *fc.FanoutThreshold
	}
	if fc.Recursive != nil {
		opts.Recursive = *fc.Recursive
	}
	if fc.IncludeHidden != nil {
		opts.IncludeHidden = *fc.IncludeHidden
	}
	if len(fc.FilePatterns) > 0 {
		opts.FilePatterns = fc.FilePatterns
	}
	if len(fc.IgnorePatterns) > 0 {
		opts.IgnorePatterns = fc.IgnorePatterns
	}
	return opts
}

// DefaultPath is the config file name searched for in the current
// directory, matching the teacher's ".lci.kdl" convention.
const DefaultPath = ".smartdiff.kdl"

package types

import "fmt"

// Weights are the composite-similarity axis weights (§4.4); they must sum to
// 1 (validated by internal/api).
type Weights struct {
	Signature float64
	Body      float64
	Context   float64
}

// DefaultWeights is the spec-fixed default (§4.4, §9 Open Question #2: the
// 0.3/0.45/0.25 variant is the one this implementation pins; 0.3/0.3/0.4 is
// reachable by passing explicit Weights through Options).
var DefaultWeights = Weights{Signature: 0.30, Body: 0.45, Context: 0.25}

// Sum returns the total of the three axis weights.
func (w Weights) Sum() float64 { return w.Signature + w.Body + w.Context }

// Validate checks that the weights sum to 1 within floating point tolerance.
func (w Weights) Validate() error {
	const epsilon = 1e-9
	sum := w.Sum()
	if sum < 1-epsilon || sum > 1+epsilon {
		return fmt.Errorf("similarity weights must sum to 1, got %.6f", sum)
	}
	return nil
}

// Options carries every caller-tunable knob named in §6.
type Options struct {
	Recursive bool

	FilePatterns   []string
	IgnorePatterns []string
	IncludeHidden  bool

	SimilarityThreshold float64 // τ_match, §4.5
	SignaturePrefilter  float64 // τ_sig_prefilter, §4.5 step 1

	Weights Weights

	// NMax bounds the pair-matrix size (§4.5 step 3, §5); above it the
	// matcher falls back to the greedy pass.
	NMax int

	// BodyNodeCap bounds individual TED calls (§5); above it the line-Jaccard
	// fast path is used unconditionally.
	BodyNodeCap int

	// SizeRatioThreshold is the body-size-ratio fast-path trigger (§4.4,
	// §9 Open Question #3). Any value >= 4 is spec-conformant; default 8.
	SizeRatioThreshold float64

	// FanoutThreshold is the file count above which per-file parsing is
	// parallelized across the worker pool (§5, default 8).
	FanoutThreshold int

	// MaxResolutionDepth bounds symbol-lookup scope-chain walks (§4.3,
	// default 10).
	MaxResolutionDepth int
}

// DefaultOptions returns the spec's documented defaults.
func DefaultOptions() Options {
	return Options{
		Recursive:           true,
		SimilarityThreshold: 0.30,
		SignaturePrefilter:  0.10,
		Weights:             DefaultWeights,
		NMax:                10000,
		BodyNodeCap:         10000,
		SizeRatioThreshold:  8,
		FanoutThreshold:     8,
		MaxResolutionDepth:  10,
	}
}

// Validate checks the BadInput conditions named in §7 ("unsupported option
// combination (e.g. weights not summing to 1)").
func (o Options) Validate() error {
	if err := o.Weights.Validate(); err != nil {
		return err
	}
	if o.SimilarityThreshold < 0 || o.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity_threshold must be in [0,1], got %v", o.SimilarityThreshold)
	}
	if o.SizeRatioThreshold < 4 {
		return fmt.Errorf("size ratio threshold must be >= 4, got %v", o.SizeRatioThreshold)
	}
	if o.NMax <= 0 {
		return fmt.Errorf("n_max must be positive, got %v", o.NMax)
	}
	return nil
}

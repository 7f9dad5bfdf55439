// Package api is the Public API Surface (§6): the single entry point an
// embedder (or the CLI) calls to run a comparison and read back its results.
// It owns input validation, file discovery, the per-comparison worker pool,
// and cancellation threading; everything downstream of it is pure pipeline
// stages with no knowledge of options validation or the filesystem.
package api

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/smart-diff/internal/debug"
	"github.com/standardbeagle/smart-diff/internal/errors"
	"github.com/standardbeagle/smart-diff/internal/extractor"
	"github.com/standardbeagle/smart-diff/internal/matcher"
	"github.com/standardbeagle/smart-diff/internal/parser"
	"github.com/standardbeagle/smart-diff/internal/resolver"
	"github.com/standardbeagle/smart-diff/internal/store"
	"github.com/standardbeagle/smart-diff/internal/types"
)

// defaultStore backs every Compare/Summary/ListChanges/GetFunctionDiff call
// made through this package for the process's lifetime (§4.7).
var defaultStore = store.New()

// Compare runs the full pipeline (§4.1-§4.7) over two directory trees and
// stores the result, returning its id alongside the Comparison itself so
// callers that only need the id for later lookups don't have to re-thread a
// pointer through a long-lived process.
func Compare(ctx context.Context, sourceRoot, targetRoot string, opts types.Options) (uuid.UUID, *types.Comparison, error) {
	if err := opts.Validate(); err != nil {
		return uuid.Nil, nil, errors.NewBadInput("options", "", err)
	}
	if info, err := os.Stat(sourceRoot); err != nil || !info.IsDir() {
		return uuid.Nil, nil, errors.NewBadInput("source_root", sourceRoot, err)
	}
	if info, err := os.Stat(targetRoot); err != nil || !info.IsDir() {
		return uuid.Nil, nil, errors.NewBadInput("target_root", targetRoot, err)
	}

	start := time.Now()
	p := parser.New()

	var sourceUnits, targetUnits []resolver.FileUnit
	var sourceDiags, targetDiags []types.Diagnostic

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sourceUnits, sourceDiags, err = parseSide(gctx, p, sourceRoot, opts)
		return err
	})
	g.Go(func() error {
		var err error
		targetUnits, targetDiags, err = parseSide(gctx, p, targetRoot, opts)
		return err
	})
	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return uuid.Nil, nil, errors.Cancelled
		}
		return uuid.Nil, nil, errors.NewInternal("compare", "parse", err)
	}
	if ctx.Err() != nil {
		return uuid.Nil, nil, errors.Cancelled
	}

	sourceResolved := resolver.Resolve(sourceUnits, opts.MaxResolutionDepth)
	targetResolved := resolver.Resolve(targetUnits, opts.MaxResolutionDepth)

	sourceFns := flattenFunctions(sourceUnits)
	targetFns := flattenFunctions(targetUnits)

	if ctx.Err() != nil {
		return uuid.Nil, nil, errors.Cancelled
	}

	matches := matcher.Match(sourceFns, targetFns, opts)

	diagnostics := append(append([]types.Diagnostic{}, sourceDiags...), targetDiags...)
	diagnostics = append(diagnostics, sourceResolved.Diagnostics...)
	diagnostics = append(diagnostics, targetResolved.Diagnostics...)

	comparison := &types.Comparison{
		SourceRoot:       sourceRoot,
		TargetRoot:       targetRoot,
		CreatedAt:        time.Now(),
		FileChanges:      fileChanges(sourceRoot, targetRoot, sourceUnits, targetUnits),
		FunctionMatches:  matches,
		AnalysisDuration: time.Since(start),
		Diagnostics:      diagnostics,
		OptionsUsed:      opts,
	}
	comparison.BuildSummary()

	id := defaultStore.Create(comparison)
	debug.Logf("api", "compare %s vs %s: %d matches in %s", sourceRoot, targetRoot, len(matches), comparison.AnalysisDuration)
	return id, comparison, nil
}

type parseOutcome struct {
	unit        resolver.FileUnit
	hasUnit     bool
	diagnostics []types.Diagnostic
}

// parseSide discovers, parses and extracts functions from every supported
// file under root, fanning out across a worker pool once the file count
// exceeds opts.FanoutThreshold (§5).
func parseSide(ctx context.Context, p *parser.Parser, root string, opts types.Options) ([]resolver.FileUnit, []types.Diagnostic, error) {
	paths, err := discoverFiles(root, opts)
	if err != nil {
		return nil, nil, errors.NewBadInput("root", root, err)
	}

	outcomes := make([]parseOutcome, len(paths))

	parseOne := func(i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := paths[i]
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil
		}
		lang := parser.Detect(path, content)
		if lang == types.LanguageUnknown {
			return nil
		}
		result, parseErr := p.Parse(ctx, content, lang, path)
		if parseErr != nil {
			outcomes[i] = parseOutcome{diagnostics: []types.Diagnostic{{
				Kind: types.DiagnosticParseError, FilePath: path, Message: parseErr.Error(),
			}}}
			return nil
		}
		// Records carry the root-relative path, so the same file under two
		// roots compares as the same location.
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		fns := extractor.Extract(result.NAST, filepath.ToSlash(rel), lang)
		outcomes[i] = parseOutcome{
			unit:        resolver.FileUnit{Path: path, Language: lang, NAST: result.NAST, Functions: fns},
			hasUnit:     true,
			diagnostics: result.Diagnostics,
		}
		return nil
	}

	if len(paths) > opts.FanoutThreshold {
		workers := runtime.NumCPU()
		if workers > len(paths) {
			workers = len(paths)
		}
		pl := pool.New().WithContext(ctx).WithMaxGoroutines(workers)
		for i := range paths {
			i := i
			pl.Go(func(ctx context.Context) error { return parseOne(i) })
		}
		if err := pl.Wait(); err != nil {
			return nil, nil, err
		}
	} else {
		for i := range paths {
			if err := parseOne(i); err != nil {
				return nil, nil, err
			}
		}
	}

	var units []resolver.FileUnit
	var diags []types.Diagnostic
	for _, o := range outcomes {
		if o.hasUnit {
			units = append(units, o.unit)
		}
		diags = append(diags, o.diagnostics...)
	}
	return units, diags, nil
}

// flattenFunctions collects every function across a side's files in a
// deterministic order (file path, then start line, then qualified name),
// satisfying §5's "matcher inputs are sorted before assignment" guarantee.
func flattenFunctions(units []resolver.FileUnit) []*types.FunctionRecord {
	var out []*types.FunctionRecord
	for _, u := range units {
		out = append(out, u.Functions...)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.FilePath != b.FilePath {
			return a.FilePath < b.FilePath
		}
		if a.Location.StartLine != b.Location.StartLine {
			return a.Location.StartLine < b.Location.StartLine
		}
		return a.QualifiedName < b.QualifiedName
	})
	return out
}

// fileChanges compares the relative path sets of both sides to report whole
// files added or deleted, independent of the function-level matches (§3's
// FileChange).
func fileChanges(sourceRoot, targetRoot string, sourceUnits, targetUnits []resolver.FileUnit) []types.FileChange {
	sourceRel := relSet(sourceRoot, sourceUnits)
	targetRel := relSet(targetRoot, targetUnits)

	seen := make(map[string]struct{}, len(sourceRel)+len(targetRel))
	var out []types.FileChange
	for rel := range sourceRel {
		seen[rel] = struct{}{}
		if _, ok := targetRel[rel]; !ok {
			out = append(out, types.FileChange{Path: rel, Kind: types.FileDeleted})
		}
	}
	for rel := range targetRel {
		if _, ok := seen[rel]; ok {
			continue
		}
		if _, ok := sourceRel[rel]; !ok {
			out = append(out, types.FileChange{Path: rel, Kind: types.FileAdded})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

func relSet(root string, units []resolver.FileUnit) map[string]struct{} {
	set := make(map[string]struct{}, len(units))
	for _, u := range units {
		rel, err := filepath.Rel(root, u.Path)
		if err != nil {
			rel = u.Path
		}
		set[filepath.ToSlash(rel)] = struct{}{}
	}
	return set
}

package parser

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/standardbeagle/smart-diff/internal/types"
)

// contentPattern is one weighted regex signal used by stage 2 of language
// detection (§4.1).
type contentPattern struct {
	re     *regexp.Regexp
	weight float64
}

// contentSignals holds the strong/medium/weak pattern set per language.
// Weights follow §4.1's approximate 0.8/0.5/0.2 bands.
var contentSignals = map[types.Language][]contentPattern{
	types.LanguagePython: {
		{regexp.MustCompile(`(?m)^\s*def\s+\w+\s*\(.*\)\s*:`), 0.8},
		{regexp.MustCompile(`(?m)^\s*import\s+\w+`), 0.5},
		{regexp.MustCompile(`(?m)^\s*from\s+\S+\s+import\s+`), 0.5},
		{regexp.MustCompile(`:\s*$`), 0.2},
		{regexp.MustCompile(`self\.`), 0.2},
	},
	types.LanguageRust: {
		{regexp.MustCompile(`(?m)^\s*fn\s+\w+\s*\(`), 0.8},
		{regexp.MustCompile(`(?m)^\s*use\s+[\w:]+;`), 0.5},
		{regexp.MustCompile(`&mut\s+`), 0.5},
		{regexp.MustCompile(`->\s*\w`), 0.2},
		{regexp.MustCompile(`impl\s+\w+`), 0.5},
	},
	types.LanguageJava: {
		{regexp.MustCompile(`(?m)^\s*public\s+class\s+\w+`), 0.8},
		{regexp.MustCompile(`(?m)^\s*package\s+[\w.]+;`), 0.5},
		{regexp.MustCompile(`(?m)^\s*import\s+[\w.]+;`), 0.5},
		{regexp.MustCompile(`System\.out\.println`), 0.5},
		{regexp.MustCompile(`public\s+static\s+void\s+main`), 0.8},
	},
	types.LanguageTypeScript: {
		{regexp.MustCompile(`:\s*(string|number|boolean|any|void)\b`), 0.8},
		{regexp.MustCompile(`(?m)^\s*interface\s+\w+`), 0.8},
		{regexp.MustCompile(`(?m)^\s*export\s+`), 0.5},
		{regexp.MustCompile(`(?m)^\s*import\s+.*\s+from\s+['"]`), 0.5},
		{regexp.MustCompile(`<\w+>`), 0.2},
	},
	types.LanguageJavaScript: {
		{regexp.MustCompile(`(?m)^\s*(function|const|let|var)\s+\w+`), 0.5},
		{regexp.MustCompile(`=>\s*{?`), 0.5},
		{regexp.MustCompile(`require\(['"]`), 0.5},
		{regexp.MustCompile(`module\.exports`), 0.8},
		{regexp.MustCompile(`console\.log`), 0.2},
	},
	types.LanguageCpp: {
		{regexp.MustCompile(`(?m)^\s*#include\s*<\w+>`), 0.5},
		{regexp.MustCompile(`std::`), 0.8},
		{regexp.MustCompile(`(?m)^\s*class\s+\w+`), 0.5},
		{regexp.MustCompile(`(?m)^\s*namespace\s+\w+`), 0.5},
		{regexp.MustCompile(`template\s*<`), 0.5},
	},
	types.LanguageC: {
		{regexp.MustCompile(`(?m)^\s*#include\s*[<"][\w./]+[>"]`), 0.5},
		{regexp.MustCompile(`(?m)^\s*int\s+main\s*\(`), 0.8},
		{regexp.MustCompile(`printf\s*\(`), 0.5},
		{regexp.MustCompile(`malloc\s*\(`), 0.5},
		{regexp.MustCompile(`(?m)^\s*struct\s+\w+\s*{`), 0.2},
	},
}

// DetectLanguage implements §4.1's two-stage detection: the extension table
// wins unless a different language's content score beats it by >= 0.5.
func DetectLanguage(path string, content []byte) types.Language {
	ext := strings.ToLower(filepath.Ext(path))
	extLang, extOK := types.ExtensionLanguage(ext)

	scores := scoreContent(content)
	bestLang, bestScore, runnerUp := topTwo(scores)

	if !extOK {
		if bestScore > 0.3 && bestScore-runnerUp > 0 {
			return bestLang
		}
		return types.LanguageUnknown
	}

	if bestLang != extLang && bestScore > 0.3 {
		if extScore := scores[extLang]; bestScore-extScore >= 0.5 {
			return bestLang
		}
	}
	return extLang
}

func scoreContent(content []byte) map[types.Language]float64 {
	text := string(content)
	scores := make(map[types.Language]float64, len(contentSignals))
	for lang, patterns := range contentSignals {
		var total float64
		for _, p := range patterns {
			if p.re.MatchString(text) {
				total += p.weight
			}
		}
		scores[lang] = total
	}
	return scores
}

func topTwo(scores map[types.Language]float64) (best types.Language, bestScore, runnerUp float64) {
	best = types.LanguageUnknown
	for _, lang := range types.AllLanguages {
		s := scores[lang]
		if s > bestScore {
			runnerUp = bestScore
			bestScore = s
			best = lang
		} else if s > runnerUp {
			runnerUp = s
		}
	}
	return best, bestScore, runnerUp
}

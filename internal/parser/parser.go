// Package parser is the Parser Front-End (§4.1): it wraps per-language
// tree-sitter grammars and converts concrete parse trees into a Normalized
// AST. Pooling and lazy per-language initialization follow the teacher's
// TreeSitterParser (internal/parser/parser.go), generalized from a single
// shared-index parser instance to one pool per language so that two
// comparison sides can parse concurrently without contending on a single
// tree-sitter parser (§5).
package parser

import (
	"context"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/standardbeagle/smart-diff/internal/debug"
	"github.com/standardbeagle/smart-diff/internal/types"
)

// Parser is the Parser Front-End's entry point. It is safe for concurrent
// use across goroutines parsing different files (§5).
type Parser struct {
	pools sync.Map // types.Language -> *sync.Pool of *sitter.Parser
}

// New creates a Parser with no grammars initialized; each language's
// tree-sitter parser is lazily constructed on first use.
func New() *Parser {
	return &Parser{}
}

// Result is the Parser Front-End's per-file output (§4.1's contract).
type Result struct {
	NAST        *types.Node
	Diagnostics []types.Diagnostic
}

// Parse converts source text in the given language into a Normalized AST.
// It never returns a Go error for syntactic problems: unrecoverable
// subtrees surface as KindError nodes with an attached Diagnostic, and
// parsing continues for the rest of the file (§4.1).
func (p *Parser) Parse(ctx context.Context, source []byte, lang types.Language, filePath string) (*Result, error) {
	grammar, err := grammarFor(lang)
	if err != nil {
		return nil, err
	}

	sp := p.acquire(lang, grammar)
	defer p.release(lang, sp)

	tree, err := sp.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	norm := newNormalizer(lang, source, filePath)
	nast := norm.Normalize(root)

	debug.Logf("parser", "parsed %s (%s): %d NAST nodes, %d diagnostics",
		filePath, lang, nast.NodeCount(), len(norm.diagnostics))

	return &Result{NAST: nast, Diagnostics: norm.diagnostics}, nil
}

func (p *Parser) acquire(lang types.Language, grammar *sitter.Language) *sitter.Parser {
	poolAny, _ := p.pools.LoadOrStore(lang, &sync.Pool{
		New: func() any {
			sp := sitter.NewParser()
			sp.SetLanguage(grammar)
			return sp
		},
	})
	pool := poolAny.(*sync.Pool)
	return pool.Get().(*sitter.Parser)
}

func (p *Parser) release(lang types.Language, sp *sitter.Parser) {
	poolAny, ok := p.pools.Load(lang)
	if !ok {
		return
	}
	poolAny.(*sync.Pool).Put(sp)
}

// Detect re-exports DetectLanguage so callers only need to import this
// package for both parsing and language detection.
func Detect(path string, content []byte) types.Language {
	return DetectLanguage(path, content)
}

package types

// ScopeKind is the closed scope hierarchy (§3: "Scopes are a tree: Global →
// File → Class → Function → Block").
type ScopeKind uint8

const (
	ScopeGlobal ScopeKind = iota
	ScopeFile
	ScopeClass
	ScopeFunction
	ScopeBlock
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeGlobal:
		return "global"
	case ScopeFile:
		return "file"
	case ScopeClass:
		return "class"
	case ScopeFunction:
		return "function"
	case ScopeBlock:
		return "block"
	default:
		return "unknown"
	}
}

// Scope is one node of the scope tree. Lookup walks Parent with first-hit
// semantics (§4.3); shadowing is reported, never rejected.
type Scope struct {
	Kind     ScopeKind
	Name     string
	Parent   *Scope
	Children []*Scope
	Symbols  map[string][]*SymbolRecord
}

// NewScope creates a scope linked to its parent.
func NewScope(kind ScopeKind, name string, parent *Scope) *Scope {
	s := &Scope{Kind: kind, Name: name, Parent: parent, Symbols: make(map[string][]*SymbolRecord)}
	if parent != nil {
		parent.Children = append(parent.Children, s)
	}
	return s
}

// Declare records a symbol in this scope. A second declaration of the same
// name is appended (shadowing is reported via the slice, never rejected -
// §4.3).
func (s *Scope) Declare(rec *SymbolRecord) {
	s.Symbols[rec.Name] = append(s.Symbols[rec.Name], rec)
}

// Lookup walks from this scope up through Parent, returning the first hit.
// Depth is bounded by maxResolutionDepth (§4.3).
func (s *Scope) Lookup(name string, maxDepth int) (*SymbolRecord, bool) {
	scope := s
	for depth := 0; scope != nil && depth < maxDepth; depth, scope = depth+1, scope.Parent {
		if recs, ok := scope.Symbols[name]; ok && len(recs) > 0 {
			return recs[len(recs)-1], true // most recent declaration wins
		}
	}
	return nil, false
}

// SymbolKind classifies a declared symbol.
type SymbolKind uint8

const (
	SymbolFunction SymbolKind = iota
	SymbolMethod
	SymbolClass
	SymbolInterface
	SymbolVariable
	SymbolField
	SymbolParameter
	SymbolImportAlias
)

// SymbolRecord is one entry of the per-file symbol table (§3).
type SymbolRecord struct {
	ID             SymbolID
	Name           string
	Kind           SymbolKind
	DefiningScope  *Scope
	DeclFilePath   string
	DeclLine       int
	QualifiedName  string
}

// SymbolTable is the per-file mapping from simple name to symbol records
// (§3), rooted at a Global scope shared across files passed to one Resolve
// call.
type SymbolTable struct {
	Global      *Scope
	ByFile      map[string]*Scope // file path -> file scope
	AllSymbols  []*SymbolRecord   // insertion order, for deterministic id assignment
	byGlobalID  map[SymbolID]*SymbolRecord
}

// NewSymbolTable creates an empty table rooted at a fresh global scope.
func NewSymbolTable() *SymbolTable {
	global := NewScope(ScopeGlobal, "global", nil)
	return &SymbolTable{
		Global:     global,
		ByFile:     make(map[string]*Scope),
		byGlobalID: make(map[SymbolID]*SymbolRecord),
	}
}

// FileScope returns (creating if necessary) the file-level scope for path.
func (t *SymbolTable) FileScope(path string) *Scope {
	if sc, ok := t.ByFile[path]; ok {
		return sc
	}
	sc := NewScope(ScopeFile, path, t.Global)
	t.ByFile[path] = sc
	return sc
}

// Intern assigns the next dense SymbolID and records the symbol.
func (t *SymbolTable) Intern(rec *SymbolRecord) SymbolID {
	rec.ID = SymbolID(len(t.AllSymbols))
	t.AllSymbols = append(t.AllSymbols, rec)
	t.byGlobalID[rec.ID] = rec
	return rec.ID
}

// ByID looks up an interned symbol by its dense id.
func (t *SymbolTable) ByID(id SymbolID) (*SymbolRecord, bool) {
	rec, ok := t.byGlobalID[id]
	return rec, ok
}

// ImportKind classifies one import edge (§3).
type ImportKind uint8

const (
	ImportModule ImportKind = iota
	ImportSymbol
	ImportWildcard
)

// ImportEdge is one edge of the ImportGraph (§3).
type ImportEdge struct {
	ImportingFile string
	Imported      string // module path or symbol-qualified path
	Kind          ImportKind
	Alias         string
}

// ImportGraph is the full set of import edges over the files passed to one
// Resolve call. Cycles are permitted (§4.3).
type ImportGraph struct {
	Edges      []ImportEdge
	ByFile     map[string][]ImportEdge
	Wildcards  map[string][]ImportEdge // importing file -> wildcard edges, for precedence step (c)
}

// NewImportGraph creates an empty graph.
func NewImportGraph() *ImportGraph {
	return &ImportGraph{
		ByFile:    make(map[string][]ImportEdge),
		Wildcards: make(map[string][]ImportEdge),
	}
}

// Add records one import edge.
func (g *ImportGraph) Add(e ImportEdge) {
	g.Edges = append(g.Edges, e)
	g.ByFile[e.ImportingFile] = append(g.ByFile[e.ImportingFile], e)
	if e.Kind == ImportWildcard {
		g.Wildcards[e.ImportingFile] = append(g.Wildcards[e.ImportingFile], e)
	}
}

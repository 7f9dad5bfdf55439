package types

// FileID is a dense, arena-backed identifier assigned to each parsed file.
// Per §9, cyclic import/call graphs are represented through these integer
// ids rather than shared-ownership pointers.
type FileID uint32

// FunctionID is a dense, arena-backed identifier assigned to each extracted
// function, scoped to one side (source or target) of a comparison.
type FunctionID uint32

// SymbolID is a dense, arena-backed identifier assigned to each resolved
// symbol.
type SymbolID uint32

// InvalidID marks an unassigned arena identifier.
const InvalidID = ^uint32(0)

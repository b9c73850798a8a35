package lower

import (
	"github.com/minic-lang/minic/internal/ir"
	"github.com/minic-lang/minic/internal/types"
)

// Symbol describes a declared name: a variable, a parameter, or a function.
type Symbol struct {
	// Name is the declared identifier.
	Name string

	// Type is the symbol's type. For local and global arrays this is the
	// full aggregate type; for a decayed array parameter it is the pointer
	// type the parameter was rewritten to.
	Type types.Type

	// Val is the stack slot holding the variable (locals and parameters).
	Val *ir.Value

	// Global is the module global backing the variable (globals only).
	Global *ir.Global

	// Fn is the lowered function (functions only).
	Fn *ir.Func

	// Const reports whether the declaration carried a const qualifier.
	Const bool

	// IsGlobal reports whether the symbol lives at file scope.
	IsGlobal bool

	// IsFunc reports whether the symbol names a function.
	IsFunc bool

	// Dims holds the declared array dimensions, outermost first.
	// A decayed array parameter records 0 for the elided first dimension.
	Dims []int64
}

// SymTab is a stack of lexical scopes mapping names to symbols.
// The bottom scope is the global scope and is never popped.
type SymTab struct {
	scopes []map[string]*Symbol
}

// NewSymTab creates a symbol table containing only the global scope.
func NewSymTab() *SymTab {
	return &SymTab{
		scopes: []map[string]*Symbol{make(map[string]*Symbol)},
	}
}

// EnterScope pushes a new innermost scope.
func (t *SymTab) EnterScope() {
	t.scopes = append(t.scopes, make(map[string]*Symbol))
}

// ExitScope pops the innermost scope. The global scope stays.
func (t *SymTab) ExitScope() {
	if len(t.scopes) > 1 {
		t.scopes = t.scopes[:len(t.scopes)-1]
	}
}

// AtGlobal reports whether the current scope is the global scope.
func (t *SymTab) AtGlobal() bool {
	return len(t.scopes) == 1
}

// Declare adds a symbol to the current scope. It reports false when the
// name is already declared in this scope; shadowing an outer scope is fine.
func (t *SymTab) Declare(sym *Symbol) bool {
	scope := t.scopes[len(t.scopes)-1]
	if _, ok := scope[sym.Name]; ok {
		return false
	}
	scope[sym.Name] = sym
	return true
}

// Lookup resolves a name from the innermost scope outward.
// It returns nil when the name is not declared.
func (t *SymTab) Lookup(name string) *Symbol {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if sym, ok := t.scopes[i][name]; ok {
			return sym
		}
	}
	return nil
}

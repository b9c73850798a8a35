package ir

import "github.com/minic-lang/minic/internal/types"

// Module is the top-level IR container: the lowered functions and
// global variables of one source file.
type Module struct {
	// Name is the module name, normally the source file name.
	Name string

	// Funcs lists the lowered functions in declaration order.
	Funcs []*Func

	// Globals lists the global variables in declaration order.
	Globals []*Global
}

// Global represents a global variable.
type Global struct {
	// Name is the global's name.
	Name string

	// Typ is the variable type (not the pointer to it).
	Typ types.Type

	// Init is the constant scalar initializer.
	Init int64

	// HasInit reports whether an explicit initializer was given.
	// Globals without one are zero-initialized.
	HasInit bool

	// Str holds the data of a string-literal global; Typ is then a
	// char array and Init/HasInit are unused.
	Str string
}

// String returns the global's name prefixed with @.
func (g *Global) String() string {
	return "@" + g.Name
}

// NewModule creates an empty module.
func NewModule(name string) *Module {
	return &Module{Name: name}
}

// AddFunc appends a function to the module.
func (m *Module) AddFunc(f *Func) {
	m.Funcs = append(m.Funcs, f)
}

// AddGlobal appends a global to the module.
func (m *Module) AddGlobal(g *Global) {
	m.Globals = append(m.Globals, g)
}

// Func returns the function with the given name, or nil.
func (m *Module) Func(name string) *Func {
	for _, f := range m.Funcs {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Global returns the global with the given name, or nil.
func (m *Module) Global(name string) *Global {
	for _, g := range m.Globals {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// RemoveFunc removes the function with the given name, if present.
func (m *Module) RemoveFunc(name string) {
	for i, f := range m.Funcs {
		if f.Name == name {
			m.Funcs = append(m.Funcs[:i], m.Funcs[i+1:]...)
			return
		}
	}
}

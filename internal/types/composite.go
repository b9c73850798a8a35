package types

import (
	"fmt"
	"strings"
)

// Array represents an array type Elem[N]. Multi-dimensional arrays are
// arrays of arrays: int[2][3] is Array(2, Array(3, int)).
type Array struct {
	typ
	len  int64
	elem Type
}

// NewArray creates a new array type with the given length and element type.
func NewArray(len int64, elem Type) *Array {
	return &Array{len: len, elem: elem}
}

// Len returns the array length.
func (a *Array) Len() int64 {
	return a.len
}

// Elem returns the array element type.
func (a *Array) Elem() Type {
	return a.elem
}

// Underlying implements Type.
func (a *Array) Underlying() Type {
	return a
}

// String implements Type.
func (a *Array) String() string {
	return fmt.Sprintf("[%d]%s", a.len, a.elem)
}

// Pointer represents a pointer type *T. Pointers arise only from array
// parameter decay; there is no address-of operator in the source.
type Pointer struct {
	typ
	base Type
}

// NewPointer creates a new pointer type.
func NewPointer(base Type) *Pointer {
	return &Pointer{base: base}
}

// Elem returns the base type that the pointer points to.
func (p *Pointer) Elem() Type {
	return p.base
}

// Underlying implements Type.
func (p *Pointer) Underlying() Type {
	return p
}

// String implements Type.
func (p *Pointer) String() string {
	return "*" + p.base.String()
}

// Func represents a function type.
type Func struct {
	typ
	params []*Var // parameters
	result Type   // return type (Typ[Void] for void functions)
}

// NewFunc creates a new function type.
func NewFunc(params []*Var, result Type) *Func {
	return &Func{params: params, result: result}
}

// Params returns the parameter list.
func (f *Func) Params() []*Var {
	return f.params
}

// NumParams returns the number of parameters.
func (f *Func) NumParams() int {
	return len(f.params)
}

// Param returns the parameter at index i.
func (f *Func) Param(i int) *Var {
	return f.params[i]
}

// Result returns the result type.
func (f *Func) Result() Type {
	return f.result
}

// Underlying implements Type.
func (f *Func) Underlying() Type {
	return f
}

// String implements Type.
func (f *Func) String() string {
	var buf strings.Builder
	buf.WriteString("func(")
	for i, p := range f.params {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(p.Name())
		buf.WriteString(" ")
		buf.WriteString(p.Type().String())
	}
	buf.WriteString(")")
	if f.result != nil && !IsVoid(f.result) {
		buf.WriteString(" ")
		buf.WriteString(f.result.String())
	}
	return buf.String()
}

// Var represents a named, typed variable or parameter.
type Var struct {
	name string
	typ  Type
}

// NewVar creates a new variable.
func NewVar(name string, typ Type) *Var {
	return &Var{name: name, typ: typ}
}

// Name returns the variable's name.
func (v *Var) Name() string {
	return v.name
}

// Type returns the variable's type.
func (v *Var) Type() Type {
	return v.typ
}

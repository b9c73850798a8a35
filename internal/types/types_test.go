package types

import (
	"testing"
)

func TestBasicTypes(t *testing.T) {
	tests := []struct {
		kind BasicKind
		name string
		info BasicInfo
	}{
		{Bool, "bool", IsBoolean},
		{Char, "char", IsInteger},
		{Int, "int", IsInteger},
		{Void, "void", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ := Typ[tt.kind]
			if typ == nil {
				t.Fatalf("Typ[%d] is nil", tt.kind)
			}
			if typ.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", typ.Kind(), tt.kind)
			}
			if typ.Info() != tt.info {
				t.Errorf("Info() = %v, want %v", typ.Info(), tt.info)
			}
			if typ.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", typ.Name(), tt.name)
			}
			if typ.String() != tt.name {
				t.Errorf("String() = %q, want %q", typ.String(), tt.name)
			}
			// Basic type's underlying is itself
			if typ.Underlying() != typ {
				t.Errorf("Underlying() != self")
			}
		})
	}
}

func TestArrayType(t *testing.T) {
	elem := Typ[Int]
	arr := NewArray(10, elem)

	if arr.Len() != 10 {
		t.Errorf("Len() = %d, want 10", arr.Len())
	}
	if arr.Elem() != elem {
		t.Errorf("Elem() != expected element type")
	}
	if arr.String() != "[10]int" {
		t.Errorf("String() = %q, want %q", arr.String(), "[10]int")
	}
	if arr.Underlying() != arr {
		t.Errorf("Underlying() != self")
	}
}

func TestNestedArrayType(t *testing.T) {
	// int[2][3] is an array of 2 arrays of 3 ints
	inner := NewArray(3, Typ[Int])
	outer := NewArray(2, inner)

	if outer.String() != "[2][3]int" {
		t.Errorf("String() = %q, want %q", outer.String(), "[2][3]int")
	}
	if outer.Elem() != inner {
		t.Errorf("Elem() != inner array")
	}
}

func TestPointerType(t *testing.T) {
	base := Typ[Int]
	ptr := NewPointer(base)

	if ptr.Elem() != base {
		t.Errorf("Elem() != expected base type")
	}
	if ptr.String() != "*int" {
		t.Errorf("String() = %q, want %q", ptr.String(), "*int")
	}
	if ptr.Underlying() != ptr {
		t.Errorf("Underlying() != self")
	}
}

func TestPointerToArrayType(t *testing.T) {
	// A decayed int[][4] parameter has type *[4]int
	ptr := NewPointer(NewArray(4, Typ[Int]))
	if ptr.String() != "*[4]int" {
		t.Errorf("String() = %q, want %q", ptr.String(), "*[4]int")
	}
}

func TestFuncType(t *testing.T) {
	params := []*Var{
		NewVar("a", Typ[Int]),
		NewVar("b", Typ[Char]),
	}
	fn := NewFunc(params, Typ[Int])

	if fn.NumParams() != 2 {
		t.Errorf("NumParams() = %d, want 2", fn.NumParams())
	}
	if fn.Param(0).Name() != "a" {
		t.Errorf("Param(0).Name() = %q, want %q", fn.Param(0).Name(), "a")
	}
	if fn.Result() != Typ[Int] {
		t.Errorf("Result() != int")
	}

	expected := "func(a int, b char) int"
	if fn.String() != expected {
		t.Errorf("String() = %q, want %q", fn.String(), expected)
	}
}

func TestVoidFuncType(t *testing.T) {
	fn := NewFunc(nil, Typ[Void])

	if fn.NumParams() != 0 {
		t.Errorf("NumParams() = %d, want 0", fn.NumParams())
	}
	if fn.String() != "func()" {
		t.Errorf("String() = %q, want %q", fn.String(), "func()")
	}
}

func TestVar(t *testing.T) {
	v := NewVar("x", Typ[Int])
	if v.Name() != "x" {
		t.Errorf("Name() = %q, want %q", v.Name(), "x")
	}
	if v.Type() != Typ[Int] {
		t.Errorf("Type() != int")
	}
}

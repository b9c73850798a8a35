package types

import (
	"testing"
)

func TestIdentical(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"same basic", Typ[Int], Typ[Int], true},
		{"diff basic", Typ[Int], Typ[Char], false},
		{"bool vs int", Typ[Bool], Typ[Int], false},
		{"same array", NewArray(10, Typ[Int]), NewArray(10, Typ[Int]), true},
		{"diff array len", NewArray(10, Typ[Int]), NewArray(5, Typ[Int]), false},
		{"diff array elem", NewArray(10, Typ[Int]), NewArray(10, Typ[Char]), false},
		{"nested array", NewArray(2, NewArray(3, Typ[Int])), NewArray(2, NewArray(3, Typ[Int])), true},
		{"same ptr", NewPointer(Typ[Int]), NewPointer(Typ[Int]), true},
		{"diff ptr", NewPointer(Typ[Int]), NewPointer(Typ[Char]), false},
		{"ptr vs array", NewPointer(Typ[Int]), NewArray(10, Typ[Int]), false},
		{"nil vs type", nil, Typ[Int], false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Identical(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("Identical = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIdenticalFunc(t *testing.T) {
	f1 := NewFunc([]*Var{NewVar("x", Typ[Int])}, Typ[Int])
	f2 := NewFunc([]*Var{NewVar("y", Typ[Int])}, Typ[Int]) // Different param name
	f3 := NewFunc([]*Var{NewVar("x", Typ[Char])}, Typ[Int])
	f4 := NewFunc([]*Var{NewVar("x", Typ[Int])}, Typ[Void])

	if !Identical(f1, f2) {
		t.Error("functions with same signature but different param names should be identical")
	}
	if Identical(f1, f3) {
		t.Error("functions with different param types should not be identical")
	}
	if Identical(f1, f4) {
		t.Error("functions with different result types should not be identical")
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		pred func(Type) bool
		typ  Type
		want bool
	}{
		{"int is integer", IsIntegerType, Typ[Int], true},
		{"char is integer", IsIntegerType, Typ[Char], true},
		{"bool is not integer", IsIntegerType, Typ[Bool], false},
		{"void is not integer", IsIntegerType, Typ[Void], false},
		{"bool is boolean", IsBooleanType, Typ[Bool], true},
		{"int is not boolean", IsBooleanType, Typ[Int], false},
		{"void is void", IsVoid, Typ[Void], true},
		{"int is not void", IsVoid, Typ[Int], false},
		{"ptr is pointer", IsPointer, NewPointer(Typ[Int]), true},
		{"int is not pointer", IsPointer, Typ[Int], false},
		{"array is array", IsArray, NewArray(4, Typ[Int]), true},
		{"ptr is not array", IsArray, NewPointer(Typ[Int]), false},
		{"int is scalar", IsScalar, Typ[Int], true},
		{"bool is scalar", IsScalar, Typ[Bool], true},
		{"ptr is scalar", IsScalar, NewPointer(Typ[Char]), true},
		{"array is not scalar", IsScalar, NewArray(4, Typ[Int]), false},
		{"void is not scalar", IsScalar, Typ[Void], false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.pred(tt.typ)
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestElem(t *testing.T) {
	arr := NewArray(3, Typ[Int])
	if Elem(arr) != Typ[Int] {
		t.Errorf("Elem(array) = %v, want int", Elem(arr))
	}

	ptr := NewPointer(NewArray(4, Typ[Char]))
	if !Identical(Elem(ptr), NewArray(4, Typ[Char])) {
		t.Errorf("Elem(ptr) = %v, want [4]char", Elem(ptr))
	}

	if Elem(Typ[Int]) != nil {
		t.Errorf("Elem(int) = %v, want nil", Elem(Typ[Int]))
	}
}

func TestComparable(t *testing.T) {
	if !Comparable(Typ[Int]) || !Comparable(Typ[Char]) || !Comparable(Typ[Bool]) {
		t.Error("basic value types should be comparable")
	}
	if !Comparable(NewPointer(Typ[Int])) {
		t.Error("pointers should be comparable")
	}
	if Comparable(Typ[Void]) {
		t.Error("void should not be comparable")
	}
	if Comparable(NewArray(3, Typ[Int])) {
		t.Error("arrays should not be comparable")
	}
}

func TestOrdered(t *testing.T) {
	if !Ordered(Typ[Int]) || !Ordered(Typ[Char]) {
		t.Error("integer types should be ordered")
	}
	if Ordered(Typ[Bool]) || Ordered(Typ[Void]) {
		t.Error("bool and void should not be ordered")
	}
}

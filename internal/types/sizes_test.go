package types

import (
	"testing"
)

func TestSizeof(t *testing.T) {
	sizes := DefaultSizes

	tests := []struct {
		typ  Type
		want int64
	}{
		{Typ[Bool], SizeBool},
		{Typ[Char], SizeChar},
		{Typ[Int], SizeInt},
		{NewPointer(Typ[Int]), SizePtr},
		{NewPointer(NewArray(4, Typ[Int])), SizePtr},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			got := sizes.Sizeof(tt.typ)
			if got != tt.want {
				t.Errorf("Sizeof(%s) = %d, want %d", tt.typ, got, tt.want)
			}
		})
	}
}

func TestAlignof(t *testing.T) {
	sizes := DefaultSizes

	tests := []struct {
		typ  Type
		want int64
	}{
		{Typ[Bool], 1},
		{Typ[Char], 1},
		{Typ[Int], 4},
		{NewPointer(Typ[Int]), 8},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			got := sizes.Alignof(tt.typ)
			if got != tt.want {
				t.Errorf("Alignof(%s) = %d, want %d", tt.typ, got, tt.want)
			}
		})
	}
}

func TestArraySize(t *testing.T) {
	sizes := DefaultSizes

	tests := []struct {
		name string
		typ  Type
		want int64
	}{
		{"int[10]", NewArray(10, Typ[Int]), 40},
		{"char[16]", NewArray(16, Typ[Char]), 16},
		{"int[2][3]", NewArray(2, NewArray(3, Typ[Int])), 24},
		{"int[2][3][4]", NewArray(2, NewArray(3, NewArray(4, Typ[Int]))), 96},
		{"int[0]", NewArray(0, Typ[Int]), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sizes.Sizeof(tt.typ)
			if got != tt.want {
				t.Errorf("Sizeof(%s) = %d, want %d", tt.typ, got, tt.want)
			}
		})
	}
}

func TestArrayAlign(t *testing.T) {
	sizes := DefaultSizes

	// An array aligns as its element type
	if got := sizes.Alignof(NewArray(10, Typ[Int])); got != 4 {
		t.Errorf("Alignof(int[10]) = %d, want 4", got)
	}
	if got := sizes.Alignof(NewArray(10, Typ[Char])); got != 1 {
		t.Errorf("Alignof(char[10]) = %d, want 1", got)
	}
	if got := sizes.Alignof(NewArray(0, Typ[Int])); got != 1 {
		t.Errorf("Alignof(int[0]) = %d, want 1", got)
	}
}

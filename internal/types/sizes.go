package types

// Target layout constants. minic targets a single 64-bit data model,
// so these are fixed rather than configurable per platform.
const (
	SizeBool = 1
	SizeChar = 1
	SizeInt  = 4
	SizePtr  = 8
)

// Sizes provides size and alignment calculations for types.
type Sizes struct{}

// DefaultSizes is the default Sizes implementation.
var DefaultSizes = &Sizes{}

// Sizeof returns the size of type T in bytes.
func (s *Sizes) Sizeof(T Type) int64 {
	switch t := T.Underlying().(type) {
	case *Basic:
		return s.basicSize(t.Kind())
	case *Array:
		return t.Len() * s.Sizeof(t.Elem())
	case *Pointer:
		return SizePtr
	case *Func:
		return SizePtr
	}
	return 0
}

// Alignof returns the alignment of type T in bytes.
func (s *Sizes) Alignof(T Type) int64 {
	switch t := T.Underlying().(type) {
	case *Basic:
		return s.basicSize(t.Kind())
	case *Array:
		if t.Len() == 0 {
			return 1
		}
		return s.Alignof(t.Elem())
	case *Pointer:
		return SizePtr
	case *Func:
		return SizePtr
	}
	return 1
}

// basicSize returns the size of a basic type in bytes.
// Basic types are naturally aligned, so this doubles as the alignment.
func (s *Sizes) basicSize(kind BasicKind) int64 {
	switch kind {
	case Bool:
		return SizeBool
	case Char:
		return SizeChar
	case Int:
		return SizeInt
	default:
		// Invalid and void have no concrete size
		return 0
	}
}

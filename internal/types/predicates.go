package types

// Identical reports whether x and y are identical types.
func Identical(x, y Type) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}
	return identical(x, y)
}

func identical(x, y Type) bool {
	switch x := x.(type) {
	case *Basic:
		if y, ok := y.(*Basic); ok {
			return x.kind == y.kind
		}
	case *Array:
		if y, ok := y.(*Array); ok {
			return x.len == y.len && Identical(x.elem, y.elem)
		}
	case *Pointer:
		if y, ok := y.(*Pointer); ok {
			return Identical(x.base, y.base)
		}
	case *Func:
		if y, ok := y.(*Func); ok {
			return identicalFuncs(x, y)
		}
	}
	return false
}

func identicalFuncs(x, y *Func) bool {
	if len(x.params) != len(y.params) {
		return false
	}
	for i := range x.params {
		if !Identical(x.params[i].Type(), y.params[i].Type()) {
			return false
		}
	}
	return Identical(x.result, y.result)
}

// IsBooleanType reports whether T is the boolean type.
func IsBooleanType(T Type) bool {
	b, ok := T.Underlying().(*Basic)
	return ok && b.info&IsBoolean != 0
}

// IsIntegerType reports whether T is an integer-valued type (int or char).
func IsIntegerType(T Type) bool {
	b, ok := T.Underlying().(*Basic)
	return ok && b.info&IsInteger != 0
}

// IsVoid reports whether T is the void type.
func IsVoid(T Type) bool {
	b, ok := T.Underlying().(*Basic)
	return ok && b.kind == Void
}

// IsPointer reports whether T is a pointer type (*T).
func IsPointer(T Type) bool {
	_, ok := T.Underlying().(*Pointer)
	return ok
}

// IsArray reports whether T is an array type.
func IsArray(T Type) bool {
	_, ok := T.Underlying().(*Array)
	return ok
}

// IsScalar reports whether T is a scalar value type: an integer,
// a boolean, or a pointer. Scalars are the only loadable values.
func IsScalar(T Type) bool {
	return IsIntegerType(T) || IsBooleanType(T) || IsPointer(T)
}

// Elem returns the element type of an array or pointer type,
// or nil if T is neither.
func Elem(T Type) Type {
	switch t := T.Underlying().(type) {
	case *Array:
		return t.elem
	case *Pointer:
		return t.base
	}
	return nil
}

// Comparable reports whether values of type T can be compared with == or !=.
func Comparable(T Type) bool {
	switch t := T.Underlying().(type) {
	case *Basic:
		return t.kind != Invalid && t.kind != Void
	case *Pointer:
		return true
	}
	return false
}

// Ordered reports whether values of type T can be ordered with <, <=, >, >=.
func Ordered(T Type) bool {
	return IsIntegerType(T)
}

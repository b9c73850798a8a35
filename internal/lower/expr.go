package lower

import (
	"fmt"
	"strconv"

	"github.com/minic-lang/minic/internal/ir"
	"github.com/minic-lang/minic/internal/syntax"
	"github.com/minic-lang/minic/internal/types"
)

// expr lowers an expression. The result is nil for calls to void
// functions; every other path yields a value. Callers that need a value
// use exprValue instead.
func (l *lowerer) expr(e syntax.Expr) *ir.Value {
	switch e := e.(type) {
	case *syntax.BasicLit:
		return l.basicLit(e)

	case *syntax.LValue:
		return l.lvalueExpr(e)

	case *syntax.Operation:
		if e.Y == nil {
			return l.unaryExpr(e)
		}
		return l.binaryExpr(e)

	case *syntax.CondExpr:
		return l.condExpr(e)

	case *syntax.CallExpr:
		return l.callExpr(e)

	case *syntax.ParenExpr:
		return l.expr(e.X)

	default:
		panic(fmt.Sprintf("lower.expr: unhandled %T", e))
	}
}

// exprValue lowers an expression that must produce a value. A void call
// reports an error and yields a zero placeholder so lowering continues.
func (l *lowerer) exprValue(e syntax.Expr) *ir.Value {
	v := l.expr(e)
	if v == nil {
		l.error(e.Pos(), "void function call used as value")
		return l.bld.Const(types.Typ[types.Int], 0)
	}
	return v
}

func (l *lowerer) basicLit(e *syntax.BasicLit) *ir.Value {
	switch e.Kind {
	case syntax.IntLit:
		n, err := strconv.ParseInt(e.Value, 0, 64)
		if err != nil {
			l.error(e.Pos(), "integer literal out of range: "+e.Value)
			n = 0
		}
		return l.bld.Const(types.Typ[types.Int], n)

	case syntax.CharLit:
		var n int64
		for _, r := range e.Value {
			n = int64(r)
			break
		}
		return l.bld.Const(types.Typ[types.Char], n)

	case syntax.StringLit:
		return l.stringLit(e)
	}
	panic(fmt.Sprintf("lower.basicLit: unhandled kind %s", e.Kind))
}

// stringLit interns a string literal as a private NUL-terminated char
// array global and evaluates to a pointer to its first element.
func (l *lowerer) stringLit(e *syntax.BasicLit) *ir.Value {
	data := e.Value + "\x00"
	g := &ir.Global{
		Name: ".str" + strconv.Itoa(l.strs),
		Typ:  types.NewArray(int64(len(data)), types.Typ[types.Char]),
		Str:  data,
	}
	l.strs++
	l.m.AddGlobal(g)

	base := l.bld.GlobalAddr(g)
	zero := l.bld.Const(types.Typ[types.Int], 0)
	return l.bld.ElemPtr(types.Typ[types.Char], base, zero, zero)
}

// ----------------------------------------------------------------------------
// LValues

// lvalueExpr lowers a variable reference in value position. An array
// accessed with fewer subscripts than dimensions decays to a pointer to
// the remaining aggregate, so arrays can be passed to functions.
func (l *lowerer) lvalueExpr(e *syntax.LValue) *ir.Value {
	sym := l.lookup(e)
	if sym == nil {
		return l.bld.Const(types.Typ[types.Int], 0)
	}
	n := len(sym.Dims)
	k := len(e.Indices)

	// A decayed pointer parameter referenced bare already holds the value.
	if k == 0 && n > 0 && sym.Dims[0] == 0 {
		return l.bld.Load(sym.Type, sym.Val)
	}

	ptr, typ, ok := l.access(sym, e, true)
	if !ok {
		return l.bld.Const(types.Typ[types.Int], 0)
	}
	if k < n {
		// Partial subscripts: the element address is the decayed value.
		return ptr
	}
	return l.bld.Load(typ, ptr)
}

// assignAddr resolves an assignment target to a storage address and the
// stored element type.
func (l *lowerer) assignAddr(e *syntax.LValue) (*ir.Value, types.Type, bool) {
	sym := l.lookup(e)
	if sym == nil {
		return nil, nil, false
	}
	if sym.Const {
		l.error(e.Pos(), "cannot assign to const variable: "+e.Name.Value)
		return nil, nil, false
	}
	n := len(sym.Dims)
	k := len(e.Indices)
	decayed := n > 0 && sym.Dims[0] == 0
	// A bare decayed parameter may be reassigned; an array (or a partly
	// subscripted one) may not.
	if k < n && !(decayed && k == 0) {
		l.error(e.Pos(), "cannot assign to array: "+e.Name.Value)
		return nil, nil, false
	}
	ptr, typ, ok := l.access(sym, e, false)
	if !ok {
		return nil, nil, false
	}
	return ptr, typ, true
}

// lookup resolves the name of an lvalue, reporting undeclared and
// misused names.
func (l *lowerer) lookup(e *syntax.LValue) *Symbol {
	sym := l.syms.Lookup(e.Name.Value)
	if sym == nil {
		l.error(e.Pos(), "undeclared variable: "+e.Name.Value)
		return nil
	}
	if sym.IsFunc {
		l.error(e.Pos(), "function used as variable: "+e.Name.Value)
		return nil
	}
	return sym
}

// access computes the address named by an lvalue's subscript chain and
// the pointee type it reaches.
//
// Local and global arrays are indexed through one ElemPtr carrying a
// leading zero index. A decayed pointer parameter is first loaded, then
// indexed without the leading zero; its recorded dimensions rebuild the
// array types stepped through. In value position a partial subscript
// chain appends one more zero index, decaying the remaining aggregate
// to a pointer to its first element.
func (l *lowerer) access(sym *Symbol, e *syntax.LValue, value bool) (*ir.Value, types.Type, bool) {
	intTyp := types.Typ[types.Int]
	n := len(sym.Dims)
	k := len(e.Indices)
	if k > n {
		l.error(e.Pos(), "too many array subscripts: "+e.Name.Value)
		return nil, nil, false
	}

	decayed := n > 0 && sym.Dims[0] == 0
	base := scalarBase(sym.Type)

	// Subscript values (converted to int) are evaluated left to right.
	idx := make([]*ir.Value, 0, k+2)
	for _, ie := range e.Indices {
		idx = append(idx, l.convert(l.exprValue(ie), intTyp))
	}

	if decayed {
		if k == 0 {
			// Reassigning the parameter stores through its slot.
			return sym.Val, sym.Type, true
		}
		ptr := l.bld.Load(sym.Type, sym.Val)
		rest := sym.Dims[k:]
		if value && len(rest) > 0 {
			idx = append(idx, l.bld.Const(intTyp, 0))
			rest = rest[1:]
		}
		elem := arrayOf(rest, base)
		return l.bld.ElemPtr(elem, ptr, idx...), elem, true
	}

	var ptr *ir.Value
	if sym.IsGlobal {
		ptr = l.bld.GlobalAddr(sym.Global)
	} else {
		ptr = sym.Val
	}
	if n == 0 {
		return ptr, sym.Type, true
	}

	rest := sym.Dims[k:]
	if value && len(rest) > 0 {
		idx = append(idx, l.bld.Const(intTyp, 0))
		rest = rest[1:]
	}
	elem := arrayOf(rest, base)
	indices := append([]*ir.Value{l.bld.Const(intTyp, 0)}, idx...)
	return l.bld.ElemPtr(elem, ptr, indices...), elem, true
}

// ----------------------------------------------------------------------------
// Operators

func (l *lowerer) unaryExpr(e *syntax.Operation) *ir.Value {
	intTyp := types.Typ[types.Int]
	switch e.Op.String() {
	case "+":
		return l.convert(l.exprValue(e.X), intTyp)
	case "-":
		return l.bld.Neg(intTyp, l.convert(l.exprValue(e.X), intTyp))
	case "~":
		return l.bld.Not(intTyp, l.convert(l.exprValue(e.X), intTyp))
	case "!":
		return l.bld.LogicalNot(l.cond(e.X))
	}
	panic(fmt.Sprintf("lower.unaryExpr: unhandled operator %s", e.Op))
}

func (l *lowerer) binaryExpr(e *syntax.Operation) *ir.Value {
	if e.Op.IsLogical() {
		return l.shortCircuit(e)
	}

	op, isCmp := binOp(e.Op)
	x := l.exprValue(e.X)
	y := l.exprValue(e.Y)

	if isCmp {
		return l.cmp(op, x, y, e.Pos())
	}
	intTyp := types.Typ[types.Int]
	return l.bld.BinOp(op, intTyp, l.convert(x, intTyp), l.convert(y, intTyp))
}

// cmp emits a comparison. Pointer operands compare against each other
// or against a literal zero, which becomes a null of the pointer type.
func (l *lowerer) cmp(op ir.Op, x, y *ir.Value, pos syntax.Pos) *ir.Value {
	if types.IsPointer(x.Type) || types.IsPointer(y.Type) {
		if op != ir.OpEq && op != ir.OpNeq {
			l.error(pos, "pointers support only == and != comparisons")
			return l.bld.ConstBool(false)
		}
		if types.IsPointer(x.Type) {
			y = l.asPointer(y, x.Type)
		} else {
			x = l.asPointer(x, y.Type)
		}
		return l.bld.Cmp(op, x, y)
	}
	intTyp := types.Typ[types.Int]
	return l.bld.Cmp(op, l.convert(x, intTyp), l.convert(y, intTyp))
}

// asPointer rewrites a literal zero operand of a pointer comparison
// into a null of the wanted pointer type.
func (l *lowerer) asPointer(v *ir.Value, want types.Type) *ir.Value {
	if types.IsPointer(v.Type) {
		return v
	}
	if v.Op == ir.OpConst && v.AuxInt == 0 {
		v.Op = ir.OpConstNull
		v.Type = want
	}
	return v
}

// binOp maps a binary operator token to its IR op. The second result
// reports whether the op is a comparison.
func binOp(tok syntax.Token) (ir.Op, bool) {
	switch tok.String() {
	case "+":
		return ir.OpAdd, false
	case "-":
		return ir.OpSub, false
	case "*":
		return ir.OpMul, false
	case "/":
		return ir.OpDiv, false
	case "%":
		return ir.OpRem, false
	case "&":
		return ir.OpAnd, false
	case "|":
		return ir.OpOr, false
	case "^":
		return ir.OpXor, false
	case "<<":
		return ir.OpShl, false
	case ">>":
		return ir.OpShr, false
	case "==":
		return ir.OpEq, true
	case "!=":
		return ir.OpNeq, true
	case "<":
		return ir.OpLt, true
	case "<=":
		return ir.OpLeq, true
	case ">":
		return ir.OpGt, true
	case ">=":
		return ir.OpGeq, true
	}
	panic(fmt.Sprintf("lower.binOp: unhandled token %s", tok))
}

// shortCircuit lowers && and ||. The right operand is evaluated in its
// own block only when the left operand does not decide the result; a
// two-way phi merges the short-circuit constant with the right value.
func (l *lowerer) shortCircuit(e *syntax.Operation) *ir.Value {
	isAnd := e.Op.String() == "&&"
	prefix := "or"
	if isAnd {
		prefix = "and"
	}

	left := l.cond(e.X)

	bRhs := l.bld.NewBlock(prefix + ".rhs")
	bShort := l.bld.NewBlock(prefix + ".short")
	bMerge := l.bld.NewBlock(prefix + ".end")

	if isAnd {
		l.bld.CondBr(left, bRhs, bShort)
	} else {
		l.bld.CondBr(left, bShort, bRhs)
	}

	l.setBlock(bShort)
	shortVal := l.bld.ConstBool(!isAnd)
	l.bld.Br(bMerge)

	l.setBlock(bRhs)
	right := l.cond(e.Y)
	l.bld.Br(bMerge)

	l.setBlock(bMerge)
	return l.bld.Phi(types.Typ[types.Bool], shortVal, right)
}

// condExpr lowers a ternary conditional through then/else/merge blocks
// with a phi. Both branch values must have the same type.
func (l *lowerer) condExpr(e *syntax.CondExpr) *ir.Value {
	cond := l.cond(e.Cond)

	bThen := l.bld.NewBlock("cond.then")
	bElse := l.bld.NewBlock("cond.else")
	bMerge := l.bld.NewBlock("cond.end")
	l.bld.CondBr(cond, bThen, bElse)

	l.setBlock(bThen)
	thenVal := l.exprValue(e.Then)
	l.bld.Br(bMerge)

	l.setBlock(bElse)
	elseVal := l.exprValue(e.Else)
	l.bld.Br(bMerge)

	if !types.Identical(thenVal.Type, elseVal.Type) {
		l.error(e.Pos(), "ternary branch types do not match")
	}

	l.setBlock(bMerge)
	return l.bld.Phi(thenVal.Type, thenVal, elseVal)
}

// ----------------------------------------------------------------------------
// Calls

func (l *lowerer) callExpr(e *syntax.CallExpr) *ir.Value {
	sym := l.syms.Lookup(e.Fun.Value)
	if sym == nil {
		l.error(e.Pos(), "undeclared function: "+e.Fun.Value)
		return l.bld.Const(types.Typ[types.Int], 0)
	}
	if !sym.IsFunc {
		l.error(e.Pos(), "called object is not a function: "+e.Fun.Value)
		return l.bld.Const(types.Typ[types.Int], 0)
	}

	sig := sym.Fn.Sig
	if len(e.Args) != sig.NumParams() {
		l.error(e.Pos(), "incorrect number of arguments for function: "+e.Fun.Value)
		if types.IsVoid(sig.Result()) {
			return nil
		}
		return l.bld.Const(sig.Result(), 0)
	}

	args := make([]*ir.Value, len(e.Args))
	for i, arg := range e.Args {
		args[i] = l.convert(l.exprValue(arg), sig.Param(i).Type())
	}
	v := l.bld.Call(sym.Fn, args...)
	if types.IsVoid(sig.Result()) {
		return nil
	}
	return v
}

// ----------------------------------------------------------------------------
// Conversions

// cond lowers an expression used as a branch condition and converts it
// to bool: bool passes through, integers compare against zero, pointers
// against null.
func (l *lowerer) cond(e syntax.Expr) *ir.Value {
	v := l.exprValue(e)
	switch {
	case types.IsBooleanType(v.Type):
		return v
	case types.IsIntegerType(v.Type):
		zero := l.bld.Const(v.Type, 0)
		return l.bld.Cmp(ir.OpNeq, v, zero)
	case types.IsPointer(v.Type):
		null := l.bld.Null(v.Type)
		return l.bld.Cmp(ir.OpNeq, v, null)
	}
	l.error(e.Pos(), "condition is not scalar")
	return l.bld.ConstBool(false)
}

// convert adjusts a value to the type its context requires. Bool
// materializes to the integers 0 and 1; char and int convert freely.
// The IR has no integer width conversion ops, and every value here is
// emitted for a single use site, so an integer retype happens in place.
func (l *lowerer) convert(v *ir.Value, want types.Type) *ir.Value {
	if v == nil || want == nil || types.Identical(v.Type, want) {
		return v
	}
	if types.IsBooleanType(v.Type) && types.IsIntegerType(want) {
		return l.boolToInt(v, want)
	}
	if types.IsIntegerType(v.Type) && types.IsIntegerType(want) {
		v.Type = want
		return v
	}
	return v
}

// boolToInt materializes a bool as an integer 1 or 0 through a branch
// and a phi.
func (l *lowerer) boolToInt(v *ir.Value, want types.Type) *ir.Value {
	bTrue := l.bld.NewBlock("bool.true")
	bFalse := l.bld.NewBlock("bool.false")
	bMerge := l.bld.NewBlock("bool.end")
	l.bld.CondBr(v, bTrue, bFalse)

	l.setBlock(bTrue)
	one := l.bld.Const(want, 1)
	l.bld.Br(bMerge)

	l.setBlock(bFalse)
	zero := l.bld.Const(want, 0)
	l.bld.Br(bMerge)

	l.setBlock(bMerge)
	return l.bld.Phi(want, one, zero)
}

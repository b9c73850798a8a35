// Package lower translates the AST to the IR.
//
// Semantic analysis is fused into the translation: one pass over the
// declarations resolves names against a scoped symbol table, checks the
// semantic rules, and emits control flow and values through an ir.Builder.
// Errors are reported through a callback and never stop the pass, so a
// single run surfaces every problem in the file.
package lower

import (
	"strconv"

	"github.com/minic-lang/minic/internal/ir"
	"github.com/minic-lang/minic/internal/syntax"
	"github.com/minic-lang/minic/internal/types"
)

// lowerer holds the state for lowering one file.
type lowerer struct {
	m    *ir.Module
	syms *SymTab

	errh   func(pos syntax.Pos, msg string)
	errcnt int

	fn  *ir.Func
	bld *ir.Builder
	b   *ir.Block // insertion block; nil while lowering unreachable code

	loops []loopScope // innermost last
	strs  int         // counter for string literal globals
}

// loopScope records the branch targets of one enclosing loop.
type loopScope struct {
	brk  *ir.Block
	cont *ir.Block
}

// File lowers a parsed file to an IR module. Semantic errors are reported
// through errh and counted in the second result; the returned module
// contains every declaration that lowered and verified cleanly.
func File(name string, file *syntax.File, errh func(pos syntax.Pos, msg string)) (*ir.Module, int) {
	l := &lowerer{
		m:    ir.NewModule(name),
		syms: NewSymTab(),
		errh: errh,
	}
	for _, d := range file.Decls {
		switch d := d.(type) {
		case *syntax.VarDecl:
			l.globalDecl(d)
		case *syntax.FuncDecl:
			l.funcDecl(d)
		}
	}
	return l.m, l.errcnt
}

func (l *lowerer) error(pos syntax.Pos, msg string) {
	l.errcnt++
	if l.errh != nil {
		l.errh(pos, msg)
	}
}

// ----------------------------------------------------------------------------
// Declarations

// globalDecl lowers a file-scope variable declaration.
func (l *lowerer) globalDecl(d *syntax.VarDecl) {
	base := specType(d.Spec)
	for _, def := range d.Defs {
		typ, dims := l.declType(base, def)

		g := &ir.Global{Name: def.Name.Value, Typ: typ}
		if def.Init != nil {
			if len(dims) > 0 {
				// Global arrays are zero-initialized; a written
				// initializer is ignored.
			} else if v, ok := constExpr(def.Init); ok {
				g.Init = v
				g.HasInit = true
			} else {
				l.error(def.Init.Pos(), "global variable initializer must be constant")
			}
		}

		sym := &Symbol{
			Name:     def.Name.Value,
			Type:     typ,
			Global:   g,
			Const:    d.Spec.Const,
			IsGlobal: true,
			Dims:     dims,
		}
		if !l.syms.Declare(sym) {
			l.error(def.Name.Pos(), "redeclaration of variable: "+def.Name.Value)
			continue
		}
		l.m.AddGlobal(g)
	}
}

// funcDecl lowers a function definition.
func (l *lowerer) funcDecl(fd *syntax.FuncDecl) {
	if fd.Body == nil {
		return
	}
	sig, dims := l.signature(fd)

	fn := ir.NewFunc(fd.Name.Value, sig)
	sym := &Symbol{
		Name:   fd.Name.Value,
		Type:   sig,
		Fn:     fn,
		IsFunc: true,
	}
	if !l.syms.Declare(sym) {
		l.error(fd.Name.Pos(), "redeclaration of function: "+fd.Name.Value)
		return
	}
	l.m.AddFunc(fn)

	l.fn = fn
	l.bld = ir.NewBuilder(fn)
	l.setBlock(fn.Entry)

	// Parameters share a scope with the function body.
	l.syms.EnterScope()
	for i, param := range sig.Params() {
		argVal := l.bld.Arg(param.Type(), i, param.Name())
		slot := l.bld.Alloca(param.Type(), param.Name())
		l.bld.Store(slot, argVal)

		psym := &Symbol{
			Name:  param.Name(),
			Type:  param.Type(),
			Val:   slot,
			Dims:  dims[i],
			Const: fd.Params[i].Spec.Const,
		}
		if !l.syms.Declare(psym) {
			l.error(fd.Params[i].Name.Pos(), "redeclaration of variable: "+param.Name())
		}
	}

	l.stmts(fd.Body.Stmts)
	l.syms.ExitScope()

	// Implicit return for void functions falling off the end. A non-void
	// function with an open final block fails verification below.
	if l.b != nil && !l.b.Terminated() && types.IsVoid(sig.Result()) {
		l.bld.RetVoid()
	}

	if err := ir.Verify(fn); err != nil {
		l.error(fd.Pos(), "function verification failed: "+fn.Name)
		l.m.RemoveFunc(fn.Name)
	}

	l.fn = nil
	l.bld = nil
	l.b = nil
}

// signature builds the function type, decaying array parameters to
// pointers. The second result carries the per-parameter dimension
// metadata for the symbol table (nil for scalar parameters).
func (l *lowerer) signature(fd *syntax.FuncDecl) (*types.Func, [][]int64) {
	params := make([]*types.Var, len(fd.Params))
	dims := make([][]int64, len(fd.Params))
	for i, p := range fd.Params {
		base := specType(p.Spec)
		typ := base
		if p.IsArray {
			inner := make([]int64, 0, len(p.Dims))
			for _, d := range p.Dims {
				inner = append(inner, l.dimSize(d))
			}
			typ = types.NewPointer(arrayOf(inner, base))
			dims[i] = append([]int64{0}, inner...)
		}
		params[i] = types.NewVar(p.Name.Value, typ)
	}
	return types.NewFunc(params, specType(fd.Result)), dims
}

// declType folds a definition's dimension expressions and builds the
// declared type.
func (l *lowerer) declType(base types.Type, def *syntax.VarDef) (types.Type, []int64) {
	if len(def.Dims) == 0 {
		return base, nil
	}
	dims := make([]int64, 0, len(def.Dims))
	for _, d := range def.Dims {
		dims = append(dims, l.dimSize(d))
	}
	return arrayOf(dims, base), dims
}

// dimSize folds one array dimension, which must be a positive constant.
// Bad dimensions report an error and recover with size 1.
func (l *lowerer) dimSize(d syntax.Expr) int64 {
	n, ok := constExpr(d)
	if !ok {
		l.error(d.Pos(), "array size must be constant")
		return 1
	}
	if n <= 0 {
		l.error(d.Pos(), "array size must be positive")
		return 1
	}
	return n
}

// setBlock moves the insertion point. A nil block marks the current
// position as unreachable.
func (l *lowerer) setBlock(b *ir.Block) {
	l.b = b
	if b != nil {
		l.bld.SetInsertPoint(b)
	}
}

// removeDead drops a block that ended up with no predecessors.
func (l *lowerer) removeDead(b *ir.Block) {
	for i, blk := range l.fn.Blocks {
		if blk == b {
			l.fn.Blocks = append(l.fn.Blocks[:i], l.fn.Blocks[i+1:]...)
			return
		}
	}
}

// ----------------------------------------------------------------------------
// Types

// specType maps a declared type spec to its type descriptor.
func specType(spec syntax.TypeSpec) types.Type {
	switch spec.Tok.String() {
	case "int":
		return types.Typ[types.Int]
	case "char":
		return types.Typ[types.Char]
	case "void":
		return types.Typ[types.Void]
	}
	return types.Typ[types.Invalid]
}

// arrayOf builds a (possibly nested) array type from dimensions listed
// outermost first. With no dimensions it returns elem unchanged.
func arrayOf(dims []int64, elem types.Type) types.Type {
	for i := len(dims) - 1; i >= 0; i-- {
		elem = types.NewArray(dims[i], elem)
	}
	return elem
}

// scalarBase strips arrays and one level of pointer to reach the
// element type a subscript chain bottoms out at.
func scalarBase(t types.Type) types.Type {
	for {
		switch u := t.(type) {
		case *types.Array:
			t = u.Elem()
		case *types.Pointer:
			t = u.Elem()
		default:
			return t
		}
	}
}

// ----------------------------------------------------------------------------
// Constant folding

// constExpr folds an expression to an integer constant at compile time.
// Only literals and operators over them fold; any name reference stops
// the fold.
func constExpr(e syntax.Expr) (int64, bool) {
	switch e := e.(type) {
	case *syntax.BasicLit:
		return constLit(e)

	case *syntax.ParenExpr:
		return constExpr(e.X)

	case *syntax.Operation:
		if e.Y == nil {
			return constUnary(e)
		}
		return constBinary(e)

	case *syntax.CondExpr:
		c, ok := constExpr(e.Cond)
		if !ok {
			return 0, false
		}
		if c != 0 {
			return constExpr(e.Then)
		}
		return constExpr(e.Else)
	}
	return 0, false
}

func constLit(e *syntax.BasicLit) (int64, bool) {
	switch e.Kind {
	case syntax.IntLit:
		// Base 0 follows the C prefixes: 0x hex, leading 0 octal.
		n, err := strconv.ParseInt(e.Value, 0, 64)
		if err != nil {
			return 0, false
		}
		return n, true

	case syntax.CharLit:
		for _, r := range e.Value {
			return int64(r), true
		}
	}
	return 0, false
}

func constUnary(e *syntax.Operation) (int64, bool) {
	x, ok := constExpr(e.X)
	if !ok {
		return 0, false
	}
	switch e.Op.String() {
	case "+":
		return x, true
	case "-":
		return -x, true
	case "~":
		return ^x, true
	case "!":
		return b2i(x == 0), true
	}
	return 0, false
}

func constBinary(e *syntax.Operation) (int64, bool) {
	x, ok := constExpr(e.X)
	if !ok {
		return 0, false
	}
	y, ok := constExpr(e.Y)
	if !ok {
		return 0, false
	}
	switch e.Op.String() {
	case "+":
		return x + y, true
	case "-":
		return x - y, true
	case "*":
		return x * y, true
	case "/":
		if y == 0 {
			return 0, false
		}
		return x / y, true
	case "%":
		if y == 0 {
			return 0, false
		}
		return x % y, true
	case "&":
		return x & y, true
	case "|":
		return x | y, true
	case "^":
		return x ^ y, true
	case "<<":
		if y < 0 || y >= 64 {
			return 0, false
		}
		return x << uint(y), true
	case ">>":
		if y < 0 || y >= 64 {
			return 0, false
		}
		return x >> uint(y), true
	case "==":
		return b2i(x == y), true
	case "!=":
		return b2i(x != y), true
	case "<":
		return b2i(x < y), true
	case "<=":
		return b2i(x <= y), true
	case ">":
		return b2i(x > y), true
	case ">=":
		return b2i(x >= y), true
	case "&&":
		return b2i(x != 0 && y != 0), true
	case "||":
		return b2i(x != 0 || y != 0), true
	}
	return 0, false
}

func b2i(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

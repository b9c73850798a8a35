package lower

import (
	"fmt"

	"github.com/minic-lang/minic/internal/ir"
	"github.com/minic-lang/minic/internal/syntax"
	"github.com/minic-lang/minic/internal/types"
)

// stmts lowers a list of statements, stopping at the first point where
// the current block has been terminated (code after return, break, or
// continue is unreachable and not emitted).
func (l *lowerer) stmts(list []syntax.Stmt) {
	for _, s := range list {
		if l.b == nil {
			break
		}
		l.stmt(s)
	}
}

func (l *lowerer) stmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.EmptyStmt:
		// Nothing to do.

	case *syntax.DeclStmt:
		l.varDecl(s.Decl)

	case *syntax.ExprStmt:
		l.expr(s.X)

	case *syntax.AssignStmt:
		l.assignStmt(s)

	case *syntax.BlockStmt:
		l.syms.EnterScope()
		l.stmts(s.Stmts)
		l.syms.ExitScope()

	case *syntax.IfStmt:
		l.ifStmt(s)

	case *syntax.WhileStmt:
		l.whileStmt(s)

	case *syntax.ForStmt:
		l.forStmt(s)

	case *syntax.ReturnStmt:
		l.returnStmt(s)

	case *syntax.BranchStmt:
		l.branchStmt(s)

	default:
		panic(fmt.Sprintf("lower.stmt: unhandled %T", s))
	}
}

// varDecl lowers a local variable declaration: one stack slot per
// definition, plus initializer stores.
func (l *lowerer) varDecl(d *syntax.VarDecl) {
	base := specType(d.Spec)
	for _, def := range d.Defs {
		typ, dims := l.declType(base, def)

		slot := l.bld.Alloca(typ, def.Name.Value)
		sym := &Symbol{
			Name:  def.Name.Value,
			Type:  typ,
			Val:   slot,
			Const: d.Spec.Const,
			Dims:  dims,
		}
		if !l.syms.Declare(sym) {
			l.error(def.Name.Pos(), "redeclaration of variable: "+def.Name.Value)
			continue
		}
		if def.Init == nil {
			continue
		}
		if len(dims) == 0 {
			val := l.exprValue(def.Init)
			l.bld.Store(slot, l.convert(val, typ))
			continue
		}
		l.arrayInit(sym, dims, def.Init)
	}
}

// arrayInit stores an array initializer element by element. Nested brace
// lists are flattened depth-first and truncated at the element count; a
// bare scalar initializer broadcasts to every element.
func (l *lowerer) arrayInit(sym *Symbol, dims []int64, init syntax.Expr) {
	total := int64(1)
	for _, d := range dims {
		total *= d
	}
	elem := scalarBase(sym.Type)

	list, ok := init.(*syntax.InitList)
	if !ok {
		val := l.convert(l.exprValue(init), elem)
		for i := int64(0); i < total; i++ {
			l.storeElem(sym, dims, elem, i, val)
		}
		return
	}

	flat := flatten(list, nil)
	if int64(len(flat)) > total {
		flat = flat[:total]
	}
	for i, e := range flat {
		val := l.convert(l.exprValue(e), elem)
		l.storeElem(sym, dims, elem, int64(i), val)
	}
}

// storeElem stores val into the flat element slot i of an array
// variable. The flat index unravels into per-dimension subscripts by
// repeated remainder and divide, last dimension first.
func (l *lowerer) storeElem(sym *Symbol, dims []int64, elem types.Type, i int64, val *ir.Value) {
	subs := make([]int64, len(dims))
	for d := len(dims) - 1; d >= 0; d-- {
		if dims[d] > 0 {
			subs[d] = i % dims[d]
			i /= dims[d]
		}
	}
	intTyp := types.Typ[types.Int]
	indices := make([]*ir.Value, 0, len(dims)+1)
	indices = append(indices, l.bld.Const(intTyp, 0))
	for _, s := range subs {
		indices = append(indices, l.bld.Const(intTyp, s))
	}
	ptr := l.bld.ElemPtr(elem, sym.Val, indices...)
	l.bld.Store(ptr, val)
}

// flatten collects the leaf expressions of a nested initializer list in
// depth-first order.
func flatten(list *syntax.InitList, out []syntax.Expr) []syntax.Expr {
	for _, e := range list.Elems {
		if inner, ok := e.(*syntax.InitList); ok {
			out = flatten(inner, out)
			continue
		}
		out = append(out, e)
	}
	return out
}

func (l *lowerer) assignStmt(s *syntax.AssignStmt) {
	ptr, typ, ok := l.assignAddr(s.LHS)
	val := l.exprValue(s.RHS)
	if !ok {
		return
	}
	l.bld.Store(ptr, l.convert(val, typ))
}

func (l *lowerer) ifStmt(s *syntax.IfStmt) {
	cond := l.cond(s.Cond)

	bThen := l.bld.NewBlock("if.then")
	bEnd := l.bld.NewBlock("if.end")
	bElse := bEnd
	if s.Else != nil {
		bElse = l.bld.NewBlock("if.else")
	}
	l.bld.CondBr(cond, bThen, bElse)

	l.setBlock(bThen)
	l.stmt(s.Then)
	if l.b != nil && !l.b.Terminated() {
		l.bld.Br(bEnd)
	}

	if s.Else != nil {
		l.setBlock(bElse)
		l.stmt(s.Else)
		if l.b != nil && !l.b.Terminated() {
			l.bld.Br(bEnd)
		}
	}

	// Both arms terminated: nothing reaches the merge block.
	if bEnd.NumPreds() == 0 {
		l.removeDead(bEnd)
		l.b = nil
		return
	}
	l.setBlock(bEnd)
}

func (l *lowerer) whileStmt(s *syntax.WhileStmt) {
	bCond := l.bld.NewBlock("while.cond")
	bBody := l.bld.NewBlock("while.body")
	bEnd := l.bld.NewBlock("while.end")

	l.bld.Br(bCond)
	l.setBlock(bCond)
	cond := l.cond(s.Cond)
	l.bld.CondBr(cond, bBody, bEnd)

	l.setBlock(bBody)
	l.loops = append(l.loops, loopScope{brk: bEnd, cont: bCond})
	l.stmt(s.Body)
	l.loops = l.loops[:len(l.loops)-1]
	if l.b != nil && !l.b.Terminated() {
		l.bld.Br(bCond)
	}

	l.setBlock(bEnd)
}

func (l *lowerer) forStmt(s *syntax.ForStmt) {
	// The init clause gets its own scope so the loop variable does not
	// leak into the surrounding block.
	l.syms.EnterScope()
	if s.Init != nil {
		l.stmt(s.Init)
	}

	bCond := l.bld.NewBlock("for.cond")
	bBody := l.bld.NewBlock("for.body")
	bEnd := l.bld.NewBlock("for.end")
	var bInc *ir.Block
	if s.Post != nil {
		bInc = l.bld.NewBlock("for.inc")
	}
	cont := bCond
	if bInc != nil {
		cont = bInc
	}

	l.bld.Br(bCond)
	l.setBlock(bCond)
	if s.Cond != nil {
		cond := l.cond(s.Cond)
		l.bld.CondBr(cond, bBody, bEnd)
	} else {
		l.bld.Br(bBody)
	}

	l.setBlock(bBody)
	l.loops = append(l.loops, loopScope{brk: bEnd, cont: cont})
	l.stmt(s.Body)
	l.loops = l.loops[:len(l.loops)-1]
	if l.b != nil && !l.b.Terminated() {
		l.bld.Br(cont)
	}

	if bInc != nil {
		if bInc.NumPreds() == 0 {
			// Body never falls through or continues.
			l.removeDead(bInc)
		} else {
			l.setBlock(bInc)
			l.stmt(s.Post)
			l.bld.Br(bCond)
		}
	}

	l.syms.ExitScope()

	// An unconditional loop with no break never reaches the exit.
	if bEnd.NumPreds() == 0 {
		l.removeDead(bEnd)
		l.b = nil
		return
	}
	l.setBlock(bEnd)
}

func (l *lowerer) returnStmt(s *syntax.ReturnStmt) {
	if s.Result == nil {
		l.bld.RetVoid()
	} else {
		val := l.exprValue(s.Result)
		l.bld.Ret(l.convert(val, l.fn.Sig.Result()))
	}
	l.b = nil
}

func (l *lowerer) branchStmt(s *syntax.BranchStmt) {
	if len(l.loops) == 0 {
		if s.Tok.IsBreak() {
			l.error(s.Pos(), "break statement outside loop")
		} else {
			l.error(s.Pos(), "continue statement outside loop")
		}
		return
	}
	loop := l.loops[len(l.loops)-1]
	if s.Tok.IsBreak() {
		l.bld.Br(loop.brk)
	} else {
		l.bld.Br(loop.cont)
	}
	l.b = nil
}

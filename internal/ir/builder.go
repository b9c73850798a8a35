package ir

import (
	"github.com/minic-lang/minic/internal/types"
)

// Builder constructs IR for one function. It keeps an insertion cursor:
// new values go into the current block until a terminator is placed.
// Emitting into a terminated block is a bug in the caller, so most
// callers check Terminated() and stop lowering dead code instead.
type Builder struct {
	fn  *Func
	cur *Block
}

// NewBuilder creates a builder positioned at the function's entry block.
func NewBuilder(fn *Func) *Builder {
	return &Builder{fn: fn, cur: fn.Entry}
}

// Func returns the function under construction.
func (bld *Builder) Func() *Func {
	return bld.fn
}

// Block returns the current insertion block.
func (bld *Builder) Block() *Block {
	return bld.cur
}

// SetInsertPoint moves the cursor to the given block.
func (bld *Builder) SetInsertPoint(b *Block) {
	bld.cur = b
}

// Terminated reports whether the current block already has a terminator.
func (bld *Builder) Terminated() bool {
	return bld.cur.Terminated()
}

// NewBlock creates a new open block in the function without moving the cursor.
func (bld *Builder) NewBlock(label string) *Block {
	return bld.fn.NewBlock(label)
}

// ----------------------------------------------------------------------------
// Value emission

// Const emits an integer constant of the given type.
func (bld *Builder) Const(typ types.Type, val int64) *Value {
	v := bld.fn.NewValue(bld.cur, OpConst, typ)
	v.AuxInt = val
	return v
}

// ConstBool emits a boolean constant.
func (bld *Builder) ConstBool(val bool) *Value {
	v := bld.fn.NewValue(bld.cur, OpConst, types.Typ[types.Bool])
	if val {
		v.AuxInt = 1
	}
	return v
}

// Null emits a null pointer constant of the given pointer type.
func (bld *Builder) Null(typ types.Type) *Value {
	return bld.fn.NewValue(bld.cur, OpConstNull, typ)
}

// BinOp emits a binary arithmetic or bitwise operation.
func (bld *Builder) BinOp(op Op, typ types.Type, x, y *Value) *Value {
	return bld.fn.NewValue(bld.cur, op, typ, x, y)
}

// Cmp emits a comparison; the result is always bool.
func (bld *Builder) Cmp(op Op, x, y *Value) *Value {
	return bld.fn.NewValue(bld.cur, op, types.Typ[types.Bool], x, y)
}

// Neg emits arithmetic negation.
func (bld *Builder) Neg(typ types.Type, x *Value) *Value {
	return bld.fn.NewValue(bld.cur, OpNeg, typ, x)
}

// Not emits bitwise complement.
func (bld *Builder) Not(typ types.Type, x *Value) *Value {
	return bld.fn.NewValue(bld.cur, OpNot, typ, x)
}

// LogicalNot emits boolean negation.
func (bld *Builder) LogicalNot(x *Value) *Value {
	return bld.fn.NewValue(bld.cur, OpLogicalNot, types.Typ[types.Bool], x)
}

// Alloca emits a stack slot in the entry block and returns the pointer.
// Slots always live in the entry block so that every path sees them.
func (bld *Builder) Alloca(typ types.Type, name string) *Value {
	v := bld.fn.NewValue(bld.fn.Entry, OpAlloca, types.NewPointer(typ))
	v.Aux = name
	return v
}

// Load emits a load through ptr. The result type is the pointee type.
func (bld *Builder) Load(typ types.Type, ptr *Value) *Value {
	return bld.fn.NewValue(bld.cur, OpLoad, typ, ptr)
}

// Store emits a store of val through ptr.
func (bld *Builder) Store(ptr, val *Value) *Value {
	return bld.fn.NewValue(bld.cur, OpStore, nil, ptr, val)
}

// GlobalAddr emits the address of a global.
func (bld *Builder) GlobalAddr(g *Global) *Value {
	v := bld.fn.NewValue(bld.cur, OpGlobalAddr, types.NewPointer(g.Typ))
	v.Aux = g
	return v
}

// ElemPtr emits an element address computation: base plus a series of
// indices into the pointee type. The result points at an element of
// type elem.
func (bld *Builder) ElemPtr(elem types.Type, base *Value, indices ...*Value) *Value {
	args := append([]*Value{base}, indices...)
	v := bld.fn.NewValue(bld.cur, OpElemPtr, types.NewPointer(elem), args...)
	return v
}

// Call emits a direct call to callee with the given arguments.
// The result type is the callee's result type, or nil for void.
func (bld *Builder) Call(callee *Func, args ...*Value) *Value {
	var typ types.Type
	if callee.Sig != nil && !types.IsVoid(callee.Sig.Result()) {
		typ = callee.Sig.Result()
	}
	v := bld.fn.NewValue(bld.cur, OpCall, typ, args...)
	v.Aux = callee
	return v
}

// Phi emits a phi merging one value per predecessor of the current block.
func (bld *Builder) Phi(typ types.Type, args ...*Value) *Value {
	return bld.fn.NewValue(bld.cur, OpPhi, typ, args...)
}

// Arg emits a function parameter reference in the entry block.
func (bld *Builder) Arg(typ types.Type, index int, name string) *Value {
	v := bld.fn.NewValue(bld.fn.Entry, OpArg, typ)
	v.AuxInt = int64(index)
	v.Aux = name
	return v
}

// ----------------------------------------------------------------------------
// Terminators

// Br terminates the current block with an unconditional jump to target.
func (bld *Builder) Br(target *Block) {
	bld.cur.Kind = BlockPlain
	bld.cur.AddSucc(target)
}

// CondBr terminates the current block with a conditional branch.
func (bld *Builder) CondBr(cond *Value, then, els *Block) {
	bld.cur.Kind = BlockIf
	bld.cur.SetControl(cond)
	bld.cur.AddSucc(then)
	bld.cur.AddSucc(els)
}

// Ret terminates the current block with a value return.
func (bld *Builder) Ret(v *Value) {
	bld.cur.Kind = BlockReturn
	bld.cur.SetControl(v)
}

// RetVoid terminates the current block with a void return.
func (bld *Builder) RetVoid() {
	bld.cur.Kind = BlockReturn
}

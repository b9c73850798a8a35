package ir

import (
	"strings"
	"testing"

	"github.com/minic-lang/minic/internal/types"
)

// wantVerifyError checks that Verify fails with a message containing substr.
func wantVerifyError(t *testing.T, f *Func, substr string) {
	t.Helper()
	err := Verify(f)
	if err == nil {
		t.Fatalf("Verify should fail with %q", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("error should contain %q, got: %v", substr, err)
	}
}

func TestVerifyValid(t *testing.T) {
	f := makeAddFunc()
	if err := Verify(f); err != nil {
		t.Errorf("Verify failed on valid function: %v", err)
	}
}

func TestVerifyNoTerminator(t *testing.T) {
	f := NewFunc("bad_no_term", nil)
	// Entry is left open
	wantVerifyError(t, f, "no terminator")
}

func TestVerifyNilType(t *testing.T) {
	f := NewFunc("bad_nil_type", nil)
	f.NewValue(f.Entry, OpAdd, nil)
	f.Entry.Kind = BlockReturn

	wantVerifyError(t, f, "nil Type")
}

func TestVerifyPhiArgCount(t *testing.T) {
	f := NewFunc("bad_phi", nil)
	entry := f.Entry

	v0 := f.NewValue(entry, OpConst, types.Typ[types.Int])

	// merge with 2 preds but phi with 1 arg
	merge := f.NewBlock("merge")
	phi := f.NewValue(merge, OpPhi, types.Typ[types.Int], v0)
	merge.Kind = BlockReturn
	merge.SetControl(phi)

	side := f.NewBlock("side")
	side.Kind = BlockPlain
	side.AddSucc(merge)

	entry.Kind = BlockIf
	cond := f.NewValue(entry, OpConst, types.Typ[types.Bool])
	entry.SetControl(cond)
	entry.AddSucc(merge)
	entry.AddSucc(side)

	wantVerifyError(t, f, "phi has 1 args but block has 2 preds")
}

func TestVerifyInconsistentEdges(t *testing.T) {
	f := NewFunc("bad_edges", nil)
	f.Entry.Kind = BlockReturn

	// A block that claims entry as a pred without the reverse edge
	orphan := f.NewBlock("orphan")
	orphan.Kind = BlockReturn
	orphan.Preds = append(orphan.Preds, f.Entry)

	wantVerifyError(t, f, "does not have")
}

func TestVerifyEntryNoPreds(t *testing.T) {
	f := NewFunc("bad_entry", nil)
	f.Entry.Kind = BlockReturn

	extra := f.NewBlock("extra")
	extra.Kind = BlockPlain
	extra.AddSucc(f.Entry)

	wantVerifyError(t, f, "predecessors")
}

func TestVerifyValueBlockMismatch(t *testing.T) {
	f := NewFunc("bad_vblock", nil)
	f.Entry.Kind = BlockReturn

	b2 := f.NewBlock("b")
	b2.Kind = BlockReturn

	v := f.NewValue(f.Entry, OpConst, types.Typ[types.Int])
	v.Block = b2

	wantVerifyError(t, f, "Block pointer")
}

func TestVerifyNilArg(t *testing.T) {
	f := NewFunc("bad_arg", nil)
	f.Entry.Kind = BlockReturn

	v := f.NewValue(f.Entry, OpNeg, types.Typ[types.Int])
	v.Args = append(v.Args, nil)

	wantVerifyError(t, f, "is nil")
}

func TestVerifyPlainNoSuccs(t *testing.T) {
	f := NewFunc("bad_plain", nil)
	f.Entry.Kind = BlockPlain

	wantVerifyError(t, f, "plain block has 0 succs")
}

func TestVerifyIfNonBoolControl(t *testing.T) {
	f := NewFunc("bad_if", nil)
	bld := NewBuilder(f)

	cond := bld.Const(types.Typ[types.Int], 1) // int, not bool
	t1 := bld.NewBlock("then")
	t2 := bld.NewBlock("else")
	bld.CondBr(cond, t1, t2)

	t1.Kind = BlockReturn
	t2.Kind = BlockReturn

	wantVerifyError(t, f, "want bool")
}

func TestVerifyMissingReturnValue(t *testing.T) {
	// int function whose path falls off the end
	sig := types.NewFunc(nil, types.Typ[types.Int])
	f := NewFunc("no_ret", sig)
	NewBuilder(f).RetVoid()

	wantVerifyError(t, f, "missing return value")
}

func TestVerifyVoidReturnsValue(t *testing.T) {
	sig := types.NewFunc(nil, types.Typ[types.Void])
	f := NewFunc("void_ret", sig)
	bld := NewBuilder(f)
	bld.Ret(bld.Const(types.Typ[types.Int], 1))

	wantVerifyError(t, f, "void function returns a value")
}

func TestVerifyReturnTypeMismatch(t *testing.T) {
	sig := types.NewFunc(nil, types.Typ[types.Int])
	f := NewFunc("wrong_ret", sig)
	bld := NewBuilder(f)
	bld.Ret(bld.Const(types.Typ[types.Char], 0))

	wantVerifyError(t, f, "want int")
}

func TestVerifyReturnOnAllPaths(t *testing.T) {
	// Both arms return; must verify clean
	sig := types.NewFunc(
		[]*types.Var{types.NewVar("n", types.Typ[types.Int])},
		types.Typ[types.Int])
	f := NewFunc("both_arms", sig)
	bld := NewBuilder(f)

	n := bld.Arg(types.Typ[types.Int], 0, "n")
	cond := bld.Cmp(OpGt, n, bld.Const(types.Typ[types.Int], 0))
	bThen := bld.NewBlock("if.then")
	bElse := bld.NewBlock("if.else")
	bld.CondBr(cond, bThen, bElse)

	bld.SetInsertPoint(bThen)
	bld.Ret(n)

	bld.SetInsertPoint(bElse)
	bld.Ret(bld.Const(types.Typ[types.Int], 0))

	if err := Verify(f); err != nil {
		t.Errorf("Verify failed: %v", err)
	}
}

func TestVerifyModule(t *testing.T) {
	m := NewModule("test.c")
	m.AddFunc(makeAddFunc())
	if err := VerifyModule(m); err != nil {
		t.Errorf("VerifyModule failed on valid module: %v", err)
	}

	bad := NewFunc("bad", nil)
	m.AddFunc(bad) // entry has no terminator
	err := VerifyModule(m)
	if err == nil {
		t.Fatal("VerifyModule should fail")
	}
	if !strings.Contains(err.Error(), "bad") {
		t.Errorf("error should name the bad function, got: %v", err)
	}
}

func TestVerifyAllocaUnsized(t *testing.T) {
	f := NewFunc("badslot", nil)
	f.NewValue(f.Entry, OpAlloca, types.NewPointer(types.Typ[types.Void]))
	f.Entry.Kind = BlockReturn

	err := Verify(f)
	if err == nil {
		t.Fatal("Verify should reject an alloca of void")
	}
	if !strings.Contains(err.Error(), "alloca of unsized type void") {
		t.Errorf("error should name the unsized slot, got: %v", err)
	}
}

func TestVerifyModuleDuplicateGlobal(t *testing.T) {
	m := NewModule("test.c")
	m.AddGlobal(&Global{Name: "x", Typ: types.Typ[types.Int]})
	m.AddGlobal(&Global{Name: "x", Typ: types.Typ[types.Char]})

	err := VerifyModule(m)
	if err == nil {
		t.Fatal("VerifyModule should fail on duplicate globals")
	}
	if !strings.Contains(err.Error(), "duplicate global @x") {
		t.Errorf("error should name the duplicate, got: %v", err)
	}
}

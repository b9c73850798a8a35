package ir

import (
	"fmt"
	"strings"

	"github.com/minic-lang/minic/internal/types"
)

// Verify checks the structural integrity of a lowered function.
// It returns an error describing all violations found, or nil if valid.
func Verify(f *Func) error {
	var errs []string

	add := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Sprintf(format, args...))
	}

	if f.Entry == nil {
		add("func %s: entry block is nil", f.Name)
		return combineErrors(errs)
	}

	if len(f.Blocks) == 0 {
		add("func %s: no blocks", f.Name)
		return combineErrors(errs)
	}

	if f.Blocks[0] != f.Entry {
		add("func %s: Blocks[0] is not the entry block", f.Name)
	}

	// 1. Entry block has no predecessors
	if len(f.Entry.Preds) != 0 {
		add("func %s: entry block %s has %d predecessors, want 0",
			f.Name, f.Entry, len(f.Entry.Preds))
	}

	// Build a set of all blocks for membership checks.
	blockSet := make(map[*Block]bool, len(f.Blocks))
	for _, b := range f.Blocks {
		blockSet[b] = true
	}

	// Build a set of all values for reference checks.
	valueSet := make(map[*Value]bool)

	for _, b := range f.Blocks {
		// 2. Every block must be terminated
		if !b.Terminated() {
			add("func %s, %s: block has no terminator", f.Name, b)
		}

		// 3. Block's Func pointer matches
		if b.Func != f {
			add("func %s, %s: block Func pointer mismatch", f.Name, b)
		}

		// Check values
		for _, v := range b.Values {
			valueSet[v] = true

			// 4. Every Value's Block pointer matches its containing block
			if v.Block != b {
				add("func %s, %s, %s: value Block pointer is %s, want %s",
					f.Name, b, v, v.Block, b)
			}

			// 5. Non-void values must have non-nil Type.
			// Exception: Call has nil Type for void-returning callees.
			if !v.Op.IsVoid() && v.Type == nil && v.Op != OpCall {
				add("func %s, %s, %s (%s): non-void value has nil Type",
					f.Name, b, v, v.Op)
			}

			// 6. Args are non-nil
			for i, arg := range v.Args {
				if arg == nil {
					add("func %s, %s, %s: arg[%d] is nil", f.Name, b, v, i)
				}
			}

			// 7. Phi args count == Preds count
			if v.Op == OpPhi {
				if len(v.Args) != len(b.Preds) {
					add("func %s, %s, %s: phi has %d args but block has %d preds",
						f.Name, b, v, len(v.Args), len(b.Preds))
				}
			}

			// 8. Alloca reserves storage, so the slot type must be sized.
			if v.Op == OpAlloca {
				if p, ok := v.Type.(*types.Pointer); !ok {
					add("func %s, %s, %s: alloca type %s is not a pointer",
						f.Name, b, v, v.Type)
				} else if types.DefaultSizes.Sizeof(p.Elem()) <= 0 {
					add("func %s, %s, %s: alloca of unsized type %s",
						f.Name, b, v, p.Elem())
				}
			}
		}

		// 9. Terminator checks based on Kind
		switch b.Kind {
		case BlockPlain:
			if len(b.Succs) != 1 {
				add("func %s, %s: plain block has %d succs, want 1",
					f.Name, b, len(b.Succs))
			}
		case BlockIf:
			if len(b.Controls) != 1 || b.Controls[0] == nil {
				add("func %s, %s: if block needs exactly one control value",
					f.Name, b)
			} else if b.Controls[0].Type != nil && !types.IsBooleanType(b.Controls[0].Type) {
				add("func %s, %s: if control %s has type %s, want bool",
					f.Name, b, b.Controls[0], b.Controls[0].Type)
			}
			if len(b.Succs) != 2 {
				add("func %s, %s: if block has %d succs, want 2",
					f.Name, b, len(b.Succs))
			}
		case BlockReturn:
			if len(b.Succs) != 0 {
				add("func %s, %s: return block has %d succs, want 0",
					f.Name, b, len(b.Succs))
			}
			checkReturn(f, b, add)
		}

		// 10. Succs/Preds edge consistency
		for _, succ := range b.Succs {
			if !blockSet[succ] {
				add("func %s, %s: successor %s not in function", f.Name, b, succ)
				continue
			}
			if !containsBlock(succ.Preds, b) {
				add("func %s, %s: successor %s does not have %s as predecessor",
					f.Name, b, succ, b)
			}
		}
		for _, pred := range b.Preds {
			if !blockSet[pred] {
				add("func %s, %s: predecessor %s not in function", f.Name, b, pred)
				continue
			}
			if !containsBlock(pred.Succs, b) {
				add("func %s, %s: predecessor %s does not have %s as successor",
					f.Name, b, pred, b)
			}
		}
	}

	// 11. Verify all value args and controls are in the function
	for _, b := range f.Blocks {
		for _, v := range b.Values {
			for i, arg := range v.Args {
				if arg != nil && !valueSet[arg] {
					add("func %s, %s, %s: arg[%d] (%s) not found in function",
						f.Name, b, v, i, arg)
				}
			}
		}
		for i, c := range b.Controls {
			if c != nil && !valueSet[c] {
				add("func %s, %s: control[%d] (%s) not found in function",
					f.Name, b, i, c)
			}
		}
	}

	return combineErrors(errs)
}

// checkReturn validates a return terminator against the function signature.
// A value-returning function must return a value of the declared type on
// every path; a void function must not return a value.
func checkReturn(f *Func, b *Block, add func(string, ...interface{})) {
	var ret *Value
	if len(b.Controls) > 0 {
		ret = b.Controls[0]
	}

	if f.Sig == nil {
		return
	}
	result := f.Sig.Result()

	if types.IsVoid(result) {
		if ret != nil {
			add("func %s, %s: void function returns a value", f.Name, b)
		}
		return
	}

	if ret == nil {
		add("func %s, %s: missing return value in function returning %s",
			f.Name, b, result)
		return
	}
	if ret.Type != nil && !types.Identical(ret.Type, result) {
		add("func %s, %s: return value has type %s, want %s",
			f.Name, b, ret.Type, result)
	}
}

// containsBlock checks whether bs contains b.
func containsBlock(bs []*Block, b *Block) bool {
	for _, x := range bs {
		if x == b {
			return true
		}
	}
	return false
}

// VerifyModule verifies every function in the module and checks that
// global names are unique, accumulating all failures into a single error.
func VerifyModule(m *Module) error {
	var errs []string
	seen := make(map[string]bool, len(m.Globals))
	for _, g := range m.Globals {
		if seen[g.Name] {
			errs = append(errs, fmt.Sprintf("module %s: duplicate global %s", m.Name, g))
		}
		seen[g.Name] = true
	}
	for _, f := range m.Funcs {
		if err := Verify(f); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%s", strings.Join(errs, "\n"))
}

// combineErrors creates an error from a list of error strings, or returns nil.
func combineErrors(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("IR verification failed:\n  %s", strings.Join(errs, "\n  "))
}

package ir

import (
	"fmt"
	"io"
	"strings"

	"github.com/minic-lang/minic/internal/types"
)

// FprintFunc writes the IR of a function to w.
//
// Format:
//
//	func add(a int, b int) int:
//	  b0: (entry)
//	    v0 = Arg <int> {a}
//	    v2 = Add <int> v0 v1
//	    Return v2
func FprintFunc(w io.Writer, f *Func) {
	fmt.Fprintf(w, "func %s", f.Name)
	if f.Sig != nil {
		fmt.Fprintf(w, "(")
		for i := 0; i < f.Sig.NumParams(); i++ {
			if i > 0 {
				fmt.Fprintf(w, ", ")
			}
			p := f.Sig.Param(i)
			fmt.Fprintf(w, "%s %s", p.Name(), p.Type())
		}
		fmt.Fprintf(w, ")")
		if !types.IsVoid(f.Sig.Result()) {
			fmt.Fprintf(w, " %s", f.Sig.Result())
		}
	}
	fmt.Fprintf(w, ":\n")

	for _, b := range f.Blocks {
		fprintBlock(w, b)
	}
}

// fprintBlock writes a single block to w.
func fprintBlock(w io.Writer, b *Block) {
	label := ""
	if b.Label != "" {
		label = " (" + b.Label + ")"
	}

	// Show predecessor list for non-entry blocks
	predsStr := ""
	if len(b.Preds) > 0 {
		preds := make([]string, len(b.Preds))
		for i, p := range b.Preds {
			preds[i] = p.String()
		}
		predsStr = " <- " + strings.Join(preds, " ")
	}

	fmt.Fprintf(w, "  %s:%s%s\n", b, label, predsStr)

	for _, v := range b.Values {
		fmt.Fprintf(w, "    %s\n", formatValue(v))
	}

	fmt.Fprintf(w, "    %s\n", formatTerminator(b))
}

// formatValue formats a value as a string.
func formatValue(v *Value) string {
	var sb strings.Builder

	// For void ops, don't print "vN = "
	if v.Op.IsVoid() || (v.Op == OpCall && v.Type == nil) {
		sb.WriteString(v.Op.String())
	} else {
		fmt.Fprintf(&sb, "v%d = %s", v.ID, v.Op)
	}

	if v.Type != nil {
		fmt.Fprintf(&sb, " <%s>", v.Type)
	}

	// AuxInt is always shown for constants, otherwise only if non-zero
	switch v.Op {
	case OpConst:
		fmt.Fprintf(&sb, " [%d]", v.AuxInt)
	default:
		if v.AuxInt != 0 {
			fmt.Fprintf(&sb, " [%d]", v.AuxInt)
		}
	}

	if v.Aux != nil {
		fmt.Fprintf(&sb, " {%s}", formatAux(v.Aux))
	}

	for _, arg := range v.Args {
		fmt.Fprintf(&sb, " v%d", arg.ID)
	}

	return sb.String()
}

// formatTerminator formats a block terminator.
func formatTerminator(b *Block) string {
	switch b.Kind {
	case BlockPlain:
		if len(b.Succs) > 0 {
			return fmt.Sprintf("Plain -> %s", b.Succs[0])
		}
		return "Plain"
	case BlockIf:
		if len(b.Controls) > 0 && len(b.Succs) >= 2 {
			return fmt.Sprintf("If v%d -> %s %s", b.Controls[0].ID, b.Succs[0], b.Succs[1])
		}
		return "If (malformed)"
	case BlockReturn:
		if len(b.Controls) > 0 && b.Controls[0] != nil {
			return fmt.Sprintf("Return v%d", b.Controls[0].ID)
		}
		return "Return"
	default:
		return "???"
	}
}

// formatAux formats an Aux value for display.
func formatAux(aux interface{}) string {
	switch a := aux.(type) {
	case *Func:
		return a.Name
	case *Global:
		return a.String()
	case types.Type:
		return a.String()
	case string:
		return a
	default:
		return fmt.Sprintf("%v", aux)
	}
}

// FprintModule writes the IR of a whole module to w: globals first,
// then each function, separated by blank lines.
func FprintModule(w io.Writer, m *Module) {
	fmt.Fprintf(w, "module %s\n", m.Name)

	if len(m.Globals) > 0 {
		fmt.Fprintf(w, "\n")
		for _, g := range m.Globals {
			fprintGlobal(w, g)
		}
	}

	for _, f := range m.Funcs {
		fmt.Fprintf(w, "\n")
		FprintFunc(w, f)
	}
}

// fprintGlobal writes a single global to w.
func fprintGlobal(w io.Writer, g *Global) {
	fmt.Fprintf(w, "global %s %s", g, g.Typ)
	if g.Str != "" {
		fmt.Fprintf(w, " = %q", g.Str)
	} else if g.HasInit {
		fmt.Fprintf(w, " = %d", g.Init)
	}
	fmt.Fprintf(w, "\n")
}

// SprintFunc returns the IR of a function as a string.
func SprintFunc(f *Func) string {
	var sb strings.Builder
	FprintFunc(&sb, f)
	return sb.String()
}

// SprintModule returns the IR of a module as a string.
func SprintModule(m *Module) string {
	var sb strings.Builder
	FprintModule(&sb, m)
	return sb.String()
}

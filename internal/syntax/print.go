package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *File:
		p.printf("File %s\n", n.pos)
		p.indent++
		for _, d := range n.Decls {
			p.print(d)
		}
		p.indent--

	case *VarDecl:
		p.printf("VarDecl %s %s\n", n.pos, n.Spec)
		p.indent++
		for _, def := range n.Defs {
			p.print(def)
		}
		p.indent--

	case *VarDef:
		p.printf("VarDef %s %s%s\n", n.pos, n.Name.Value, dimsString(n.Dims))
		if n.Init != nil {
			p.indent++
			p.printf("Init:\n")
			p.indent++
			p.print(n.Init)
			p.indent--
			p.indent--
		}

	case *FuncDecl:
		p.printf("FuncDecl %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		p.printf("Result: %s\n", n.Result)
		if len(n.Params) > 0 {
			p.printf("Params:\n")
			p.indent++
			for _, prm := range n.Params {
				p.print(prm)
			}
			p.indent--
		}
		if n.Body != nil {
			p.printf("Body:\n")
			p.indent++
			p.print(n.Body)
			p.indent--
		}
		p.indent--

	case *Param:
		suffix := ""
		if n.IsArray {
			suffix = "[]" + dimsString(n.Dims)
		}
		p.printf("Param %s %s %s%s\n", n.pos, n.Spec, n.Name.Value, suffix)

	case *BlockStmt:
		p.printf("BlockStmt %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *IfStmt:
		p.printf("IfStmt %s\n", n.pos)
		p.indent++
		p.printf("Cond:\n")
		p.indent++
		p.print(n.Cond)
		p.indent--
		p.printf("Then:\n")
		p.indent++
		p.print(n.Then)
		p.indent--
		if n.Else != nil {
			p.printf("Else:\n")
			p.indent++
			p.print(n.Else)
			p.indent--
		}
		p.indent--

	case *WhileStmt:
		p.printf("WhileStmt %s\n", n.pos)
		p.indent++
		p.printf("Cond:\n")
		p.indent++
		p.print(n.Cond)
		p.indent--
		p.printf("Body:\n")
		p.indent++
		p.print(n.Body)
		p.indent--
		p.indent--

	case *ForStmt:
		p.printf("ForStmt %s\n", n.pos)
		p.indent++
		if n.Init != nil {
			p.printf("Init:\n")
			p.indent++
			p.print(n.Init)
			p.indent--
		}
		if n.Cond != nil {
			p.printf("Cond:\n")
			p.indent++
			p.print(n.Cond)
			p.indent--
		}
		if n.Post != nil {
			p.printf("Post:\n")
			p.indent++
			p.print(n.Post)
			p.indent--
		}
		p.printf("Body:\n")
		p.indent++
		p.print(n.Body)
		p.indent--
		p.indent--

	case *ReturnStmt:
		p.printf("ReturnStmt %s\n", n.pos)
		if n.Result != nil {
			p.indent++
			p.print(n.Result)
			p.indent--
		}

	case *BranchStmt:
		p.printf("BranchStmt %s %s\n", n.pos, n.Tok)

	case *AssignStmt:
		p.printf("AssignStmt %s\n", n.pos)
		p.indent++
		p.printf("LHS:\n")
		p.indent++
		p.print(n.LHS)
		p.indent--
		p.printf("RHS:\n")
		p.indent++
		p.print(n.RHS)
		p.indent--
		p.indent--

	case *ExprStmt:
		p.printf("ExprStmt %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *DeclStmt:
		p.printf("DeclStmt %s\n", n.pos)
		p.indent++
		p.print(n.Decl)
		p.indent--

	case *EmptyStmt:
		p.printf("EmptyStmt %s\n", n.pos)

	case *Name:
		p.printf("Name %s %q\n", n.pos, n.Value)

	case *BasicLit:
		p.printf("BasicLit %s %s %q\n", n.pos, n.Kind, n.Value)

	case *LValue:
		p.printf("LValue %s %q\n", n.pos, n.Name.Value)
		if len(n.Indices) > 0 {
			p.indent++
			p.printf("Indices:\n")
			p.indent++
			for _, ix := range n.Indices {
				p.print(ix)
			}
			p.indent--
			p.indent--
		}

	case *Operation:
		if n.Y == nil {
			p.printf("UnaryOp %s %s\n", n.pos, n.Op)
			p.indent++
			p.print(n.X)
			p.indent--
		} else {
			p.printf("BinaryOp %s %s\n", n.pos, n.Op)
			p.indent++
			p.printf("X:\n")
			p.indent++
			p.print(n.X)
			p.indent--
			p.printf("Y:\n")
			p.indent++
			p.print(n.Y)
			p.indent--
			p.indent--
		}

	case *CondExpr:
		p.printf("CondExpr %s\n", n.pos)
		p.indent++
		p.printf("Cond:\n")
		p.indent++
		p.print(n.Cond)
		p.indent--
		p.printf("Then:\n")
		p.indent++
		p.print(n.Then)
		p.indent--
		p.printf("Else:\n")
		p.indent++
		p.print(n.Else)
		p.indent--
		p.indent--

	case *CallExpr:
		p.printf("CallExpr %s %q\n", n.pos, n.Fun.Value)
		if len(n.Args) > 0 {
			p.indent++
			p.printf("Args:\n")
			p.indent++
			for _, a := range n.Args {
				p.print(a)
			}
			p.indent--
			p.indent--
		}

	case *ParenExpr:
		p.printf("ParenExpr %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *InitList:
		p.printf("InitList %s\n", n.pos)
		p.indent++
		for _, e := range n.Elems {
			p.print(e)
		}
		p.indent--

	default:
		p.printf("<%T>\n", node)
	}
}

// dimsString returns the [d0][d1]... suffix for a dimension list.
func dimsString(dims []Expr) string {
	var b strings.Builder
	for _, d := range dims {
		b.WriteString("[")
		b.WriteString(exprString(d))
		b.WriteString("]")
	}
	return b.String()
}

// exprString returns a simple string representation of an expression.
func exprString(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	switch x := e.(type) {
	case *Name:
		return x.Value
	case *BasicLit:
		return x.Value
	case *LValue:
		return x.Name.Value + dimsString(x.Indices)
	default:
		return fmt.Sprintf("<%T>", e)
	}
}

package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *File:
		for _, d := range n.Decls {
			Walk(d, v)
		}

	case *VarDecl:
		for _, def := range n.Defs {
			Walk(def, v)
		}

	case *VarDef:
		Walk(n.Name, v)
		for _, d := range n.Dims {
			Walk(d, v)
		}
		if n.Init != nil {
			Walk(n.Init, v)
		}

	case *FuncDecl:
		Walk(n.Name, v)
		for _, prm := range n.Params {
			Walk(prm, v)
		}
		if n.Body != nil {
			Walk(n.Body, v)
		}

	case *Param:
		Walk(n.Name, v)
		for _, d := range n.Dims {
			Walk(d, v)
		}

	case *BlockStmt:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *IfStmt:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		if n.Else != nil {
			Walk(n.Else, v)
		}

	case *WhileStmt:
		Walk(n.Cond, v)
		Walk(n.Body, v)

	case *ForStmt:
		if n.Init != nil {
			Walk(n.Init, v)
		}
		if n.Cond != nil {
			Walk(n.Cond, v)
		}
		if n.Post != nil {
			Walk(n.Post, v)
		}
		Walk(n.Body, v)

	case *ReturnStmt:
		if n.Result != nil {
			Walk(n.Result, v)
		}

	case *AssignStmt:
		Walk(n.LHS, v)
		Walk(n.RHS, v)

	case *ExprStmt:
		Walk(n.X, v)

	case *DeclStmt:
		Walk(n.Decl, v)

	case *LValue:
		Walk(n.Name, v)
		for _, ix := range n.Indices {
			Walk(ix, v)
		}

	case *Operation:
		Walk(n.X, v)
		if n.Y != nil {
			Walk(n.Y, v)
		}

	case *CondExpr:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		Walk(n.Else, v)

	case *CallExpr:
		Walk(n.Fun, v)
		for _, a := range n.Args {
			Walk(a, v)
		}

	case *ParenExpr:
		Walk(n.X, v)

	case *InitList:
		for _, e := range n.Elems {
			Walk(e, v)
		}

	// Leaf nodes: Name, BasicLit, EmptyStmt, BranchStmt
	// No children to visit
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}

package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *File:
		return map[string]interface{}{
			"type":  "File",
			"pos":   n.pos.String(),
			"decls": mapSliceDecl(n.Decls, toJSON),
		}

	case *VarDecl:
		return map[string]interface{}{
			"type": "VarDecl",
			"pos":  n.pos.String(),
			"spec": n.Spec.String(),
			"defs": mapSlice(n.Defs, func(d *VarDef) interface{} { return toJSON(d) }),
		}

	case *VarDef:
		m := map[string]interface{}{
			"type": "VarDef",
			"pos":  n.pos.String(),
			"name": n.Name.Value,
		}
		if len(n.Dims) > 0 {
			m["dims"] = mapSliceExpr(n.Dims, toJSON)
		}
		if n.Init != nil {
			m["init"] = toJSON(n.Init)
		}
		return m

	case *FuncDecl:
		m := map[string]interface{}{
			"type":   "FuncDecl",
			"pos":    n.pos.String(),
			"name":   n.Name.Value,
			"result": n.Result.String(),
			"params": mapSlice(n.Params, func(p *Param) interface{} { return toJSON(p) }),
		}
		if n.Body != nil {
			m["body"] = toJSON(n.Body)
		}
		return m

	case *Param:
		m := map[string]interface{}{
			"type": "Param",
			"pos":  n.pos.String(),
			"spec": n.Spec.String(),
			"name": n.Name.Value,
		}
		if n.IsArray {
			m["array"] = true
			if len(n.Dims) > 0 {
				m["dims"] = mapSliceExpr(n.Dims, toJSON)
			}
		}
		return m

	case *BlockStmt:
		return map[string]interface{}{
			"type":  "BlockStmt",
			"pos":   n.pos.String(),
			"stmts": mapSliceStmt(n.Stmts, toJSON),
		}

	case *IfStmt:
		m := map[string]interface{}{
			"type": "IfStmt",
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"then": toJSON(n.Then),
		}
		if n.Else != nil {
			m["else"] = toJSON(n.Else)
		}
		return m

	case *WhileStmt:
		return map[string]interface{}{
			"type": "WhileStmt",
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"body": toJSON(n.Body),
		}

	case *ForStmt:
		m := map[string]interface{}{
			"type": "ForStmt",
			"pos":  n.pos.String(),
			"body": toJSON(n.Body),
		}
		if n.Init != nil {
			m["init"] = toJSON(n.Init)
		}
		if n.Cond != nil {
			m["cond"] = toJSON(n.Cond)
		}
		if n.Post != nil {
			m["post"] = toJSON(n.Post)
		}
		return m

	case *ReturnStmt:
		m := map[string]interface{}{
			"type": "ReturnStmt",
			"pos":  n.pos.String(),
		}
		if n.Result != nil {
			m["result"] = toJSON(n.Result)
		}
		return m

	case *BranchStmt:
		return map[string]interface{}{
			"type":  "BranchStmt",
			"pos":   n.pos.String(),
			"token": n.Tok.String(),
		}

	case *AssignStmt:
		return map[string]interface{}{
			"type": "AssignStmt",
			"pos":  n.pos.String(),
			"lhs":  toJSON(n.LHS),
			"rhs":  toJSON(n.RHS),
		}

	case *ExprStmt:
		return map[string]interface{}{
			"type": "ExprStmt",
			"pos":  n.pos.String(),
			"x":    toJSON(n.X),
		}

	case *DeclStmt:
		return map[string]interface{}{
			"type": "DeclStmt",
			"pos":  n.pos.String(),
			"decl": toJSON(n.Decl),
		}

	case *EmptyStmt:
		return map[string]interface{}{
			"type": "EmptyStmt",
			"pos":  n.pos.String(),
		}

	case *Name:
		return map[string]interface{}{
			"type":  "Name",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *BasicLit:
		return map[string]interface{}{
			"type":  "BasicLit",
			"pos":   n.pos.String(),
			"kind":  n.Kind.String(),
			"value": n.Value,
		}

	case *LValue:
		m := map[string]interface{}{
			"type": "LValue",
			"pos":  n.pos.String(),
			"name": n.Name.Value,
		}
		if len(n.Indices) > 0 {
			m["indices"] = mapSliceExpr(n.Indices, toJSON)
		}
		return m

	case *Operation:
		m := map[string]interface{}{
			"type": "Operation",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
		}
		if n.Y != nil {
			m["y"] = toJSON(n.Y)
		}
		return m

	case *CondExpr:
		return map[string]interface{}{
			"type": "CondExpr",
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"then": toJSON(n.Then),
			"else": toJSON(n.Else),
		}

	case *CallExpr:
		return map[string]interface{}{
			"type": "CallExpr",
			"pos":  n.pos.String(),
			"fun":  n.Fun.Value,
			"args": mapSliceExpr(n.Args, toJSON),
		}

	case *ParenExpr:
		return map[string]interface{}{
			"type": "ParenExpr",
			"pos":  n.pos.String(),
			"x":    toJSON(n.X),
		}

	case *InitList:
		return map[string]interface{}{
			"type":  "InitList",
			"pos":   n.pos.String(),
			"elems": mapSliceExpr(n.Elems, toJSON),
		}

	default:
		return map[string]interface{}{
			"type": "Unknown",
		}
	}
}

// Helper functions to map slices

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}

func mapSliceDecl(s []Decl, f func(Node) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}

func mapSliceStmt(s []Stmt, f func(Node) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}

func mapSliceExpr(s []Expr, f func(Node) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}

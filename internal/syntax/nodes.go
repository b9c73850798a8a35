package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 3 main classes of nodes: Expressions, Statements, and Declarations.
// All nodes implement the Node interface. Expression, Statement, and Declaration
// nodes further implement their respective interfaces.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of first character belonging to the node
	aNode()   // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// Decl is the interface for all declaration nodes.
type Decl interface {
	Node
	aDecl()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// stmt is embedded in all statement nodes.
type stmt struct{ node }

func (*stmt) aStmt() {}

// decl is embedded in all declaration nodes.
type decl struct{ node }

func (*decl) aDecl() {}

// ----------------------------------------------------------------------------
// Files and Declarations

// File represents a complete translation unit.
type File struct {
	node
	Decls []Decl // top-level declarations
}

// TypeSpec describes a declared value type: one of the type keywords
// plus an optional const qualifier. It is a value, not a node; its
// position is the position of the declaration carrying it.
type TypeSpec struct {
	Tok   Token // _Int, _Char, or _Void
	Const bool  // const qualifier present
}

// String returns the C spelling of the type spec.
func (t TypeSpec) String() string {
	if t.Const {
		return "const " + t.Tok.String()
	}
	return t.Tok.String()
}

// VarDecl represents a variable declaration: int a = 1, b[2][3];
// One declaration introduces one or more definitions sharing a type spec.
type VarDecl struct {
	decl
	Spec TypeSpec  // declared base type
	Defs []*VarDef // individual definitions
}

// VarDef is a single definition within a VarDecl.
type VarDef struct {
	node
	Name *Name  // variable name
	Dims []Expr // array dimensions, outermost first (empty for scalars)
	Init Expr   // initializer (nil if none; *InitList for arrays)
}

// FuncDecl represents a function definition.
// Result Name(Params) { Body }
type FuncDecl struct {
	decl
	Result TypeSpec   // return type
	Name   *Name      // function name
	Params []*Param   // parameter list
	Body   *BlockStmt // function body
}

// Param represents a single function parameter.
// For an array parameter the leading dimension is elided (IsArray is set)
// and Dims holds the remaining declared dimensions.
type Param struct {
	node
	Spec    TypeSpec // element/base type
	Name    *Name    // parameter name
	IsArray bool     // declared with [] (decays to a pointer)
	Dims    []Expr   // dimensions after the elided first one
}

// ----------------------------------------------------------------------------
// Expressions

// Name represents an identifier.
type Name struct {
	expr
	Value string // identifier string
}

// BasicLit represents a literal value (int, char, string).
type BasicLit struct {
	expr
	Value string  // literal text (decoded for strings and chars)
	Kind  LitKind // IntLit, CharLit, StringLit
}

// LValue represents a possibly-subscripted variable reference: Name[I0][I1]...
// A plain identifier is an LValue with no indices. LValues are the only
// expressions that may appear on the left side of an assignment.
type LValue struct {
	expr
	Name    *Name  // variable name
	Indices []Expr // subscript expressions (may be empty)
}

// Operation represents a unary or binary operation.
// For unary operations (+ - ! ~), Y is nil.
// For binary operations, both X and Y are set.
type Operation struct {
	expr
	Op Token // operator token
	X  Expr  // left operand (or only operand for unary)
	Y  Expr  // right operand (nil for unary)
}

// CondExpr represents a ternary conditional: Cond ? Then : Else
type CondExpr struct {
	expr
	Cond Expr // condition
	Then Expr // value when condition is true
	Else Expr // value when condition is false
}

// CallExpr represents a function call: Fun(Args...)
type CallExpr struct {
	expr
	Fun  *Name  // callee (calls name functions directly)
	Args []Expr // argument list
}

// ParenExpr represents a parenthesized expression: (X)
type ParenExpr struct {
	expr
	X Expr // inner expression
}

// InitList represents a brace initializer: {Elems...}
// Elements may themselves be InitLists for nested array initializers.
type InitList struct {
	expr
	Elems []Expr // elements
}

// ----------------------------------------------------------------------------
// Statements

// EmptyStmt represents an empty statement (just a semicolon).
type EmptyStmt struct {
	stmt
}

// ExprStmt represents an expression used as a statement.
type ExprStmt struct {
	stmt
	X Expr // expression
}

// AssignStmt represents an assignment: LHS = RHS
// Assignment is a statement, not an expression; the left side must be
// an LValue.
type AssignStmt struct {
	stmt
	LHS *LValue // assignment target
	RHS Expr    // assigned value
}

// BlockStmt represents a block statement: { Stmts... }
type BlockStmt struct {
	stmt
	Stmts  []Stmt // statements
	Rbrace Pos    // position of closing brace
}

// IfStmt represents an if statement: if (Cond) Then [else Else]
type IfStmt struct {
	stmt
	Cond Expr // condition expression
	Then Stmt // then branch
	Else Stmt // else branch (nil if absent)
}

// WhileStmt represents a while loop: while (Cond) Body
type WhileStmt struct {
	stmt
	Cond Expr // condition expression
	Body Stmt // loop body
}

// ForStmt represents a for loop: for (Init; Cond; Post) Body
// All three header slots are optional. Init is either a DeclStmt or an
// ExprStmt/AssignStmt; a nil Cond means an unconditional loop.
type ForStmt struct {
	stmt
	Init Stmt // initialization (nil if absent)
	Cond Expr // condition (nil if absent)
	Post Stmt // post statement (nil if absent)
	Body Stmt // loop body
}

// ReturnStmt represents a return statement: return [Result];
type ReturnStmt struct {
	stmt
	Result Expr // return value (nil for bare return)
}

// BranchStmt represents a break or continue statement.
type BranchStmt struct {
	stmt
	Tok Token // _Break or _Continue
}

// DeclStmt wraps a variable declaration as a statement.
type DeclStmt struct {
	stmt
	Decl *VarDecl // the wrapped declaration
}

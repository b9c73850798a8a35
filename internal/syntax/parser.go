package syntax

import "io"

// Maximum number of errors before aborting parse.
const maxErrors = 10

// SyntaxError represents a syntax error.
type SyntaxError struct {
	Pos Pos
	Msg string
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// Parser performs syntax analysis on minic source code.
type Parser struct {
	scanner *Scanner

	// Current token info (cached from scanner)
	tok Token
	lit string
	pos Pos

	// Error handling
	errh   func(pos Pos, msg string)
	errcnt int
	first  error // first error encountered
	abort  bool  // set to true when error limit reached
}

// NewParser creates a new Parser for the given source.
func NewParser(filename string, src io.Reader, errh func(pos Pos, msg string)) *Parser {
	scanErrh := func(line, col uint32, msg string) {
		if errh != nil {
			errh(NewPos(filename, line, col), msg)
		}
	}

	p := &Parser{
		scanner: NewScanner(filename, src, scanErrh),
		errh:    errh,
	}
	p.next() // prime the parser with first token
	return p
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token.
func (p *Parser) next() {
	p.scanner.Next()
	p.tok = p.scanner.Token()
	p.lit = p.scanner.Literal()
	p.pos = p.scanner.Pos()
}

// got reports whether the current token is tok.
// If so, it consumes the token and returns true.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches tok.
// Otherwise, reports an error.
func (p *Parser) want(tok Token) {
	if !p.got(tok) {
		p.syntaxError("expected " + tok.String())
		p.advance()
	}
}

// ----------------------------------------------------------------------------
// Error handling

// syntaxError reports a syntax error at the current position.
func (p *Parser) syntaxError(msg string) {
	p.syntaxErrorAt(p.pos, msg)
}

// syntaxErrorAt reports a syntax error at a specific position.
func (p *Parser) syntaxErrorAt(pos Pos, msg string) {
	if p.abort {
		return
	}
	if p.errcnt == 0 {
		p.first = &SyntaxError{Pos: pos, Msg: msg}
	}
	p.errcnt++

	if p.errh != nil {
		p.errh(pos, msg)
	}

	p.errorLimitCheck(pos)
}

// errorLimitCheck aborts parsing if too many errors have occurred.
func (p *Parser) errorLimitCheck(pos Pos) {
	if p.errcnt >= maxErrors {
		p.abort = true
		if p.errh != nil {
			p.errh(pos, "too many errors; aborting parse")
		}
		p.tok = _EOF
	}
}

// advance skips tokens until it finds a synchronization point.
// This is used for error recovery. Statement keywords and type
// keywords are left in place so they can start a fresh parse;
// a semicolon is consumed, since the erroneous statement ends there.
func (p *Parser) advance() {
	sync := map[Token]bool{
		_Semi:   true, // statement terminator
		_Rbrace: true, // block end
		_Int:    true,
		_Char:   true,
		_Void:   true,
		_Const:  true,
		_If:     true,
		_While:  true,
		_For:    true,
		_Return: true,
		_EOF:    true,
	}

	for p.tok != _EOF && !sync[p.tok] {
		p.next()
	}

	if p.tok == _Semi {
		p.next()
	}
}

// Errors returns the number of errors encountered during parsing.
func (p *Parser) Errors() int {
	return p.errcnt
}

// FirstError returns the first error encountered, or nil if none.
func (p *Parser) FirstError() error {
	return p.first
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses a complete source file and returns the AST.
func (p *Parser) Parse() *File {
	f := &File{}
	f.pos = p.pos

	for !p.abort && p.tok != _EOF {
		// Skip stray semicolons between declarations
		for p.tok == _Semi {
			p.next()
		}
		if p.tok == _EOF {
			break
		}
		if d := p.decl(); d != nil {
			f.Decls = append(f.Decls, d)
		}
	}

	return f
}

// ----------------------------------------------------------------------------
// Helper methods

// name parses an identifier and returns a Name node.
func (p *Parser) name() *Name {
	if p.tok != _Name {
		p.syntaxError("expected identifier")
		// Return a placeholder for error recovery
		n := &Name{Value: "_"}
		n.pos = p.pos
		return n
	}
	n := &Name{Value: p.lit}
	n.pos = p.pos
	p.next()
	return n
}

// typeSpec parses a declared type: [const] (int|char|void).
func (p *Parser) typeSpec() TypeSpec {
	var spec TypeSpec
	if p.got(_Const) {
		spec.Const = true
	}

	switch p.tok {
	case _Int, _Char, _Void:
		spec.Tok = p.tok
		p.next()
	default:
		p.syntaxError("expected type")
		spec.Tok = _Int // recover as int
	}
	return spec
}

// ----------------------------------------------------------------------------
// Top-level declarations

// decl parses a top-level declaration. A type spec followed by a name
// and ( is a function definition; anything else continues as a
// variable declaration.
func (p *Parser) decl() Decl {
	if !p.tok.IsType() {
		p.syntaxError("expected declaration")
		// The offending token may itself be a sync point, so step
		// past it before resynchronizing to guarantee progress.
		p.next()
		p.advance()
		return nil
	}

	pos := p.pos
	spec := p.typeSpec()
	name := p.name()

	if p.tok == _Lparen {
		return p.funcDeclRest(pos, spec, name)
	}
	return p.varDeclRest(pos, spec, name)
}

// ----------------------------------------------------------------------------
// Variable declarations

// varDecl parses a full variable declaration (used for statements).
func (p *Parser) varDecl() *VarDecl {
	pos := p.pos
	spec := p.typeSpec()
	return p.varDeclRest(pos, spec, p.name())
}

// varDeclRest parses the remainder of a variable declaration after the
// type spec and the first name: dims, initializers, further definitions.
func (p *Parser) varDeclRest(pos Pos, spec TypeSpec, name *Name) *VarDecl {
	d := &VarDecl{Spec: spec}
	d.pos = pos

	if spec.Tok == _Void {
		p.syntaxErrorAt(pos, "variable declared void")
	}

	for {
		def := &VarDef{Name: name}
		def.pos = name.Pos()

		// Array dimensions
		for p.got(_Lbrack) {
			def.Dims = append(def.Dims, p.expr())
			p.want(_Rbrack)
		}

		// Optional initializer
		if p.got(_Assign) {
			def.Init = p.initExpr()
		}

		d.Defs = append(d.Defs, def)

		if !p.got(_Comma) {
			break
		}
		name = p.name()
	}

	p.want(_Semi)
	return d
}

// initExpr parses an initializer: a plain expression or a brace list.
func (p *Parser) initExpr() Expr {
	if p.tok != _Lbrace {
		return p.expr()
	}

	lit := &InitList{}
	lit.pos = p.pos
	p.next()

	for p.tok != _Rbrace && p.tok != _EOF {
		lit.Elems = append(lit.Elems, p.initExpr())
		if !p.got(_Comma) {
			break
		}
	}
	p.want(_Rbrace)
	return lit
}

// ----------------------------------------------------------------------------
// Function definitions

// funcDeclRest parses the remainder of a function definition after the
// result type and name: parameter list and body.
func (p *Parser) funcDeclRest(pos Pos, result TypeSpec, name *Name) *FuncDecl {
	d := &FuncDecl{Result: result, Name: name}
	d.pos = pos

	d.Params = p.paramList()
	d.Body = p.blockStmt()

	return d
}

// paramList parses (T1 p1, T2 p2, ...) or (void) or ().
func (p *Parser) paramList() []*Param {
	p.want(_Lparen)

	if p.got(_Rparen) {
		return nil
	}

	var params []*Param
	for {
		pos := p.pos
		spec := p.typeSpec()

		// (void) means no parameters
		if spec.Tok == _Void && !spec.Const && p.tok == _Rparen && params == nil {
			break
		}

		prm := &Param{Spec: spec}
		prm.pos = pos
		prm.Name = p.name()

		// An array parameter decays to a pointer; a written first
		// dimension is parsed but has no meaning.
		if p.got(_Lbrack) {
			prm.IsArray = true
			if p.tok != _Rbrack {
				p.expr()
			}
			p.want(_Rbrack)
			for p.got(_Lbrack) {
				prm.Dims = append(prm.Dims, p.expr())
				p.want(_Rbrack)
			}
		}

		params = append(params, prm)

		if !p.got(_Comma) {
			break
		}
	}

	p.want(_Rparen)
	return params
}

// ----------------------------------------------------------------------------
// Statements

// stmt parses a statement.
func (p *Parser) stmt() Stmt {
	switch p.tok {
	case _Lbrace:
		return p.blockStmt()

	case _If:
		return p.ifStmt()

	case _While:
		return p.whileStmt()

	case _For:
		return p.forStmt()

	case _Return:
		return p.returnStmt()

	case _Break, _Continue:
		return p.branchStmt()

	case _Int, _Char, _Const, _Void:
		d := p.varDecl()
		s := &DeclStmt{Decl: d}
		s.pos = d.Pos()
		return s

	case _Semi:
		s := &EmptyStmt{}
		s.pos = p.pos
		p.next()
		return s

	default:
		return p.simpleStmt(true)
	}
}

// simpleStmt parses an expression statement or assignment.
// If semi is set, the trailing semicolon is consumed (for loop headers
// parse the post statement without one).
func (p *Parser) simpleStmt(semi bool) Stmt {
	pos := p.pos
	x := p.expr()

	if p.tok == _Assign {
		lhs, ok := x.(*LValue)
		if !ok {
			p.syntaxError("left side of assignment must be an lvalue")
			p.advance()
			s := &EmptyStmt{}
			s.pos = pos
			return s
		}

		s := &AssignStmt{LHS: lhs}
		s.pos = pos
		p.next() // consume =
		s.RHS = p.expr()
		if semi {
			p.want(_Semi)
		}
		return s
	}

	s := &ExprStmt{X: x}
	s.pos = pos
	if semi {
		p.want(_Semi)
	}
	return s
}

// blockStmt parses { stmts... }
func (p *Parser) blockStmt() *BlockStmt {
	b := &BlockStmt{}
	b.pos = p.pos

	p.want(_Lbrace)

	for p.tok != _Rbrace && p.tok != _EOF {
		b.Stmts = append(b.Stmts, p.stmt())
	}

	b.Rbrace = p.pos
	p.want(_Rbrace)

	return b
}

// ifStmt parses: if (cond) stmt [else stmt]
func (p *Parser) ifStmt() Stmt {
	s := &IfStmt{}
	s.pos = p.pos

	p.want(_If)
	p.want(_Lparen)
	s.Cond = p.expr()
	p.want(_Rparen)
	s.Then = p.stmt()

	if p.got(_Else) {
		s.Else = p.stmt()
	}

	return s
}

// whileStmt parses: while (cond) stmt
func (p *Parser) whileStmt() Stmt {
	s := &WhileStmt{}
	s.pos = p.pos

	p.want(_While)
	p.want(_Lparen)
	s.Cond = p.expr()
	p.want(_Rparen)
	s.Body = p.stmt()

	return s
}

// forStmt parses: for (init; cond; post) stmt
// All three header slots are optional.
func (p *Parser) forStmt() Stmt {
	s := &ForStmt{}
	s.pos = p.pos

	p.want(_For)
	p.want(_Lparen)

	// Init clause (consumes its semicolon)
	switch {
	case p.got(_Semi):
		// no init
	case p.tok.IsType():
		d := p.varDecl()
		ds := &DeclStmt{Decl: d}
		ds.pos = d.Pos()
		s.Init = ds
	default:
		s.Init = p.simpleStmt(true)
	}

	// Condition clause
	if p.tok != _Semi {
		s.Cond = p.expr()
	}
	p.want(_Semi)

	// Post clause
	if p.tok != _Rparen {
		s.Post = p.simpleStmt(false)
	}
	p.want(_Rparen)

	s.Body = p.stmt()
	return s
}

// returnStmt parses: return [expr];
func (p *Parser) returnStmt() Stmt {
	s := &ReturnStmt{}
	s.pos = p.pos

	p.want(_Return)

	if p.tok != _Semi && p.tok != _Rbrace && p.tok != _EOF {
		s.Result = p.expr()
	}

	p.want(_Semi)
	return s
}

// branchStmt parses: break; or continue;
func (p *Parser) branchStmt() Stmt {
	s := &BranchStmt{Tok: p.tok}
	s.pos = p.pos
	p.next()
	p.want(_Semi)
	return s
}

// ----------------------------------------------------------------------------
// Expressions

// expr parses an expression (conditional and below).
func (p *Parser) expr() Expr {
	return p.condExpr()
}

// condExpr parses a ternary conditional: cond ? then : else
// The conditional is right associative.
func (p *Parser) condExpr() Expr {
	x := p.binaryExpr(0)

	if p.tok != _Quest {
		return x
	}

	c := &CondExpr{Cond: x}
	c.pos = x.Pos()
	p.next() // consume ?
	c.Then = p.expr()
	p.want(_Colon)
	c.Else = p.condExpr()
	return c
}

// binaryExpr parses a binary expression with minimum precedence prec.
// Implements Pratt parsing / precedence climbing.
func (p *Parser) binaryExpr(prec int) Expr {
	x := p.unaryExpr()

	for {
		// Check if current token is a binary operator with sufficient precedence
		oprec := p.tok.Precedence()
		if oprec <= prec {
			return x
		}

		// Binary expression position starts at the left operand.
		op := &Operation{Op: p.tok, X: x}
		op.pos = x.Pos()

		p.next() // consume operator

		// Parse right operand with higher precedence (left associative)
		op.Y = p.binaryExpr(oprec)
		x = op
	}
}

// unaryExpr parses a unary expression.
func (p *Parser) unaryExpr() Expr {
	switch p.tok {
	case _Not, _Sub, _Add, _Tilde:
		op := &Operation{Op: p.tok}
		op.pos = p.pos
		p.next()
		op.X = p.unaryExpr()
		return op

	default:
		return p.primaryExpr()
	}
}

// primaryExpr parses a primary expression: a literal, a parenthesized
// expression, a call, or a possibly-subscripted variable reference.
func (p *Parser) primaryExpr() Expr {
	switch p.tok {
	case _Name:
		n := &Name{Value: p.lit}
		n.pos = p.pos
		p.next()
		if p.tok == _Lparen {
			return p.callExpr(n)
		}
		return p.lvalue(n)

	case _Literal:
		lit := &BasicLit{Value: p.lit, Kind: p.scanner.LitKind()}
		lit.pos = p.pos
		p.next()
		return lit

	case _Lparen:
		pos := p.pos
		p.next()
		x := p.expr()
		p.want(_Rparen)
		paren := &ParenExpr{X: x}
		paren.pos = pos
		return paren

	default:
		p.syntaxError("expected operand")
		// Placeholder for error recovery
		n := &Name{Value: "_"}
		n.pos = p.pos
		lv := &LValue{Name: n}
		lv.pos = p.pos
		return lv
	}
}

// lvalue parses the subscripts following a variable name: name[i][j]...
func (p *Parser) lvalue(name *Name) Expr {
	lv := &LValue{Name: name}
	lv.pos = name.Pos()

	for p.got(_Lbrack) {
		lv.Indices = append(lv.Indices, p.expr())
		p.want(_Rbrack)
	}

	return lv
}

// callExpr parses fun(args...)
func (p *Parser) callExpr(fun *Name) Expr {
	call := &CallExpr{Fun: fun}
	call.pos = fun.Pos()

	p.want(_Lparen)
	if p.tok != _Rparen {
		call.Args = p.exprList()
	}
	p.want(_Rparen)

	return call
}

// exprList parses a comma-separated list of expressions.
func (p *Parser) exprList() []Expr {
	list := []Expr{p.expr()}
	for p.got(_Comma) {
		list = append(list, p.expr())
	}
	return list
}

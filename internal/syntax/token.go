// Package syntax implements lexical and syntactic analysis for the minic
// subset of C.
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF   Token = iota // end of file
	_Error              // lexical error

	// Literals
	_Name    // identifier: foo, main, count
	_Literal // literal value (used with LitKind)

	// Operators (ordered by precedence, low to high)
	// Assignment
	_Assign // =

	// Ternary
	_Quest // ?

	// Logical operators
	_OrOr   // ||
	_AndAnd // &&

	// Bitwise operators
	_Or  // |
	_Xor // ^
	_And // &

	// Comparison operators
	_Eql // ==
	_Neq // !=
	_Lss // <
	_Leq // <=
	_Gtr // >
	_Geq // >=

	// Shift operators
	_Shl // <<
	_Shr // >>

	// Arithmetic operators (additive)
	_Add // +
	_Sub // -

	// Arithmetic operators (multiplicative)
	_Mul // *
	_Div // /
	_Rem // %

	// Unary operators
	_Not   // !
	_Tilde // ~

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Lbrack // [
	_Rbrack // ]
	_Lbrace // {
	_Rbrace // }
	_Comma  // ,
	_Semi   // ;
	_Colon  // :

	// Keywords
	_Break
	_Char
	_Const
	_Continue
	_Else
	_For
	_If
	_Int
	_Return
	_Void
	_While

	tokenCount
)

// tokenNames maps tokens to their string representation.
var tokenNames = [...]string{
	_EOF:   "EOF",
	_Error: "ERROR",

	_Name:    "NAME",
	_Literal: "LITERAL",

	_Assign: "=",

	_Quest: "?",

	_OrOr:   "||",
	_AndAnd: "&&",

	_Or:  "|",
	_Xor: "^",
	_And: "&",

	_Eql: "==",
	_Neq: "!=",
	_Lss: "<",
	_Leq: "<=",
	_Gtr: ">",
	_Geq: ">=",

	_Shl: "<<",
	_Shr: ">>",

	_Add: "+",
	_Sub: "-",

	_Mul: "*",
	_Div: "/",
	_Rem: "%",

	_Not:   "!",
	_Tilde: "~",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrack: "[",
	_Rbrack: "]",
	_Lbrace: "{",
	_Rbrace: "}",
	_Comma:  ",",
	_Semi:   ";",
	_Colon:  ":",

	_Break:    "break",
	_Char:     "char",
	_Const:    "const",
	_Continue: "continue",
	_Else:     "else",
	_For:      "for",
	_If:       "if",
	_Int:      "int",
	_Return:   "return",
	_Void:     "void",
	_While:    "while",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// Precedence returns the operator precedence for binary operators.
// Returns 0 for non-operators.
// Precedence levels (higher = binds tighter):
//
//	 1: ||
//	 2: &&
//	 3: |
//	 4: ^
//	 5: &
//	 6: == !=
//	 7: < <= > >=
//	 8: << >>
//	 9: + -
//	10: * / %
func (t Token) Precedence() int {
	switch t {
	case _OrOr:
		return 1
	case _AndAnd:
		return 2
	case _Or:
		return 3
	case _Xor:
		return 4
	case _And:
		return 5
	case _Eql, _Neq:
		return 6
	case _Lss, _Leq, _Gtr, _Geq:
		return 7
	case _Shl, _Shr:
		return 8
	case _Add, _Sub:
		return 9
	case _Mul, _Div, _Rem:
		return 10
	}
	return 0
}

// IsKeyword reports whether t is a keyword token.
func (t Token) IsKeyword() bool {
	return t >= _Break && t <= _While
}

// IsType reports whether t starts a declaration: a type keyword or const.
func (t Token) IsType() bool {
	switch t {
	case _Int, _Char, _Void, _Const:
		return true
	}
	return false
}

// IsLiteral reports whether t is a literal token.
func (t Token) IsLiteral() bool {
	return t == _Literal
}

// IsOperator reports whether t is an operator token.
func (t Token) IsOperator() bool {
	return t >= _Assign && t <= _Tilde
}

// IsBreak reports whether t is the break keyword.
// It distinguishes the two BranchStmt forms.
func (t Token) IsBreak() bool {
	return t == _Break
}

// IsLogical reports whether t is a short-circuit logical operator.
func (t Token) IsLogical() bool {
	return t == _OrOr || t == _AndAnd
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// LitKind represents the kind of a literal token.
type LitKind uint8

const (
	IntLit    LitKind = iota // 123, 0x1F, 0755
	CharLit                  // 'a', '\n'
	StringLit                // "hello", "line\n"
)

// litKindNames maps literal kinds to their string representation.
var litKindNames = [...]string{
	IntLit:    "int",
	CharLit:   "char",
	StringLit: "string",
}

// String returns the string representation of the literal kind.
func (k LitKind) String() string {
	if k <= StringLit {
		return litKindNames[k]
	}
	return fmt.Sprintf("LitKind(%d)", k)
}

// keywords maps keyword strings to their token type.
var keywords = map[string]Token{
	"break":    _Break,
	"char":     _Char,
	"const":    _Const,
	"continue": _Continue,
	"else":     _Else,
	"for":      _For,
	"if":       _If,
	"int":      _Int,
	"return":   _Return,
	"void":     _Void,
	"while":    _While,
}

// LookupKeyword returns the token for the given identifier string.
// If the identifier is a keyword, returns the keyword token.
// Otherwise, returns _Name.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}

package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Scanner performs lexical analysis on minic source code.
type Scanner struct {
	source // embedded character reader

	// Current token info
	tok    Token   // token type
	lit    string  // token literal (identifier name, number, decoded string content)
	kind   LitKind // literal kind (only valid when tok == _Literal)
	tokPos Pos     // token start position

	// Literal accumulation
	litBuf strings.Builder
}

// NewScanner creates a new Scanner for the given source.
// The errh function is called for each lexical error; if nil, errors are silently ignored.
func NewScanner(filename string, src io.Reader, errh func(line, col uint32, msg string)) *Scanner {
	return &Scanner{
		source: *newSource(filename, src, errh),
	}
}

// Next advances to the next token.
func (s *Scanner) Next() {
redo:
	// 1. Skip whitespace
	s.skipWhitespace()

	// 2. Record token start position
	s.tokPos = s.pos()

	// 3. Scan token based on current character
	switch {
	case s.ch < 0:
		s.tok = _EOF
		s.lit = ""

	case isLetter(s.ch):
		s.scanIdent()

	case isDigit(s.ch):
		s.scanNumber()

	case s.ch == '"':
		s.scanString()

	case s.ch == '\'':
		s.scanChar()

	case isOperatorStart(s.ch):
		if s.scanOperator() {
			// scanOperator returned true, meaning we skipped a comment
			goto redo
		}

	default:
		s.error(fmt.Sprintf("unexpected character %q", s.ch))
		s.nextch()
		goto redo
	}
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the current token's literal value.
func (s *Scanner) Literal() string {
	return s.lit
}

// LitKind returns the current literal's kind (only valid when Token() == _Literal).
func (s *Scanner) LitKind() LitKind {
	return s.kind
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

// skipWhitespace skips space, tab, carriage return, and newline.
func (s *Scanner) skipWhitespace() {
	for isWhitespace(s.ch) {
		s.nextch()
	}
}

// startLit begins accumulating a literal.
func (s *Scanner) startLit() {
	s.litBuf.Reset()
	s.litBuf.WriteRune(s.ch)
}

// continueLit adds the current character to the literal being accumulated.
func (s *Scanner) continueLit() {
	s.litBuf.WriteRune(s.ch)
}

// stopLit ends literal accumulation and returns the accumulated string.
func (s *Scanner) stopLit() string {
	return s.litBuf.String()
}

// scanIdent scans an identifier or keyword.
func (s *Scanner) scanIdent() {
	s.startLit()
	s.nextch()

	for isLetter(s.ch) || isDigit(s.ch) {
		s.continueLit()
		s.nextch()
	}

	s.lit = s.stopLit()

	// Check if it's a keyword
	s.tok = LookupKeyword(s.lit)
}

// scanNumber scans an integer literal.
// The literal keeps its written form (0x prefix, leading octal zero)
// so later phases can decode it with C numeral rules.
func (s *Scanner) scanNumber() {
	s.litBuf.Reset()
	s.kind = IntLit

	if s.ch == '0' {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
		if lower(s.ch) == 'x' {
			// Hexadecimal: 0x or 0X
			s.litBuf.WriteRune(s.ch)
			s.nextch()
			s.scanHexDigits()
		} else if isDigit(s.ch) {
			// Octal: leading 0
			s.scanOctalDigits()
			if isDigit(s.ch) {
				s.error("invalid octal digit")
				s.scanDecimalDigits()
			}
		}
	} else {
		s.scanDecimalDigits()
	}

	s.lit = s.litBuf.String()
	s.tok = _Literal
}

// scanDecimalDigits scans decimal digits.
func (s *Scanner) scanDecimalDigits() {
	for isDigit(s.ch) {
		s.continueLit()
		s.nextch()
	}
}

// scanHexDigits scans hexadecimal digits.
func (s *Scanner) scanHexDigits() {
	if !isHexDigit(s.ch) {
		s.error("invalid hex digit")
		return
	}
	for isHexDigit(s.ch) {
		s.continueLit()
		s.nextch()
	}
}

// scanOctalDigits scans octal digits.
func (s *Scanner) scanOctalDigits() {
	for isOctalDigit(s.ch) {
		s.continueLit()
		s.nextch()
	}
}

// scanString scans a string literal.
// The resulting literal is the decoded string content (escape sequences are interpreted).
func (s *Scanner) scanString() {
	s.nextch() // skip opening "
	var b strings.Builder

	for {
		switch {
		case s.ch == '"':
			s.nextch()
			s.lit = b.String()
			s.tok = _Literal
			s.kind = StringLit
			return

		case s.ch == '\\':
			// Escapes denote single bytes, so values >= 0x80 must not
			// be re-encoded as multi-byte UTF-8.
			if r, ok := s.scanEscape(); ok {
				b.WriteByte(byte(r))
			}

		case s.ch == '\n' || s.ch < 0:
			s.error("string not terminated")
			s.lit = b.String()
			s.tok = _Literal
			s.kind = StringLit
			return

		default:
			b.WriteRune(s.ch)
			s.nextch()
		}
	}
}

// scanChar scans a character literal.
// The resulting literal is the decoded character.
func (s *Scanner) scanChar() {
	s.nextch() // skip opening '
	s.tok = _Literal
	s.kind = CharLit

	var r rune
	switch {
	case s.ch == '\\':
		r, _ = s.scanEscape()

	case s.ch == '\'':
		s.error("empty character literal")
		s.nextch()
		s.lit = ""
		return

	case s.ch == '\n' || s.ch < 0:
		s.error("character literal not terminated")
		s.lit = ""
		return

	default:
		r = s.ch
		s.nextch()
	}

	if s.ch != '\'' {
		s.error("character literal not terminated")
	} else {
		s.nextch()
	}
	s.lit = string(r)
}

// scanEscape scans an escape sequence and returns the decoded rune.
func (s *Scanner) scanEscape() (rune, bool) {
	s.nextch() // skip \

	switch s.ch {
	case 'n':
		s.nextch()
		return '\n', true
	case 't':
		s.nextch()
		return '\t', true
	case 'r':
		s.nextch()
		return '\r', true
	case '\\':
		s.nextch()
		return '\\', true
	case '\'':
		s.nextch()
		return '\'', true
	case '"':
		s.nextch()
		return '"', true
	case '0':
		s.nextch()
		return 0, true
	case 'x':
		s.nextch()
		return s.scanHexEscape()
	default:
		s.error(fmt.Sprintf("unknown escape sequence: \\%c", s.ch))
		s.nextch()
		return 0, false
	}
}

// scanHexEscape scans a \xNN escape sequence.
func (s *Scanner) scanHexEscape() (rune, bool) {
	var val rune
	for i := 0; i < 2; i++ {
		if !isHexDigit(s.ch) {
			s.error("invalid hex escape")
			return 0, false
		}
		val = val*16 + hexValue(s.ch)
		s.nextch()
	}
	return val, true
}

// hexValue returns the numeric value of a hex digit.
func hexValue(r rune) rune {
	switch {
	case '0' <= r && r <= '9':
		return r - '0'
	case 'a' <= lower(r) && lower(r) <= 'f':
		return lower(r) - 'a' + 10
	}
	return 0
}

// scanOperator scans an operator or delimiter.
// Returns true if a comment was skipped (caller should rescan).
func (s *Scanner) scanOperator() bool {
	ch := s.ch
	s.nextch()

	switch ch {
	case '+':
		s.tok = _Add
		s.lit = "+"
	case '-':
		s.tok = _Sub
		s.lit = "-"
	case '*':
		s.tok = _Mul
		s.lit = "*"
	case '/':
		if s.ch == '/' {
			// Line comment
			s.skipLineComment()
			return true
		}
		if s.ch == '*' {
			// Block comment
			s.skipBlockComment()
			return true
		}
		s.tok = _Div
		s.lit = "/"
	case '%':
		s.tok = _Rem
		s.lit = "%"
	case '&':
		if s.ch == '&' {
			s.nextch()
			s.tok = _AndAnd
			s.lit = "&&"
		} else {
			s.tok = _And
			s.lit = "&"
		}
	case '|':
		if s.ch == '|' {
			s.nextch()
			s.tok = _OrOr
			s.lit = "||"
		} else {
			s.tok = _Or
			s.lit = "|"
		}
	case '^':
		s.tok = _Xor
		s.lit = "^"
	case '<':
		switch s.ch {
		case '=':
			s.nextch()
			s.tok = _Leq
			s.lit = "<="
		case '<':
			s.nextch()
			s.tok = _Shl
			s.lit = "<<"
		default:
			s.tok = _Lss
			s.lit = "<"
		}
	case '>':
		switch s.ch {
		case '=':
			s.nextch()
			s.tok = _Geq
			s.lit = ">="
		case '>':
			s.nextch()
			s.tok = _Shr
			s.lit = ">>"
		default:
			s.tok = _Gtr
			s.lit = ">"
		}
	case '=':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Eql
			s.lit = "=="
		} else {
			s.tok = _Assign
			s.lit = "="
		}
	case '!':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Neq
			s.lit = "!="
		} else {
			s.tok = _Not
			s.lit = "!"
		}
	case '~':
		s.tok = _Tilde
		s.lit = "~"
	case '?':
		s.tok = _Quest
		s.lit = "?"
	case ':':
		s.tok = _Colon
		s.lit = ":"
	case '(':
		s.tok = _Lparen
		s.lit = "("
	case ')':
		s.tok = _Rparen
		s.lit = ")"
	case '[':
		s.tok = _Lbrack
		s.lit = "["
	case ']':
		s.tok = _Rbrack
		s.lit = "]"
	case '{':
		s.tok = _Lbrace
		s.lit = "{"
	case '}':
		s.tok = _Rbrace
		s.lit = "}"
	case ',':
		s.tok = _Comma
		s.lit = ","
	case ';':
		s.tok = _Semi
		s.lit = ";"
	}

	return false
}

// skipLineComment skips a line comment (from // to end of line).
func (s *Scanner) skipLineComment() {
	// Already consumed the second /
	s.nextch()
	for s.ch != '\n' && s.ch >= 0 {
		s.nextch()
	}
}

// skipBlockComment skips a /* */ comment.
func (s *Scanner) skipBlockComment() {
	// Already consumed the *
	s.nextch()
	for s.ch >= 0 {
		if s.ch == '*' {
			s.nextch()
			if s.ch == '/' {
				s.nextch()
				return
			}
			continue
		}
		s.nextch()
	}
	s.error("comment not terminated")
}

// Package lexer tokenizes GraphQL source text into a stream of
// spanned tokens, skipping whitespace, commas, and line comments.
package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/corvidae/graphql/ast"
)

const bom = 0xFEFF

// Lexer turns a source string into tokens on demand via Next. It is
// not safe for concurrent use; each parse owns its own Lexer.
type Lexer struct {
	src string
	pos ast.Position
}

// New returns a Lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{src: src}
}

func (l *Lexer) current() (rune, bool) {
	if l.pos.Index >= len(l.src) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(l.src[l.pos.Index:])
	if r == utf8.RuneError && size <= 1 {
		return 0, false
	}
	return r, true
}

func (l *Lexer) advance() rune {
	r, ok := l.current()
	if !ok {
		return 0
	}
	l.pos = l.pos.Advance(r)
	return r
}

func isNameStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isNameContinue(r rune) bool {
	return isNameStart(r) || (r >= '0' && r <= '9')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func (l *Lexer) skipInsignificant() {
	for {
		if l.pos.Index == 0 {
			if r, ok := l.current(); ok && r == bom {
				l.advance()
				continue
			}
		}
		r, ok := l.current()
		if !ok {
			return
		}
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			l.advance()
			continue
		case r == ',':
			l.advance()
			continue
		case r == '#':
			for {
				r2, ok2 := l.current()
				if !ok2 || r2 == '\n' {
					break
				}
				l.advance()
			}
			continue
		}
		return
	}
}

var singleCharTokens = map[rune]ast.TokenKind{
	'{': ast.CurlyOpen,
	'}': ast.CurlyClose,
	'(': ast.ParenOpen,
	')': ast.ParenClose,
	'[': ast.BracketOpen,
	']': ast.BracketClose,
	':': ast.Colon,
	'=': ast.Equals,
	'@': ast.At,
	'$': ast.Dollar,
	'!': ast.ExclamationMark,
	'|': ast.Pipe,
}

// Next consumes and returns the next significant token, terminated by
// a Token of Kind EOF positioned at the end of input. On failure it
// returns a Spanning error positioned at the offending byte range and
// a zero Spanning token.
func (l *Lexer) Next() (ast.Spanning[ast.Token], *ast.Spanning[*Error]) {
	l.skipInsignificant()
	start := l.pos

	r, ok := l.current()
	if !ok {
		return ast.ZeroWidth(start, ast.Token{Kind: ast.EOF}), nil
	}

	switch {
	case r == '.':
		return l.lexEllipsis(start)
	case isNameStart(r):
		return l.lexName(start), nil
	case r == '-' || isDigit(r):
		return l.lexNumber(start)
	case r == '"':
		return l.lexString(start)
	}

	if kind, ok := singleCharTokens[r]; ok {
		l.advance()
		return ast.StartEnd(start, l.pos, ast.Token{Kind: kind}), nil
	}

	l.advance()
	return ast.Spanning[ast.Token]{}, errAt(start, l.pos, &Error{Kind: UnknownCharacter, Detail: strconv.QuoteRune(r)})
}

func errAt(start, end ast.Position, err *Error) *ast.Spanning[*Error] {
	span := ast.StartEnd(start, end, err)
	return &span
}

func (l *Lexer) lexEllipsis(start ast.Position) (ast.Spanning[ast.Token], *ast.Spanning[*Error]) {
	for i := 0; i < 3; i++ {
		r, ok := l.current()
		if !ok || r != '.' {
			return ast.Spanning[ast.Token]{}, errAt(start, l.pos, &Error{Kind: UnknownCharacter, Detail: `"."`})
		}
		l.advance()
	}
	return ast.StartEnd(start, l.pos, ast.Token{Kind: ast.Ellipsis}), nil
}

func (l *Lexer) lexName(start ast.Position) ast.Spanning[ast.Token] {
	for {
		r, ok := l.current()
		if !ok || !isNameContinue(r) {
			break
		}
		l.advance()
	}
	text := l.src[start.Index:l.pos.Index]
	return ast.StartEnd(start, l.pos, ast.Token{Kind: ast.Name, Text: text})
}

func (l *Lexer) lexNumber(start ast.Position) (ast.Spanning[ast.Token], *ast.Spanning[*Error]) {
	if r, ok := l.current(); ok && r == '-' {
		l.advance()
	}

	r, ok := l.current()
	if !ok || !isDigit(r) {
		return ast.Spanning[ast.Token]{}, errAt(start, l.pos, &Error{Kind: InvalidNumber})
	}

	if r == '0' {
		l.advance()
		if r2, ok2 := l.current(); ok2 && isDigit(r2) {
			return ast.Spanning[ast.Token]{}, errAt(start, l.pos, &Error{Kind: InvalidNumber})
		}
	} else {
		for {
			r, ok = l.current()
			if !ok || !isDigit(r) {
				break
			}
			l.advance()
		}
	}

	isFloat := false
	if r, ok = l.current(); ok && r == '.' {
		isFloat = true
		l.advance()
		r2, ok2 := l.current()
		if !ok2 || !isDigit(r2) {
			return ast.Spanning[ast.Token]{}, errAt(start, l.pos, &Error{Kind: InvalidNumber})
		}
		for {
			r2, ok2 = l.current()
			if !ok2 || !isDigit(r2) {
				break
			}
			l.advance()
		}
	}

	if r, ok = l.current(); ok && (r == 'e' || r == 'E') {
		isFloat = true
		l.advance()
		if r2, ok2 := l.current(); ok2 && (r2 == '+' || r2 == '-') {
			l.advance()
		}
		r2, ok2 := l.current()
		if !ok2 || !isDigit(r2) {
			return ast.Spanning[ast.Token]{}, errAt(start, l.pos, &Error{Kind: InvalidNumber})
		}
		for {
			r2, ok2 = l.current()
			if !ok2 || !isDigit(r2) {
				break
			}
			l.advance()
		}
	}

	if r, ok = l.current(); ok && (isNameStart(r) || isDigit(r)) {
		return ast.Spanning[ast.Token]{}, errAt(start, l.pos, &Error{Kind: InvalidNumber})
	}

	text := l.src[start.Index:l.pos.Index]
	if isFloat {
		f, _ := strconv.ParseFloat(text, 64)
		return ast.StartEnd(start, l.pos, ast.Token{
			Kind: ast.Scalar,
			Text: text,
			Lit:  ast.ScalarLiteral{Kind: ast.ScalarFloat, FloatValue: f},
		}), nil
	}
	n, _ := strconv.ParseInt(text, 10, 64)
	return ast.StartEnd(start, l.pos, ast.Token{
		Kind: ast.Scalar,
		Text: text,
		Lit:  ast.ScalarLiteral{Kind: ast.ScalarInt, IntValue: n},
	}), nil
}

func (l *Lexer) lexString(start ast.Position) (ast.Spanning[ast.Token], *ast.Spanning[*Error]) {
	l.advance() // opening quote
	var buf strings.Builder

	for {
		r, ok := l.current()
		if !ok {
			return ast.Spanning[ast.Token]{}, errAt(start, l.pos, &Error{Kind: UnterminatedString})
		}
		if r == '"' {
			l.advance()
			break
		}
		if r == '\n' || r == '\r' {
			return ast.Spanning[ast.Token]{}, errAt(start, l.pos, &Error{Kind: UnterminatedString})
		}
		if r == '\\' {
			if err := l.lexEscape(&buf); err != nil {
				return ast.Spanning[ast.Token]{}, errAt(start, l.pos, err)
			}
			continue
		}
		if r < 0x20 {
			return ast.Spanning[ast.Token]{}, errAt(start, l.pos, &Error{Kind: UnknownCharacterInString, Detail: strconv.QuoteRune(r)})
		}
		buf.WriteRune(r)
		l.advance()
	}

	return ast.StartEnd(start, l.pos, ast.Token{
		Kind: ast.Scalar,
		Lit:  ast.ScalarLiteral{Kind: ast.ScalarString, StringValue: buf.String()},
	}), nil
}

func (l *Lexer) lexEscape(buf *strings.Builder) *Error {
	l.advance() // backslash
	r, ok := l.current()
	if !ok {
		return &Error{Kind: UnterminatedString}
	}
	switch r {
	case '"', '\\', '/':
		buf.WriteRune(r)
		l.advance()
	case 'b':
		buf.WriteByte('\b')
		l.advance()
	case 'f':
		buf.WriteByte('\f')
		l.advance()
	case 'n':
		buf.WriteByte('\n')
		l.advance()
	case 'r':
		buf.WriteByte('\r')
		l.advance()
	case 't':
		buf.WriteByte('\t')
		l.advance()
	case 'u':
		l.advance()
		cp, ok := l.readHex4()
		if !ok {
			return &Error{Kind: UnknownEscapeSequence, Detail: `"\u"`}
		}
		if cp >= 0xD800 && cp <= 0xDBFF {
			if r2, ok2 := l.current(); !ok2 || r2 != '\\' {
				return &Error{Kind: UnknownEscapeSequence, Detail: `"\u"`}
			}
			l.advance()
			if r2, ok2 := l.current(); !ok2 || r2 != 'u' {
				return &Error{Kind: UnknownEscapeSequence, Detail: `"\u"`}
			}
			l.advance()
			low, ok2 := l.readHex4()
			if !ok2 || low < 0xDC00 || low > 0xDFFF {
				return &Error{Kind: UnknownEscapeSequence, Detail: `"\u"`}
			}
			cp = 0x10000 + (cp-0xD800)*0x400 + (low - 0xDC00)
		}
		buf.WriteRune(rune(cp))
	default:
		return &Error{Kind: UnknownEscapeSequence, Detail: "\"\\" + string(r) + "\""}
	}
	return nil
}

func (l *Lexer) readHex4() (uint32, bool) {
	var v uint32
	for i := 0; i < 4; i++ {
		r, ok := l.current()
		if !ok {
			return 0, false
		}
		var d uint32
		switch {
		case r >= '0' && r <= '9':
			d = uint32(r - '0')
		case r >= 'a' && r <= 'f':
			d = uint32(r-'a') + 10
		case r >= 'A' && r <= 'F':
			d = uint32(r-'A') + 10
		default:
			return 0, false
		}
		v = v<<4 | d
		l.advance()
	}
	return v, true
}

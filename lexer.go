package main

import (
	"fmt"
	"strings"
	"unicode"
)

type TokenKind int

const (
	KEYWORD TokenKind = iota
	SYNTAX
	IDENTIFIER
	NUMBER
)

func (t TokenKind) String() string {
	data := map[TokenKind]string{
		KEYWORD:    "KEYWORD",
		SYNTAX:     "SYNTAX",
		IDENTIFIER: "IDENTIFIER",
		NUMBER:     "NUMBER",
	}
	return data[t]
}

// Location is a position in the source buffer. Line and Column are
// one-based and only used for rendering; Index is the rune offset.
type Location struct {
	Line   int
	Column int
	Index  int
}

// Debug renders the source line Location points into, a caret under the
// offending column, and msg on the final line.
func (loc Location) Debug(raw []rune, msg string) string {
	start := loc.Index
	if start > len(raw) {
		start = len(raw)
	}
	for start > 0 && raw[start-1] != '\n' {
		start--
	}
	end := start
	for end < len(raw) && raw[end] != '\n' {
		end++
	}

	prefix := fmt.Sprintf("%d | ", loc.Line)
	caret := strings.Repeat(" ", len(prefix)+loc.Column-1) + "^"
	return fmt.Sprintf("%s%s\n%s\n%s near line %d, column %d", prefix, string(raw[start:end]), caret, msg, loc.Line, loc.Column)
}

// Token is a classified lexeme. Tokens are immutable and copied by value
// into AST nodes, so the tree never aliases the token sequence.
type Token struct {
	Kind  TokenKind
	Value string
	Loc   Location
}

type Lexer struct {
	raw []rune
	pos Location
}

func NewLexer(raw []rune) *Lexer {
	return &Lexer{
		raw: raw,
		pos: Location{Line: 1, Column: 1},
	}
}

func (l *Lexer) eof() bool {
	return l.pos.Index >= len(l.raw)
}

func (l *Lexer) advance() {
	if l.raw[l.pos.Index] == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column++
	}
	l.pos.Index++
}

func firstChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func otherChar(r rune) bool {
	return firstChar(r) || unicode.IsDigit(r)
}

// Lex tokenizes the whole buffer. The parser needs random access over the
// token sequence, so the lexer produces a slice rather than a stream.
func (l *Lexer) Lex() ([]Token, error) {
	var tokens []Token
	for {
		l.eatWhitespace()
		if l.eof() {
			return tokens, nil
		}

		r := l.raw[l.pos.Index]
		switch {
		case unicode.IsDigit(r):
			tokens = append(tokens, l.lexNumber())
		case firstChar(r):
			tokens = append(tokens, l.lexIdentifier())
		default:
			tok, ok := l.lexSyntax()
			if !ok {
				return nil, UnexpectedCharacter{
					Character: r,
					Location:  l.pos,
					Raw:       l.raw,
				}
			}
			tokens = append(tokens, tok)
		}
	}
}

// eatWhitespace also discards comments, which run from "--" to the end of
// the line.
func (l *Lexer) eatWhitespace() {
	for !l.eof() {
		switch {
		case unicode.IsSpace(l.raw[l.pos.Index]):
			l.advance()
		case l.peekString(2) == "--":
			for !l.eof() && l.raw[l.pos.Index] != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *Lexer) peekString(n int) string {
	if l.pos.Index+n > len(l.raw) {
		return ""
	}
	return string(l.raw[l.pos.Index : l.pos.Index+n])
}

func (l *Lexer) lexNumber() Token {
	from := l.pos
	var lit string
	for !l.eof() && unicode.IsDigit(l.raw[l.pos.Index]) {
		lit += string(l.raw[l.pos.Index])
		l.advance()
	}
	return Token{Kind: NUMBER, Value: lit, Loc: from}
}

func (l *Lexer) lexIdentifier() Token {
	from := l.pos
	var lit string
	for !l.eof() && otherChar(l.raw[l.pos.Index]) {
		lit += string(l.raw[l.pos.Index])
		l.advance()
	}

	keywords := map[string]bool{
		"function": true,
		"end":      true,
		"if":       true,
		"then":     true,
		"local":    true,
		"return":   true,
	}

	if keywords[lit] {
		return Token{Kind: KEYWORD, Value: lit, Loc: from}
	}
	return Token{Kind: IDENTIFIER, Value: lit, Loc: from}
}

func (l *Lexer) lexSyntax() (Token, bool) {
	from := l.pos

	for _, op := range []string{"==", "<=", ">=", "~="} {
		if l.peekString(2) == op {
			l.advance()
			l.advance()
			return Token{Kind: SYNTAX, Value: op, Loc: from}, true
		}
	}

	r := l.raw[l.pos.Index]
	if strings.ContainsRune(";,()+-*/<>=", r) {
		l.advance()
		return Token{Kind: SYNTAX, Value: string(r), Loc: from}, true
	}

	return Token{}, false
}

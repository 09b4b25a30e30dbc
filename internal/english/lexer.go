package english

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenKind int

const (
	TokenEnd TokenKind = iota
	TokenInt
	TokenIden
	TokenChar
)

func (k TokenKind) String() string {
	switch k {
	case TokenInt:
		return "integer"
	case TokenIden:
		return "word"
	case TokenChar:
		return "character"
	default:
		return "end of input"
	}
}

// Token is a single lexeme. Integers keep their literal text so leading zeros survive.
type Token struct {
	Kind TokenKind
	Text string
	Char rune
}

func (t Token) String() string {
	switch t.Kind {
	case TokenEnd:
		return "end of input"
	case TokenChar:
		return fmt.Sprintf("%q", t.Char)
	default:
		return fmt.Sprintf("%s %q", t.Kind, t.Text)
	}
}

func (t Token) finished() bool { return t.Kind == TokenEnd }

func (t Token) isChar(ch rune) bool { return t.Kind == TokenChar && t.Char == ch }

// word returns the lower-cased identifier text, or "" for other kinds.
func (t Token) word() string {
	if t.Kind != TokenIden {
		return ""
	}
	return strings.ToLower(t.Text)
}

func (t Token) int() (int, error) {
	if t.Kind != TokenInt {
		return 0, errorf("expected integer, found %s", t)
	}
	n, err := strconv.Atoi(t.Text)
	if err != nil {
		return 0, errorf("integer %s out of range", t.Text)
	}
	return n, nil
}

type lexer struct {
	input   string
	pos     int
	pending *Token
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		l.pos += size
	}
}

func (l *lexer) scan() Token {
	l.skipSpace()
	if l.pos >= len(l.input) {
		return Token{Kind: TokenEnd}
	}

	start := l.pos
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	switch {
	case isASCIILetter(r):
		for l.pos < len(l.input) && isASCIILetter(rune(l.input[l.pos])) {
			l.pos++
		}
		return Token{Kind: TokenIden, Text: l.input[start:l.pos]}
	case isDigit(r):
		for l.pos < len(l.input) && isDigit(rune(l.input[l.pos])) {
			l.pos++
		}
		return Token{Kind: TokenInt, Text: l.input[start:l.pos]}
	default:
		l.pos += size
		return Token{Kind: TokenChar, Text: string(r), Char: r}
	}
}

// get returns the next token, or an End token once the input is exhausted.
func (l *lexer) get() Token {
	if l.pending != nil {
		t := *l.pending
		l.pending = nil
		return t
	}
	return l.scan()
}

// next is get with exhaustion reported as ok == false.
func (l *lexer) next() (Token, bool) {
	t := l.get()
	return t, !t.finished()
}

// peek returns the next token without consuming it.
func (l *lexer) peek() Token {
	if l.pending == nil {
		t := l.scan()
		l.pending = &t
	}
	return *l.pending
}

// peekChar reports the next raw character without skipping whitespace.
// A peeked token is reported by its first character.
func (l *lexer) peekChar() rune {
	if l.pending != nil {
		if l.pending.finished() {
			return 0
		}
		r, _ := utf8.DecodeRuneInString(l.pending.Text)
		return r
	}
	if l.pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

func (l *lexer) getInt() (int, error) {
	return l.get().int()
}

func (l *lexer) getChar() (rune, error) {
	t := l.get()
	if t.Kind != TokenChar {
		return 0, errorf("expected character, found %s", t)
	}
	return t.Char, nil
}

func (l *lexer) getCharMatching(allowed ...rune) (rune, error) {
	ch, err := l.getChar()
	if err != nil {
		return 0, err
	}
	for _, a := range allowed {
		if ch == a {
			return ch, nil
		}
	}
	return 0, errorf("expected one of %q, found %q", string(allowed), ch)
}

// grabWhile consumes raw characters while pred holds. It must not be called while a
// token is peeked.
func (l *lexer) grabWhile(pred func(rune) bool) string {
	start := l.pos
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if !pred(r) {
			break
		}
		l.pos += size
	}
	return l.input[start:l.pos]
}

func (l *lexer) finished() bool {
	if l.pending != nil {
		return l.pending.finished()
	}
	l.skipSpace()
	return l.pos >= len(l.input)
}

func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// Package lls contains the lexical scanner for the LALG compiler.
package lls

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

type Kind int

// token kinds
const (
	Illegal Kind = iota
	Identifier
	Integer
	Real
	Keyword
	Symbol
)

var kindNames = [...]string{
	Illegal:    "illegal",
	Identifier: "identifier",
	Integer:    "integer number",
	Real:       "real number",
	Keyword:    "keyword",
	Symbol:     "symbol",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Pos is a 1-based line and column in the source text.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Token is a lexical token. Keywords and symbols are told apart from
// each other only by Kind; the parser compares Value against their text.
type Token struct {
	Kind  Kind
	Value string
	Pos   Pos
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q at %s", t.Kind, t.Value, t.Pos)
}

var keyTab = map[string]bool{
	"begin":   true,
	"else":    true,
	"end":     true,
	"if":      true,
	"integer": true,
	"program": true,
	"read":    true,
	"real":    true,
	"then":    true,
	"write":   true,
}

// IsKeyword reports whether s is a reserved word.
func IsKeyword(s string) bool {
	return keyTab[s]
}

// Scanner does lexical analysis. Input is LALG source text, output is a
// sequence of tokens: identifiers, numbers, keywords and special symbols.
// Comments in braces are skipped.
// Next delivers the next token read from r, or false at the end of input.
// A read error ends the input as well and is reported by Err.
type Scanner struct {
	ch   byte // last character read
	eot  bool
	line int
	col  int
	r    *bufio.Reader
	err  error
}

func NewScanner(r io.Reader) *Scanner {
	s := &Scanner{
		r:    bufio.NewReader(r),
		line: 1,
	}
	s.nextCh()
	return s
}

// Err returns the first non-EOF error encountered while reading.
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) nextCh() {
	if s.eot {
		return
	}
	if s.ch == '\n' {
		s.line++
		s.col = 0
	}
	var err error
	s.ch, err = s.r.ReadByte()
	if err != nil {
		s.eot = true
		s.ch = 0
		if err != io.EOF {
			s.err = err
		}
		return
	}
	s.col++
}

func (s *Scanner) peek() byte {
	b, err := s.r.Peek(1)
	if err != nil {
		return 0
	}
	return b[0]
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func (s *Scanner) identifier() Token {
	var buf bytes.Buffer
	for !s.eot && (isLetter(s.ch) || isDigit(s.ch) || s.ch == '_') {
		buf.WriteByte(s.ch)
		s.nextCh()
	}
	id := buf.String()
	if keyTab[id] {
		return Token{Kind: Keyword, Value: id}
	}
	return Token{Kind: Identifier, Value: id}
}

func (s *Scanner) number() Token {
	var buf bytes.Buffer
	for !s.eot && isDigit(s.ch) {
		buf.WriteByte(s.ch)
		s.nextCh()
	}
	// a period only belongs to the number if a fraction digit follows
	if s.ch == '.' && isDigit(s.peek()) {
		buf.WriteByte('.')
		s.nextCh()
		for !s.eot && isDigit(s.ch) {
			buf.WriteByte(s.ch)
			s.nextCh()
		}
		return Token{Kind: Real, Value: buf.String()}
	}
	return Token{Kind: Integer, Value: buf.String()}
}

// comment skips a brace comment; it reports false if the input ends first.
func (s *Scanner) comment() bool {
	s.nextCh()
	for !s.eot && s.ch != '}' {
		s.nextCh()
	}
	if s.eot {
		return false
	}
	s.nextCh()
	return true
}

func (s *Scanner) symbol() Token {
	ch := s.ch
	s.nextCh()
	switch ch {
	case ':':
		if s.ch == '=' {
			s.nextCh()
			return Token{Kind: Symbol, Value: ":="}
		}
	case '<':
		if s.ch == '=' || s.ch == '>' {
			op := string([]byte{ch, s.ch})
			s.nextCh()
			return Token{Kind: Symbol, Value: op}
		}
	case '>':
		if s.ch == '=' {
			s.nextCh()
			return Token{Kind: Symbol, Value: ">="}
		}
	case ';', ',', '.', '(', ')', '+', '-', '*', '/', '=', '$':
	default:
		return Token{Kind: Illegal, Value: string(ch)}
	}
	return Token{Kind: Symbol, Value: string(ch)}
}

func (s *Scanner) Next() (tok Token, ok bool) {
	for {
		for !s.eot && s.ch <= ' ' {
			s.nextCh()
		}
		if s.eot {
			return Token{}, false
		}
		pos := Pos{Line: s.line, Col: s.col}
		switch {
		case s.ch == '{':
			if s.comment() {
				continue
			}
			tok = Token{Kind: Illegal, Value: "{"}
		case isLetter(s.ch):
			tok = s.identifier()
		case isDigit(s.ch):
			tok = s.number()
		default:
			tok = s.symbol()
		}
		tok.Pos = pos
		return tok, true
	}
}

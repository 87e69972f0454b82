package lls

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func scanAll(src string) []Token {
	s := NewScanner(strings.NewReader(src))
	var toks []Token
	for {
		tok, ok := s.Next()
		if !ok {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestScan(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "Empty",
			input:    "",
			expected: nil,
		},
		{
			name:  "Keywords and Identifiers",
			input: "program test integer a_1 begin",
			expected: []Token{
				{Kind: Keyword, Value: "program", Pos: Pos{1, 1}},
				{Kind: Identifier, Value: "test", Pos: Pos{1, 9}},
				{Kind: Keyword, Value: "integer", Pos: Pos{1, 14}},
				{Kind: Identifier, Value: "a_1", Pos: Pos{1, 22}},
				{Kind: Keyword, Value: "begin", Pos: Pos{1, 26}},
			},
		},
		{
			name:  "Symbols",
			input: ":= : ; , . ( ) + - * / = <> <= >= < > $",
			expected: []Token{
				{Kind: Symbol, Value: ":=", Pos: Pos{1, 1}},
				{Kind: Symbol, Value: ":", Pos: Pos{1, 4}},
				{Kind: Symbol, Value: ";", Pos: Pos{1, 6}},
				{Kind: Symbol, Value: ",", Pos: Pos{1, 8}},
				{Kind: Symbol, Value: ".", Pos: Pos{1, 10}},
				{Kind: Symbol, Value: "(", Pos: Pos{1, 12}},
				{Kind: Symbol, Value: ")", Pos: Pos{1, 14}},
				{Kind: Symbol, Value: "+", Pos: Pos{1, 16}},
				{Kind: Symbol, Value: "-", Pos: Pos{1, 18}},
				{Kind: Symbol, Value: "*", Pos: Pos{1, 20}},
				{Kind: Symbol, Value: "/", Pos: Pos{1, 22}},
				{Kind: Symbol, Value: "=", Pos: Pos{1, 24}},
				{Kind: Symbol, Value: "<>", Pos: Pos{1, 26}},
				{Kind: Symbol, Value: "<=", Pos: Pos{1, 29}},
				{Kind: Symbol, Value: ">=", Pos: Pos{1, 32}},
				{Kind: Symbol, Value: "<", Pos: Pos{1, 35}},
				{Kind: Symbol, Value: ">", Pos: Pos{1, 37}},
				{Kind: Symbol, Value: "$", Pos: Pos{1, 39}},
			},
		},
		{
			name:  "Numbers",
			input: "42 3.14 1.",
			expected: []Token{
				{Kind: Integer, Value: "42", Pos: Pos{1, 1}},
				{Kind: Real, Value: "3.14", Pos: Pos{1, 4}},
				{Kind: Integer, Value: "1", Pos: Pos{1, 9}},
				{Kind: Symbol, Value: ".", Pos: Pos{1, 10}},
			},
		},
		{
			name:  "Comments and Lines",
			input: "a { skipped\n comment }\n  b",
			expected: []Token{
				{Kind: Identifier, Value: "a", Pos: Pos{1, 1}},
				{Kind: Identifier, Value: "b", Pos: Pos{3, 3}},
			},
		},
		{
			name:  "Illegal",
			input: "a ? {open",
			expected: []Token{
				{Kind: Identifier, Value: "a", Pos: Pos{1, 1}},
				{Kind: Illegal, Value: "?", Pos: Pos{1, 3}},
				{Kind: Illegal, Value: "{", Pos: Pos{1, 5}},
			},
		},
		{
			name:  "No Space",
			input: "end.",
			expected: []Token{
				{Kind: Keyword, Value: "end", Pos: Pos{1, 1}},
				{Kind: Symbol, Value: ".", Pos: Pos{1, 4}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scanAll(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestScanExhausted(t *testing.T) {
	s := NewScanner(strings.NewReader("x"))
	if _, ok := s.Next(); !ok {
		t.Fatal("expected a token")
	}
	for i := 0; i < 2; i++ {
		if tok, ok := s.Next(); ok {
			t.Errorf("expected end of input, got %v", tok)
		}
	}
	if s.Err() != nil {
		t.Errorf("unexpected error: %v", s.Err())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestScanReadError(t *testing.T) {
	s := NewScanner(failingReader{})
	if tok, ok := s.Next(); ok {
		t.Errorf("expected no token, got %v", tok)
	}
	if s.Err() == nil || s.Err().Error() != "disk on fire" {
		t.Errorf("expected read error, got %v", s.Err())
	}
}

func TestIsKeyword(t *testing.T) {
	if !IsKeyword("then") {
		t.Error("then should be a keyword")
	}
	if IsKeyword("Then") {
		t.Error("keywords are case-sensitive")
	}
}

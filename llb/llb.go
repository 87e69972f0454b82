// Package llb contains the "base" for the LALG compiler.
//
// Definition of the data types Symbol and Type, which together form the
// symbol table. LALG has a single scope: every variable is declared once,
// before the statement part, and must be declared before it is used.
package llb

import (
	"errors"
	"fmt"
)

var (
	ErrRedeclared = errors.New("already declared")
	ErrUndeclared = errors.New("not declared")
)

type Type int

// declared types
const (
	Integer Type = 1 + iota
	Real
)

func (t Type) String() string {
	switch t {
	case Integer:
		return "integer"
	case Real:
		return "real"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Zero is the initial value a variable of type t is allocated with.
func (t Type) Zero() string {
	if t == Real {
		return "0.0"
	}
	return "0"
}

// TypeOf maps a type keyword to its Type.
func TypeOf(keyword string) (Type, bool) {
	switch keyword {
	case "integer":
		return Integer, true
	case "real":
		return Real, true
	}
	return 0, false
}

type Symbol struct {
	Type Type
	Name string
}

func (s *Symbol) String() string {
	return s.Name + " = " + s.Type.String()
}

type Base struct {
	symTab map[string]*Symbol
	order  []*Symbol // declaration order, for listings only
}

func NewBase() *Base {
	return &Base{symTab: make(map[string]*Symbol)}
}

// Declare inserts a new symbol. A name can be declared only once,
// whatever its type.
func (b *Base) Declare(name string, typ Type) (*Symbol, error) {
	if _, ok := b.symTab[name]; ok {
		return nil, ErrRedeclared
	}
	sym := &Symbol{Type: typ, Name: name}
	b.symTab[name] = sym
	b.order = append(b.order, sym)
	return sym, nil
}

func (b *Base) Lookup(name string) (*Symbol, error) {
	sym, ok := b.symTab[name]
	if !ok {
		return nil, ErrUndeclared
	}
	return sym, nil
}

func (b *Base) Len() int {
	return len(b.order)
}

// Symbols returns the declared symbols in declaration order.
func (b *Base) Symbols() []*Symbol {
	syms := make([]*Symbol, len(b.order))
	copy(syms, b.order)
	return syms
}

// Package llp contains the parser for the LALG compiler.
package llp

import (
	"fmt"
	"io"
	"os"

	"github.com/lalgc/lalg-compiler/llb"
	"github.com/lalgc/lalg-compiler/llg"
	"github.com/lalgc/lalg-compiler/lls"
)

// TokenSource delivers tokens one at a time; ok is false at the end of input.
type TokenSource interface {
	Next() (tok lls.Token, ok bool)
}

// Parser of the LALG compiler. Obtains tokens from a TokenSource, records
// declarations in the symbol table LLB and emits quadruples through the
// generator LLG while it recognizes the input, in a single pass.
// Every expression procedure returns the name holding the value of the
// construct it parsed: an identifier, a literal or a temporary.
// The first syntax or semantic error ends the pass.
// A Parser holds the state of one pass and must not be shared.
type Parser struct {
	src TokenSource
	llb *llb.Base
	llg *llg.Generator

	tok  lls.Token // current token, valid unless eot
	eot  bool
	last lls.Pos // position of the last token read
	name string  // program name
	w    io.Writer
}

func NewParser(src TokenSource, b *llb.Base, g *llg.Generator, w io.Writer) *Parser {
	return &Parser{src: src, llb: b, llg: g, w: w}
}

func (p *Parser) next() {
	tok, ok := p.src.Next()
	p.tok, p.eot = tok, !ok
	if ok {
		p.last = tok.Pos
	}
}

// is reports whether the current token is a keyword or symbol in vals.
func (p *Parser) is(vals ...string) bool {
	if p.eot || (p.tok.Kind != lls.Keyword && p.tok.Kind != lls.Symbol) {
		return false
	}
	for _, v := range vals {
		if p.tok.Value == v {
			return true
		}
	}
	return false
}

func (p *Parser) isKind(kinds ...lls.Kind) bool {
	if p.eot {
		return false
	}
	for _, k := range kinds {
		if p.tok.Kind == k {
			return true
		}
	}
	return false
}

func (p *Parser) syntaxErr(expected ...string) error {
	if p.eot {
		return &SyntaxError{Pos: p.last, Expected: expected, EOF: true}
	}
	return &SyntaxError{Pos: p.tok.Pos, Expected: expected, Found: p.tok.Value}
}

func (p *Parser) semanticErr(err error) error {
	return &SemanticError{Pos: p.tok.Pos, Name: p.tok.Value, Err: err}
}

func (p *Parser) check(val string) error {
	if !p.is(val) {
		return p.syntaxErr(val)
	}
	p.next()
	return nil
}

// ident checks that the current token is a declared identifier and
// returns its name.
func (p *Parser) ident() (string, error) {
	if !p.isKind(lls.Identifier) {
		return "", p.syntaxErr(ExpIdent)
	}
	sym, err := p.llb.Lookup(p.tok.Value)
	if err != nil {
		return "", p.semanticErr(err)
	}
	return sym.Name, nil
}

// expressions

var relations = []string{"=", "<>", ">=", "<=", ">", "<"}

func (p *Parser) factor(neg bool) (x string, err error) {
	if p.is("(") {
		p.next()
		if x, err = p.expression(); err != nil {
			return "", err
		}
		if err = p.check(")"); err != nil {
			return "", err
		}
	} else if p.isKind(lls.Identifier) {
		if x, err = p.ident(); err != nil {
			return "", err
		}
		p.next()
	} else if p.isKind(lls.Integer, lls.Real) {
		x = p.tok.Value
		p.next()
	} else {
		return "", p.syntaxErr(ExpIdent, ExpInteger, ExpReal, "(")
	}
	if neg {
		x = p.llg.Neg(x)
	}
	return x, nil
}

func (p *Parser) term() (string, error) {
	neg := false
	if p.is("-") {
		neg = true
		p.next()
	}
	x, err := p.factor(neg)
	if err != nil {
		return "", err
	}
	for p.is("*", "/") {
		op := p.tok.Value
		p.next()
		y, err := p.factor(false)
		if err != nil {
			return "", err
		}
		x = p.llg.Op(op, x, y)
	}
	return x, nil
}

func (p *Parser) expression() (string, error) {
	x, err := p.term()
	if err != nil {
		return "", err
	}
	for p.is("+", "-") {
		op := p.tok.Value
		p.next()
		y, err := p.term()
		if err != nil {
			return "", err
		}
		x = p.llg.Op(op, x, y)
	}
	return x, nil
}

func (p *Parser) condition() (string, error) {
	x, err := p.expression()
	if err != nil {
		return "", err
	}
	if !p.is(relations...) {
		return "", p.syntaxErr(relations...)
	}
	rel := p.tok.Value
	p.next()
	y, err := p.expression()
	if err != nil {
		return "", err
	}
	return p.llg.Relation(rel, x, y), nil
}

// statements

func (p *Parser) ioStatement() error {
	op := p.tok.Value
	p.next()
	if err := p.check("("); err != nil {
		return err
	}
	id, err := p.ident()
	if err != nil {
		return err
	}
	p.next()
	if err := p.check(")"); err != nil {
		return err
	}
	if op == "read" {
		p.llg.Read(id)
	} else {
		p.llg.Write(id)
	}
	return nil
}

func (p *Parser) assignment() error {
	id, err := p.ident()
	if err != nil {
		return err
	}
	p.next()
	if err := p.check(":="); err != nil {
		return err
	}
	x, err := p.expression()
	if err != nil {
		return err
	}
	p.llg.Store(x, id)
	return nil
}

// ifStatement emits the condition and both branches in line;
// no jumps are generated, the condition's temporary gates nothing.
func (p *Parser) ifStatement() error {
	p.next()
	if _, err := p.condition(); err != nil {
		return err
	}
	if err := p.check("then"); err != nil {
		return err
	}
	if err := p.statements(); err != nil {
		return err
	}
	closing := []string{";", "else", "$"}
	if p.is("else") {
		p.next()
		if err := p.statements(); err != nil {
			return err
		}
		closing = []string{";", "$"}
	}
	if !p.is("$") {
		return p.syntaxErr(closing...)
	}
	p.next()
	return nil
}

func (p *Parser) statement() error {
	switch {
	case p.is("read", "write"):
		return p.ioStatement()
	case p.isKind(lls.Identifier):
		return p.assignment()
	case p.is("if"):
		return p.ifStatement()
	}
	return p.syntaxErr("read", "write", "if", ExpIdent)
}

func (p *Parser) statements() error {
	for {
		if err := p.statement(); err != nil {
			return err
		}
		if !p.is(";") {
			return nil
		}
		p.next()
	}
}

// declarations

func (p *Parser) varList(typ llb.Type) error {
	for {
		if !p.isKind(lls.Identifier) {
			return p.syntaxErr(ExpIdent)
		}
		sym, err := p.llb.Declare(p.tok.Value, typ)
		if err != nil {
			return p.semanticErr(err)
		}
		p.llg.Alloc(sym)
		p.next()
		if !p.is(",") {
			return nil
		}
		p.next()
	}
}

// declarations parses declaration groups up to the statement part and
// returns the tokens that could have continued them.
func (p *Parser) declarations() (follow []string, err error) {
	for p.is("real", "integer") {
		typ, _ := llb.TypeOf(p.tok.Value)
		p.next()
		if err := p.check(":"); err != nil {
			return nil, err
		}
		if err := p.varList(typ); err != nil {
			return nil, err
		}
		if !p.is(";") {
			return []string{",", ";"}, nil
		}
		p.next()
	}
	return []string{"real", "integer"}, nil
}

func (p *Parser) body() error {
	follow, err := p.declarations()
	if err != nil {
		return err
	}
	if !p.is("begin") {
		return p.syntaxErr(append(follow, "begin")...)
	}
	p.next()
	if err := p.statements(); err != nil {
		return err
	}
	if !p.is("end") {
		return p.syntaxErr(";", "end")
	}
	p.next()
	return nil
}

func (p *Parser) program() error {
	p.next()
	if !p.is("program") {
		return p.syntaxErr("program")
	}
	p.next()
	if !p.isKind(lls.Identifier) {
		return p.syntaxErr(ExpIdent)
	}
	p.name = p.tok.Value
	p.log(p.name)
	p.next()
	if err := p.body(); err != nil {
		return err
	}
	p.llg.Stop()
	if err := p.check("."); err != nil {
		return err
	}
	if !p.eot {
		return p.syntaxErr(ExpEOI)
	}
	return nil
}

// Program runs the whole pass over the token source.
func (p *Parser) Program() error {
	p.log("  compiling ")
	err := p.program()
	if err == nil {
		p.log(fmt.Sprintf(" %d %d", p.llg.PC(), p.llb.Len()))
	} else {
		p.log("\ncompilation FAILED")
	}
	p.log("\n")
	return err
}

func (p *Parser) Name() string {
	return p.name
}

func (p *Parser) log(a ...interface{}) {
	_, _ = fmt.Fprint(p.w, a...)
}

// Result holds the listings of a successful pass.
type Result struct {
	Name    string
	Symbols []*llb.Symbol
	Code    []llg.Instr
}

func CompileFile(path string, w io.Writer) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Compile(f, w)
}

// Compile analyzes one program read from r, logging progress to w.
// On error no result is returned.
func Compile(r io.Reader, w io.Writer) (*Result, error) {
	s := lls.NewScanner(r)
	b := llb.NewBase()
	g := llg.NewGenerator()
	p := NewParser(s, b, g, w)
	err := p.Program()
	if s.Err() != nil {
		return nil, s.Err()
	}
	if err != nil {
		return nil, err
	}
	return &Result{
		Name:    p.Name(),
		Symbols: b.Symbols(),
		Code:    g.Code(),
	}, nil
}

// Package llg contains the code generator for the LALG compiler.
package llg

import (
	"strconv"
	"strings"

	"github.com/lalgc/lalg-compiler/llb"
)

// operators without an operand symbol of their own
const (
	OpAlloc = "ALLOC"
	OpRead  = "read"
	OpWrite = "write"
	OpStore = ":="
	OpNeg   = "minus"
	OpStop  = "STOP"
)

// Instr is a quadruple. Fields an operator does not use are empty.
//
//	Op         Arg1        Arg2    Result
//	---------------------------------------
//	ALLOC      zero value  -       variable
//	read       -           -       variable
//	write      variable    -       -
//	:=         source      -       variable
//	minus      operand     -       temporary
//	+ - * /    left        right   temporary
//	= <> ...   left        right   temporary (boolean)
//	STOP       -           -       -
type Instr struct {
	Op     string
	Arg1   string
	Arg2   string
	Result string
}

func (i Instr) Fields() []string {
	return []string{i.Op, i.Arg1, i.Arg2, i.Result}
}

func (i Instr) String() string {
	return strings.Join(i.Fields(), ";")
}

// Generator
// Procedural interface to the parser LLP; result in slice "code".
// Every value-producing emitter allocates a fresh temporary and returns
// its name, which the parser folds into the instructions it emits next.
type Generator struct {
	code []Instr
	temp int // last temporary allocated
}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) put(op, arg1, arg2, result string) {
	g.code = append(g.code, Instr{Op: op, Arg1: arg1, Arg2: arg2, Result: result})
}

// NewTemp allocates the next temporary: t1, t2, ... Names are never reused.
func (g *Generator) NewTemp() string {
	g.temp++
	return "t" + strconv.Itoa(g.temp)
}

func (g *Generator) Alloc(sym *llb.Symbol) {
	g.put(OpAlloc, sym.Type.Zero(), "", sym.Name)
}

func (g *Generator) Read(id string) {
	g.put(OpRead, "", "", id)
}

func (g *Generator) Write(id string) {
	g.put(OpWrite, id, "", "")
}

func (g *Generator) Store(src, dst string) {
	g.put(OpStore, src, "", dst)
}

func (g *Generator) Neg(x string) string {
	t := g.NewTemp()
	g.put(OpNeg, x, "", t)
	return t
}

// Op emits an arithmetic operation: + - * or /.
func (g *Generator) Op(op, x, y string) string {
	t := g.NewTemp()
	g.put(op, x, y, t)
	return t
}

// Relation emits a comparison whose result is a boolean temporary.
func (g *Generator) Relation(rel, x, y string) string {
	t := g.NewTemp()
	g.put(rel, x, y, t)
	return t
}

func (g *Generator) Stop() {
	g.put(OpStop, "", "", "")
}

func (g *Generator) PC() int {
	return len(g.code)
}

// Code returns the instructions in emission order.
func (g *Generator) Code() []Instr {
	code := make([]Instr, len(g.code))
	copy(code, g.code)
	return code
}

package llp

import (
	"fmt"
	"strings"

	"github.com/lalgc/lalg-compiler/lls"
)

// token classes named in expected sets; anything else is literal token text
const (
	ExpIdent   = "identifier"
	ExpInteger = "integer number"
	ExpReal    = "real number"
	ExpEOI     = "end of input"
)

func isClass(s string) bool {
	return s == ExpIdent || s == ExpInteger || s == ExpReal || s == ExpEOI
}

// SyntaxError reports a token that matches none of the alternatives
// expected at its position.
type SyntaxError struct {
	Pos      lls.Pos
	Expected []string
	Found    string
	EOF      bool // no token left; Found is empty
}

func (e *SyntaxError) Error() string {
	found := "end of input"
	if !e.EOF {
		found = "'" + e.Found + "'"
	}
	return fmt.Sprintf("%s: syntax error: expected %s, found %s", e.Pos, listExpected(e.Expected), found)
}

func listExpected(exp []string) string {
	q := make([]string, len(exp))
	for i, s := range exp {
		if isClass(s) {
			q[i] = s
		} else {
			q[i] = "'" + s + "'"
		}
	}
	if len(q) == 1 {
		return q[0]
	}
	return strings.Join(q[:len(q)-1], ", ") + " or " + q[len(q)-1]
}

// SemanticError reports an identifier declared twice or used undeclared.
// Err is llb.ErrRedeclared or llb.ErrUndeclared.
type SemanticError struct {
	Pos  lls.Pos
	Name string
	Err  error
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("%s: semantic error: identifier '%s' %v", e.Pos, e.Name, e.Err)
}

func (e *SemanticError) Unwrap() error {
	return e.Err
}

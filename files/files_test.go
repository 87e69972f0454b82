package files

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/lalgc/lalg-compiler/llb"
	"github.com/lalgc/lalg-compiler/llg"
)

var code = []llg.Instr{
	{Op: "ALLOC", Arg1: "0", Result: "a"},
	{Op: "read", Result: "a"},
	{Op: "+", Arg1: "a", Arg2: "1", Result: "t1"},
	{Op: ":=", Arg1: "t1", Result: "a"},
	{Op: "STOP"},
}

const listing = `operator;arg1;arg2;result
ALLOC;0;;a
read;;;a
+;a;1;t1
:=;t1;;a
STOP;;;
`

func TestWriteCode(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCode(&buf, code); err != nil {
		t.Fatal(err)
	}
	if buf.String() != listing {
		t.Errorf("expected\n%s\ngot\n%s", listing, buf.String())
	}
}

func TestReadCode(t *testing.T) {
	got, err := ReadCode(strings.NewReader(listing))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, code) {
		t.Errorf("expected %v, got %v", code, got)
	}

	for _, bad := range []string{"", "op;a;b;c\n", "operator;arg1;arg2;result\nSTOP;;\n"} {
		if _, err := ReadCode(strings.NewReader(bad)); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
	if _, err := ReadCode(strings.NewReader("")); !errors.Is(err, ErrHeader) {
		t.Errorf("expected ErrHeader, got %v", err)
	}
}

func TestWriteSymbols(t *testing.T) {
	syms := []*llb.Symbol{
		{Name: "a", Type: llb.Integer},
		{Name: "x", Type: llb.Real},
	}
	var buf bytes.Buffer
	if err := WriteSymbols(&buf, syms); err != nil {
		t.Fatal(err)
	}
	want := "Symbol Table\na = integer\nx = real\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestWriteListings(t *testing.T) {
	dir := t.TempDir()
	syms := []*llb.Symbol{{Name: "a", Type: llb.Integer}}
	if err := WriteListings(dir, "test", syms, code); err != nil {
		t.Fatal(err)
	}
	quad, err := os.ReadFile(filepath.Join(dir, "test"+CodeExt))
	if err != nil {
		t.Fatal(err)
	}
	if string(quad) != listing {
		t.Errorf("unexpected code listing %q", quad)
	}
	smb, err := os.ReadFile(filepath.Join(dir, "test"+SymbolExt))
	if err != nil {
		t.Fatal(err)
	}
	if string(smb) != "Symbol Table\na = integer\n" {
		t.Errorf("unexpected symbol listing %q", smb)
	}
}

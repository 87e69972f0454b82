// Package files reads and writes the listings produced by the LALG compiler.
//
// The code listing is a quadruple table: a header row followed by one row
// per instruction in emission order, fields separated by ';'.
package files

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lalgc/lalg-compiler/llb"
	"github.com/lalgc/lalg-compiler/llg"
)

const (
	CodeExt   = ".quad"
	SymbolExt = ".smb"
)

var header = []string{"operator", "arg1", "arg2", "result"}

var ErrHeader = errors.New("not a code listing")

func WriteCode(w io.Writer, code []llg.Instr) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, instr := range code {
		if err := cw.Write(instr.Fields()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func ReadCode(r io.Reader) ([]llg.Instr, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = len(header)
	rec, err := cr.Read()
	if err == io.EOF {
		return nil, ErrHeader
	}
	if err != nil {
		return nil, err
	}
	for i, f := range header {
		if rec[i] != f {
			return nil, ErrHeader
		}
	}
	var code []llg.Instr
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		code = append(code, llg.Instr{Op: rec[0], Arg1: rec[1], Arg2: rec[2], Result: rec[3]})
	}
	return code, nil
}

func WriteSymbols(w io.Writer, syms []*llb.Symbol) error {
	if _, err := fmt.Fprintln(w, "Symbol Table"); err != nil {
		return err
	}
	for _, sym := range syms {
		if _, err := fmt.Fprintln(w, sym); err != nil {
			return err
		}
	}
	return nil
}

// WriteListings writes <name>.smb and <name>.quad into dir.
func WriteListings(dir, name string, syms []*llb.Symbol, code []llg.Instr) error {
	err := writeFile(filepath.Join(dir, name+SymbolExt), func(w io.Writer) error {
		return WriteSymbols(w, syms)
	})
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, name+CodeExt), func(w io.Writer) error {
		return WriteCode(w, code)
	})
}

func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return f.Close()
}

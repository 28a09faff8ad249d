package interp

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"acdc/internal/ast"
	"acdc/internal/code"
	"acdc/internal/lexer"
	"acdc/internal/parser"
	"acdc/internal/token"
	"acdc/internal/vm"
)

// Program parses source text, one statement per line. Blank lines and lines
// holding only a comment are skipped. Errors are wrapped with the 1-based
// line number they occurred on.
func Program(src string) ([]ast.Node, error) {
	var stmts []ast.Node

	for i, line := range strings.Split(src, "\n") {
		toks, err := lexer.Lex(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		if toks[0].Type == token.EOF {
			continue
		}

		stmt, err := parser.Parse(token.NewStream(toks))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		stmts = append(stmts, stmt)
	}

	return stmts, nil
}

// Run interprets a whole program, writing print output to out.
func Run(src string, out io.Writer) error {
	stmts, err := Program(src)
	if err != nil {
		return err
	}

	prog, err := code.Emit(stmts)
	if err != nil {
		return err
	}

	return vm.New(out).Run(prog)
}

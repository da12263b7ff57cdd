package debug

import (
	"fmt"
	"io"

	"github.com/lookbusy1344/poke/internal/lexer"
)

// DumpTokens prints the full token stream from src to w, one token
// per line, using the same "new line number vs continuation marker"
// discipline as Disassemble. This backs the debug_trace_lex_execution
// build flag from spec.md §6.
func DumpTokens(w io.Writer, src lexer.ByteSource) error {
	l := lexer.New(src)
	lastLine := -1
	for {
		tok, err := l.Advance()
		if err != nil {
			return err
		}
		line := l.Line()
		if line == lastLine {
			fmt.Fprintf(w, "   |  %s\n", tok)
		} else {
			fmt.Fprintf(w, "%4d  %s\n", line+1, tok)
			lastLine = line
		}
		if tok.Kind == lexer.KindEoS {
			return nil
		}
	}
}

package transpile

import (
	"strings"

	"github.com/GlassBricks/TypeScriptToLua/pkg/parser"
)

// TranspileSourceFile is the engine's sole entry point: a pure
// function from a checked AST to TL source text. On success it
// returns the emitted text; on failure it returns a *TranslationError
// identifying the offending node, with no partial output.
func TranspileSourceFile(program *parser.Program, checker Checker, opts ...Option) (string, error) {
	ctx := NewContext(checker, opts...)
	var sb strings.Builder
	for _, stmt := range program.Statements {
		text, err := ctx.TranspileStatement(stmt)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

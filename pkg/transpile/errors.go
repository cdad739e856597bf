package transpile

import (
	"fmt"

	"github.com/GlassBricks/TypeScriptToLua/pkg/parser"
)

// TranslationError is the engine's single error kind: every unsupported
// construct, rejected operator, and malformed for-header surfaces as
// one of these, carrying the offending node so the driver can report a
// source location.
type TranslationError struct {
	Message string
	Node    parser.Node
}

func (e *TranslationError) Error() string { return e.Message }

func errf(node parser.Node, format string, args ...interface{}) *TranslationError {
	return &TranslationError{Message: fmt.Sprintf(format, args...), Node: node}
}

func unsupportedKind(node parser.Node) *TranslationError {
	return errf(node, "unsupported construct: %s", parser.KindName(node))
}

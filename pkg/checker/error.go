package checker

import "github.com/GlassBricks/TypeScriptToLua/pkg/parser"

// CheckError is a non-fatal binding diagnostic (e.g. a reference to an
// undeclared name). The checker collects these but does not abort —
// unlike the engine's TranslationError, an unresolved binding still
// gets a best-effort Any type so translation can proceed and surface
// its own, more specific error if the construct is actually
// unsupported.
type CheckError struct {
	Message string
	Node    parser.Node
}

func (e *CheckError) Error() string { return e.Message }

// Package transpile is the semantic translation engine: a recursive
// tree-walk over a checked SL AST that emits TL source text. It is the
// core of this repository — everything else (lexer, parser, checker,
// driver, cache, watch, CLI) exists to feed it an AST and a checker and
// to do something useful with the string it returns.
package transpile

import (
	"github.com/GlassBricks/TypeScriptToLua/pkg/parser"
	"github.com/GlassBricks/TypeScriptToLua/pkg/types"
)

// Checker is the engine's view of the external type-checker service:
// a type for any node, and an array-ness predicate over that type.
// pkg/checker.Checker satisfies this; the engine never depends on its
// concrete implementation.
type Checker interface {
	TypeAt(n parser.Node) types.Type
	IsArrayType(t types.Type) bool
}

// Context is the engine's entire mutable state: the current
// indentation string, a monotonically increasing switch-label counter,
// a flag marking emission as being inside a switch clause body (which
// changes what `break` means), the configured bit-op library name, and
// a borrowed checker handle. One Context serves exactly one
// TranspileSourceFile call.
type Context struct {
	indent        string
	switchCounter int
	inSwitch      bool
	switchBase    int // label id of the switch currently enclosing emission, valid only while inSwitch
	bitOpLib      string
	checker       Checker
}

const indentUnit = "    "

// defaultBitOpLibrary is the name `&`/`|` translate calls against when
// no Option overrides it: LuaJIT exposes bitwise ops as the native
// `bit` module.
const defaultBitOpLibrary = "bit"

// Option configures a Context at construction time.
type Option func(*Context)

// WithBitOpLibrary overrides the module name `&`/`|` translate calls
// against, for targets (vanilla Lua 5.2's `bit32`) that don't expose
// LuaJIT's native `bit` module.
func WithBitOpLibrary(name string) Option {
	return func(c *Context) { c.bitOpLib = name }
}

// NewContext constructs a fresh Context bound to checker, applying any
// Options over the defaults.
func NewContext(checker Checker, opts ...Option) *Context {
	c := &Context{checker: checker, bitOpLib: defaultBitOpLibrary}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Context) pushIndent() { c.indent += indentUnit }

func (c *Context) popIndent() {
	if len(c.indent) >= len(indentUnit) {
		c.indent = c.indent[:len(c.indent)-len(indentUnit)]
	}
}

// withSwitchClause runs fn with inSwitch/switchBase set for the
// duration of one clause body, restoring both afterward — even across
// a nested switch, so a break in an outer clause that follows a nested
// switch still resolves to the outer switch's goto target rather than
// falling back to a plain break.
func (c *Context) withSwitchClause(base int, fn func() (string, error)) (string, error) {
	prevIn, prevBase := c.inSwitch, c.switchBase
	c.inSwitch, c.switchBase = true, base
	out, err := fn()
	c.inSwitch, c.switchBase = prevIn, prevBase
	return out, err
}

func (c *Context) typeAt(n parser.Node) types.Type { return c.checker.TypeAt(n) }
func (c *Context) isArrayType(t types.Type) bool    { return c.checker.IsArrayType(t) }

// Package types models the tiny type surface the engine queries
// through the checker: a flags bitset per expression plus a resolved
// symbol for identifiers that name a declaration. It is deliberately
// not a structural or generic type system — see pkg/checker.
package types

import "strings"

// Flags is a bitset describing an expression's static type, wide
// enough to answer every dispatch question the engine asks:
// primitive-method rewriting, array-ness, and little else.
type Flags uint32

const (
	None Flags = 0

	Number Flags = 1 << iota
	StringFlag
	StringLiteral
	Boolean
	Object
	Array
	EnumType
	ClassType
	FunctionType
	Any
	Unknown
	Void
)

func (f Flags) Has(bit Flags) bool { return f&bit != 0 }

func (f Flags) String() string {
	if f == None {
		return "none"
	}
	names := []struct {
		bit  Flags
		name string
	}{
		{Number, "number"}, {StringFlag, "string"}, {StringLiteral, "string-literal"},
		{Boolean, "boolean"}, {Object, "object"}, {Array, "array"}, {EnumType, "enum"},
		{ClassType, "class"}, {FunctionType, "function"}, {Any, "any"}, {Unknown, "unknown"}, {Void, "void"},
	}
	var parts []string
	for _, n := range names {
		if f.Has(n.bit) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// SymbolFlags classifies what kind of declaration a Symbol names.
type SymbolFlags uint32

const (
	SymbolNone SymbolFlags = 0

	SymVariable SymbolFlags = 1 << iota
	SymFunction
	SymClass
	SymEnum
)

func (f SymbolFlags) Has(bit SymbolFlags) bool { return f&bit != 0 }

// Symbol is the declaration a name resolves to: a variable, function,
// class, or enum binding. The engine only ever inspects Flags (to
// detect enum-qualified member access); EscapedName is not read by it.
type Symbol struct {
	EscapedName string
	Flags       SymbolFlags
}

// Type is the per-expression result of the checker's TypeAt. Symbol is
// non-nil only for identifier expressions resolved to a declaration;
// literal and computed expressions carry a nil Symbol.
type Type struct {
	Flags  Flags
	Symbol *Symbol
}

var (
	AnyType     = Type{Flags: Any}
	UnknownType = Type{Flags: Unknown}
	VoidType    = Type{Flags: Void}
	NumberType  = Type{Flags: Number}
	BooleanType = Type{Flags: Boolean}
)

// StringLiteralType builds the type of a string-literal expression:
// both the general String flag and the narrower StringLiteral flag are
// set, matching spec's "receiver has type String or StringLiteral".
func StringLiteralType() Type { return Type{Flags: StringFlag | StringLiteral} }

// StringType is a string-typed (non-literal) expression's type, e.g. a
// variable declared `let s: string` or the result of concatenation.
func StringType() Type { return Type{Flags: StringFlag} }

// ArrayOf builds the type of an array-typed expression.
func ArrayOf() Type { return Type{Flags: Object | Array} }

// ObjectOf builds the type of a plain object-typed expression.
func ObjectOf() Type { return Type{Flags: Object} }

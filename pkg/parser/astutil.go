package parser

import "fmt"

// KindName returns a symbolic name for a node's concrete kind, used by
// the engine to name unsupported constructs in TranslationError
// messages (spec.md §4.1, §7).
func KindName(n Node) string {
	switch n.(type) {
	case *Program:
		return "SourceFile"
	case *LetStatement:
		return "LetStatement"
	case *VarStatement:
		return "VarStatement"
	case *ReturnStatement:
		return "ReturnStatement"
	case *ExpressionStatement:
		return "ExpressionStatement"
	case *BlockStatement:
		return "Block"
	case *IfStatement:
		return "IfStatement"
	case *WhileStatement:
		return "WhileStatement"
	case *ForStatement:
		return "ForStatement"
	case *ForOfStatement:
		return "ForOfStatement"
	case *ForInStatement:
		return "ForInStatement"
	case *BreakStatement:
		return "BreakStatement"
	case *ContinueStatement:
		return "ContinueStatement"
	case *SwitchStatement:
		return "SwitchStatement"
	case *FunctionDeclaration:
		return "FunctionDeclaration"
	case *FunctionLiteral:
		return "FunctionExpression"
	case *ClassDeclaration:
		return "ClassDeclaration"
	case *EnumDeclaration:
		return "EnumDeclaration"
	case *ImportDeclaration:
		return "ImportDeclaration"
	case *InterfaceDeclaration:
		return "InterfaceDeclaration"
	case *TypeAliasStatement:
		return "TypeAliasStatement"
	case *Identifier:
		return "Identifier"
	case *ThisExpression:
		return "ThisExpression"
	case *NumberLiteral:
		return "NumberLiteral"
	case *StringLiteral:
		return "StringLiteral"
	case *BooleanLiteral:
		return "BooleanLiteral"
	case *BinaryExpression:
		return "BinaryExpression"
	case *UnaryExpression:
		return "UnaryExpression"
	case *ConditionalExpression:
		return "ConditionalExpression"
	case *CallExpression:
		return "CallExpression"
	case *NewExpression:
		return "NewExpression"
	case *PropertyAccessExpression:
		return "PropertyAccessExpression"
	case *ElementAccessExpression:
		return "ElementAccessExpression"
	case *ArrayLiteral:
		return "ArrayLiteral"
	case *ObjectLiteral:
		return "ObjectLiteral"
	case *TypeAssertionExpression:
		return "TypeAssertionExpression"
	default:
		return fmt.Sprintf("%T", n)
	}
}

// Children enumerates a node's immediate child nodes in source order.
// Leaf nodes (identifiers, literals) return nil, as do function, class,
// enum, import and interface/type-alias nodes, which are not expanded.
// Used by diagnostics (FirstChildOfKind, and through it Pos).
func Children(n Node) []Node {
	switch node := n.(type) {
	case *Program:
		out := make([]Node, len(node.Statements))
		for i, s := range node.Statements {
			out[i] = s
		}
		return out
	case *BlockStatement:
		out := make([]Node, len(node.Statements))
		for i, s := range node.Statements {
			out[i] = s
		}
		return out
	case *LetStatement:
		return nonNil(node.Name, node.Value)
	case *VarStatement:
		return nonNil(node.Name, node.Value)
	case *ReturnStatement:
		return nonNil(node.ReturnValue)
	case *ExpressionStatement:
		return nonNil(node.Expression)
	case *IfStatement:
		return nonNil(node.Condition, node.Consequence, node.Alternative)
	case *WhileStatement:
		return nonNil(node.Condition, node.Body)
	case *ForStatement:
		return nonNil(node.Initializer, node.Condition, node.Update, node.Body)
	case *ForOfStatement:
		return nonNil(node.VarName, node.Iterable, node.Body)
	case *ForInStatement:
		return nonNil(node.VarName, node.Object, node.Body)
	case *SwitchStatement:
		out := nonNil(node.Expression)
		for _, c := range node.Cases {
			if c.Condition != nil {
				out = append(out, c.Condition)
			}
			for _, s := range c.Body {
				out = append(out, s)
			}
		}
		return out
	case *BinaryExpression:
		return nonNil(node.Left, node.Right)
	case *UnaryExpression:
		return nonNil(node.Operand)
	case *ConditionalExpression:
		return nonNil(node.Condition, node.Consequence, node.Alternative)
	case *CallExpression:
		out := nonNil(node.Callee)
		for _, a := range node.Arguments {
			out = append(out, a)
		}
		return out
	case *NewExpression:
		out := nonNil(node.Callee)
		for _, a := range node.Arguments {
			out = append(out, a)
		}
		return out
	case *PropertyAccessExpression:
		return nonNil(node.Object, node.Property)
	case *ElementAccessExpression:
		return nonNil(node.Object, node.Index)
	case *ArrayLiteral:
		out := make([]Node, len(node.Elements))
		for i, e := range node.Elements {
			out[i] = e
		}
		return out
	case *ObjectLiteral:
		out := make([]Node, 0, len(node.Properties)*2)
		for _, p := range node.Properties {
			out = append(out, p.Key, p.Value)
		}
		return out
	case *TypeAssertionExpression:
		return nonNil(node.Expression)
	default:
		return nil
	}
}

func nonNil(ns ...Node) []Node {
	out := make([]Node, 0, len(ns))
	for _, n := range ns {
		if n == nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// FirstChildOfKind returns the first immediate child of n matching
// predicate want, or nil if none match. Used by Pos as a fallback when a
// node kind has no Token of its own to report a location from.
func FirstChildOfKind(n Node, want func(Node) bool) Node {
	for _, c := range Children(n) {
		if want(c) {
			return c
		}
	}
	return nil
}

// Pos returns the line and column of a node's leading token, for use in
// diagnostics that need a source location rather than just a kind name
// (e.g. the driver's logging of a rejected TranslationError). Literals
// and identifiers carry their own Token; composite nodes are keyed off
// the token that introduced them (e.g. a BinaryExpression's operator
// token is not it -- its Left operand's leading token is used instead
// via the type switch below).
func Pos(n Node) (line, column int) {
	switch node := n.(type) {
	case *Program:
		if len(node.Statements) > 0 {
			return Pos(node.Statements[0])
		}
		return 0, 0
	case *LetStatement:
		return node.Token.Line, node.Token.Column
	case *VarStatement:
		return node.Token.Line, node.Token.Column
	case *ReturnStatement:
		return node.Token.Line, node.Token.Column
	case *ExpressionStatement:
		return node.Token.Line, node.Token.Column
	case *BlockStatement:
		return node.Token.Line, node.Token.Column
	case *IfStatement:
		return node.Token.Line, node.Token.Column
	case *WhileStatement:
		return node.Token.Line, node.Token.Column
	case *ForStatement:
		return node.Token.Line, node.Token.Column
	case *ForOfStatement:
		return node.Token.Line, node.Token.Column
	case *ForInStatement:
		return node.Token.Line, node.Token.Column
	case *BreakStatement:
		return node.Token.Line, node.Token.Column
	case *ContinueStatement:
		return node.Token.Line, node.Token.Column
	case *SwitchStatement:
		return node.Token.Line, node.Token.Column
	case *Parameter:
		return node.Token.Line, node.Token.Column
	case *FunctionLiteral:
		return node.Token.Line, node.Token.Column
	case *FunctionDeclaration:
		return node.Token.Line, node.Token.Column
	case *ClassDeclaration:
		return node.Token.Line, node.Token.Column
	case *EnumDeclaration:
		return node.Token.Line, node.Token.Column
	case *ImportDeclaration:
		return node.Token.Line, node.Token.Column
	case *InterfaceDeclaration:
		return node.Token.Line, node.Token.Column
	case *TypeAliasStatement:
		return node.Token.Line, node.Token.Column
	case *Identifier:
		return node.Token.Line, node.Token.Column
	case *ThisExpression:
		return node.Token.Line, node.Token.Column
	case *NumberLiteral:
		return node.Token.Line, node.Token.Column
	case *StringLiteral:
		return node.Token.Line, node.Token.Column
	case *BooleanLiteral:
		return node.Token.Line, node.Token.Column
	case *BinaryExpression:
		return Pos(node.Left)
	case *UnaryExpression:
		return node.Token.Line, node.Token.Column
	case *ConditionalExpression:
		return node.Token.Line, node.Token.Column
	case *CallExpression:
		return node.Token.Line, node.Token.Column
	case *NewExpression:
		return node.Token.Line, node.Token.Column
	case *PropertyAccessExpression:
		return node.Token.Line, node.Token.Column
	case *ElementAccessExpression:
		return node.Token.Line, node.Token.Column
	case *ArrayLiteral:
		return node.Token.Line, node.Token.Column
	case *ObjectLiteral:
		return node.Token.Line, node.Token.Column
	case *TypeAssertionExpression:
		return node.Token.Line, node.Token.Column
	default:
		// A node kind with no Token case of its own (e.g. a new
		// composite added to the grammar without a Pos entry) still
		// gets a usable location by borrowing its first child's.
		if first := FirstChildOfKind(n, func(Node) bool { return true }); first != nil {
			return Pos(first)
		}
		return 0, 0
	}
}

// IsArrayTypeAnnotation reports whether a node syntactically denotes an
// array value without needing the checker's resolved Type, i.e. a bare
// ArrayLiteral. This SL grammar subset has no separate type-expression
// AST (type annotations are not part of the nodes the engine consumes;
// see spec.md §3), so this is a cheap syntactic shortcut rather than a
// true type-annotation test: a for-of over a literal array (`for (const
// v of [1,2,3])`) is known array-typed before the checker is consulted.
func IsArrayTypeAnnotation(n Node) bool {
	_, ok := n.(*ArrayLiteral)
	return ok
}

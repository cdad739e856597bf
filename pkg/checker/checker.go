// Package checker implements the single-pass binder that backs the
// type-checker service the engine queries (TypeAt / IsArrayType).
// It is intentionally small: one walk over the AST, a stack of lexical
// scopes, and best-effort type inference from literals and
// declarations — not TypeScript's structural or generic inference.
package checker

import (
	"github.com/GlassBricks/TypeScriptToLua/pkg/parser"
	"github.com/GlassBricks/TypeScriptToLua/pkg/types"
)

type binding struct {
	typ types.Type
}

type scope map[string]binding

// Checker is a borrowed reference from the engine's point of view: one
// instance binds one source file, is queried via TypeAt/IsArrayType
// during translation, and is discarded afterward.
type Checker struct {
	types  map[parser.Node]types.Type
	scopes []scope
	errors []*CheckError
}

// NewChecker constructs an empty Checker with a single root scope.
func NewChecker() *Checker {
	c := &Checker{types: make(map[parser.Node]types.Type)}
	c.pushScope()
	return c
}

// Errors returns the non-fatal binding diagnostics collected by Check.
func (c *Checker) Errors() []*CheckError { return c.errors }

// Check walks program, resolving declarations and recording a Type for
// every expression node reached. It never returns an error itself —
// binding failures are soft (recorded in Errors, typed Any) so that
// translation-time TranslationErrors remain the sole fatal failure
// mode, per spec.
func (c *Checker) Check(program *parser.Program) {
	for _, stmt := range program.Statements {
		c.visitStatement(stmt)
	}
}

// TypeAt implements the engine-facing type_at(node) query.
func (c *Checker) TypeAt(n parser.Node) types.Type {
	if t, ok := c.types[n]; ok {
		return t
	}
	return types.AnyType
}

// IsArrayType implements the engine-facing is_array_type(type) query.
func (c *Checker) IsArrayType(t types.Type) bool {
	return t.Flags.Has(types.Array)
}

func (c *Checker) pushScope()     { c.scopes = append(c.scopes, scope{}) }
func (c *Checker) popScope()      { c.scopes = c.scopes[:len(c.scopes)-1] }
func (c *Checker) currentScope() scope { return c.scopes[len(c.scopes)-1] }

func (c *Checker) define(name string, b binding) {
	c.currentScope()[name] = b
}

func (c *Checker) resolve(name string) (binding, bool) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if b, ok := c.scopes[i][name]; ok {
			return b, true
		}
	}
	return binding{}, false
}

func (c *Checker) unresolved(name string, n parser.Node) {
	c.errors = append(c.errors, &CheckError{Message: "unresolved identifier: " + name, Node: n})
}

// --- statements ---

func (c *Checker) visitStatement(s parser.Statement) {
	switch node := s.(type) {
	case *parser.LetStatement:
		c.visitVarLike(node.Name, node.Value)
	case *parser.VarStatement:
		c.visitVarLike(node.Name, node.Value)
	case *parser.ReturnStatement:
		if node.ReturnValue != nil {
			c.visitExpression(node.ReturnValue)
		}
	case *parser.ExpressionStatement:
		c.visitExpression(node.Expression)
	case *parser.BlockStatement:
		c.pushScope()
		for _, st := range node.Statements {
			c.visitStatement(st)
		}
		c.popScope()
	case *parser.IfStatement:
		c.visitExpression(node.Condition)
		c.visitStatement(node.Consequence)
		if node.Alternative != nil {
			c.visitStatement(node.Alternative)
		}
	case *parser.WhileStatement:
		c.visitExpression(node.Condition)
		c.visitStatement(node.Body)
	case *parser.ForStatement:
		c.pushScope()
		if node.Initializer != nil {
			c.visitStatement(node.Initializer)
		}
		if node.Condition != nil {
			c.visitExpression(node.Condition)
		}
		if node.Update != nil {
			c.visitExpression(node.Update)
		}
		c.visitStatement(node.Body)
		c.popScope()
	case *parser.ForOfStatement:
		iterTyp := c.visitExpression(node.Iterable)
		c.pushScope()
		c.define(node.VarName.Value, binding{typ: types.AnyType})
		c.types[node.VarName] = types.AnyType
		_ = iterTyp
		c.visitStatement(node.Body)
		c.popScope()
	case *parser.ForInStatement:
		c.visitExpression(node.Object)
		c.pushScope()
		c.define(node.VarName.Value, binding{typ: types.AnyType})
		c.types[node.VarName] = types.AnyType
		c.visitStatement(node.Body)
		c.popScope()
	case *parser.BreakStatement, *parser.ContinueStatement:
		// no type information to bind
	case *parser.SwitchStatement:
		c.visitExpression(node.Expression)
		for _, cs := range node.Cases {
			if cs.Condition != nil {
				c.visitExpression(cs.Condition)
			}
			c.pushScope()
			for _, st := range cs.Body {
				c.visitStatement(st)
			}
			c.popScope()
		}
	case *parser.FunctionDeclaration:
		c.define(node.Name.Value, binding{typ: types.Type{Flags: types.FunctionType}})
		c.visitFunctionBody(node.Parameters, node.Body)
	case *parser.ClassDeclaration:
		c.define(node.Name.Value, binding{typ: types.Type{Flags: types.ClassType}})
		c.visitClass(node)
	case *parser.EnumDeclaration:
		c.define(node.Name.Value, binding{typ: types.Type{
			Flags:  types.EnumType,
			Symbol: &types.Symbol{EscapedName: node.Name.Value, Flags: types.SymEnum},
		}})
		for _, m := range node.Members {
			if m.Initializer != nil {
				c.visitExpression(m.Initializer)
			}
		}
	case *parser.ImportDeclaration:
		if node.Namespace != nil {
			c.define(node.Namespace.Value, binding{typ: types.ObjectOf()})
		}
		for _, n := range node.Names {
			name := n.Name.Value
			if n.Alias != nil {
				name = n.Alias.Value
			}
			c.define(name, binding{typ: types.AnyType})
		}
	case *parser.InterfaceDeclaration, *parser.TypeAliasStatement:
		// erased before translation; nothing to bind
	}
}

func (c *Checker) visitVarLike(name *parser.Identifier, value parser.Expression) {
	typ := types.AnyType
	if value != nil {
		typ = c.visitExpression(value)
	}
	c.define(name.Value, binding{typ: typ})
	c.types[name] = typ
}

func (c *Checker) visitFunctionBody(params []*parser.Parameter, body *parser.BlockStatement) {
	c.pushScope()
	for _, p := range params {
		c.define(p.Name.Value, binding{typ: types.AnyType})
	}
	if body != nil {
		for _, st := range body.Statements {
			c.visitStatement(st)
		}
	}
	c.popScope()
}

func (c *Checker) visitClass(node *parser.ClassDeclaration) {
	c.pushScope()
	for _, prop := range node.Properties {
		if prop.Value != nil {
			c.visitExpression(prop.Value)
		}
	}
	if node.Constructor != nil {
		c.visitFunctionBody(node.Constructor.Parameters, node.Constructor.Body)
	}
	for _, m := range node.Methods {
		c.visitFunctionBody(m.Parameters, m.Body)
	}
	c.popScope()
}

// --- expressions ---

func (c *Checker) visitExpression(e parser.Expression) types.Type {
	if e == nil {
		return types.AnyType
	}
	typ := c.computeType(e)
	c.types[e] = typ
	return typ
}

func (c *Checker) computeType(e parser.Expression) types.Type {
	switch node := e.(type) {
	case *parser.Identifier:
		if b, ok := c.resolve(node.Value); ok {
			return b.typ
		}
		c.unresolved(node.Value, node)
		return types.AnyType
	case *parser.ThisExpression:
		return types.ObjectOf()
	case *parser.NumberLiteral:
		return types.NumberType
	case *parser.StringLiteral:
		return types.StringLiteralType()
	case *parser.BooleanLiteral:
		return types.BooleanType
	case *parser.BinaryExpression:
		left := c.visitExpression(node.Left)
		right := c.visitExpression(node.Right)
		return binaryResultType(node.Operator, left, right)
	case *parser.UnaryExpression:
		return c.visitExpression(node.Operand)
	case *parser.ConditionalExpression:
		c.visitExpression(node.Condition)
		cons := c.visitExpression(node.Consequence)
		c.visitExpression(node.Alternative)
		return cons
	case *parser.CallExpression:
		c.visitExpression(node.Callee)
		for _, a := range node.Arguments {
			c.visitExpression(a)
		}
		return types.AnyType
	case *parser.NewExpression:
		c.visitExpression(node.Callee)
		for _, a := range node.Arguments {
			c.visitExpression(a)
		}
		return types.ObjectOf()
	case *parser.PropertyAccessExpression:
		objTyp := c.visitExpression(node.Object)
		if node.Property.Value == "length" {
			return types.NumberType
		}
		_ = objTyp
		return types.AnyType
	case *parser.ElementAccessExpression:
		c.visitExpression(node.Object)
		c.visitExpression(node.Index)
		return types.AnyType
	case *parser.ArrayLiteral:
		for _, el := range node.Elements {
			c.visitExpression(el)
		}
		return types.ArrayOf()
	case *parser.ObjectLiteral:
		for _, p := range node.Properties {
			if _, isIdent := p.Key.(*parser.Identifier); !isIdent {
				c.visitExpression(p.Key)
			}
			c.visitExpression(p.Value)
		}
		return types.ObjectOf()
	case *parser.FunctionLiteral:
		c.visitFunctionBody(node.Parameters, node.Body)
		return types.Type{Flags: types.FunctionType}
	case *parser.TypeAssertionExpression:
		return c.visitExpression(node.Expression)
	default:
		return types.AnyType
	}
}

func binaryResultType(op string, left, right types.Type) types.Type {
	switch op {
	case "&&", "||", "==", "!=", "===", "!==", "<", ">", "<=", ">=":
		return types.BooleanType
	case "+":
		if left.Flags.Has(types.StringFlag) || right.Flags.Has(types.StringFlag) {
			return types.StringType()
		}
		return types.NumberType
	default:
		return types.NumberType
	}
}

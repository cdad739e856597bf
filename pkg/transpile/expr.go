package transpile

import (
	"strings"

	"github.com/GlassBricks/TypeScriptToLua/pkg/parser"
	"github.com/GlassBricks/TypeScriptToLua/pkg/types"
)

// binaryOpRewrites maps an SL binary operator token to its TL text for
// the operators that don't pass through unchanged.
var binaryOpRewrites = map[string]string{
	"&&":  " and ",
	"||":  " or ",
	"===": "==",
	"!=":  "~=",
	"!==": "~=",
}

// stringMethodWhitelist maps supported String.method(...) calls to
// their TL equivalents. Preserved exactly as handed down: `replace` is
// mapped to `sub`, which is substring, not replace — a known-wrong
// placeholder, not a correct gsub rewrite. See DESIGN.md.
var stringMethodWhitelist = map[string]string{
	"replace": "sub",
}

var arrayMethodWhitelist = map[string]string{
	"push": "table.insert",
}

// TranspileExpression returns the TL text for e, with no trailing
// newline. When bracket is true the result is wrapped in parentheses;
// callers set it at binary-operand and switch scrutinee/case-constant
// sites to avoid precedence surprises in the emitted TL.
func (c *Context) TranspileExpression(e parser.Expression, bracket bool) (string, error) {
	text, err := c.transpileExpr(e)
	if err != nil {
		return "", err
	}
	if bracket {
		return "(" + text + ")", nil
	}
	return text, nil
}

func (c *Context) transpileExpr(e parser.Expression) (string, error) {
	switch node := e.(type) {
	case *parser.Identifier:
		return node.Value, nil
	case *parser.ThisExpression:
		return "self", nil
	case *parser.NumberLiteral:
		return node.Value, nil
	case *parser.StringLiteral:
		return requote(node.Value), nil
	case *parser.BooleanLiteral:
		if node.Value {
			return "true", nil
		}
		return "false", nil
	case *parser.BinaryExpression:
		return c.transpileBinary(node)
	case *parser.UnaryExpression:
		return c.transpileUnary(node)
	case *parser.ConditionalExpression:
		return c.transpileConditional(node)
	case *parser.CallExpression:
		return c.transpileCall(node)
	case *parser.NewExpression:
		return c.transpileNew(node)
	case *parser.PropertyAccessExpression:
		return c.transpilePropertyAccess(node)
	case *parser.ElementAccessExpression:
		return c.transpileElementAccess(node)
	case *parser.ArrayLiteral:
		return c.transpileArrayLiteral(node)
	case *parser.ObjectLiteral:
		return c.transpileObjectLiteral(node)
	case *parser.FunctionLiteral:
		return c.transpileFunctionLiteral(node)
	case *parser.TypeAssertionExpression:
		return c.transpileExpr(node.Expression)
	default:
		return "", unsupportedKind(e)
	}
}

// requote re-quotes a string literal's raw lexeme with double quotes.
// It does not re-escape embedded quotes or escape sequences in the
// source text — a known limitation, see DESIGN.md.
func requote(raw string) string {
	if len(raw) >= 2 {
		inner := raw[1 : len(raw)-1]
		return "\"" + inner + "\""
	}
	return raw
}

func (c *Context) transpileBinary(node *parser.BinaryExpression) (string, error) {
	switch node.Operator {
	case "=":
		lhs, err := c.transpileExpr(node.Left)
		if err != nil {
			return "", err
		}
		rhs, err := c.transpileExpr(node.Right)
		if err != nil {
			return "", err
		}
		return lhs + "=" + rhs, nil
	case "+=":
		lhs, err := c.transpileExpr(node.Left)
		if err != nil {
			return "", err
		}
		rhs, err := c.transpileExpr(node.Right)
		if err != nil {
			return "", err
		}
		return lhs + " = " + lhs + " + " + rhs, nil
	case "-=":
		lhs, err := c.transpileExpr(node.Left)
		if err != nil {
			return "", err
		}
		rhs, err := c.transpileExpr(node.Right)
		if err != nil {
			return "", err
		}
		return lhs + " = " + lhs + " - " + rhs, nil
	case "&":
		left, err := c.transpileExpr(node.Left)
		if err != nil {
			return "", err
		}
		right, err := c.transpileExpr(node.Right)
		if err != nil {
			return "", err
		}
		return c.bitOpLib + ".band(" + left + ", " + right + ")", nil
	case "|":
		left, err := c.transpileExpr(node.Left)
		if err != nil {
			return "", err
		}
		right, err := c.transpileExpr(node.Right)
		if err != nil {
			return "", err
		}
		return c.bitOpLib + ".bor(" + left + ", " + right + ")", nil
	}

	// All remaining binary operators bracket both operands at the call
	// site (spec's binary-operand bracketing rule) and either pass
	// through their token text or take the rewritten TL spelling.
	left, err := c.TranspileExpression(node.Left, true)
	if err != nil {
		return "", err
	}
	right, err := c.TranspileExpression(node.Right, true)
	if err != nil {
		return "", err
	}
	op := node.Operator
	if rewritten, ok := binaryOpRewrites[op]; ok {
		op = rewritten
	}
	return left + op + right, nil
}

// transpileUnary handles prefix/postfix `!`, `++`, `--`, `-`, `+`.
// `++`/`--` emit an assignment statement-shaped expression and do not
// preserve the pre/post value — valid only in statement position, per
// spec.
func (c *Context) transpileUnary(node *parser.UnaryExpression) (string, error) {
	switch node.Operator {
	case "!":
		operand, err := c.transpileExpr(node.Operand)
		if err != nil {
			return "", err
		}
		return "not " + operand, nil
	case "-", "+":
		operand, err := c.transpileExpr(node.Operand)
		if err != nil {
			return "", err
		}
		return node.Operator + operand, nil
	case "++":
		operand, err := c.transpileExpr(node.Operand)
		if err != nil {
			return "", err
		}
		return operand + " = " + operand + " + 1", nil
	case "--":
		operand, err := c.transpileExpr(node.Operand)
		if err != nil {
			return "", err
		}
		return operand + " = " + operand + " - 1", nil
	default:
		return "", errf(node, "unsupported unary operator %q", node.Operator)
	}
}

// transpileConditional emits `c ? a : b` as a call to the ITE runtime
// helper so branch evaluation stays lazy, matching SL ternary
// semantics rather than TL's short-circuit `and/or` idiom.
func (c *Context) transpileConditional(node *parser.ConditionalExpression) (string, error) {
	cond, err := c.transpileExpr(node.Condition)
	if err != nil {
		return "", err
	}
	cons, err := c.transpileExpr(node.Consequence)
	if err != nil {
		return "", err
	}
	alt, err := c.transpileExpr(node.Alternative)
	if err != nil {
		return "", err
	}
	return "ITE(" + cond + ",function() return " + cons + " end, function() return " + alt + " end)", nil
}

func (c *Context) transpileArgs(args []parser.Expression) (string, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		text, err := c.transpileExpr(a)
		if err != nil {
			return "", err
		}
		parts[i] = text
	}
	return strings.Join(parts, ", "), nil
}

// transpileCall dispatches a call expression: string-typed receivers
// and array-typed receivers get primitive-method rewrites; everything
// else becomes a colon-dispatched method call (or a plain call when
// the callee isn't a property access at all).
func (c *Context) transpileCall(node *parser.CallExpression) (string, error) {
	if pa, ok := node.Callee.(*parser.PropertyAccessExpression); ok {
		receiverType := c.typeAt(pa.Object)
		if receiverType.Flags.Has(types.StringFlag) || receiverType.Flags.Has(types.StringLiteral) {
			return c.transpileStringCall(pa, node.Arguments)
		}
		if receiverType.Flags.Has(types.Object) && c.isArrayType(receiverType) {
			return c.transpileArrayCall(pa, node.Arguments)
		}
	}

	callee, err := c.transpileExpr(node.Callee)
	if err != nil {
		return "", err
	}
	args, err := c.transpileArgs(node.Arguments)
	if err != nil {
		return "", err
	}
	if idx := strings.LastIndex(callee, "."); idx >= 0 {
		callee = callee[:idx] + ":" + callee[idx+1:]
	}
	return callee + "(" + args + ")", nil
}

func (c *Context) transpileStringCall(pa *parser.PropertyAccessExpression, args []parser.Expression) (string, error) {
	tl, ok := stringMethodWhitelist[pa.Property.Value]
	if !ok {
		return "", errf(pa, "unsupported string method %q", pa.Property.Value)
	}
	receiver, err := c.transpileExpr(pa.Object)
	if err != nil {
		return "", err
	}
	argText, err := c.transpileArgs(args)
	if err != nil {
		return "", err
	}
	call := receiver + ":" + tl + "(" + argText + ")"
	return call, nil
}

func (c *Context) transpileArrayCall(pa *parser.PropertyAccessExpression, args []parser.Expression) (string, error) {
	tl, ok := arrayMethodWhitelist[pa.Property.Value]
	if !ok {
		return "", errf(pa, "unsupported array method %q", pa.Property.Value)
	}
	receiver, err := c.transpileExpr(pa.Object)
	if err != nil {
		return "", err
	}
	argText, err := c.transpileArgs(args)
	if err != nil {
		return "", err
	}
	if argText == "" {
		return tl + "(" + receiver + ")", nil
	}
	return tl + "(" + receiver + ", " + argText + ")", nil
}

func (c *Context) transpileNew(node *parser.NewExpression) (string, error) {
	callee, err := c.transpileExpr(node.Callee)
	if err != nil {
		return "", err
	}
	args, err := c.transpileArgs(node.Arguments)
	if err != nil {
		return "", err
	}
	return callee + "(" + args + ")", nil
}

// transpilePropertyAccess dispatches on the receiver's static type and
// AST shape: string/array `.length`, `this.x` -> `self.x`, enum member
// access flattened to a bare name, namespaced identifier access passed
// through, and literal/call/nested-property receivers translated and
// re-appended.
func (c *Context) transpilePropertyAccess(node *parser.PropertyAccessExpression) (string, error) {
	receiverType := c.typeAt(node.Object)

	isString := receiverType.Flags.Has(types.StringFlag) || receiverType.Flags.Has(types.StringLiteral)
	isArray := receiverType.Flags.Has(types.Object) && c.isArrayType(receiverType)
	if isString || isArray {
		if node.Property.Value != "length" {
			return "", errf(node, "unsupported property %q on primitive receiver", node.Property.Value)
		}
		receiver, err := c.transpileExpr(node.Object)
		if err != nil {
			return "", err
		}
		return "#" + receiver, nil
	}

	switch obj := node.Object.(type) {
	case *parser.ThisExpression:
		return "self." + node.Property.Value, nil
	case *parser.Identifier:
		if receiverType.Symbol != nil && receiverType.Symbol.Flags.Has(types.SymEnum) {
			return node.Property.Value, nil
		}
		return obj.Value + "." + node.Property.Value, nil
	case *parser.StringLiteral, *parser.NumberLiteral, *parser.BooleanLiteral,
		*parser.ArrayLiteral, *parser.ObjectLiteral, *parser.CallExpression,
		*parser.PropertyAccessExpression, *parser.ElementAccessExpression, *parser.NewExpression:
		receiver, err := c.transpileExpr(node.Object)
		if err != nil {
			return "", err
		}
		return receiver + "." + node.Property.Value, nil
	default:
		return "", errf(node, "unsupported property-access receiver kind: %s", parser.KindName(node.Object))
	}
}

// transpileElementAccess rewrites a[i] to a[i+1] when a is array-typed
// (TL arrays are 1-indexed), leaving non-array table access unshifted.
func (c *Context) transpileElementAccess(node *parser.ElementAccessExpression) (string, error) {
	receiver, err := c.transpileExpr(node.Object)
	if err != nil {
		return "", err
	}
	index, err := c.transpileExpr(node.Index)
	if err != nil {
		return "", err
	}
	receiverType := c.typeAt(node.Object)
	if c.isArrayType(receiverType) {
		return receiver + "[" + index + "+1]", nil
	}
	return receiver + "[" + index + "]", nil
}

func (c *Context) transpileArrayLiteral(node *parser.ArrayLiteral) (string, error) {
	parts := make([]string, len(node.Elements))
	for i, el := range node.Elements {
		text, err := c.transpileExpr(el)
		if err != nil {
			return "", err
		}
		parts[i] = text
	}
	return "{" + strings.Join(parts, ",") + "}", nil
}

func (c *Context) transpileObjectLiteral(node *parser.ObjectLiteral) (string, error) {
	parts := make([]string, len(node.Properties))
	for i, p := range node.Properties {
		valueText, err := c.transpileExpr(p.Value)
		if err != nil {
			return "", err
		}
		if ident, ok := p.Key.(*parser.Identifier); ok {
			parts[i] = "[\"" + ident.Value + "\"]=" + valueText
			continue
		}
		keyText, err := c.transpileExpr(p.Key)
		if err != nil {
			return "", err
		}
		parts[i] = "[" + keyText + "]=" + valueText
	}
	return "{" + strings.Join(parts, ",") + "}", nil
}

// transpileFunctionLiteral emits `function(p1,p2,...) body end ` with a
// trailing space preserved, matching the convention used wherever a
// function expression is embedded inline in a larger expression.
func (c *Context) transpileFunctionLiteral(node *parser.FunctionLiteral) (string, error) {
	names := make([]string, len(node.Parameters))
	for i, p := range node.Parameters {
		names[i] = p.Name.Value
	}
	c.pushIndent()
	body, err := c.TranspileBlockStatements(node.Body)
	c.popIndent()
	if err != nil {
		return "", err
	}
	return "function(" + strings.Join(names, ",") + ") " + body + c.indent + "end ", nil
}

package transpile

import (
	"strconv"
	"strings"

	"github.com/GlassBricks/TypeScriptToLua/pkg/parser"
)

// TranspileStatement returns the TL text for n, including trailing
// newline(s) as appropriate. Nodes carrying a `declare` modifier, plus
// interface/type-alias declarations, are dropped (empty string). An
// unsupported kind is a fatal TranslationError naming the kind
// symbolically.
func (c *Context) TranspileStatement(n parser.Statement) (string, error) {
	switch node := n.(type) {
	case *parser.LetStatement:
		if node.Mods.Declare {
			return "", nil
		}
		return c.transpileVarLike(node.Name.Value, node.Value)
	case *parser.VarStatement:
		if node.Mods.Declare {
			return "", nil
		}
		return c.transpileVarLike(node.Name.Value, node.Value)
	case *parser.ExpressionStatement:
		text, err := c.TranspileExpression(node.Expression, false)
		if err != nil {
			return "", err
		}
		return c.indent + text + "\n", nil
	case *parser.ReturnStatement:
		if node.ReturnValue == nil {
			return c.indent + "return\n", nil
		}
		text, err := c.TranspileExpression(node.ReturnValue, false)
		if err != nil {
			return "", err
		}
		return c.indent + "return " + text + "\n", nil
	case *parser.BlockStatement:
		return c.TranspileBlockStatements(node)
	case *parser.IfStatement:
		return c.transpileIf(node)
	case *parser.WhileStatement:
		return c.transpileWhile(node)
	case *parser.ForStatement:
		return c.transpileFor(node)
	case *parser.ForOfStatement:
		return c.transpileForOf(node)
	case *parser.ForInStatement:
		return c.transpileForIn(node)
	case *parser.BreakStatement:
		if c.inSwitch {
			return c.indent + "goto switchDone" + strconv.Itoa(c.switchBase) + "\n", nil
		}
		return c.indent + "break\n", nil
	case *parser.ContinueStatement:
		return "", errf(node, "continue is not supported")
	case *parser.SwitchStatement:
		return c.transpileSwitch(node)
	case *parser.FunctionDeclaration:
		if node.Mods.Declare {
			return "", nil
		}
		return c.transpileFunctionDeclaration(node)
	case *parser.ClassDeclaration:
		if node.Mods.Declare {
			return "", nil
		}
		return c.transpileClass(node)
	case *parser.EnumDeclaration:
		return c.transpileEnum(node)
	case *parser.ImportDeclaration:
		return c.transpileImport(node)
	case *parser.InterfaceDeclaration, *parser.TypeAliasStatement:
		return "", nil
	default:
		return "", unsupportedKind(n)
	}
}

// TranspileBlockStatements concatenates the TL text of each statement
// in b's body at the current indent, with no surrounding braces/do-end
// of its own — callers wrap it in the construct-appropriate header and
// `end` line.
func (c *Context) TranspileBlockStatements(b *parser.BlockStatement) (string, error) {
	var sb strings.Builder
	for _, s := range b.Statements {
		text, err := c.TranspileStatement(s)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func (c *Context) transpileVarLike(name string, value parser.Expression) (string, error) {
	if value == nil {
		return c.indent + "local " + name + "\n", nil
	}
	text, err := c.TranspileExpression(value, false)
	if err != nil {
		return "", err
	}
	return c.indent + "local " + name + " = " + text + "\n", nil
}

func (c *Context) transpileIf(node *parser.IfStatement) (string, error) {
	cond, err := c.TranspileExpression(node.Condition, false)
	if err != nil {
		return "", err
	}
	c.pushIndent()
	cons, err := c.TranspileBlockStatements(node.Consequence)
	c.popIndent()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(c.indent + "if " + cond + " then\n")
	sb.WriteString(cons)
	if node.Alternative != nil {
		c.pushIndent()
		alt, err := c.TranspileBlockStatements(node.Alternative)
		c.popIndent()
		if err != nil {
			return "", err
		}
		sb.WriteString(c.indent + "else\n")
		sb.WriteString(alt)
	}
	sb.WriteString(c.indent + "end\n")
	return sb.String(), nil
}

func (c *Context) transpileWhile(node *parser.WhileStatement) (string, error) {
	cond, err := c.TranspileExpression(node.Condition, false)
	if err != nil {
		return "", err
	}
	c.pushIndent()
	body, err := c.TranspileBlockStatements(node.Body)
	c.popIndent()
	if err != nil {
		return "", err
	}
	return c.indent + "while " + cond + " do\n" + body + c.indent + "end\n", nil
}

// transpileFor reduces a classical C-style for(init;cond;incr) header
// to a TL numeric for, via the for-header analyzer.
func (c *Context) transpileFor(node *parser.ForStatement) (string, error) {
	varName, start, err := c.forInit(node)
	if err != nil {
		return "", err
	}
	end, err := c.GetForEnd(node.Condition)
	if err != nil {
		return "", err
	}
	step, err := c.GetForStep(node.Update)
	if err != nil {
		return "", err
	}
	c.pushIndent()
	body, err := c.TranspileBlockStatements(node.Body)
	c.popIndent()
	if err != nil {
		return "", err
	}
	return c.indent + "for " + varName + "=" + start + "," + end + "," + step + " do\n" + body + c.indent + "end\n", nil
}

func (c *Context) forInit(node *parser.ForStatement) (varName, start string, err error) {
	switch init := node.Initializer.(type) {
	case *parser.LetStatement:
		if init.Value == nil {
			return "", "", errf(node, "for-header init must have an initializer")
		}
		start, err = c.TranspileExpression(init.Value, false)
		return init.Name.Value, start, err
	case *parser.VarStatement:
		if init.Value == nil {
			return "", "", errf(node, "for-header init must have an initializer")
		}
		start, err = c.TranspileExpression(init.Value, false)
		return init.Name.Value, start, err
	default:
		return "", "", errf(node, "for-header shape not reducible to a numeric for")
	}
}

// transpileForOf emits `for (v of expr) S` as ipairs/pairs iteration
// depending on whether expr is array-typed.
func (c *Context) transpileForOf(node *parser.ForOfStatement) (string, error) {
	iterable, err := c.TranspileExpression(node.Iterable, false)
	if err != nil {
		return "", err
	}
	c.pushIndent()
	body, err := c.TranspileBlockStatements(node.Body)
	c.popIndent()
	if err != nil {
		return "", err
	}
	iterFn := "pairs"
	if parser.IsArrayTypeAnnotation(node.Iterable) || c.isArrayType(c.typeAt(node.Iterable)) {
		iterFn = "ipairs"
	}
	return c.indent + "for _, " + node.VarName.Value + " in " + iterFn + "(" + iterable + ") do\n" + body + c.indent + "end\n", nil
}

// transpileForIn emits `for (v in expr) S` as key-only pairs iteration.
func (c *Context) transpileForIn(node *parser.ForInStatement) (string, error) {
	obj, err := c.TranspileExpression(node.Object, false)
	if err != nil {
		return "", err
	}
	c.pushIndent()
	body, err := c.TranspileBlockStatements(node.Body)
	c.popIndent()
	if err != nil {
		return "", err
	}
	return c.indent + "for " + node.VarName.Value + ", _ in pairs(" + obj + ") do\n" + body + c.indent + "end\n", nil
}

func (c *Context) transpileFunctionDeclaration(node *parser.FunctionDeclaration) (string, error) {
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
	return c.indent + "function " + node.Name.Value + "(" + strings.Join(names, ",") + ")\n" + body + c.indent + "end\n", nil
}

// transpileImport handles the two supported import shapes; renamed
// named imports and any other form are rejected.
func (c *Context) transpileImport(node *parser.ImportDeclaration) (string, error) {
	if node.Namespace != nil {
		return c.indent + node.Namespace.Value + " = require(\"" + node.Module + "\")\n", nil
	}
	if len(node.Names) > 0 {
		for _, n := range node.Names {
			if n.Alias != nil {
				return "", errf(node, "renamed named import %q is not supported", n.Name.Value)
			}
		}
		return c.indent + "require(\"" + node.Module + "\")\n", nil
	}
	return "", errf(node, "unsupported import shape")
}

// transpileEnum emits one assignment per member; a numeric literal
// initializer resets the auto-increment counter, anything else is
// rejected.
func (c *Context) transpileEnum(node *parser.EnumDeclaration) (string, error) {
	var sb strings.Builder
	next := 0
	for _, m := range node.Members {
		value := next
		if m.Initializer != nil {
			lit, ok := m.Initializer.(*parser.NumberLiteral)
			if !ok {
				return "", errf(node, "enum member %q has a non-numeric initializer", m.Name.Value)
			}
			n, err := parseIntLiteral(lit.Value)
			if err != nil {
				return "", errf(node, "enum member %q has an unparseable initializer %q", m.Name.Value, lit.Value)
			}
			value = n
		}
		sb.WriteString(c.indent + m.Name.Value + "=" + strconv.Itoa(value) + "\n")
		next = value + 1
	}
	return sb.String(), nil
}

func parseIntLiteral(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return n, nil
}

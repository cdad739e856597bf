package transpile

import (
	"strings"

	"github.com/GlassBricks/TypeScriptToLua/pkg/parser"
)

// transpileClass emits, in fixed order regardless of source member
// ordering: the idempotent table init, static field assignments, the
// constructor (declared or synthesized), then methods. Methods and the
// constructor use colon dispatch; static fields use dot.
func (c *Context) transpileClass(node *parser.ClassDeclaration) (string, error) {
	name := node.Name.Value
	var sb strings.Builder
	sb.WriteString(c.indent + name + " = " + name + " or {}\n")

	var staticProps, instanceProps []*parser.PropertyDeclaration
	for _, p := range node.Properties {
		if p.Mods.Static {
			staticProps = append(staticProps, p)
		} else {
			instanceProps = append(instanceProps, p)
		}
	}

	for _, p := range staticProps {
		if p.Value == nil {
			continue
		}
		text, err := c.TranspileExpression(p.Value, false)
		if err != nil {
			return "", err
		}
		sb.WriteString(c.indent + name + "." + p.Name.Value + " = " + text + "\n")
	}

	ctorText, err := c.transpileConstructor(name, node.Constructor, instanceProps)
	if err != nil {
		return "", err
	}
	sb.WriteString(ctorText)

	for _, m := range node.Methods {
		text, err := c.transpileMethod(name, m)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}

// transpileConstructor handles the three cases: an explicit
// constructor (instance-field assignments first, then its body), a
// synthesized constructor when only instance fields need it, or
// nothing at all when there's no construction work to do.
func (c *Context) transpileConstructor(className string, ctor *parser.ConstructorDeclaration, instanceProps []*parser.PropertyDeclaration) (string, error) {
	if ctor == nil && len(instanceProps) == 0 {
		return "", nil
	}

	params := []*parser.Parameter{}
	var body *parser.BlockStatement
	if ctor != nil {
		params = ctor.Parameters
		body = ctor.Body
	}

	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name.Value
	}

	c.pushIndent()
	var fieldInit strings.Builder
	for _, p := range instanceProps {
		if p.Value == nil {
			continue
		}
		text, err := c.TranspileExpression(p.Value, false)
		if err != nil {
			c.popIndent()
			return "", err
		}
		fieldInit.WriteString(c.indent + "self." + p.Name.Value + " = " + text + "\n")
	}
	var bodyText string
	if body != nil {
		text, err := c.TranspileBlockStatements(body)
		if err != nil {
			c.popIndent()
			return "", err
		}
		bodyText = text
	}
	c.popIndent()

	return c.indent + "function " + className + ":constructor(" + strings.Join(names, ",") + ")\n" +
		fieldInit.String() + bodyText + c.indent + "end\n", nil
}

func (c *Context) transpileMethod(className string, m *parser.MethodDeclaration) (string, error) {
	names := make([]string, len(m.Parameters))
	for i, p := range m.Parameters {
		names[i] = p.Name.Value
	}
	c.pushIndent()
	body, err := c.TranspileBlockStatements(m.Body)
	c.popIndent()
	if err != nil {
		return "", err
	}
	return c.indent + "function " + className + ":" + m.Name.Value + "(" + strings.Join(names, ",") + ")\n" +
		body + c.indent + "end\n", nil
}

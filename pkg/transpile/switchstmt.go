package transpile

import (
	"strconv"
	"strings"

	"github.com/GlassBricks/TypeScriptToLua/pkg/parser"
)

// transpileSwitch lowers `switch (e) { clauses }` to a chain of
// if/elseif/else guarded equality tests, one synthesized label per
// clause, and explicit goto fall-through between clauses — preserving
// SL's C-style fall-through semantics without TL having a switch
// construct of its own.
func (c *Context) transpileSwitch(node *parser.SwitchStatement) (string, error) {
	base := c.switchCounter
	k := len(node.Cases)
	// Reserve this switch's label range before descending into clause
	// bodies, so a nested switch encountered while emitting a clause
	// draws its own labels from a disjoint range rather than racing the
	// still-unadvanced outer counter.
	c.switchCounter += k

	scrutinee, err := c.TranspileExpression(node.Expression, true)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i, clause := range node.Cases {
		keyword := "elseif"
		if i == 0 {
			keyword = "if"
		}

		if clause.Condition != nil {
			value, err := c.TranspileExpression(clause.Condition, true)
			if err != nil {
				return "", err
			}
			sb.WriteString(c.indent + keyword + " " + scrutinee + "==" + value + " then\n")
		} else {
			sb.WriteString(c.indent + "else\n")
		}

		c.pushIndent()
		sb.WriteString(c.indent + "::switchCase" + strconv.Itoa(base+i) + "::\n")
		bodyText, err := c.withSwitchClause(base, func() (string, error) {
			var body strings.Builder
			for _, st := range clause.Body {
				text, err := c.TranspileStatement(st)
				if err != nil {
					return "", err
				}
				body.WriteString(text)
			}
			return body.String(), nil
		})
		c.popIndent()
		if err != nil {
			return "", err
		}
		sb.WriteString(bodyText)

		if i < k-1 {
			c.pushIndent()
			sb.WriteString(c.indent + "goto switchCase" + strconv.Itoa(base+i+1) + "\n")
			c.popIndent()
		}
	}
	sb.WriteString(c.indent + "end\n")
	sb.WriteString(c.indent + "::switchDone" + strconv.Itoa(base) + "::\n")

	return sb.String(), nil
}

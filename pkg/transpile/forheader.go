package transpile

import "github.com/GlassBricks/TypeScriptToLua/pkg/parser"

// GetForEnd inspects a classical for-loop's condition and returns the
// TL text for the numeric for's end bound, adjusting for TL's
// inclusive range where SL's comparison is exclusive. Unrecognized
// shapes are rejected.
func (c *Context) GetForEnd(cond parser.Expression) (string, error) {
	bin, ok := cond.(*parser.BinaryExpression)
	if !ok {
		return "", errf(cond, "for-header condition shape not reducible to a numeric for")
	}
	bound, err := c.transpileExpr(bin.Right)
	if err != nil {
		return "", err
	}
	switch bin.Operator {
	case "<":
		return bound + "-1", nil
	case "<=":
		return bound, nil
	case ">":
		return bound + "+1", nil
	case ">=":
		return bound, nil
	default:
		return "", errf(cond, "unsupported for-header comparison operator %q", bin.Operator)
	}
}

// GetForStep inspects a classical for-loop's increment clause and
// returns the TL step expression. Unrecognized shapes are rejected.
func (c *Context) GetForStep(incr parser.Expression) (string, error) {
	switch n := incr.(type) {
	case *parser.UnaryExpression:
		switch n.Operator {
		case "++":
			return "1", nil
		case "--":
			return "-1", nil
		}
	case *parser.BinaryExpression:
		step, err := c.transpileExpr(n.Right)
		if err != nil {
			return "", err
		}
		switch n.Operator {
		case "+=":
			return step, nil
		case "-=":
			return "-" + step, nil
		}
	}
	return "", errf(incr, "for-header increment shape not reducible to a numeric for")
}

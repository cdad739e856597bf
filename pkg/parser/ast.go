package parser

import (
	"strings"

	"github.com/GlassBricks/TypeScriptToLua/pkg/lexer"
)

// Node is the root of the AST node hierarchy.
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement is a node that can appear in a block or at top level.
type Statement interface {
	Node
	statementNode()
}

// Expression is a node that yields a value.
type Expression interface {
	Node
	expressionNode()
}

// Modifiers carries the subset of SL declaration modifiers the engine
// cares about. Let/var, function, class, method and property
// declarations carry one in their Mods field; enum, import, interface
// and type-alias nodes do not.
type Modifiers struct {
	Static  bool
	Declare bool
}

// Program is the root of a source file's AST.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}
func (p *Program) String() string {
	var sb strings.Builder
	for _, s := range p.Statements {
		sb.WriteString(s.String())
	}
	return sb.String()
}

// --- Declarations / statements ---

type LetStatement struct {
	Token lexer.Token
	Name  *Identifier
	Value Expression
	Mods  Modifiers
}

func (ls *LetStatement) statementNode()       {}
func (ls *LetStatement) TokenLiteral() string { return ls.Token.Literal }
func (ls *LetStatement) String() string {
	out := "let " + ls.Name.Value
	if ls.Value != nil {
		out += " = " + ls.Value.String()
	}
	return out + ";"
}

type VarStatement struct {
	Token lexer.Token
	Name  *Identifier
	Value Expression
	Mods  Modifiers
}

func (vs *VarStatement) statementNode()       {}
func (vs *VarStatement) TokenLiteral() string { return vs.Token.Literal }
func (vs *VarStatement) String() string {
	out := "var " + vs.Name.Value
	if vs.Value != nil {
		out += " = " + vs.Value.String()
	}
	return out + ";"
}

type ReturnStatement struct {
	Token       lexer.Token
	ReturnValue Expression
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) String() string {
	if rs.ReturnValue != nil {
		return "return " + rs.ReturnValue.String() + ";"
	}
	return "return;"
}

type ExpressionStatement struct {
	Token      lexer.Token
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) String() string       { return es.Expression.String() + ";" }

type BlockStatement struct {
	Token      lexer.Token // '{'
	Statements []Statement
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BlockStatement) String() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, s := range bs.Statements {
		sb.WriteString(s.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

type IfStatement struct {
	Token       lexer.Token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement // nil when no else branch
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Literal }
func (is *IfStatement) String() string {
	out := "if (" + is.Condition.String() + ") " + is.Consequence.String()
	if is.Alternative != nil {
		out += " else " + is.Alternative.String()
	}
	return out
}

type WhileStatement struct {
	Token     lexer.Token
	Condition Expression
	Body      *BlockStatement
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) String() string {
	return "while (" + ws.Condition.String() + ") " + ws.Body.String()
}

// ForStatement is the classical C-style for(init;cond;incr) loop. Init
// is a single-variable declaration, a bare expression statement, or
// nil; the for-header analyzer (pkg/transpile) decides whether it
// reduces to a TL numeric for.
type ForStatement struct {
	Token       lexer.Token
	Initializer Statement // *LetStatement (for let/const/var), *ExpressionStatement, or nil
	Condition   Expression
	Update      Expression
	Body        *BlockStatement
}

func (fs *ForStatement) statementNode()       {}
func (fs *ForStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *ForStatement) String() string {
	out := "for ("
	if fs.Initializer != nil {
		out += fs.Initializer.String()
	}
	out += " "
	if fs.Condition != nil {
		out += fs.Condition.String()
	}
	out += "; "
	if fs.Update != nil {
		out += fs.Update.String()
	}
	out += ") " + fs.Body.String()
	return out
}

// ForOfStatement is `for (const v of iterable) body`.
type ForOfStatement struct {
	Token    lexer.Token
	VarName  *Identifier
	Iterable Expression
	Body     *BlockStatement
}

func (f *ForOfStatement) statementNode()       {}
func (f *ForOfStatement) TokenLiteral() string { return f.Token.Literal }
func (f *ForOfStatement) String() string {
	return "for (const " + f.VarName.Value + " of " + f.Iterable.String() + ") " + f.Body.String()
}

// ForInStatement is `for (const k in obj) body`.
type ForInStatement struct {
	Token   lexer.Token
	VarName *Identifier
	Object  Expression
	Body    *BlockStatement
}

func (f *ForInStatement) statementNode()       {}
func (f *ForInStatement) TokenLiteral() string { return f.Token.Literal }
func (f *ForInStatement) String() string {
	return "for (const " + f.VarName.Value + " in " + f.Object.String() + ") " + f.Body.String()
}

type BreakStatement struct {
	Token lexer.Token
}

func (bs *BreakStatement) statementNode()       {}
func (bs *BreakStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BreakStatement) String() string       { return "break;" }

type ContinueStatement struct {
	Token lexer.Token
}

func (cs *ContinueStatement) statementNode()       {}
func (cs *ContinueStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ContinueStatement) String() string       { return "continue;" }

// SwitchCase is one `case expr:` or `default:` clause. Condition is nil
// for the default clause.
type SwitchCase struct {
	Condition Expression
	Body      []Statement
}

func (sc *SwitchCase) String() string {
	var sb strings.Builder
	if sc.Condition != nil {
		sb.WriteString("case " + sc.Condition.String() + ": ")
	} else {
		sb.WriteString("default: ")
	}
	for _, s := range sc.Body {
		sb.WriteString(s.String())
	}
	return sb.String()
}

type SwitchStatement struct {
	Token      lexer.Token
	Expression Expression
	Cases      []*SwitchCase
}

func (ss *SwitchStatement) statementNode()       {}
func (ss *SwitchStatement) TokenLiteral() string { return ss.Token.Literal }
func (ss *SwitchStatement) String() string {
	var sb strings.Builder
	sb.WriteString("switch (" + ss.Expression.String() + ") { ")
	for _, c := range ss.Cases {
		sb.WriteString(c.String() + " ")
	}
	sb.WriteString("}")
	return sb.String()
}

// Parameter is a function/method/constructor parameter.
type Parameter struct {
	Token lexer.Token
	Name  *Identifier
}

func (p *Parameter) expressionNode()      {}
func (p *Parameter) TokenLiteral() string { return p.Token.Literal }
func (p *Parameter) String() string       { return p.Name.Value }

type FunctionLiteral struct {
	Token      lexer.Token
	Name       *Identifier // nil for anonymous function expressions
	Parameters []*Parameter
	Body       *BlockStatement
}

func (fl *FunctionLiteral) expressionNode()      {}
func (fl *FunctionLiteral) TokenLiteral() string { return fl.Token.Literal }
func (fl *FunctionLiteral) String() string {
	names := make([]string, len(fl.Parameters))
	for i, p := range fl.Parameters {
		names[i] = p.String()
	}
	out := "function"
	if fl.Name != nil {
		out += " " + fl.Name.Value
	}
	return out + "(" + strings.Join(names, ", ") + ") " + fl.Body.String()
}

// FunctionDeclaration is a top-level/statement-position named function.
type FunctionDeclaration struct {
	Token      lexer.Token
	Name       *Identifier
	Parameters []*Parameter
	Body       *BlockStatement
	Mods       Modifiers
}

func (fd *FunctionDeclaration) statementNode()       {}
func (fd *FunctionDeclaration) TokenLiteral() string { return fd.Token.Literal }
func (fd *FunctionDeclaration) String() string {
	names := make([]string, len(fd.Parameters))
	for i, p := range fd.Parameters {
		names[i] = p.String()
	}
	return "function " + fd.Name.Value + "(" + strings.Join(names, ", ") + ") " + fd.Body.String()
}

// --- Classes ---

type PropertyDeclaration struct {
	Name        *Identifier
	Value       Expression // initializer, or nil
	Mods        Modifiers
}

type ConstructorDeclaration struct {
	Token      lexer.Token
	Parameters []*Parameter
	Body       *BlockStatement
}

type MethodDeclaration struct {
	Token      lexer.Token
	Name       *Identifier
	Parameters []*Parameter
	Body       *BlockStatement
	Mods       Modifiers
}

type ClassDeclaration struct {
	Token       lexer.Token
	Name        *Identifier
	Properties  []*PropertyDeclaration
	Constructor *ConstructorDeclaration // nil if absent
	Methods     []*MethodDeclaration
	Mods        Modifiers
}

func (cd *ClassDeclaration) statementNode()       {}
func (cd *ClassDeclaration) TokenLiteral() string { return cd.Token.Literal }
func (cd *ClassDeclaration) String() string       { return "class " + cd.Name.Value + " { ... }" }

// --- Enums ---

type EnumMember struct {
	Name        *Identifier
	Initializer Expression // nil if auto-incremented
}

type EnumDeclaration struct {
	Token   lexer.Token
	Name    *Identifier
	Members []*EnumMember
}

func (ed *EnumDeclaration) statementNode()       {}
func (ed *EnumDeclaration) TokenLiteral() string { return ed.Token.Literal }
func (ed *EnumDeclaration) String() string       { return "enum " + ed.Name.Value + " { ... }" }

// --- Imports ---

// ImportDeclaration covers both `import * as N from "m"` (Namespace
// set, Names empty) and `import { a, b } from "m"` (Names set).
type ImportDeclaration struct {
	Token     lexer.Token
	Namespace *Identifier   // non-nil for `import * as N from`
	Names     []*ImportName // non-empty for `import { ... } from`
	Module    string        // module specifier, unquoted
}

// ImportName is one named binding in a `{ a, b as c }` import clause.
type ImportName struct {
	Name  *Identifier
	Alias *Identifier // non-nil if renamed with `as` — unsupported, rejected
}

func (id *ImportDeclaration) statementNode()       {}
func (id *ImportDeclaration) TokenLiteral() string { return id.Token.Literal }
func (id *ImportDeclaration) String() string       { return "import ... from \"" + id.Module + "\";" }

// --- Ignored declarations (dropped by the engine, kept for parsing) ---

type InterfaceDeclaration struct {
	Token lexer.Token
	Name  *Identifier
}

func (id *InterfaceDeclaration) statementNode()       {}
func (id *InterfaceDeclaration) TokenLiteral() string { return id.Token.Literal }
func (id *InterfaceDeclaration) String() string       { return "interface " + id.Name.Value + " { ... }" }

type TypeAliasStatement struct {
	Token lexer.Token
	Name  *Identifier
}

func (ta *TypeAliasStatement) statementNode()       {}
func (ta *TypeAliasStatement) TokenLiteral() string { return ta.Token.Literal }
func (ta *TypeAliasStatement) String() string       { return "type " + ta.Name.Value + " = ...;" }

// --- Expressions ---

type Identifier struct {
	Token lexer.Token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }

type ThisExpression struct {
	Token lexer.Token
}

func (t *ThisExpression) expressionNode()      {}
func (t *ThisExpression) TokenLiteral() string { return t.Token.Literal }
func (t *ThisExpression) String() string       { return "this" }

type NumberLiteral struct {
	Token lexer.Token
	Value string
}

func (n *NumberLiteral) expressionNode()      {}
func (n *NumberLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NumberLiteral) String() string       { return n.Value }

// StringLiteral.Value is the raw source lexeme including its original
// quote characters (spec.md §4.2/§9: the engine re-quotes, it does not
// re-process escapes).
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (s *StringLiteral) expressionNode()      {}
func (s *StringLiteral) TokenLiteral() string { return s.Token.Literal }
func (s *StringLiteral) String() string       { return s.Value }

type BooleanLiteral struct {
	Token lexer.Token
	Value bool
}

func (b *BooleanLiteral) expressionNode()      {}
func (b *BooleanLiteral) TokenLiteral() string { return b.Token.Literal }
func (b *BooleanLiteral) String() string       { return b.Token.Literal }

type BinaryExpression struct {
	Token    lexer.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (be *BinaryExpression) expressionNode()      {}
func (be *BinaryExpression) TokenLiteral() string { return be.Token.Literal }
func (be *BinaryExpression) String() string {
	return "(" + be.Left.String() + " " + be.Operator + " " + be.Right.String() + ")"
}

// UnaryExpression covers prefix (!x, -x, ++x, --x) and postfix (x++, x--).
type UnaryExpression struct {
	Token    lexer.Token
	Operator string
	Operand  Expression
	Postfix  bool
}

func (ue *UnaryExpression) expressionNode()      {}
func (ue *UnaryExpression) TokenLiteral() string { return ue.Token.Literal }
func (ue *UnaryExpression) String() string {
	if ue.Postfix {
		return "(" + ue.Operand.String() + ue.Operator + ")"
	}
	return "(" + ue.Operator + ue.Operand.String() + ")"
}

type ConditionalExpression struct {
	Token       lexer.Token
	Condition   Expression
	Consequence Expression
	Alternative Expression
}

func (ce *ConditionalExpression) expressionNode()      {}
func (ce *ConditionalExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *ConditionalExpression) String() string {
	return "(" + ce.Condition.String() + " ? " + ce.Consequence.String() + " : " + ce.Alternative.String() + ")"
}

type CallExpression struct {
	Token     lexer.Token
	Callee    Expression
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) String() string {
	args := make([]string, len(ce.Arguments))
	for i, a := range ce.Arguments {
		args[i] = a.String()
	}
	return ce.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

type NewExpression struct {
	Token     lexer.Token
	Callee    Expression
	Arguments []Expression
}

func (ne *NewExpression) expressionNode()      {}
func (ne *NewExpression) TokenLiteral() string { return ne.Token.Literal }
func (ne *NewExpression) String() string {
	args := make([]string, len(ne.Arguments))
	for i, a := range ne.Arguments {
		args[i] = a.String()
	}
	return "new " + ne.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

type PropertyAccessExpression struct {
	Token    lexer.Token
	Object   Expression
	Property *Identifier
}

func (pa *PropertyAccessExpression) expressionNode()      {}
func (pa *PropertyAccessExpression) TokenLiteral() string { return pa.Token.Literal }
func (pa *PropertyAccessExpression) String() string {
	return pa.Object.String() + "." + pa.Property.Value
}

type ElementAccessExpression struct {
	Token  lexer.Token
	Object Expression
	Index  Expression
}

func (ea *ElementAccessExpression) expressionNode()      {}
func (ea *ElementAccessExpression) TokenLiteral() string { return ea.Token.Literal }
func (ea *ElementAccessExpression) String() string {
	return ea.Object.String() + "[" + ea.Index.String() + "]"
}

type ArrayLiteral struct {
	Token    lexer.Token
	Elements []Expression
}

func (al *ArrayLiteral) expressionNode()      {}
func (al *ArrayLiteral) TokenLiteral() string { return al.Token.Literal }
func (al *ArrayLiteral) String() string {
	elems := make([]string, len(al.Elements))
	for i, e := range al.Elements {
		elems[i] = e.String()
	}
	return "[" + strings.Join(elems, ", ") + "]"
}

// ObjectProperty is one `key: value` or `{ shorthand }` entry of an
// object literal. When Shorthand is true, Key and Value are the same
// identifier.
type ObjectProperty struct {
	Key       Expression // *Identifier for bare keys, any Expression for computed keys
	Value     Expression
	Shorthand bool
}

type ObjectLiteral struct {
	Token      lexer.Token
	Properties []*ObjectProperty
}

func (ol *ObjectLiteral) expressionNode()      {}
func (ol *ObjectLiteral) TokenLiteral() string { return ol.Token.Literal }
func (ol *ObjectLiteral) String() string {
	parts := make([]string, len(ol.Properties))
	for i, p := range ol.Properties {
		parts[i] = p.Key.String() + ": " + p.Value.String()
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// TypeAssertionExpression is `<expr> as T`; the engine translates it
// identically to its unwrapped Expression (spec.md §8 property 4).
type TypeAssertionExpression struct {
	Token      lexer.Token
	Expression Expression
}

func (ta *TypeAssertionExpression) expressionNode()      {}
func (ta *TypeAssertionExpression) TokenLiteral() string { return ta.Token.Literal }
func (ta *TypeAssertionExpression) String() string       { return ta.Expression.String() }

package parser

import (
	"fmt"

	"github.com/GlassBricks/TypeScriptToLua/pkg/lexer"
)

// Parser builds an AST from a token stream produced by pkg/lexer. It
// implements a standard recursive-descent statement parser plus a
// Pratt expression parser, in the teacher's style, scoped to the SL
// grammar subset spec.md §3 enumerates — no generics, no JSX, no
// decorators, no async/await.
type Parser struct {
	l      *lexer.Lexer
	errors []string

	curToken  lexer.Token
	peekToken lexer.Token

	prefixParseFns map[lexer.TokenType]func() Expression
	infixParseFns  map[lexer.TokenType]func(Expression) Expression
}

// Precedence levels, lowest to highest.
const (
	_ int = iota
	LOWEST
	ASSIGNMENT  // = += -=
	TERNARY     // ?:
	LOGICAL_OR  // ||
	LOGICAL_AND // &&
	BITWISE_OR  // |
	BITWISE_AND // &
	EQUALS      // == != === !==
	LESSGREATER // < > <= >=
	SUM         // + -
	PRODUCT     // * / %
	ASSERTION   // x as T
	PREFIX      // !x -x ++x --x
	POSTFIX     // x++ x--
	CALL        // f(x)
	INDEX       // a[i]  a.b
)

var precedences = map[lexer.TokenType]int{
	lexer.ASSIGN:        ASSIGNMENT,
	lexer.PLUS_ASSIGN:   ASSIGNMENT,
	lexer.MINUS_ASSIGN:  ASSIGNMENT,
	lexer.QUESTION:      TERNARY,
	lexer.LOGICAL_OR:    LOGICAL_OR,
	lexer.LOGICAL_AND:   LOGICAL_AND,
	lexer.PIPE:          BITWISE_OR,
	lexer.AMP:           BITWISE_AND,
	lexer.EQ:            EQUALS,
	lexer.NOT_EQ:        EQUALS,
	lexer.STRICT_EQ:     EQUALS,
	lexer.STRICT_NOT_EQ: EQUALS,
	lexer.LT:            LESSGREATER,
	lexer.GT:            LESSGREATER,
	lexer.LE:            LESSGREATER,
	lexer.GE:            LESSGREATER,
	lexer.PLUS:          SUM,
	lexer.MINUS:         SUM,
	lexer.ASTERISK:      PRODUCT,
	lexer.SLASH:         PRODUCT,
	lexer.PERCENT:       PRODUCT,
	lexer.AS:            ASSERTION,
	lexer.INC:           POSTFIX,
	lexer.DEC:           POSTFIX,
	lexer.LPAREN:        CALL,
	lexer.DOT:           INDEX,
	lexer.LBRACKET:      INDEX,
}

// NewParser constructs a Parser reading from l and primes the
// look-ahead tokens.
func NewParser(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[lexer.TokenType]func() Expression{
		lexer.IDENT:     p.parseIdentifier,
		lexer.NUMBER:    p.parseNumberLiteral,
		lexer.STRING:    p.parseStringLiteral,
		lexer.TRUE:      p.parseBooleanLiteral,
		lexer.FALSE:     p.parseBooleanLiteral,
		lexer.THIS:      p.parseThisExpression,
		lexer.LPAREN:    p.parseGroupedExpression,
		lexer.LBRACKET:  p.parseArrayLiteral,
		lexer.LBRACE:    p.parseObjectLiteral,
		lexer.BANG:      p.parsePrefixExpression,
		lexer.MINUS:     p.parsePrefixExpression,
		lexer.PLUS:      p.parsePrefixExpression,
		lexer.INC:       p.parsePrefixExpression,
		lexer.DEC:       p.parsePrefixExpression,
		lexer.FUNCTION:  p.parseFunctionLiteral,
		lexer.NEW:       p.parseNewExpression,
	}

	p.infixParseFns = map[lexer.TokenType]func(Expression) Expression{
		lexer.PLUS:          p.parseBinaryExpression,
		lexer.MINUS:         p.parseBinaryExpression,
		lexer.ASTERISK:      p.parseBinaryExpression,
		lexer.SLASH:         p.parseBinaryExpression,
		lexer.PERCENT:       p.parseBinaryExpression,
		lexer.EQ:            p.parseBinaryExpression,
		lexer.NOT_EQ:        p.parseBinaryExpression,
		lexer.STRICT_EQ:     p.parseBinaryExpression,
		lexer.STRICT_NOT_EQ: p.parseBinaryExpression,
		lexer.LT:            p.parseBinaryExpression,
		lexer.GT:            p.parseBinaryExpression,
		lexer.LE:            p.parseBinaryExpression,
		lexer.GE:            p.parseBinaryExpression,
		lexer.LOGICAL_AND:   p.parseBinaryExpression,
		lexer.LOGICAL_OR:    p.parseBinaryExpression,
		lexer.PIPE:          p.parseBinaryExpression,
		lexer.AMP:           p.parseBinaryExpression,
		lexer.ASSIGN:        p.parseBinaryExpression,
		lexer.PLUS_ASSIGN:   p.parseBinaryExpression,
		lexer.MINUS_ASSIGN:  p.parseBinaryExpression,
		lexer.QUESTION:      p.parseConditionalExpression,
		lexer.LPAREN:        p.parseCallExpression,
		lexer.DOT:           p.parsePropertyAccessExpression,
		lexer.LBRACKET:      p.parseElementAccessExpression,
		lexer.INC:           p.parsePostfixExpression,
		lexer.DEC:           p.parsePostfixExpression,
		lexer.AS:            p.parseTypeAssertionExpression,
	}

	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns the accumulated syntax error messages.
func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t lexer.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.errors = append(p.errors, fmt.Sprintf(
		"line %d: expected next token to be %s, got %s (%q) instead",
		p.peekToken.Line, t, p.peekToken.Type, p.peekToken.Literal))
	return false
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// ParseProgram parses a full SL source file into a Program AST.
func (p *Parser) ParseProgram() *Program {
	program := &Program{}
	for !p.curTokenIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}
	return program
}

func (p *Parser) parseStatement() Statement {
	mods := Modifiers{}
	for p.curTokenIs(lexer.DECLARE) || p.curTokenIs(lexer.STATIC) {
		if p.curTokenIs(lexer.DECLARE) {
			mods.Declare = true
		}
		if p.curTokenIs(lexer.STATIC) {
			mods.Static = true
		}
		p.nextToken()
	}

	switch p.curToken.Type {
	case lexer.LET:
		return p.parseLetStatement(mods)
	case lexer.CONST:
		return p.parseLetStatement(mods)
	case lexer.VAR:
		return p.parseVarStatement(mods)
	case lexer.RETURN:
		return p.parseReturnStatement()
	case lexer.IF:
		return p.parseIfStatement()
	case lexer.WHILE:
		return p.parseWhileStatement()
	case lexer.FOR:
		return p.parseForLikeStatement()
	case lexer.BREAK:
		return p.parseBreakStatement()
	case lexer.CONTINUE:
		return p.parseContinueStatement()
	case lexer.SWITCH:
		return p.parseSwitchStatement()
	case lexer.FUNCTION:
		return p.parseFunctionDeclaration(mods)
	case lexer.CLASS:
		return p.parseClassDeclaration(mods)
	case lexer.ENUM:
		return p.parseEnumDeclaration()
	case lexer.IMPORT:
		return p.parseImportDeclaration()
	case lexer.INTERFACE:
		return p.parseInterfaceDeclaration()
	case lexer.TYPE:
		return p.parseTypeAliasStatement()
	case lexer.LBRACE:
		return p.parseBlockStatement()
	case lexer.SEMICOLON:
		return nil
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement(mods Modifiers) *LetStatement {
	stmt := &LetStatement{Token: p.curToken, Mods: mods}
	if !p.expectPeek(lexer.IDENT) {
		return stmt
	}
	stmt.Name = &Identifier{Token: p.curToken, Value: p.curToken.Literal}
	p.skipTypeAnnotation()
	if p.peekTokenIs(lexer.ASSIGN) {
		p.nextToken()
		p.nextToken()
		stmt.Value = p.parseExpression(LOWEST)
	}
	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseVarStatement(mods Modifiers) *VarStatement {
	stmt := &VarStatement{Token: p.curToken, Mods: mods}
	if !p.expectPeek(lexer.IDENT) {
		return stmt
	}
	stmt.Name = &Identifier{Token: p.curToken, Value: p.curToken.Literal}
	p.skipTypeAnnotation()
	if p.peekTokenIs(lexer.ASSIGN) {
		p.nextToken()
		p.nextToken()
		stmt.Value = p.parseExpression(LOWEST)
	}
	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

// skipTypeAnnotation consumes an optional `: T` type annotation. SL
// type annotations are erased before translation (spec.md treats types
// purely as checker input, never as emitted text), so the parser just
// discards the tokens rather than building a type-expression AST.
func (p *Parser) skipTypeAnnotation() {
	if !p.peekTokenIs(lexer.COLON) {
		return
	}
	p.nextToken() // consume ':'
	depth := 0
	for {
		switch p.peekToken.Type {
		case lexer.LBRACKET:
			depth++
		case lexer.RBRACKET:
			depth--
		case lexer.ASSIGN, lexer.SEMICOLON, lexer.COMMA, lexer.RPAREN, lexer.EOF, lexer.LBRACE:
			if depth <= 0 {
				return
			}
		}
		p.nextToken()
	}
}

func (p *Parser) parseReturnStatement() *ReturnStatement {
	stmt := &ReturnStatement{Token: p.curToken}
	if p.peekTokenIs(lexer.SEMICOLON) || p.peekTokenIs(lexer.RBRACE) {
		if p.peekTokenIs(lexer.SEMICOLON) {
			p.nextToken()
		}
		return stmt
	}
	p.nextToken()
	stmt.ReturnValue = p.parseExpression(LOWEST)
	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() *ExpressionStatement {
	stmt := &ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)
	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseBlockStatement() *BlockStatement {
	block := &BlockStatement{Token: p.curToken}
	p.nextToken() // consume '{'
	for !p.curTokenIs(lexer.RBRACE) && !p.curTokenIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	return block
}

func (p *Parser) parseIfStatement() *IfStatement {
	stmt := &IfStatement{Token: p.curToken}
	if !p.expectPeek(lexer.LPAREN) {
		return stmt
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return stmt
	}
	stmt.Consequence = p.parseBodyStatement()
	if p.peekTokenIs(lexer.ELSE) {
		p.nextToken()
		stmt.Alternative = p.parseBodyStatement()
	}
	return stmt
}

func (p *Parser) parseWhileStatement() *WhileStatement {
	stmt := &WhileStatement{Token: p.curToken}
	if !p.expectPeek(lexer.LPAREN) {
		return stmt
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return stmt
	}
	stmt.Body = p.parseBodyStatement()
	return stmt
}

// parseBodyStatement parses a control-flow body, which in SL may be a
// brace-delimited block or a single bare statement (spec.md §8's own
// scenarios use the bare form, e.g. `for (...) s(i);`). A bare
// statement is wrapped in a synthetic BlockStatement so every caller
// has one shape to transpile.
func (p *Parser) parseBodyStatement() *BlockStatement {
	if p.peekTokenIs(lexer.LBRACE) {
		p.nextToken()
		return p.parseBlockStatement()
	}
	p.nextToken()
	token := p.curToken
	stmt := p.parseStatement()
	block := &BlockStatement{Token: token}
	if stmt != nil {
		block.Statements = append(block.Statements, stmt)
	}
	return block
}

// parseForLikeStatement disambiguates classical `for(init;cond;incr)`
// from `for (v of iterable)` / `for (v in obj)` by scanning past the
// single declared variable before deciding which node to build.
func (p *Parser) parseForLikeStatement() Statement {
	forToken := p.curToken
	if !p.expectPeek(lexer.LPAREN) {
		return &ForStatement{Token: forToken}
	}

	declToken := p.peekToken
	isDecl := declToken.Type == lexer.LET || declToken.Type == lexer.CONST || declToken.Type == lexer.VAR
	if isDecl {
		p.nextToken() // consume let/const/var
		if !p.expectPeek(lexer.IDENT) {
			return &ForStatement{Token: forToken}
		}
		name := &Identifier{Token: p.curToken, Value: p.curToken.Literal}
		p.skipTypeAnnotation()

		if p.peekTokenIs(lexer.OF) {
			p.nextToken()
			p.nextToken()
			iterable := p.parseExpression(LOWEST)
			if !p.expectPeek(lexer.RPAREN) {
				return &ForOfStatement{Token: forToken, VarName: name, Iterable: iterable}
			}
			body := p.parseBodyStatement()
			return &ForOfStatement{Token: forToken, VarName: name, Iterable: iterable, Body: body}
		}
		if p.peekTokenIs(lexer.IN) {
			p.nextToken()
			p.nextToken()
			obj := p.parseExpression(LOWEST)
			if !p.expectPeek(lexer.RPAREN) {
				return &ForInStatement{Token: forToken, VarName: name, Object: obj}
			}
			body := p.parseBodyStatement()
			return &ForInStatement{Token: forToken, VarName: name, Object: obj, Body: body}
		}

		// Classical for: finish the init declaration, then ; cond ; incr.
		init := &LetStatement{Token: declToken, Name: name}
		if p.peekTokenIs(lexer.ASSIGN) {
			p.nextToken()
			p.nextToken()
			init.Value = p.parseExpression(LOWEST)
		}
		return p.finishClassicalFor(forToken, init)
	}

	// `for (;;)` or `for (expr; ...)` with no declaration.
	var init Statement
	if !p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
		init = &ExpressionStatement{Token: p.curToken, Expression: p.parseExpression(LOWEST)}
	}
	return p.finishClassicalFor(forToken, init)
}

func (p *Parser) finishClassicalFor(forToken lexer.Token, init Statement) *ForStatement {
	stmt := &ForStatement{Token: forToken, Initializer: init}
	if !p.expectPeek(lexer.SEMICOLON) {
		return stmt
	}
	if !p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
		stmt.Condition = p.parseExpression(LOWEST)
	}
	if !p.expectPeek(lexer.SEMICOLON) {
		return stmt
	}
	if !p.peekTokenIs(lexer.RPAREN) {
		p.nextToken()
		stmt.Update = p.parseExpression(LOWEST)
	}
	if !p.expectPeek(lexer.RPAREN) {
		return stmt
	}
	stmt.Body = p.parseBodyStatement()
	return stmt
}

func (p *Parser) parseBreakStatement() *BreakStatement {
	stmt := &BreakStatement{Token: p.curToken}
	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseContinueStatement() *ContinueStatement {
	stmt := &ContinueStatement{Token: p.curToken}
	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseSwitchStatement() *SwitchStatement {
	stmt := &SwitchStatement{Token: p.curToken}
	if !p.expectPeek(lexer.LPAREN) {
		return stmt
	}
	p.nextToken()
	stmt.Expression = p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) || !p.expectPeek(lexer.LBRACE) {
		return stmt
	}
	p.nextToken() // consume '{'
	for !p.curTokenIs(lexer.RBRACE) && !p.curTokenIs(lexer.EOF) {
		var sc SwitchCase
		if p.curTokenIs(lexer.CASE) {
			p.nextToken()
			sc.Condition = p.parseExpression(LOWEST)
			if !p.expectPeek(lexer.COLON) {
				return stmt
			}
		} else if p.curTokenIs(lexer.DEFAULT) {
			if !p.expectPeek(lexer.COLON) {
				return stmt
			}
		} else {
			p.errors = append(p.errors, fmt.Sprintf("line %d: expected case or default, got %q", p.curToken.Line, p.curToken.Literal))
			return stmt
		}
		p.nextToken()
		for !p.curTokenIs(lexer.CASE) && !p.curTokenIs(lexer.DEFAULT) && !p.curTokenIs(lexer.RBRACE) && !p.curTokenIs(lexer.EOF) {
			if s := p.parseStatement(); s != nil {
				sc.Body = append(sc.Body, s)
			}
			p.nextToken()
		}
		stmt.Cases = append(stmt.Cases, &sc)
	}
	return stmt
}

func (p *Parser) parseParameterList() []*Parameter {
	var params []*Parameter
	if p.peekTokenIs(lexer.RPAREN) {
		p.nextToken()
		return params
	}
	p.nextToken()
	params = append(params, p.parseOneParameter())
	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, p.parseOneParameter())
	}
	if !p.expectPeek(lexer.RPAREN) {
		return params
	}
	return params
}

func (p *Parser) parseOneParameter() *Parameter {
	param := &Parameter{Token: p.curToken, Name: &Identifier{Token: p.curToken, Value: p.curToken.Literal}}
	p.skipTypeAnnotation()
	if p.peekTokenIs(lexer.ASSIGN) {
		p.nextToken()
		p.nextToken()
		p.parseExpression(ASSIGNMENT) // default value, not represented — unsupported default params
	}
	return param
}

func (p *Parser) parseFunctionDeclaration(mods Modifiers) *FunctionDeclaration {
	fd := &FunctionDeclaration{Token: p.curToken, Mods: mods}
	if !p.expectPeek(lexer.IDENT) {
		return fd
	}
	fd.Name = &Identifier{Token: p.curToken, Value: p.curToken.Literal}
	if !p.expectPeek(lexer.LPAREN) {
		return fd
	}
	fd.Parameters = p.parseParameterList()
	p.skipTypeAnnotation()
	if !p.expectPeek(lexer.LBRACE) {
		return fd
	}
	fd.Body = p.parseBlockStatement()
	return fd
}

// parseClassDeclaration parses a class body of static/instance property
// declarations, an optional constructor, and methods. SL classes have
// no inheritance in this grammar subset, so a trailing `extends Name`
// clause is recognized and discarded rather than represented.
func (p *Parser) parseClassDeclaration(mods Modifiers) *ClassDeclaration {
	cd := &ClassDeclaration{Token: p.curToken, Mods: mods}
	if !p.expectPeek(lexer.IDENT) {
		return cd
	}
	cd.Name = &Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if p.peekTokenIs(lexer.EXTENDS) {
		p.nextToken()
		p.nextToken() // superclass name, discarded
	}

	if !p.expectPeek(lexer.LBRACE) {
		return cd
	}
	p.nextToken()

	for !p.curTokenIs(lexer.RBRACE) && !p.curTokenIs(lexer.EOF) {
		memberMods := Modifiers{}
		for p.curTokenIs(lexer.STATIC) || p.curTokenIs(lexer.DECLARE) {
			if p.curTokenIs(lexer.STATIC) {
				memberMods.Static = true
			}
			if p.curTokenIs(lexer.DECLARE) {
				memberMods.Declare = true
			}
			p.nextToken()
		}

		switch {
		case p.curTokenIs(lexer.IDENT) && p.curToken.Literal == "constructor" && p.peekTokenIs(lexer.LPAREN):
			ctor := &ConstructorDeclaration{Token: p.curToken}
			p.nextToken()
			ctor.Parameters = p.parseParameterList()
			if p.expectPeek(lexer.LBRACE) {
				ctor.Body = p.parseBlockStatement()
			}
			cd.Constructor = ctor

		case p.curTokenIs(lexer.IDENT) && p.peekTokenIs(lexer.LPAREN):
			m := &MethodDeclaration{Token: p.curToken, Name: &Identifier{Token: p.curToken, Value: p.curToken.Literal}, Mods: memberMods}
			p.nextToken()
			m.Parameters = p.parseParameterList()
			p.skipTypeAnnotation()
			if p.expectPeek(lexer.LBRACE) {
				m.Body = p.parseBlockStatement()
			}
			cd.Methods = append(cd.Methods, m)

		case p.curTokenIs(lexer.IDENT):
			prop := &PropertyDeclaration{Name: &Identifier{Token: p.curToken, Value: p.curToken.Literal}, Mods: memberMods}
			p.skipTypeAnnotation()
			if p.peekTokenIs(lexer.ASSIGN) {
				p.nextToken()
				p.nextToken()
				prop.Value = p.parseExpression(LOWEST)
			}
			if p.peekTokenIs(lexer.SEMICOLON) {
				p.nextToken()
			}
			cd.Properties = append(cd.Properties, prop)

		default:
			p.errors = append(p.errors, fmt.Sprintf("line %d: unexpected token %q in class body", p.curToken.Line, p.curToken.Literal))
			return cd
		}
		p.nextToken()
	}
	return cd
}

func (p *Parser) parseEnumDeclaration() *EnumDeclaration {
	ed := &EnumDeclaration{Token: p.curToken}
	if !p.expectPeek(lexer.IDENT) {
		return ed
	}
	ed.Name = &Identifier{Token: p.curToken, Value: p.curToken.Literal}
	if !p.expectPeek(lexer.LBRACE) {
		return ed
	}
	p.nextToken()
	for !p.curTokenIs(lexer.RBRACE) && !p.curTokenIs(lexer.EOF) {
		member := &EnumMember{Name: &Identifier{Token: p.curToken, Value: p.curToken.Literal}}
		if p.peekTokenIs(lexer.ASSIGN) {
			p.nextToken()
			p.nextToken()
			member.Initializer = p.parseExpression(LOWEST)
		}
		ed.Members = append(ed.Members, member)
		if p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
		}
		p.nextToken()
	}
	return ed
}

func (p *Parser) parseImportDeclaration() *ImportDeclaration {
	id := &ImportDeclaration{Token: p.curToken}
	if p.peekTokenIs(lexer.ASTERISK) {
		p.nextToken()
		if !p.expectPeek(lexer.AS) {
			return id
		}
		if !p.expectPeek(lexer.IDENT) {
			return id
		}
		id.Namespace = &Identifier{Token: p.curToken, Value: p.curToken.Literal}
	} else if p.peekTokenIs(lexer.LBRACE) {
		p.nextToken()
		p.nextToken()
		for !p.curTokenIs(lexer.RBRACE) && !p.curTokenIs(lexer.EOF) {
			name := &ImportName{Name: &Identifier{Token: p.curToken, Value: p.curToken.Literal}}
			if p.peekTokenIs(lexer.AS) {
				p.nextToken()
				p.nextToken()
				name.Alias = &Identifier{Token: p.curToken, Value: p.curToken.Literal}
			}
			id.Names = append(id.Names, name)
			if p.peekTokenIs(lexer.COMMA) {
				p.nextToken()
			}
			p.nextToken()
		}
	}
	if !p.expectPeek(lexer.FROM) {
		return id
	}
	if !p.expectPeek(lexer.STRING) {
		return id
	}
	id.Module = unquote(p.curToken.Literal)
	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
	}
	return id
}

func (p *Parser) parseInterfaceDeclaration() *InterfaceDeclaration {
	node := &InterfaceDeclaration{Token: p.curToken}
	if p.peekTokenIs(lexer.IDENT) {
		p.nextToken()
		node.Name = &Identifier{Token: p.curToken, Value: p.curToken.Literal}
	}
	p.skipToMatchingBrace()
	return node
}

func (p *Parser) parseTypeAliasStatement() *TypeAliasStatement {
	node := &TypeAliasStatement{Token: p.curToken}
	if p.peekTokenIs(lexer.IDENT) {
		p.nextToken()
		node.Name = &Identifier{Token: p.curToken, Value: p.curToken.Literal}
	}
	for !p.curTokenIs(lexer.SEMICOLON) && !p.curTokenIs(lexer.EOF) {
		p.nextToken()
	}
	return node
}

// skipToMatchingBrace advances past a `{ ... }` body (used for ignored
// interface declarations), counting nested braces.
func (p *Parser) skipToMatchingBrace() {
	for !p.curTokenIs(lexer.LBRACE) && !p.curTokenIs(lexer.EOF) {
		p.nextToken()
	}
	if p.curTokenIs(lexer.EOF) {
		return
	}
	depth := 1
	p.nextToken()
	for depth > 0 && !p.curTokenIs(lexer.EOF) {
		if p.curTokenIs(lexer.LBRACE) {
			depth++
		} else if p.curTokenIs(lexer.RBRACE) {
			depth--
		}
		if depth > 0 {
			p.nextToken()
		}
	}
}

func unquote(lit string) string {
	if len(lit) >= 2 {
		return lit[1 : len(lit)-1]
	}
	return lit
}

// --- Expression parsing ---

func (p *Parser) parseExpression(precedence int) Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.errors = append(p.errors, fmt.Sprintf("line %d: no prefix parse function for %s (%q)", p.curToken.Line, p.curToken.Type, p.curToken.Literal))
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(lexer.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIdentifier() Expression {
	return &Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseThisExpression() Expression {
	return &ThisExpression{Token: p.curToken}
}

func (p *Parser) parseNumberLiteral() Expression {
	return &NumberLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseStringLiteral() Expression {
	return &StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() Expression {
	return &BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(lexer.TRUE)}
}

func (p *Parser) parseGroupedExpression() Expression {
	p.nextToken()
	exp := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return exp
	}
	return exp
}

func (p *Parser) parsePrefixExpression() Expression {
	tok := p.curToken
	op := p.curToken.Literal
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	return &UnaryExpression{Token: tok, Operator: op, Operand: operand}
}

func (p *Parser) parsePostfixExpression(left Expression) Expression {
	return &UnaryExpression{Token: p.curToken, Operator: p.curToken.Literal, Operand: left, Postfix: true}
}

func (p *Parser) parseBinaryExpression(left Expression) Expression {
	tok := p.curToken
	op := p.curToken.Literal
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	return &BinaryExpression{Token: tok, Left: left, Operator: op, Right: right}
}

func (p *Parser) parseConditionalExpression(cond Expression) Expression {
	tok := p.curToken
	p.nextToken()
	cons := p.parseExpression(ASSIGNMENT)
	if !p.expectPeek(lexer.COLON) {
		return &ConditionalExpression{Token: tok, Condition: cond, Consequence: cons}
	}
	p.nextToken()
	alt := p.parseExpression(ASSIGNMENT)
	return &ConditionalExpression{Token: tok, Condition: cond, Consequence: cons, Alternative: alt}
}

func (p *Parser) parseCallExpression(callee Expression) Expression {
	tok := p.curToken
	args := p.parseExpressionList(lexer.RPAREN)
	return &CallExpression{Token: tok, Callee: callee, Arguments: args}
}

func (p *Parser) parseNewExpression() Expression {
	tok := p.curToken
	p.nextToken()
	callee := p.parseExpression(CALL)
	ne := &NewExpression{Token: tok}
	if call, ok := callee.(*CallExpression); ok {
		ne.Callee = call.Callee
		ne.Arguments = call.Arguments
		return ne
	}
	ne.Callee = callee
	return ne
}

func (p *Parser) parsePropertyAccessExpression(object Expression) Expression {
	tok := p.curToken
	if !p.expectPeek(lexer.IDENT) {
		return object
	}
	prop := &Identifier{Token: p.curToken, Value: p.curToken.Literal}
	return &PropertyAccessExpression{Token: tok, Object: object, Property: prop}
}

func (p *Parser) parseElementAccessExpression(object Expression) Expression {
	tok := p.curToken
	p.nextToken()
	index := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RBRACKET) {
		return object
	}
	return &ElementAccessExpression{Token: tok, Object: object, Index: index}
}

func (p *Parser) parseTypeAssertionExpression(expr Expression) Expression {
	tok := p.curToken
	p.nextToken()
	// Consume the type expression's tokens without building a tree;
	// types are checker input only (see skipTypeAnnotation).
	depth := 0
	for {
		switch p.curToken.Type {
		case lexer.LBRACKET, lexer.LPAREN:
			depth++
		case lexer.RBRACKET, lexer.RPAREN:
			depth--
		}
		stop := depth <= 0 && (p.peekTokenIs(lexer.SEMICOLON) || p.peekTokenIs(lexer.RPAREN) ||
			p.peekTokenIs(lexer.COMMA) || p.peekTokenIs(lexer.RBRACE) || p.peekTokenIs(lexer.EOF) ||
			p.peekPrecedence() > LOWEST)
		if stop {
			break
		}
		p.nextToken()
	}
	return &TypeAssertionExpression{Token: tok, Expression: expr}
}

func (p *Parser) parseExpressionList(end lexer.TokenType) []Expression {
	var list []Expression
	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))
	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(end) {
		return list
	}
	return list
}

func (p *Parser) parseArrayLiteral() Expression {
	tok := p.curToken
	elems := p.parseExpressionList(lexer.RBRACKET)
	return &ArrayLiteral{Token: tok, Elements: elems}
}

func (p *Parser) parseObjectLiteral() Expression {
	tok := p.curToken
	ol := &ObjectLiteral{Token: tok}
	p.nextToken()
	for !p.curTokenIs(lexer.RBRACE) && !p.curTokenIs(lexer.EOF) {
		prop := &ObjectProperty{}
		key := &Identifier{Token: p.curToken, Value: p.curToken.Literal}
		if p.peekTokenIs(lexer.COLON) {
			prop.Key = key
			p.nextToken()
			p.nextToken()
			prop.Value = p.parseExpression(LOWEST)
		} else {
			prop.Key = key
			prop.Value = key
			prop.Shorthand = true
		}
		ol.Properties = append(ol.Properties, prop)
		if p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
		}
		p.nextToken()
	}
	return ol
}

func (p *Parser) parseFunctionLiteral() Expression {
	fl := &FunctionLiteral{Token: p.curToken}
	if p.peekTokenIs(lexer.IDENT) {
		p.nextToken()
		fl.Name = &Identifier{Token: p.curToken, Value: p.curToken.Literal}
	}
	if !p.expectPeek(lexer.LPAREN) {
		return fl
	}
	fl.Parameters = p.parseParameterList()
	p.skipTypeAnnotation()
	if !p.expectPeek(lexer.LBRACE) {
		return fl
	}
	fl.Body = p.parseBlockStatement()
	return fl
}

package lexer

import "testing"

func TestNextToken(t *testing.T) {
	input := `let x = 5 + 10;
class Foo { static k = 1; }
for (let i = 0; i < 10; i++) {}
a.b[0] === "hi" && !false;
`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{LET, "let"},
		{IDENT, "x"},
		{ASSIGN, "="},
		{NUMBER, "5"},
		{PLUS, "+"},
		{NUMBER, "10"},
		{SEMICOLON, ";"},
		{CLASS, "class"},
		{IDENT, "Foo"},
		{LBRACE, "{"},
		{STATIC, "static"},
		{IDENT, "k"},
		{ASSIGN, "="},
		{NUMBER, "1"},
		{SEMICOLON, ";"},
		{RBRACE, "}"},
		{FOR, "for"},
		{LPAREN, "("},
		{LET, "let"},
		{IDENT, "i"},
		{ASSIGN, "="},
		{NUMBER, "0"},
		{SEMICOLON, ";"},
		{IDENT, "i"},
		{LT, "<"},
		{NUMBER, "10"},
		{SEMICOLON, ";"},
		{IDENT, "i"},
		{INC, "++"},
		{RPAREN, ")"},
		{LBRACE, "{"},
		{RBRACE, "}"},
		{IDENT, "a"},
		{DOT, "."},
		{IDENT, "b"},
		{LBRACKET, "["},
		{NUMBER, "0"},
		{RBRACKET, "]"},
		{STRICT_EQ, "==="},
		{STRING, `"hi"`},
		{LOGICAL_AND, "&&"},
		{BANG, "!"},
		{FALSE, "false"},
		{SEMICOLON, ";"},
		{EOF, ""},
	}

	l := NewLexer(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - wrong type. expected=%q, got=%q (literal %q)", i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - wrong literal. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestLineComments(t *testing.T) {
	l := NewLexer("let x = 1; // trailing\nlet y = 2;")
	var types []TokenType
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			break
		}
		types = append(types, tok.Type)
	}
	if len(types) != 10 {
		t.Fatalf("expected 10 tokens skipping the comment, got %d: %v", len(types), types)
	}
}

func TestBlockComments(t *testing.T) {
	l := NewLexer("/* skip\nme */let x = 1;")
	tok := l.NextToken()
	if tok.Type != LET {
		t.Fatalf("expected LET after block comment, got %q", tok.Type)
	}
}

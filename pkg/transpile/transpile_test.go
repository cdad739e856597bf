package transpile_test

import (
	"strings"
	"testing"

	"github.com/GlassBricks/TypeScriptToLua/pkg/checker"
	"github.com/GlassBricks/TypeScriptToLua/pkg/lexer"
	"github.com/GlassBricks/TypeScriptToLua/pkg/parser"
	"github.com/GlassBricks/TypeScriptToLua/pkg/transpile"
)

func mustTranspile(t *testing.T, src string) string {
	t.Helper()
	p := parser.NewParser(lexer.NewLexer(src))
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("parse errors for %q: %v", src, p.Errors())
	}
	chk := checker.NewChecker()
	chk.Check(program)
	out, err := transpile.TranspileSourceFile(program, chk)
	if err != nil {
		t.Fatalf("transpile error for %q: %v", src, err)
	}
	return out
}

func TestClassStaticAndInstanceFields(t *testing.T) {
	out := mustTranspile(t, `class P { static k = 1; x = 2; constructor(y) { this.x = y; } m() { return this.x; } }`)

	for _, want := range []string{
		"P = P or {}",
		"P.k = 1",
		"function P:constructor(y)",
		"self.x = 2",
		"self.x=y",
		"function P:m()",
		"return self.x",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q, got:\n%s", want, out)
		}
	}
}

func TestSwitchFallThroughWithBreak(t *testing.T) {
	out := mustTranspile(t, `switch(n){case 1: a(); case 2: b(); break; default: c();}`)

	order := []string{
		"(n)==(1) then",
		"::switchCase0::",
		"a()",
		"goto switchCase1",
		"(n)==(2) then",
		"::switchCase1::",
		"b()",
		"goto switchDone0",
		"goto switchCase2",
		"::switchCase2::",
		"c()",
		"::switchDone0::",
	}
	last := -1
	for _, frag := range order {
		idx := strings.Index(out, frag)
		if idx < 0 {
			t.Fatalf("output missing fragment %q, got:\n%s", frag, out)
		}
		if idx < last {
			t.Fatalf("fragment %q appears out of order, got:\n%s", frag, out)
		}
		last = idx
	}
}

func TestNumericFor(t *testing.T) {
	out := mustTranspile(t, `for (let i = 0; i < 10; i++) s(i);`)
	if !strings.Contains(out, "for i=0,10-1,1 do") {
		t.Errorf("unexpected numeric for header, got:\n%s", out)
	}
}

func TestArrayIteration(t *testing.T) {
	out := mustTranspile(t, `let arr = [1,2,3]; for (const v of arr) use(v);`)
	if !strings.Contains(out, "for _, v in ipairs(arr) do") {
		t.Errorf("expected ipairs iteration over array-typed receiver, got:\n%s", out)
	}
}

func TestForInUsesKeyOnlyPairs(t *testing.T) {
	out := mustTranspile(t, `let obj = {a: 1}; for (const k in obj) use(k);`)
	if !strings.Contains(out, "for k, _ in pairs(obj) do") {
		t.Errorf("expected key-only pairs iteration, got:\n%s", out)
	}
}

func TestBraceLessIfAndWhileBodies(t *testing.T) {
	out := mustTranspile(t, `if (a) b(); else c();`)
	for _, want := range []string{"if (a) then", "b()", "else", "c()", "end"} {
		if !strings.Contains(out, want) {
			t.Errorf("brace-less if output missing %q, got:\n%s", want, out)
		}
	}

	out = mustTranspile(t, `while (a) b();`)
	for _, want := range []string{"while (a) do", "b()", "end"} {
		if !strings.Contains(out, want) {
			t.Errorf("brace-less while output missing %q, got:\n%s", want, out)
		}
	}
}

func TestTernaryLaziness(t *testing.T) {
	out := mustTranspile(t, `let x = c ? f() : g();`)
	want := "local x = ITE(c,function() return f() end, function() return g() end)"
	if !strings.Contains(out, want) {
		t.Errorf("expected %q, got:\n%s", want, out)
	}
}

func TestArrayElementWriteIndexShift(t *testing.T) {
	out := mustTranspile(t, `let a = [1,2,3]; a[0] = a[1] + 1;`)
	if !strings.Contains(out, "a[0+1]=(a[1+1])+(1)") {
		t.Errorf("expected 1-indexed element write, got:\n%s", out)
	}
}

func TestEnumFolding(t *testing.T) {
	out := mustTranspile(t, `enum E { A, B = 5, C } let v = E.B;`)
	for _, want := range []string{"A=0", "B=5", "C=6"} {
		if !strings.Contains(out, want) {
			t.Errorf("enum output missing %q, got:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "local v = B") {
		t.Errorf("expected enum member access folded to bare name, got:\n%s", out)
	}
}

func TestIdentityPassOnTypeAssertion(t *testing.T) {
	withAssertion := mustTranspile(t, `let x = (1 + 2) as number;`)
	without := mustTranspile(t, `let x = (1 + 2);`)
	if withAssertion != without {
		t.Errorf("type assertion changed output:\n%s\nvs\n%s", withAssertion, without)
	}
}

func TestOperatorRewriteTable(t *testing.T) {
	cases := map[string]string{
		`a(x && y);`:   " and ",
		`a(x || y);`:   " or ",
		`a(x === y);`:  "==",
		`a(x !== y);`:  "~=",
		`a(x != y);`:   "~=",
		`a(x & y);`:    "bit.band(",
		`a(x | y);`:    "bit.bor(",
	}
	for src, want := range cases {
		out := mustTranspile(t, src)
		if !strings.Contains(out, want) {
			t.Errorf("input %q: expected output to contain %q, got:\n%s", src, want, out)
		}
	}
}

func TestBitOpLibraryIsConfigurable(t *testing.T) {
	p := parser.NewParser(lexer.NewLexer(`a(x & y); a(x | y);`))
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("parse errors: %v", p.Errors())
	}
	chk := checker.NewChecker()
	chk.Check(program)

	out, err := transpile.TranspileSourceFile(program, chk, transpile.WithBitOpLibrary("bit32"))
	if err != nil {
		t.Fatalf("transpile error: %v", err)
	}
	if !strings.Contains(out, "bit32.band(") || !strings.Contains(out, "bit32.bor(") {
		t.Errorf("expected bit32-prefixed calls, got:\n%s", out)
	}
	if strings.Contains(out, "bit.band(") || strings.Contains(out, "bit.bor(") {
		t.Errorf("did not expect default bit-prefixed calls, got:\n%s", out)
	}
}

func TestIndentationIsFourSpaceMultiples(t *testing.T) {
	out := mustTranspile(t, `if (a) { if (b) { c(); } }`)
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		leading := len(line) - len(strings.TrimLeft(line, " "))
		if leading%4 != 0 {
			t.Errorf("line %q has non-multiple-of-4 indentation (%d spaces)", line, leading)
		}
	}
}

func TestNestedSwitchRestoresBreakTarget(t *testing.T) {
	out := mustTranspile(t, `switch(n){case 1: switch(m){case 1: d(); break;} break;}`)
	if !strings.Contains(out, "goto switchDone0") {
		t.Errorf("expected outer break to target switchDone0 after a nested switch, got:\n%s", out)
	}
	if !strings.Contains(out, "goto switchDone1") {
		t.Errorf("expected inner break to target switchDone1, got:\n%s", out)
	}
}

func TestContinueIsRejected(t *testing.T) {
	p := parser.NewParser(lexer.NewLexer(`for (let i = 0; i < 1; i++) { continue; }`))
	program := p.ParseProgram()
	chk := checker.NewChecker()
	chk.Check(program)
	_, err := transpile.TranspileSourceFile(program, chk)
	if err == nil {
		t.Fatal("expected continue to be rejected with a TranslationError")
	}
	if _, ok := err.(*transpile.TranslationError); !ok {
		t.Fatalf("expected *transpile.TranslationError, got %T", err)
	}
}

func TestUnsupportedStringMethodIsRejected(t *testing.T) {
	p := parser.NewParser(lexer.NewLexer(`let s = "hi"; s.toUpperCase();`))
	program := p.ParseProgram()
	chk := checker.NewChecker()
	chk.Check(program)
	_, err := transpile.TranspileSourceFile(program, chk)
	if err == nil {
		t.Fatal("expected unsupported string method to be rejected")
	}
}

// Package driver wires the lexer, parser, checker, and transpile
// engine into the two operations the CLI and the cache actually call:
// transpiling a source string and transpiling a file on disk. It is
// also where the ambient concerns the engine itself stays free of —
// logging, run identity, and I/O error wrapping — live.
package driver

import (
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/GlassBricks/TypeScriptToLua/pkg/checker"
	"github.com/GlassBricks/TypeScriptToLua/pkg/errors"
	"github.com/GlassBricks/TypeScriptToLua/pkg/lexer"
	"github.com/GlassBricks/TypeScriptToLua/pkg/log"
	"github.com/GlassBricks/TypeScriptToLua/pkg/parser"
	"github.com/GlassBricks/TypeScriptToLua/pkg/transpile"

	"go.uber.org/zap"
)

// Result carries an emitted file's text alongside metadata the cache
// and CLI want to report without re-deriving it.
type Result struct {
	Output   string
	RunID    uuid.UUID
	Bytes    int
	Duration time.Duration
}

// Transpile lexes, parses, checks, and transpiles SL source text,
// logging one Info event on success and one Warn event (with the
// offending node's source position) on a TranslationError. opts are
// forwarded to the engine unchanged (e.g. transpile.WithBitOpLibrary
// to target a Lua runtime without LuaJIT's native bit module).
func Transpile(source string, opts ...transpile.Option) (Result, error) {
	runID := uuid.New()
	start := time.Now()

	p := parser.NewParser(lexer.NewLexer(source))
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		return Result{}, errors.Newf("parse errors: %v", p.Errors())
	}

	chk := checker.NewChecker()
	chk.Check(program)

	out, err := transpile.TranspileSourceFile(program, chk, opts...)
	if err != nil {
		logTranslationError(runID, err)
		return Result{}, err
	}

	duration := time.Since(start)
	log.Logger.Info("transpiled source",
		zap.String("run_id", runID.String()),
		zap.Duration("duration", duration),
		zap.Int("input_bytes", len(source)),
		zap.Int("output_bytes", len(out)),
	)

	return Result{Output: out, RunID: runID, Bytes: len(out), Duration: duration}, nil
}

// TranspileFile reads path from disk and transpiles its contents,
// wrapping I/O failures with errors.Wrapf so the CLI can print a
// stack-annotated cause chain. A TranslationError returned by
// Transpile propagates unwrapped — it stays the one concrete error
// kind the engine defines.
func TranspileFile(path string, opts ...transpile.Option) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{}, errors.Wrapf(errors.ErrSourceNotFound, "reading %s", path)
		}
		return Result{}, errors.Wrapf(err, "reading %s", path)
	}
	return Transpile(string(data), opts...)
}

func logTranslationError(runID uuid.UUID, err error) {
	if te, ok := err.(*transpile.TranslationError); ok && te.Node != nil {
		line, column := parser.Pos(te.Node)
		log.Logger.Warn("translation rejected",
			zap.String("run_id", runID.String()),
			zap.Int("line", line),
			zap.Int("column", column),
			zap.Error(err),
		)
		return
	}
	log.Logger.Warn("translation rejected",
		zap.String("run_id", runID.String()),
		zap.Error(err),
	)
}

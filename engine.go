// engine.go — the one-source-text-per-run contract.
//
// An Engine accepts a single source string and, as a side effect, writes
// zero or more text lines to an output stream and at most one error message
// to an error stream. It keeps an LRU cache of parsed programs keyed by the
// source text; ASTs are immutable after construction, so a cached program
// can be re-executed any number of times against fresh variable stores.
package brio

import (
	"fmt"
	"io"

	lru "github.com/hashicorp/golang-lru/v2"
)

// parseCacheSize bounds the number of parsed sources kept by an Engine.
const parseCacheSize = 128

type program struct {
	stmts []Stmt
	diags []*ParseError
}

// Engine runs Brio programs. Safe for reuse across runs; each run gets its
// own empty variable store.
type Engine struct {
	cache *lru.Cache[string, *program]
}

// NewEngine returns an Engine with an empty parse cache.
func NewEngine() *Engine {
	cache, err := lru.New[string, *program](parseCacheSize)
	if err != nil {
		panic(err) // only possible with a non-positive size
	}
	return &Engine{cache: cache}
}

// Load parses src (or returns the cached parse) and yields the surviving
// statements plus the diagnostics for statements dropped during recovery.
// A lex failure is fatal and returned as err with no statements.
func (e *Engine) Load(src string) ([]Stmt, []*ParseError, error) {
	if p, ok := e.cache.Get(src); ok {
		return p.stmts, p.diags, nil
	}
	stmts, diags, err := Parse(src)
	if err != nil {
		return nil, nil, err
	}
	e.cache.Add(src, &program{stmts: stmts, diags: diags})
	return stmts, diags, nil
}

// Run executes one source text. Program output goes to out, one line per
// print statement. On a fatal condition (scan failure or runtime failure)
// a single caret-annotated message is written to errw and Run reports
// false. Statements dropped by parse recovery are skipped silently; the
// surviving statements still execute. Output printed before a failure
// stands.
func (e *Engine) Run(src string, out, errw io.Writer) bool {
	stmts, _, err := e.Load(src)
	if err != nil {
		fmt.Fprint(errw, WrapErrorWithSource(err, src).Error())
		return false
	}
	ip := NewInterpreter(out)
	if err := ip.Run(stmts); err != nil {
		fmt.Fprint(errw, WrapErrorWithSource(err, src).Error())
		return false
	}
	return true
}

// RunSource is a convenience for one-shot execution without keeping an
// Engine (and its cache) around.
func RunSource(src string, out, errw io.Writer) bool {
	return NewEngine().Run(src, out, errw)
}

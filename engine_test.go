// engine_test.go
package brio

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func Test_Engine_Run_Contract(t *testing.T) {
	var out, errw bytes.Buffer
	ok := NewEngine().Run("print 1 + 2;", &out, &errw)
	if !ok {
		t.Fatalf("want success, errw=%q", errw.String())
	}
	if out.String() != "3\n" {
		t.Fatalf("want output %q, got %q", "3\n", out.String())
	}
	if errw.Len() != 0 {
		t.Fatalf("want empty error stream, got %q", errw.String())
	}
}

func Test_Engine_Run_Lex_Failure_Is_Fatal(t *testing.T) {
	var out, errw bytes.Buffer
	ok := NewEngine().Run("print 1 $ 2;", &out, &errw)
	if ok {
		t.Fatalf("want failure")
	}
	if out.Len() != 0 {
		t.Fatalf("no output may be produced on a scan failure, got %q", out.String())
	}
	if !strings.Contains(errw.String(), "LEXICAL ERROR") {
		t.Fatalf("want lexical error message, got %q", errw.String())
	}
}

func Test_Engine_Run_Keeps_Output_Printed_Before_Failure(t *testing.T) {
	var out, errw bytes.Buffer
	ok := NewEngine().Run("print 1; print 1 / 0;", &out, &errw)
	if ok {
		t.Fatalf("want failure")
	}
	if out.String() != "1\n" {
		t.Fatalf("want %q, got %q", "1\n", out.String())
	}
	if !strings.Contains(errw.String(), "division by zero") {
		t.Fatalf("want division error, got %q", errw.String())
	}
}

func Test_Engine_Run_Executes_Statements_After_A_Recovered_One(t *testing.T) {
	var out, errw bytes.Buffer
	ok := NewEngine().Run("var = 5; print 3;", &out, &errw)
	if !ok {
		t.Fatalf("recovered diagnostics are not fatal, errw=%q", errw.String())
	}
	if out.String() != "3\n" {
		t.Fatalf("want %q, got %q", "3\n", out.String())
	}
}

func Test_Engine_Load_Caches_Parsed_Programs(t *testing.T) {
	e := NewEngine()
	src := "print 1;"
	first, _, err := e.Load(src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	second, _, err := e.Load(src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(first) == 0 || first[0] != second[0] {
		t.Fatalf("want the cached program back, got distinct ASTs")
	}
}

func Test_Engine_Cached_Program_Gets_A_Fresh_Store_Each_Run(t *testing.T) {
	e := NewEngine()
	src := `var n = 5; var result = 1; while (n > 0) { result = result * n; n = n - 1; } print result;`
	for i := 0; i < 2; i++ {
		var out, errw bytes.Buffer
		if !e.Run(src, &out, &errw) {
			t.Fatalf("run %d failed: %s", i, errw.String())
		}
		if out.String() != "120\n" {
			t.Fatalf("run %d: want %q, got %q", i, "120\n", out.String())
		}
	}
}

// --- fixture-driven end-to-end tests ---------------------------------------

type fixture struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Output string `yaml:"output"`
	Error  string `yaml:"error"` // substring of the single error message, if any
}

func Test_Engine_Fixtures(t *testing.T) {
	raw, err := os.ReadFile("testdata/programs.yaml")
	if err != nil {
		t.Fatalf("read fixtures: %v", err)
	}
	var fixtures []fixture
	if err := yaml.Unmarshal(raw, &fixtures); err != nil {
		t.Fatalf("unmarshal fixtures: %v", err)
	}
	if len(fixtures) == 0 {
		t.Fatalf("no fixtures loaded")
	}

	e := NewEngine()
	for _, fx := range fixtures {
		fx := fx
		t.Run(fx.Name, func(t *testing.T) {
			var out, errw bytes.Buffer
			ok := e.Run(fx.Source, &out, &errw)

			if fx.Error != "" {
				if ok {
					t.Fatalf("want failure, got success (out=%q)", out.String())
				}
				if !strings.Contains(errw.String(), fx.Error) {
					t.Fatalf("want error containing %q, got %q", fx.Error, errw.String())
				}
			} else {
				if !ok {
					t.Fatalf("want success, got error: %s", errw.String())
				}
				if errw.Len() != 0 {
					t.Fatalf("want empty error stream, got %q", errw.String())
				}
			}
			if out.String() != fx.Output {
				t.Fatalf("want output %q, got %q", fx.Output, out.String())
			}
		})
	}
}

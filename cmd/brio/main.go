package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	brio "github.com/brio-lang/brio"
)

const (
	appName     = "brio"
	historyFile = ".brio_history"
	promptMain  = "==> "
	promptCont  = "... "
)

var banner = fmt.Sprintf("Brio %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", brio.Version)

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "fmt":
		os.Exit(cmdFmt(os.Args[2:]))
	case "version":
		fmt.Println(brio.Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Brio %s

Usage:
  %s run <file.brio>              Run a script.
  %s repl                         Start the REPL.
  %s fmt [--check] <file ...>     Rewrite file(s) to canonical form.
  %s version                      Print the version.

`, brio.Version, appName, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file.brio>\n", appName)
		return 2
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, args[0], err)
		return 1
	}

	name := filepath.Base(args[0])
	stmts, diags, lerr := brio.NewEngine().Load(string(src))
	if lerr != nil {
		fmt.Fprint(os.Stderr, red(brio.WrapErrorWithName(lerr, name, string(src)).Error()))
		return 1
	}
	// Recovered statements were dropped; report them but keep running.
	for _, d := range diags {
		fmt.Fprint(os.Stderr, red(brio.WrapErrorWithName(d, name, string(src)).Error()))
	}

	ip := brio.NewInterpreter(os.Stdout)
	if rerr := ip.Run(stmts); rerr != nil {
		fmt.Fprint(os.Stderr, red(brio.WrapErrorWithName(rerr, name, string(src)).Error()))
		return 1
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := brio.NewInterpreter(os.Stdout)

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return 0
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}

		replEval(ip, code)
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}

	return 0
}

// replEval runs one REPL input against the persistent interpreter. A lone
// expression statement echoes its value; anything else just executes.
func replEval(ip *brio.Interpreter, code string) {
	stmts, diags, err := brio.Parse(code)
	if err != nil {
		fmt.Fprint(os.Stderr, red(brio.WrapErrorWithSource(err, code).Error()))
		return
	}
	for _, d := range diags {
		fmt.Fprint(os.Stderr, red(brio.WrapErrorWithSource(d, code).Error()))
	}

	if len(stmts) == 1 && len(diags) == 0 {
		if es, ok := stmts[0].(*brio.ExprStmt); ok {
			v, rerr := ip.EvalExpr(es.Expr)
			if rerr != nil {
				fmt.Fprint(os.Stderr, red(brio.WrapErrorWithSource(rerr, code).Error()))
				return
			}
			fmt.Println(blue(v.String()))
			return
		}
	}

	if rerr := ip.Run(stmts); rerr != nil {
		fmt.Fprint(os.Stderr, red(brio.WrapErrorWithSource(rerr, code).Error()))
	}
}

// readByParseProbe accumulates lines until the input parses, or fails with
// something other than an incomplete-at-EOF condition.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		_, diags, perr := brio.ParseInteractive(src)
		if perr != nil {
			return src, true // fatal lex error; let the evaluator report it
		}
		incomplete := false
		for _, d := range diags {
			if d.Incomplete {
				incomplete = true
				break
			}
		}
		if incomplete {
			continue
		}
		return src, true
	}
}

// -----------------------------------------------------------------------------
// fmt
// -----------------------------------------------------------------------------

func cmdFmt(args []string) int {
	fs := flag.NewFlagSet("fmt", flag.ContinueOnError)
	check := fs.Bool("check", false, "check format; exit 1 if any file would change")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	paths := fs.Args()
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s fmt [--check] <file ...>\n", appName)
		return 2
	}

	var bad int
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, path, err)
			return 1
		}
		stmts, diags, perr := brio.Parse(string(src))
		if perr != nil {
			fmt.Fprint(os.Stderr, red(brio.WrapErrorWithName(perr, filepath.Base(path), string(src)).Error()))
			return 1
		}
		if len(diags) > 0 {
			// refuse to rewrite a file we could not fully parse
			for _, d := range diags {
				fmt.Fprint(os.Stderr, red(brio.WrapErrorWithName(d, filepath.Base(path), string(src)).Error()))
			}
			return 1
		}

		formatted := brio.Format(stmts)
		if formatted == string(src) {
			continue
		}
		if *check {
			fmt.Println(path)
			bad++
			continue
		}
		if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "%s: cannot write %s: %v\n", appName, path, err)
			return 1
		}
	}

	if bad > 0 {
		return 1
	}
	return 0
}

package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/google/go-cmp/cmp"
	"github.com/peterh/liner"

	"pint/interpreter-go/pkg/ast"
	"pint/interpreter-go/pkg/driver"
	"pint/interpreter-go/pkg/interpreter"
	"pint/interpreter-go/pkg/runtime"
)

const (
	appName     = "pint"
	version     = "0.1.0"
	historyFile = ".pint_history"
	prompt      = "pint> "
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch cmd := os.Args[1]; cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "test":
		os.Exit(cmdTest(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "version":
		fmt.Println(version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Pint %s

Usage:
  %s run <program.json>     Run a parsed program.
  %s test <dir>             Run fixture directories (program.json + expect.yaml).
  %s repl                   Start the AST shell (one JSON node per line).
  %s version                Print the version.

`, version, appName, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <program.json>\n", appName)
		return 2
	}
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	if err := runFile(args[0], out); err != nil {
		out.Flush()
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	return 0
}

func runFile(path string, out io.Writer) error {
	prog, err := driver.LoadProgram(path)
	if err != nil {
		return err
	}
	return interpreter.New(out).EvaluateProgram(prog)
}

// -----------------------------------------------------------------------------
// test
// -----------------------------------------------------------------------------

func cmdTest(args []string) int {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	names, err := fixtureDirs(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	if len(names) == 0 {
		fmt.Fprintf(os.Stderr, "%s: no fixtures under %s\n", appName, dir)
		return 1
	}
	failed := 0
	for _, name := range names {
		if msg := runFixture(filepath.Join(dir, name)); msg != "" {
			failed++
			fmt.Printf("FAIL %s\n%s", name, msg)
			continue
		}
		fmt.Printf("ok   %s\n", name)
	}
	if failed > 0 {
		fmt.Printf("%d of %d fixtures failed\n", failed, len(names))
		return 1
	}
	return 0
}

func fixtureDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, entry.Name(), "program.json")); err == nil {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// runFixture executes one fixture directory and returns a failure report,
// or "" on success.
func runFixture(dir string) string {
	manifest, err := driver.LoadManifest(filepath.Join(dir, "expect.yaml"))
	if err != nil {
		return fmt.Sprintf("  %v\n", err)
	}
	var out bytes.Buffer
	runErr := runFile(filepath.Join(dir, "program.json"), &out)

	if manifest.Expect.Error != "" {
		var evalErr *runtime.Error
		if runErr == nil {
			return fmt.Sprintf("  expected %s, run succeeded\n", manifest.Expect.Error)
		}
		if !errors.As(runErr, &evalErr) || string(evalErr.Kind) != manifest.Expect.Error {
			return fmt.Sprintf("  expected %s, got: %v\n", manifest.Expect.Error, runErr)
		}
	} else if runErr != nil {
		return fmt.Sprintf("  unexpected error: %v\n", runErr)
	}

	if diff := cmp.Diff(manifest.Expect.Stdout, outputLines(&out)); diff != "" {
		return fmt.Sprintf("  stdout mismatch (-want +got):\n%s", diff)
	}
	return ""
}

func outputLines(buf *bytes.Buffer) []string {
	text := strings.TrimSuffix(buf.String(), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	fmt.Printf("Pint %s AST shell. One JSON node per line; :quit exits.\n", version)

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

	interp := interpreter.New(os.Stdout)
	env := runtime.NewEnvironment()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			return 1
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if strings.EqualFold(trimmed, ":quit") {
				return 0
			}
			fmt.Println("unknown command. Type :quit to exit.")
			continue
		}
		evalLine(interp, env, trimmed)
		ln.AppendHistory(trimmed)
	}
}

func evalLine(interp *interpreter.Interpreter, env *runtime.Environment, line string) {
	node, err := driver.DecodeLine([]byte(line))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return
	}
	switch n := node.(type) {
	case *ast.FunctionDefinition:
		if err := interp.RegisterFunction(n); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			return
		}
		fmt.Printf("defined %s/%d\n", n.Name.Name, len(n.Params))
	case ast.Expression:
		val, err := interp.EvaluateExpression(n, env)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			return
		}
		fmt.Println(runtime.Display(val))
	case ast.Statement:
		if err := interp.ExecuteStatement(n, env); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		}
	default:
		fmt.Fprintf(os.Stderr, "%s: %s is not executable here\n", appName, node.NodeType())
	}
}

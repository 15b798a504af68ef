// Command nibble is the REPL built on the scanner/parser/evaluator
// core: read a line, build a scanner, parser, and program against it;
// print parser errors or the evaluated inspect form.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	humanize "github.com/dustin/go-humanize"
	isatty "github.com/mattn/go-isatty"

	"github.com/nibblelang/nibble/internal/config"
	"github.com/nibblelang/nibble/internal/evaluator"
	"github.com/nibblelang/nibble/internal/lexer"
	"github.com/nibblelang/nibble/internal/parser"
	"github.com/nibblelang/nibble/internal/replstore"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "nibble: internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	cfg := config.Load()
	logger := log.New(os.Stderr, "nibble: ", log.LstdFlags)

	store, err := replstore.Open(cfg.HistoryPath)
	if err != nil {
		logger.Printf("history disabled: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	interactive := isatty.IsTerminal(os.Stdin.Fd())
	run(os.Stdin, os.Stdout, cfg, interactive, store)
}

func run(in *os.File, out *os.File, cfg config.Config, interactive bool, store *replstore.Store) {
	scanner := bufio.NewScanner(in)
	env := evaluator.NewEnvironment()

	for {
		if interactive {
			fmt.Fprint(out, cfg.Prompt)
		}
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()

		if line == "exit()" {
			return
		}
		if line == ":history" {
			printHistory(out, store, cfg.HistoryLimit)
			continue
		}

		result := evalLine(line, env, out)
		if store != nil {
			if err := store.Record(line, result); err != nil {
				fmt.Fprintf(out, "nibble: %v\n", err)
			}
		}
	}
}

// evalLine runs one REPL line through the core and returns, for recording
// to history, the inspect form it printed, "" when there was no result,
// or "<n> parse error(s)" when parsing failed.
func evalLine(line string, env *evaluator.Environment, out *os.File) string {
	lex := lexer.New(line)
	p := parser.New(lex)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(out, e)
		}
		return fmt.Sprintf("%d parse error(s)", len(errs))
	}

	result := evaluator.Eval(program, env)
	if result == nil {
		return ""
	}
	fmt.Fprintln(out, result.Inspect())
	return result.Inspect()
}

func printHistory(out *os.File, store *replstore.Store, limit int) {
	if store == nil {
		fmt.Fprintln(out, "history is disabled")
		return
	}
	entries, err := store.Recent(limit)
	if err != nil {
		fmt.Fprintf(out, "nibble: %v\n", err)
		return
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%s (%s)\n", e.Line, humanize.Time(e.CreatedAt))
	}
}

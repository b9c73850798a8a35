// Package main implements the minic compiler entry point.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/minic-lang/minic/internal/ir"
	"github.com/minic-lang/minic/internal/lower"
	"github.com/minic-lang/minic/internal/syntax"
)

// Compiler flags
var (
	emitTokens = flag.Bool("emit-tokens", false, "Output token stream")
	emitAST    = flag.Bool("emit-ast", false, "Output AST")
	astFormat  = flag.String("ast-format", "text", "AST output format (text or json)")
	emitIR     = flag.Bool("emit-ir", false, "Output IR")
	output     = flag.String("o", "", "Output file")
	version    = flag.Bool("version", false, "Print version")
)

// Version information
const Version = "0.1.0-dev"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "minic Compiler %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: minicc [options] <file.c>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("minicc version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "error: no input file")
		fmt.Fprintln(os.Stderr, "usage: minicc [options] <file.c>")
		os.Exit(1)
	}

	filename := args[0]

	// Handle -emit-tokens
	if *emitTokens {
		os.Exit(runEmitTokens(filename))
	}

	// Handle -emit-ast
	if *emitAST {
		os.Exit(runEmitAST(filename))
	}

	// Handle -emit-ir. The default pipeline produces the same output;
	// there is no further backend.
	if *emitIR {
		os.Exit(runCompile(filename))
	}

	os.Exit(runCompile(filename))
}

// runEmitTokens scans the input file and prints all tokens with positions.
func runEmitTokens(filename string) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	var errors []string
	errh := func(line, col uint32, msg string) {
		errors = append(errors, fmt.Sprintf("%s:%d:%d: %s", filename, line, col, msg))
	}

	s := syntax.NewScanner(filename, f, errh)

	// Print header
	fmt.Printf("%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Printf("%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))

	for {
		s.Next()
		tok := s.Token()
		pos := s.Pos()
		lit := s.Literal()

		fmt.Printf("%-20s %-12s %s\n", pos.String(), tok.String(), formatLiteral(lit))

		if tok.IsEOF() {
			break
		}
	}

	if len(errors) > 0 {
		fmt.Println()
		fmt.Println("Errors:")
		for _, e := range errors {
			fmt.Printf("  %s\n", e)
		}
		return 1
	}

	return 0
}

// formatLiteral formats a literal for display, escaping special characters.
func formatLiteral(lit string) string {
	if lit == "" {
		return "\"\""
	}

	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		case 0:
			b.WriteString("\\0")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}

// runEmitAST parses the input file and outputs the AST.
func runEmitAST(filename string) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	var errs []string
	errh := func(pos syntax.Pos, msg string) {
		errs = append(errs, fmt.Sprintf("%s: %s", pos, msg))
	}

	p := syntax.NewParser(filename, f, errh)
	ast := p.Parse()

	// Print errors first
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e)
	}

	switch *astFormat {
	case "json":
		if err := syntax.FprintJSON(os.Stdout, ast); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	default:
		syntax.Fprint(os.Stdout, ast)
	}

	if len(errs) > 0 {
		return 1
	}
	return 0
}

// runCompile parses and lowers the input file, then writes the IR text
// to the output file or stdout.
func runCompile(filename string) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	var parseErrs []string
	parseErrh := func(pos syntax.Pos, msg string) {
		parseErrs = append(parseErrs, fmt.Sprintf("%s: %s", pos, msg))
	}

	p := syntax.NewParser(filename, f, parseErrh)
	ast := p.Parse()

	for _, e := range parseErrs {
		fmt.Fprintln(os.Stderr, e)
	}
	if len(parseErrs) > 0 {
		return 1
	}

	var semErrs []string
	semErrh := func(pos syntax.Pos, msg string) {
		semErrs = append(semErrs, fmt.Sprintf("%s: %s", pos, msg))
	}

	m, _ := lower.File(filename, ast, semErrh)

	for _, e := range semErrs {
		fmt.Fprintln(os.Stderr, e)
	}
	if len(semErrs) > 0 {
		return 1
	}

	if err := ir.VerifyModule(m); err != nil {
		fmt.Fprintf(os.Stderr, "IR verification failed:\n%v\n", err)
		return 1
	}

	out := os.Stdout
	if *output != "" {
		out, err = os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		defer out.Close()
	}

	ir.FprintModule(out, m)
	return 0
}

/*
File    : go-lox/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the go-lox interpreter.
It provides two modes of operation:
1. REPL Mode (default): Interactive Read-Eval-Print Loop for live coding
2. File Mode: Execute Lox source files from the command line

The interpreter uses a lexer-parser-resolver-evaluator pipeline to process
Lox code. Exit codes follow the sysexits convention: 0 on success, 64 for
usage errors, 65 for parse or static errors, and 70 for runtime errors.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/go-lox/eval"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/repl"
	"github.com/akashmaji946/go-lox/resolver"
	"github.com/fatih/color"
)

// VERSION represents the current version of the go-lox interpreter
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license (MIT License)
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = "go-lox >>> "

// BANNER is the ASCII art logo displayed when starting the REPL
var BANNER = `
  ▄▄▄▄                  ▄▄▄
 ██▀▀▀▀█                ███
██        ▄████▄        ███       ▄████▄   ▀██  ██▀
██  ▄▄▄▄ ██▀  ▀██       ███      ██▀  ▀██    ████
██  ▀▀██ ██    ██  ███  ███      ██    ██    ▄██▄
 ██▄▄▄██ ▀██▄▄██▀       ███▄▄▄▄▄ ▀██▄▄██▀   ▄█▀▀█▄
   ▀▀▀▀    ▀▀▀▀         ▀▀▀▀▀▀▀▀   ▀▀▀▀    ▀▀▀  ▀▀▀
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// Exit codes, following the sysexits convention
const (
	EXIT_OK       = 0  // Successful execution
	EXIT_USAGE    = 64 // Command line usage error
	EXIT_DATAERR  = 65 // Parse or static error in the input program
	EXIT_SOFTWARE = 70 // Runtime error during execution
)

// Color definitions for file execution output
// These colors are used to provide visual feedback during file execution:
// - redColor: Error messages and critical failures
// - yellowColor: Normal output and results
// - cyanColor: Informational messages
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main is the entry point of the go-lox interpreter.
// It determines the operating mode based on command-line arguments:
//
// Usage:
//
//	go-lox              - Start in REPL (interactive) mode
//	go-lox <filename>   - Execute the specified Lox source file
//	go-lox --ast <file> - Parse a file and dump its AST
//	go-lox --help       - Display help information
//	go-lox --version    - Display version information
func main() {
	args := os.Args[1:]

	if len(args) > 0 {
		arg := args[0]

		// Handle --help flag
		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(EXIT_OK)
		}

		// Handle --version flag
		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(EXIT_OK)
		}

		// AST mode: parse a file and dump the tree
		if arg == "--ast" {
			if len(args) != 2 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] Usage: go-lox --ast <path-to-file>\n")
				os.Exit(EXIT_USAGE)
			}
			os.Exit(dumpFileAST(args[1]))
		}

		// File mode takes exactly one script path
		if len(args) > 1 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] Usage: go-lox [path-to-file]\n")
			os.Exit(EXIT_USAGE)
		}
		os.Exit(runFile(arg))
	}

	// REPL mode: Start interactive interpreter
	// Create a new REPL instance with banner, version info, and prompt
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	// Start the REPL loop, reading from stdin and writing to stdout
	repler.Start(os.Stdin, os.Stdout)
}

// showHelp displays the help information for the go-lox interpreter
func showHelp() {
	cyanColor.Println("go-lox - A Tree-Walking Interpreter for the Lox Language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  go-lox                    Start interactive REPL mode")
	yellowColor.Println("  go-lox <path-to-file>     Execute a Lox file (.lox)")
	yellowColor.Println("  go-lox --ast <file>       Parse a file and dump its AST")
	yellowColor.Println("  go-lox --help             Display this help message")
	yellowColor.Println("  go-lox --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                     Exit the REPL")
	cyanColor.Println("")
	cyanColor.Println("EXIT CODES:")
	yellowColor.Println("  0   success")
	yellowColor.Println("  64  usage error")
	yellowColor.Println("  65  parse or static error")
	yellowColor.Println("  70  runtime error")
}

// showVersion displays the version information for the go-lox interpreter
func showVersion() {
	cyanColor.Println("go-lox - A Tree-Walking Interpreter for the Lox Language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes a Lox source file.
// It handles the complete file execution pipeline:
// 1. Read the file from disk
// 2. Run the source through parse, resolve, evaluate
// 3. Report diagnostics and produce the exit code
func runFile(fileName string) int {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		// Display file read error in red and exit
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		return 1
	}

	return runSource(string(fileContent), os.Stdout)
}

// runSource drives the full pipeline for a source string: parse, resolve,
// evaluate. Diagnostics go to stderr in red; program output goes to the
// given writer. The returned value is the process exit code.
func runSource(source string, writer io.Writer) int {
	// Parse the source code into an Abstract Syntax Tree (AST)
	par := parser.NewParser(source)
	rootNode := par.Parse()

	// Check for parser errors
	// The parser collects errors instead of panicking, allowing multiple
	// errors to be reported from a single run
	if par.HasErrors() {
		for _, parseErr := range par.GetErrors() {
			redColor.Fprintf(os.Stderr, "%s\n", parseErr.Error())
		}
		return EXIT_DATAERR
	}

	// Create the evaluator first: the resolver writes distances directly
	// into its side table
	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)

	// Resolve variable references; static errors halt before evaluation
	res := resolver.NewResolver(evaluator.Locals)
	res.Resolve(rootNode)
	if res.HasErrors() {
		for _, resolveErr := range res.GetErrors() {
			redColor.Fprintf(os.Stderr, "%s\n", resolveErr.Error())
		}
		return EXIT_DATAERR
	}

	// Evaluate the AST; a runtime error halts the program
	result := evaluator.Eval(rootNode)
	if eval.IsError(result) {
		redColor.Fprintf(os.Stderr, "%s\n", result.ToString())
		return EXIT_SOFTWARE
	}

	return EXIT_OK
}

// dumpFileAST parses a file and prints its AST as an indented tree.
// This is a debugging aid; no resolution or evaluation happens.
func dumpFileAST(fileName string) int {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		return 1
	}

	par := parser.NewParser(string(fileContent))
	rootNode := par.Parse()
	if par.HasErrors() {
		for _, parseErr := range par.GetErrors() {
			redColor.Fprintf(os.Stderr, "%s\n", parseErr.Error())
		}
		return EXIT_DATAERR
	}

	p := &PrintingVisitor{}
	p.VisitRootNode(rootNode)
	fmt.Print(p.Buf.String())
	return EXIT_OK
}

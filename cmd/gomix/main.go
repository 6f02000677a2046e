/*
File    : gomix-bc/cmd/gomix/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the gomix-bc interpreter: a
bc-like arbitrary-arithmetic calculator language read from standard
input, one expression/statement/function-definition at a time.
*/
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/gomix-bc/repl"
)

// VERSION is the current release of gomix-bc.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE specifies the software license.
var LICENSE = "MIT"

// PROMPT is the line shown before each piece of interactive input.
var PROMPT = "gomix> "

// BANNER is the ASCII logo shown when starting an interactive session.
var BANNER = `
   ____       __  __ _
  / ___| ___ |  \/  (_)_  __
 | |  _ / _ \| |\/| | \ \/ /
 | |_| | (_) | |  | | |>  <
  \____|\___/|_|  |_|_/_/\_\
`

// LINE is a separator used for visual formatting in banners.
var LINE = "----------------------------------------------------------------"

var cyanColor = color.New(color.FgCyan)
var yellowColor = color.New(color.FgYellow)

// main dispatches on a recognized command-line flag (--help or
// --version) and otherwise runs the REPL over stdin/stdout/stderr.
//
// Usage:
//
//	gomix              - read and evaluate a program from stdin
//	gomix --help       - display usage information
//	gomix --version    - display version information
//
// Unlike the teacher's main, there is no file-execution mode and no
// TCP server mode: this language's programs arrive exclusively as
// standard input (spec.md's CLI contract), and persisting or serving
// interpreter state across invocations is out of scope.
func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		}
	}

	repler := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	status := repler.Start(os.Stdin, os.Stdout, os.Stderr)
	os.Exit(status)
}

func showHelp() {
	cyanColor.Println("gomix-bc - a bc-like arbitrary-arithmetic calculator language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  gomix                  Read a program from stdin and evaluate it")
	yellowColor.Println("  gomix --help           Display this help message")
	yellowColor.Println("  gomix --version        Display version information")
	cyanColor.Println("")
	cyanColor.Println("INTERACTIVE SESSION:")
	yellowColor.Println("  Type your program, then press Ctrl-D to run it.")
	yellowColor.Println("  Type '.exit' on its own line to quit without running anything.")
	cyanColor.Println("")
	cyanColor.Println("PIPED INPUT:")
	yellowColor.Println("  gomix < program.bc")
	yellowColor.Println("  echo '1 + 2' | gomix")
}

func showVersion() {
	cyanColor.Println("gomix-bc - a bc-like arbitrary-arithmetic calculator language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

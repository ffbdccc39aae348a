/*
File    : go-graph/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Go-Graph evaluator.
It provides four modes of operation:
1. REPL Mode (default): Interactive Read-Eval-Print Loop
2. File Mode: Evaluate an expression file, one expression per line
3. Plot Mode: Sample an expression over an interval and print the points
4. Server Mode: Serve REPL sessions over TCP, one evaluator per client

The evaluator uses a lexer / parser-evaluator pipeline with an explicit
symbol table per session.
*/
package main

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/akashmaji946/go-graph/config"
	"github.com/akashmaji946/go-graph/eval"
	"github.com/akashmaji946/go-graph/file"
	"github.com/akashmaji946/go-graph/plot"
	"github.com/akashmaji946/go-graph/repl"
	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// VERSION represents the current version of the Go-Graph evaluator
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the author
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE specifies the software license (MIT License)
var LICENSE = "MIT"

// BANNER is the ASCII art logo displayed when starting the REPL
var BANNER = `
   ____           ____                 _
  / ___| ___     / ___|_ __ __ _ _ __ | |__
 | |  _ / _ \   | |  _| '__/ _' | '_ \| '_ \
 | |_| | (_) |  | |_| | | | (_| | |_) | | | |
  \____|\___/    \____|_|  \__,_| .__/|_| |_|
                                |_|
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// Color definitions for command-line output:
// - redColor: Error messages and critical failures
// - yellowColor: Normal output and results
// - cyanColor: Informational messages
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main is the entry point of the Go-Graph evaluator.
// It determines the operating mode based on command-line arguments:
//
// Usage:
//
//	go-graph                                 - Start in REPL mode
//	go-graph <filename>                      - Evaluate an expression file
//	go-graph plot "<expr>" <xmin> <xmax> <dx> - Print samples of <expr>
//	go-graph server <port>                   - Start a REPL server
//	go-graph --help                          - Display help information
//	go-graph --version                       - Display version information
func main() {
	cfg, err := config.Load(config.GetConfigPath())
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
		os.Exit(1)
	}

	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}

		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		// Server mode: serve REPL sessions over TCP
		if arg == "server" {
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing port for server mode. Usage: go-graph server <port>\n")
				os.Exit(1)
			}
			startServer(os.Args[2], cfg)
			return
		}

		// Plot mode: sample an expression and print the points
		if arg == "plot" {
			runPlot(os.Args[2:], cfg)
			return
		}

		// File mode: evaluate an expression file
		if err := file.Run(arg, os.Stdout); err != nil {
			redColor.Fprintf(os.Stderr, "[FILE ERROR] %v\n", err)
			os.Exit(1)
		}
	} else {
		// REPL mode: start the interactive evaluator
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, cfg)
		repler.Start(os.Stdout)
	}
}

// showHelp displays the help information for the Go-Graph evaluator
func showHelp() {
	cyanColor.Println("Go-Graph - An Arithmetic Expression Evaluator And Plotter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  go-graph                                    Start interactive REPL mode")
	yellowColor.Println("  go-graph <path-to-file>                     Evaluate an expression file")
	yellowColor.Println("  go-graph plot \"<expr>\" <xmin> <xmax> <dx>   Print (x, y) samples of <expr>")
	yellowColor.Println("  go-graph server <port>                      Start REPL server on a port")
	yellowColor.Println("  go-graph --help                             Display this help message")
	yellowColor.Println("  go-graph --version                          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit .help .vars .clear .plot")
	cyanColor.Println("")
	cyanColor.Println("EXAMPLES:")
	yellowColor.Println("  go-graph")
	yellowColor.Println("  go-graph plot \"sin(x)*x\" -6.28 6.28 0.1")
	yellowColor.Println("  go-graph server 8080")
}

// showVersion displays the version information for the Go-Graph evaluator
func showVersion() {
	cyanColor.Println("Go-Graph - An Arithmetic Expression Evaluator And Plotter")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runPlot handles 'go-graph plot "<expr>" <xmin> <xmax> <dx>': it samples
// the expression and prints one x/y pair per line, tab-separated, so the
// output pipes cleanly into external plotting tools.
func runPlot(args []string, cfg *config.Config) {
	if len(args) != 4 {
		redColor.Fprintf(os.Stderr, "[USAGE ERROR] Usage: go-graph plot \"<expr>\" <xmin> <xmax> <dx>\n")
		os.Exit(1)
	}

	expr := args[0]
	xMin, errA := strconv.ParseFloat(args[1], 64)
	xMax, errB := strconv.ParseFloat(args[2], 64)
	dx, errC := strconv.ParseFloat(args[3], 64)
	if errA != nil || errB != nil || errC != nil {
		redColor.Fprintf(os.Stderr, "[USAGE ERROR] xmin, xmax and dx must be numbers\n")
		os.Exit(1)
	}

	sampler := plot.NewSampler(eval.NewEvaluator())
	points, err := sampler.Sample(expr, xMin, xMax, dx)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[PLOT ERROR] %v\n", err)
		os.Exit(1)
	}
	if points == nil {
		redColor.Fprintf(os.Stderr, "[PLOT ERROR] expression does not mention x\n")
		os.Exit(1)
	}

	for _, point := range points {
		fmt.Printf("%g\t%g\n", point.X, point.Y)
	}

	printer := message.NewPrinter(language.English)
	cyanColor.Fprintf(os.Stderr, "%s\n", printer.Sprintf("plotted %d points", len(points)))
}

// startServer initializes and runs the Go-Graph REPL server.
// It listens on the specified port for incoming TCP connections.
// Each connection is handled in a separate goroutine with its own
// evaluator, so sessions never share a symbol table.
//
// Parameters:
//
//	port - The network port to listen on (e.g. "8080")
func startServer(port string, cfg *config.Config) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("Go-Graph REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn, cfg)
	}
}

// handleClient manages a single client connection for the REPL server.
// It runs a plain line-oriented session over the connection; readline is
// only used for the local terminal.
func handleClient(conn net.Conn, cfg *config.Config) {
	defer conn.Close()
	cyanColor.Printf("New client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, cfg)
	repler.StartOn(conn, conn)
	cyanColor.Printf("Client disconnected from %s\n", conn.RemoteAddr())
}

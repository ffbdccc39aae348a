/*
File    : go-graph/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the Go-Graph
evaluator. The REPL provides an interactive environment where users can:
- Enter arithmetic expressions and assignments line by line
- See immediate results of their input
- Navigate command history using arrow keys
- Plot an expression over an interval as a table of samples
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing
capabilities and drives the lexer and parser-evaluator directly.
*/
package repl

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/akashmaji946/go-graph/config"
	"github.com/akashmaji946/go-graph/eval"
	"github.com/akashmaji946/go-graph/lexer"
	"github.com/akashmaji946/go-graph/objects"
	"github.com/akashmaji946/go-graph/plot"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output
// These colors provide visual feedback to enhance user experience:
// - blueColor: Decorative lines and separators
// - yellowColor: Expression results and version info
// - redColor: Error messages and warnings
// - greenColor: Banner and success messages
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance.
// It encapsulates all the configuration needed to run an interactive
// session.
type Repl struct {
	Banner  string         // ASCII art banner displayed at startup
	Version string         // Version string of the evaluator
	Author  string         // Author contact information
	Line    string         // Separator line for visual formatting
	License string         // Software license information
	Cfg     *config.Config // Prompt, colors, default plot interval
}

// NewRepl creates and initializes a new REPL instance.
//
// Parameters:
//
//	banner  - ASCII art logo to display at startup
//	version - Version string of the evaluator
//	author  - Author contact information
//	line    - Separator line for formatting
//	license - Software license information
//	cfg     - Loaded configuration (prompt, colors, plot defaults)
//
// Returns:
//
//	A pointer to a newly created Repl instance
func NewRepl(banner string, version string, author string, line string, license string, cfg *config.Config) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Cfg: cfg}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
//
// Parameters:
//
//	writer - The io.Writer to output the banner to (typically os.Stdout)
func (r *Repl) PrintBannerInfo(writer io.Writer) {

	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)

	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)

	cyanColor.Fprintf(writer, "%s\n", "Welcome to Go-Graph!")
	cyanColor.Fprintf(writer, "%s\n", "Type an expression and press enter, e.g. 1 + 2 * 3 or a = sin(pi)")
	cyanColor.Fprintf(writer, "%s\n", "Type '.plot x^2 -2 2 0.5' to sample a curve, '.help' for all commands")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the interactive REPL main loop on the controlling
// terminal:
// 1. Displays the welcome banner
// 2. Sets up readline for line editing and history
// 3. Creates an evaluator instance
// 4. Enters the main read-eval-print loop
// 5. Processes user input until exit
//
// The loop continues until:
// - User types '.exit'
// - EOF is encountered (Ctrl+D)
// - An error occurs in readline
//
// Parameters:
//
//	writer - Output destination (typically os.Stdout)
func (r *Repl) Start(writer io.Writer) {

	if !r.Cfg.Repl.ColorOutput {
		color.NoColor = true
	}

	if r.Cfg.Repl.ShowBanner {
		r.PrintBannerInfo(writer)
	}

	rl, err := readline.New(r.Cfg.Repl.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or error occurred (e.g. Ctrl+D pressed)
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}

		rl.SaveHistory(line)

		if !r.handleLine(writer, line, evaluator) {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
	}
}

// StartOn runs the same read-eval-print loop over an arbitrary
// reader/writer pair, without readline. This is what the TCP server
// uses: the network connection is both input and output, and each
// session gets its own evaluator so connections never share variables.
//
// Parameters:
//
//	reader - Input source (e.g. a net.Conn)
//	writer - Output destination (e.g. the same net.Conn)
func (r *Repl) StartOn(reader io.Reader, writer io.Writer) {

	if r.Cfg.Repl.ShowBanner {
		r.PrintBannerInfo(writer)
	}

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)

	scanner := bufio.NewScanner(reader)
	for {
		io.WriteString(writer, r.Cfg.Repl.Prompt)
		if !scanner.Scan() {
			io.WriteString(writer, "Good Bye!\n")
			break
		}

		line := strings.Trim(scanner.Text(), " \n\t\r")
		if line == "" {
			continue
		}

		if !r.handleLine(writer, line, evaluator) {
			io.WriteString(writer, "Good Bye!\n")
			break
		}
	}
}

// handleLine processes one input line: a dot-command or an expression.
// It returns false when the session should end.
func (r *Repl) handleLine(writer io.Writer, line string, evaluator *eval.Evaluator) bool {
	if strings.HasPrefix(line, ".") {
		return r.handleCommand(writer, line, evaluator)
	}
	r.executeWithRecovery(writer, line, evaluator)
	return true
}

// handleCommand dispatches the dot-commands of the REPL.
//
// Supported commands:
//   - .exit          End the session
//   - .help          Show the command list
//   - .vars          List the bound variables
//   - .clear         Clear every variable binding
//   - .plot          Sample an expression (or coefficient list) over an
//     interval and print the points
func (r *Repl) handleCommand(writer io.Writer, line string, evaluator *eval.Evaluator) bool {
	command := line
	rest := ""
	if idx := strings.IndexAny(line, " \t"); idx >= 0 {
		command = line[:idx]
		rest = strings.TrimSpace(line[idx:])
	}

	switch command {
	case ".exit":
		return false

	case ".help":
		cyanColor.Fprintln(writer, "Commands:")
		yellowColor.Fprintln(writer, "  .exit                          End the session")
		yellowColor.Fprintln(writer, "  .help                          Show this help")
		yellowColor.Fprintln(writer, "  .vars                          List bound variables")
		yellowColor.Fprintln(writer, "  .clear                         Clear all variables")
		yellowColor.Fprintln(writer, "  .plot <expr> [xmin xmax dx]    Sample <expr> over the interval")
		cyanColor.Fprintln(writer, "Anything else is evaluated as an expression; 'name = expr' assigns.")

	case ".vars":
		names := evaluator.Scp.Names()
		if len(names) == 0 {
			cyanColor.Fprintln(writer, "no variables bound")
			break
		}
		for _, name := range names {
			value, _ := evaluator.Scp.LookUp(name)
			yellowColor.Fprintf(writer, "%s = %s\n", name, objects.NumberToString(value))
		}

	case ".clear":
		evaluator.ClearVariables()
		cyanColor.Fprintln(writer, "variables cleared")

	case ".plot":
		r.plotCommand(writer, rest)

	default:
		redColor.Fprintf(writer, "Unknown command: %s\n", command)
		cyanColor.Fprintln(writer, "Type .help for available commands")
	}
	return true
}

// plotCommand parses '.plot <expr> [xmin xmax dx]' arguments, samples
// the expression, and prints the resulting points. When the trailing
// three fields do not parse as numbers they are treated as part of the
// expression and the configured default interval is used. Input that
// never mentions x is interpreted as a comma- or semicolon-separated
// polynomial coefficient list, highest degree first.
//
// Sampling clears its symbol table, so it runs on a dedicated evaluator:
// the session's variables survive a .plot.
func (r *Repl) plotCommand(writer io.Writer, args string) {
	if args == "" {
		redColor.Fprintln(writer, "usage: .plot <expr> [xmin xmax dx]")
		return
	}

	expr := args
	xMin := r.Cfg.Plot.XMin
	xMax := r.Cfg.Plot.XMax
	dx := r.Cfg.Plot.Dx

	fields := strings.Fields(args)
	if len(fields) >= 4 {
		a, errA := strconv.ParseFloat(fields[len(fields)-3], 64)
		b, errB := strconv.ParseFloat(fields[len(fields)-2], 64)
		c, errC := strconv.ParseFloat(fields[len(fields)-1], 64)
		if errA == nil && errB == nil && errC == nil {
			expr = strings.Join(fields[:len(fields)-3], " ")
			xMin, xMax, dx = a, b, c
		}
	}

	var points []plot.Point

	tokens, lexErr := lexer.Lex(expr)
	if lexErr == nil && plot.MentionsX(tokens) {
		sampler := plot.NewSampler(eval.NewEvaluator())
		sampled, err := sampler.Sample(expr, xMin, xMax, dx)
		if err != nil {
			redColor.Fprintf(writer, "[PLOT ERROR] %v\n", err)
			return
		}
		points = sampled
	} else {
		coefficients, err := plot.ParseCoefficients(expr)
		if err != nil {
			if lexErr != nil {
				redColor.Fprintf(writer, "[PLOT ERROR] %v\n", lexErr)
			} else {
				redColor.Fprintf(writer, "[PLOT ERROR] expression has no x and is not a coefficient list: %v\n", err)
			}
			return
		}
		sampled, err := plot.SamplePolynomial(coefficients, xMin, xMax, dx)
		if err != nil {
			redColor.Fprintf(writer, "[PLOT ERROR] %v\n", err)
			return
		}
		points = sampled
	}

	if len(points) == 0 {
		cyanColor.Fprintln(writer, "no points to plot")
		return
	}

	shown := points
	if max := r.Cfg.Plot.MaxSamples; max > 0 && len(shown) > max {
		shown = shown[:max]
	}
	for _, point := range shown {
		yellowColor.Fprintf(writer, "%12g  %14g\n", point.X, point.Y)
	}
	if len(shown) < len(points) {
		cyanColor.Fprintf(writer, "... and %d more points\n", len(points)-len(shown))
	}
	cyanColor.Fprintf(writer, "plotted %d points over [%g, %g]\n", len(points), xMin, xMax)
}

// executeWithRecovery evaluates one expression with panic recovery.
// Unlike file execution mode, the REPL continues running after errors,
// allowing users to correct mistakes and try again.
//
// Parameters:
//
//	writer    - Output destination for results and errors
//	line      - The user's input line to evaluate
//	evaluator - The evaluator instance (keeps variables across lines)
//
// Error Handling:
//   - Panics: Caught and displayed as runtime errors, REPL continues
//   - Lex/parse/eval errors: Displayed in red, REPL continues
//   - Success: Result displayed in yellow
func (r *Repl) executeWithRecovery(writer io.Writer, line string, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	value, err := evaluator.EvaluateString(line)
	if err != nil {
		redColor.Fprintf(writer, "[EVAL ERROR] %v\n", err)
		return
	}

	yellowColor.Fprintf(writer, "%s\n", objects.NumberToString(value))
}

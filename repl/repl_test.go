/*
File    : go-graph/repl/repl_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akashmaji946/go-graph/config"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

// runSession drives a scripted session through StartOn and returns the
// output. Colors are disabled so the output is plain text.
func runSession(t *testing.T, input string) string {
	t.Helper()

	color.NoColor = true
	cfg := config.DefaultConfig()
	cfg.Repl.ShowBanner = false
	cfg.Repl.Prompt = "> "

	r := NewRepl("", "test", "test", "----", "MIT", cfg)

	var out bytes.Buffer
	r.StartOn(strings.NewReader(input), &out)
	return out.String()
}

// TestRepl_EvaluatesExpressions tests evaluation, assignment persistence
// and error reporting across one session.
func TestRepl_EvaluatesExpressions(t *testing.T) {
	output := runSession(t, "1 + 2 * 3\na = 5\na * 2\n1 / 0\n.exit\n")

	assert.Contains(t, output, "7\n")
	assert.Contains(t, output, "5\n")
	assert.Contains(t, output, "10\n")
	assert.Contains(t, output, "[EVAL ERROR] division by zero")
	assert.Contains(t, output, "Good Bye!")
}

// TestRepl_VarsAndClear tests the .vars and .clear commands.
func TestRepl_VarsAndClear(t *testing.T) {
	output := runSession(t, "a = 1\nb = 2.5\n.vars\n.clear\n.vars\n.exit\n")

	assert.Contains(t, output, "a = 1")
	assert.Contains(t, output, "b = 2.5")
	assert.Contains(t, output, "variables cleared")
	assert.Contains(t, output, "no variables bound")
}

// TestRepl_PlotExpression tests the .plot command with an explicit
// interval.
func TestRepl_PlotExpression(t *testing.T) {
	output := runSession(t, ".plot x^2 -2 2 1\n.exit\n")

	assert.Contains(t, output, "plotted 5 points over [-2, 2]")
	assert.Contains(t, output, "4") // endpoints evaluate to 4
}

// TestRepl_PlotKeepsSessionVariables tests that sampling runs on its own
// evaluator: the session's bindings survive a .plot.
func TestRepl_PlotKeepsSessionVariables(t *testing.T) {
	output := runSession(t, "a = 7\n.plot x^2 -2 2 1\n.vars\n.exit\n")

	assert.Contains(t, output, "a = 7")
}

// TestRepl_PlotPolynomialFallback tests that plot input without x is
// read as a coefficient list.
func TestRepl_PlotPolynomialFallback(t *testing.T) {
	output := runSession(t, ".plot 1,0,0 -2 2 1\n.exit\n")

	assert.Contains(t, output, "plotted 5 points over [-2, 2]")
}

// TestRepl_PlotRejectsUnplottable tests the error path for input that
// neither mentions x nor parses as coefficients.
func TestRepl_PlotRejectsUnplottable(t *testing.T) {
	output := runSession(t, ".plot y+1 -2 2 1\n.exit\n")

	assert.Contains(t, output, "[PLOT ERROR]")
}

// TestRepl_UnknownCommand tests the fallback for unknown dot-commands.
func TestRepl_UnknownCommand(t *testing.T) {
	output := runSession(t, ".nope\n.exit\n")

	assert.Contains(t, output, "Unknown command: .nope")
}

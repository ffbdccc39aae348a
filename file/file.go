/*
File    : go-graph/file/file.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package file implements batch evaluation of expression files.
// A file holds one expression per line; blank lines and lines starting
// with '#' are skipped. All lines share one evaluator, so assignments on
// earlier lines are visible to later ones.
package file

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akashmaji946/go-graph/eval"
	"github.com/akashmaji946/go-graph/objects"
	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Color definitions for batch output:
// - yellowColor: Per-line results
// - cyanColor: The closing summary
var (
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// Run reads an expression file and evaluates it line by line, printing
// each result to writer. Evaluation stops at the first failing line.
//
// Parameters:
//   - fileName: Path to the expression file
//   - writer: Output destination for results and the summary
//
// Returns:
//   - error: A read error, or the first evaluation error annotated with
//     its line number
func Run(fileName string, writer io.Writer) error {
	content, err := os.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("could not read file '%s': %w", fileName, err)
	}

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)

	count := 0
	for number, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		value, err := evaluator.EvaluateString(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", number+1, err)
		}

		yellowColor.Fprintf(writer, "%s\n", objects.NumberToString(value))
		count++
	}

	// Thousands-separated count for large batches
	printer := message.NewPrinter(language.English)
	cyanColor.Fprintf(writer, "%s\n", printer.Sprintf("evaluated %d expressions", count))
	return nil
}

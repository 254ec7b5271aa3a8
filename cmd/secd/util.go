package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"

	"github.com/secdlisp/secd/errors"
)

var red = color.New(color.FgRed).SprintFunc()

func fatal(msg interface{}) {
	var s string
	switch msg := msg.(type) {
	case string:
		s = msg
	case error:
		s = msg.Error()
	default:
		s = fmt.Sprintf("%v", msg)
	}
	fmt.Fprintf(os.Stderr, "%s\n", red(s))
	os.Exit(1)
}

func isTerminalIO() bool {
	stdin := os.Stdin.Fd()
	stdout := os.Stdout.Fd()
	inTerm := isatty.IsTerminal(stdin) || isatty.IsCygwinTerminal(stdin)
	outTerm := isatty.IsTerminal(stdout) || isatty.IsCygwinTerminal(stdout)
	return inTerm && outTerm
}

// formatError renders err as one or more diagnostics, always ending in a
// newline.
func formatError(err error, useColor bool) string {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		switch len(merr.Errors) {
		case 0:
		case 1:
			err = merr.Errors[0]
		default:
			formatted := make([]*errors.FormattedError, 0, len(merr.Errors))
			for _, e := range merr.Errors {
				var fe errors.FormattableError
				if errors.As(e, &fe) {
					formatted = append(formatted, fe.ToFormatted())
				} else {
					formatted = append(formatted, &errors.FormattedError{Message: e.Error()})
				}
			}
			return errors.NewFormatter(useColor).FormatMultiple(formatted)
		}
	}
	out := errors.Friendly(err, useColor)
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}

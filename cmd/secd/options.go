package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/secdlisp/secd"
)

func (a *app) secdOptions(filename string) []secd.Option {
	opts := []secd.Option{
		secd.WithMaxDepth(a.v.GetInt("max-depth")),
	}
	if filename != "" {
		opts = append(opts, secd.WithFilename(filename))
	}
	// The environment can only come from the config file
	if env := a.v.GetStringMap("env"); len(env) > 0 {
		opts = append(opts, secd.WithEnv(env))
	}
	return opts
}

func (a *app) shouldRunRepl(cmd *cobra.Command, args []string) bool {
	if a.v.GetBool("stdin") {
		return false
	}
	if cmd.Flags().Changed("code") {
		return false
	}
	if len(args) > 0 {
		return false
	}
	return isTerminalIO()
}

// getSource determines what source is to be processed. There are three
// possibilities:
//  1. --code <code>
//  2. --stdin (read source from stdin)
//  3. path as args[0]
//
// When none is given and stdinFallback is set, stdin is read. The returned
// filename is empty unless the source came from a file.
func (a *app) getSource(cmd *cobra.Command, args []string, stdinFallback bool) (string, string, error) {
	codeFlagSet := cmd.Flags().Changed("code")
	stdinFlagSet := a.v.GetBool("stdin")
	pathSupplied := len(args) > 0

	count := 0
	for _, set := range []bool{codeFlagSet, stdinFlagSet, pathSupplied} {
		if set {
			count++
		}
	}
	switch {
	case count > 1:
		return "", "", fmt.Errorf("multiple input sources specified")
	case count == 0 && !stdinFallback:
		return "", "", fmt.Errorf("no input provided")
	}

	switch {
	case pathSupplied:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", err
		}
		return string(data), args[0], nil
	case codeFlagSet:
		return a.v.GetString("code"), "", nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", err
		}
		return string(data), "", nil
	}
}

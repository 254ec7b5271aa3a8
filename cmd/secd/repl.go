package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"
	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/secdlisp/secd"
	"github.com/secdlisp/secd/errors"
)

const (
	prompt         = "secd> "
	maxHistorySize = 1000
)

// lineReader yields one line of input per call. It returns io.EOF when the
// user ends the session.
type lineReader interface {
	ReadLine() (string, error)
}

func (a *app) runRepl(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	historyPath := a.historyPath()
	history := loadHistory(historyPath)

	var lines lineReader
	if isTerminalIO() {
		fmt.Fprintf(out, "secd %s; enter a blank line or Ctrl-D to exit\n", version)
		lines = newKeyboardReader(out, history)
	} else {
		lines = &scannerReader{scanner: bufio.NewScanner(cmd.InOrStdin())}
	}

	session := secd.NewSession(a.secdOptions("")...)
	defer session.Close()

	ctx := cmd.Context()
	for {
		if ctx != nil && ctx.Err() != nil {
			break
		}
		line, err := lines.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		result, err := session.Rep(line)
		if errors.Is(err, secd.ErrEmptyInput) {
			break
		}
		history = append(history, line)
		if err != nil {
			fmt.Fprint(errOut, formatError(err, !color.NoColor))
			continue
		}
		fmt.Fprintln(out, result)
	}
	log.Debug().Int("forms", session.Count()).Msg("session ended")
	return saveHistory(historyPath, history)
}

func (a *app) historyPath() string {
	path := a.v.GetString("history-file")
	if path == "" {
		return ""
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("cannot expand history path")
		return ""
	}
	return expanded
}

func loadHistory(path string) []string {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("cannot read history")
		}
		return nil
	}
	var history []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			history = append(history, line)
		}
	}
	return history
}

func saveHistory(path string, history []string) error {
	if path == "" {
		return nil
	}
	if len(history) > maxHistorySize {
		history = history[len(history)-maxHistorySize:]
	}
	var b strings.Builder
	for _, line := range history {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return os.WriteFile(path, []byte(b.String()), 0o600)
}

type scannerReader struct {
	scanner *bufio.Scanner
}

func (r *scannerReader) ReadLine() (string, error) {
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// keyboardReader edits a line in raw terminal mode. Up and Down walk the
// history.
type keyboardReader struct {
	out     io.Writer
	history []string
}

// newKeyboardReader returns a reader that owns a copy of history.
func newKeyboardReader(out io.Writer, history []string) *keyboardReader {
	return &keyboardReader{out: out, history: slices.Clone(history)}
}

func (r *keyboardReader) ReadLine() (string, error) {
	fmt.Fprint(r.out, prompt)
	var line []rune
	index := len(r.history)
	done := false
	redraw := func() {
		fmt.Fprintf(r.out, "\r\033[K%s%s", prompt, string(line))
	}
	err := keyboard.Listen(func(key keys.Key) (bool, error) {
		switch key.Code {
		case keys.CtrlC, keys.CtrlD:
			done = true
			return true, nil
		case keys.Enter:
			return true, nil
		case keys.Backspace, keys.CtrlH:
			if len(line) > 0 {
				line = line[:len(line)-1]
				redraw()
			}
		case keys.Up:
			if index > 0 {
				index--
				line = []rune(r.history[index])
				redraw()
			}
		case keys.Down:
			if index < len(r.history)-1 {
				index++
				line = []rune(r.history[index])
			} else {
				index = len(r.history)
				line = nil
			}
			redraw()
		case keys.RuneKey, keys.Space, keys.Tab:
			runes := key.Runes
			if key.Code == keys.Tab {
				runes = []rune{' '}
			}
			line = append(line, runes...)
			fmt.Fprint(r.out, string(runes))
		}
		return false, nil
	})
	fmt.Fprint(r.out, "\r\n")
	if err != nil {
		return "", err
	}
	if done {
		return "", io.EOF
	}
	text := string(line)
	if strings.TrimSpace(text) != "" {
		r.history = append(r.history, text)
	}
	return text, nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/secdlisp/secd"
	"github.com/secdlisp/secd/dis"
	"github.com/secdlisp/secd/object"
)

func (a *app) readCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read [file]",
		Short: "Read forms and print them back",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, filename, err := a.getSource(cmd, args, false)
			if err != nil {
				return err
			}
			arena := object.NewArena()
			defer arena.Close()

			forms, readErr := secd.ReadAll(source, arena, a.secdOptions(filename)...)
			results := make([]any, 0, len(forms))
			lines := make([]string, 0, len(forms))
			for _, form := range forms {
				value, err := arena.Interface(form)
				if err != nil {
					return err
				}
				results = append(results, value)
				lines = append(lines, arena.Render(form))
			}
			text := func() string { return strings.Join(lines, "\n") }
			if err := writeOutput(cmd.OutOrStdout(), a.v.GetString("output"), results, text); err != nil {
				return err
			}
			return readErr
		},
	}
}

func (a *app) compileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile [file]",
		Short: "Compile each form and print its instruction list",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCompile(cmd, args, false)
		},
	}
}

type compiledForm struct {
	Form string `json:"form"`
	Code any    `json:"code"`
}

func (a *app) runCompile(cmd *cobra.Command, args []string, stdinFallback bool) error {
	source, filename, err := a.getSource(cmd, args, stdinFallback)
	if err != nil {
		return err
	}
	arena := object.NewArena()
	defer arena.Close()

	program, compileErr := secd.CompileAll(source, arena, a.secdOptions(filename)...)
	if program == nil {
		return compileErr
	}
	results := make([]compiledForm, 0, program.Len())
	for i := 0; i < program.Len(); i++ {
		code, err := arena.Interface(program.Code(i))
		if err != nil {
			return err
		}
		results = append(results, compiledForm{
			Form: arena.Render(program.Form(i)),
			Code: code,
		})
	}
	if err := writeOutput(cmd.OutOrStdout(), a.v.GetString("output"), results, program.String); err != nil {
		return err
	}
	return compileErr
}

type disassembledForm struct {
	Form         string            `json:"form"`
	Instructions []dis.Instruction `json:"instructions"`
}

func (a *app) disCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dis [file]",
		Short: "Disassemble the compiled form of each input form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, filename, err := a.getSource(cmd, args, false)
			if err != nil {
				return err
			}
			arena := object.NewArena()
			defer arena.Close()

			program, compileErr := secd.CompileAll(source, arena, a.secdOptions(filename)...)
			if program == nil {
				return compileErr
			}
			results := make([]disassembledForm, 0, program.Len())
			for i := 0; i < program.Len(); i++ {
				instructions, err := dis.Disassemble(arena, program.Code(i))
				if err != nil {
					return err
				}
				results = append(results, disassembledForm{
					Form:         arena.Render(program.Form(i)),
					Instructions: instructions,
				})
			}
			text := func() string {
				var b strings.Builder
				for i, r := range results {
					if i > 0 {
						b.WriteString("\n")
					}
					fmt.Fprintf(&b, "; %s\n", r.Form)
					dis.Print(r.Instructions, &b)
				}
				return strings.TrimSuffix(b.String(), "\n")
			}
			if err := writeOutput(cmd.OutOrStdout(), a.v.GetString("output"), results, text); err != nil {
				return err
			}
			return compileErr
		},
	}
}

func (a *app) replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRepl(cmd)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "secd %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

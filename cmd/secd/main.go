package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/secdlisp/secd/errors"
	"github.com/secdlisp/secd/parser"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app holds the configuration shared by all commands.
type app struct {
	v       *viper.Viper
	cfgFile string
}

var boundFlags = []string{
	"code",
	"stdin",
	"no-color",
	"output",
	"log-level",
	"max-depth",
	"history-file",
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:   "secd [file]",
		Short: "Read Lisp source and compile it to SECD instructions",
		Long: `Read Lisp source and compile it to SECD instructions.

With no input and an interactive terminal, an interactive session is started.
Otherwise each form of the input is compiled and its instruction list printed.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.shouldRunRepl(cmd, args) {
				return a.runRepl(cmd)
			}
			return a.runCompile(cmd, args, true)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.secd.yaml)")
	flags.StringP("code", "c", "", "Source code to process")
	flags.Bool("stdin", false, "Read source from stdin")
	flags.Bool("no-color", false, "Disable colored output")
	flags.StringP("output", "o", "text", "Output format (text or json)")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.Int("max-depth", parser.DefaultMaxDepth, "Maximum nesting depth of the source")
	flags.String("history-file", "~/.secd_history", "File used to persist REPL history")
	for _, name := range boundFlags {
		if err := a.v.BindPFlag(name, flags.Lookup(name)); err != nil {
			fatal(err)
		}
	}
	_ = root.RegisterFlagCompletionFunc("output",
		cobra.FixedCompletions(outputFormatsCompletion, cobra.ShellCompDirectiveNoFileComp))

	root.AddCommand(
		a.readCmd(),
		a.compileCmd(),
		a.disCmd(),
		a.replCmd(),
		versionCmd(),
	)
	return root
}

// initialize loads the config file and environment, then applies global
// flags.
func (a *app) initialize() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else if home, err := homedir.Dir(); err == nil {
		a.v.AddConfigPath(home)
		a.v.SetConfigName(".secd")
		a.v.SetConfigType("yaml")
	}
	a.v.SetEnvPrefix("secd")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	} else {
		log.Debug().Str("file", a.v.ConfigFileUsed()).Msg("using config file")
	}
	a.processGlobalFlags()
	return nil
}

// Reads global flags from Viper and adjusts the environment accordingly.
func (a *app) processGlobalFlags() {
	if a.v.GetBool("no-color") {
		color.NoColor = true
	}
	level, err := zerolog.ParseLevel(a.v.GetString("log-level"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: color.NoColor})
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprint(os.Stderr, formatError(err, !color.NoColor))
		os.Exit(1)
	}
}

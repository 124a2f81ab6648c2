package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/apperia-de/slogtune"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type options struct {
	verbose    []string
	debug      []string
	levelArgs  []string
	moduleBase string
	rootNS     string
	dir        string
	configFile string
	watch      bool
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "slogtune",
		Short: "Adjust per-namespace logging verbosity of a Go program",
		Long: `slogtune applies per-namespace log-level overrides to the hierarchical
logger registry of a program, resolved against its source tree.

A namespace is a dotted module hierarchy like "a.b.c" whereat the last part
"c" could be either the bottom module of the hierarchy or a function within
the module "b". Bracket notation like "a.[b,c.[d,e]]" resolves to
"a.b a.c.d a.c.e".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, o)
		},
	}

	registerFlags(cmd.Flags(), o)

	return cmd
}

func registerFlags(f *pflag.FlagSet, o *options) {
	// Array flags, not slice flags: namespaces may carry bracket groups like
	// "pkg.[app,web]" whose commas must survive parsing; each flag occurrence
	// contributes exactly one token.
	f.StringArrayVar(&o.verbose, "verbose", nil,
		`sets the logging level to INFO; a shortcut for "--set_logging_level INFO".
Bare --verbose applies to the root logger, --verbose=ns to the given namespace
(repeat the flag for further namespaces).`)
	f.StringArrayVar(&o.debug, "debug", nil,
		`sets the logging level to DEBUG; a shortcut for "--set_logging_level DEBUG".
Bare --debug applies to the root logger, --debug=ns to the given namespace
(repeat the flag for further namespaces).`)
	f.StringArrayVar(&o.levelArgs, "set_logging_level", nil,
		`sets logging levels from a token list "<LEVEL> [namespace|<LEVEL> ...]"; repeat the
flag once per token. <LEVEL> can be chosen from [CRITICAL, ERROR, WARNING, INFO, DEBUG,
NOTSET]; tokens are processed left to right and an upper-case token switches the
current level.`)
	f.StringVar(&o.moduleBase, "module", "", "base import path namespaces are resolved under")
	f.StringVar(&o.rootNS, "root", "", "root namespace prefixed to every given namespace")
	f.StringVar(&o.dir, "dir", ".", "directory the package resolution runs from")
	f.StringVar(&o.configFile, "config", "", "YAML override file to apply")
	f.BoolVar(&o.watch, "watch", false, "keep running and re-apply the override file on change (requires --config)")

	// A bare --verbose/--debug carries no namespaces and addresses the root
	// logger; pflag needs a non-empty no-option default for that, so a lone
	// blank is used and dropped again before applying.
	f.Lookup("verbose").NoOptDefVal = " "
	f.Lookup("debug").NoOptDefVal = " "
}

func run(cmd *cobra.Command, o *options) error {
	handleTermination()

	if o.watch && o.configFile == "" {
		return errors.New("--watch requires --config")
	}

	reg := slogtune.NewRegistry()
	applier := slogtune.NewApplier(reg, slogtune.NewSourceIntrospector(o.moduleBase, o.dir), &slogtune.ApplierOptions{
		RootNamespace: o.rootNS,
		Out:           cmd.OutOrStdout(),
	})

	if cmd.Flags().Changed("verbose") {
		if err := applier.Apply(slogtune.LevelInfo, cleanNamespaces(o.verbose)); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("debug") {
		if err := applier.Apply(slogtune.LevelDebug, cleanNamespaces(o.debug)); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("set_logging_level") {
		reqs, err := slogtune.ParseLevelArgs(o.levelArgs)
		if err != nil {
			return err
		}
		for _, req := range reqs {
			if err := applier.Apply(req.Level, req.Namespaces); err != nil {
				return err
			}
		}
	}

	if o.configFile != "" {
		cfg, err := slogtune.LoadConfig(o.configFile)
		if err != nil {
			return err
		}
		if err := applier.ApplyConfig(cfg); err != nil {
			return err
		}
		if o.watch {
			if _, err := applier.WatchConfig(o.configFile); err != nil {
				return err
			}
			select {} // runs until a termination signal
		}
	}
	return nil
}

// cleanNamespaces drops blank tokens, notably the no-option default of a bare
// --verbose or --debug.
func cleanNamespaces(namespaces []string) []string {
	cleaned := make([]string, 0, len(namespaces))
	for _, ns := range namespaces {
		if s := strings.TrimSpace(ns); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	return cleaned
}

// handleTermination performs an immediate, best-effort process exit on SIGINT
// or SIGTERM.
func handleTermination() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-c
		os.Exit(1)
	}()
}

// Package main is the entry point for the blocknav viewer.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dshills/blocknav/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var opts app.Options
	var showVersion bool
	exitCode := 0

	root := &cobra.Command{
		Use:   "blocknav [file]",
		Short: "Navigate a file block by block",
		Long: `Blocknav opens a file in a full-screen viewer and moves the cursor
between blocks, the runs of non-blank lines separated by blank lines.
With no file argument the document is read from standard input.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Printf("blocknav %s\n", version)
				fmt.Printf("Commit: %s\n", commit)
				fmt.Printf("Built: %s\n", date)
				return nil
			}

			// The viewer draws to stdout; it cannot run into a pipe.
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return errors.New("stdout is not a terminal")
			}
			if len(args) > 0 {
				opts.Path = args[0]
			} else if isatty.IsTerminal(os.Stdin.Fd()) {
				return errors.New("no file argument and nothing piped on stdin")
			}

			application, err := app.New(opts)
			if err != nil {
				return err
			}
			defer application.Shutdown()

			signals := make(chan os.Signal, 1)
			signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-signals
				application.Shutdown()
			}()

			if err := application.Run(); err != nil && !errors.Is(err, app.ErrQuit) {
				return err
			}
			return nil
		},
	}

	root.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to configuration file")
	root.Flags().StringVarP(&opts.KeymapPath, "keymap", "k", "", "path to keymap file")
	root.Flags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.Flags().BoolVarP(&showVersion, "version", "v", false, "show version information")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = 1
	}
	return exitCode
}

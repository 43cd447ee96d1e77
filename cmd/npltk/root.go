package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/npltk/internal/config"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	activeCfg config.Config
)

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "npltk",
		Short:         "Nepali text normalization and tokenization",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = loaded
			setupTracing(loaded.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newNormalizeCmd())
	cmd.AddCommand(newTokenizeCmd())
	cmd.AddCommand(newRulesCmd())

	return cmd
}

// setupTracing installs a log-based core tracer.
func setupTracing(level string) {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(traceLevel(level))
}

func traceLevel(l string) tracing.TraceLevel {
	switch strings.ToLower(l) {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}

// readInput returns the command's arguments joined by spaces, or else the
// contents of file inFile, or else everything readable from stdin.
func readInput(cmd *cobra.Command, args []string, inFile string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if inFile != "" {
		b, err := os.ReadFile(inFile)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(b), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

// withOutput calls write with the command's output, or with file outFile if
// given.
func withOutput(cmd *cobra.Command, outFile string, write func(io.Writer) error) error {
	if outFile == "" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Wrote: %s\n", outFile)
	return nil
}

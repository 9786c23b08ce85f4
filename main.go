package main

import (
	"fmt"
	"os"
	"strings"
	"txkv/kvstore"
	"txkv/observability"
	"txkv/processor"
	"txkv/query"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	scriptPath string
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "txkv",
		Short:        "In-memory key-value store with nested transactions",
		Long:         commandHelp(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a TOML config file")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Override the configured log level")
	cmd.Flags().StringVarP(&scriptPath, "script", "s", "", "Execute commands from a file ('-' for stdin) instead of the prompt")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	if err := setupLogging(cfg); err != nil {
		return err
	}

	proc := processor.New(kvstore.NewDefault(), cfg.Prompt)

	if scriptPath != "" {
		return runScriptFile(proc, scriptPath, cfg.Prompt)
	}

	return startRepl(proc, cfg)
}

func setupLogging(cfg Config) error {
	level, err := observability.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	if err := observability.SetOutput(cfg.LogFormat, os.Stderr); err != nil {
		return err
	}

	observability.SetLoggingLevel(level)

	log.Debug().
		Str("level", level.String()).
		Str("format", cfg.LogFormat).
		Msg("server: logging configured")

	return nil
}

func runScriptFile(proc *processor.Processor, path string, prompt string) error {
	if path == "-" {
		return runScript(proc, os.Stdin, os.Stdout, prompt)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("server: failed to open script: %w", err)
	}
	defer f.Close()

	return runScript(proc, f, os.Stdout, prompt)
}

func commandHelp() string {
	var b strings.Builder

	b.WriteString("An in-memory key-value store with nested transactions.\n\nCommands:\n")

	for _, cmdType := range query.CommandOrder {
		meta := query.CommandRegistry[cmdType]
		fmt.Fprintf(&b, "  %-20s %s\n", meta.Usage, meta.Description)
	}

	return b.String()
}

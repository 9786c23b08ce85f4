package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"txkv/processor"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
)

func startRepl(proc *processor.Processor, cfg Config) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            cfg.Prompt,
		HistoryFile:       cfg.HistoryFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "^D",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("server: failed to start prompt: %w", err)
	}
	defer l.Close()

	log.Info().
		Msg("server: session started")

	for {
		line, err := l.Readline()

		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return err
		}

		if response := proc.Execute(line); response != "" {
			fmt.Fprintln(l.Stdout(), response)
		}
	}

	log.Info().
		Msg("server: session closed")

	return nil
}

// runScript feeds every line of r to the processor and writes a transcript:
// the prompted input followed by its response, if any.
func runScript(proc *processor.Processor, r io.Reader, w io.Writer, prompt string) error {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()
		fmt.Fprintln(w, prompt+strings.TrimPrefix(line, prompt))

		if response := proc.Execute(line); response != "" {
			fmt.Fprintln(w, response)
		}
	}

	return scanner.Err()
}

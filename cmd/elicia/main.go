// Package main is the terminal front-end: a read-eval-print loop over
// the chat completion API.
package main

import (
	"fmt"
	"os"

	"github.com/elicia-ai/elicia/pkg/chat"
	"github.com/elicia-ai/elicia/pkg/config"
	"github.com/elicia-ai/elicia/pkg/logger"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New("info", "text", os.Stderr)

	client, err := chat.NewClient(chat.ClientConfig{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
		Logger:  log,
	})
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := runREPL(client, os.Stdin, os.Stdout); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

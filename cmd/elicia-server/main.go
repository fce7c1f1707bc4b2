// Package main is the web front-end: an HTTP host that owns chat
// sessions and streams assistant tokens over server-sent events.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/elicia-ai/elicia/pkg/chat"
	"github.com/elicia-ai/elicia/pkg/config"
	"github.com/elicia-ai/elicia/pkg/logger"
	"github.com/elicia-ai/elicia/pkg/webchat"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	serverCfg, err := config.LoadServerConfig("config.yaml")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(serverCfg.Logging.Level, serverCfg.Logging.Format, os.Stderr)

	client, err := chat.NewClient(chat.ClientConfig{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
		Logger:  log,
	})
	if err != nil {
		log.Fatalf("init chat client: %v", err)
	}

	assistant := webchat.NewAssistant(client, webchat.AssistantConfig{Logger: log})
	server := webchat.NewServer(assistant, log)

	log.WithField("listen", serverCfg.Listen).Infof("chat server listening (model=%s)", client.Model())
	if err := http.ListenAndServe(serverCfg.Listen, server.Routes()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

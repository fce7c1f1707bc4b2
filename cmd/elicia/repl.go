package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/elicia-ai/elicia/pkg/chat"
)

// systemPrompt is the fixed instruction for the terminal assistant.
const systemPrompt = "You are a helpful AI assistant."

// exitWords end the loop when entered on their own, in any letter case.
var exitWords = map[string]bool{
	"quit": true,
	"exit": true,
	"q":    true,
}

// runREPL runs the interactive loop until an exit word or EOF. A failed
// turn prints an error and keeps the loop alive; the only history
// mutation of a failed turn is the user message appended before the
// call.
func runREPL(completer chat.Completer, in io.Reader, out io.Writer) error {
	ctx := context.Background()
	conv := chat.NewConversation(systemPrompt)
	scanner := bufio.NewScanner(in)

	printWelcome(out)

	for {
		_, _ = fmt.Fprint(out, "\nYou: ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if exitWords[strings.ToLower(input)] {
			_, _ = fmt.Fprintln(out, "Goodbye!")
			break
		}
		if strings.HasPrefix(input, "/") {
			handleCommand(input, conv, out)
			continue
		}

		conv.AddUser(input)
		reply, err := completer.Complete(ctx, conv.Messages())
		if err != nil {
			_, _ = fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}

		conv.AddAssistant(reply)
		_, _ = fmt.Fprintf(out, "Agent: %s\n", reply)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func printWelcome(out io.Writer) {
	_, _ = fmt.Fprintln(out, "AI Agent Started! (Type 'quit' to exit)")
	_, _ = fmt.Fprintln(out, strings.Repeat("-", 50))
}

// handleCommand processes slash commands.
func handleCommand(input string, conv *chat.Conversation, out io.Writer) {
	switch strings.ToLower(input) {
	case "/help", "/h":
		printHelp(out)
	case "/clear", "/c":
		conv.Reset()
		_, _ = fmt.Fprintln(out, "Conversation history cleared.")
	default:
		_, _ = fmt.Fprintf(out, "Unknown command: %s. Type /help for available commands.\n", input)
	}
}

func printHelp(out io.Writer) {
	_, _ = fmt.Fprintln(out, "Commands:")
	_, _ = fmt.Fprintln(out, "  /help  - Show this help message")
	_, _ = fmt.Fprintln(out, "  /clear - Clear conversation history")
	_, _ = fmt.Fprintln(out, "Type quit, exit or q to leave.")
}

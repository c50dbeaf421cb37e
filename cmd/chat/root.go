package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gemini-chat/internal/chat"
	"gemini-chat/internal/client"
	"gemini-chat/internal/config"
	"gemini-chat/internal/tui"
)

var errConnectionFailed = errors.New("relay unreachable")

func newRootCmd() *cobra.Command {
	cfg := config.LoadClient()

	var (
		relayURL string
		once     string
	)

	cmd := &cobra.Command{
		Use:          "chat",
		Short:        "Chat with Gemini through the relay",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			relay := client.New(relayURL)
			if cmd.Flags().Changed("once") {
				return runOnce(cmd, relay, once)
			}
			return tui.Run(relay)
		},
	}

	cmd.Flags().StringVar(&relayURL, "url", cfg.RelayURL, "base URL of the chat relay (env RELAY_URL)")
	cmd.Flags().StringVar(&once, "once", "", "send a single message, print the reply and exit")

	return cmd
}

// runOnce submits one message and prints the bot's answer as rendered markdown.
func runOnce(cmd *cobra.Command, relay chat.Relay, text string) error {
	session := chat.NewSession(relay)
	if !session.Submit(context.Background(), text) {
		return errors.New("message is empty")
	}

	msgs := session.Messages()
	last := msgs[len(msgs)-1]
	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderMarkdown(last.Text, 80))

	if last.Text == chat.ConnectionFailedText {
		return errConnectionFailed
	}
	return nil
}

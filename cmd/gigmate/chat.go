package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/danialhaz/gigmate/internal/chat"
	"github.com/danialhaz/gigmate/internal/output"
	"github.com/danialhaz/gigmate/internal/types"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Read and send marketplace messages",
}

var chatListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your conversations",
	RunE:  runChatList,
}

var chatLogCmd = &cobra.Command{
	Use:   "log <conversation-id>",
	Short: "Show a conversation transcript",
	Args:  cobra.ExactArgs(1),
	RunE:  runChatLog,
}

var chatSendCmd = &cobra.Command{
	Use:   "send <conversation-id> <message>",
	Short: "Send a message",
	Args:  cobra.ExactArgs(2),
	RunE:  runChatSend,
}

var (
	chatFollow   bool
	chatInterval time.Duration
)

func init() {
	chatLogCmd.Flags().BoolVarP(&chatFollow, "follow", "f", false, "Keep polling for new messages until interrupted")
	chatLogCmd.Flags().DurationVar(&chatInterval, "interval", chat.DefaultInterval, "Poll interval with --follow")

	chatCmd.AddCommand(chatListCmd)
	chatCmd.AddCommand(chatLogCmd)
	chatCmd.AddCommand(chatSendCmd)
	rootCmd.AddCommand(chatCmd)
}

func runChatList(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	printer, err := newPrinter()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	conversations, err := client.Conversations(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list conversations: %w", err)
	}

	output.RenderConversations(os.Stdout, printer, conversations)
	return nil
}

func runChatLog(_ *cobra.Command, args []string) error {
	conversationID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid conversation id: %w", err)
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	printer, err := newPrinter()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}
	ctx := context.Background()

	if !chatFollow {
		messages, err := client.Messages(ctx, conversationID, nil)
		if err != nil {
			return fmt.Errorf("failed to fetch messages: %w", err)
		}
		for _, m := range messages {
			output.RenderMessage(printer, m)
		}
		return nil
	}

	poller := chat.NewPoller(client, conversationID, chat.Options{
		Interval: chatInterval,
		OnMessages: func(messages []types.Message) {
			for _, m := range messages {
				output.RenderMessage(printer, m)
			}
		},
		OnError: func(err error) {
			printer.Warning("refresh failed: %v", err)
		},
	})

	poller.Start(ctx)
	defer poller.Stop()

	printer.Print("%s", printer.Dim("following conversation, press Ctrl-C to stop"))
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	return nil
}

func runChatSend(_ *cobra.Command, args []string) error {
	conversationID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid conversation id: %w", err)
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	printer, err := newPrinter()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	msg, err := client.SendMessage(context.Background(), types.SendMessageRequest{
		ConversationID: conversationID,
		Body:           args[1],
	})
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	printer.Success("sent at %s", msg.SentAt.Format("15:04:05"))
	return nil
}

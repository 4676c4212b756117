package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/julianstephens/lifelog-cli/internal/constants"
	"github.com/julianstephens/lifelog-cli/internal/validation"
)

type ChatCmd struct {
	Send    ChatSendCmd    `cmd:"" help:"Send a message to the wellness coach."`
	History ChatHistoryCmd `cmd:"" help:"Show the conversation."`
	Clear   ChatClearCmd   `cmd:"" help:"Clear the conversation."`
}

type ChatSendCmd struct {
	Text []string `arg:"" help:"Message text."`
}

func (c *ChatSendCmd) Run(ctx *Context) error {
	text := strings.Join(c.Text, " ")
	if err := validation.ChatText(text); err != nil {
		return err
	}
	if _, err := ctx.Bootstrap(context.Background()); err != nil {
		return err
	}

	reply, res := ctx.Engine.SendChatMessage(context.Background(), text)
	fmt.Printf("coach: %s\n", reply.Text)
	Notify(res)
	return nil
}

type ChatHistoryCmd struct {
	Remote bool `help:"Re-fetch the conversation from the sync server first."`
}

func (c *ChatHistoryCmd) Run(ctx *Context) error {
	snap, err := ctx.Bootstrap(context.Background())
	if err != nil {
		return err
	}

	messages := snap.Messages
	if c.Remote {
		messages = ctx.Engine.RefreshChat(context.Background())
	}
	for _, m := range messages {
		who := "you"
		if m.From == constants.SenderAI {
			who = "coach"
		}
		fmt.Printf("%-5s  %s\n", who, m.Text)
	}
	return nil
}

type ChatClearCmd struct{}

func (c *ChatClearCmd) Run(ctx *Context) error {
	if _, err := ctx.Bootstrap(context.Background()); err != nil {
		return err
	}

	res := ctx.Engine.ClearChat(context.Background())
	fmt.Println("Conversation cleared.")
	Notify(res)
	return nil
}

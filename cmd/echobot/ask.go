package main

import (
	"context"
	"fmt"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"

	"github.com/iBotPeaches/telegram-bot-sdk/commands"
)

const chatActionRepeat = 5 * time.Second

// textGenerator is the slice of the generator the ask command needs.
type textGenerator interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// askCommand answers a one-shot question through the text generator, keeping
// the typing indicator alive while the model works.
type askCommand struct {
	generator textGenerator
	timeout   time.Duration
}

func newAskCommand(generator textGenerator, timeout time.Duration) *askCommand {
	return &askCommand{generator: generator, timeout: timeout}
}

func (c *askCommand) Name() string {
	return "ask"
}

func (c *askCommand) Aliases() []string {
	return []string{"a"}
}

func (c *askCommand) Description() string {
	return "Ask the resident language model a question"
}

func (c *askCommand) Handle(ctx context.Context, client commands.Client, update *models.Update, arguments string) (any, error) {
	if update == nil || update.Message == nil {
		return nil, commands.ErrNoMessage
	}

	l := log.With().
		Int("messageId", update.Message.ID).
		Int64("chatId", update.Message.Chat.ID).
		Str("command", c.Name()).
		Logger()

	l.Info().Msg("handling request")

	if arguments == "" {
		return nil, commands.Reply(ctx, client, update, "please input a prompt")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	go sendTyping(ctx, client, update.Message.Chat.ID)

	answer, err := c.generator.Ask(ctx, arguments)
	if err != nil {
		l.Error().Err(err).Msg("failed to generate answer")
		if replyErr := commands.Reply(ctx, client, update, fmt.Sprintf("failed to generate an answer: %s", err)); replyErr != nil {
			l.Error().Err(replyErr).Msg("failed to send error notice")
		}
		return nil, err
	}

	l.Debug().Msg("answer generated")

	if err := commands.Reply(ctx, client, update, answer); err != nil {
		l.Error().Err(err).Msg("failed to send reply")
		return nil, err
	}

	return answer, nil
}

// sendTyping keeps the typing indicator up until ctx is done. Telegram drops
// a chat action after a few seconds, so it is re-sent on an interval.
func sendTyping(ctx context.Context, client commands.Client, chatID int64) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		_, err := client.SendChatAction(ctx, &bot.SendChatActionParams{
			ChatID: chatID,
			Action: models.ChatActionTyping,
		})
		if err != nil {
			log.Err(err).Msg("error sending chat action")
			return
		}

		time.Sleep(chatActionRepeat)
	}
}

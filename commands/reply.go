package commands

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// TelegramMessageLimit is the longest text Telegram accepts in a single
// message. Longer replies are sent as consecutive chunks.
const TelegramMessageLimit = 4096

// Reply sends text to the update's chat as a reply to the triggering message,
// splitting it into messages within the Telegram length limit.
func Reply(ctx context.Context, client Client, update *models.Update, text string) error {
	if update == nil || update.Message == nil {
		return ErrNoMessage
	}

	message := update.Message
	for _, chunk := range splitMessage(text) {
		_, err := client.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: message.Chat.ID,
			Text:   chunk,
			ReplyParameters: &models.ReplyParameters{
				MessageID: message.ID,
				ChatID:    message.Chat.ID,
			},
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// splitMessage cuts text into chunks of at most TelegramMessageLimit runes,
// never splitting inside a rune.
func splitMessage(text string) []string {
	runes := []rune(text)
	if len(runes) <= TelegramMessageLimit {
		return []string{text}
	}

	var chunks []string
	for len(runes) > TelegramMessageLimit {
		chunks = append(chunks, string(runes[:TelegramMessageLimit]))
		runes = runes[TelegramMessageLimit:]
	}

	return append(chunks, string(runes))
}

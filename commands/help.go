package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

// HelpCommand replies with the list of registered commands. It reads the
// same registry the bus dispatches from, so the listing always reflects the
// current registrations. Registered under /help and /start, it also works as
// the bus fallback for unknown commands.
type HelpCommand struct {
	registry *Registry
}

// NewHelpCommand builds a help command over registry.
func NewHelpCommand(registry *Registry) *HelpCommand {
	return &HelpCommand{registry: registry}
}

func (h *HelpCommand) Name() string {
	return "help"
}

func (h *HelpCommand) Aliases() []string {
	return []string{"start"}
}

func (h *HelpCommand) Description() string {
	return "List the commands this bot understands"
}

// Handle replies with one line per command in registration order. Alias keys
// are folded into their command's line instead of listed as entries of their
// own.
func (h *HelpCommand) Handle(ctx context.Context, client Client, update *models.Update, _ string) (any, error) {
	if update == nil || update.Message == nil {
		return nil, ErrNoMessage
	}

	l := log.With().
		Int("messageId", update.Message.ID).
		Int64("chatId", update.Message.Chat.ID).
		Str("command", h.Name()).
		Logger()
	l.Info().Msg("handling request")

	text := h.listing()
	if err := Reply(ctx, client, update, text); err != nil {
		l.Error().Err(err).Msg("failed to send command listing")
		return nil, err
	}

	return text, nil
}

func (h *HelpCommand) listing() string {
	var sb strings.Builder
	sb.WriteString("Available commands:\n")

	listed := 0
	for _, name := range h.registry.Names() {
		cmd, ok := h.registry.Get(name)
		if !ok || cmd.Name() != name {
			// alias key, already covered by its command's line
			continue
		}

		sb.WriteString(fmt.Sprintf("\n/%s", name))
		for _, alias := range cmd.Aliases() {
			sb.WriteString(fmt.Sprintf(", /%s", alias))
		}
		if description := cmd.Description(); description != "" {
			sb.WriteString(" - " + description)
		}
		listed++
	}

	if listed == 0 {
		return "No commands registered."
	}
	return sb.String()
}

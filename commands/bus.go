package commands

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

// Bus composes the parser and a registry into a dispatch pipeline for inbound
// updates. The bus holds no state of its own between calls; everything it
// knows lives in the registry.
type Bus struct {
	registry *Registry
	fallback string
	username string
}

// Option configures a Bus.
type Option func(*Bus)

// WithFallback names the command dispatched when a parsed command has no
// registry entry. Without it unknown commands are dropped silently.
func WithFallback(name string) Option {
	return func(b *Bus) {
		b.fallback = name
	}
}

// WithBotUsername sets the username this bot answers to. Commands addressed
// to a different bot with the /command@other form are then ignored. The
// comparison is case-insensitive and a leading @ is accepted.
func WithBotUsername(username string) Option {
	return func(b *Bus) {
		b.username = strings.TrimPrefix(username, "@")
	}
}

// NewBus builds a Bus around registry. The registry stays owned by the
// caller and may be shared, e.g. with a help command that lists it.
func NewBus(registry *Registry, opts ...Option) *Bus {
	if registry == nil {
		registry = &Registry{}
	}

	bus := &Bus{registry: registry}
	for _, opt := range opts {
		opt(bus)
	}
	return bus
}

// ParseCommand recognizes a command token at the start of text. See Parse.
func (b *Bus) ParseCommand(text string) (ParseOutcome, error) {
	return Parse(text)
}

// Execute looks up name and invokes the command with the given arguments.
// The handler's result and error are returned untouched. An unknown name is
// an expected runtime case, not an error: the fallback command runs if one
// is configured and registered, otherwise the result is empty.
func (b *Bus) Execute(ctx context.Context, name, arguments string, update *models.Update, client Client) (any, error) {
	cmd, ok := b.registry.Get(name)
	if !ok {
		if b.fallback != "" {
			if fallback, ok := b.registry.Get(b.fallback); ok {
				log.Debug().Str("command", name).Str("fallback", b.fallback).Msg("unknown command, dispatching fallback")
				return fallback.Handle(ctx, client, update, arguments)
			}
		}
		log.Debug().Str("command", name).Msg("no handler for command")
		return nil, nil
	}

	return cmd.Handle(ctx, client, update, arguments)
}

// Handler is the per-update entry point: parse text, dispatch on a match and
// hand the update back to the caller. The update comes back unchanged whether
// or not a command matched; side effects on the conversation happen through
// the client inside the command. Handler errors pass through unchanged.
func (b *Bus) Handler(ctx context.Context, text string, update *models.Update, client Client) (*models.Update, error) {
	outcome, err := b.ParseCommand(text)
	if err != nil {
		return update, err
	}
	if !outcome.Matched() {
		return update, nil
	}

	l := log.With().
		Str("dispatchId", uuid.Must(uuid.NewV4()).String()).
		Str("command", outcome.Name).
		Logger()

	if b.username != "" && outcome.TargetBot != "" && !strings.EqualFold(outcome.TargetBot, b.username) {
		l.Debug().Str("targetBot", outcome.TargetBot).Msg("command addressed to another bot")
		return update, nil
	}

	l.Debug().Str("arguments", outcome.Arguments).Msg("dispatching command")

	if _, err := b.Execute(ctx, outcome.Name, outcome.Arguments, update, client); err != nil {
		return update, err
	}
	return update, nil
}

// HandleUpdate adapts the bus to the bot.HandlerFunc signature so it can be
// registered directly on a bot. Text messages and photo captions are
// dispatched; updates with neither are ignored. Handler errors are logged
// here because the bot framework has nowhere to return them.
func (b *Bus) HandleUpdate(ctx context.Context, tg *bot.Bot, update *models.Update) {
	text := commandText(update)
	if text == "" {
		return
	}

	if _, err := b.Handler(ctx, text, update, tg); err != nil {
		log.Error().Err(err).Msg("failed to handle command")
	}
}

// AddCommand registers cmd on the underlying registry.
func (b *Bus) AddCommand(cmd Command) error {
	return b.registry.Register(cmd)
}

// AddCommands registers every command; one bad entry fails the whole batch.
func (b *Bus) AddCommands(cmds ...Command) error {
	return b.registry.RegisterAll(cmds...)
}

// RemoveCommand removes the entry under name, if any.
func (b *Bus) RemoveCommand(name string) {
	b.registry.Remove(name)
}

// RemoveCommands removes every given name.
func (b *Bus) RemoveCommands(names ...string) {
	b.registry.RemoveAll(names...)
}

// GetCommands returns a snapshot of the registry contents.
func (b *Bus) GetCommands() map[string]Command {
	return b.registry.Snapshot()
}

// commandText extracts the dispatchable text of an update, falling back to
// the caption for media posts.
func commandText(update *models.Update) string {
	if update == nil || update.Message == nil {
		return ""
	}
	if update.Message.Text != "" {
		return update.Message.Text
	}
	return update.Message.Caption
}

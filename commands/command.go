// Package commands implements slash command parsing and dispatch for Telegram
// bots built on github.com/go-telegram/bot. It provides the Command contract,
// a Registry of named commands, a Parser for the /name@bot arguments form and
// the Bus that wires them into a bot's update handler.
package commands

import (
	"context"
	"fmt"
	"regexp"

	"github.com/go-telegram/bot/models"
)

// namePattern constrains command names and aliases to a single word of
// letters, digits and underscores, written without the leading slash.
var namePattern = regexp.MustCompile(`^\w+$`)

// Command is a named unit of bot behavior. The bus dispatches to a command
// under its Name and under each of its Aliases.
//
// Handle receives the parsed argument string verbatim, with no splitting or
// trimming beyond the separator that followed the command token. The first
// return value is handed back to the caller of Execute untouched; commands
// that only produce side effects may return nil.
type Command interface {
	Name() string
	Aliases() []string
	Description() string
	Handle(ctx context.Context, client Client, update *models.Update, arguments string) (any, error)
}

// HandlerFunc is the behavior of a command built with NewCommand.
type HandlerFunc func(ctx context.Context, client Client, update *models.Update, arguments string) (any, error)

// FuncCommand adapts a plain function into a Command.
type FuncCommand struct {
	name        string
	description string
	aliases     []string
	handler     HandlerFunc
}

// NewCommand builds a Command around handler. The name and every alias must
// match the command word form, and the handler must not be nil.
func NewCommand(name, description string, handler HandlerFunc, aliases ...string) (*FuncCommand, error) {
	if handler == nil {
		return nil, fmt.Errorf("command %q: %w", name, ErrNilHandler)
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	for _, alias := range aliases {
		if err := validateName(alias); err != nil {
			return nil, err
		}
	}

	return &FuncCommand{
		name:        name,
		description: description,
		aliases:     aliases,
		handler:     handler,
	}, nil
}

func (c *FuncCommand) Name() string {
	return c.name
}

func (c *FuncCommand) Aliases() []string {
	return c.aliases
}

func (c *FuncCommand) Description() string {
	return c.description
}

func (c *FuncCommand) Handle(ctx context.Context, client Client, update *models.Update, arguments string) (any, error) {
	return c.handler(ctx, client, update, arguments)
}

func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrCommandName, name)
	}
	return nil
}

package commands

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// StaticCommand replies with a fixed text. Useful for rules, links and other
// canned answers that operators want to declare in the config file instead of
// writing a handler for.
type StaticCommand struct {
	name        string
	description string
	reply       string
	aliases     []string
}

// StaticDefinition is one entry under the commands.static config key.
type StaticDefinition struct {
	Name        string   `mapstructure:"name"`
	Description string   `mapstructure:"description"`
	Reply       string   `mapstructure:"reply"`
	Aliases     []string `mapstructure:"aliases"`
}

// NewStaticCommand builds a fixed-reply command. Name validity is checked at
// registration like any other command.
func NewStaticCommand(name, description, reply string, aliases ...string) *StaticCommand {
	return &StaticCommand{
		name:        name,
		description: description,
		reply:       reply,
		aliases:     aliases,
	}
}

// StaticCommandsFromConfig builds the commands declared under the
// commands.static key of the loaded config. A missing key yields no commands
// and no error; an entry without a name or reply fails the whole load.
func StaticCommandsFromConfig() ([]Command, error) {
	var definitions []StaticDefinition
	if err := viper.UnmarshalKey("commands.static", &definitions); err != nil {
		return nil, fmt.Errorf("failed to load static commands: %w", err)
	}

	cmds := make([]Command, 0, len(definitions))
	for i, definition := range definitions {
		if definition.Name == "" || definition.Reply == "" {
			return nil, fmt.Errorf("static command %d needs both a name and a reply", i)
		}
		cmds = append(cmds, NewStaticCommand(definition.Name, definition.Description, definition.Reply, definition.Aliases...))
	}

	return cmds, nil
}

func (s *StaticCommand) Name() string {
	return s.name
}

func (s *StaticCommand) Aliases() []string {
	return s.aliases
}

func (s *StaticCommand) Description() string {
	return s.description
}

func (s *StaticCommand) Handle(ctx context.Context, client Client, update *models.Update, _ string) (any, error) {
	if update == nil || update.Message == nil {
		return nil, ErrNoMessage
	}

	log.Info().
		Int("messageId", update.Message.ID).
		Int64("chatId", update.Message.Chat.ID).
		Str("command", s.name).
		Msg("handling request")

	if err := Reply(ctx, client, update, s.reply); err != nil {
		return nil, err
	}
	return s.reply, nil
}

package commands

import (
	"context"
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommand(t *testing.T) {
	handler := func(_ context.Context, _ Client, _ *models.Update, _ string) (any, error) {
		return nil, nil
	}

	tests := []struct {
		name    string
		cmdName string
		handler HandlerFunc
		aliases []string
		wantErr error
	}{
		{
			name:    "valid command",
			cmdName: "ping",
			handler: handler,
		},
		{
			name:    "valid command with aliases",
			cmdName: "ping",
			handler: handler,
			aliases: []string{"p", "pong_2"},
		},
		{
			name:    "nil handler",
			cmdName: "ping",
			handler: nil,
			wantErr: ErrNilHandler,
		},
		{
			name:    "empty name",
			cmdName: "",
			handler: handler,
			wantErr: ErrCommandName,
		},
		{
			name:    "leading slash in name",
			cmdName: "/ping",
			handler: handler,
			wantErr: ErrCommandName,
		},
		{
			name:    "name with spaces",
			cmdName: "pi ng",
			handler: handler,
			wantErr: ErrCommandName,
		},
		{
			name:    "invalid alias",
			cmdName: "ping",
			handler: handler,
			aliases: []string{"ok", "not ok"},
			wantErr: ErrCommandName,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := NewCommand(tc.cmdName, "a test command", tc.handler, tc.aliases...)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.cmdName, cmd.Name())
			assert.Equal(t, tc.aliases, cmd.Aliases())
			assert.Equal(t, "a test command", cmd.Description())
		})
	}
}

func TestFuncCommandHandlePassesThrough(t *testing.T) {
	var gotArgs string
	cmd, err := NewCommand("echo", "", func(_ context.Context, _ Client, _ *models.Update, arguments string) (any, error) {
		gotArgs = arguments
		return "echo handled", nil
	})
	require.NoError(t, err)

	result, err := cmd.Handle(t.Context(), nil, makeUpdate("/echo hello"), "hello world")

	require.NoError(t, err)
	assert.Equal(t, "echo handled", result)
	assert.Equal(t, "hello world", gotArgs)
}

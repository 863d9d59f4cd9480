package commands

import (
	"errors"
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpCommandListsInRegistrationOrder(t *testing.T) {
	r := &Registry{}
	help := NewHelpCommand(r)
	require.NoError(t, r.Register(help))
	require.NoError(t, r.Register(&recordingCommand{name: "zulu"}))
	require.NoError(t, r.Register(&recordingCommand{name: "alpha"}))

	fc := &fakeClient{}
	result, err := help.Handle(t.Context(), fc, makeUpdate("/help"), "")

	require.NoError(t, err)
	require.Len(t, fc.sent, 1)

	text := fc.sent[0].Text
	assert.Equal(t, result, text)
	assert.Equal(t, "Available commands:\n\n/help, /start - List the commands this bot understands\n/zulu - recorded\n/alpha - recorded", text)
}

func TestHelpCommandFoldsAliases(t *testing.T) {
	r := &Registry{}
	help := NewHelpCommand(r)
	require.NoError(t, r.Register(&recordingCommand{name: "stats", aliases: []string{"s", "st"}}))

	fc := &fakeClient{}
	_, err := help.Handle(t.Context(), fc, makeUpdate("/help"), "")

	require.NoError(t, err)
	require.Len(t, fc.sent, 1)
	assert.Equal(t, "Available commands:\n\n/stats, /s, /st - recorded", fc.sent[0].Text)
}

func TestHelpCommandEmptyRegistry(t *testing.T) {
	help := NewHelpCommand(&Registry{})

	fc := &fakeClient{}
	result, err := help.Handle(t.Context(), fc, makeUpdate("/help"), "")

	require.NoError(t, err)
	assert.Equal(t, "No commands registered.", result)
	require.Len(t, fc.sent, 1)
	assert.Equal(t, "No commands registered.", fc.sent[0].Text)
}

func TestHelpCommandNoMessage(t *testing.T) {
	help := NewHelpCommand(&Registry{})

	_, err := help.Handle(t.Context(), &fakeClient{}, &models.Update{}, "")

	require.ErrorIs(t, err, ErrNoMessage)
}

func TestHelpCommandSendError(t *testing.T) {
	r := &Registry{}
	help := NewHelpCommand(r)
	require.NoError(t, r.Register(help))

	sendErr := errors.New("telegram is down")
	result, err := help.Handle(t.Context(), &fakeClient{sendErr: sendErr}, makeUpdate("/help"), "")

	require.ErrorIs(t, err, sendErr)
	assert.Nil(t, result)
}

func TestHelpCommandAsFallback(t *testing.T) {
	r := &Registry{}
	require.NoError(t, r.Register(NewHelpCommand(r)))

	bus := NewBus(r, WithFallback("help"))
	fc := &fakeClient{}
	_, err := bus.Handler(t.Context(), "/definitelynotacommand", makeUpdate("/definitelynotacommand"), fc)

	require.NoError(t, err)
	require.Len(t, fc.sent, 1)
	assert.Contains(t, fc.sent[0].Text, "/help")
}

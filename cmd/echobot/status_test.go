package main

import (
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iBotPeaches/telegram-bot-sdk/commands"
)

func TestStatusCommandHandle(t *testing.T) {
	cmd := newStatusCommand()

	fc := &fakeClient{}
	result, err := cmd.Handle(t.Context(), fc, makeUpdate("/status"), "")

	require.NoError(t, err)
	texts := fc.sentTexts()
	require.Len(t, texts, 1)
	assert.Equal(t, result, texts[0])
	assert.NotEmpty(t, texts[0])
}

func TestStatusCommandNoMessage(t *testing.T) {
	cmd := newStatusCommand()

	_, err := cmd.Handle(t.Context(), &fakeClient{}, &models.Update{}, "")

	require.ErrorIs(t, err, commands.ErrNoMessage)
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		name    string
		seconds uint64
		want    string
	}{
		{
			name:    "minutes only",
			seconds: 125,
			want:    "0h 2m",
		},
		{
			name:    "hours and minutes",
			seconds: 3*3600 + 15*60,
			want:    "3h 15m",
		},
		{
			name:    "days",
			seconds: 2*86400 + 3600 + 60,
			want:    "2d 1h 1m",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, formatUptime(tc.seconds))
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes uint64
		want  string
	}{
		{
			name:  "gigabytes",
			bytes: 16 * 1024 * 1024 * 1024,
			want:  "16.0 GB",
		},
		{
			name:  "terabytes",
			bytes: 2 * 1024 * 1024 * 1024 * 1024,
			want:  "2.0 TB",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, formatBytes(tc.bytes))
		})
	}
}

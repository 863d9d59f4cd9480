package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/iBotPeaches/telegram-bot-sdk/commands"
)

// statusCommand reports host load so operators can check on the box from chat.
type statusCommand struct{}

func newStatusCommand() *statusCommand {
	return &statusCommand{}
}

func (c *statusCommand) Name() string {
	return "status"
}

func (c *statusCommand) Aliases() []string {
	return []string{"uptime"}
}

func (c *statusCommand) Description() string {
	return "Show host CPU, memory, disk and uptime"
}

func (c *statusCommand) Handle(ctx context.Context, client commands.Client, update *models.Update, _ string) (any, error) {
	if update == nil || update.Message == nil {
		return nil, commands.ErrNoMessage
	}

	log.Info().
		Int("messageId", update.Message.ID).
		Int64("chatId", update.Message.Chat.ID).
		Str("command", c.Name()).
		Msg("handling request")

	text := statusText()
	if err := commands.Reply(ctx, client, update, text); err != nil {
		return nil, err
	}
	return text, nil
}

// statusText collects host facts, skipping any probe that fails so a broken
// metric never hides the rest.
func statusText() string {
	var b strings.Builder

	h, err := host.Info()
	if err == nil {
		b.WriteString(fmt.Sprintf("Host: %s (%s)\n", h.Hostname, h.Platform))
		b.WriteString(fmt.Sprintf("Uptime: %s\n", formatUptime(h.Uptime)))
	}

	c, err := cpu.Percent(0, false)
	if err == nil && len(c) > 0 {
		b.WriteString(fmt.Sprintf("CPU: %.0f%%\n", c[0]))
	}

	v, err := mem.VirtualMemory()
	if err == nil {
		b.WriteString(fmt.Sprintf("RAM: %.0f%% of %s\n", v.UsedPercent, formatBytes(v.Total)))
	}

	d, err := disk.Usage("/")
	if err == nil {
		b.WriteString(fmt.Sprintf("Disk: %.0f%% of %s\n", d.UsedPercent, formatBytes(d.Total)))
	}

	if b.Len() == 0 {
		return "host stats unavailable"
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func formatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	mins := (seconds % 3600) / 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

func formatBytes(bytes uint64) string {
	gb := float64(bytes) / 1024 / 1024 / 1024
	if gb >= 1000 {
		return fmt.Sprintf("%.1f TB", gb/1024)
	}
	return fmt.Sprintf("%.1f GB", gb)
}

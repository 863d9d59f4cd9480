// Command echobot is a small Telegram bot wired entirely through the command
// bus: a help listing, a ping, a host status report, an LLM-backed /ask and
// any number of fixed replies declared in config.toml.
package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/iBotPeaches/telegram-bot-sdk/commands"
	"github.com/iBotPeaches/telegram-bot-sdk/internal/generator"
)

func main() {
	log.Info().Msg("starting echobot...")

	_ = godotenv.Load()

	viper.AddConfigPath(".")
	viper.SetConfigType("toml")

	log.Info().Msg("reading config file...")
	err := viper.ReadInConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("could not read config file")
	}

	var logLevel zerolog.Level

	switch viper.GetString("bot.log_level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	token := viper.GetString("telegram.bot_token")
	if token == "" {
		token = os.Getenv("TELEGRAM_BOT_TOKEN")
	}

	opts := []bot.Option{
		bot.WithDefaultHandler(noOpHandler),
	}

	b, err := bot.New(token, opts...)
	if err != nil {
		log.Panic().Err(err).Msg("failed initializing telegram bot")
	}

	registry := &commands.Registry{}
	bus := commands.NewBus(registry,
		commands.WithFallback("help"),
		commands.WithBotUsername(viper.GetString("telegram.bot_username")),
	)

	ping, err := commands.NewCommand("ping", "Check that the bot is alive", pingHandler)
	if err != nil {
		log.Panic().Err(err).Msg("failed building ping command")
	}

	askTimeout, err := time.ParseDuration(viper.GetString("openrouter.timeout"))
	if err != nil {
		log.Panic().Err(err).Msg("invalid timeout for ask command in config")
	}

	ask := newAskCommand(generator.NewOpenRouter(
		viper.GetString("openrouter.api_key"),
		viper.GetString("openrouter.model"),
		viper.GetString("openrouter.system_prompt"),
	), askTimeout)

	err = bus.AddCommands(
		commands.NewHelpCommand(registry),
		ping,
		ask,
		newStatusCommand(),
	)
	if err != nil {
		log.Panic().Err(err).Msg("failed registering commands")
	}

	statics, err := commands.StaticCommandsFromConfig()
	if err != nil {
		log.Panic().Err(err).Msg("failed loading static commands")
	}
	if err := bus.AddCommands(statics...); err != nil {
		log.Panic().Err(err).Msg("failed registering static commands")
	}

	b.RegisterHandler(bot.HandlerTypeMessageText, "/", bot.MatchTypePrefix, bus.HandleUpdate)
	b.RegisterHandler(bot.HandlerTypePhotoCaption, "/", bot.MatchTypePrefix, bus.HandleUpdate)

	log.Info().Strs("commands", registry.Names()).Msg("bot listening")
	b.Start(ctx)
}

func noOpHandler(_ context.Context, _ *bot.Bot, _ *models.Update) {}

func pingHandler(ctx context.Context, client commands.Client, update *models.Update, _ string) (any, error) {
	if err := commands.Reply(ctx, client, update, "pong"); err != nil {
		return nil, err
	}
	return "pong", nil
}

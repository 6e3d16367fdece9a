package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/go-telegram/bot"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"minedin_bot/internal/config"
	"minedin_bot/internal/earnings"
	"minedin_bot/internal/flow"
	"minedin_bot/internal/locale"
	"minedin_bot/internal/providers"
	"minedin_bot/internal/reward"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	_ = godotenv.Load()
	cfg := config.MustLoad()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	httpClient := providers.NewHTTPClient(cfg.HTTPTimeout())
	rewards := reward.NewWhatToMineRequestor(httpClient, cfg.RewardTTL())
	calc := earnings.NewCalculator(httpClient, rewards)
	machine := flow.NewMachine(calc, locale.ForLocale(cfg.Locale), logger)

	h := newHandler(machine, logger)
	opts := []bot.Option{
		bot.WithDefaultHandler(h.handleUpdate),
	}

	b, err := bot.New(cfg.TelegramToken, opts...)
	if err != nil {
		logger.Fatal("bot init failed", zap.Error(err))
	}

	logger.Info("bot started")
	b.Start(ctx)
}

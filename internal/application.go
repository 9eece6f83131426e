package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/aurianecodebien/tictactoe-cli/internal/config"
	"github.com/aurianecodebien/tictactoe-cli/internal/entity"
	"github.com/aurianecodebien/tictactoe-cli/internal/service"
	"github.com/aurianecodebien/tictactoe-cli/internal/usecase"
	"github.com/aurianecodebien/tictactoe-cli/transport/cli"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	botService := service.NewBotService(logger)
	gameUseCase := usecase.NewGameUseCase(logger, botService)

	runner := cli.New(logger, gameUseCase, os.Stdin, os.Stdout, cli.Options{
		HumanMark: humanMark(conf),
		BotDelay:  conf.Game.BotDelay(),
		NoColor:   conf.Game.NoColor,
	})

	log.Info("Starting game session", "human-mark", conf.Game.HumanMark)

	if err := runner.Start(ctx); err != nil {
		return fmt.Errorf("game session error: %w", err)
	}

	return nil
}

// humanMark - resolves which side the human plays.
func humanMark(conf *config.Config) entity.Mark {
	switch strings.ToUpper(conf.Game.HumanMark) {
	case "O":
		return entity.MarkO
	case "RANDOM":
		mark, _ := entity.RandomMarks()

		return mark
	default:
		return entity.MarkX
	}
}

package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/transport/redis"
	"github.com/rocketscienceinc/tictactoe-engine/internal/transport/terminal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
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

	mode, err := entity.ParseMode(conf.Mode)
	if err != nil {
		return fmt.Errorf("invalid game mode in config: %w", err)
	}

	gameManager := usecase.NewGameManager(logger, mode)

	if conf.Redis.Enabled {
		client, err := redis.Connect(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis: %w", err)
		}

		publisher := redis.NewPublisher(client, conf.Redis.Channel)
		defer func() {
			if err := publisher.Close(); err != nil {
				log.Error("could not close redis publisher", "error", err)
			}
		}()

		gameManager.Subscribe(publisher)
		log.Info("Publishing game events", "channel", conf.Redis.Channel)
	}

	var opts []termenv.OutputOption
	if conf.NoColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	console := terminal.New(logger, os.Stdout, gameManager, opts...)
	gameManager.Subscribe(console)

	log.Info("Starting game", "mode", mode)
	if err = console.Run(ctx, os.Stdin); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Game session finished")

	return nil
}

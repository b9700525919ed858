package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/connectfour-backend/internal"
	"github.com/rocketscienceinc/connectfour-backend/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs one command.
//
//	connectfour new
//	connectfour -game ID -player 0 -column 3 move
//	connectfour -game ID -player 0 -column 3 undo
//	connectfour -game ID show
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	cmd := parseCommand()
	conf := initConfig()
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf, cmd, os.Stdout); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

func parseCommand() app.Command {
	var cmd app.Command

	flag.StringVar(&cmd.GameID, "game", "", "game id")
	flag.IntVar(&cmd.Player, "player", 0, "player id, 0 plays x and 1 plays o")
	flag.IntVar(&cmd.Column, "column", 0, "column 0-6")
	flag.Parse()

	cmd.Name = flag.Arg(0)
	if cmd.Name == "" {
		cmd.Name = app.CommandShow
	}

	return cmd
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

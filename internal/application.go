package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/connectfour-backend/internal/config"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository/storage"
	"github.com/rocketscienceinc/connectfour-backend/internal/service"
)

const (
	CommandNew  = "new"
	CommandMove = "move"
	CommandUndo = "undo"
	CommandShow = "show"
)

var (
	ErrAddrNotFound   = errors.New("redis address string is empty")
	ErrUnknownCommand = errors.New("unknown command")
	ErrGameIDRequired = errors.New("game id is required")
)

// Command is one request against the stored games.
type Command struct {
	Name   string
	GameID string
	Player int
	Column int
}

// RunApp - connects to storage and runs a single command, printing the resulting game to out.
func RunApp(logger *slog.Logger, conf *config.Config, cmd Command, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	gameRepo := repository.NewGameRepository(redisStorage.Connection)
	gameService := service.NewGameService(gameRepo)
	gamePlayService := service.NewGamePlayService(logger, gameService)

	log.Debug("running command", "command", cmd.Name, "gameID", cmd.GameID)

	return Execute(ctx, gamePlayService, cmd, out)
}

// Execute runs cmd against gamePlay and prints a snapshot of the touched game.
func Execute(ctx context.Context, gamePlay service.GamePlayService, cmd Command, out io.Writer) error {
	gameID := cmd.GameID

	switch cmd.Name {
	case CommandNew:
		game, err := gamePlay.NewGame(ctx)
		if err != nil {
			return fmt.Errorf("new game: %w", err)
		}
		gameID = game.ID
	case CommandMove, CommandUndo, CommandShow:
		if gameID == "" {
			return fmt.Errorf("%w for %s", ErrGameIDRequired, cmd.Name)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Name)
	}

	switch cmd.Name {
	case CommandMove:
		if _, err := gamePlay.MakeTurn(ctx, gameID, cmd.Player, cmd.Column); err != nil {
			return fmt.Errorf("move: %w", err)
		}
	case CommandUndo:
		if _, err := gamePlay.UndoTurn(ctx, gameID, cmd.Player, cmd.Column); err != nil {
			return fmt.Errorf("undo: %w", err)
		}
	}

	snapshot, err := gamePlay.Snapshot(ctx, gameID)
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}

	return printSnapshot(out, snapshot)
}

func printSnapshot(out io.Writer, snapshot *service.Snapshot) error {
	_, err := fmt.Fprintf(out, "game %s\n%sstatus: %s\nwinner: %s\nturn: %d\nlegal: %v\nreturns: %v\nfeatures: %v\n",
		snapshot.ID,
		snapshot.Board,
		snapshot.Status,
		snapshot.Winner,
		snapshot.Turn,
		snapshot.LegalActions,
		snapshot.Returns,
		setFeatures(snapshot.Tensor),
	)
	if err != nil {
		return fmt.Errorf("failed to print game: %w", err)
	}

	return nil
}

// setFeatures lists the indices of the tensor entries that are set.
func setFeatures(tensor []float64) []int {
	indices := make([]int, 0, len(tensor)/3)
	for i, value := range tensor {
		if value != 0 {
			indices = append(indices, i)
		}
	}

	return indices
}

package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

// Snapshot is a read-only view of a game for callers outside the domain.
type Snapshot struct {
	ID           string
	Board        string
	Status       string
	Winner       string
	Turn         int
	LegalActions []int
	Returns      []float64
	Tensor       []float64
}

type GamePlayService interface {
	NewGame(ctx context.Context) (*entity.Game, error)

	MakeTurn(ctx context.Context, gameID string, player, column int) (*entity.Game, error)
	UndoTurn(ctx context.Context, gameID string, player, column int) (*entity.Game, error)

	Snapshot(ctx context.Context, gameID string) (*Snapshot, error)
}

type gamePlayService struct {
	logger *slog.Logger

	gameService GameService
}

func NewGamePlayService(logger *slog.Logger, gameService GameService) GamePlayService {
	return &gamePlayService{
		logger:      logger,
		gameService: gameService,
	}
}

func (that *gamePlayService) NewGame(ctx context.Context) (*entity.Game, error) {
	game, err := that.gameService.CreateGame(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create new game: %w", err)
	}

	that.logger.Info("game created", "method", "NewGame", "gameID", game.ID)

	return game, nil
}

func (that *gamePlayService) MakeTurn(ctx context.Context, gameID string, player, column int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", gameID)

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.MakeTurn(player, column); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	log.Debug("turn made", "action", game.State.ActionToString(player, column))

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner())
	}

	return game, nil
}

func (that *gamePlayService) UndoTurn(ctx context.Context, gameID string, player, column int) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.UndoTurn(player, column); err != nil {
		return game, fmt.Errorf("failed to undo turn: %w", err)
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	that.logger.Debug("turn undone", "method", "UndoTurn", "gameID", gameID, "player", player, "column", column)

	return game, nil
}

func (that *gamePlayService) Snapshot(ctx context.Context, gameID string) (*Snapshot, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return &Snapshot{
		ID:           game.ID,
		Board:        connectfour.Serialize(game.State),
		Status:       game.Status(),
		Winner:       game.Winner(),
		Turn:         game.Turn(),
		LegalActions: game.State.LegalActions(),
		Returns:      game.State.Returns(),
		Tensor:       game.State.InformationStateTensor(0),
	}, nil
}

package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestGamePlayService(repo *mockGameRepo) GamePlayService {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return NewGamePlayService(logger, NewGameService(repo))
}

func TestGamePlayService_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Applies and stores the turn", func(t *testing.T) {
		// Given: a stored new game
		repo := &mockGameRepo{}
		repo.On("GetByID", ctx, "g1").Return(entity.NewGame("g1"), nil).Once()
		repo.On("CreateOrUpdate", ctx, mock.AnythingOfType("*entity.Game")).Return(nil).Once()

		// When: player 0 drops into column 4
		game, err := newTestGamePlayService(repo).MakeTurn(ctx, "g1", 0, 4)

		// Then: the updated game is saved
		require.NoError(t, err)
		assert.Equal(t, 1, game.Turn())
		repo.AssertExpectations(t)
	})

	t.Run("Rejected turn is not stored", func(t *testing.T) {
		// Given: a stored new game
		repo := &mockGameRepo{}
		repo.On("GetByID", ctx, "g1").Return(entity.NewGame("g1"), nil).Once()

		// When: player 1 moves first
		_, err := newTestGamePlayService(repo).MakeTurn(ctx, "g1", 1, 4)

		// Then: ErrNotYourTurn is returned and nothing is written
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		repo.AssertNotCalled(t, "CreateOrUpdate", mock.Anything, mock.Anything)
	})

	t.Run("Winning turn finishes the game", func(t *testing.T) {
		// Given: player 0 one drop away from a vertical line
		game := entity.NewGame("g1")
		for i, column := range []int{0, 1, 0, 1, 0, 1} {
			require.NoError(t, game.MakeTurn(i%2, column))
		}

		repo := &mockGameRepo{}
		repo.On("GetByID", ctx, "g1").Return(game, nil).Once()
		repo.On("CreateOrUpdate", ctx, game).Return(nil).Once()

		// When: player 0 completes the line
		finished, err := newTestGamePlayService(repo).MakeTurn(ctx, "g1", 0, 0)

		// Then: the finished game is stored with x as winner
		require.NoError(t, err)
		assert.Equal(t, entity.StatusFinished, finished.Status())
		assert.Equal(t, entity.PlayerX, finished.Winner())
	})

	t.Run("Storage failure is returned", func(t *testing.T) {
		repo := &mockGameRepo{}
		repo.On("GetByID", ctx, "g1").Return(entity.NewGame("g1"), nil).Once()
		repo.On("CreateOrUpdate", ctx, mock.AnythingOfType("*entity.Game")).Return(errRedisDown).Once()

		game, err := newTestGamePlayService(repo).MakeTurn(ctx, "g1", 0, 4)

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, game)
	})
}

func TestGamePlayService_UndoTurn(t *testing.T) {
	ctx := context.Background()

	// Given: a stored game with one drop
	game := entity.NewGame("g1")
	require.NoError(t, game.MakeTurn(0, 2))

	repo := &mockGameRepo{}
	repo.On("GetByID", ctx, "g1").Return(game, nil).Once()
	repo.On("CreateOrUpdate", ctx, game).Return(nil).Once()

	// When: player 0 takes it back
	undone, err := newTestGamePlayService(repo).UndoTurn(ctx, "g1", 0, 2)

	// Then: the board is empty again
	require.NoError(t, err)
	assert.Equal(t, 0, undone.State.MoveNumber())
	assert.Equal(t, 0, undone.Turn())
}

func TestGamePlayService_Snapshot(t *testing.T) {
	ctx := context.Background()

	// Given: a stored game with one drop
	game := entity.NewGame("g1")
	require.NoError(t, game.MakeTurn(0, 6))

	repo := &mockGameRepo{}
	repo.On("GetByID", ctx, "g1").Return(game, nil).Once()

	// When: taking a snapshot
	snapshot, err := newTestGamePlayService(repo).Snapshot(ctx, "g1")

	// Then: it describes the ongoing game
	require.NoError(t, err)
	assert.Equal(t, "g1", snapshot.ID)
	assert.Equal(t, connectfour.Serialize(game.State), snapshot.Board)
	assert.Equal(t, entity.StatusOngoing, snapshot.Status)
	assert.Equal(t, 1, snapshot.Turn)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, snapshot.LegalActions)
	assert.Equal(t, []float64{0, 0}, snapshot.Returns)
	assert.Len(t, snapshot.Tensor, connectfour.NumCells*connectfour.CellStates)
}

func TestGamePlayService_NewGame(t *testing.T) {
	ctx := context.Background()

	repo := &mockGameRepo{}
	repo.On("CreateOrUpdate", ctx, mock.AnythingOfType("*entity.Game")).Return(nil).Once()

	game, err := newTestGamePlayService(repo).NewGame(ctx)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusOngoing, game.Status())
}

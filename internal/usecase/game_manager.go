package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
	FindByPlayer(ctx context.Context, name string) ([]*entity.Result, error)
}

// GameManager hosts many games. Every operation on one game runs under that game's lock,
// since the engine itself is not safe for concurrent use.
type GameManager struct {
	logger      *slog.Logger
	gameRepo    gameRepo
	resultRepo  resultRepo
	defaultSize int
	maxSize     int

	mu    sync.Mutex
	locks map[string]*gameLock
}

type gameLock struct {
	sync.Mutex
	refs int
}

// NewGameManager - games larger than maxSize are refused; maxSize never drops below defaultSize.
func NewGameManager(logger *slog.Logger, gameRepo gameRepo, resultRepo resultRepo, defaultSize, maxSize int) *GameManager {
	if defaultSize < tictactoe.MinSize {
		defaultSize = tictactoe.MinSize
	}

	if maxSize < defaultSize {
		maxSize = defaultSize
	}

	return &GameManager{
		logger:      logger.With("component", "game_manager"),
		gameRepo:    gameRepo,
		resultRepo:  resultRepo,
		defaultSize: defaultSize,
		maxSize:     maxSize,
		locks:       make(map[string]*gameLock),
	}
}

// CreateGame - starts a new game; size 0 means the configured default.
func (that *GameManager) CreateGame(ctx context.Context, size int) (*entity.Game, error) {
	if size == 0 {
		size = that.defaultSize
	}

	if size > that.maxSize {
		return nil, fmt.Errorf("%w: board size %d is larger than %d", apperror.ErrInvalidConfiguration, size, that.maxSize)
	}

	game, err := tictactoe.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	snapshot := entity.NewGame(pkg.GenerateGameID(), game)
	if err = that.gameRepo.CreateOrUpdate(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	that.logger.Info("game created", "game_id", snapshot.ID, "size", size)

	return snapshot, nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	unlock := that.lock(gameID)
	defer unlock()

	snapshot, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return snapshot, nil
}

// RegisterPlayer - adds a player with the given mark ("X"/"O") to the game.
func (that *GameManager) RegisterPlayer(ctx context.Context, gameID, name, mark string) (*entity.Game, error) {
	parsedMark, err := tictactoe.ParseMark(mark)
	if err != nil {
		return nil, err
	}

	unlock := that.lock(gameID)
	defer unlock()

	game, err := that.loadGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err = game.RegisterPlayer(name, parsedMark); err != nil {
		return nil, fmt.Errorf("failed to register player: %w", err)
	}

	snapshot := entity.NewGame(gameID, game)
	if err = that.gameRepo.CreateOrUpdate(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	that.logger.Info("player registered", "game_id", gameID, "player", name, "mark", parsedMark.String())

	return snapshot, nil
}

// Play - applies a move and reports whether it won the game.
func (that *GameManager) Play(ctx context.Context, gameID, name string, row, col int) (*entity.Game, bool, error) {
	log := that.logger.With("method", "Play", "game_id", gameID)

	unlock := that.lock(gameID)
	defer unlock()

	game, err := that.loadGame(ctx, gameID)
	if err != nil {
		return nil, false, err
	}

	won, err := game.Play(name, row, col)
	if err != nil {
		return nil, false, fmt.Errorf("failed to play: %w", err)
	}

	snapshot := entity.NewGame(gameID, game)
	if err = that.gameRepo.CreateOrUpdate(ctx, snapshot); err != nil {
		return nil, false, fmt.Errorf("failed to update game: %w", err)
	}

	log.Debug("move played", "player", name, "row", row, "col", col)

	if snapshot.IsFinished() {
		log.Info("game finished", "status", snapshot.Status, "winner", snapshot.Winner, "plays", snapshot.Plays)
		that.saveResult(ctx, snapshot)
	}

	return snapshot, won, nil
}

// DeleteGame - drops a game; recorded results are kept.
func (that *GameManager) DeleteGame(ctx context.Context, gameID string) error {
	unlock := that.lock(gameID)
	defer unlock()

	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "game_id", gameID)

	return nil
}

// PlayerResults - finished games the named player took part in.
func (that *GameManager) PlayerResults(ctx context.Context, name string) ([]*entity.Result, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: player name is empty", apperror.ErrInvalidArgument)
	}

	results, err := that.resultRepo.FindByPlayer(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to find results: %w", err)
	}

	return results, nil
}

func (that *GameManager) loadGame(ctx context.Context, gameID string) (*tictactoe.Game, error) {
	snapshot, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	game, err := snapshot.Restore()
	if err != nil {
		return nil, fmt.Errorf("failed to restore game: %w", err)
	}

	return game, nil
}

// saveResult - the move has already been stored, so a failure here is only logged.
func (that *GameManager) saveResult(ctx context.Context, snapshot *entity.Game) {
	log := that.logger.With("method", "saveResult", "game_id", snapshot.ID)

	result, err := snapshot.Result(time.Now())
	if err != nil {
		log.Error("failed to build result", "error", err)
		return
	}

	if err = that.resultRepo.Save(ctx, result); err != nil {
		log.Error("failed to save result", "error", err)
	}
}

// lock - acquires the per-game lock and returns its release func.
func (that *GameManager) lock(gameID string) func() {
	that.mu.Lock()
	l, ok := that.locks[gameID]
	if !ok {
		l = &gameLock{}
		that.locks[gameID] = l
	}
	l.refs++
	that.mu.Unlock()

	l.Lock()

	return func() {
		l.Unlock()

		that.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(that.locks, gameID)
		}
		that.mu.Unlock()
	}
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	FindByPlayer(ctx context.Context, name string) ([]*entity.Result, error)
}

type resultRepository struct {
	conn *sql.DB
}

func NewResultRepository(conn *sql.DB) ResultRepository {
	return &resultRepository{
		conn: conn,
	}
}

func (that *resultRepository) Save(ctx context.Context, result *entity.Result) error {
	query := `INSERT OR REPLACE INTO results
		(game_id, size, player_a, player_b, winner, winner_mark, plays, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query,
		result.GameID, result.Size, result.PlayerA, result.PlayerB,
		result.Winner, result.WinnerMark, result.Plays, result.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("can't save result: %w", err)
	}

	return nil
}

func (that *resultRepository) FindByPlayer(ctx context.Context, name string) ([]*entity.Result, error) {
	query := `SELECT game_id, size, player_a, player_b, winner, winner_mark, plays, finished_at
		FROM results WHERE player_a = ? OR player_b = ? ORDER BY finished_at, game_id`

	rows, err := that.conn.QueryContext(ctx, query, name, name)
	if err != nil {
		return nil, fmt.Errorf("can't find results: %w", err)
	}
	defer rows.Close()

	var results []*entity.Result
	for rows.Next() {
		var result entity.Result
		if err = rows.Scan(
			&result.GameID, &result.Size, &result.PlayerA, &result.PlayerB,
			&result.Winner, &result.WinnerMark, &result.Plays, &result.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("can't scan result: %w", err)
		}

		results = append(results, &result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read results: %w", err)
	}

	return results, nil
}

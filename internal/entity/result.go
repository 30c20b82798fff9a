package entity

import "time"

// Result is the outcome of a finished game.
type Result struct {
	GameID     string    `json:"game_id"`
	Size       int       `json:"size"`
	PlayerA    string    `json:"player_a"`
	PlayerB    string    `json:"player_b"`
	Winner     string    `json:"winner,omitempty"`
	WinnerMark string    `json:"winner_mark,omitempty"`
	Plays      int       `json:"plays"`
	FinishedAt time.Time `json:"finished_at"`
}

func (that *Result) IsDraw() bool {
	return that.Winner == ""
}

package websocket

import (
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	actionNewGame  = "game:new"
	actionJoinGame = "game:join"
	actionTurn     = "game:turn"
	actionState    = "game:state"
	actionUpdate   = "game:update"
	actionError    = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string         `json:"action"`
	Payload map[string]any `json:"payload,omitempty"`
}

type Response struct {
	Action  string          `json:"action"`
	Payload ResponsePayload `json:"payload"`
}

type ResponsePayload struct {
	Game  *entity.Game `json:"game,omitempty"`
	Won   bool         `json:"won,omitempty"`
	Error string       `json:"error,omitempty"`
}

type newGameRequest struct {
	Size int `mapstructure:"size"`
}

type joinGameRequest struct {
	GameID string `mapstructure:"game_id"`
	Name   string `mapstructure:"name"`
	Mark   string `mapstructure:"mark"`
}

type turnRequest struct {
	GameID string `mapstructure:"game_id"`
	Name   string `mapstructure:"name"`
	Row    *int   `mapstructure:"row"`
	Col    *int   `mapstructure:"col"`
}

type stateRequest struct {
	GameID string `mapstructure:"game_id"`
}

// decodePayload - decodes the untyped payload into a request struct. Unknown keys
// and fractional numbers for integer fields are rejected.
func decodePayload(msg *Message, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  rejectFractions,
		ErrorUnused: true,
		Result:      out,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err = decoder.Decode(msg.Payload); err != nil {
		return fmt.Errorf("%w: %s payload: %s", apperror.ErrInvalidArgument, msg.Action, err.Error())
	}

	return nil
}

// rejectFractions - JSON numbers arrive as float64; only whole ones may fill an int.
func rejectFractions(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Float64 {
		return data, nil
	}

	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}

	value, ok := data.(float64)
	if !ok {
		return data, nil
	}

	if value != math.Trunc(value) || value > math.MaxInt32 || value < math.MinInt32 {
		return nil, fmt.Errorf("%v is not a whole number in range", value)
	}

	return data, nil
}

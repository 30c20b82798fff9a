package websocket

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
)

func (that *Server) handleNewGame(ctx context.Context, c *client, msg *Message) error {
	var req newGameRequest
	if err := decodePayload(msg, &req); err != nil {
		return that.sendError(c, msg.Action, err)
	}

	game, err := that.uGame.CreateGame(ctx, req.Size)
	if err != nil {
		return that.sendError(c, msg.Action, err)
	}

	that.subscribe(game.ID, c)

	return c.send(Response{Action: msg.Action, Payload: ResponsePayload{Game: game}})
}

func (that *Server) handleJoinGame(ctx context.Context, c *client, msg *Message) error {
	var req joinGameRequest
	if err := decodePayload(msg, &req); err != nil {
		return that.sendError(c, msg.Action, err)
	}

	if err := pkg.CheckGameID(req.GameID); err != nil {
		return that.sendError(c, msg.Action, err)
	}

	game, err := that.uGame.RegisterPlayer(ctx, req.GameID, req.Name, req.Mark)
	if err != nil {
		return that.sendError(c, msg.Action, err)
	}

	that.subscribe(game.ID, c)
	that.broadcast(c, game, false)

	return c.send(Response{Action: msg.Action, Payload: ResponsePayload{Game: game}})
}

func (that *Server) handleGameTurn(ctx context.Context, c *client, msg *Message) error {
	var req turnRequest
	if err := decodePayload(msg, &req); err != nil {
		return that.sendError(c, msg.Action, err)
	}

	if req.Row == nil || req.Col == nil {
		return that.sendError(c, msg.Action, fmt.Errorf("%w: row and col are required", apperror.ErrInvalidArgument))
	}

	if err := pkg.CheckGameID(req.GameID); err != nil {
		return that.sendError(c, msg.Action, err)
	}

	game, won, err := that.uGame.Play(ctx, req.GameID, req.Name, *req.Row, *req.Col)
	if err != nil {
		return that.sendError(c, msg.Action, err)
	}

	that.broadcast(c, game, won)

	return c.send(Response{Action: msg.Action, Payload: ResponsePayload{Game: game, Won: won}})
}

func (that *Server) handleGameState(ctx context.Context, c *client, msg *Message) error {
	var req stateRequest
	if err := decodePayload(msg, &req); err != nil {
		return that.sendError(c, msg.Action, err)
	}

	if err := pkg.CheckGameID(req.GameID); err != nil {
		return that.sendError(c, msg.Action, err)
	}

	game, err := that.uGame.GetGame(ctx, req.GameID)
	if err != nil {
		return that.sendError(c, msg.Action, err)
	}

	that.subscribe(game.ID, c)

	return c.send(Response{Action: msg.Action, Payload: ResponsePayload{Game: game}})
}

// sendError - reports a failed action to the client; only a failed write is returned.
func (that *Server) sendError(c *client, action string, err error) error {
	that.logger.Debug("action rejected", "action", action, "error", err)

	return c.send(errorMessage(action, err.Error()))
}

func errorMessage(action, reason string) Response {
	return Response{Action: action, Payload: ResponsePayload{Error: reason}}
}

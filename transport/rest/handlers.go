package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
)

type createGameRequest struct {
	Size int `json:"size"`
}

type registerPlayerRequest struct {
	Name string `json:"name"`
	Mark string `json:"mark"`
}

type playRequest struct {
	Name string `json:"name"`
	Row  *int   `json:"row"`
	Col  *int   `json:"col"`
}

type playResponse struct {
	Game *entity.Game `json:"game"`
	Won  bool         `json:"won"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			that.writeError(w, "handleCreateGame", apperror.ErrInvalidArgument)
			return
		}
	}

	game, err := that.uGame.CreateGame(r.Context(), req.Size)
	if err != nil {
		that.writeError(w, "handleCreateGame", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	gameID, ok := that.gameID(w, r, "handleGetGame")
	if !ok {
		return
	}

	game, err := that.uGame.GetGame(r.Context(), gameID)
	if err != nil {
		that.writeError(w, "handleGetGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	gameID, ok := that.gameID(w, r, "handleDeleteGame")
	if !ok {
		return
	}

	if err := that.uGame.DeleteGame(r.Context(), gameID); err != nil {
		that.writeError(w, "handleDeleteGame", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) handleRegisterPlayer(w http.ResponseWriter, r *http.Request) {
	gameID, ok := that.gameID(w, r, "handleRegisterPlayer")
	if !ok {
		return
	}

	var req registerPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, "handleRegisterPlayer", apperror.ErrInvalidArgument)
		return
	}

	game, err := that.uGame.RegisterPlayer(r.Context(), gameID, req.Name, req.Mark)
	if err != nil {
		that.writeError(w, "handleRegisterPlayer", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	gameID, ok := that.gameID(w, r, "handlePlay")
	if !ok {
		return
	}

	var req playRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Row == nil || req.Col == nil {
		that.writeError(w, "handlePlay", apperror.ErrInvalidArgument)
		return
	}

	game, won, err := that.uGame.Play(r.Context(), gameID, req.Name, *req.Row, *req.Col)
	if err != nil {
		that.writeError(w, "handlePlay", err)
		return
	}

	that.writeJSON(w, http.StatusOK, playResponse{Game: game, Won: won})
}

func (that *Server) handlePlayerResults(w http.ResponseWriter, r *http.Request) {
	results, err := that.uGame.PlayerResults(r.Context(), r.PathValue("name"))
	if err != nil {
		that.writeError(w, "handlePlayerResults", err)
		return
	}

	if results == nil {
		results = []*entity.Result{}
	}

	that.writeJSON(w, http.StatusOK, results)
}

// gameID - reads the {id} path value; malformed ids are answered with 404.
func (that *Server) gameID(w http.ResponseWriter, r *http.Request, method string) (string, bool) {
	gameID := r.PathValue("id")
	if err := pkg.CheckGameID(gameID); err != nil {
		that.writeError(w, method, err)
		return "", false
	}

	return gameID, true
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *Server) writeError(w http.ResponseWriter, method string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// statusFor - maps engine and storage errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidConfiguration),
		errors.Is(err, apperror.ErrInvalidArgument),
		errors.Is(err, apperror.ErrOutOfBounds):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrDuplicateName),
		errors.Is(err, apperror.ErrDuplicateMark),
		errors.Is(err, apperror.ErrRosterFull),
		errors.Is(err, apperror.ErrPlayersNotReady),
		errors.Is(err, apperror.ErrGameEnded),
		errors.Is(err, apperror.ErrUnknownPlayer),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrCellOccupied):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

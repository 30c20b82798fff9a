package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type uGame interface {
	CreateGame(ctx context.Context, size int) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	RegisterPlayer(ctx context.Context, gameID, name, mark string) (*entity.Game, error)
	Play(ctx context.Context, gameID, name string, row, col int) (*entity.Game, bool, error)
}

// client wraps a connection; gorilla allows only one concurrent writer.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (that *client) send(response Response) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.conn.WriteJSON(response); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

type Server struct {
	logger   *slog.Logger
	uGame    uGame
	upgrader websocket.Upgrader

	handlers map[string]func(ctx context.Context, c *client, msg *Message) error

	subscribersMutex sync.Mutex
	subscribers      map[string]map[*client]struct{} // game id -> watching connections
}

func New(logger *slog.Logger, uGame uGame) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},

		handlers:    make(map[string]func(context.Context, *client, *Message) error),
		subscribers: make(map[string]map[*client]struct{}),
	}

	server.handlers[actionNewGame] = server.handleNewGame
	server.handlers[actionJoinGame] = server.handleJoinGame
	server.handlers[actionTurn] = server.handleGameTurn
	server.handlers[actionState] = server.handleGameState

	return server
}

// Handler - the websocket endpoint.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.serveWebSocket)

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveWebSocket - upgrades the connection and processes its messages.
func (that *Server) serveWebSocket(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "serveWebSocket")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := &client{conn: conn}
	defer func() {
		that.unsubscribe(c)
		_ = conn.Close()
	}()

	log.Info("WebSocket connection established")

	if err = that.handleMessages(req.Context(), c); err != nil {
		log.Info("WebSocket connection closed", "reason", err)
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, c *client) error {
	log := that.logger.With("method", "handleMessages")

	for {
		var message Message
		if err := c.conn.ReadJSON(&message); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &syntaxErr) && !errors.As(err, &typeErr) {
				return err
			}

			log.Error("failed to unmarshal message", "error", err)
			if sendErr := c.send(errorMessage(actionError, "malformed message")); sendErr != nil {
				return sendErr
			}
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			if err := c.send(errorMessage(actionError, "unknown action "+message.Action)); err != nil {
				return err
			}
			continue
		}

		if err := handler(ctx, c, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

func (that *Server) subscribe(gameID string, c *client) {
	that.subscribersMutex.Lock()
	defer that.subscribersMutex.Unlock()

	if _, ok := that.subscribers[gameID]; !ok {
		that.subscribers[gameID] = make(map[*client]struct{})
	}

	that.subscribers[gameID][c] = struct{}{}
}

func (that *Server) unsubscribe(c *client) {
	that.subscribersMutex.Lock()
	defer that.subscribersMutex.Unlock()

	for gameID, clients := range that.subscribers {
		delete(clients, c)
		if len(clients) == 0 {
			delete(that.subscribers, gameID)
		}
	}
}

// broadcast - pushes the game to every watcher except the sender.
func (that *Server) broadcast(sender *client, game *entity.Game, won bool) {
	that.subscribersMutex.Lock()
	targets := make([]*client, 0, len(that.subscribers[game.ID]))
	for c := range that.subscribers[game.ID] {
		if c != sender {
			targets = append(targets, c)
		}
	}
	that.subscribersMutex.Unlock()

	for _, c := range targets {
		if err := c.send(Response{Action: actionUpdate, Payload: ResponsePayload{Game: game, Won: won}}); err != nil {
			that.logger.Error("failed to broadcast game", "game_id", game.ID, "error", err)
		}
	}
}

package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	ws "nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type gameUseCase interface {
	CreateGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	ResetGame(ctx context.Context, gameID string) (*entity.Game, error)

	StrategyMove(ctx context.Context, gameID, kind, mark string) (*entity.Game, error)
	HumanMove(ctx context.Context, gameID string, cell int, mark string) (*entity.Game, error)
	PlayAgainstComputer(ctx context.Context, gameID string, cell int, mark string) (*entity.Game, error)
}

type handlerFunc func(ctx context.Context, payload *RequestPayload) (*entity.Game, error)

type Server struct {
	logger *slog.Logger
	game   gameUseCase

	originPatterns []string

	handlers map[string]handlerFunc
}

// New - originPatterns are host patterns accepted in the Origin header, same host is always accepted.
func New(logger *slog.Logger, game gameUseCase, originPatterns []string) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		game:   game,

		originPatterns: originPatterns,
	}

	server.handlers = map[string]handlerFunc{
		actionGameNew:       server.handleNewGame,
		actionGameGet:       server.handleGetGame,
		actionGameReset:     server.handleResetGame,
		actionGameNextMove:  server.handleNextMove,
		actionGameHumanMove: server.handleHumanMove,
		actionGameMove:      server.handleMove,
	}

	return server
}

// ServeHTTP - upgrades the connection and serves messages until the client goes away.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := ws.Accept(writer, req, &ws.AcceptOptions{OriginPatterns: that.originPatterns})
	if err != nil {
		log.Error("failed to accept websocket connection", "error", err)
		return
	}
	defer conn.Close(ws.StatusInternalError, "internal error")

	log.Info("WebSocket connection established")

	if err = that.handleMessages(req.Context(), conn); err != nil {
		log.Error("error handling messages", "error", err)
		return
	}

	_ = conn.Close(ws.StatusNormalClosure, "")
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *ws.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if isClosed(err) {
				return nil
			}
			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Info("failed to unmarshal message", "error", err)
			if err = that.sendError(ctx, conn, "", "malformed message"); err != nil {
				return err
			}
			continue
		}

		if err = that.processMessage(ctx, conn, &message); err != nil {
			return err
		}
	}
}

func (that *Server) processMessage(ctx context.Context, conn *ws.Conn, message *Message) error {
	log := that.logger.With("method", "processMessage", "action", message.Action)

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Info("unknown action")
		return that.sendError(ctx, conn, message.Action, "unknown action")
	}

	var payload RequestPayload
	if len(message.Payload) > 0 {
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			log.Info("failed to unmarshal payload", "error", err)
			return that.sendError(ctx, conn, message.Action, "malformed payload")
		}
	}

	game, err := handler(ctx, &payload)
	if err != nil {
		log.Info("action failed", "gameID", payload.GameID, "error", err)
		return that.sendError(ctx, conn, message.Action, err.Error())
	}

	return that.sendMessage(ctx, conn, message.Action, ResponsePayload{Game: entity.NewGameReport(game)})
}

func (that *Server) sendError(ctx context.Context, conn *ws.Conn, action, reason string) error {
	return that.sendMessage(ctx, conn, action, ResponsePayload{Error: reason})
}

func (that *Server) sendMessage(ctx context.Context, conn *ws.Conn, action string, payload ResponsePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = wsjson.Write(ctx, conn, Message{Action: action, Payload: payloadJSON}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func isClosed(err error) bool {
	switch ws.CloseStatus(err) {
	case ws.StatusNormalClosure, ws.StatusGoingAway:
		return true
	default:
		return errors.Is(err, context.Canceled)
	}
}

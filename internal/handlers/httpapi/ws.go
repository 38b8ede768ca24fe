package httpapi

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/thirstylabs/chugline/internal/models"
	"github.com/thirstylabs/chugline/internal/services/game"
)

var upgrader = websocket.Upgrader{
	// The browser client is served from arbitrary hosts during
	// development; record ownership is enforced by the session cookie,
	// not the origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsUserMessage is one delivery on the own-record stream
type wsUserMessage struct {
	Record *userResponse `json:"record,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// wsLeaderboardMessage is one delivery on the leaderboard stream
type wsLeaderboardMessage struct {
	Entries []*models.LeaderboardEntry `json:"entries,omitempty"`
	Error   string                     `json:"error,omitempty"`
}

// handleWatchMe streams the caller's own record over a websocket. The
// stream starts with a snapshot and then mirrors every store change.
func (s *Server) handleWatchMe(w http.ResponseWriter, r *http.Request, uid string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response
		return
	}
	defer conn.Close()

	// Cancel the subscription when the peer goes away; hijacked
	// connections do not cancel the request context on their own.
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		discardReads(conn)
		cancel()
	}()

	output, err := s.gameService.WatchUser(ctx, &game.WatchUserInput{
		UserID: uid,
	})
	if err != nil {
		log.Printf("httpapi: failed to watch user %s: %v", uid, err)
		conn.WriteJSON(&wsUserMessage{Error: "failed to subscribe"})
		return
	}

	for event := range output.Events {
		msg := &wsUserMessage{}
		if event.Err != nil {
			msg.Error = event.Err.Error()
		} else {
			msg.Record = toUserResponse(event.Record)
		}

		if err := conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// handleWatchLeaderboard streams leaderboard projections over a
// websocket, one message per change to any record in the collection.
func (s *Server) handleWatchLeaderboard(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		discardReads(conn)
		cancel()
	}()

	output, err := s.gameService.WatchLeaderboard(ctx, &game.WatchLeaderboardInput{})
	if err != nil {
		log.Printf("httpapi: failed to watch leaderboard: %v", err)
		conn.WriteJSON(&wsLeaderboardMessage{Error: "failed to subscribe"})
		return
	}

	for event := range output.Events {
		if event.Err != nil {
			if err := conn.WriteJSON(&wsLeaderboardMessage{Error: event.Err.Error()}); err != nil {
				return
			}
			continue
		}

		if err := conn.WriteJSON(&wsLeaderboardMessage{Entries: event.Entries}); err != nil {
			return
		}
	}
}

// discardReads drains control and data frames until the connection closes
func discardReads(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

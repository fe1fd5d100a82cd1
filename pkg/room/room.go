package room

import (
	"errors"
	"sync"

	"dinogames-server/internal/rng"
	"dinogames-server/pkg/playable"

	"github.com/sirupsen/logrus"
)

// Room hosts one party and at most one running game. All game access is
// serialized through the run loop, so the games themselves never need locks.
type Room struct {
	ID string

	log  logrus.FieldLogger
	rand rng.Generator

	clients map[*Client]bool
	lock    sync.RWMutex

	// game must only be touched from the run loop
	game playable.Playable

	execInRunLoop chan func()
	stateChanged  chan struct{}
	close         chan bool
}

// NewRoom creates a room. Call Open to start its run loop.
func NewRoom(logger logrus.FieldLogger, id string, r rng.Generator) *Room {
	if r == nil {
		r = rng.Crypto{}
	}

	return &Room{
		ID:            id,
		log:           logger.WithField("room", id),
		rand:          r,
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		stateChanged:  make(chan struct{}, 256),
		close:         make(chan bool),
	}
}

// Open starts the run loop
func (r *Room) Open() {
	go r.runLoop()
}

// Close terminates the run loop
func (r *Room) Close() {
	close(r.close)
}

func (r *Room) runLoop() {
	r.log.Debug("room run loop started")

	for {
		select {
		case fn := <-r.execInRunLoop:
			fn()
		case <-r.stateChanged:
			r.broadcastGameState()
		case <-r.close:
			r.log.Debug("room run loop terminated")
			return
		}
	}
}

// Clients returns the connected clients
func (r *Room) Clients() []*Client {
	r.lock.RLock()
	defer r.lock.RUnlock()

	clients := make([]*Client, 0, len(r.clients))
	for client := range r.clients {
		clients = append(clients, client)
	}

	return clients
}

// AddClient connects a client to the room.
// This method must return quickly.
func (r *Room) AddClient(client *Client) {
	r.lock.Lock()
	client.room = r
	r.clients[client] = true
	r.lock.Unlock()

	r.execInRunLoop <- func() {
		if r.game == nil {
			return
		}

		state, err := r.game.GetPlayerState(client.PlayerID)
		if err != nil {
			r.log.WithError(err).Error("could not get player state")
			return
		}

		client.send(state)
	}
}

// RemoveClient disconnects a client. If they are in a running game, the game
// decides what their departure means.
// This method must return quickly.
func (r *Room) RemoveClient(client *Client) (lastClient bool) {
	r.lock.Lock()
	delete(r.clients, client)
	nClients := len(r.clients)
	r.lock.Unlock()

	r.execInRunLoop <- func() {
		if r.game == nil {
			return
		}

		if err := r.game.RemovePlayer(client.PlayerID); err != nil {
			r.log.WithError(err).WithField("player", client.PlayerID).Debug("departure not handled by game")
			return
		}

		r.notifyStateChanged()
	}

	return nClients == 0
}

// ReceivedMessage handles one message from a client.
// This method must return quickly; the work happens in the run loop.
func (r *Room) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	switch msg.Action {
	case "create-game":
		name, _ := msg.AdditionalData.GetString("game")
		r.execInRunLoop <- func() {
			if err := r.createGame(playable.GameType(name)); err != nil {
				c.send(newErrorResponse(msg.Context, err))
				return
			}

			c.send(playable.OK(msg.Context))
			r.notifyStateChanged()
		}

	case "join-game":
		r.execInRunLoop <- func() {
			if r.game == nil {
				c.send(newErrorResponse(msg.Context, errors.New("there is no game to join")))
				return
			}

			if err := r.game.AddPlayer(c.PlayerID, c.Name); err != nil {
				c.send(newErrorResponse(msg.Context, err))
				return
			}

			c.send(playable.OK(msg.Context))
			r.notifyStateChanged()
		}

	case "terminate-game":
		r.execInRunLoop <- func() {
			r.game = nil
			for _, client := range r.Clients() {
				client.send(&playable.Response{Key: "gameEnded", Context: msg.Context})
			}
		}

	default:
		r.execInRunLoop <- func() {
			if r.game == nil {
				c.send(newErrorResponse(msg.Context, errors.New("there is no game in progress")))
				return
			}

			response, updateState, err := r.game.Action(c.PlayerID, msg)
			if err != nil {
				c.send(newErrorResponse(msg.Context, err))
				return
			}

			if response != nil {
				c.send(response)
			}

			if updateState {
				r.notifyStateChanged()
			}
		}
	}
}

// createGame must only be called from the run loop
func (r *Room) createGame(gameType playable.GameType) error {
	if r.game != nil && !r.game.InLobby() {
		return errors.New("a game is already in progress")
	}

	game, err := newGame(r.log, gameType, r.rand)
	if err != nil {
		return err
	}

	r.game = game
	r.log.WithField("game", game.Key()).Info("game created")
	return nil
}

// notifyStateChanged must only be called from the run loop
func (r *Room) notifyStateChanged() {
	select {
	case r.stateChanged <- struct{}{}:
	default:
	}
}

// broadcastGameState must only be called from the run loop
func (r *Room) broadcastGameState() {
	if r.game == nil {
		return
	}

	for _, client := range r.Clients() {
		state, err := r.game.GetPlayerState(client.PlayerID)
		if err != nil {
			r.log.WithError(err).Error("could not get player state")
			continue
		}

		client.send(state)
	}
}

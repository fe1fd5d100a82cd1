package room

import (
	"github.com/google/uuid"

	"dinogames-server/pkg/playable"
)

// Client is one connected observer. The transport behind Send is owned by the
// caller; the room only ever writes responses into the channel and drops them
// if the client cannot keep up.
type Client struct {
	PlayerID     string
	Name         string
	SessionToken string

	Send chan *playable.Response

	room *Room
}

// NewClient returns a client with a fresh session token
func NewClient(playerID, name string) *Client {
	return &Client{
		PlayerID:     playerID,
		Name:         name,
		SessionToken: uuid.New().String(),
		Send:         make(chan *playable.Response, 256),
	}
}

// send writes the response without blocking the run loop
func (c *Client) send(res *playable.Response) {
	select {
	case c.Send <- res:
	default:
	}
}

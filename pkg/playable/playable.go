package playable

// GameType identifies one of the supported party games
type GameType string

// game type constants
const (
	GameTypePoker      GameType = "poker"
	GameTypePictionary GameType = "pictionary"
	GameTypeCodenames  GameType = "codenames"
)

// IsValid returns true if the game type is known
func (g GameType) IsValid() bool {
	switch g {
	case GameTypePoker, GameTypePictionary, GameTypeCodenames:
		return true
	}

	return false
}

// Playable is a game that can be hosted by a room
type Playable interface {
	// Action performs an action for the player
	// If playerResponse is not nil, that's the response sent directly to the player
	// If updateState is true, every observer should receive a fresh state view
	Action(playerID string, message *PayloadIn) (playerResponse *Response, updateState bool, err error)

	// GetPlayerState returns the current state of the game redacted for the player
	GetPlayerState(playerID string) (*Response, error)

	// AddPlayer seats a new player; games reject this outside their lobby phase
	AddPlayer(playerID, name string) error

	// RemovePlayer handles a player leaving the game
	RemovePlayer(playerID string) error

	// InLobby returns true while the game is still accepting players
	InLobby() bool

	// PlayerCount returns the number of seated players
	PlayerCount() int

	// Name returns the display name of the game
	Name() string

	// Key returns the game identifier
	Key() string
}

// Response is a container for a message to one or all observers
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

// PayloadIn is the format we expect from a client
type PayloadIn struct {
	Action         string         `json:"action"`
	AdditionalData AdditionalData `json:"additionalData"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// AdditionalData provides additional data in a payload
type AdditionalData map[string]interface{}

// GetString returns a string for the given key
func (a AdditionalData) GetString(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// GetInt returns an integer value for the given key
func (a AdditionalData) GetInt(key string) (int, bool) {
	switch val := a[key].(type) {
	case float64:
		return int(val), true
	case int:
		return val, true
	}

	return 0, false
}

// GetBool returns a boolean value for the given key
func (a AdditionalData) GetBool(key string) (bool, bool) {
	boolVal, ok := a[key].(bool)
	return boolVal, ok
}

package codenames

import "dinogames-server/pkg/playable"

// PublicCard hides the card type until the card is revealed
type PublicCard struct {
	Word     string   `json:"word"`
	Revealed bool     `json:"revealed"`
	Type     CardType `json:"type,omitempty"`
}

// PublicPlayer is the view of a player without their session token
type PublicPlayer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PublicState is the game state redacted for one observer. FullBoard is
// present only in the clue giver's view while they are composing a clue.
type PublicState struct {
	Phase            Phase          `json:"phase"`
	Players          []PublicPlayer `json:"players"`
	Board            []PublicCard   `json:"board"`
	CurrentClue      *Clue          `json:"currentClue"`
	GuessesRemaining int            `json:"guessesRemaining"`
	TurnsRemaining   int            `json:"turnsRemaining"`
	GreenRemaining   int            `json:"greenRemaining"`
	ClueGiverID      string         `json:"clueGiverId"`
	AwaitingClue     bool           `json:"awaitingClue"`
	FullBoard        []Card         `json:"fullBoard,omitempty"`
}

// GetPlayerState returns the redacted view for one observer
func (g *Game) GetPlayerState(playerID string) (*playable.Response, error) {
	board := make([]PublicCard, len(g.board))
	for i, card := range g.board {
		board[i] = PublicCard{Word: card.Word, Revealed: card.Revealed}
		if card.Revealed {
			board[i].Type = card.Type
		}
	}

	players := make([]PublicPlayer, len(g.players))
	for i, p := range g.players {
		players[i] = PublicPlayer{ID: p.ID, Name: p.Name}
	}

	state := PublicState{
		Phase:            g.phase,
		Players:          players,
		Board:            board,
		CurrentClue:      g.currentClue,
		GuessesRemaining: g.guessesRemaining,
		TurnsRemaining:   g.turnsRemaining,
		GreenRemaining:   g.greenRemaining,
		ClueGiverID:      g.clueGiverID,
		AwaitingClue:     g.awaitingClue,
	}

	// the clue giver sees every card type while composing a clue
	if g.phase == PhasePlaying && g.awaitingClue && playerID == g.clueGiverID {
		fullBoard := make([]Card, len(g.board))
		copy(fullBoard, g.board)
		state.FullBoard = fullBoard
	}

	return &playable.Response{
		Key:   "game",
		Value: g.Key(),
		Data:  state,
	}, nil
}

package pictionary

import "dinogames-server/pkg/playable"

// PublicPlayer is the view of a player without their session token
type PublicPlayer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Score     int    `json:"score"`
	IsDrawing bool   `json:"isDrawing"`
}

// PublicState is the game state redacted for one observer. WordChoices and
// Word appear only in the drawer's view; everyone else gets the word's length
// as a hint, and the word itself once the round is over.
type PublicState struct {
	Phase           Phase          `json:"phase"`
	Players         []PublicPlayer `json:"players"`
	CurrentDrawerID string         `json:"currentDrawerId"`
	Strokes         []Stroke       `json:"strokes"`
	RoundNumber     int            `json:"roundNumber"`
	TotalRounds     int            `json:"totalRounds"`
	Guesses         []Guess        `json:"guesses"`
	WordLength      int            `json:"wordLength"`
	WordChoices     []string       `json:"wordChoices,omitempty"`
	Word            string         `json:"word,omitempty"`
}

// GetPlayerState returns the redacted view for one observer
func (g *Game) GetPlayerState(playerID string) (*playable.Response, error) {
	isDrawer := playerID == g.currentDrawerID

	players := make([]PublicPlayer, len(g.players))
	for i, p := range g.players {
		players[i] = PublicPlayer{
			ID:        p.ID,
			Name:      p.Name,
			Score:     p.Score,
			IsDrawing: p.IsDrawing,
		}
	}

	// a correct guess would leak the word to anyone still guessing
	guesses := make([]Guess, len(g.guesses))
	for i, guess := range g.guesses {
		if guess.Correct {
			guess.Guess = "Correct!"
		}
		guesses[i] = guess
	}

	strokes := make([]Stroke, len(g.strokes))
	copy(strokes, g.strokes)

	state := PublicState{
		Phase:           g.phase,
		Players:         players,
		CurrentDrawerID: g.currentDrawerID,
		Strokes:         strokes,
		RoundNumber:     g.roundNumber,
		TotalRounds:     g.totalRounds,
		Guesses:         guesses,
		WordLength:      len(g.currentWord),
	}

	if isDrawer && g.phase == PhasePicking {
		choices := make([]string, len(g.wordChoices))
		copy(choices, g.wordChoices)
		state.WordChoices = choices
	}

	if isDrawer || g.phase == PhaseReveal || g.phase == PhaseEnded {
		state.Word = g.currentWord
	}

	return &playable.Response{
		Key:   "game",
		Value: g.Key(),
		Data:  state,
	}, nil
}

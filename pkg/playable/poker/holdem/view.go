package holdem

import "dinogames-server/pkg/deck"

// PublicPlayer is the view of a seat that every observer may see.
// Hole cards are reduced to a HasCards boolean.
type PublicPlayer struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Chips      int    `json:"chips"`
	CurrentBet int    `json:"currentBet"`
	Folded     bool   `json:"folded"`
	AllIn      bool   `json:"allIn"`
	IsDealer   bool   `json:"isDealer"`
	HasCards   bool   `json:"hasCards"`
}

// PublicState is the game state redacted for one observer. YourCards and
// LegalActions are present only in that observer's own view.
type PublicState struct {
	Phase             Phase          `json:"phase"`
	Players           []PublicPlayer `json:"players"`
	CommunityCards    deck.Hand      `json:"communityCards"`
	Pots              []Pot          `json:"pots"`
	CurrentBet        int            `json:"currentBet"`
	DealerIndex       int            `json:"dealerIndex"`
	ActivePlayerIndex int            `json:"activePlayerIndex"`
	SmallBlind        int            `json:"smallBlind"`
	BigBlind          int            `json:"bigBlind"`
	YourCards         deck.Hand      `json:"yourCards,omitempty"`
	LegalActions      *LegalActions  `json:"legalActions,omitempty"`
}

// PublicView projects the state for the observer. Other players' hole cards
// are never included, whoever asks.
func PublicView(s GameState, observerID string) PublicState {
	players := make([]PublicPlayer, len(s.Players))
	for i, p := range s.Players {
		players[i] = PublicPlayer{
			ID:         p.ID,
			Name:       p.Name,
			Chips:      p.Chips,
			CurrentBet: p.CurrentBet,
			Folded:     p.Folded,
			AllIn:      p.AllIn,
			IsDealer:   p.IsDealer,
			HasCards:   len(p.HoleCards) > 0,
		}
	}

	pots := make([]Pot, len(s.Pots))
	for i, pot := range s.Pots {
		eligible := make([]string, len(pot.EligiblePlayerIDs))
		copy(eligible, pot.EligiblePlayerIDs)
		pots[i] = Pot{Amount: pot.Amount, EligiblePlayerIDs: eligible}
	}

	view := PublicState{
		Phase:             s.Phase,
		Players:           players,
		CommunityCards:    s.CommunityCards.Clone(),
		Pots:              pots,
		CurrentBet:        s.CurrentBet,
		DealerIndex:       s.DealerIndex,
		ActivePlayerIndex: s.ActivePlayerIndex,
		SmallBlind:        s.SmallBlind,
		BigBlind:          s.BigBlind,
	}

	if observer := s.Player(observerID); observer != nil {
		view.YourCards = observer.HoleCards.Clone()

		if legal := LegalActionsFor(s, observerID); legal.CanFold {
			view.LegalActions = &legal
		}
	}

	return view
}

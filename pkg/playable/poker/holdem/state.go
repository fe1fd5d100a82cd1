package holdem

import (
	"dinogames-server/pkg/deck"
)

// Phase is a state machine state for a hand
type Phase string

// phase constants, in hand order
const (
	PhaseLobby    Phase = "lobby"
	PhasePreflop  Phase = "preflop"
	PhaseFlop     Phase = "flop"
	PhaseTurn     Phase = "turn"
	PhaseRiver    Phase = "river"
	PhaseShowdown Phase = "showdown"
)

// IsBettingStreet returns true for the four betting phases
func (p Phase) IsBettingStreet() bool {
	switch p {
	case PhasePreflop, PhaseFlop, PhaseTurn, PhaseRiver:
		return true
	}

	return false
}

// nextStreet returns the phase that follows a betting street
func (p Phase) nextStreet() Phase {
	switch p {
	case PhasePreflop:
		return PhaseFlop
	case PhaseFlop:
		return PhaseTurn
	case PhaseTurn:
		return PhaseRiver
	case PhaseRiver:
		return PhaseShowdown
	}

	panic("no street follows " + string(p))
}

// communityCardsOnReveal is how many cards are revealed on the transition into each street
func (p Phase) communityCardsOnReveal() int {
	switch p {
	case PhaseFlop:
		return 3
	case PhaseTurn, PhaseRiver:
		return 1
	}

	return 0
}

// Player is a seat at the table for the lifetime of a hand
type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Chips     int       `json:"chips"`
	HoleCards deck.Hand `json:"holeCards"`
	// CurrentBet is the amount wagered this street, not yet swept into a pot
	CurrentBet int `json:"currentBet"`
	// TotalBetThisHand is the cumulative wager this hand, used for side-pot tiers
	TotalBetThisHand int  `json:"totalBetThisHand"`
	Folded           bool `json:"folded"`
	AllIn            bool `json:"allIn"`
	IsDealer         bool `json:"isDealer"`
	// Acted is true once the player has acted since the street's last raise
	Acted bool `json:"acted"`
	// SessionToken is opaque to the engine; the session layer owns its meaning
	SessionToken string `json:"sessionToken"`
}

// CanAct returns true if the player may still take actions this hand
func (p *Player) CanAct() bool {
	return !p.Folded && !p.AllIn
}

// Pot is an amount and the set of players eligible to win it
type Pot struct {
	Amount            int      `json:"amount"`
	EligiblePlayerIDs []string `json:"eligiblePlayerIds"`
}

// Options configures a table
type Options struct {
	SmallBlind int
	BigBlind   int
}

// DefaultOptions returns the default table stakes
func DefaultOptions() Options {
	return Options{
		SmallBlind: 10,
		BigBlind:   20,
	}
}

// GameState is the complete state of one table. Operations never mutate a
// GameState in place; they clone it and return the new value.
type GameState struct {
	Phase          Phase     `json:"phase"`
	Players        []Player  `json:"players"`
	CommunityCards deck.Hand `json:"communityCards"`
	Pots           []Pot     `json:"pots"`
	// CurrentBet is the per-street amount each contesting player must match
	CurrentBet        int `json:"currentBet"`
	DealerIndex       int `json:"dealerIndex"`
	ActivePlayerIndex int `json:"activePlayerIndex"`
	LastRaiserIndex   int `json:"lastRaiserIndex"`
	// RaisesThisStreet counts raises; no cap is enforced (no-limit)
	RaisesThisStreet  int       `json:"raisesThisStreet"`
	ActionsThisStreet int       `json:"actionsThisStreet"`
	Deck              deck.Hand `json:"deck"`
	SmallBlind        int       `json:"smallBlind"`
	BigBlind          int       `json:"bigBlind"`
}

// NewState returns an empty table in the lobby phase
func NewState(opts Options) GameState {
	return GameState{
		Phase:             PhaseLobby,
		Players:           []Player{},
		CommunityCards:    deck.Hand{},
		Pots:              []Pot{},
		DealerIndex:       -1,
		ActivePlayerIndex: -1,
		LastRaiserIndex:   -1,
		SmallBlind:        opts.SmallBlind,
		BigBlind:          opts.BigBlind,
	}
}

// Clone returns a deep copy of the state
func (s GameState) Clone() GameState {
	s2 := s

	s2.Players = make([]Player, len(s.Players))
	copy(s2.Players, s.Players)
	for i := range s2.Players {
		s2.Players[i].HoleCards = s.Players[i].HoleCards.Clone()
	}

	s2.CommunityCards = s.CommunityCards.Clone()
	s2.Deck = s.Deck.Clone()

	s2.Pots = make([]Pot, len(s.Pots))
	for i, pot := range s.Pots {
		eligible := make([]string, len(pot.EligiblePlayerIDs))
		copy(eligible, pot.EligiblePlayerIDs)
		s2.Pots[i] = Pot{Amount: pot.Amount, EligiblePlayerIDs: eligible}
	}

	return s2
}

// PlayerIndex returns the seat of the player, or -1
func (s GameState) PlayerIndex(playerID string) int {
	for i, p := range s.Players {
		if p.ID == playerID {
			return i
		}
	}

	return -1
}

// Player returns the player by ID, or nil
func (s GameState) Player(playerID string) *Player {
	if i := s.PlayerIndex(playerID); i >= 0 {
		return &s.Players[i]
	}

	return nil
}

// CountContesting returns the number of players who have not folded
func CountContesting(s GameState) int {
	count := 0
	for _, p := range s.Players {
		if !p.Folded {
			count++
		}
	}

	return count
}

// countActionable returns the number of players who are neither folded nor all-in
func countActionable(s GameState) int {
	count := 0
	for _, p := range s.Players {
		if p.CanAct() {
			count++
		}
	}

	return count
}

// TotalChips sums stacks, swept pots, and unswept street bets.
// During a hand this is invariant; it is the chip-conservation check.
func (s GameState) TotalChips() int {
	total := 0
	for _, p := range s.Players {
		total += p.Chips + p.CurrentBet
	}

	for _, pot := range s.Pots {
		total += pot.Amount
	}

	return total
}

// nextActionableFrom returns the first seat at or after start (wrapping) that can act, or -1
func (s GameState) nextActionableFrom(start int) int {
	n := len(s.Players)
	for i := 0; i < n; i++ {
		index := (start + i) % n
		if s.Players[index].CanAct() {
			return index
		}
	}

	return -1
}

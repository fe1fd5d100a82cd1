package holdem

import (
	"errors"
	"fmt"

	"dinogames-server/internal/rng"
	"dinogames-server/pkg/deck"
)

// ErrHandInProgress is returned when a lobby-only operation is attempted mid-hand
var ErrHandInProgress = errors.New("a hand is in progress")

// ErrNotEnoughPlayers is returned when a hand cannot be started
var ErrNotEnoughPlayers = errors.New("there must be at least two players")

// AddPlayer seats a new player. Players may only join in the lobby or between hands.
func AddPlayer(s GameState, playerID, name, sessionToken string, chips int) (GameState, error) {
	if s.Phase != PhaseLobby && s.Phase != PhaseShowdown {
		return s, ErrHandInProgress
	}

	if s.PlayerIndex(playerID) >= 0 {
		return s, fmt.Errorf("player %s is already seated", playerID)
	}

	if chips <= 0 {
		return s, errors.New("cannot seat a player without chips")
	}

	s2 := s.Clone()
	s2.Players = append(s2.Players, Player{
		ID:           playerID,
		Name:         name,
		Chips:        chips,
		SessionToken: sessionToken,
	})

	return s2, nil
}

// RemovePlayer removes a seated player. Only legal in the lobby or between
// hands; a mid-hand departure must go through ApplyAction or MarkFolded.
func RemovePlayer(s GameState, playerID string) (GameState, error) {
	if s.Phase != PhaseLobby && s.Phase != PhaseShowdown {
		return s, ErrHandInProgress
	}

	removed := s.PlayerIndex(playerID)
	if removed < 0 {
		return s, fmt.Errorf("player %s is not seated", playerID)
	}

	s2 := s.Clone()
	s2.Players = append(s2.Players[:removed], s2.Players[removed+1:]...)

	n := len(s2.Players)
	if n == 0 {
		s2.DealerIndex = -1
		s2.ActivePlayerIndex = -1
		s2.LastRaiserIndex = -1
		return s2, nil
	}

	if removed < s2.DealerIndex {
		s2.DealerIndex--
	} else if removed == s2.DealerIndex {
		s2.DealerIndex = s2.DealerIndex % n
	}

	return s2, nil
}

// MarkFolded folds a seat out of turn. The session layer uses this when a
// player disconnects mid-hand while it is not their turn.
func MarkFolded(s GameState, playerID string) GameState {
	index := s.PlayerIndex(playerID)
	if index < 0 || s.Players[index].Folded {
		return s
	}

	s2 := s.Clone()
	s2.Players[index].Folded = true
	return s2
}

// StartNewHand rotates the button, posts blinds, shuffles, and deals.
// The previous hand's bets and cards are discarded; chip stacks carry over.
func StartNewHand(s GameState, r rng.Generator) (GameState, error) {
	if s.Phase != PhaseLobby && s.Phase != PhaseShowdown {
		return s, ErrHandInProgress
	}

	if len(s.Players) < 2 {
		return s, ErrNotEnoughPlayers
	}

	s2 := s.Clone()
	n := len(s2.Players)

	s2.DealerIndex = (s2.DealerIndex + 1) % n

	for i := range s2.Players {
		p := &s2.Players[i]
		p.HoleCards = deck.Hand{}
		p.CurrentBet = 0
		p.TotalBetThisHand = 0
		p.Folded = false
		p.AllIn = false
		p.Acted = false
		p.IsDealer = i == s2.DealerIndex
	}

	// heads-up: the button posts the small blind
	smallBlindIndex := (s2.DealerIndex + 1) % n
	bigBlindIndex := (s2.DealerIndex + 2) % n
	if n == 2 {
		smallBlindIndex = s2.DealerIndex
		bigBlindIndex = (s2.DealerIndex + 1) % n
	}

	postBlind(&s2.Players[smallBlindIndex], s2.SmallBlind)
	postBlind(&s2.Players[bigBlindIndex], s2.BigBlind)

	d := deck.New()
	d.Shuffle(r)

	for i := 0; i < 2; i++ {
		for offset := 1; offset <= n; offset++ {
			index := (s2.DealerIndex + offset) % n
			card, err := d.Draw()
			if err != nil {
				return s, err
			}

			s2.Players[index].HoleCards.AddCard(card)
		}
	}

	s2.Deck = d.Cards
	s2.CommunityCards = deck.Hand{}
	s2.Pots = []Pot{}
	s2.Phase = PhasePreflop
	s2.CurrentBet = s2.BigBlind
	s2.RaisesThisStreet = 0
	s2.ActionsThisStreet = 0

	// the big blind is the street's opening aggression; a fully called round
	// closes when action returns to that seat
	s2.LastRaiserIndex = bigBlindIndex
	s2.Players[bigBlindIndex].Acted = true

	s2.ActivePlayerIndex = s2.nextActionableFrom((bigBlindIndex + 1) % n)

	return s2, nil
}

func postBlind(p *Player, blind int) {
	amount := blind
	if amount >= p.Chips {
		amount = p.Chips
		p.AllIn = true
	}

	p.Chips -= amount
	p.CurrentBet = amount
	p.TotalBetThisHand = amount
}

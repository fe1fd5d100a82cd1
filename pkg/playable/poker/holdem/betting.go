package holdem

import (
	"errors"
	"fmt"
)

// ErrNotYourTurn is returned when a player acts out of turn
var ErrNotYourTurn = errors.New("it is not your turn")

// ErrIllegalAction is returned when the requested action is not permitted
var ErrIllegalAction = errors.New("that action is not permitted")

// ApplyAction applies one validated action for the acting player and advances
// the action pointer. The input state is never mutated; on error it is
// returned unchanged.
func ApplyAction(s GameState, playerID string, act Action) (GameState, error) {
	if !s.Phase.IsBettingStreet() {
		return s, fmt.Errorf("cannot act during %s", s.Phase)
	}

	index := s.PlayerIndex(playerID)
	if index < 0 {
		return s, fmt.Errorf("player %s is not seated", playerID)
	}

	if index != s.ActivePlayerIndex {
		return s, ErrNotYourTurn
	}

	legal := LegalActionsFor(s, playerID)
	if !legal.allows(act) {
		return s, ErrIllegalAction
	}

	s2 := s.Clone()
	p := &s2.Players[index]

	switch act.Type {
	case ActionFold:
		p.Folded = true

	case ActionCheck:
		// no chip movement

	case ActionCall:
		moveChips(p, legal.CallAmount)

	case ActionRaise:
		moveChips(p, legal.MinRaise-p.CurrentBet)
		s2.reopenBetting(index)

	case ActionAllIn:
		moveChips(p, p.Chips)
		if p.CurrentBet > s2.CurrentBet {
			// an all-in above the current bet is a raise
			s2.reopenBetting(index)
		}
		// otherwise it is a short call and does not reopen betting

	default:
		panic(fmt.Sprintf("unknown action type: %d", act.Type))
	}

	p.Acted = true
	s2.ActionsThisStreet++
	s2.ActivePlayerIndex = s2.nextActionableFrom((index + 1) % len(s2.Players))

	return s2, nil
}

// moveChips takes amount from the player's stack into their street bet,
// marking them all-in when the stack is exhausted
func moveChips(p *Player, amount int) {
	if amount >= p.Chips {
		amount = p.Chips
		p.AllIn = true
	}

	p.Chips -= amount
	p.CurrentBet += amount
	p.TotalBetThisHand += amount
}

// reopenBetting records a raise from the seat and puts every other contesting
// player back on the clock
func (s *GameState) reopenBetting(index int) {
	s.CurrentBet = s.Players[index].CurrentBet
	s.LastRaiserIndex = index
	s.RaisesThisStreet++

	for i := range s.Players {
		if i != index {
			s.Players[i].Acted = false
		}
	}
}

// IsStreetComplete returns true once every player who can still act has
// matched the current bet and acted since the last raise. That is the moment
// the action pointer has returned to the last raiser (or, with no raise, to
// the street's first seat to act).
func IsStreetComplete(s GameState) bool {
	if !s.Phase.IsBettingStreet() {
		return false
	}

	actionable := countActionable(s)

	for i := range s.Players {
		p := &s.Players[i]
		if !p.CanAct() {
			continue
		}

		if p.CurrentBet != s.CurrentBet {
			return false
		}

		// a lone remaining bettor has nobody left to bet against, so a
		// matched bet completes the street without a further action
		if !p.Acted && actionable > 1 {
			return false
		}
	}

	return true
}

// IsAutoShowdownDue returns true when betting is finished for the hand before
// the river: everyone still contesting is all-in (or all but one, matched).
// The board must then be run out with no further betting.
func IsAutoShowdownDue(s GameState) bool {
	if s.Phase != PhasePreflop && s.Phase != PhaseFlop && s.Phase != PhaseTurn {
		return false
	}

	if CountContesting(s) < 2 {
		return false
	}

	return countActionable(s) <= 1 && IsStreetComplete(s)
}

// AdvanceStreet sweeps the completed street's bets into pots, reveals the next
// street's community cards, and resets the betting round.
func AdvanceStreet(s GameState) (GameState, error) {
	if !s.Phase.IsBettingStreet() {
		return s, fmt.Errorf("cannot advance from %s", s.Phase)
	}

	if s.Phase == PhaseRiver {
		return s, errors.New("no street follows the river; run the showdown")
	}

	if !IsStreetComplete(s) {
		return s, errors.New("betting round is not complete")
	}

	s2 := s.Clone()
	s2.sweepBets()

	next := s2.Phase.nextStreet()
	if err := s2.revealCommunityCards(next.communityCardsOnReveal()); err != nil {
		return s, err
	}

	s2.Phase = next
	s2.CurrentBet = 0
	s2.RaisesThisStreet = 0
	s2.ActionsThisStreet = 0
	s2.LastRaiserIndex = -1
	for i := range s2.Players {
		s2.Players[i].Acted = false
	}

	// post-flop action starts at the first live seat clockwise from the button
	s2.ActivePlayerIndex = s2.nextActionableFrom((s2.DealerIndex + 1) % len(s2.Players))

	return s2, nil
}

// RunOutBoard deals every remaining community card with no betting.
// Used when all contesting players are already all-in.
func RunOutBoard(s GameState) (GameState, error) {
	if !s.Phase.IsBettingStreet() {
		return s, fmt.Errorf("cannot run out the board from %s", s.Phase)
	}

	s2 := s.Clone()
	s2.sweepBets()

	for s2.Phase != PhaseRiver {
		next := s2.Phase.nextStreet()
		if err := s2.revealCommunityCards(next.communityCardsOnReveal()); err != nil {
			return s, err
		}

		s2.Phase = next
	}

	s2.CurrentBet = 0
	s2.RaisesThisStreet = 0
	s2.ActionsThisStreet = 0
	s2.LastRaiserIndex = -1
	s2.ActivePlayerIndex = -1

	return s2, nil
}

// revealCommunityCards moves count cards from the deck onto the board
func (s *GameState) revealCommunityCards(count int) error {
	if len(s.Deck) < count {
		return errors.New("deck exhausted")
	}

	for i := 0; i < count; i++ {
		s.CommunityCards.AddCard(s.Deck[0])
		s.Deck = s.Deck[1:]
	}

	return nil
}

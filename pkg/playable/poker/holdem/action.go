package holdem

import "fmt"

// ActionType enumerates the closed set of player actions
type ActionType int

// action type constants
const (
	ActionFold ActionType = iota
	ActionCheck
	ActionCall
	ActionRaise
	ActionAllIn
)

// String returns the wire identifier of the action type
func (t ActionType) String() string {
	switch t {
	case ActionFold:
		return "fold"
	case ActionCheck:
		return "check"
	case ActionCall:
		return "call"
	case ActionRaise:
		return "raise"
	case ActionAllIn:
		return "all-in"
	default:
		panic(fmt.Sprintf("unknown action type: %d", t))
	}
}

// ActionTypeFromString returns an action type for the given identifier
func ActionTypeFromString(s string) (ActionType, error) {
	switch s {
	case "fold":
		return ActionFold, nil
	case "check":
		return ActionCheck, nil
	case "call":
		return ActionCall, nil
	case "raise":
		return ActionRaise, nil
	case "all-in":
		return ActionAllIn, nil
	}

	return 0, fmt.Errorf("unknown action for identifier: %s", s)
}

// Action is one requested move. Amount is only meaningful for raises; zero
// means "the table's single raise size".
type Action struct {
	Type   ActionType `json:"type"`
	Amount int        `json:"amount,omitempty"`
}

// LegalActions describes what the acting player may do and the exact amounts
type LegalActions struct {
	CanFold    bool `json:"canFold"`
	CanCheck   bool `json:"canCheck"`
	CanCall    bool `json:"canCall"`
	CallAmount int  `json:"callAmount"`
	CanRaise   bool `json:"canRaise"`
	// MinRaise == MaxRaise: a single raise size is offered, no free-form sizing
	MinRaise    int  `json:"minRaise"`
	MaxRaise    int  `json:"maxRaise"`
	CanAllIn    bool `json:"canAllIn"`
	AllInAmount int  `json:"allInAmount"`
}

// LegalActionsFor enumerates the permitted actions for the player.
// Every permission is false unless the hand is on a betting street and it is
// the player's turn.
func LegalActionsFor(s GameState, playerID string) LegalActions {
	var legal LegalActions

	if !s.Phase.IsBettingStreet() {
		return legal
	}

	index := s.PlayerIndex(playerID)
	if index < 0 || index != s.ActivePlayerIndex {
		return legal
	}

	p := s.Players[index]
	if !p.CanAct() {
		return legal
	}

	legal.CanFold = true
	legal.CanCheck = p.CurrentBet == s.CurrentBet

	toCall := s.CurrentBet - p.CurrentBet
	if toCall > 0 && p.Chips > 0 {
		legal.CanCall = true
		legal.CallAmount = toCall
		if legal.CallAmount > p.Chips {
			legal.CallAmount = p.Chips
		}
	}

	// single-sizing: one raise increment of the big blind over the current bet
	minRaise := s.CurrentBet + s.BigBlind
	if p.Chips > legal.CallAmount && p.CurrentBet+p.Chips >= minRaise {
		legal.CanRaise = true
		legal.MinRaise = minRaise
		legal.MaxRaise = minRaise
	}

	if p.Chips > 0 {
		legal.CanAllIn = true
		legal.AllInAmount = p.Chips
	}

	return legal
}

// allows reports whether the requested action is legal, including exact-amount
// checking for raises
func (l LegalActions) allows(act Action) bool {
	switch act.Type {
	case ActionFold:
		return l.CanFold
	case ActionCheck:
		return l.CanCheck
	case ActionCall:
		return l.CanCall
	case ActionRaise:
		if !l.CanRaise {
			return false
		}

		return act.Amount == 0 || act.Amount == l.MinRaise
	case ActionAllIn:
		return l.CanAllIn
	default:
		return false
	}
}

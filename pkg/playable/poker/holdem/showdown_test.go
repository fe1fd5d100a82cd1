package holdem

import (
	"testing"

	"dinogames-server/internal/rng"
	"dinogames-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

// riverState builds a table on the river with bets already committed, ready
// for a showdown
func riverState(board string, players ...Player) GameState {
	s := NewState(DefaultOptions())
	s.Phase = PhaseRiver
	s.Players = players
	s.CommunityCards = deck.CardsFromString(board)
	s.DealerIndex = 0
	s.ActivePlayerIndex = -1

	return s
}

func showdownPlayer(id string, chips int, total int, cards string, folded bool) Player {
	return Player{
		ID:               id,
		Name:             id,
		Chips:            chips,
		HoleCards:        deck.CardsFromString(cards),
		TotalBetThisHand: total,
		Folded:           folded,
	}
}

func TestRunShowdown_bestHandTakesThePot(t *testing.T) {
	a := assert.New(t)

	s := riverState("10c,11c,12c,2d,3d",
		showdownPlayer("a", 900, 100, "14c,13c", false), // royal flush
		showdownPlayer("b", 900, 100, "8c,9c", false),   // queen-high straight flush
	)

	s, results, err := RunShowdown(s)
	a.NoError(err)
	a.Equal(PhaseShowdown, s.Phase)

	a.Len(results, 2)

	a.Equal("a", results[0].PlayerID)
	a.True(results[0].IsWinner)
	a.Equal(200, results[0].PotWon)
	a.Equal("Royal flush", results[0].HandName)
	a.Equal("Apex Stampede", results[0].DinoHandName)
	a.Equal("14c,13c", deck.CardsToString(results[0].HoleCards))

	a.Equal("b", results[1].PlayerID)
	a.False(results[1].IsWinner)
	a.Equal(0, results[1].PotWon)
	a.Equal("Straight flush", results[1].HandName)

	a.Equal(1100, s.Player("a").Chips)
	a.Equal(900, s.Player("b").Chips)
}

func TestRunShowdown_uncontested(t *testing.T) {
	a := assert.New(t)

	// everyone folded to c preflop; no cards are dealt face up and no hands
	// are evaluated
	s := newTestState(1000, "a", "b", "c")
	s, err := StartNewHand(s, rng.NewSeeded(42))
	a.NoError(err)

	s, err = ApplyAction(s, "a", Action{Type: ActionFold})
	a.NoError(err)
	s, err = ApplyAction(s, "b", Action{Type: ActionFold})
	a.NoError(err)

	s, results, err := RunShowdown(s)
	a.NoError(err)

	a.Equal(PhaseShowdown, s.Phase)
	a.Empty(s.CommunityCards)

	a.Len(results, 1)
	a.Equal("c", results[0].PlayerID)
	a.True(results[0].IsWinner)
	a.Equal(30, results[0].PotWon)
	a.Empty(results[0].HoleCards)
	a.Empty(results[0].HandName)

	a.Equal(1010, s.Player("c").Chips)
	a.Equal(990, s.Player("b").Chips)
}

func TestRunShowdown_tieSplitsPotOddChipLeftOfButton(t *testing.T) {
	a := assert.New(t)

	// the board plays for both live hands; c folded after putting in one chip
	s := riverState("10s,11s,12s,13s,14s",
		showdownPlayer("a", 950, 50, "2c,3c", false),
		showdownPlayer("b", 950, 50, "4d,5d", false),
		showdownPlayer("c", 999, 1, "", true),
	)
	s.DealerIndex = 2

	s, results, err := RunShowdown(s)
	a.NoError(err)

	a.Len(results, 2)
	a.True(results[0].IsWinner)
	a.True(results[1].IsWinner)
	a.Equal(results[0].HandRank, results[1].HandRank)

	// the 101-chip pot splits 51/50; the odd chip lands on the first winner
	// clockwise from the button
	a.Equal(51, results[0].PotWon)
	a.Equal(50, results[1].PotWon)
	a.Equal(1001, s.Player("a").Chips)
	a.Equal(1000, s.Player("b").Chips)
	a.Equal(999, s.Player("c").Chips)
}

func TestRunShowdown_sidePotEligibility(t *testing.T) {
	a := assert.New(t)

	// a is all-in short with the best hand: a takes the main pot only and the
	// side pot goes to the best hand among the full-stack players
	s := riverState("10c,11c,12c,2d,3d",
		showdownPlayer("a", 0, 50, "14c,13c", false), // royal flush, all-in
		showdownPlayer("b", 900, 100, "8c,9c", false), // straight flush
		showdownPlayer("c", 900, 100, "2h,2s", false), // three of a kind
	)
	s.Players[0].AllIn = true

	s, results, err := RunShowdown(s)
	a.NoError(err)

	a.Len(results, 3)

	byID := make(map[string]ShowdownResult)
	for _, result := range results {
		byID[result.PlayerID] = result
	}

	a.True(byID["a"].IsWinner)
	a.Equal(150, byID["a"].PotWon)
	a.True(byID["b"].IsWinner)
	a.Equal(100, byID["b"].PotWon)
	a.False(byID["c"].IsWinner)

	a.Equal(150, s.Player("a").Chips)
	a.Equal(1000, s.Player("b").Chips)
	a.Equal(900, s.Player("c").Chips)
}

func TestRunShowdown_sweepsUnsweptBets(t *testing.T) {
	a := assert.New(t)

	// river bets still sitting in front of the players are swept before paying
	s := riverState("2c,7d,9h,11c,3s",
		showdownPlayer("a", 900, 100, "14c,14d", false), // pair of aces
		showdownPlayer("b", 900, 100, "13c,13d", false), // pair of kings
	)
	s.Players[0].CurrentBet = 50
	s.Players[0].TotalBetThisHand = 100
	s.Players[1].CurrentBet = 50
	s.Players[1].TotalBetThisHand = 100

	s, results, err := RunShowdown(s)
	a.NoError(err)

	a.Equal(200, results[0].PotWon)
	a.Equal(1100, s.Player("a").Chips)
	a.Equal(0, s.Player("a").CurrentBet)
}

func TestRunShowdown_errors(t *testing.T) {
	a := assert.New(t)

	s := riverState("10c,11c,12c,2d,3d",
		showdownPlayer("a", 900, 100, "14c,13c", false),
		showdownPlayer("b", 900, 100, "8c,9c", false),
	)
	s.Phase = PhaseShowdown
	_, _, err := RunShowdown(s)
	a.EqualError(err, "cannot run a showdown from showdown")

	// a contested showdown needs a complete board
	s.Phase = PhaseTurn
	s.CommunityCards = deck.CardsFromString("10c,11c,12c,2d")
	_, _, err = RunShowdown(s)
	a.EqualError(err, "cannot evaluate hands with 4 community cards")

	s.Players[0].Folded = true
	s.Players[1].Folded = true
	_, _, err = RunShowdown(s)
	a.EqualError(err, "no players are contesting the hand")
}

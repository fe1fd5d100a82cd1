package holdem

import (
	"errors"
	"fmt"
	"sort"

	"dinogames-server/pkg/deck"
	"dinogames-server/pkg/playable/poker/handrank"
)

// ShowdownResult reports the outcome for one player still in the hand
type ShowdownResult struct {
	PlayerID     string    `json:"playerId"`
	Name         string    `json:"name"`
	HoleCards    deck.Hand `json:"holeCards,omitempty"`
	HandName     string    `json:"handName,omitempty"`
	DinoHandName string    `json:"dinoHandName,omitempty"`
	HandRank     int       `json:"handRank,omitempty"`
	IsWinner     bool      `json:"isWinner"`
	PotWon       int       `json:"potWon"`
}

// RunShowdown resolves every pot and credits the winners' stacks. The hand
// moves to the terminal showdown phase and the state becomes read-only until
// the next hand is started.
//
// With only one player left contesting, that player is awarded every pot
// immediately: no hands are evaluated and no hole cards are revealed.
func RunShowdown(s GameState) (GameState, []ShowdownResult, error) {
	if !s.Phase.IsBettingStreet() {
		return s, nil, fmt.Errorf("cannot run a showdown from %s", s.Phase)
	}

	contesting := CountContesting(s)
	if contesting == 0 {
		return s, nil, errors.New("no players are contesting the hand")
	}

	s2 := s.Clone()
	s2.sweepBets()

	if contesting == 1 {
		results := s2.awardUncontested()
		s2.Phase = PhaseShowdown
		s2.ActivePlayerIndex = -1
		return s2, results, nil
	}

	if len(s2.CommunityCards) != 5 {
		return s, nil, fmt.Errorf("cannot evaluate hands with %d community cards", len(s2.CommunityCards))
	}

	ranks := make(map[string]*handrank.HandRank)
	resultByID := make(map[string]*ShowdownResult)
	results := make([]*ShowdownResult, 0, contesting)

	for _, p := range s2.Players {
		if p.Folded {
			continue
		}

		cards := append(p.HoleCards.Clone(), s2.CommunityCards...)
		rank := handrank.Evaluate(cards)
		ranks[p.ID] = rank

		result := &ShowdownResult{
			PlayerID:     p.ID,
			Name:         p.Name,
			HoleCards:    p.HoleCards.Clone(),
			HandName:     rank.Category.String(),
			DinoHandName: rank.Category.DinoName(),
			HandRank:     rank.Strength(),
		}
		resultByID[p.ID] = result
		results = append(results, result)
	}

	for _, pot := range s2.Pots {
		winners := s2.potWinners(pot, ranks)
		if len(winners) == 0 {
			// defensive: a pot's eligible players cannot all be folded
			continue
		}

		share := pot.Amount / len(winners)
		remainder := pot.Amount % len(winners)

		for i, index := range winners {
			won := share
			// odd chips go one at a time starting left of the button
			if i < remainder {
				won++
			}

			s2.Players[index].Chips += won
			result := resultByID[s2.Players[index].ID]
			result.IsWinner = true
			result.PotWon += won
		}
	}

	s2.Phase = PhaseShowdown
	s2.ActivePlayerIndex = -1

	out := make([]ShowdownResult, len(results))
	for i, r := range results {
		out[i] = *r
	}

	return s2, out, nil
}

// awardUncontested pays every pot to the lone remaining player
func (s *GameState) awardUncontested() []ShowdownResult {
	var winner *Player
	for i := range s.Players {
		if !s.Players[i].Folded {
			winner = &s.Players[i]
			break
		}
	}

	won := 0
	for _, pot := range s.Pots {
		won += pot.Amount
	}

	winner.Chips += won

	return []ShowdownResult{{
		PlayerID: winner.ID,
		Name:     winner.Name,
		IsWinner: true,
		PotWon:   won,
	}}
}

// potWinners returns the seats of the pot's strongest eligible hands, ordered
// clockwise starting from the seat left of the button
func (s *GameState) potWinners(pot Pot, ranks map[string]*handrank.HandRank) []int {
	best := -1
	winners := make([]int, 0, len(pot.EligiblePlayerIDs))

	for _, id := range pot.EligiblePlayerIDs {
		index := s.PlayerIndex(id)
		if index < 0 || s.Players[index].Folded {
			continue
		}

		rank, ok := ranks[id]
		if !ok {
			continue
		}

		if strength := rank.Strength(); strength > best {
			best = strength
			winners = winners[:0]
			winners = append(winners, index)
		} else if strength == best {
			winners = append(winners, index)
		}
	}

	n := len(s.Players)
	sort.Slice(winners, func(i, j int) bool {
		return (winners[i]-s.DealerIndex-1+n)%n < (winners[j]-s.DealerIndex-1+n)%n
	})

	return winners
}

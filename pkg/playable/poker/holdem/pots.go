package holdem

import "sort"

// sweepBets folds every street bet so far into the pot structure.
// Pots are recomputed from each player's total contribution, so sweeping is
// idempotent and chips are never counted twice.
func (s *GameState) sweepBets() {
	s.Pots = allocatePots(s.Players)

	for i := range s.Players {
		s.Players[i].CurrentBet = 0
	}
}

// allocatePots derives the layered pots from total contributions.
//
// The tiers are the distinct totals of the players still contesting, in
// ascending order. Every player, folded or not, feeds each tier with the part
// of their contribution that falls inside it; only non-folded players who
// reached a tier are eligible to win it. Contributions from folded players
// above the top tier cannot form a pot of their own and join the top pot.
func allocatePots(players []Player) []Pot {
	levels := make([]int, 0, len(players))
	seen := make(map[int]bool)
	for _, p := range players {
		if !p.Folded && p.TotalBetThisHand > 0 && !seen[p.TotalBetThisHand] {
			seen[p.TotalBetThisHand] = true
			levels = append(levels, p.TotalBetThisHand)
		}
	}

	if len(levels) == 0 {
		return []Pot{}
	}

	sort.Ints(levels)

	pots := make([]Pot, 0, len(levels))
	prev := 0
	for _, level := range levels {
		amount := 0
		eligible := make([]string, 0, len(players))

		for _, p := range players {
			contribution := p.TotalBetThisHand
			if contribution > level {
				contribution = level
			}

			if contribution > prev {
				amount += contribution - prev
			}

			if !p.Folded && p.TotalBetThisHand >= level {
				eligible = append(eligible, p.ID)
			}
		}

		pots = append(pots, Pot{Amount: amount, EligiblePlayerIDs: eligible})
		prev = level
	}

	// folded contributions above the top tier
	top := levels[len(levels)-1]
	for _, p := range players {
		if p.TotalBetThisHand > top {
			pots[len(pots)-1].Amount += p.TotalBetThisHand - top
		}
	}

	return pots
}

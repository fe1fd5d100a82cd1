package handrank

import (
	"fmt"
	"math"
	"sort"

	"dinogames-server/pkg/deck"
)

// HandRank is the best five-card hand that can be formed from a set of cards
type HandRank struct {
	Category Category `json:"category"`
	// TieBreak holds exactly five ranks in order of significance.
	// Categories with fewer significant ranks are zero-padded.
	TieBreak []int `json:"tieBreak"`

	strength int
}

// Evaluate determines the best five-card hand from between five and seven cards
func Evaluate(cards []deck.Card) *HandRank {
	if len(cards) < 5 || len(cards) > 7 {
		panic(fmt.Sprintf("cannot evaluate %d cards", len(cards)))
	}

	ranks := make([]int, 0, len(cards))
	countByRank := make(map[int]int)
	bySuit := make(map[deck.Suit][]int)

	for _, card := range cards {
		ranks = append(ranks, card.Rank)
		countByRank[card.Rank]++
		bySuit[card.Suit] = append(bySuit[card.Suit], card.Rank)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	var flushRanks []int
	for _, suited := range bySuit {
		if len(suited) >= 5 {
			sort.Sort(sort.Reverse(sort.IntSlice(suited)))
			flushRanks = suited
			break
		}
	}

	if flushRanks != nil {
		if high, ok := bestStraight(flushRanks); ok {
			category := StraightFlush
			if high == deck.Ace {
				category = RoyalFlush
			}

			return newHandRank(category, high)
		}
	}

	quads, trips, pairs := groupRanks(countByRank)

	if len(quads) > 0 {
		quad := quads[0]
		return newHandRank(FourOfAKind, quad, highestExcept(ranks, 1, quad))
	}

	if len(trips) > 0 {
		// the pair of a full house may come from a second set of trips
		if len(pairs) > 0 && (len(trips) < 2 || pairs[0] > trips[1]) {
			return newHandRank(FullHouse, trips[0], pairs[0])
		}

		if len(trips) >= 2 {
			return newHandRank(FullHouse, trips[0], trips[1])
		}
	}

	if flushRanks != nil {
		return newHandRank(Flush, flushRanks[:5]...)
	}

	if high, ok := bestStraight(ranks); ok {
		return newHandRank(Straight, high)
	}

	if len(trips) > 0 {
		kickers := topExcept(ranks, 2, trips[0])
		return newHandRank(ThreeOfAKind, append([]int{trips[0]}, kickers...)...)
	}

	if len(pairs) >= 2 {
		kicker := highestExcept(ranks, 1, pairs[0], pairs[1])
		return newHandRank(TwoPair, pairs[0], pairs[1], kicker)
	}

	if len(pairs) == 1 {
		kickers := topExcept(ranks, 3, pairs[0])
		return newHandRank(OnePair, append([]int{pairs[0]}, kickers...)...)
	}

	return newHandRank(HighCard, ranks[:5]...)
}

// Strength returns a value that totally orders hands.
// Two hands have equal strength only if they are indistinguishable under standard rules.
func (h *HandRank) Strength() int {
	return h.strength
}

// Beats returns true if h is strictly stronger than other
func (h *HandRank) Beats(other *HandRank) bool {
	return h.strength > other.strength
}

func (h *HandRank) String() string {
	return h.Category.String()
}

func newHandRank(category Category, tieBreak ...int) *HandRank {
	fiveRanks := make([]int, 5)
	copy(fiveRanks, tieBreak)

	strength := int(math.Pow(15, 5)) * int(category)
	for i := 0; i < 5; i++ {
		strength += int(math.Pow(15, float64(4-i))) * fiveRanks[i]
	}

	return &HandRank{
		Category: category,
		TieBreak: fiveRanks,
		strength: strength,
	}
}

// groupRanks returns quads, trips, and pairs in descending rank order
func groupRanks(countByRank map[int]int) (quads, trips, pairs []int) {
	for rank, count := range countByRank {
		switch count {
		case 4:
			quads = append(quads, rank)
		case 3:
			trips = append(trips, rank)
		case 2:
			pairs = append(pairs, rank)
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(quads)))
	sort.Sort(sort.Reverse(sort.IntSlice(trips)))
	sort.Sort(sort.Reverse(sort.IntSlice(pairs)))
	return
}

// bestStraight finds the highest five-card run among the provided ranks.
// The ace also plays low for the five-high straight (the wheel).
func bestStraight(ranks []int) (int, bool) {
	distinct := make([]int, 0, len(ranks))
	seen := make(map[int]bool)
	for _, rank := range ranks {
		if !seen[rank] {
			seen[rank] = true
			distinct = append(distinct, rank)
		}
	}
	if seen[deck.Ace] {
		distinct = append(distinct, deck.LowAce)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(distinct)))

	streak := 1
	for i := 1; i < len(distinct); i++ {
		if distinct[i] == distinct[i-1]-1 {
			streak++
			if streak == 5 {
				return distinct[i] + 4, true
			}
		} else {
			streak = 1
		}
	}

	return 0, false
}

// highestExcept returns the highest of want ranks not in the excluded set, or 0
func highestExcept(ranks []int, want int, except ...int) int {
	top := topExcept(ranks, want, except...)
	if len(top) == 0 {
		return 0
	}

	return top[0]
}

// topExcept returns up to want of the highest ranks, skipping every excluded rank entirely
func topExcept(ranks []int, want int, except ...int) []int {
	excluded := make(map[int]bool, len(except))
	for _, rank := range except {
		excluded[rank] = true
	}

	top := make([]int, 0, want)
	for _, rank := range ranks {
		if excluded[rank] {
			continue
		}

		top = append(top, rank)
		if len(top) == want {
			break
		}
	}

	return top
}

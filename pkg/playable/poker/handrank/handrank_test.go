package handrank

import (
	"testing"

	"dinogames-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func evaluate(s string) *HandRank {
	return Evaluate(deck.CardsFromString(s))
}

func TestEvaluate_categories(t *testing.T) {
	a := assert.New(t)

	a.Equal(RoyalFlush, evaluate("14s,13s,12s,11s,10s,2c,3d").Category)
	a.Equal(StraightFlush, evaluate("9h,8h,7h,6h,5h,14s,14c").Category)
	a.Equal(FourOfAKind, evaluate("8c,8d,8h,8s,13c,2d,3h").Category)
	a.Equal(FullHouse, evaluate("9c,9d,9h,4s,4c,2d,3h").Category)
	a.Equal(Flush, evaluate("14c,11c,9c,6c,2c,13s,13h").Category)
	a.Equal(Straight, evaluate("10c,9d,8h,7s,6c,2d,2h").Category)
	a.Equal(ThreeOfAKind, evaluate("7c,7d,7h,13s,9c,4d,2h").Category)
	a.Equal(TwoPair, evaluate("12c,12d,5h,5s,14c,9d,2h").Category)
	a.Equal(OnePair, evaluate("10c,10d,14h,8s,6c,4d,2h").Category)
	a.Equal(HighCard, evaluate("14c,12d,10h,8s,6c,4d,2h").Category)
}

func TestEvaluate_wheel(t *testing.T) {
	a := assert.New(t)

	h := evaluate("14c,5d,4h,3s,2c,13d,9h")
	a.Equal(Straight, h.Category)
	a.Equal(5, h.TieBreak[0], "wheel plays as a five-high straight")

	sf := evaluate("14s,5s,4s,3s,2s,13d,9h")
	a.Equal(StraightFlush, sf.Category)
	a.Equal(5, sf.TieBreak[0])
}

func TestEvaluate_kickers(t *testing.T) {
	a := assert.New(t)

	// same pair, better kicker wins
	better := evaluate("10c,10d,14h,8s,6c,4d,2h")
	worse := evaluate("10h,10s,13h,8d,6d,4s,2c")
	a.True(better.Beats(worse))

	// quads use a single kicker
	a.Equal([]int{8, 13, 0, 0, 0}, evaluate("8c,8d,8h,8s,13c,2d,3h").TieBreak)

	// three pairs: best two play plus the highest remaining card
	threePair := evaluate("12c,12d,9h,9s,5c,5d,14h")
	a.Equal(TwoPair, threePair.Category)
	a.Equal([]int{12, 9, 14, 0, 0}, threePair.TieBreak)

	// two sets of trips form a full house
	doubleTrips := evaluate("9c,9d,9h,6s,6c,6d,2h")
	a.Equal(FullHouse, doubleTrips.Category)
	a.Equal([]int{9, 6, 0, 0, 0}, doubleTrips.TieBreak)

	// trips plus a higher pair takes the pair
	tripsHighPair := evaluate("6c,6d,6h,13s,13c,2d,3h")
	a.Equal(FullHouse, tripsHighPair.Category)
	a.Equal([]int{6, 13, 0, 0, 0}, tripsHighPair.TieBreak)

	// flush takes the top five suited cards
	a.Equal([]int{14, 11, 9, 6, 4}, evaluate("14c,11c,9c,6c,4c,2c,13s").TieBreak)
}

func TestEvaluate_totalOrder(t *testing.T) {
	a := assert.New(t)

	// repeated evaluation is stable
	first := evaluate("10c,9d,8h,7s,6c,2d,2h")
	for i := 0; i < 10; i++ {
		a.Equal(first.Strength(), evaluate("10c,9d,8h,7s,6c,2d,2h").Strength())
	}

	// transitivity across categories
	flush := evaluate("14c,11c,9c,6c,2c,13s,13h")
	straight := evaluate("10c,9d,8h,7s,6c,2d,2h")
	twoPair := evaluate("12c,12d,5h,5s,14c,9d,2h")
	a.True(flush.Beats(straight))
	a.True(straight.Beats(twoPair))
	a.True(flush.Beats(twoPair))

	// identical rank multisets tie regardless of suits
	h1 := evaluate("10c,10d,14h,8s,6c,4d,2h")
	h2 := evaluate("10s,10h,14d,8c,6s,4h,2d")
	a.Equal(h1.Strength(), h2.Strength())
	a.False(h1.Beats(h2))
	a.False(h2.Beats(h1))
}

func TestEvaluate_boardPlays(t *testing.T) {
	a := assert.New(t)

	// both players play the board straight
	board := "10c,9d,8h,7s,6c"
	h1 := Evaluate(deck.CardsFromString(board + ",2d,3h"))
	h2 := Evaluate(deck.CardsFromString(board + ",14d,13h"))
	a.Equal(h1.Strength(), h2.Strength())
}

func TestEvaluate_panicsOnBadInput(t *testing.T) {
	a := assert.New(t)
	a.Panics(func() { evaluate("2c,3c,4c") })
	a.Panics(func() { evaluate("2c,3c,4c,5c,6c,7c,8c,9c") })
}

func TestCategory_names(t *testing.T) {
	a := assert.New(t)

	a.Equal("Full house", FullHouse.String())
	a.Equal("Herd + Hunter", FullHouse.DinoName())
	a.Equal("Royal flush", RoyalFlush.String())

	for c := HighCard; c <= RoyalFlush; c++ {
		a.NotEmpty(c.String())
		a.NotEmpty(c.DinoName())
	}

	a.Panics(func() { _ = Category(99).String() })
	a.Panics(func() { _ = Category(99).DinoName() })
}

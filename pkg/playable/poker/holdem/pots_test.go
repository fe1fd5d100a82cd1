package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func contributor(id string, total int, folded bool) Player {
	return Player{
		ID:               id,
		Name:             id,
		TotalBetThisHand: total,
		Folded:           folded,
	}
}

func TestAllocatePots_equalAllIn(t *testing.T) {
	a := assert.New(t)

	// everyone committed 30; one pot, everyone eligible
	pots := allocatePots([]Player{
		contributor("a", 30, false),
		contributor("b", 30, false),
		contributor("c", 30, false),
	})

	a.Len(pots, 1)
	a.Equal(90, pots[0].Amount)
	a.Equal([]string{"a", "b", "c"}, pots[0].EligiblePlayerIDs)
}

func TestAllocatePots_sidePot(t *testing.T) {
	a := assert.New(t)

	// a is all-in for 100, b all-in for 50, c called 100
	pots := allocatePots([]Player{
		contributor("a", 100, false),
		contributor("b", 50, false),
		contributor("c", 100, false),
	})

	a.Len(pots, 2)

	a.Equal(150, pots[0].Amount)
	a.Equal([]string{"a", "b", "c"}, pots[0].EligiblePlayerIDs)

	a.Equal(100, pots[1].Amount)
	a.Equal([]string{"a", "c"}, pots[1].EligiblePlayerIDs)
}

func TestAllocatePots_foldedChipsInflatePots(t *testing.T) {
	a := assert.New(t)

	// folded players feed the pots but are never eligible
	pots := allocatePots([]Player{
		contributor("a", 100, false),
		contributor("b", 40, true),
		contributor("c", 100, false),
	})

	a.Len(pots, 1)
	a.Equal(240, pots[0].Amount)
	a.Equal([]string{"a", "c"}, pots[0].EligiblePlayerIDs)
}

func TestAllocatePots_foldedAboveTopTier(t *testing.T) {
	a := assert.New(t)

	// b bet beyond the surviving all-in and then folded; the excess joins the top pot
	pots := allocatePots([]Player{
		contributor("a", 50, false),
		contributor("b", 80, true),
		contributor("c", 50, false),
	})

	a.Len(pots, 1)
	a.Equal(180, pots[0].Amount)
	a.Equal([]string{"a", "c"}, pots[0].EligiblePlayerIDs)
}

func TestAllocatePots_layeredTiers(t *testing.T) {
	a := assert.New(t)

	pots := allocatePots([]Player{
		contributor("a", 10, false),
		contributor("b", 25, false),
		contributor("c", 100, false),
		contributor("d", 100, false),
		contributor("e", 60, true),
	})

	a.Len(pots, 3)

	// tier 10: five players contribute 10 each
	a.Equal(50, pots[0].Amount)
	a.Equal([]string{"a", "b", "c", "d"}, pots[0].EligiblePlayerIDs)

	// tier 25: four players contribute 15 each
	a.Equal(60, pots[1].Amount)
	a.Equal([]string{"b", "c", "d"}, pots[1].EligiblePlayerIDs)

	// tier 100: c and d contribute 75 each, e's remaining 35 comes along
	a.Equal(185, pots[2].Amount)
	a.Equal([]string{"c", "d"}, pots[2].EligiblePlayerIDs)

	// every chip is accounted for
	total := 0
	for _, pot := range pots {
		total += pot.Amount
	}
	a.Equal(10+25+100+100+60, total)
}

func TestAllocatePots_noContributions(t *testing.T) {
	a := assert.New(t)
	a.Empty(allocatePots([]Player{contributor("a", 0, false)}))
}

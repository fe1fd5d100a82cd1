package deck

// Hand represents a collection of cards
type Hand []Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}

	return false
}

// FirstCard returns the first card in the hand; panics if the hand is empty
func (h Hand) FirstCard() Card {
	return h[0]
}

// LastCard returns the last card in the hand; panics if the hand is empty
func (h Hand) LastCard() Card {
	return h[len(h)-1]
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	if h == nil {
		return nil
	}

	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"dinogames-server/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
type Deck struct {
	Cards []Card `json:"cards"`
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	return &Deck{Cards: NewCards()}
}

// NewCards returns the 52-card set in a fixed order
func NewCards() []Card {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return cards
}

// Shuffle will shuffle the deck of cards using the provided generator
func (d *Deck) Shuffle(r rng.Generator) {
	ShuffleCards(d.Cards, r)
}

// ShuffleCards performs an unbiased Fisher-Yates shuffle in place
func ShuffleCards(cards []Card, r rng.Generator) {
	for j := len(cards) - 1; j > 0; j-- {
		i := r.Intn(j + 1)

		cards[i], cards[j] = cards[j], cards[i]
	}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a zero card.
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) == 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

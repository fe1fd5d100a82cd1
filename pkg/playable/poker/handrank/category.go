package handrank

import "fmt"

// Category is a poker hand category, i.e., royal flush
type Category int

// Constants for category, weakest first
const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case RoyalFlush:
		return "Royal flush"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

// DinoName returns the dino-flavored name shown in the client
func (c Category) DinoName() string {
	switch c {
	case HighCard:
		return "Lone Dino"
	case OnePair:
		return "Nest Pair"
	case TwoPair:
		return "Twin Nests"
	case ThreeOfAKind:
		return "Hunting Pack"
	case Straight:
		return "Stampede"
	case Flush:
		return "Clan Gathering"
	case FullHouse:
		return "Herd + Hunter"
	case FourOfAKind:
		return "Full Pack"
	case StraightFlush:
		return "Clan Stampede"
	case RoyalFlush:
		return "Apex Stampede"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

package codenames

import (
	"errors"
	"fmt"
	"strings"

	"dinogames-server/internal/rng"
	"dinogames-server/pkg/playable"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Phase is a state machine state for a game
type Phase string

// phase constants
const (
	PhaseLobby   Phase = "lobby"
	PhasePlaying Phase = "playing"
	PhaseWon     Phase = "won"
	PhaseLost    Phase = "lost"
)

// CardType classifies a board card
type CardType string

// card type constants
const (
	CardGreen    CardType = "green"
	CardAssassin CardType = "assassin"
	CardNeutral  CardType = "neutral"
)

const (
	boardSize     = 25
	greenCards    = 15
	assassinCards = 3
	initialTurns  = 9
)

// ErrNotEnoughPlayers is returned when the game cannot start
var ErrNotEnoughPlayers = errors.New("there must be at least two players")

// Card is one cell of the board
type Card struct {
	Word     string   `json:"word"`
	Type     CardType `json:"type"`
	Revealed bool     `json:"revealed"`
}

// Clue is the clue giver's word and card count
type Clue struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Player is a participant; everyone is on the same team
type Player struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	SessionToken string `json:"-"`
}

// Game is a cooperative game of Dino Codenames: find every green word within
// the turn limit without touching an assassin. One player gives clues each
// turn and the rest guess; the clue giver rotates.
type Game struct {
	phase            Phase
	players          []Player
	board            []Card
	currentClue      *Clue
	guessesRemaining int
	turnsRemaining   int
	greenRemaining   int
	awaitingClue     bool
	clueGiverID      string
	rand             rng.Generator
	log              logrus.FieldLogger
}

var _ playable.Playable = (*Game)(nil)

// NewGame returns a new game of Dino Codenames
func NewGame(logger logrus.FieldLogger, r rng.Generator) *Game {
	if r == nil {
		r = rng.Crypto{}
	}

	return &Game{
		phase:          PhaseLobby,
		players:        []Player{},
		turnsRemaining: initialTurns,
		greenRemaining: greenCards,
		awaitingClue:   true,
		rand:           r,
		log:            logger,
	}
}

// Name returns the name of the game
func (g *Game) Name() string {
	return "Dino Codenames"
}

// Key returns the game identifier
func (g *Game) Key() string {
	return string(playable.GameTypeCodenames)
}

// InLobby returns true while players can still join
func (g *Game) InLobby() bool {
	return g.phase == PhaseLobby
}

// PlayerCount returns the number of players
func (g *Game) PlayerCount() int {
	return len(g.players)
}

// AddPlayer adds a player. The first to join becomes the first clue giver.
func (g *Game) AddPlayer(playerID, name string) error {
	if g.playerIndex(playerID) >= 0 {
		return fmt.Errorf("player %s already joined", playerID)
	}

	g.players = append(g.players, Player{
		ID:           playerID,
		Name:         name,
		SessionToken: uuid.New().String(),
	})

	if g.clueGiverID == "" {
		g.clueGiverID = playerID
	}

	g.log.WithFields(logrus.Fields{"player": playerID, "name": name}).Info("player joined")
	return nil
}

// RemovePlayer removes a player. If the clue giver leaves mid-guess, the clue
// is voided and the next player takes over giving clues.
func (g *Game) RemovePlayer(playerID string) error {
	index := g.playerIndex(playerID)
	if index < 0 {
		return fmt.Errorf("player %s is not in the game", playerID)
	}

	wasClueGiver := g.clueGiverID == playerID
	g.players = append(g.players[:index], g.players[index+1:]...)

	if len(g.players) == 0 {
		g.clueGiverID = ""
		g.awaitingClue = true
		g.currentClue = nil
		g.guessesRemaining = 0
		return nil
	}

	if wasClueGiver {
		g.clueGiverID = g.players[index%len(g.players)].ID
		if !g.awaitingClue {
			g.awaitingClue = true
			g.currentClue = nil
			g.guessesRemaining = 0
		}
	}

	return nil
}

// Action performs an action for the player
func (g *Game) Action(playerID string, message *playable.PayloadIn) (*playable.Response, bool, error) {
	switch message.Action {
	case "start-game", "new-game":
		if err := g.startGame(); err != nil {
			return nil, false, err
		}

	case "give-clue":
		word, _ := message.AdditionalData.GetString("word")
		count, _ := message.AdditionalData.GetInt("count")
		if err := g.giveClue(playerID, word, count); err != nil {
			return nil, false, err
		}

	case "guess":
		cardIndex, ok := message.AdditionalData.GetInt("cardIndex")
		if !ok {
			return nil, false, errors.New("guess requires a card index")
		}

		if err := g.guess(playerID, cardIndex); err != nil {
			return nil, false, err
		}

	case "end-turn":
		if err := g.endTurn(playerID); err != nil {
			return nil, false, err
		}

	default:
		return nil, false, fmt.Errorf("unknown action: %s", message.Action)
	}

	return playable.OK(message.Context), true, nil
}

func (g *Game) startGame() error {
	if len(g.players) < 2 {
		return ErrNotEnoughPlayers
	}

	g.board = g.generateBoard()
	g.phase = PhasePlaying
	g.turnsRemaining = initialTurns
	g.greenRemaining = greenCards
	g.awaitingClue = true
	g.clueGiverID = g.players[0].ID
	g.currentClue = nil
	g.guessesRemaining = 0

	g.log.WithField("players", len(g.players)).Info("board dealt")
	return nil
}

// generateBoard draws 25 words and assigns 15 green, 3 assassin, and 7
// neutral cards at random positions
func (g *Game) generateBoard() []Card {
	words := make([]string, len(wordList))
	copy(words, wordList)
	shuffleWords(words, g.rand)

	types := make([]CardType, 0, boardSize)
	for i := 0; i < greenCards; i++ {
		types = append(types, CardGreen)
	}
	for i := 0; i < assassinCards; i++ {
		types = append(types, CardAssassin)
	}
	for len(types) < boardSize {
		types = append(types, CardNeutral)
	}
	shuffleTypes(types, g.rand)

	board := make([]Card, boardSize)
	for i := range board {
		board[i] = Card{Word: words[i], Type: types[i]}
	}

	return board
}

func (g *Game) giveClue(playerID, word string, count int) error {
	if g.phase != PhasePlaying {
		return fmt.Errorf("cannot give a clue during %s", g.phase)
	}

	if !g.awaitingClue {
		return errors.New("a clue has already been given this turn")
	}

	if playerID != g.clueGiverID {
		return errors.New("only the clue giver may give a clue")
	}

	word = strings.TrimSpace(word)
	if word == "" || count < 1 {
		return errors.New("a clue needs a word and a count of at least one")
	}

	g.currentClue = &Clue{Word: strings.ToUpper(word), Count: count}
	// the guessers get one bonus guess beyond the clue's count
	g.guessesRemaining = count + 1
	g.awaitingClue = false

	g.log.WithFields(logrus.Fields{"clue": g.currentClue.Word, "count": count}).Info("clue given")
	return nil
}

func (g *Game) guess(playerID string, cardIndex int) error {
	if g.phase != PhasePlaying {
		return fmt.Errorf("cannot guess during %s", g.phase)
	}

	if g.awaitingClue {
		return errors.New("wait for a clue before guessing")
	}

	if playerID == g.clueGiverID {
		return errors.New("the clue giver may not guess")
	}

	if g.playerIndex(playerID) < 0 {
		return fmt.Errorf("player %s is not in the game", playerID)
	}

	if g.guessesRemaining <= 0 {
		return errors.New("no guesses remaining")
	}

	if cardIndex < 0 || cardIndex >= len(g.board) {
		return fmt.Errorf("card index %d is out of range", cardIndex)
	}

	card := &g.board[cardIndex]
	if card.Revealed {
		return fmt.Errorf("%s is already revealed", card.Word)
	}

	card.Revealed = true
	g.guessesRemaining--

	g.log.WithFields(logrus.Fields{"word": card.Word, "type": card.Type}).Info("card revealed")

	switch card.Type {
	case CardAssassin:
		g.phase = PhaseLost
		return nil

	case CardGreen:
		g.greenRemaining--
		if g.greenRemaining == 0 {
			g.phase = PhaseWon
			return nil
		}
	}

	if card.Type == CardNeutral || g.guessesRemaining == 0 {
		g.finishTurn()
	}

	return nil
}

func (g *Game) endTurn(playerID string) error {
	if g.phase != PhasePlaying {
		return fmt.Errorf("cannot end the turn during %s", g.phase)
	}

	if g.awaitingClue {
		return errors.New("no turn to end")
	}

	if playerID == g.clueGiverID {
		return errors.New("the clue giver may not end the turn")
	}

	g.finishTurn()
	return nil
}

// finishTurn spends one of the turn budget and rotates the clue giver
func (g *Game) finishTurn() {
	g.turnsRemaining--
	if g.turnsRemaining == 0 {
		g.phase = PhaseLost
		return
	}

	g.advanceClueGiver()
	g.awaitingClue = true
	g.currentClue = nil
	g.guessesRemaining = 0
}

func (g *Game) advanceClueGiver() {
	if len(g.players) == 0 {
		g.clueGiverID = ""
		return
	}

	current := g.playerIndex(g.clueGiverID)
	if current < 0 {
		g.clueGiverID = g.players[0].ID
		return
	}

	g.clueGiverID = g.players[(current+1)%len(g.players)].ID
}

func (g *Game) playerIndex(playerID string) int {
	for i, p := range g.players {
		if p.ID == playerID {
			return i
		}
	}

	return -1
}

func shuffleWords(words []string, r rng.Generator) {
	for i := len(words) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		words[i], words[j] = words[j], words[i]
	}
}

func shuffleTypes(types []CardType, r rng.Generator) {
	for i := len(types) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		types[i], types[j] = types[j], types[i]
	}
}

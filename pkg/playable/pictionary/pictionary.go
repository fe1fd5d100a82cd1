package pictionary

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
	PhasePicking Phase = "picking"
	PhaseDrawing Phase = "drawing"
	PhaseReveal  Phase = "reveal"
	PhaseEnded   Phase = "ended"
)

const (
	wordChoices   = 3
	pointsDrawer  = 1
	pointsGuesser = 2
)

// ErrNotEnoughPlayers is returned when the game cannot start
var ErrNotEnoughPlayers = errors.New("there must be at least two players")

// Point is one canvas coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Stroke is one continuous drawn line
type Stroke struct {
	Points []Point `json:"points"`
	Color  string  `json:"color"`
	Width  float64 `json:"width"`
}

// Guess is one submitted guess and whether it matched the word
type Guess struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Guess    string `json:"guess"`
	Correct  bool   `json:"correct"`
}

// Player is a participant with a running score
type Player struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Score        int    `json:"score"`
	IsDrawing    bool   `json:"isDrawing"`
	SessionToken string `json:"-"`
}

// Game is a game of Dino Sketch: each round one player draws a secret word
// and the rest race to guess it. The first correct guess scores for both the
// guesser and the drawer, and the drawing duty rotates until everyone has
// drawn once.
type Game struct {
	phase           Phase
	players         []Player
	currentWord     string
	currentDrawerID string
	strokes         []Stroke
	roundNumber     int
	totalRounds     int
	guesses         []Guess
	wordChoices     []string
	rand            rng.Generator
	log             logrus.FieldLogger
}

var _ playable.Playable = (*Game)(nil)

// NewGame returns a new game of Dino Sketch
func NewGame(logger logrus.FieldLogger, r rng.Generator) *Game {
	if r == nil {
		r = rng.Crypto{}
	}

	return &Game{
		phase:   PhaseLobby,
		players: []Player{},
		rand:    r,
		log:     logger,
	}
}

// Name returns the name of the game
func (g *Game) Name() string {
	return "Dino Sketch"
}

// Key returns the game identifier
func (g *Game) Key() string {
	return string(playable.GameTypePictionary)
}

// InLobby returns true while players can still join
func (g *Game) InLobby() bool {
	return g.phase == PhaseLobby
}

// PlayerCount returns the number of players
func (g *Game) PlayerCount() int {
	return len(g.players)
}

// AddPlayer adds a player to the lobby
func (g *Game) AddPlayer(playerID, name string) error {
	if g.phase != PhaseLobby {
		return errors.New("the game has already started")
	}

	if g.playerIndex(playerID) >= 0 {
		return fmt.Errorf("player %s already joined", playerID)
	}

	g.players = append(g.players, Player{
		ID:           playerID,
		Name:         name,
		SessionToken: uuid.New().String(),
	})

	g.log.WithFields(logrus.Fields{"player": playerID, "name": name}).Info("player joined")
	return nil
}

// RemovePlayer removes a player. If the drawer leaves mid-round the round is
// abandoned and the next one begins.
func (g *Game) RemovePlayer(playerID string) error {
	index := g.playerIndex(playerID)
	if index < 0 {
		return fmt.Errorf("player %s is not in the game", playerID)
	}

	wasDrawer := g.currentDrawerID == playerID
	g.players = append(g.players[:index], g.players[index+1:]...)

	if g.phase == PhaseLobby || g.phase == PhaseEnded {
		return nil
	}

	if len(g.players) < 2 {
		g.phase = PhaseEnded
		return nil
	}

	if wasDrawer && (g.phase == PhasePicking || g.phase == PhaseDrawing) {
		g.phase = PhaseReveal
	}

	return nil
}

// Action performs an action for the player
func (g *Game) Action(playerID string, message *playable.PayloadIn) (*playable.Response, bool, error) {
	switch message.Action {
	case "start-game":
		if err := g.startGame(); err != nil {
			return nil, false, err
		}

	case "pick-word":
		word, _ := message.AdditionalData.GetString("word")
		if err := g.pickWord(playerID, word); err != nil {
			return nil, false, err
		}

	case "draw":
		stroke, err := strokeFromData(message.AdditionalData)
		if err != nil {
			return nil, false, err
		}

		if err := g.addStroke(playerID, stroke); err != nil {
			return nil, false, err
		}

	case "clear-canvas":
		if err := g.clearCanvas(playerID); err != nil {
			return nil, false, err
		}

	case "guess":
		text, _ := message.AdditionalData.GetString("text")
		if err := g.guess(playerID, text); err != nil {
			return nil, false, err
		}

	case "next-round":
		if err := g.nextRound(); err != nil {
			return nil, false, err
		}

	default:
		return nil, false, fmt.Errorf("unknown action: %s", message.Action)
	}

	return playable.OK(message.Context), true, nil
}

func (g *Game) startGame() error {
	if g.phase != PhaseLobby {
		return errors.New("the game has already started")
	}

	if len(g.players) < 2 {
		return ErrNotEnoughPlayers
	}

	// one round per player so everyone draws once
	g.totalRounds = len(g.players)
	g.roundNumber = 1
	g.startPickingPhase()

	g.log.WithField("rounds", g.totalRounds).Info("game started")
	return nil
}

func (g *Game) startPickingPhase() {
	drawer := &g.players[(g.roundNumber-1)%len(g.players)]
	for i := range g.players {
		g.players[i].IsDrawing = g.players[i].ID == drawer.ID
	}

	g.currentDrawerID = drawer.ID
	g.currentWord = ""
	g.phase = PhasePicking
	g.strokes = []Stroke{}
	g.guesses = []Guess{}
	g.wordChoices = g.randomWords(wordChoices)
}

func (g *Game) pickWord(playerID, word string) error {
	if g.phase != PhasePicking {
		return fmt.Errorf("cannot pick a word during %s", g.phase)
	}

	if playerID != g.currentDrawerID {
		return errors.New("only the drawer may pick the word")
	}

	found := false
	for _, choice := range g.wordChoices {
		if choice == word {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%q is not one of the offered words", word)
	}

	g.currentWord = word
	g.phase = PhaseDrawing

	g.log.WithField("drawer", playerID).Info("word picked")
	return nil
}

func (g *Game) addStroke(playerID string, stroke Stroke) error {
	if g.phase != PhaseDrawing {
		return fmt.Errorf("cannot draw during %s", g.phase)
	}

	if playerID != g.currentDrawerID {
		return errors.New("only the drawer may draw")
	}

	g.strokes = append(g.strokes, stroke)
	return nil
}

func (g *Game) clearCanvas(playerID string) error {
	if g.phase != PhaseDrawing {
		return fmt.Errorf("cannot clear the canvas during %s", g.phase)
	}

	if playerID != g.currentDrawerID {
		return errors.New("only the drawer may clear the canvas")
	}

	g.strokes = []Stroke{}
	return nil
}

func (g *Game) guess(playerID, text string) error {
	if g.phase != PhaseDrawing {
		return fmt.Errorf("cannot guess during %s", g.phase)
	}

	if playerID == g.currentDrawerID {
		return errors.New("the drawer may not guess")
	}

	index := g.playerIndex(playerID)
	if index < 0 {
		return fmt.Errorf("player %s is not in the game", playerID)
	}

	correct := normalize(text) == normalize(g.currentWord)
	g.guesses = append(g.guesses, Guess{
		PlayerID: playerID,
		Name:     g.players[index].Name,
		Guess:    text,
		Correct:  correct,
	})

	if !correct {
		return nil
	}

	g.players[index].Score += pointsGuesser
	if drawer := g.player(g.currentDrawerID); drawer != nil {
		drawer.Score += pointsDrawer
	}

	g.phase = PhaseReveal
	g.log.WithFields(logrus.Fields{"player": playerID, "word": g.currentWord}).Info("word guessed")
	return nil
}

func (g *Game) nextRound() error {
	if g.phase != PhaseReveal {
		return errors.New("the round is not over")
	}

	if g.roundNumber >= g.totalRounds {
		g.phase = PhaseEnded
		g.log.Info("game over")
		return nil
	}

	g.roundNumber++
	g.startPickingPhase()
	return nil
}

// randomWords draws count distinct words from the pool
func (g *Game) randomWords(count int) []string {
	pool := make([]string, len(wordList))
	copy(pool, wordList)

	words := make([]string, count)
	for i := 0; i < count; i++ {
		j := i + g.rand.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		words[i] = pool[i]
	}

	return words
}

func (g *Game) playerIndex(playerID string) int {
	for i, p := range g.players {
		if p.ID == playerID {
			return i
		}
	}

	return -1
}

func (g *Game) player(playerID string) *Player {
	if i := g.playerIndex(playerID); i >= 0 {
		return &g.players[i]
	}

	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// strokeFromData decodes a stroke from an action payload
func strokeFromData(data playable.AdditionalData) (Stroke, error) {
	raw, ok := data["stroke"].(map[string]interface{})
	if !ok {
		return Stroke{}, errors.New("draw requires a stroke")
	}

	var stroke Stroke
	if color, ok := raw["color"].(string); ok {
		stroke.Color = color
	}
	if width, ok := raw["width"].(float64); ok {
		stroke.Width = width
	}

	points, ok := raw["points"].([]interface{})
	if !ok || len(points) == 0 {
		return Stroke{}, errors.New("a stroke needs at least one point")
	}

	for _, item := range points {
		point, ok := item.(map[string]interface{})
		if !ok {
			return Stroke{}, errors.New("malformed stroke point")
		}

		x, _ := point["x"].(float64)
		y, _ := point["y"].(float64)
		stroke.Points = append(stroke.Points, Point{X: x, Y: y})
	}

	return stroke, nil
}

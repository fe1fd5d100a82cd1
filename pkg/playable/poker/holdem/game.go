package holdem

import (
	"errors"
	"fmt"

	"dinogames-server/internal/rng"
	"dinogames-server/pkg/playable"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// GameOptions configures a hosted game of Dino Hold'em
type GameOptions struct {
	Options
	StartingChips int
	MinPlayers    int
	MaxPlayers    int
}

// DefaultGameOptions returns the default table configuration
func DefaultGameOptions() GameOptions {
	return GameOptions{
		Options:       DefaultOptions(),
		StartingChips: 1000,
		MinPlayers:    2,
		MaxPlayers:    8,
	}
}

// Game hosts one table and adapts the pure state transitions to the playable
// interface. The room guarantees calls never interleave.
type Game struct {
	opts        GameOptions
	state       GameState
	rand        rng.Generator
	log         logrus.FieldLogger
	lastResults []ShowdownResult
}

var _ playable.Playable = (*Game)(nil)

// NewGame returns a new game of Dino Hold'em
func NewGame(logger logrus.FieldLogger, opts GameOptions, r rng.Generator) *Game {
	if r == nil {
		r = rng.Crypto{}
	}

	return &Game{
		opts:  opts,
		state: NewState(opts.Options),
		rand:  r,
		log:   logger,
	}
}

// State returns a snapshot of the current table state
func (g *Game) State() GameState {
	return g.state.Clone()
}

// Name returns the name of the game
func (g *Game) Name() string {
	return fmt.Sprintf("Dino Hold'em (%d/%d)", g.opts.SmallBlind, g.opts.BigBlind)
}

// Key returns the game identifier
func (g *Game) Key() string {
	return string(playable.GameTypePoker)
}

// InLobby returns true while players can still join
func (g *Game) InLobby() bool {
	return g.state.Phase == PhaseLobby
}

// PlayerCount returns the number of seated players
func (g *Game) PlayerCount() int {
	return len(g.state.Players)
}

// AddPlayer seats a player with the table's starting stack
func (g *Game) AddPlayer(playerID, name string) error {
	if len(g.state.Players) >= g.opts.MaxPlayers {
		return errors.New("the table is full")
	}

	state, err := AddPlayer(g.state, playerID, name, uuid.New().String(), g.opts.StartingChips)
	if err != nil {
		return err
	}

	g.state = state
	g.log.WithFields(logrus.Fields{"player": playerID, "name": name}).Info("player seated")
	return nil
}

// RemovePlayer handles a departing player. Mid-hand the departure becomes a
// fold; between hands the seat is simply removed.
func (g *Game) RemovePlayer(playerID string) error {
	if g.state.Phase == PhaseLobby || g.state.Phase == PhaseShowdown {
		state, err := RemovePlayer(g.state, playerID)
		if err != nil {
			return err
		}

		g.state = state
		return nil
	}

	index := g.state.PlayerIndex(playerID)
	if index < 0 {
		return fmt.Errorf("player %s is not seated", playerID)
	}

	if p := g.state.Players[index]; p.Folded || p.AllIn {
		return nil
	}

	if index == g.state.ActivePlayerIndex {
		state, err := ApplyAction(g.state, playerID, Action{Type: ActionFold})
		if err != nil {
			return err
		}

		g.state = state
	} else {
		g.state = MarkFolded(g.state, playerID)
	}

	g.log.WithField("player", playerID).Info("player folded on departure")
	return g.checkPhaseAdvancement()
}

// Action performs an action for the player
func (g *Game) Action(playerID string, message *playable.PayloadIn) (*playable.Response, bool, error) {
	switch message.Action {
	case "start-game":
		if err := g.startGame(); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil

	case "new-hand":
		if err := g.newHand(); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil
	}

	actionType, err := ActionTypeFromString(message.Action)
	if err != nil {
		return nil, false, err
	}

	amount, _ := message.AdditionalData.GetInt("amount")
	if amount < 0 {
		return nil, false, ErrIllegalAction
	}

	state, err := ApplyAction(g.state, playerID, Action{Type: actionType, Amount: amount})
	if err != nil {
		return nil, false, err
	}

	g.state = state
	g.log.WithFields(logrus.Fields{"player": playerID, "action": message.Action}).Debug("action applied")

	if err := g.checkPhaseAdvancement(); err != nil {
		return nil, false, err
	}

	return playable.OK(message.Context), true, nil
}

// GetPlayerState returns the redacted view for one observer
func (g *Game) GetPlayerState(playerID string) (*playable.Response, error) {
	data := struct {
		PublicState
		Results []ShowdownResult `json:"results,omitempty"`
	}{
		PublicState: PublicView(g.state, playerID),
	}

	if g.state.Phase == PhaseShowdown {
		data.Results = g.lastResults
	}

	return &playable.Response{
		Key:   "game",
		Value: g.Key(),
		Data:  data,
	}, nil
}

// LastResults returns the results of the most recent showdown
func (g *Game) LastResults() []ShowdownResult {
	return g.lastResults
}

func (g *Game) startGame() error {
	if g.state.Phase != PhaseLobby {
		return errors.New("the game has already started")
	}

	if len(g.state.Players) < g.opts.MinPlayers {
		return fmt.Errorf("need at least %d players", g.opts.MinPlayers)
	}

	return g.dealNewHand()
}

// newHand starts the next hand after a showdown. Busted players leave the
// table; below the player minimum the table returns to the lobby.
func (g *Game) newHand() error {
	if g.state.Phase != PhaseShowdown {
		return errors.New("the hand is not complete")
	}

	state := g.state.Clone()
	players := state.Players[:0]
	for _, p := range state.Players {
		if p.Chips > 0 {
			players = append(players, p)
		}
	}
	state.Players = players
	g.state = state

	if len(g.state.Players) < g.opts.MinPlayers {
		fresh := NewState(g.opts.Options)
		fresh.Players = g.state.Players
		g.state = fresh
		g.log.Info("not enough players; back to the lobby")
		return nil
	}

	return g.dealNewHand()
}

func (g *Game) dealNewHand() error {
	state, err := StartNewHand(g.state, g.rand)
	if err != nil {
		return err
	}

	g.state = state
	g.lastResults = nil
	g.log.WithField("players", len(state.Players)).Info("new hand dealt")

	// blinds can put short stacks all-in before anyone acts
	return g.checkPhaseAdvancement()
}

// checkPhaseAdvancement drives the hand forward after an action: advance the
// street when betting completes, run out the board when everyone is all-in,
// and resolve the showdown when the hand is decided.
func (g *Game) checkPhaseAdvancement() error {
	if !g.state.Phase.IsBettingStreet() {
		return nil
	}

	if CountContesting(g.state) <= 1 {
		return g.runShowdown()
	}

	if !IsStreetComplete(g.state) {
		return nil
	}

	if IsAutoShowdownDue(g.state) {
		state, err := RunOutBoard(g.state)
		if err != nil {
			return err
		}

		g.state = state
		return g.runShowdown()
	}

	if g.state.Phase == PhaseRiver {
		return g.runShowdown()
	}

	state, err := AdvanceStreet(g.state)
	if err != nil {
		return err
	}

	g.state = state
	return nil
}

func (g *Game) runShowdown() error {
	state, results, err := RunShowdown(g.state)
	if err != nil {
		return err
	}

	g.state = state
	g.lastResults = results

	for _, result := range results {
		if result.IsWinner {
			g.log.WithFields(logrus.Fields{
				"player": result.PlayerID,
				"won":    result.PotWon,
				"hand":   result.HandName,
			}).Info("pot awarded")
		}
	}

	return nil
}

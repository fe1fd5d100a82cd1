package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"dinogames-server/internal/config"
	"dinogames-server/internal/rng"
	"dinogames-server/internal/util"
	"dinogames-server/pkg/playable"
	"dinogames-server/pkg/playable/poker/holdem"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Version is the simulator version
var Version = "v0.0.0-dev"

var (
	tables = flag.Int("tables", 0, "number of tables to run (overrides configuration)")
	hands  = flag.Int("hands", 0, "number of hands per table (overrides configuration)")
	seed   = flag.Int64("seed", 0, "deterministic seed (overrides configuration)")
)

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	nTables := cfg.Simulate.Tables
	if *tables > 0 {
		nTables = *tables
	}

	nHands := cfg.Simulate.Hands
	if *hands > 0 {
		nHands = *hands
	}

	baseSeed := cfg.Simulate.Seed
	if *seed != 0 {
		baseSeed = *seed
	}
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	logrus.WithFields(logrus.Fields{
		"version": Version,
		"tables":  nTables,
		"hands":   nHands,
		"seed":    baseSeed,
	}).Info("starting simulation")

	start := time.Now()

	var eg errgroup.Group
	for i := 0; i < nTables; i++ {
		table := i
		eg.Go(func() error {
			return runTable(table, baseSeed+int64(table), nHands)
		})
	}

	if err := eg.Wait(); err != nil {
		logrus.WithError(err).Fatal("simulation failed")
	}

	logrus.WithField("elapsed", time.Since(start)).Info("simulation complete")
}

// runTable plays nHands of poker with bots that pick random legal actions,
// verifying after every hand that no chips were created or destroyed
func runTable(table int, seed int64, nHands int) error {
	log := logrus.WithField("table", table)
	r := rng.NewSeeded(seed)

	cfg := config.Instance()
	opts := holdem.GameOptions{
		Options: holdem.Options{
			SmallBlind: cfg.Poker.SmallBlind,
			BigBlind:   cfg.Poker.BigBlind,
		},
		StartingChips: cfg.Poker.StartingChips,
		MinPlayers:    cfg.Poker.MinPlayers,
		MaxPlayers:    cfg.Poker.MaxPlayers,
	}

	game := holdem.NewGame(log, opts, r)

	nPlayers := cfg.Simulate.PlayersAtSeat
	if nPlayers > opts.MaxPlayers {
		nPlayers = opts.MaxPlayers
	}

	for i := 0; i < nPlayers; i++ {
		id := fmt.Sprintf("t%d-p%d", table, i)
		if err := game.AddPlayer(id, util.GetRandomName()); err != nil {
			return err
		}
	}

	buyIns := nPlayers * opts.StartingChips

	if _, _, err := game.Action(playerID(table, 0), &playable.PayloadIn{Action: "start-game"}); err != nil {
		return err
	}

	handsPlayed := 0
	for handsPlayed < nHands {
		state := game.State()

		switch {
		case state.Phase == holdem.PhaseLobby:
			// not enough players survived to deal another hand
			log.WithField("hands", handsPlayed).Info("table broke early")
			return nil

		case state.Phase == holdem.PhaseShowdown:
			total := 0
			for _, p := range state.Players {
				total += p.Chips
			}

			if total != buyIns {
				return fmt.Errorf("table %d: chip count is off: %d != %d", table, total, buyIns)
			}

			handsPlayed++
			if handsPlayed == nHands {
				break
			}

			if _, _, err := game.Action(state.Players[0].ID, &playable.PayloadIn{Action: "new-hand"}); err != nil {
				return err
			}

		default:
			if err := playRandomAction(game, state, r); err != nil {
				return err
			}
		}
	}

	log.WithField("hands", handsPlayed).Info("table done")
	return nil
}

// playRandomAction performs one random legal action for the active player,
// weighted towards passive play so hands are not all-in fests
func playRandomAction(game *holdem.Game, state holdem.GameState, r rng.Generator) error {
	if state.ActivePlayerIndex < 0 {
		return errors.New("no active player on a betting street")
	}

	active := state.Players[state.ActivePlayerIndex]
	legal := holdem.LegalActionsFor(state, active.ID)

	var choices []string
	if legal.CanCheck {
		choices = append(choices, "check", "check", "check", "check")
	}
	if legal.CanCall {
		choices = append(choices, "call", "call", "call")
	}
	if legal.CanRaise {
		choices = append(choices, "raise", "raise")
	}
	if legal.CanFold {
		choices = append(choices, "fold")
	}
	if legal.CanAllIn {
		choices = append(choices, "all-in")
	}

	if len(choices) == 0 {
		return fmt.Errorf("player %s has no legal actions", active.ID)
	}

	action := choices[r.Intn(len(choices))]
	_, _, err := game.Action(active.ID, &playable.PayloadIn{Action: action})
	return err
}

func playerID(table, seat int) string {
	return fmt.Sprintf("t%d-p%d", table, seat)
}

func setupLogger() {
	if lvl := config.Instance().LogLevel; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

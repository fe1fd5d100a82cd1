package room

import (
	"fmt"

	"dinogames-server/internal/config"
	"dinogames-server/internal/rng"
	"dinogames-server/pkg/playable"
	"dinogames-server/pkg/playable/codenames"
	"dinogames-server/pkg/playable/pictionary"
	"dinogames-server/pkg/playable/poker/holdem"

	"github.com/sirupsen/logrus"
)

// newGame constructs the requested game with the table defaults from the
// configuration
func newGame(logger logrus.FieldLogger, gameType playable.GameType, r rng.Generator) (playable.Playable, error) {
	switch gameType {
	case playable.GameTypePoker:
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

		return holdem.NewGame(logger, opts, r), nil

	case playable.GameTypeCodenames:
		return codenames.NewGame(logger, r), nil

	case playable.GameTypePictionary:
		return pictionary.NewGame(logger, r), nil
	}

	return nil, fmt.Errorf("unknown game type: %s", gameType)
}

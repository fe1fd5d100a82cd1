package pictionary

import (
	"io/ioutil"
	"testing"

	"dinogames-server/internal/rng"
	"dinogames-server/pkg/playable"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(ioutil.Discard)
	return logger
}

func newTestGame(t *testing.T, seed int64, ids ...string) *Game {
	t.Helper()

	game := NewGame(testLogger(), rng.NewSeeded(seed))
	for _, id := range ids {
		assert.NoError(t, game.AddPlayer(id, "player "+id))
	}

	return game
}

// startedRound starts the game and has the drawer pick the first offered word.
// It returns the game and the secret word.
func startedRound(t *testing.T, seed int64, ids ...string) (*Game, string) {
	t.Helper()

	game := newTestGame(t, seed, ids...)
	_, _, err := game.Action(ids[0], &playable.PayloadIn{Action: "start-game"})
	assert.NoError(t, err)
	assert.Equal(t, PhasePicking, game.phase)

	word := game.wordChoices[0]
	_, _, err = game.Action(game.currentDrawerID, &playable.PayloadIn{
		Action:         "pick-word",
		AdditionalData: playable.AdditionalData{"word": word},
	})
	assert.NoError(t, err)

	return game, word
}

func submitGuess(game *Game, playerID, text string) error {
	_, _, err := game.Action(playerID, &playable.PayloadIn{
		Action:         "guess",
		AdditionalData: playable.AdditionalData{"text": text},
	})
	return err
}

func TestNewGame(t *testing.T) {
	a := assert.New(t)

	game := newTestGame(t, 1, "a", "b")
	a.Equal("Dino Sketch", game.Name())
	a.Equal("pictionary", game.Key())
	a.True(game.InLobby())
	a.Equal(2, game.PlayerCount())

	a.Error(game.AddPlayer("a", "again"))
}

func TestStartGame(t *testing.T) {
	a := assert.New(t)

	game := newTestGame(t, 2, "a")
	_, _, err := game.Action("a", &playable.PayloadIn{Action: "start-game"})
	a.Equal(ErrNotEnoughPlayers, err)

	a.NoError(game.AddPlayer("b", "Bob"))
	a.NoError(game.AddPlayer("c", "Carol"))

	_, _, err = game.Action("a", &playable.PayloadIn{Action: "start-game"})
	a.NoError(err)

	a.Equal(PhasePicking, game.phase)
	a.Equal(1, game.roundNumber)
	// everyone draws once
	a.Equal(3, game.totalRounds)
	a.Equal("a", game.currentDrawerID)
	a.True(game.players[0].IsDrawing)
	a.Len(game.wordChoices, 3)

	seen := make(map[string]bool)
	for _, word := range game.wordChoices {
		a.False(seen[word], "duplicate word choice: %s", word)
		seen[word] = true
	}

	a.Error(game.AddPlayer("d", "too late"))
}

func TestPickWord(t *testing.T) {
	a := assert.New(t)

	game := newTestGame(t, 3, "a", "b")
	_, _, err := game.Action("a", &playable.PayloadIn{Action: "start-game"})
	a.NoError(err)

	pick := func(playerID, word string) error {
		_, _, err := game.Action(playerID, &playable.PayloadIn{
			Action:         "pick-word",
			AdditionalData: playable.AdditionalData{"word": word},
		})
		return err
	}

	a.EqualError(pick("b", game.wordChoices[0]), "only the drawer may pick the word")
	a.EqualError(pick("a", "not-offered"), `"not-offered" is not one of the offered words`)

	word := game.wordChoices[1]
	a.NoError(pick("a", word))
	a.Equal(PhaseDrawing, game.phase)
	a.Equal(word, game.currentWord)
}

func TestDrawAndClear(t *testing.T) {
	a := assert.New(t)

	game, _ := startedRound(t, 4, "a", "b")

	stroke := playable.AdditionalData{
		"stroke": map[string]interface{}{
			"color": "#00aa55",
			"width": float64(4),
			"points": []interface{}{
				map[string]interface{}{"x": float64(10), "y": float64(20)},
				map[string]interface{}{"x": float64(12), "y": float64(24)},
			},
		},
	}

	_, _, err := game.Action("b", &playable.PayloadIn{Action: "draw", AdditionalData: stroke})
	a.EqualError(err, "only the drawer may draw")

	_, _, err = game.Action("a", &playable.PayloadIn{Action: "draw", AdditionalData: stroke})
	a.NoError(err)
	a.Len(game.strokes, 1)
	a.Equal("#00aa55", game.strokes[0].Color)
	a.Equal(Point{X: 10, Y: 20}, game.strokes[0].Points[0])

	_, _, err = game.Action("a", &playable.PayloadIn{
		Action:         "draw",
		AdditionalData: playable.AdditionalData{"stroke": map[string]interface{}{"points": []interface{}{}}},
	})
	a.EqualError(err, "a stroke needs at least one point")

	_, _, err = game.Action("b", &playable.PayloadIn{Action: "clear-canvas"})
	a.EqualError(err, "only the drawer may clear the canvas")

	_, _, err = game.Action("a", &playable.PayloadIn{Action: "clear-canvas"})
	a.NoError(err)
	a.Empty(game.strokes)
}

func TestGuess(t *testing.T) {
	a := assert.New(t)

	game, word := startedRound(t, 5, "a", "b", "c")

	a.EqualError(submitGuess(game, "a", word), "the drawer may not guess")

	a.NoError(submitGuess(game, "b", "wrong"))
	a.Equal(PhaseDrawing, game.phase)
	a.Len(game.guesses, 1)
	a.False(game.guesses[0].Correct)
	a.Equal(0, game.players[1].Score)

	// matching is case-insensitive and ignores surrounding space
	a.NoError(submitGuess(game, "c", "  "+word+"  "))
	a.Equal(PhaseReveal, game.phase)

	// the guesser scores two points and the drawer one
	a.Equal(2, game.player("c").Score)
	a.Equal(1, game.player("a").Score)

	a.EqualError(submitGuess(game, "b", word), "cannot guess during reveal")
}

func TestNextRound(t *testing.T) {
	a := assert.New(t)

	game, word := startedRound(t, 6, "a", "b")

	_, _, err := game.Action("a", &playable.PayloadIn{Action: "next-round"})
	a.EqualError(err, "the round is not over")

	a.NoError(submitGuess(game, "b", word))

	_, _, err = game.Action("a", &playable.PayloadIn{Action: "next-round"})
	a.NoError(err)

	// the drawing duty rotated to b
	a.Equal(PhasePicking, game.phase)
	a.Equal(2, game.roundNumber)
	a.Equal("b", game.currentDrawerID)
	a.Empty(game.strokes)
	a.Empty(game.guesses)

	// finish the last round: the game ends
	pickWord := game.wordChoices[0]
	_, _, err = game.Action("b", &playable.PayloadIn{
		Action:         "pick-word",
		AdditionalData: playable.AdditionalData{"word": pickWord},
	})
	a.NoError(err)
	a.NoError(submitGuess(game, "a", pickWord))

	_, _, err = game.Action("a", &playable.PayloadIn{Action: "next-round"})
	a.NoError(err)
	a.Equal(PhaseEnded, game.phase)
}

func TestRemovePlayer(t *testing.T) {
	a := assert.New(t)

	game, _ := startedRound(t, 7, "a", "b", "c")

	// the drawer leaving abandons the round
	a.NoError(game.RemovePlayer("a"))
	a.Equal(PhaseReveal, game.phase)
	a.Equal(2, game.PlayerCount())

	// dropping below two players ends the game
	a.NoError(game.RemovePlayer("b"))
	a.Equal(PhaseEnded, game.phase)

	a.Error(game.RemovePlayer("nope"))
}

func TestGetPlayerState_redaction(t *testing.T) {
	a := assert.New(t)

	game := newTestGame(t, 8, "a", "b")
	_, _, err := game.Action("a", &playable.PayloadIn{Action: "start-game"})
	a.NoError(err)

	// only the drawer sees the word choices
	response, err := game.GetPlayerState("a")
	a.NoError(err)
	state := response.Data.(PublicState)
	a.Len(state.WordChoices, 3)

	response, err = game.GetPlayerState("b")
	a.NoError(err)
	state = response.Data.(PublicState)
	a.Empty(state.WordChoices)

	word := game.wordChoices[0]
	_, _, err = game.Action("a", &playable.PayloadIn{
		Action:         "pick-word",
		AdditionalData: playable.AdditionalData{"word": word},
	})
	a.NoError(err)

	// guessers get the word's length but never the word
	response, err = game.GetPlayerState("b")
	a.NoError(err)
	state = response.Data.(PublicState)
	a.Equal(len(word), state.WordLength)
	a.Empty(state.Word)

	response, err = game.GetPlayerState("a")
	a.NoError(err)
	state = response.Data.(PublicState)
	a.Equal(word, state.Word)

	// a correct guess is masked for other observers
	a.NoError(submitGuess(game, "b", word))
	response, err = game.GetPlayerState("b")
	a.NoError(err)
	state = response.Data.(PublicState)
	a.Equal("Correct!", state.Guesses[0].Guess)
	a.Equal(word, state.Word)
}

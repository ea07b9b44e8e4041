package action_test

import (
	"testing"

	"github.com/clouds-game/gems/internal/action"
	"github.com/clouds-game/gems/internal/card"
	"github.com/clouds-game/gems/internal/config"
	"github.com/clouds-game/gems/internal/gem"
	"github.com/clouds-game/gems/internal/player"
	"github.com/clouds-game/gems/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freshTwoPlayerState(t *testing.T, visibleCount int) state.GameState {
	t.Helper()
	cfg, err := config.New(2)
	require.NoError(t, err)

	bank := gem.NewGemBag(map[gem.Gem]int{
		gem.Red: cfg.CoinInit, gem.Blue: cfg.CoinInit, gem.White: cfg.CoinInit,
		gem.Black: cfg.CoinInit, gem.Green: cfg.CoinInit, gem.Gold: cfg.CoinGoldInit,
	})

	var visible []card.Card
	for i := 0; i < visibleCount; i++ {
		visible = append(visible, card.Card{ID: "c", Level: 1, Cost: gem.One(gem.Red)})
	}

	return state.GameState{
		Config:       cfg,
		Players:      []player.PlayerState{player.New(0, "alice"), player.New(1, "bob")},
		Bank:         bank,
		VisibleCards: visible,
	}
}

// a fresh 2-player game with 5 colors and 12 visible cards has exactly
// C(5,3) take-3 combos + 5 take-2 combos + 12 reserve choices legal.
func TestLegalActions_FreshTwoPlayerGameCount(t *testing.T) {
	s := freshTwoPlayerState(t, 12)
	p := s.Player(0)

	legal := action.LegalActions(p, s)

	assert.Len(t, legal, 10+5+12)
}

func TestTake3_ConservesTotalTokens(t *testing.T) {
	s := freshTwoPlayerState(t, 0)
	initialTotal := s.Bank.Total() + s.Player(0).Gems.Total() + s.Player(1).Gems.Total()

	a := action.Take3{Gems: []gem.Gem{gem.Red, gem.Blue, gem.White}}
	require.NoError(t, action.Validate(a, s.Player(0), s))

	next, err := a.Apply(s)
	require.NoError(t, err)

	assert.Equal(t, s.Bank.Get(gem.Red)-1, next.Bank.Get(gem.Red))
	assert.Equal(t, s.Bank.Get(gem.Blue)-1, next.Bank.Get(gem.Blue))
	assert.Equal(t, s.Bank.Get(gem.White)-1, next.Bank.Get(gem.White))
	assert.Equal(t, 1, next.Player(0).Gems.Get(gem.Red))

	gotTotal := next.Bank.Total() + next.Player(0).Gems.Total() + next.Player(1).Gems.Total()
	assert.Equal(t, initialTotal, gotTotal)

	// original state is untouched
	assert.Equal(t, 0, s.Player(0).Gems.Get(gem.Red))
}

func TestTake3_EnforcesHandCapUnlessReturnsCoverExcess(t *testing.T) {
	s := freshTwoPlayerState(t, 0)
	held := gem.NewGemBag(map[gem.Gem]int{gem.Red: 5, gem.Blue: 5})
	s = s.WithPlayer(0, s.Player(0).WithGems(held))

	noReturn := action.Take3{Gems: []gem.Gem{gem.White, gem.Black, gem.Green}}
	err := action.Validate(noReturn, s.Player(0), s)
	assert.Error(t, err, "taking 3 with no returns must exceed the hand cap")

	withReturn := action.Take3{
		Gems: []gem.Gem{gem.White, gem.Black, gem.Green},
		Ret:  gem.NewGemBag(map[gem.Gem]int{gem.Red: 3}),
	}
	require.NoError(t, action.Validate(withReturn, s.Player(0), s))

	next, err := withReturn.Apply(s)
	require.NoError(t, err)
	assert.Equal(t, s.Config.CoinMaxPerPlayer, next.Player(0).Gems.Total())
}

func TestNoop_Identity(t *testing.T) {
	s := freshTwoPlayerState(t, 3)
	next, err := action.Noop{}.Apply(s)
	require.NoError(t, err)

	assert.Equal(t, s.Turn, next.Turn)
	assert.Equal(t, s.Bank, next.Bank)
	assert.Equal(t, s.Players, next.Players)
	assert.Equal(t, s.VisibleCards, next.VisibleCards)
	assert.Equal(t, action.Noop{}, next.LastAction)
}

func TestBuy_RemovesFromVisibleAndAppendsToPurchased(t *testing.T) {
	s := freshTwoPlayerState(t, 0)
	bonus := gem.Red
	c := card.Card{ID: "free-card", Points: 2, Bonus: &bonus}
	s.VisibleCards = []card.Card{c}

	buy := action.Buy{Idx: card.VisibleIdx(0), Payment: gem.GemBag{}}
	require.NoError(t, action.Validate(buy, s.Player(0), s))

	next, err := buy.Apply(s)
	require.NoError(t, err)

	assert.Empty(t, next.VisibleCards)
	require.Len(t, next.Player(0).Purchased, 1)
	assert.Equal(t, "free-card", next.Player(0).Purchased[0].ID)
	assert.Equal(t, 2, next.Player(0).Score)
	assert.Equal(t, 1, next.Player(0).Discounts.Get(gem.Red))
}

func TestReserve_RejectsDeckHeadAndNonVisible(t *testing.T) {
	s := freshTwoPlayerState(t, 1)
	r := action.Reserve{Idx: card.DeckHeadIdx(1)}
	assert.Error(t, action.Validate(r, s.Player(0), s))

	fromReserve := action.Reserve{Idx: card.ReserveIdx(0)}
	assert.Error(t, action.Validate(fromReserve, s.Player(0), s))
}

package engine_test

import (
	"fmt"
	"testing"

	"github.com/clouds-game/gems/internal/action"
	"github.com/clouds-game/gems/internal/card"
	"github.com/clouds-game/gems/internal/config"
	"github.com/clouds-game/gems/internal/engine"
	"github.com/clouds-game/gems/internal/gem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() engine.Catalog {
	var cards []card.Card
	for level := 1; level <= 3; level++ {
		for i := 0; i < 20; i++ {
			bonus := gem.StandardColors[i%len(gem.StandardColors)]
			cards = append(cards, card.Card{
				ID:     fmt.Sprintf("lvl%d-%d", level, i),
				Level:  level,
				Points: i % 5,
				Bonus:  &bonus,
				Cost:   gem.NewGemBag(map[gem.Gem]int{gem.Red: 1, gem.Blue: 1}),
			})
		}
	}
	roles := []card.Role{
		{ID: "role-1", Name: "Noble One", Points: 3},
		{ID: "role-2", Name: "Noble Two", Points: 3},
		{ID: "role-3", Name: "Noble Three", Points: 3},
	}
	return engine.Catalog{Cards: cards, Roles: roles}
}

func TestNew_BuildsInitialState(t *testing.T) {
	cfg, err := config.New(2)
	require.NoError(t, err)

	e, err := engine.New(cfg, testCatalog(), 42, []string{"alice", "bob"})
	require.NoError(t, err)

	s := e.State()
	assert.Equal(t, 0, s.Turn)
	assert.Len(t, s.Players, 2)
	assert.Len(t, s.VisibleCards, cfg.CardVisibleTotal())
	assert.Len(t, s.VisibleRoles, 3)
	assert.Equal(t, cfg.CoinInit, s.Bank.Get(gem.Red))
	assert.Equal(t, cfg.CoinGoldInit, s.Bank.Get(gem.Gold))
}

func TestStep_AdvancesTurnAndRefillsVisibleGrid(t *testing.T) {
	cfg, err := config.New(2)
	require.NoError(t, err)

	e, err := engine.New(cfg, testCatalog(), 7, []string{"alice", "bob"})
	require.NoError(t, err)

	visibleBefore := e.State().VisibleCards
	target := visibleBefore[0]

	buy := action.Buy{Idx: card.VisibleIdx(0), Payment: gem.GemBag{}}
	// this card has a real cost, so a free payment should be rejected
	err = action.Validate(buy, e.State().Player(0), e.State())
	assert.Error(t, err)

	reserve := action.Reserve{Idx: card.VisibleIdx(0), TakeGold: true}
	require.NoError(t, action.Validate(reserve, e.State().Player(0), e.State()))

	next, err := e.Step(reserve)
	require.NoError(t, err)

	assert.Equal(t, 1, next.Turn)
	assert.Len(t, next.VisibleCards, cfg.CardVisibleTotal())
	assert.Len(t, next.Player(0).Reserved, 1)
	assert.Equal(t, target.ID, next.Player(0).Reserved[0].ID)
	assert.Equal(t, 1, next.Player(0).Gems.Get(gem.Gold))
}

func TestGameEnd_ScoreThreshold(t *testing.T) {
	cfg, err := config.New(2)
	require.NoError(t, err)

	e, err := engine.New(cfg, testCatalog(), 1, []string{"alice", "bob"})
	require.NoError(t, err)

	assert.False(t, e.GameEnd())
	assert.Empty(t, e.Winners())
}

func TestGameEnd_OnlyDeadlocksOnAFullyNoopCompletedRound(t *testing.T) {
	cfg, err := config.New(4)
	require.NoError(t, err)

	e, err := engine.New(cfg, testCatalog(), 3, []string{"a", "b", "c", "d"})
	require.NoError(t, err)

	// round 0: one real move (reserve) followed by three noops - not a deadlock.
	_, err = e.Step(action.Reserve{Idx: card.VisibleIdx(0), TakeGold: true})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = e.Step(action.Noop{})
		require.NoError(t, err)
	}
	assert.False(t, e.GameEnd(), "round 0 had a real move, must not be reported as deadlocked")

	// round 1 begins with a noop; a trailing window of the last 4 entries
	// would wrongly straddle into round 0's noops and look all-noop.
	_, err = e.Step(action.Noop{})
	require.NoError(t, err)
	assert.False(t, e.GameEnd(), "round 1 is not complete yet, must not be reported as deadlocked")

	for i := 0; i < 3; i++ {
		_, err = e.Step(action.Noop{})
		require.NoError(t, err)
	}
	assert.True(t, e.GameEnd(), "round 1 completed with every seat passing, must be a deadlock")
}

func TestClone_ReseedsButCopiesHistory(t *testing.T) {
	cfg, err := config.New(2)
	require.NoError(t, err)

	e, err := engine.New(cfg, testCatalog(), 99, []string{"alice", "bob"})
	require.NoError(t, err)

	_, err = e.Step(action.Reserve{Idx: card.VisibleIdx(0), TakeGold: true})
	require.NoError(t, err)

	newSeed := int64(100)
	clone := e.Clone(&newSeed)

	assert.Len(t, clone.History(), len(e.History()))
	assert.Equal(t, newSeed, clone.Seed())
	assert.Equal(t, int64(99), e.Seed())
}

package card_test

import (
	"testing"

	"github.com/clouds-game/gems/internal/card"
	"github.com/clouds-game/gems/internal/gem"
	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	bonus := gem.Black
	c := card.Card{
		ID:     "c1",
		Level:  2,
		Points: 3,
		Bonus:  &bonus,
		Cost:   gem.NewGemBag(map[gem.Gem]int{gem.Blue: 2, gem.Black: 1}),
	}

	assert.Equal(t, "Card(c1)[2]3:K:B2K1", c.String())
}

func TestCard_HasBonus(t *testing.T) {
	c := card.Card{ID: "c2"}
	assert.False(t, c.HasBonus())

	bonus := gem.Red
	c.Bonus = &bonus
	assert.True(t, c.HasBonus())
}

func TestCardIdx_Constructors(t *testing.T) {
	v := card.VisibleIdx(3)
	assert.Equal(t, card.IdxVisible, v.Kind)
	assert.Equal(t, 3, v.VisibleSlot)

	r := card.ReserveIdx(1)
	assert.Equal(t, card.IdxReserve, r.Kind)
	assert.Equal(t, 1, r.ReserveSlot)

	d := card.DeckHeadIdx(2)
	assert.Equal(t, card.IdxDeckHead, d.Kind)
	assert.Equal(t, 2, d.DeckLevel)
}

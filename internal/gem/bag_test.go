package gem_test

import (
	"testing"

	"github.com/clouds-game/gems/internal/gem"
	"github.com/stretchr/testify/assert"
)

func TestGemBag_InitialState(t *testing.T) {
	var b gem.GemBag

	assert.Equal(t, 0, b.Total())
	assert.Equal(t, 0, b.Get(gem.Red))
	assert.Equal(t, 0, b.DistinctPositive())
}

func TestGemBag_Add_DoesNotMutateOperands(t *testing.T) {
	a := gem.NewGemBag(map[gem.Gem]int{gem.Red: 2, gem.Blue: 1})
	b := gem.NewGemBag(map[gem.Gem]int{gem.Blue: 3, gem.Gold: 1})

	sum := a.Add(b)

	assert.Equal(t, 2, a.Get(gem.Red))
	assert.Equal(t, 1, a.Get(gem.Blue))
	assert.Equal(t, 3, b.Get(gem.Blue))
	assert.Equal(t, 1, b.Get(gem.Gold))

	assert.Equal(t, 2, sum.Get(gem.Red))
	assert.Equal(t, 4, sum.Get(gem.Blue))
	assert.Equal(t, 1, sum.Get(gem.Gold))
}

func TestGemBag_Sub_DoesNotMutateOperands(t *testing.T) {
	a := gem.NewGemBag(map[gem.Gem]int{gem.Red: 5, gem.Blue: 2})
	b := gem.NewGemBag(map[gem.Gem]int{gem.Red: 2})

	diff := a.Sub(b)

	assert.Equal(t, 5, a.Get(gem.Red))
	assert.Equal(t, 2, b.Get(gem.Red))
	assert.Equal(t, 3, diff.Get(gem.Red))
	assert.Equal(t, 2, diff.Get(gem.Blue))
}

func TestGemBag_Normalized_OrderAndZeroDrop(t *testing.T) {
	b := gem.NewGemBag(map[gem.Gem]int{gem.Red: 1, gem.Black: 2, gem.Gold: 0, gem.Blue: 3})

	got := b.Normalized()

	assert.Equal(t, []gem.Count{
		{Gem: gem.Blue, Count: 3},
		{Gem: gem.Black, Count: 2},
		{Gem: gem.Red, Count: 1},
	}, got)
}

func TestGemBag_Equal(t *testing.T) {
	a := gem.NewGemBag(map[gem.Gem]int{gem.Red: 1, gem.Gold: 0})
	b := gem.NewGemBag(map[gem.Gem]int{gem.Red: 1})

	assert.True(t, a.Equal(b))
}

func TestGemBag_HasAtLeast(t *testing.T) {
	a := gem.NewGemBag(map[gem.Gem]int{gem.Red: 3, gem.Blue: 1})
	need := gem.NewGemBag(map[gem.Gem]int{gem.Red: 2, gem.Blue: 1})
	tooMuch := gem.NewGemBag(map[gem.Gem]int{gem.Red: 4})

	assert.True(t, a.HasAtLeast(need))
	assert.False(t, a.HasAtLeast(tooMuch))
}

func TestGem_ShortString(t *testing.T) {
	assert.Equal(t, "K", gem.Black.ShortString())
	assert.Equal(t, "D", gem.Gold.ShortString())
	assert.Equal(t, "R", gem.Red.ShortString())
}

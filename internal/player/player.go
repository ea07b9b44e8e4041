// Package player defines the per-seat immutable game state snapshot and its
// derived affordability/reserve queries.
package player

import (
	"github.com/clouds-game/gems/internal/card"
	"github.com/clouds-game/gems/internal/config"
	"github.com/clouds-game/gems/internal/gem"
)

// PlayerState is an immutable per-seat snapshot. Discounts is always a pure
// function of Purchased; callers must go through WithPurchased (or
// RecomputeDiscounts) rather than setting the field directly.
type PlayerState struct {
	SeatID    int
	Name      string
	Gems      gem.GemBag
	Score     int
	Reserved  []card.Card
	Purchased []card.Card
	Discounts gem.GemBag
}

// New builds an empty PlayerState for a fresh game.
func New(seatID int, name string) PlayerState {
	return PlayerState{SeatID: seatID, Name: name}
}

// CanReserve reports whether the player has room for another reserved
// card.
func (p PlayerState) CanReserve(cfg config.Config) bool {
	return len(p.Reserved) < cfg.CardMaxReserved
}

// EffectiveCost returns c's cost after subtracting the player's discounts,
// floored at zero per color.
func (p PlayerState) EffectiveCost(c card.Card) gem.GemBag {
	return effectiveCost(c, p.Discounts)
}

func effectiveCost(c card.Card, discounts gem.GemBag) gem.GemBag {
	m := make(map[gem.Gem]int, len(gem.StandardColors))
	for _, g := range gem.StandardColors {
		req := c.Cost.Get(g) - discounts.Get(g)
		if req < 0 {
			req = 0
		}
		if req > 0 {
			m[g] = req
		}
	}
	return gem.NewGemBag(m)
}

// AffordablePayments enumerates every distinct exact-payment bag covering
// c's effective cost using the player's held tokens, with Gold filling any
// per-color deficit. Returns a single empty-bag payment when the effective
// cost is already zero.
func (p PlayerState) AffordablePayments(c card.Card) []gem.GemBag {
	eff := p.EffectiveCost(c)

	var colors []gem.Gem
	var maxPaid []int
	for _, g := range gem.StandardColors {
		req := eff.Get(g)
		if req <= 0 {
			continue
		}
		held := p.Gems.Get(g)
		m := held
		if m > req {
			m = req
		}
		colors = append(colors, g)
		maxPaid = append(maxPaid, m)
	}

	goldHeld := p.Gems.Get(gem.Gold)
	var results []gem.GemBag
	assigned := make([]int, len(colors))

	var rec func(i int)
	rec = func(i int) {
		if i == len(colors) {
			deficit := 0
			for idx, g := range colors {
				deficit += eff.Get(g) - assigned[idx]
			}
			if deficit <= goldHeld {
				m := make(map[gem.Gem]int, len(colors)+1)
				for idx, g := range colors {
					if assigned[idx] > 0 {
						m[g] = assigned[idx]
					}
				}
				if deficit > 0 {
					m[gem.Gold] = deficit
				}
				results = append(results, gem.NewGemBag(m))
			}
			return
		}
		for v := 0; v <= maxPaid[i]; v++ {
			assigned[i] = v
			rec(i + 1)
		}
	}
	rec(0)

	return results
}

// CheckAfford reports whether payment is one of the bags AffordablePayments
// would produce for c.
func (p PlayerState) CheckAfford(c card.Card, payment gem.GemBag) bool {
	for _, candidate := range p.AffordablePayments(c) {
		if candidate.Equal(payment) {
			return true
		}
	}
	return false
}

// WithGems returns a copy of p with Gems replaced.
func (p PlayerState) WithGems(g gem.GemBag) PlayerState {
	out := p
	out.Gems = g
	return out
}

// WithScoreDelta returns a copy of p with Score increased by delta.
func (p PlayerState) WithScoreDelta(delta int) PlayerState {
	out := p
	out.Score += delta
	return out
}

// WithReserved returns a copy of p with Reserved replaced by a defensive
// copy of reserved.
func (p PlayerState) WithReserved(reserved []card.Card) PlayerState {
	out := p
	out.Reserved = append([]card.Card(nil), reserved...)
	return out
}

// WithPurchased returns a copy of p with Purchased replaced by a defensive
// copy of purchased, recomputing Discounts from it.
func (p PlayerState) WithPurchased(purchased []card.Card) PlayerState {
	out := p
	out.Purchased = append([]card.Card(nil), purchased...)
	out.Discounts = RecomputeDiscounts(out.Purchased)
	return out
}

// RecomputeDiscounts derives a discount histogram from a purchased-card
// list: one count per bonus color among the cards that carry one.
func RecomputeDiscounts(purchased []card.Card) gem.GemBag {
	m := make(map[gem.Gem]int)
	for _, c := range purchased {
		if c.Bonus != nil {
			m[*c.Bonus]++
		}
	}
	return gem.NewGemBag(m)
}

package action

import (
	"github.com/clouds-game/gems/internal/card"
	"github.com/clouds-game/gems/internal/gem"
	"github.com/clouds-game/gems/internal/player"
	"github.com/clouds-game/gems/internal/state"
)

// combinations returns every k-element subset of items, preserving items'
// relative order within each subset.
func combinations(items []gem.Gem, k int) [][]gem.Gem {
	var results [][]gem.Gem
	n := len(items)
	if k < 0 || k > n {
		return results
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		combo := make([]gem.Gem, k)
		for i, id := range idx {
			combo[i] = items[id]
		}
		results = append(results, combo)

		i := k - 1
		for i >= 0 && idx[i] == i+n-k {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return results
}

// enumerateMultisets enumerates every distinct color->count assignment over
// colors (with per-color cap maxPerColor) summing to exactly size.
func enumerateMultisets(colors []gem.Gem, maxPerColor []int, size int) []gem.GemBag {
	var results []gem.GemBag
	assigned := make([]int, len(colors))

	var rec func(i, remaining int)
	rec = func(i, remaining int) {
		if i == len(colors) {
			if remaining == 0 {
				m := make(map[gem.Gem]int, len(colors))
				for idx, g := range colors {
					if assigned[idx] > 0 {
						m[g] = assigned[idx]
					}
				}
				results = append(results, gem.NewGemBag(m))
			}
			return
		}
		maxHere := maxPerColor[i]
		if maxHere > remaining {
			maxHere = remaining
		}
		for v := 0; v <= maxHere; v++ {
			assigned[i] = v
			rec(i+1, remaining-v)
		}
	}
	rec(0, size)
	return results
}

// returnableColors lists the non-Gold colors the player holds (positive
// count), excluding any in exclude, alongside their held counts — the
// candidate pool for a return multiset.
func returnableColors(p player.PlayerState, exclude map[gem.Gem]bool) ([]gem.Gem, []int) {
	var colors []gem.Gem
	var maxPerColor []int
	for _, g := range gem.StandardColors {
		if exclude[g] {
			continue
		}
		held := p.Gems.Get(g)
		if held > 0 {
			colors = append(colors, g)
			maxPerColor = append(maxPerColor, held)
		}
	}
	return colors, maxPerColor
}

// EnumerateTake3 enumerates every legal Take3 action for p in s.
func EnumerateTake3(p player.PlayerState, s state.GameState) []Action {
	var available []gem.Gem
	for _, g := range gem.StandardColors {
		if s.Bank.Get(g) >= 1 {
			available = append(available, g)
		}
	}
	if len(available) == 0 {
		return nil
	}

	cap := s.Config.CoinMaxPerPlayer
	held := p.Gems.Total()
	k := len(available)
	if k > 3 {
		k = 3
	}

	var out []Action
	if held+k <= cap {
		for _, combo := range combinations(available, k) {
			out = append(out, Take3{Gems: combo})
		}
		return out
	}

	excess := held + k - cap
	for r := 0; r <= excess; r++ {
		takeCount := cap - held + r
		if takeCount < 0 || takeCount > len(available) {
			continue
		}
		for _, combo := range combinations(available, takeCount) {
			exclude := make(map[gem.Gem]bool, len(combo))
			for _, g := range combo {
				exclude[g] = true
			}
			colors, maxPerColor := returnableColors(p, exclude)
			for _, ret := range enumerateMultisets(colors, maxPerColor, r) {
				out = append(out, Take3{Gems: combo, Ret: ret})
			}
		}
	}
	return out
}

// EnumerateTake2 enumerates every legal Take2 action for p in s.
func EnumerateTake2(p player.PlayerState, s state.GameState) []Action {
	cap := s.Config.CoinMaxPerPlayer
	held := p.Gems.Total()

	var out []Action
	for _, g := range gem.StandardColors {
		if s.Bank.Get(g) < s.Config.CoinMinTake2 {
			continue
		}
		if held+2 <= cap {
			out = append(out, Take2{Gem: g, Count: 2})
			continue
		}
		need := held + 2 - cap
		colors, maxPerColor := returnableColors(p, map[gem.Gem]bool{g: true})
		for _, ret := range enumerateMultisets(colors, maxPerColor, need) {
			out = append(out, Take2{Gem: g, Count: 2, Ret: ret})
		}
	}
	return out
}

// EnumerateBuy enumerates every legal Buy action for p in s, covering both
// the visible grid and the player's reserved pile.
func EnumerateBuy(p player.PlayerState, s state.GameState) []Action {
	var out []Action
	for i, c := range s.VisibleCards {
		c := c
		for _, payment := range p.AffordablePayments(c) {
			out = append(out, Buy{Idx: card.VisibleIdx(i), Card: &c, Payment: payment})
		}
	}
	for i, c := range p.Reserved {
		c := c
		for _, payment := range p.AffordablePayments(c) {
			out = append(out, Buy{Idx: card.ReserveIdx(i), Card: &c, Payment: payment})
		}
	}
	return out
}

// EnumerateReserve enumerates every legal Reserve action for p in s.
func EnumerateReserve(p player.PlayerState, s state.GameState) []Action {
	if !p.CanReserve(s.Config) {
		return nil
	}

	goldAvailable := s.Bank.Get(gem.Gold) > 0
	cap := s.Config.CoinMaxPerPlayer
	held := p.Gems.Total()

	var out []Action
	for i, c := range s.VisibleCards {
		c := c
		if goldAvailable && held+1 > cap {
			for _, g := range gem.StandardColors {
				if p.Gems.Get(g) <= 0 {
					continue
				}
				g := g
				out = append(out, Reserve{Idx: card.VisibleIdx(i), Card: &c, TakeGold: true, Ret: &g})
			}
			continue
		}
		out = append(out, Reserve{Idx: card.VisibleIdx(i), Card: &c, TakeGold: goldAvailable})
	}
	return out
}

// LegalActions concatenates every variant's enumeration for p in s,
// falling back to a single Noop when nothing else is legal.
func LegalActions(p player.PlayerState, s state.GameState) []Action {
	var out []Action
	out = append(out, EnumerateTake3(p, s)...)
	out = append(out, EnumerateTake2(p, s)...)
	out = append(out, EnumerateBuy(p, s)...)
	out = append(out, EnumerateReserve(p, s)...)
	if len(out) == 0 {
		return []Action{Noop{}}
	}
	return out
}

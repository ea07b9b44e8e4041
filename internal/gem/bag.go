package gem

import (
	"fmt"
	"strings"
)

// GemBag is an immutable mapping from Gem to a non-negative token count.
// The zero value is the empty bag. Represented internally as a fixed-size
// array indexed by gem ordinal, per the recommended core representation.
type GemBag struct {
	counts [len(Colors)]int
}

// Count pairs a Gem with a quantity, used by Iter and Normalized.
type Count struct {
	Gem   Gem
	Count int
}

// NewGemBag builds a bag from a color->count map. Colors absent from m
// default to zero.
func NewGemBag(m map[Gem]int) GemBag {
	var b GemBag
	for g, n := range m {
		b.counts[g] = n
	}
	return b
}

// One builds a bag holding exactly one of the given gem.
func One(g Gem) GemBag {
	var b GemBag
	b.counts[g] = 1
	return b
}

// Get returns the count for g, or 0 if absent.
func (b GemBag) Get(g Gem) int {
	return b.counts[g]
}

// Total returns the sum of all counts.
func (b GemBag) Total() int {
	total := 0
	for _, n := range b.counts {
		total += n
	}
	return total
}

// DistinctPositive returns the number of colors with a strictly positive
// count.
func (b GemBag) DistinctPositive() int {
	n := 0
	for _, c := range b.counts {
		if c > 0 {
			n++
		}
	}
	return n
}

// Iter returns a (Gem, count) pair for every color in declaration order,
// including zero counts.
func (b GemBag) Iter() []Count {
	out := make([]Count, 0, len(Colors))
	for _, g := range Colors {
		out = append(out, Count{Gem: g, Count: b.counts[g]})
	}
	return out
}

// Normalized returns (Gem, count) pairs for strictly positive colors only,
// in the canonical display/equality order: Blue, White, Black, Red, Green,
// Gold.
func (b GemBag) Normalized() []Count {
	out := make([]Count, 0, len(normalOrder))
	for _, g := range normalOrder {
		if c := b.counts[g]; c > 0 {
			out = append(out, Count{Gem: g, Count: c})
		}
	}
	return out
}

// Equal reports whether b and other agree on every color's count.
func (b GemBag) Equal(other GemBag) bool {
	return b.counts == other.counts
}

// WithDelta returns a new bag with delta added to g's count, leaving b
// unmodified.
func (b GemBag) WithDelta(g Gem, delta int) GemBag {
	out := b
	out.counts[g] += delta
	return out
}

// WithSet returns a new bag with g's count replaced by n, leaving b
// unmodified.
func (b GemBag) WithSet(g Gem, n int) GemBag {
	out := b
	out.counts[g] = n
	return out
}

// Add returns the pointwise sum of b and other, leaving both unmodified.
func (b GemBag) Add(other GemBag) GemBag {
	var out GemBag
	for i := range out.counts {
		out.counts[i] = b.counts[i] + other.counts[i]
	}
	return out
}

// Sub returns the pointwise difference b - other, leaving both unmodified.
// Callers are responsible for validating sufficiency before relying on the
// result staying non-negative; this mirrors the original's dict-based
// arithmetic, which never clamped either.
func (b GemBag) Sub(other GemBag) GemBag {
	var out GemBag
	for i := range out.counts {
		out.counts[i] = b.counts[i] - other.counts[i]
	}
	return out
}

// HasAtLeast reports whether b holds at least other's count of every color.
func (b GemBag) HasAtLeast(other GemBag) bool {
	for i := range b.counts {
		if b.counts[i] < other.counts[i] {
			return false
		}
	}
	return true
}

// String renders the bag using each gem's short display letter, in
// canonical order, e.g. "B2K1" for {Blue:2, Black:1}.
func (b GemBag) String() string {
	var sb strings.Builder
	for _, c := range b.Normalized() {
		fmt.Fprintf(&sb, "%s%d", c.Gem.ShortString(), c.Count)
	}
	return sb.String()
}

// Package card defines the immutable card/role catalog types and the
// positional CardIdx reference used by the action algebra.
package card

import (
	"fmt"

	"github.com/clouds-game/gems/internal/gem"
)

// Card is an immutable tableau card. Id is its identity; two cards with the
// same Id are the same card for lookup purposes even if fields differ.
type Card struct {
	ID     string      `json:"id"`
	Level  int         `json:"level"`
	Points int         `json:"points"`
	Bonus  *gem.Gem    `json:"bonus,omitempty"`
	Cost   gem.GemBag  `json:"cost"`
}

// HasBonus reports whether the card grants a permanent discount color.
func (c Card) HasBonus() bool {
	return c.Bonus != nil
}

// String renders a compact debug form, e.g. "Card(id)[2]3:R:B2K1" for a
// level-2 card worth 3 points with a Red bonus, costing 2 Blue + 1 Black.
func (c Card) String() string {
	bonus := ""
	if c.Bonus != nil {
		bonus = ":" + c.Bonus.ShortString()
	}
	return fmt.Sprintf("Card(%s)[%d]%d%s:%s", c.ID, c.Level, c.Points, bonus, c.Cost.String())
}

// Role is a noble-style objective carried through state unchanged; scoring
// from roles is out of scope for the core.
type Role struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Points       int        `json:"points"`
	Requirements gem.GemBag `json:"requirements"`
}

// CardIdxKind tags which CardIdx variant is populated.
type CardIdxKind int

const (
	// IdxVisible references a slot in the visible grid.
	IdxVisible CardIdxKind = iota
	// IdxReserve references a slot in a player's reserved pile.
	IdxReserve
	// IdxDeckHead references the top of a level's draw deck.
	IdxDeckHead
)

// CardIdx is a positional reference to a card: exactly one of Visible,
// Reserve, or DeckHead is populated, selected by Kind.
type CardIdx struct {
	Kind CardIdxKind

	// VisibleSlot is the index into the visible grid when Kind == IdxVisible.
	VisibleSlot int
	// ReserveSlot is the index into the acting player's reserved pile when
	// Kind == IdxReserve.
	ReserveSlot int
	// DeckLevel is the tier to draw the top card from when Kind ==
	// IdxDeckHead.
	DeckLevel int
}

// VisibleIdx builds a CardIdx referencing the given visible-grid slot.
func VisibleIdx(slot int) CardIdx {
	return CardIdx{Kind: IdxVisible, VisibleSlot: slot}
}

// ReserveIdx builds a CardIdx referencing the given reserved-pile slot.
func ReserveIdx(slot int) CardIdx {
	return CardIdx{Kind: IdxReserve, ReserveSlot: slot}
}

// DeckHeadIdx builds a CardIdx referencing the top of the given level's
// deck.
func DeckHeadIdx(level int) CardIdx {
	return CardIdx{Kind: IdxDeckHead, DeckLevel: level}
}

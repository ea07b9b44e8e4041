package engine

import "github.com/clouds-game/gems/internal/card"

// Catalog is the pre-loaded set of cards and roles an Engine deals from.
// Reading a catalog file into this shape is an external concern (the core
// never parses a catalog document itself); callers load it however they
// like and hand the parsed values to New.
type Catalog struct {
	Cards []card.Card
	Roles []card.Role
}

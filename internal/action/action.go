// Package action implements the tagged-union action algebra: Take3, Take2,
// Buy, Reserve, and Noop, each with stateless validation, stateful
// validation, apply, and legal-action enumeration.
package action

import (
	"github.com/clouds-game/gems/internal/apperrors"
	"github.com/clouds-game/gems/internal/card"
	"github.com/clouds-game/gems/internal/config"
	"github.com/clouds-game/gems/internal/gem"
	"github.com/clouds-game/gems/internal/player"
	"github.com/clouds-game/gems/internal/state"
)

// Action is the common interface every variant implements. Validation is
// split so enumeration can prune fast: ValidateStateless depends only on
// config, ValidateStateful additionally needs the acting player and state.
// Apply assumes the action has already been validated; it is the caller's
// (Engine's) job to validate before applying.
type Action interface {
	state.Action
	ValidateStateless(cfg config.Config) error
	ValidateStateful(p player.PlayerState, s state.GameState) error
	Apply(s state.GameState) (state.GameState, error)
}

// Validate runs both validation stages in order, short-circuiting on the
// first failure.
func Validate(a Action, p player.PlayerState, s state.GameState) error {
	if err := a.ValidateStateless(s.Config); err != nil {
		return err
	}
	return a.ValidateStateful(p, s)
}

func bagFromGems(gs []gem.Gem) gem.GemBag {
	m := make(map[gem.Gem]int, len(gs))
	for _, g := range gs {
		m[g]++
	}
	return gem.NewGemBag(m)
}

func distinctNonGold(gs []gem.Gem) bool {
	seen := make(map[gem.Gem]bool, len(gs))
	for _, g := range gs {
		if g == gem.Gold {
			return false
		}
		if seen[g] {
			return false
		}
		seen[g] = true
	}
	return true
}

// resolveCard locates the card a CardIdx refers to, scoped to the current
// visible grid and the acting player's reserved pile. deck_head is never
// resolvable here; Reserve/Buy reject it during stateless validation.
func resolveCard(idx card.CardIdx, s state.GameState, p player.PlayerState) (card.Card, error) {
	switch idx.Kind {
	case card.IdxVisible:
		if idx.VisibleSlot < 0 || idx.VisibleSlot >= len(s.VisibleCards) {
			return card.Card{}, &apperrors.InvalidActionError{Action: "card_idx", Reason: "visible slot out of range"}
		}
		return s.VisibleCards[idx.VisibleSlot], nil
	case card.IdxReserve:
		if idx.ReserveSlot < 0 || idx.ReserveSlot >= len(p.Reserved) {
			return card.Card{}, &apperrors.InvalidActionError{Action: "card_idx", Reason: "reserve slot out of range"}
		}
		return p.Reserved[idx.ReserveSlot], nil
	default:
		return card.Card{}, &apperrors.InvalidActionError{Action: "card_idx", Reason: "deck_head is not a resolvable card reference"}
	}
}

func removeAt(cards []card.Card, idx int) []card.Card {
	out := make([]card.Card, 0, len(cards)-1)
	out = append(out, cards[:idx]...)
	out = append(out, cards[idx+1:]...)
	return out
}

func checkCardIdentity(want *card.Card, got card.Card) error {
	if want != nil && want.ID != got.ID {
		return &apperrors.InvalidActionError{Action: "card_idx", Reason: "card id cross-check mismatch"}
	}
	return nil
}

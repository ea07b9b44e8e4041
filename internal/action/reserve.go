package action

import (
	"github.com/clouds-game/gems/internal/apperrors"
	"github.com/clouds-game/gems/internal/card"
	"github.com/clouds-game/gems/internal/config"
	"github.com/clouds-game/gems/internal/gem"
	"github.com/clouds-game/gems/internal/player"
	"github.com/clouds-game/gems/internal/state"
)

// Reserve sets aside a visible card for later purchase, optionally gaining
// a Gold token and returning a single non-Gold color if that would exceed
// the hand cap.
type Reserve struct {
	Idx      card.CardIdx
	Card     *card.Card // optional cross-check
	TakeGold bool
	Ret      *gem.Gem
}

// ActionType implements state.Action.
func (Reserve) ActionType() string { return "reserve_card" }

// ValidateStateless implements Action.
func (a Reserve) ValidateStateless(cfg config.Config) error {
	if a.Idx.Kind != card.IdxVisible {
		return &apperrors.InvalidActionError{Action: "reserve_card", Reason: "can only reserve a visible card"}
	}
	if a.Ret != nil {
		if !a.TakeGold {
			return &apperrors.InvalidActionError{Action: "reserve_card", Reason: "a return requires take_gold"}
		}
		if *a.Ret == gem.Gold {
			return &apperrors.InvalidActionError{Action: "reserve_card", Reason: "cannot return Gold"}
		}
	}
	return nil
}

// ValidateStateful implements Action.
func (a Reserve) ValidateStateful(p player.PlayerState, s state.GameState) error {
	if !p.CanReserve(s.Config) {
		return &apperrors.InvalidActionError{Action: "reserve_card", Reason: "reserved pile is full"}
	}
	if _, err := resolveCard(a.Idx, s, p); err != nil {
		return err
	}
	if a.TakeGold && s.Bank.Get(gem.Gold) < 1 {
		return &apperrors.InvalidActionError{Action: "reserve_card", Reason: "bank has no Gold left"}
	}

	newTotal := p.Gems.Total()
	if a.TakeGold {
		newTotal++
	}
	if a.Ret != nil {
		if p.Gems.Get(*a.Ret) < 1 {
			return &apperrors.InvalidActionError{Action: "reserve_card", Reason: "player lacks the color being returned"}
		}
		newTotal--
		if newTotal != s.Config.CoinMaxPerPlayer {
			return &apperrors.InvalidActionError{Action: "reserve_card", Reason: "return must land exactly at the hand cap"}
		}
	} else if newTotal > s.Config.CoinMaxPerPlayer {
		return &apperrors.InvalidActionError{Action: "reserve_card", Reason: "would exceed the hand cap"}
	}
	return nil
}

// Apply implements Action.
func (a Reserve) Apply(s state.GameState) (state.GameState, error) {
	seat := s.ActingSeat()
	p := s.Player(seat)

	c, err := resolveCard(a.Idx, s, p)
	if err != nil {
		return state.GameState{}, err
	}

	out := s.WithVisibleCards(removeAt(s.VisibleCards, a.Idx.VisibleSlot))
	reserved := append(append([]card.Card(nil), p.Reserved...), c)
	p = p.WithReserved(reserved)

	bank := out.Bank
	if a.TakeGold {
		bank = bank.WithDelta(gem.Gold, -1)
		p = p.WithGems(p.Gems.WithDelta(gem.Gold, 1))
	}
	if a.Ret != nil {
		bank = bank.WithDelta(*a.Ret, 1)
		p = p.WithGems(p.Gems.WithDelta(*a.Ret, -1))
	}

	out = out.WithBank(bank).WithPlayer(seat, p).WithLastAction(a)
	return out, nil
}

package action

import (
	"github.com/clouds-game/gems/internal/apperrors"
	"github.com/clouds-game/gems/internal/config"
	"github.com/clouds-game/gems/internal/gem"
	"github.com/clouds-game/gems/internal/player"
	"github.com/clouds-game/gems/internal/state"
)

// Take2 takes two tokens of a single non-Gold color, optionally returning
// tokens to stay under the hand cap.
type Take2 struct {
	Gem   gem.Gem
	Count int
	Ret   gem.GemBag
}

// ActionType implements state.Action.
func (Take2) ActionType() string { return "take_2_same" }

// ValidateStateless implements Action.
func (a Take2) ValidateStateless(cfg config.Config) error {
	if a.Gem == gem.Gold {
		return &apperrors.InvalidActionError{Action: "take_2_same", Reason: "cannot take Gold via take_2_same"}
	}
	if a.Count != 2 {
		return &apperrors.InvalidActionError{Action: "take_2_same", Reason: "count must be 2"}
	}
	if a.Ret.Get(a.Gem) > 0 {
		return &apperrors.InvalidActionError{Action: "take_2_same", Reason: "cannot return the color being taken"}
	}
	return nil
}

// ValidateStateful implements Action.
func (a Take2) ValidateStateful(p player.PlayerState, s state.GameState) error {
	if s.Bank.Get(a.Gem) < s.Config.CoinMinTake2 {
		return &apperrors.InvalidActionError{Action: "take_2_same", Reason: "bank does not hold enough of that color"}
	}
	if !p.Gems.HasAtLeast(a.Ret) {
		return &apperrors.InvalidActionError{Action: "take_2_same", Reason: "player lacks enough tokens to return"}
	}
	newTotal := p.Gems.Total() + 2 - a.Ret.Total()
	if newTotal > s.Config.CoinMaxPerPlayer {
		return &apperrors.InvalidActionError{Action: "take_2_same", Reason: "would exceed the hand cap"}
	}
	return nil
}

// Apply implements Action.
func (a Take2) Apply(s state.GameState) (state.GameState, error) {
	seat := s.ActingSeat()
	p := s.Player(seat)

	bank := s.Bank.WithDelta(a.Gem, -2)
	p = p.WithGems(p.Gems.WithDelta(a.Gem, 2))

	bank = bank.Add(a.Ret)
	p = p.WithGems(p.Gems.Sub(a.Ret))

	return s.WithBank(bank).WithPlayer(seat, p).WithLastAction(a), nil
}

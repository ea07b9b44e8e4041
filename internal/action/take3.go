package action

import (
	"github.com/clouds-game/gems/internal/apperrors"
	"github.com/clouds-game/gems/internal/config"
	"github.com/clouds-game/gems/internal/gem"
	"github.com/clouds-game/gems/internal/player"
	"github.com/clouds-game/gems/internal/state"
)

// Take3 takes up to three distinct non-Gold gems, optionally returning some
// tokens to stay under the hand cap.
type Take3 struct {
	Gems []gem.Gem
	Ret  gem.GemBag
}

// ActionType implements state.Action.
func (Take3) ActionType() string { return "take_3_different" }

// ValidateStateless implements Action.
func (a Take3) ValidateStateless(cfg config.Config) error {
	if len(a.Gems) > 3 {
		return &apperrors.InvalidActionError{Action: "take_3_different", Reason: "cannot take more than three colors"}
	}
	if !distinctNonGold(a.Gems) {
		return &apperrors.InvalidActionError{Action: "take_3_different", Reason: "gems must be distinct non-Gold colors"}
	}
	for _, g := range a.Gems {
		if a.Ret.Get(g) > 0 {
			return &apperrors.InvalidActionError{Action: "take_3_different", Reason: "returned gems must not overlap taken gems"}
		}
	}
	return nil
}

// ValidateStateful implements Action.
func (a Take3) ValidateStateful(p player.PlayerState, s state.GameState) error {
	for _, g := range a.Gems {
		if s.Bank.Get(g) < 1 {
			return &apperrors.InvalidActionError{Action: "take_3_different", Reason: "bank lacks a requested color"}
		}
	}
	if !p.Gems.HasAtLeast(a.Ret) {
		return &apperrors.InvalidActionError{Action: "take_3_different", Reason: "player lacks enough tokens to return"}
	}
	newTotal := p.Gems.Total() + len(a.Gems) - a.Ret.Total()
	if newTotal > s.Config.CoinMaxPerPlayer {
		return &apperrors.InvalidActionError{Action: "take_3_different", Reason: "would exceed the hand cap"}
	}
	return nil
}

// Apply implements Action.
func (a Take3) Apply(s state.GameState) (state.GameState, error) {
	seat := s.ActingSeat()
	p := s.Player(seat)

	taken := bagFromGems(a.Gems)
	bank := s.Bank.Sub(taken)
	p = p.WithGems(p.Gems.Add(taken))

	bank = bank.Add(a.Ret)
	p = p.WithGems(p.Gems.Sub(a.Ret))

	return s.WithBank(bank).WithPlayer(seat, p).WithLastAction(a), nil
}

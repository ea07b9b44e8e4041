package action

import (
	"github.com/clouds-game/gems/internal/config"
	"github.com/clouds-game/gems/internal/player"
	"github.com/clouds-game/gems/internal/state"
)

// Noop is always valid; it is emitted as a fallback when no other action is
// legal, signaling the current player has no move.
type Noop struct{}

// ActionType implements state.Action.
func (Noop) ActionType() string { return "noop" }

// ValidateStateless implements Action.
func (Noop) ValidateStateless(cfg config.Config) error { return nil }

// ValidateStateful implements Action.
func (Noop) ValidateStateful(p player.PlayerState, s state.GameState) error { return nil }

// Apply implements Action. State is unchanged except LastAction.
func (a Noop) Apply(s state.GameState) (state.GameState, error) {
	return s.WithLastAction(a), nil
}

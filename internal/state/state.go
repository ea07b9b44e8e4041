// Package state defines the immutable whole-game snapshot threaded through
// every action apply.
package state

import (
	"github.com/clouds-game/gems/internal/apperrors"
	"github.com/clouds-game/gems/internal/card"
	"github.com/clouds-game/gems/internal/config"
	"github.com/clouds-game/gems/internal/gem"
	"github.com/clouds-game/gems/internal/player"
)

// Action is the marker interface GameState.LastAction holds. Concrete
// variants live in package action; this package only needs enough of the
// shape to tag a SerializedAction type and avoid an import cycle back to
// action.
type Action interface {
	ActionType() string
}

// GameState is an immutable snapshot of the whole game: config, players,
// bank, visible grid, visible roles, and the turn counter. Decks are not
// part of GameState; they live in the Engine.
type GameState struct {
	Config       config.Config
	Players      []player.PlayerState
	Bank         gem.GemBag
	VisibleCards []card.Card
	VisibleRoles []card.Role
	Turn         int
	LastAction   Action
}

// Round returns the zero-based round number, derived from Turn.
func (s GameState) Round() int {
	return s.Turn / len(s.Players)
}

// ActingSeat returns the seat whose turn it is.
func (s GameState) ActingSeat() int {
	return s.Turn % len(s.Players)
}

// Player returns the PlayerState at seat.
func (s GameState) Player(seat int) player.PlayerState {
	return s.Players[seat]
}

// WithPlayer returns a copy of s with the player at seat replaced, leaving s
// unmodified.
func (s GameState) WithPlayer(seat int, p player.PlayerState) GameState {
	out := s.shallowCopy()
	players := append([]player.PlayerState(nil), s.Players...)
	players[seat] = p
	out.Players = players
	return out
}

// WithBank returns a copy of s with Bank replaced.
func (s GameState) WithBank(b gem.GemBag) GameState {
	out := s.shallowCopy()
	out.Bank = b
	return out
}

// WithVisibleCards returns a copy of s with VisibleCards replaced by a
// defensive copy of cards.
func (s GameState) WithVisibleCards(cards []card.Card) GameState {
	out := s.shallowCopy()
	out.VisibleCards = append([]card.Card(nil), cards...)
	return out
}

// WithLastAction returns a copy of s with LastAction replaced. Turn is left
// unchanged; the engine's advance_turn step is the only place Turn
// increments.
func (s GameState) WithLastAction(a Action) GameState {
	out := s.shallowCopy()
	out.LastAction = a
	return out
}

// WithTurn returns a copy of s with Turn replaced.
func (s GameState) WithTurn(turn int) GameState {
	out := s.shallowCopy()
	out.Turn = turn
	return out
}

// shallowCopy copies every field by value and gives the Players,
// VisibleCards and VisibleRoles slices fresh backing arrays, so the copy
// never shares a slice with s. Slice elements themselves are copied
// shallowly.
func (s GameState) shallowCopy() GameState {
	out := s
	out.Players = append([]player.PlayerState(nil), s.Players...)
	out.VisibleCards = append([]card.Card(nil), s.VisibleCards...)
	out.VisibleRoles = append([]card.Role(nil), s.VisibleRoles...)
	return out
}

// InitialBankTotal returns the token count a fresh bank of this config
// holds: one coin_init per standard color plus coin_gold_init.
func InitialBankTotal(cfg config.Config) int {
	return len(gem.StandardColors)*cfg.CoinInit + cfg.CoinGoldInit
}

// CheckInvariants verifies the universal invariants that must hold after
// every step: token conservation, per-seat hand cap, reserve-pile cap, and
// visible-grid capacity per level. Returns an *apperrors.InternalInvariantError
// describing the first violation found.
func (s GameState) CheckInvariants() error {
	total := s.Bank.Total()
	for _, p := range s.Players {
		total += p.Gems.Total()
		if p.Gems.Total() > s.Config.CoinMaxPerPlayer {
			return &apperrors.InternalInvariantError{
				Invariant: "hand_cap",
				Reason:    "seat holds more tokens than the configured cap",
			}
		}
		if len(p.Reserved) > s.Config.CardMaxReserved {
			return &apperrors.InternalInvariantError{
				Invariant: "reserve_cap",
				Reason:    "seat holds more reserved cards than the configured cap",
			}
		}
	}
	if want := InitialBankTotal(s.Config); total != want {
		return &apperrors.InternalInvariantError{
			Invariant: "token_conservation",
			Reason:    "bank + held tokens does not equal the initial total",
		}
	}
	perLevel := make(map[int]int)
	for _, c := range s.VisibleCards {
		perLevel[c.Level]++
	}
	for level, count := range perLevel {
		if count > s.Config.CardVisiblePerLevel {
			return &apperrors.InternalInvariantError{
				Invariant: "visible_grid",
				Reason:    "too many visible cards at level",
			}
		}
		_ = level
	}
	return nil
}

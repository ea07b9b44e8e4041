package action

import (
	"github.com/clouds-game/gems/internal/apperrors"
	"github.com/clouds-game/gems/internal/card"
	"github.com/clouds-game/gems/internal/config"
	"github.com/clouds-game/gems/internal/gem"
	"github.com/clouds-game/gems/internal/player"
	"github.com/clouds-game/gems/internal/state"
)

// Buy purchases a card from the visible grid or from the acting player's
// reserved pile.
type Buy struct {
	Idx     card.CardIdx
	Card    *card.Card // optional cross-check
	Payment gem.GemBag
}

// ActionType implements state.Action.
func (Buy) ActionType() string { return "buy_card" }

// ValidateStateless implements Action.
func (a Buy) ValidateStateless(cfg config.Config) error {
	if a.Idx.Kind == card.IdxDeckHead {
		return &apperrors.InvalidActionError{Action: "buy_card", Reason: "cannot buy directly from a deck head"}
	}
	return nil
}

// ValidateStateful implements Action.
func (a Buy) ValidateStateful(p player.PlayerState, s state.GameState) error {
	c, err := resolveCard(a.Idx, s, p)
	if err != nil {
		return err
	}
	if err := checkCardIdentity(a.Card, c); err != nil {
		return err
	}
	if !p.CheckAfford(c, a.Payment) {
		return &apperrors.InvalidActionError{Action: "buy_card", Reason: "payment does not match an affordable payment for this card"}
	}
	return nil
}

// Apply implements Action.
func (a Buy) Apply(s state.GameState) (state.GameState, error) {
	seat := s.ActingSeat()
	p := s.Player(seat)

	c, err := resolveCard(a.Idx, s, p)
	if err != nil {
		return state.GameState{}, err
	}

	out := s
	switch a.Idx.Kind {
	case card.IdxVisible:
		out = out.WithVisibleCards(removeAt(s.VisibleCards, a.Idx.VisibleSlot))
	case card.IdxReserve:
		p = p.WithReserved(removeAt(p.Reserved, a.Idx.ReserveSlot))
	}

	p = p.WithGems(p.Gems.Sub(a.Payment))
	bank := out.Bank.Add(a.Payment)

	purchased := append(append([]card.Card(nil), p.Purchased...), c)
	p = p.WithPurchased(purchased)
	p = p.WithScoreDelta(c.Points)

	out = out.WithBank(bank).WithPlayer(seat, p).WithLastAction(a)
	return out, nil
}

package replay

import (
	"strings"

	"github.com/clouds-game/gems/internal/action"
	"github.com/clouds-game/gems/internal/apperrors"
	"github.com/clouds-game/gems/internal/card"
	"github.com/clouds-game/gems/internal/gem"
)

func colorName(g gem.Gem) string {
	return strings.ToLower(g.String())
}

func parseColor(v interface{}) (gem.Gem, error) {
	s, ok := v.(string)
	if !ok {
		return 0, &apperrors.DeserializationError{Kind: "color", Reason: "expected a string"}
	}
	switch strings.ToLower(s) {
	case "red":
		return gem.Red, nil
	case "blue":
		return gem.Blue, nil
	case "white":
		return gem.White, nil
	case "black":
		return gem.Black, nil
	case "green":
		return gem.Green, nil
	case "gold":
		return gem.Gold, nil
	default:
		return 0, &apperrors.DeserializationError{Kind: "color", Reason: "unknown color " + s}
	}
}

func parseColorPtr(v interface{}) (*gem.Gem, error) {
	if v == nil {
		return nil, nil
	}
	g, err := parseColor(v)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, &apperrors.DeserializationError{Kind: "int", Reason: "expected a number"}
	}
}

func bagPairs(b gem.GemBag) []interface{} {
	out := make([]interface{}, 0, len(b.Normalized()))
	for _, c := range b.Normalized() {
		out = append(out, []interface{}{colorName(c.Gem), c.Count})
	}
	return out
}

func parseBagPairs(v interface{}) (gem.GemBag, error) {
	if v == nil {
		return gem.GemBag{}, nil
	}
	arr, ok := v.([]interface{})
	if !ok {
		return gem.GemBag{}, &apperrors.DeserializationError{Kind: "gem_bag", Reason: "expected an array of pairs"}
	}
	m := make(map[gem.Gem]int, len(arr))
	for _, item := range arr {
		pair, ok := item.([]interface{})
		if !ok || len(pair) != 2 {
			return gem.GemBag{}, &apperrors.DeserializationError{Kind: "gem_bag", Reason: "expected a [color, count] pair"}
		}
		g, err := parseColor(pair[0])
		if err != nil {
			return gem.GemBag{}, err
		}
		n, err := toInt(pair[1])
		if err != nil {
			return gem.GemBag{}, err
		}
		m[g] = n
	}
	return gem.NewGemBag(m), nil
}

func idxMap(idx card.CardIdx) map[string]interface{} {
	m := map[string]interface{}{"visible_idx": nil, "reserve_idx": nil, "deck_head_level": nil}
	switch idx.Kind {
	case card.IdxVisible:
		m["visible_idx"] = idx.VisibleSlot
	case card.IdxReserve:
		m["reserve_idx"] = idx.ReserveSlot
	default:
		m["deck_head_level"] = idx.DeckLevel
	}
	return m
}

func parseIdx(v interface{}) (card.CardIdx, error) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return card.CardIdx{}, &apperrors.DeserializationError{Kind: "card_idx", Reason: "expected an object"}
	}
	if raw := m["visible_idx"]; raw != nil {
		n, err := toInt(raw)
		if err != nil {
			return card.CardIdx{}, err
		}
		return card.VisibleIdx(n), nil
	}
	if raw := m["reserve_idx"]; raw != nil {
		n, err := toInt(raw)
		if err != nil {
			return card.CardIdx{}, err
		}
		return card.ReserveIdx(n), nil
	}
	if raw := m["deck_head_level"]; raw != nil {
		n, err := toInt(raw)
		if err != nil {
			return card.CardIdx{}, err
		}
		return card.DeckHeadIdx(n), nil
	}
	return card.CardIdx{}, &apperrors.DeserializationError{Kind: "card_idx", Reason: "no variant populated"}
}

func cardMap(c card.Card) map[string]interface{} {
	m := map[string]interface{}{"id": c.ID, "level": c.Level, "points": c.Points, "cost": bagPairs(c.Cost)}
	if c.Bonus != nil {
		m["bonus"] = colorName(*c.Bonus)
	} else {
		m["bonus"] = nil
	}
	return m
}

func parseCardPtr(v interface{}) (*card.Card, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, &apperrors.DeserializationError{Kind: "card", Reason: "expected an object"}
	}
	id, _ := m["id"].(string)
	if id == "" {
		return nil, &apperrors.DeserializationError{Kind: "card", Reason: "missing id"}
	}
	c := card.Card{ID: id}
	if lv := m["level"]; lv != nil {
		if n, err := toInt(lv); err == nil {
			c.Level = n
		}
	}
	if pt := m["points"]; pt != nil {
		if n, err := toInt(pt); err == nil {
			c.Points = n
		}
	}
	if bonus := m["bonus"]; bonus != nil {
		g, err := parseColor(bonus)
		if err != nil {
			return nil, err
		}
		c.Bonus = &g
	}
	if cost := m["cost"]; cost != nil {
		b, err := parseBagPairs(cost)
		if err != nil {
			return nil, err
		}
		c.Cost = b
	}
	return &c, nil
}

// SerializeAction renders a into the tagged-union wire shape §6 describes:
// a "type" discriminant plus the fields that variant carries.
func SerializeAction(a action.Action) (map[string]interface{}, error) {
	switch v := a.(type) {
	case action.Take3:
		m := map[string]interface{}{"type": v.ActionType(), "gems": colorNames(v.Gems)}
		if v.Ret.Total() > 0 {
			m["ret"] = bagPairs(v.Ret)
		} else {
			m["ret"] = nil
		}
		return m, nil
	case action.Take2:
		m := map[string]interface{}{"type": v.ActionType(), "gem": colorName(v.Gem), "count": v.Count}
		if v.Ret.Total() > 0 {
			m["ret"] = bagPairs(v.Ret)
		} else {
			m["ret"] = nil
		}
		return m, nil
	case action.Buy:
		m := map[string]interface{}{"type": v.ActionType(), "payment": bagPairs(v.Payment), "idx": idxMap(v.Idx)}
		if v.Card != nil {
			m["card"] = cardMap(*v.Card)
		} else {
			m["card"] = nil
		}
		return m, nil
	case action.Reserve:
		m := map[string]interface{}{"type": v.ActionType(), "take_gold": v.TakeGold, "idx": idxMap(v.Idx)}
		if v.Card != nil {
			m["card"] = cardMap(*v.Card)
		} else {
			m["card"] = nil
		}
		if v.Ret != nil {
			m["ret"] = colorName(*v.Ret)
		} else {
			m["ret"] = nil
		}
		return m, nil
	case action.Noop:
		return map[string]interface{}{"type": v.ActionType()}, nil
	default:
		return nil, &apperrors.DeserializationError{Kind: "action", Reason: "unknown action type"}
	}
}

// DeserializeAction parses the wire shape SerializeAction produces back into
// a concrete action.Action.
func DeserializeAction(m map[string]interface{}) (action.Action, error) {
	t, _ := m["type"].(string)
	switch t {
	case "take_3_different":
		gemsRaw, _ := m["gems"].([]interface{})
		gems := make([]gem.Gem, 0, len(gemsRaw))
		for _, raw := range gemsRaw {
			g, err := parseColor(raw)
			if err != nil {
				return nil, err
			}
			gems = append(gems, g)
		}
		ret, err := parseBagPairs(m["ret"])
		if err != nil {
			return nil, err
		}
		return action.Take3{Gems: gems, Ret: ret}, nil

	case "take_2_same":
		g, err := parseColor(m["gem"])
		if err != nil {
			return nil, err
		}
		count, err := toInt(m["count"])
		if err != nil {
			return nil, err
		}
		ret, err := parseBagPairs(m["ret"])
		if err != nil {
			return nil, err
		}
		return action.Take2{Gem: g, Count: count, Ret: ret}, nil

	case "buy_card":
		idx, err := parseIdx(m["idx"])
		if err != nil {
			return nil, err
		}
		payment, err := parseBagPairs(m["payment"])
		if err != nil {
			return nil, err
		}
		c, err := parseCardPtr(m["card"])
		if err != nil {
			return nil, err
		}
		return action.Buy{Idx: idx, Card: c, Payment: payment}, nil

	case "reserve_card":
		idx, err := parseIdx(m["idx"])
		if err != nil {
			return nil, err
		}
		c, err := parseCardPtr(m["card"])
		if err != nil {
			return nil, err
		}
		takeGold, _ := m["take_gold"].(bool)
		ret, err := parseColorPtr(m["ret"])
		if err != nil {
			return nil, err
		}
		return action.Reserve{Idx: idx, Card: c, TakeGold: takeGold, Ret: ret}, nil

	case "noop":
		return action.Noop{}, nil

	default:
		return nil, &apperrors.DeserializationError{Kind: "action", Reason: "unknown type " + t}
	}
}

// colorNames renders gs as []interface{} of color names rather than
// []string so SerializeAction's output already matches what
// DeserializeAction expects (a JSON-decoded array), with or without an
// actual JSON round trip in between.
func colorNames(gs []gem.Gem) []interface{} {
	out := make([]interface{}, len(gs))
	for i, g := range gs {
		out[i] = colorName(g)
	}
	return out
}

// Package replay captures and reconstructs a game's full trajectory:
// config, player names, seed, and action history are enough to replay a
// bit-identical run because all Engine randomness is seeded and sequential.
package replay

import (
	"github.com/google/uuid"

	"github.com/clouds-game/gems/internal/config"
	"github.com/clouds-game/gems/internal/engine"
	"github.com/clouds-game/gems/internal/state"
)

// Replay is the serializable record of a game: its Config, the player
// names, the serialized action history, and an opaque Metadata map (which
// conventionally carries "seed" and "replay_id").
type Replay struct {
	Config        config.Config            `json:"config"`
	PlayerNames   []string                 `json:"player_names"`
	ActionHistory []map[string]interface{} `json:"action_history"`
	Metadata      map[string]interface{}   `json:"metadata"`
}

// Export captures e's config, names, seed, and action history into a
// Replay document. Metadata always carries the seed and a freshly-stamped
// replay_id.
func Export(e *engine.Engine) (Replay, error) {
	history := make([]map[string]interface{}, 0, len(e.History()))
	for _, a := range e.History() {
		m, err := SerializeAction(a)
		if err != nil {
			return Replay{}, err
		}
		history = append(history, m)
	}
	return Replay{
		Config:        e.Config(),
		PlayerNames:   e.Names(),
		ActionHistory: history,
		Metadata: map[string]interface{}{
			"seed":      e.Seed(),
			"replay_id": uuid.NewString(),
			"game_id":   e.GameID(),
		},
	}, nil
}

func (r Replay) seed() int64 {
	switch s := r.Metadata["seed"].(type) {
	case int64:
		return s
	case float64:
		return int64(s)
	default:
		return 0
	}
}

// Apply reconstructs a fresh Engine with r's config/names/seed and replays
// every recorded action in order, returning the full state trajectory
// (state_before, state_after_1, ...) and the reconstituted Engine. Because
// shuffles are seeded and all randomness lives in the Engine, the
// trajectory is bit-identical to the run that produced r.
func (r Replay) Apply(catalog engine.Catalog) ([]state.GameState, *engine.Engine, error) {
	eng, err := engine.New(r.Config, catalog, r.seed(), r.PlayerNames)
	if err != nil {
		return nil, nil, err
	}

	trajectory := []state.GameState{eng.State()}
	for _, serialized := range r.ActionHistory {
		a, err := DeserializeAction(serialized)
		if err != nil {
			return nil, nil, err
		}
		next, err := eng.Step(a)
		if err != nil {
			return nil, nil, err
		}
		trajectory = append(trajectory, next)
	}
	return trajectory, eng, nil
}

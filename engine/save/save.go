// Package save implements JSON serialization and deserialization of session checkpoints.
package save

import (
	"encoding/json"
	"fmt"

	"github.com/nathoo/ecohero/engine"
	"github.com/nathoo/ecohero/engine/actor"
	"github.com/nathoo/ecohero/engine/dice"
	"github.com/nathoo/ecohero/engine/errs"
	"github.com/nathoo/ecohero/types"
)

// AdversaryState is the saved state of one remaining adversary.
type AdversaryState struct {
	ID     string `json:"id"`
	Health int    `json:"health"`
}

// SaveData is the JSON-serializable checkpoint format.
type SaveData struct {
	Version     string           `json:"version"`
	Game        string           `json:"game"`
	SessionID   string           `json:"session_id"`
	Player      types.Stats      `json:"player"`
	Roster      []AdversaryState `json:"roster"`
	Seeded      bool             `json:"seeded"`
	RNGSeed     int64            `json:"rng_seed"`
	RNGPosition int64            `json:"rng_position"`
}

// Snapshot captures the session between battles.
func Snapshot(s *engine.Session) (*SaveData, error) {
	if s.InBattle() {
		return nil, errs.InvalidAction("cannot checkpoint during battle")
	}
	sd := &SaveData{
		Version:   s.Defs.Game.Version,
		Game:      s.Defs.Game.Title,
		SessionID: s.ID,
		Player:    s.Stats(),
	}
	for _, a := range s.Roster() {
		sd.Roster = append(sd.Roster, AdversaryState{ID: a.ID(), Health: a.Health()})
	}
	if rng := s.RNG(); rng != nil {
		sd.Seeded = true
		sd.RNGSeed = rng.Seed()
		sd.RNGPosition = rng.Position()
	}
	return sd, nil
}

// Save serializes a session checkpoint to JSON bytes.
func Save(s *engine.Session) ([]byte, error) {
	sd, err := Snapshot(s)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(sd, "", "  ")
}

// Load deserializes JSON bytes into SaveData.
func Load(data []byte) (*SaveData, error) {
	var sd SaveData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, fmt.Errorf("decoding checkpoint: %w", err)
	}
	// Ensure maps are never nil after load.
	if sd.Player.Inventory == nil {
		sd.Player.Inventory = map[types.ItemKind]int{}
	}
	if sd.Roster == nil {
		sd.Roster = []AdversaryState{}
	}
	return &sd, nil
}

// Apply restores a checkpoint onto a session built from the same definitions.
func Apply(s *engine.Session, sd *SaveData) error {
	roster := make([]*actor.Adversary, 0, len(sd.Roster))
	for _, as := range sd.Roster {
		def, ok := s.Defs.AdversaryByID(as.ID)
		if !ok {
			return errs.New(errs.CodeInvalidContent, "checkpoint names unknown adversary %q", as.ID)
		}
		a := actor.NewAdversary(def)
		a.SetHealth(as.Health)
		roster = append(roster, a)
	}

	var rng *dice.RNG
	if sd.Seeded {
		rng = dice.RestoreRNG(sd.RNGSeed, sd.RNGPosition)
	}
	return s.Restore(actor.RestorePlayer(sd.Player, s.Defs.Catalog), roster, rng)
}

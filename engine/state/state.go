// Package state holds the immutable game definitions the session is built from.
package state

import (
	"fmt"

	"github.com/nathoo/ecohero/engine/actor"
	"github.com/nathoo/ecohero/engine/shop"
	"github.com/nathoo/ecohero/types"
)

// Defs holds the immutable game definitions loaded from content.
type Defs struct {
	Game    types.GameDef
	Player  types.PlayerDef
	Roster  []types.AdversaryDef // fight order as listed
	Catalog shop.Catalog
}

// AdversaryByID returns the roster definition with the given ID.
func (d *Defs) AdversaryByID(id string) (types.AdversaryDef, bool) {
	for _, a := range d.Roster {
		if a.ID == id {
			return a, true
		}
	}
	return types.AdversaryDef{}, false
}

// Validate checks the definitions for consistency and returns every problem found.
func (d *Defs) Validate() []string {
	var problems []string

	if d.Game.Title == "" {
		problems = append(problems, "Game.title is required")
	}
	if len(d.Roster) == 0 {
		problems = append(problems, "at least one Adversary is required")
	}

	seen := map[string]bool{}
	for _, a := range d.Roster {
		if a.ID == "" {
			problems = append(problems, fmt.Sprintf("adversary %q has no id", a.Name))
		} else if seen[a.ID] {
			problems = append(problems, fmt.Sprintf("adversary %q defined more than once", a.ID))
		}
		seen[a.ID] = true
		if a.Name == "" {
			problems = append(problems, fmt.Sprintf("adversary %q has no name", a.ID))
		}
		if a.Health <= 0 {
			problems = append(problems, fmt.Sprintf("adversary %q needs positive health", a.ID))
		}
		if a.AttackPower < 1 {
			problems = append(problems, fmt.Sprintf("adversary %q needs attack of at least 1", a.ID))
		}
		if a.Reward < 0 {
			problems = append(problems, fmt.Sprintf("adversary %q has negative reward", a.ID))
		}
	}

	problems = append(problems, d.Catalog.Validate()...)

	if d.Player.MaxHealth < 0 || d.Player.Health < 0 || d.Player.AttackPower < 0 || d.Player.Currency < 0 {
		problems = append(problems, "Player values must not be negative")
	}
	if d.Player.MaxHealth > 0 && d.Player.Health > d.Player.MaxHealth {
		problems = append(problems, fmt.Sprintf("Player health %d exceeds max_health %d", d.Player.Health, d.Player.MaxHealth))
	}
	for kind, n := range d.Player.Inventory {
		if n < 0 {
			problems = append(problems, fmt.Sprintf("Player inventory %q has negative count", kind))
		}
		if _, ok := d.Catalog.Lookup(kind); !ok {
			problems = append(problems, fmt.Sprintf("Player inventory item %q is not in the catalog", kind))
		}
	}

	return problems
}

// NewPlayer creates a player with the configured starting loadout.
func (d *Defs) NewPlayer(name string) *actor.Player {
	return actor.NewPlayer(name, d.Player, d.Catalog)
}

// NewAdversaryRoster instantiates every roster adversary in order.
func (d *Defs) NewAdversaryRoster() []*actor.Adversary {
	roster := make([]*actor.Adversary, 0, len(d.Roster))
	for _, def := range d.Roster {
		roster = append(roster, actor.NewAdversary(def))
	}
	return roster
}

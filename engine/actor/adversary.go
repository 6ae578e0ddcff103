package actor

import "github.com/nathoo/ecohero/types"

// Adversary is a roster enemy. Its health never rises above its starting value.
type Adversary struct {
	Combatant
	id          string
	reward      int
	description string
}

// NewAdversary creates an adversary from its definition.
func NewAdversary(def types.AdversaryDef) *Adversary {
	reward := def.Reward
	if reward < 0 {
		reward = 0
	}
	id := def.ID
	if id == "" {
		id = def.Name
	}
	return &Adversary{
		Combatant:   NewCombatant(def.Name, def.Health, def.AttackPower),
		id:          id,
		reward:      reward,
		description: def.Description,
	}
}

// ID returns the content identifier.
func (a *Adversary) ID() string { return a.id }

// Reward returns the currency granted on defeat.
func (a *Adversary) Reward() int { return a.reward }

// Description returns the flavor text.
func (a *Adversary) Description() string { return a.description }

// View returns a read-only snapshot at the given 1-based roster position.
func (a *Adversary) View(index int) types.AdversaryView {
	return types.AdversaryView{
		Index:       index,
		ID:          a.id,
		Name:        a.name,
		Health:      a.health,
		AttackPower: a.attackPower,
		Reward:      a.reward,
		Description: a.description,
	}
}

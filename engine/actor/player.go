package actor

import (
	"maps"
	"slices"

	"github.com/nathoo/ecohero/engine/errs"
	"github.com/nathoo/ecohero/engine/shop"
	"github.com/nathoo/ecohero/types"
)

// Starting values used when content leaves them unset.
const (
	DefaultMaxHealth   = 100
	DefaultAttackPower = 20
)

// DefaultPlayerDef returns the stock starting loadout.
func DefaultPlayerDef() types.PlayerDef {
	return types.PlayerDef{
		Health:      DefaultMaxHealth,
		MaxHealth:   DefaultMaxHealth,
		AttackPower: DefaultAttackPower,
		Inventory: map[types.ItemKind]int{
			types.HealthPotion: 2,
			types.DamagePotion: 1,
			types.Sword:        0,
			types.SuperSword:   0,
		},
	}
}

// Player is the user-controlled combatant with a wallet, inventory and record.
type Player struct {
	Combatant
	currency  int
	inventory map[types.ItemKind]int
	catalog   shop.Catalog
	wins      int
	losses    int
}

// NewPlayer creates a player from a starting definition. Consumable effects
// are looked up in catalog when items are used.
func NewPlayer(name string, def types.PlayerDef, catalog shop.Catalog) *Player {
	maxHealth := def.MaxHealth
	if maxHealth <= 0 {
		maxHealth = DefaultMaxHealth
	}
	health := def.Health
	if health <= 0 || health > maxHealth {
		health = maxHealth
	}
	attack := def.AttackPower
	if attack <= 0 {
		attack = DefaultAttackPower
	}
	c := NewCombatant(name, health, attack)
	c.maxHealth = maxHealth

	inv := make(map[types.ItemKind]int, len(def.Inventory))
	for k, n := range def.Inventory {
		if n < 0 {
			n = 0
		}
		inv[k] = n
	}
	currency := def.Currency
	if currency < 0 {
		currency = 0
	}

	return &Player{
		Combatant: c,
		currency:  currency,
		inventory: inv,
		catalog:   catalog,
	}
}

// RestorePlayer rebuilds a player from a stats snapshot.
func RestorePlayer(s types.Stats, catalog shop.Catalog) *Player {
	p := NewPlayer(s.Name, types.PlayerDef{
		Health:      s.MaxHealth,
		MaxHealth:   s.MaxHealth,
		AttackPower: s.AttackPower,
		Currency:    s.Currency,
		Inventory:   s.Inventory,
	}, catalog)
	p.SetHealth(s.Health)
	p.wins = s.Wins
	p.losses = s.Losses
	return p
}

// Currency returns the current balance.
func (p *Player) Currency() int { return p.currency }

// Count returns how many of an item the player holds.
func (p *Player) Count(kind types.ItemKind) int { return p.inventory[kind] }

// Wins returns the number of adversaries defeated.
func (p *Player) Wins() int { return p.wins }

// Losses returns the number of battles lost.
func (p *Player) Losses() int { return p.losses }

// Inventory returns a copy of the inventory.
func (p *Player) Inventory() map[types.ItemKind]int {
	return maps.Clone(p.inventory)
}

// InventoryKinds returns held item kinds in sorted order.
func (p *Player) InventoryKinds() []types.ItemKind {
	return slices.Sorted(maps.Keys(p.inventory))
}

// Heal restores health up to the ceiling and returns the amount restored.
func (p *Player) Heal(amount int) int {
	return p.heal(amount)
}

// AddCurrency credits the wallet and returns a reward record with the new total.
func (p *Player) AddCurrency(amount int) (types.Event, error) {
	if amount < 0 {
		return types.Event{}, errs.InvalidAction("cannot add negative currency %d", amount)
	}
	p.currency += amount
	return types.Event{
		Kind:         types.EventReward,
		Actor:        p.name,
		Amount:       amount,
		Currency:     p.currency,
		PlayerHealth: p.health,
	}, nil
}

// Purchase buys one unit of entry. Equipment effects apply immediately and stack.
// On failure nothing changes.
func (p *Player) Purchase(entry types.CatalogEntry) error {
	if entry.Cost < 0 {
		return errs.InvalidAction("item %s has negative cost", entry.Kind)
	}
	if p.currency < entry.Cost {
		return errs.InsufficientFunds(string(entry.Kind), entry.Cost, p.currency)
	}
	p.currency -= entry.Cost
	p.inventory[entry.Kind]++
	if entry.Effect.Kind == types.EffectAttackBoost {
		p.attackPower += entry.Effect.Amount
	}
	return nil
}

// Consume uses one unit of a consumable and returns the effect to apply.
// On failure nothing changes.
func (p *Player) Consume(kind types.ItemKind) (types.Effect, error) {
	entry, ok := p.catalog.Lookup(kind)
	if !ok || !entry.Effect.Consumable() {
		return types.Effect{}, errs.InvalidAction("%s cannot be used in battle", kind)
	}
	if p.inventory[kind] <= 0 {
		return types.Effect{}, errs.OutOfStock(string(kind))
	}
	p.inventory[kind]--
	return entry.Effect, nil
}

// RecordWin increments the win counter.
func (p *Player) RecordWin() { p.wins++ }

// RecordLoss increments the loss counter.
func (p *Player) RecordLoss() { p.losses++ }

// Stats returns a snapshot of the player's observable state.
func (p *Player) Stats() types.Stats {
	return types.Stats{
		Name:        p.name,
		Health:      p.health,
		MaxHealth:   p.maxHealth,
		AttackPower: p.attackPower,
		Currency:    p.currency,
		Inventory:   p.Inventory(),
		Wins:        p.wins,
		Losses:      p.losses,
	}
}

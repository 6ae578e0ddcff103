// Package types defines the shared data structures for the ecohero engine.
// This package contains only type definitions and their string forms, no game logic.
package types

// ItemKind identifies a shop item or inventory slot, e.g. "health_potion".
type ItemKind string

// Well-known item kinds from the default content pack. Content may define more.
const (
	HealthPotion ItemKind = "health_potion"
	DamagePotion ItemKind = "damage_potion"
	Sword        ItemKind = "sword"
	SuperSword   ItemKind = "super_sword"
)

// EffectKind is the behavior bound to a catalog entry.
type EffectKind string

const (
	EffectHeal        EffectKind = "heal"         // consumable: restore player health
	EffectDamage      EffectKind = "damage"       // consumable: fixed damage to the adversary
	EffectAttackBoost EffectKind = "attack_boost" // equipment: permanent attack power delta
)

// Effect is a single atomic state mutation instruction.
type Effect struct {
	Kind   EffectKind
	Amount int
}

// Consumable reports whether the effect is applied on use rather than on purchase.
func (e Effect) Consumable() bool {
	return e.Kind == EffectHeal || e.Kind == EffectDamage
}

// CatalogEntry is a purchasable shop item.
type CatalogEntry struct {
	Kind        ItemKind
	Name        string
	Category    string // "Potions", "Weapons"
	Cost        int
	Effect      Effect
	Description string
}

// AdversaryDef is the static definition of a roster adversary.
type AdversaryDef struct {
	ID          string
	Name        string
	Health      int
	AttackPower int
	Reward      int
	Description string
}

// PlayerDef holds the starting values for a new player.
type PlayerDef struct {
	Health      int
	MaxHealth   int
	AttackPower int
	Currency    int
	Inventory   map[ItemKind]int
}

// GameDef holds game metadata from content.
type GameDef struct {
	Title   string
	Author  string
	Version string
	Intro   string
	Outro   string
}

// Action is a player's choice for one battle turn.
type Action int

const (
	ActionNone Action = iota
	ActionAttack
	ActionDefend
	ActionUseHealthPotion
	ActionUseDamagePotion
)

func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionDefend:
		return "defend"
	case ActionUseHealthPotion:
		return "use_health_potion"
	case ActionUseDamagePotion:
		return "use_damage_potion"
	default:
		return "none"
	}
}

// EventKind classifies a log record.
type EventKind string

const (
	EventBattleStarted     EventKind = "battle_started"
	EventAttack            EventKind = "attack"
	EventDefend            EventKind = "defend"
	EventHeal              EventKind = "heal"
	EventPotionDamage      EventKind = "potion_damage"
	EventOutOfStock        EventKind = "out_of_stock"
	EventAdversaryDefeated EventKind = "adversary_defeated"
	EventReward            EventKind = "reward"
	EventPlayerDefeated    EventKind = "player_defeated"
	EventPurchase          EventKind = "purchase"
	EventAttackBoost       EventKind = "attack_boost"
)

// Event is one structured record in the battle or shop log.
// Health and currency fields hold the values after the event was applied.
type Event struct {
	Seq             int
	Round           int
	Actor           string // name of the acting combatant
	Target          string // name of the affected combatant, if any
	Kind            EventKind
	Amount          int
	Item            ItemKind
	PlayerHealth    int
	AdversaryHealth int
	Currency        int
	Detail          string
}

// Outcome is the battle state. Ongoing is the only non-terminal value.
type Outcome int

const (
	Ongoing Outcome = iota
	PlayerWon
	PlayerLost
)

func (o Outcome) String() string {
	switch o {
	case PlayerWon:
		return "PLAYER_WON"
	case PlayerLost:
		return "PLAYER_LOST"
	default:
		return "ONGOING"
	}
}

// AdversaryView is a read-only snapshot of a living roster adversary.
type AdversaryView struct {
	Index       int // 1-based position in the remaining roster
	ID          string
	Name        string
	Health      int
	AttackPower int
	Reward      int
	Description string
}

// Stats is the player's observable state.
type Stats struct {
	Name        string           `json:"name"`
	Health      int              `json:"health"`
	MaxHealth   int              `json:"max_health"`
	AttackPower int              `json:"attack_power"`
	Currency    int              `json:"currency"`
	Inventory   map[ItemKind]int `json:"inventory"`
	Wins        int              `json:"wins"`
	Losses      int              `json:"losses"`
}

// BattleReport summarizes a battle run to completion.
type BattleReport struct {
	Adversary string
	Outcome   Outcome
	Rounds    int
	Events    []Event
}

// Intent is the parsed representation of a shell command.
type Intent struct {
	Verb   string
	Object string // optional
}

// Package actor models the combatants: a shared Combatant core embedded by
// value in the Player and Adversary roles.
package actor

import "github.com/nathoo/ecohero/engine/dice"

// Fighter is the capability set the turn resolver works against.
type Fighter interface {
	Name() string
	Health() int
	MaxHealth() int
	AttackPower() int
	IsAlive() bool
	RollDamage(r dice.Roller) int
	TakeDamage(amount int) int
}

// Combatant holds the attributes shared by every fighter.
type Combatant struct {
	name        string
	health      int
	maxHealth   int
	attackPower int
}

// NewCombatant creates a combatant whose ceiling is its starting health.
func NewCombatant(name string, health, attackPower int) Combatant {
	if attackPower < 1 {
		attackPower = 1
	}
	if health < 0 {
		health = 0
	}
	return Combatant{name: name, health: health, maxHealth: health, attackPower: attackPower}
}

// Name returns the combatant's label.
func (c *Combatant) Name() string { return c.name }

// Health returns current health.
func (c *Combatant) Health() int { return c.health }

// MaxHealth returns the health ceiling.
func (c *Combatant) MaxHealth() int { return c.maxHealth }

// AttackPower returns the current attack power.
func (c *Combatant) AttackPower() int { return c.attackPower }

// IsAlive reports whether health is above zero.
func (c *Combatant) IsAlive() bool { return c.health > 0 }

// RollDamage draws a uniform damage value in [attack/2, attack].
func (c *Combatant) RollDamage(r dice.Roller) int {
	return r.Between(c.attackPower/2, c.attackPower)
}

// TakeDamage subtracts damage, clamping at zero. Returns remaining health.
func (c *Combatant) TakeDamage(amount int) int {
	if amount < 0 {
		amount = 0
	}
	c.health -= amount
	if c.health < 0 {
		c.health = 0
	}
	return c.health
}

// heal raises health up to the ceiling and returns the amount restored.
// The dead stay dead.
func (c *Combatant) heal(amount int) int {
	if !c.IsAlive() || amount <= 0 {
		return 0
	}
	before := c.health
	c.health += amount
	if c.health > c.maxHealth {
		c.health = c.maxHealth
	}
	return c.health - before
}

// SetHealth overwrites health, clamped to [0, max]. Used when rewinding to a checkpoint.
func (c *Combatant) SetHealth(health int) {
	switch {
	case health < 0:
		health = 0
	case health > c.maxHealth:
		health = c.maxHealth
	}
	c.health = health
}

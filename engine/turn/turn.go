// Package turn resolves single turns: one player action or one adversary attack.
package turn

import (
	"github.com/nathoo/ecohero/engine/actor"
	"github.com/nathoo/ecohero/engine/dice"
	"github.com/nathoo/ecohero/engine/effects"
	"github.com/nathoo/ecohero/engine/errs"
	"github.com/nathoo/ecohero/types"
)

// DefendRecovery is the health a Defend action restores.
const DefendRecovery = 10

// Outcome is the result of one resolved turn.
type Outcome struct {
	Events []types.Event
	// AdversaryDefeated is set when this turn brought the adversary to zero.
	AdversaryDefeated bool
	// PlayerDefeated is set when this turn brought the player to zero.
	PlayerDefeated bool
	// Err is a recoverable failure (e.g. out of stock). The turn is still spent.
	Err error
}

// Resolve applies one player action. An unrecognized action is rejected
// with an error before any state changes and does not spend the turn.
func Resolve(p *actor.Player, a *actor.Adversary, action types.Action, r dice.Roller) (Outcome, error) {
	if !p.IsAlive() || !a.IsAlive() {
		return Outcome{}, errs.New(errs.CodeBattleOver, "%s and %s are not both standing", p.Name(), a.Name())
	}

	var out Outcome
	switch action {
	case types.ActionAttack:
		dmg := p.RollDamage(r)
		a.TakeDamage(dmg)
		out.Events = append(out.Events, stamp(p, a, types.Event{
			Kind:   types.EventAttack,
			Actor:  p.Name(),
			Target: a.Name(),
			Amount: dmg,
		}))

	case types.ActionDefend:
		restored := p.Heal(DefendRecovery)
		out.Events = append(out.Events, stamp(p, a, types.Event{
			Kind:   types.EventDefend,
			Actor:  p.Name(),
			Target: p.Name(),
			Amount: restored,
		}))

	case types.ActionUseHealthPotion:
		out = consume(p, a, types.HealthPotion)

	case types.ActionUseDamagePotion:
		out = consume(p, a, types.DamagePotion)

	default:
		return Outcome{}, errs.InvalidAction("unrecognized action %d", int(action))
	}

	if !a.IsAlive() {
		out.AdversaryDefeated = true
		out.Events = append(out.Events, Settle(p, a)...)
	}
	return out, nil
}

// consume uses one item. A failed consume records an out-of-stock event and
// carries the error on the outcome.
func consume(p *actor.Player, a *actor.Adversary, kind types.ItemKind) Outcome {
	eff, err := p.Consume(kind)
	if err != nil {
		return Outcome{
			Err: err,
			Events: []types.Event{stamp(p, a, types.Event{
				Kind:   types.EventOutOfStock,
				Actor:  p.Name(),
				Item:   kind,
				Detail: err.Error(),
			})},
		}
	}
	ev, err := effects.Apply(effects.Context{Player: p, Adversary: a, Item: kind}, eff)
	if err != nil {
		return Outcome{Err: err}
	}
	return Outcome{Events: []types.Event{ev}}
}

// Settle applies the defeat settlement: reward to the player's wallet and a win
// on the record. Callers invoke it exactly once, on the turn the adversary falls.
func Settle(p *actor.Player, a *actor.Adversary) []types.Event {
	p.RecordWin()
	defeated := stamp(p, a, types.Event{
		Kind:   types.EventAdversaryDefeated,
		Actor:  p.Name(),
		Target: a.Name(),
		Amount: a.Reward(),
	})
	reward, _ := p.AddCurrency(a.Reward()) // rewards are non-negative by construction
	reward.Target = a.Name()
	reward.AdversaryHealth = a.Health()
	return []types.Event{defeated, reward}
}

// AdversaryTurn resolves the adversary's attack on the player.
func AdversaryTurn(p *actor.Player, a *actor.Adversary, r dice.Roller) (Outcome, error) {
	if !p.IsAlive() || !a.IsAlive() {
		return Outcome{}, errs.New(errs.CodeBattleOver, "%s and %s are not both standing", p.Name(), a.Name())
	}
	dmg := a.RollDamage(r)
	p.TakeDamage(dmg)
	out := Outcome{Events: []types.Event{stamp(p, a, types.Event{
		Kind:   types.EventAttack,
		Actor:  a.Name(),
		Target: p.Name(),
		Amount: dmg,
	})}}
	if !p.IsAlive() {
		out.PlayerDefeated = true
		out.Events = append(out.Events, stamp(p, a, types.Event{
			Kind:   types.EventPlayerDefeated,
			Actor:  a.Name(),
			Target: p.Name(),
		}))
	}
	return out, nil
}

func stamp(p *actor.Player, a *actor.Adversary, ev types.Event) types.Event {
	ev.PlayerHealth = p.Health()
	ev.AdversaryHealth = a.Health()
	ev.Currency = p.Currency()
	return ev
}

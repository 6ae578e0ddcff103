// Package effects implements centralized state mutation for item effects.
// Every effect type is one atomic operation. No decision logic in effects.
package effects

import (
	"github.com/nathoo/ecohero/engine/actor"
	"github.com/nathoo/ecohero/engine/errs"
	"github.com/nathoo/ecohero/types"
)

// Context carries the combatants an effect may touch.
type Context struct {
	Player    *actor.Player
	Adversary *actor.Adversary // nil outside battle
	Item      types.ItemKind   // source item, for the event record
}

// Apply applies a consumable effect and returns the event describing it.
// Equipment effects are applied by Player.Purchase and are rejected here.
func Apply(ctx Context, eff types.Effect) (types.Event, error) {
	p := ctx.Player
	switch eff.Kind {
	case types.EffectHeal:
		restored := p.Heal(eff.Amount)
		return stamp(ctx, types.Event{
			Kind:   types.EventHeal,
			Actor:  p.Name(),
			Target: p.Name(),
			Amount: restored,
			Item:   ctx.Item,
		}), nil

	case types.EffectDamage:
		if ctx.Adversary == nil {
			return types.Event{}, errs.New(errs.CodeInvalidTarget, "%s needs an adversary", ctx.Item)
		}
		ctx.Adversary.TakeDamage(eff.Amount)
		return stamp(ctx, types.Event{
			Kind:   types.EventPotionDamage,
			Actor:  p.Name(),
			Target: ctx.Adversary.Name(),
			Amount: eff.Amount,
			Item:   ctx.Item,
		}), nil

	case types.EffectAttackBoost:
		return types.Event{}, errs.InvalidAction("%s takes effect when purchased", ctx.Item)

	default:
		return types.Event{}, errs.InvalidAction("unknown effect %q", eff.Kind)
	}
}

// stamp records the post-effect health and currency values on the event.
func stamp(ctx Context, ev types.Event) types.Event {
	ev.PlayerHealth = ctx.Player.Health()
	ev.Currency = ctx.Player.Currency()
	if ctx.Adversary != nil {
		ev.AdversaryHealth = ctx.Adversary.Health()
	}
	return ev
}

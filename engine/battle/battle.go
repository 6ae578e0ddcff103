// Package battle drives alternating turns between the player and one adversary
// until one side falls.
package battle

import (
	"github.com/nathoo/ecohero/engine/actor"
	"github.com/nathoo/ecohero/engine/dice"
	"github.com/nathoo/ecohero/engine/errs"
	"github.com/nathoo/ecohero/engine/events"
	"github.com/nathoo/ecohero/engine/turn"
	"github.com/nathoo/ecohero/types"
)

// Exchange is the result of one Step: the player's turn and, if the battle
// is still on, the adversary's reply.
type Exchange struct {
	Round   int
	Events  []types.Event
	Outcome types.Outcome
	// Err is a recoverable failure of the player's action (e.g. out of stock).
	// The turn was still spent.
	Err error
}

// Battle is the per-fight state machine. Ongoing is the only non-terminal state.
type Battle struct {
	player    *actor.Player
	adversary *actor.Adversary
	roller    dice.Roller
	log       *events.Log
	outcome   types.Outcome
	round     int
}

// New starts a battle. Both combatants must be alive.
func New(p *actor.Player, a *actor.Adversary, r dice.Roller, log *events.Log) (*Battle, error) {
	if p == nil || a == nil {
		return nil, errs.New(errs.CodeInvalidTarget, "battle needs a player and an adversary")
	}
	if !a.IsAlive() {
		return nil, errs.New(errs.CodeInvalidTarget, "%s is already defeated", a.Name())
	}
	if !p.IsAlive() {
		return nil, errs.New(errs.CodeSessionOver, "%s cannot fight", p.Name())
	}
	if log == nil {
		log = events.NewLog()
	}
	b := &Battle{player: p, adversary: a, roller: r, log: log, outcome: types.Ongoing}
	b.log.Append(types.Event{
		Kind:            types.EventBattleStarted,
		Actor:           a.Name(),
		Target:          p.Name(),
		Detail:          a.Description(),
		PlayerHealth:    p.Health(),
		AdversaryHealth: a.Health(),
		Currency:        p.Currency(),
	})
	return b, nil
}

// Step resolves one exchange. The player's action resolves completely before
// the adversary acts, and a defeated adversary never acts, so a player win
// takes priority without an explicit tie-break.
func (b *Battle) Step(action types.Action) (Exchange, error) {
	if b.outcome != types.Ongoing {
		return Exchange{}, errs.ErrBattleOver
	}

	playerTurn, err := turn.Resolve(b.player, b.adversary, action, b.roller)
	if err != nil {
		return Exchange{}, err
	}

	b.round++
	ex := Exchange{Round: b.round, Err: playerTurn.Err}
	ex.Events = b.record(playerTurn.Events)

	if playerTurn.AdversaryDefeated {
		b.outcome = types.PlayerWon
		ex.Outcome = b.outcome
		return ex, nil
	}

	adversaryTurn, err := turn.AdversaryTurn(b.player, b.adversary, b.roller)
	if err != nil {
		return ex, err
	}
	ex.Events = append(ex.Events, b.record(adversaryTurn.Events)...)
	if adversaryTurn.PlayerDefeated {
		b.player.RecordLoss()
		b.outcome = types.PlayerLost
	}
	ex.Outcome = b.outcome
	return ex, nil
}

func (b *Battle) record(evs []types.Event) []types.Event {
	for i := range evs {
		evs[i].Round = b.round
	}
	return b.log.AppendAll(evs)
}

// Outcome returns the current state.
func (b *Battle) Outcome() types.Outcome { return b.outcome }

// Done reports whether a terminal state was reached.
func (b *Battle) Done() bool { return b.outcome != types.Ongoing }

// Round returns the number of exchanges resolved.
func (b *Battle) Round() int { return b.round }

// Adversary returns the opponent.
func (b *Battle) Adversary() *actor.Adversary { return b.adversary }

// Log returns every event recorded so far.
func (b *Battle) Log() []types.Event { return b.log.Events() }

// Report summarizes the battle.
func (b *Battle) Report() types.BattleReport {
	return types.BattleReport{
		Adversary: b.adversary.Name(),
		Outcome:   b.outcome,
		Rounds:    b.round,
		Events:    b.log.Events(),
	}
}

// Package engine provides the Session that wires the player, the adversary
// roster, the shop and the battle state machine into one playable run.
package engine

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nathoo/ecohero/engine/actor"
	"github.com/nathoo/ecohero/engine/battle"
	"github.com/nathoo/ecohero/engine/dice"
	"github.com/nathoo/ecohero/engine/errs"
	"github.com/nathoo/ecohero/engine/events"
	"github.com/nathoo/ecohero/engine/state"
	"github.com/nathoo/ecohero/types"
)

// DefaultPlayerName is used when no name is supplied.
const DefaultPlayerName = "Hero"

// View is what a Chooser sees before picking the next action.
type View struct {
	Round     int
	Player    types.Stats
	Adversary types.AdversaryView
	Last      []types.Event // events of the previous exchange
	LastErr   error         // rejection of the previous choice, if any
}

// Chooser supplies player actions during Challenge. Returning an error
// abandons the loop; the battle stays active and can be continued with Resume.
type Chooser interface {
	Choose(v View) (types.Action, error)
}

// ChooserFunc adapts a function to Chooser.
type ChooserFunc func(v View) (types.Action, error)

// Choose calls f(v).
func (f ChooserFunc) Choose(v View) (types.Action, error) { return f(v) }

// Option configures a Session.
type Option func(*Session)

// WithRoller injects a damage roller. Sessions built this way cannot be
// checkpointed because the roller position is opaque.
func WithRoller(r dice.Roller) Option {
	return func(s *Session) {
		s.roller = r
		s.rng = nil
	}
}

// WithSeed seeds the session RNG.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = dice.NewRNG(seed)
		s.roller = s.rng
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithPlayerName names the player.
func WithPlayerName(name string) Option {
	return func(s *Session) {
		if name != "" {
			s.playerName = name
		}
	}
}

// WithObserver subscribes o to every event the session records.
func WithObserver(o events.Observer) Option {
	return func(s *Session) {
		s.observers = append(s.observers, o)
	}
}

// Session holds the game definitions and all mutable state of one run.
type Session struct {
	ID     string
	Defs   *state.Defs
	Player *actor.Player

	roster    []*actor.Adversary
	rng       *dice.RNG
	roller    dice.Roller
	active    *battle.Battle
	lost      bool
	observers []events.Observer
	shopLog   *events.Log
	logger    *slog.Logger

	playerName string
}

// New creates a session from definitions.
func New(defs *state.Defs, opts ...Option) *Session {
	s := &Session{
		ID:         uuid.NewString(),
		Defs:       defs,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		playerName: DefaultPlayerName,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.roller == nil {
		s.rng = dice.NewRNG(time.Now().UnixNano())
		s.roller = s.rng
	}
	s.logger = s.logger.With("session_id", s.ID)
	s.Player = defs.NewPlayer(s.playerName)
	s.roster = NewAdversaryRoster(defs)
	s.shopLog = events.NewLog(s.observers...)
	return s
}

// NewAdversaryRoster instantiates the fixed fight order from defs.
func NewAdversaryRoster(defs *state.Defs) []*actor.Adversary {
	return defs.NewAdversaryRoster()
}

// ListAdversaries returns the remaining adversaries in fight order, indexed from 1.
func (s *Session) ListAdversaries() []types.AdversaryView {
	views := make([]types.AdversaryView, 0, len(s.roster))
	for i, a := range s.roster {
		views = append(views, a.View(i+1))
	}
	return views
}

// Catalog returns the shop listing.
func (s *Session) Catalog() []types.CatalogEntry {
	return s.Defs.Catalog.Entries()
}

// Stats returns a snapshot of the player.
func (s *Session) Stats() types.Stats {
	return s.Player.Stats()
}

// InBattle reports whether a battle is in progress.
func (s *Session) InBattle() bool { return s.active != nil }

// Active returns the battle in progress, or nil.
func (s *Session) Active() *battle.Battle { return s.active }

// Victory reports whether every adversary was defeated.
func (s *Session) Victory() bool { return !s.lost && len(s.roster) == 0 }

// Lost reports whether the player fell.
func (s *Session) Lost() bool { return s.lost }

// Over reports whether the session has ended either way.
func (s *Session) Over() bool { return s.lost || len(s.roster) == 0 }

// Engage starts a battle against the adversary at the 1-based index.
func (s *Session) Engage(index int) (types.AdversaryView, error) {
	if s.Over() {
		return types.AdversaryView{}, s.reject(errs.ErrSessionOver)
	}
	if s.active != nil {
		return types.AdversaryView{}, s.reject(errs.InvalidAction("already fighting %s", s.active.Adversary().Name()))
	}
	if index < 1 || index > len(s.roster) {
		return types.AdversaryView{}, s.reject(errs.InvalidTarget(index, len(s.roster)))
	}

	a := s.roster[index-1]
	b, err := battle.New(s.Player, a, s.roller, events.NewLog(s.observers...))
	if err != nil {
		return types.AdversaryView{}, s.reject(err)
	}
	s.active = b
	s.logger.Info("battle started", "adversary", a.ID(), "adversary_health", a.Health(), "player_health", s.Player.Health())
	return a.View(index), nil
}

// Act plays one exchange of the active battle.
func (s *Session) Act(action types.Action) (battle.Exchange, error) {
	if s.active == nil {
		if s.Over() {
			return battle.Exchange{}, s.reject(errs.ErrSessionOver)
		}
		return battle.Exchange{}, s.reject(errs.InvalidAction("no battle in progress"))
	}

	ex, err := s.active.Step(action)
	if err != nil {
		return ex, s.reject(err)
	}
	if ex.Err != nil {
		s.logger.Debug("action failed", "action", action.String(), "error", ex.Err)
	}
	if s.active.Done() {
		s.conclude()
	}
	return ex, nil
}

// Challenge engages the adversary at index and plays the battle to its end.
func (s *Session) Challenge(index int, c Chooser) (types.BattleReport, error) {
	if _, err := s.Engage(index); err != nil {
		return types.BattleReport{}, err
	}
	return s.Resume(c)
}

// Resume plays the active battle to its end. An InvalidAction choice is
// reported back to the chooser and does not spend the turn.
func (s *Session) Resume(c Chooser) (types.BattleReport, error) {
	b := s.active
	if b == nil {
		return types.BattleReport{}, s.reject(errs.InvalidAction("no battle in progress"))
	}

	var view View
	for !b.Done() {
		view.Round = b.Round()
		view.Player = s.Player.Stats()
		view.Adversary = b.Adversary().View(s.indexOf(b.Adversary()))

		action, err := c.Choose(view)
		if err != nil {
			return b.Report(), err
		}
		ex, err := s.Act(action)
		if err != nil {
			if errors.Is(err, errs.ErrInvalidAction) {
				view.Last, view.LastErr = nil, err
				continue
			}
			return b.Report(), err
		}
		view.Last, view.LastErr = ex.Events, ex.Err
	}
	return b.Report(), nil
}

// VisitShop buys kinds in order and stops at the first failure. Events for
// the purchases that succeeded are returned either way.
func (s *Session) VisitShop(kinds ...types.ItemKind) ([]types.Event, error) {
	if s.Over() {
		return nil, s.reject(errs.ErrSessionOver)
	}
	if s.active != nil {
		return nil, s.reject(errs.InvalidAction("the shop is closed during battle"))
	}

	var out []types.Event
	for _, kind := range kinds {
		entry, ok := s.Defs.Catalog.Lookup(kind)
		if !ok {
			return out, s.reject(errs.InvalidAction("unknown item %q", kind))
		}
		before := s.Player.AttackPower()
		if err := s.Player.Purchase(entry); err != nil {
			return out, s.reject(err)
		}
		out = append(out, s.shopLog.Append(types.Event{
			Kind:         types.EventPurchase,
			Actor:        s.Player.Name(),
			Item:         kind,
			Amount:       entry.Cost,
			PlayerHealth: s.Player.Health(),
			Currency:     s.Player.Currency(),
		}))
		if gain := s.Player.AttackPower() - before; gain > 0 {
			out = append(out, s.shopLog.Append(types.Event{
				Kind:         types.EventAttackBoost,
				Actor:        s.Player.Name(),
				Item:         kind,
				Amount:       gain,
				PlayerHealth: s.Player.Health(),
				Currency:     s.Player.Currency(),
			}))
		}
		s.logger.Info("purchase", "item", string(kind), "cost", entry.Cost, "currency", s.Player.Currency())
	}
	return out, nil
}

// Roster returns the live remaining adversaries.
func (s *Session) Roster() []*actor.Adversary {
	out := make([]*actor.Adversary, len(s.roster))
	copy(out, s.roster)
	return out
}

// RNG returns the seeded generator, or nil when a custom roller was injected.
func (s *Session) RNG() *dice.RNG { return s.rng }

// Restore replaces the mutable state of the session. It is refused during a battle.
func (s *Session) Restore(p *actor.Player, roster []*actor.Adversary, rng *dice.RNG) error {
	if s.active != nil {
		return s.reject(errs.InvalidAction("cannot restore during battle"))
	}
	if p == nil {
		return errs.New(errs.CodeInvalidTarget, "restore needs a player")
	}
	s.Player = p
	s.roster = roster
	s.lost = !p.IsAlive()
	if rng != nil {
		s.rng = rng
		s.roller = rng
	}
	s.logger.Info("session restored", "adversaries", len(roster), "player_health", p.Health())
	return nil
}

func (s *Session) conclude() {
	b := s.active
	s.active = nil
	a := b.Adversary()

	switch b.Outcome() {
	case types.PlayerWon:
		for i, r := range s.roster {
			if r == a {
				s.roster = append(s.roster[:i:i], s.roster[i+1:]...)
				break
			}
		}
		s.logger.Info("battle won", "adversary", a.ID(), "rounds", b.Round(),
			"reward", a.Reward(), "currency", s.Player.Currency(), "remaining", len(s.roster))
		if len(s.roster) == 0 {
			s.logger.Info("all adversaries defeated", "wins", s.Player.Wins())
		}
	case types.PlayerLost:
		s.lost = true
		s.logger.Info("battle lost", "adversary", a.ID(), "rounds", b.Round())
	}
}

func (s *Session) indexOf(a *actor.Adversary) int {
	for i, r := range s.roster {
		if r == a {
			return i + 1
		}
	}
	return 0
}

func (s *Session) reject(err error) error {
	s.logger.Debug("rejected", "error", err)
	return err
}

// Package play turns typed commands into session calls and renders the
// results as narration. The cli and tui front ends share it.
package play

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nathoo/ecohero/engine"
	"github.com/nathoo/ecohero/engine/parser"
	"github.com/nathoo/ecohero/engine/resolve"
	"github.com/nathoo/ecohero/engine/save"
	"github.com/nathoo/ecohero/engine/state"
	"github.com/nathoo/ecohero/types"
)

// ActionMenu lists the battle choices.
const ActionMenu = "Choose your action (1. Attack, 2. Defend, 3. Use Health Potion, 4. Use Damage Potion)"

// Result is the output of one command.
type Result struct {
	Output []string
	Events []types.Event
	Err    error // rejected command or failed action, already narrated in Output
}

// Driver holds a session and its in-memory checkpoint.
type Driver struct {
	Session    *engine.Session
	Defs       *state.Defs
	checkpoint []byte
}

// New wraps a session and records a checkpoint of its starting state.
func New(s *engine.Session) *Driver {
	d := &Driver{Session: s, Defs: s.Defs}
	d.checkpoint, _ = save.Save(s)
	return d
}

// Intro returns the banner, the intro text and the roster.
func (d *Driver) Intro() []string {
	g := d.Defs.Game
	banner := g.Title
	if g.Version != "" {
		banner += " v" + g.Version
	}
	if g.Author != "" {
		banner += " by " + g.Author
	}
	lines := []string{banner, ""}
	if g.Intro != "" {
		lines = append(lines, g.Intro, "")
	}
	lines = append(lines, fmt.Sprintf("Welcome, %s!", d.Session.Player.Name()))
	lines = append(lines, d.rosterLines()...)
	lines = append(lines, "Type 'fight <number>' to begin, 'shop' to browse, or /help for commands.")
	return lines
}

// Step processes one player command and returns the result.
func (d *Driver) Step(input string) Result {
	s := d.Session

	intent := parser.Parse(input)
	if intent.Verb == "" {
		return Result{Output: []string{"What do you want to do?"}}
	}

	if intent.Verb == parser.VerbStats {
		return Result{Output: d.statsLines()}
	}

	if s.Over() {
		if s.Victory() {
			return Result{Output: []string{"Every threat has been defeated. Use /quit to exit."}}
		}
		return Result{Output: []string{"Game over. Use /rewind to return to your checkpoint or /quit to exit."}}
	}

	if s.InBattle() {
		return d.battleStep(intent)
	}

	switch intent.Verb {
	case parser.VerbList:
		return Result{Output: d.rosterLines()}
	case parser.VerbFight:
		return d.fight(intent.Object)
	case parser.VerbShop:
		return Result{Output: d.shopLines()}
	case parser.VerbBuy:
		return d.buy(intent.Object)
	}
	if parser.IsAction(intent.Verb) {
		return Result{Output: []string{"There is nothing to fight. Type 'fight <number>' to challenge an adversary."}}
	}
	return Result{Output: []string{"I don't understand that. Type /help for commands."}}
}

func (d *Driver) battleStep(intent types.Intent) Result {
	s := d.Session
	action, err := parser.Action(intent)
	if err != nil {
		return Result{Err: err, Output: []string{"You are in battle! " + ActionMenu + "."}}
	}

	b := s.Active()
	ex, err := s.Act(action)
	if err != nil {
		return Result{Err: err, Output: []string{errorLine(err)}}
	}

	res := Result{Events: ex.Events, Err: ex.Err}
	for _, ev := range ex.Events {
		res.Output = append(res.Output, Narrate(d.Defs.Catalog, ev))
	}

	switch ex.Outcome {
	case types.Ongoing:
		a := b.Adversary()
		res.Output = append(res.Output,
			fmt.Sprintf("%s's HP: %d | %s's HP: %d", s.Player.Name(), s.Player.Health(), a.Name(), a.Health()),
			ActionMenu)
	case types.PlayerWon:
		res.Output = append(res.Output, fmt.Sprintf("%s emerges victorious!", s.Player.Name()))
		if s.Victory() {
			res.Output = append(res.Output, "")
			if outro := d.Defs.Game.Outro; outro != "" {
				res.Output = append(res.Output, outro)
			}
			res.Output = append(res.Output, d.statsLines()...)
		}
	case types.PlayerLost:
		res.Output = append(res.Output,
			fmt.Sprintf("%s has been defeated in battle.", s.Player.Name()),
			"Game Over.")
	}
	return res
}

func (d *Driver) fight(target string) Result {
	s := d.Session
	if target == "" {
		return Result{Output: []string{"Fight whom? Type 'list' to see the remaining threats."}}
	}
	index, err := resolve.Adversary(s.ListAdversaries(), target)
	if err != nil {
		return Result{Err: err, Output: []string{errorLine(err)}}
	}
	view, err := s.Engage(index)
	if err != nil {
		return Result{Err: err, Output: []string{errorLine(err)}}
	}

	res := Result{Events: s.Active().Log()}
	for _, ev := range res.Events {
		res.Output = append(res.Output, Narrate(d.Defs.Catalog, ev))
	}
	if view.Description != "" {
		res.Output = append(res.Output, fmt.Sprintf("%s: %s", view.Name, view.Description))
	}
	res.Output = append(res.Output,
		fmt.Sprintf("%s's HP: %d | %s's HP: %d", s.Player.Name(), s.Player.Health(), view.Name, view.Health),
		ActionMenu)
	return res
}

func (d *Driver) buy(name string) Result {
	if name == "" {
		return Result{Output: []string{"Buy what? Type 'shop' to see what is for sale."}}
	}
	kind, err := resolve.Item(d.Session.Catalog(), name)
	if err != nil {
		return Result{Err: err, Output: []string{errorLine(err)}}
	}
	evs, err := d.Session.VisitShop(kind)
	res := Result{Events: evs, Err: err}
	for _, ev := range evs {
		res.Output = append(res.Output, Narrate(d.Defs.Catalog, ev))
	}
	if err != nil {
		res.Output = append(res.Output, errorLine(err))
	}
	return res
}

// Checkpoint records the current state in memory.
func (d *Driver) Checkpoint() ([]string, error) {
	data, err := save.Save(d.Session)
	if err != nil {
		return []string{fmt.Sprintf("Checkpoint failed: %v", err)}, err
	}
	d.checkpoint = data
	st := d.Session.Stats()
	return []string{fmt.Sprintf("Checkpoint saved (HP %d, dollars %d, %d threat(s) left).",
		st.Health, st.Currency, len(d.Session.ListAdversaries()))}, nil
}

// Rewind restores the last checkpoint.
func (d *Driver) Rewind() ([]string, error) {
	if d.checkpoint == nil {
		err := errors.New("no checkpoint yet")
		return []string{"Rewind failed: no checkpoint yet."}, err
	}
	sd, err := save.Load(d.checkpoint)
	if err == nil {
		err = save.Apply(d.Session, sd)
	}
	if err != nil {
		return []string{fmt.Sprintf("Rewind failed: %v", err)}, err
	}
	out := []string{"Rewound to your checkpoint."}
	return append(out, d.rosterLines()...), nil
}

// Help lists the game commands.
func Help() []string {
	return []string{
		"Game commands:",
		"  list (ls)             — Show the remaining threats",
		"  fight <n|name>        — Challenge a threat",
		"  shop                  — Browse the shop",
		"  buy <item>            — Buy one item",
		"  stats (i)             — Show your stats and inventory",
		"",
		"In battle:",
		"  1 / attack            — Attack",
		"  2 / defend            — Defend and recover",
		"  3 / heal              — Use a health potion",
		"  4 / bomb              — Use a damage potion",
	}
}

func (d *Driver) rosterLines() []string {
	views := d.Session.ListAdversaries()
	if len(views) == 0 {
		return []string{"No threats remain."}
	}
	lines := []string{"Threats remaining:"}
	for _, v := range views {
		lines = append(lines, fmt.Sprintf("  %d. %s (HP %d, attack %d, reward %d)", v.Index, v.Name, v.Health, v.AttackPower, v.Reward))
	}
	return lines
}

func (d *Driver) shopLines() []string {
	catalog := d.Defs.Catalog
	if catalog.Len() == 0 {
		return []string{"The shop is empty."}
	}
	lines := []string{fmt.Sprintf("Welcome to the shop! You have %d dollars.", d.Session.Player.Currency())}
	for _, cat := range catalog.Categories() {
		label := cat
		if label == "" {
			label = "Other"
		}
		lines = append(lines, label+":")
		for _, e := range catalog.InCategory(cat) {
			line := fmt.Sprintf("  %s — %d dollars", ItemName(catalog, e.Kind), e.Cost)
			if e.Description != "" {
				line += " (" + e.Description + ")"
			}
			lines = append(lines, line)
		}
	}
	lines = append(lines, "Type 'buy <item>' to purchase.")
	return lines
}

func (d *Driver) statsLines() []string {
	st := d.Session.Stats()
	lines := []string{
		fmt.Sprintf("%s's Stats:", st.Name),
		fmt.Sprintf("Health: %d/%d", st.Health, st.MaxHealth),
		fmt.Sprintf("Attack Power: %d", st.AttackPower),
		fmt.Sprintf("Dollars: %d", st.Currency),
		"Inventory:",
	}
	for _, kind := range d.Session.Player.InventoryKinds() {
		lines = append(lines, fmt.Sprintf("  - %s: %d", ItemName(d.Defs.Catalog, kind), st.Inventory[kind]))
	}
	lines = append(lines,
		fmt.Sprintf("Battles Won: %d", st.Wins),
		fmt.Sprintf("Battles Lost: %d", st.Losses))
	return lines
}

// StatusLine summarizes the session for a status bar.
func (d *Driver) StatusLine() (left, right string) {
	s := d.Session
	st := s.Stats()
	left = fmt.Sprintf(" %s HP %d/%d | ATK %d", st.Name, st.Health, st.MaxHealth, st.AttackPower)
	if b := s.Active(); b != nil {
		a := b.Adversary()
		left += fmt.Sprintf(" | vs %s HP %d", a.Name(), a.Health())
	}
	right = fmt.Sprintf("$%d | W%d L%d ", st.Currency, st.Wins, st.Losses)
	if s.Over() {
		right = strings.TrimSpace(right) + " | over "
	}
	return left, right
}

// State dumps the session internals for debugging.
func (d *Driver) State() []string {
	s := d.Session
	st := s.Stats()
	out := []string{
		fmt.Sprintf("Session: %s", s.ID),
		fmt.Sprintf("Player: %s HP %d/%d ATK %d $%d", st.Name, st.Health, st.MaxHealth, st.AttackPower, st.Currency),
		fmt.Sprintf("Inventory: %v", st.Inventory),
	}
	if b := s.Active(); b != nil {
		out = append(out, fmt.Sprintf("Battle: round %d vs %s", b.Round(), b.Adversary().ID()))
	}
	for _, a := range s.Roster() {
		out = append(out, fmt.Sprintf("Roster: %s HP %d/%d", a.ID(), a.Health(), a.MaxHealth()))
	}
	if rng := s.RNG(); rng != nil {
		out = append(out, fmt.Sprintf("RNG: seed %d position %d", rng.Seed(), rng.Position()))
	} else {
		out = append(out, "RNG: injected roller")
	}
	return out
}

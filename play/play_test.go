package play

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/ecohero/content"
	"github.com/nathoo/ecohero/engine"
	"github.com/nathoo/ecohero/engine/dice"
	"github.com/nathoo/ecohero/engine/errs"
	"github.com/nathoo/ecohero/engine/state"
	"github.com/nathoo/ecohero/types"
)

func testDefs(t *testing.T) *state.Defs {
	t.Helper()
	defs, err := content.Defaults()
	require.NoError(t, err)
	return defs
}

func newDriver(t *testing.T, defs *state.Defs, r dice.Roller) *Driver {
	t.Helper()
	return New(engine.New(defs, engine.WithRoller(r), engine.WithPlayerName("Rae")))
}

func joined(r Result) string { return strings.Join(r.Output, "\n") }

func TestIntro(t *testing.T) {
	d := newDriver(t, testDefs(t), dice.Max())
	out := strings.Join(d.Intro(), "\n")

	assert.Contains(t, out, "EcoHero v1.0")
	assert.Contains(t, out, "Welcome, Rae!")
	assert.Contains(t, out, "1. Smog Monster (HP 40, attack 12, reward 10)")
	assert.Contains(t, out, "4. Plastic Kraken")
}

func TestFightToVictory(t *testing.T) {
	d := newDriver(t, testDefs(t), dice.Max())

	res := d.Step("fight 1")
	require.NoError(t, res.Err)
	out := joined(res)
	assert.Contains(t, out, "A wild Smog Monster appears!")
	assert.Contains(t, out, "Smog Monster: A vile creature born from pollution in the air.")
	assert.Contains(t, out, ActionMenu)

	res = d.Step("attack")
	out = joined(res)
	assert.Contains(t, out, "Rae attacks Smog Monster and deals 20 damage!")
	assert.Contains(t, out, "Smog Monster attacks Rae and deals 12 damage!")
	assert.Contains(t, out, "Rae's HP: 88 | Smog Monster's HP: 20")

	res = d.Step("1")
	out = joined(res)
	assert.Contains(t, out, "Rae defeated Smog Monster!")
	assert.Contains(t, out, "Rae earned 10 dollars. Total dollars: 10")
	assert.Contains(t, out, "Rae emerges victorious!")
	assert.NotContains(t, out, "Smog Monster attacks")

	out = joined(d.Step("list"))
	assert.Contains(t, out, "1. Deforestation Giant")
	assert.NotContains(t, out, "Smog Monster")
}

func TestFightByName(t *testing.T) {
	d := newDriver(t, testDefs(t), dice.Max())
	out := joined(d.Step("fight kraken"))
	assert.Contains(t, out, "A wild Plastic Kraken appears!")
}

func TestFight_InvalidTarget(t *testing.T) {
	d := newDriver(t, testDefs(t), dice.Max())

	res := d.Step("fight 9")
	assert.ErrorIs(t, res.Err, errs.ErrInvalidTarget)
	assert.Contains(t, joined(res), "No adversary at position 9")

	res = d.Step("fight dragon")
	assert.ErrorIs(t, res.Err, errs.ErrInvalidTarget)
	assert.False(t, d.Session.InBattle())
}

func TestBattle_RejectsNonActions(t *testing.T) {
	d := newDriver(t, testDefs(t), dice.Max())
	d.Step("fight 1")

	res := d.Step("shop")
	assert.ErrorIs(t, res.Err, errs.ErrInvalidAction)
	assert.Contains(t, joined(res), "You are in battle!")
	assert.Equal(t, 0, d.Session.Active().Round(), "no turn spent")
}

func TestBattle_OutOfStockSpendsTurn(t *testing.T) {
	defs := testDefs(t)
	defs.Player.Inventory[types.DamagePotion] = 0
	d := newDriver(t, defs, dice.Max())
	d.Step("fight 1")

	res := d.Step("bomb")
	assert.ErrorIs(t, res.Err, errs.ErrOutOfStock)
	out := joined(res)
	assert.Contains(t, out, "Rae has no damage potion left!")
	assert.Contains(t, out, "Smog Monster attacks Rae")
}

func TestActionOutsideBattle(t *testing.T) {
	d := newDriver(t, testDefs(t), dice.Max())
	assert.Contains(t, joined(d.Step("attack")), "There is nothing to fight.")
}

func TestShopAndBuy(t *testing.T) {
	defs := testDefs(t)
	defs.Player.Currency = 60
	d := newDriver(t, defs, dice.Max())

	out := joined(d.Step("shop"))
	assert.Contains(t, out, "You have 60 dollars.")
	assert.Contains(t, out, "Potions:")
	assert.Contains(t, out, "Weapons:")
	assert.Contains(t, out, "Super Sword — 100 dollars")

	res := d.Step("buy sword")
	require.NoError(t, res.Err)
	out = joined(res)
	assert.Contains(t, out, "Rae bought a Sword. Remaining dollars: 10")
	assert.Contains(t, out, "Attack power increased by 5.")

	res = d.Step("buy health potion")
	assert.ErrorIs(t, res.Err, errs.ErrInsufficientFunds)
	assert.Contains(t, joined(res), "Not enough dollars")
	assert.Equal(t, 10, d.Session.Stats().Currency)
}

func TestBuy_Ambiguous(t *testing.T) {
	d := newDriver(t, testDefs(t), dice.Max())
	res := d.Step("buy potion")
	assert.Equal(t, "Which potion? (health_potion, damage_potion)", joined(res))
}

func TestStats(t *testing.T) {
	d := newDriver(t, testDefs(t), dice.Max())
	out := joined(d.Step("stats"))

	assert.Contains(t, out, "Rae's Stats:")
	assert.Contains(t, out, "Health: 100/100")
	assert.Contains(t, out, "Attack Power: 20")
	assert.Contains(t, out, "  - Health Potion: 2")
	assert.Contains(t, out, "Battles Won: 0")
}

func TestLossAndRewind(t *testing.T) {
	defs := testDefs(t)
	defs.Player.Health = 5
	d := newDriver(t, defs, dice.NewFixed(10, 12))

	d.Step("fight 1")
	out := joined(d.Step("attack"))
	assert.Contains(t, out, "Rae was defeated by Smog Monster.")
	assert.Contains(t, out, "Game Over.")

	assert.Contains(t, joined(d.Step("list")), "Use /rewind")

	lines, err := d.Rewind()
	require.NoError(t, err)
	assert.Contains(t, strings.Join(lines, "\n"), "Rewound")
	assert.False(t, d.Session.Over())
	assert.Equal(t, 5, d.Session.Stats().Health)
	assert.Equal(t, 0, d.Session.Stats().Losses)
}

func TestCheckpoint_RefusedInBattle(t *testing.T) {
	d := newDriver(t, testDefs(t), dice.Max())
	d.Step("fight 1")

	_, err := d.Checkpoint()
	assert.ErrorIs(t, err, errs.ErrInvalidAction)
}

func TestVictoryShowsOutro(t *testing.T) {
	defs := testDefs(t)
	defs.Roster = defs.Roster[:1]
	d := newDriver(t, defs, dice.Max())

	d.Step("fight 1")
	out := joined(d.Step("attack")) + joined(d.Step("attack"))
	assert.Contains(t, out, "Congratulations! You've defeated all the environmental threats!")
	assert.Contains(t, out, "Battles Won: 1")
	assert.True(t, d.Session.Victory())
	assert.Contains(t, joined(d.Step("fight 1")), "Every threat has been defeated.")
}

func TestNarrate(t *testing.T) {
	catalog := testDefs(t).Catalog
	tests := []struct {
		ev   types.Event
		want string
	}{
		{types.Event{Kind: types.EventDefend, Actor: "Rae", Amount: 10}, "Rae defends and regains 10 HP."},
		{types.Event{Kind: types.EventHeal, Actor: "Rae", Item: types.HealthPotion, Amount: 25}, "Rae uses a health potion and regains 25 HP."},
		{types.Event{Kind: types.EventPotionDamage, Actor: "Rae", Target: "Smog Monster", Item: types.DamagePotion, Amount: 20}, "Rae uses a damage potion and deals 20 damage to Smog Monster!"},
		{types.Event{Kind: types.EventPlayerDefeated, Actor: "Smog Monster", Target: "Rae"}, "Rae was defeated by Smog Monster."},
	}
	for _, tt := range tests {
		t.Run(string(tt.ev.Kind), func(t *testing.T) {
			assert.Equal(t, tt.want, Narrate(catalog, tt.ev))
		})
	}
}

func TestItemName_FallsBackToTitleCase(t *testing.T) {
	catalog := testDefs(t).Catalog
	assert.Equal(t, "Health Potion", ItemName(catalog, types.HealthPotion))
	assert.Equal(t, "Golden Shield", ItemName(catalog, "golden_shield"))
}

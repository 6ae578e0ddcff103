package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/ecohero/types"
)

func TestDefaults_Roster(t *testing.T) {
	defs, err := Defaults()
	require.NoError(t, err)

	assert.Equal(t, "EcoHero", defs.Game.Title)
	want := []types.AdversaryDef{
		{ID: "smog_monster", Name: "Smog Monster", Health: 40, AttackPower: 12, Reward: 10,
			Description: "A vile creature born from pollution in the air."},
		{ID: "deforestation_giant", Name: "Deforestation Giant", Health: 60, AttackPower: 15, Reward: 20,
			Description: "A giant that destroys forests and wildlife habitats."},
		{ID: "oil_spill_serpent", Name: "Oil Spill Serpent", Health: 70, AttackPower: 18, Reward: 30,
			Description: "A slithering serpent leaving toxic oil spills in its wake."},
		{ID: "plastic_kraken", Name: "Plastic Kraken", Health: 90, AttackPower: 20, Reward: 40,
			Description: "A massive sea creature composed entirely of discarded plastics."},
	}
	assert.Equal(t, want, defs.Roster)
}

func TestDefaults_Catalog(t *testing.T) {
	defs, err := Defaults()
	require.NoError(t, err)

	tests := []struct {
		kind     types.ItemKind
		cost     int
		category string
		effect   types.Effect
	}{
		{types.HealthPotion, 20, "Potions", types.Effect{Kind: types.EffectHeal, Amount: 25}},
		{types.DamagePotion, 30, "Potions", types.Effect{Kind: types.EffectDamage, Amount: 20}},
		{types.Sword, 50, "Weapons", types.Effect{Kind: types.EffectAttackBoost, Amount: 5}},
		{types.SuperSword, 100, "Weapons", types.Effect{Kind: types.EffectAttackBoost, Amount: 10}},
	}
	require.Equal(t, len(tests), defs.Catalog.Len())
	for i, tt := range tests {
		e := defs.Catalog.Entries()[i]
		assert.Equal(t, tt.kind, e.Kind)
		assert.Equal(t, tt.cost, e.Cost, "%s cost", tt.kind)
		assert.Equal(t, tt.category, e.Category, "%s category", tt.kind)
		assert.Equal(t, tt.effect, e.Effect, "%s effect", tt.kind)
	}
	assert.Equal(t, []string{"Potions", "Weapons"}, defs.Catalog.Categories())
}

func TestDefaults_Player(t *testing.T) {
	defs, err := Defaults()
	require.NoError(t, err)

	p := defs.NewPlayer("Rae")
	st := p.Stats()
	assert.Equal(t, 100, st.Health)
	assert.Equal(t, 100, st.MaxHealth)
	assert.Equal(t, 20, st.AttackPower)
	assert.Equal(t, 0, st.Currency)
	assert.Equal(t, map[types.ItemKind]int{
		types.HealthPotion: 2,
		types.DamagePotion: 1,
		types.Sword:        0,
		types.SuperSword:   0,
	}, st.Inventory)
}

func TestLoad_EmptyDirUsesDefaults(t *testing.T) {
	defs, err := Load("")
	require.NoError(t, err)
	assert.Len(t, defs.Roster, 4)
}

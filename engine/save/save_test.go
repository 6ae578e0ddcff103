package save

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/nathoo/ecohero/engine"
	"github.com/nathoo/ecohero/engine/actor"
	"github.com/nathoo/ecohero/engine/dice"
	"github.com/nathoo/ecohero/engine/errs"
	"github.com/nathoo/ecohero/engine/shop"
	"github.com/nathoo/ecohero/engine/state"
	"github.com/nathoo/ecohero/types"
)

func testDefs() *state.Defs {
	return &state.Defs{
		Game:   types.GameDef{Title: "Test Game", Version: "1.0"},
		Player: actor.DefaultPlayerDef(),
		Roster: []types.AdversaryDef{
			{ID: "smog_monster", Name: "Smog Monster", Health: 40, AttackPower: 12, Reward: 10},
			{ID: "deforestation_giant", Name: "Deforestation Giant", Health: 60, AttackPower: 15, Reward: 20},
		},
		Catalog: shop.New([]types.CatalogEntry{
			{Kind: types.HealthPotion, Category: "Potions", Cost: 20, Effect: types.Effect{Kind: types.EffectHeal, Amount: 25}},
			{Kind: types.DamagePotion, Category: "Potions", Cost: 30, Effect: types.Effect{Kind: types.EffectDamage, Amount: 20}},
		}),
	}
}

var attackAlways = engine.ChooserFunc(func(engine.View) (types.Action, error) {
	return types.ActionAttack, nil
})

func playOut(t *testing.T, s *engine.Session) types.Stats {
	t.Helper()
	for !s.Over() {
		if _, err := s.Challenge(1, attackAlways); err != nil {
			t.Fatalf("challenge: %v", err)
		}
	}
	return s.Stats()
}

func TestRoundTrip_ReplayMatches(t *testing.T) {
	defs := testDefs()
	s := engine.New(defs, engine.WithSeed(42), engine.WithPlayerName("Rae"))
	if _, err := s.Challenge(1, attackAlways); err != nil {
		t.Fatalf("first challenge: %v", err)
	}
	if s.Over() {
		t.Fatal("first battle cannot be lost from full health")
	}

	data, err := Save(s)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	want := playOut(t, s)

	sd, err := Load(data)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	s2 := engine.New(defs, engine.WithSeed(7))
	if err := Apply(s2, sd); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if s2.Stats().Name != "Rae" {
		t.Errorf("expected restored name Rae, got %q", s2.Stats().Name)
	}
	if len(s2.ListAdversaries()) != 1 {
		t.Fatalf("expected 1 remaining adversary, got %d", len(s2.ListAdversaries()))
	}

	got := playOut(t, s2)
	if got.Health != want.Health || got.Currency != want.Currency || got.Wins != want.Wins || got.Losses != want.Losses {
		t.Errorf("replay diverged: got %+v, want %+v", got, want)
	}
}

func TestRoundTrip_WoundedAdversary(t *testing.T) {
	defs := testDefs()
	s := engine.New(defs, engine.WithSeed(1))
	s.Roster()[0].SetHealth(13)

	data, err := Save(s)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	sd, err := Load(data)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	s2 := engine.New(defs, engine.WithSeed(1))
	if err := Apply(s2, sd); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if h := s2.ListAdversaries()[0].Health; h != 13 {
		t.Errorf("expected adversary health 13, got %d", h)
	}
}

func TestSave_ProducesValidJSON(t *testing.T) {
	s := engine.New(testDefs(), engine.WithSeed(9))

	data, err := Save(s)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !json.Valid(data) {
		t.Fatal("Save output is not valid JSON")
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	if raw["version"] != "1.0" {
		t.Errorf("expected version '1.0', got %v", raw["version"])
	}
	if raw["game"] != "Test Game" {
		t.Errorf("expected game 'Test Game', got %v", raw["game"])
	}
	if raw["rng_seed"] != float64(9) {
		t.Errorf("expected rng_seed 9, got %v", raw["rng_seed"])
	}
}

func TestSave_RefusedDuringBattle(t *testing.T) {
	s := engine.New(testDefs(), engine.WithRoller(dice.Max()))
	if _, err := s.Engage(1); err != nil {
		t.Fatal(err)
	}
	if _, err := Save(s); !errors.Is(err, errs.ErrInvalidAction) {
		t.Errorf("expected invalid_action, got %v", err)
	}
}

func TestSave_InjectedRollerIsNotSeeded(t *testing.T) {
	sd, err := Snapshot(engine.New(testDefs(), engine.WithRoller(dice.Max())))
	if err != nil {
		t.Fatal(err)
	}
	if sd.Seeded {
		t.Error("expected unseeded snapshot")
	}
}

func TestLoad_MissingOptionalFields(t *testing.T) {
	data := []byte(`{"version":"1.0","game":"Test","player":{"name":"Rae","health":50}}`)

	sd, err := Load(data)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if sd.Player.Inventory == nil {
		t.Error("expected non-nil inventory")
	}
	if sd.Roster == nil {
		t.Error("expected non-nil roster")
	}
}

func TestLoad_BadJSON(t *testing.T) {
	if _, err := Load([]byte("{nope")); err == nil {
		t.Error("expected decode error")
	}
}

func TestApply_UnknownAdversary(t *testing.T) {
	s := engine.New(testDefs(), engine.WithSeed(1))
	sd := &SaveData{
		Player: s.Stats(),
		Roster: []AdversaryState{{ID: "plastic_kraken", Health: 90}},
	}
	if err := Apply(s, sd); !errors.Is(err, errs.ErrInvalidContent) {
		t.Errorf("expected invalid_content, got %v", err)
	}
}

func TestApply_DeadPlayerEndsSession(t *testing.T) {
	s := engine.New(testDefs(), engine.WithSeed(1))
	sd, err := Snapshot(s)
	if err != nil {
		t.Fatal(err)
	}
	sd.Player.Health = 0
	if err := Apply(s, sd); err != nil {
		t.Fatal(err)
	}
	if !s.Lost() {
		t.Error("expected restored session to be lost")
	}
}


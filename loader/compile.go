// Package loader loads Lua game content into Go structs at compile time.
// The Lua VM is discarded after loading, so no Lua runs during play.
package loader

import (
	"fmt"
	"sort"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/ecohero/engine/actor"
	"github.com/nathoo/ecohero/engine/shop"
	"github.com/nathoo/ecohero/engine/state"
	"github.com/nathoo/ecohero/types"
)

// rawAdversary holds an adversary table before compilation.
type rawAdversary struct {
	id    string
	table *lua.LTable
}

// rawItem holds a shop item table before compilation.
type rawItem struct {
	id    string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getNumber returns a numeric field from a Lua table, or 0 if missing.
func getNumber(tbl *lua.LTable, key string) float64 {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return float64(n)
	}
	return 0
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	return int(getNumber(tbl, key))
}

// getIntDefault returns an int field, or def if the field is missing.
func getIntDefault(tbl *lua.LTable, key string, def int) int {
	if _, ok := tbl.RawGetString(key).(lua.LNumber); !ok {
		return def
	}
	return getInt(tbl, key)
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// compile converts all collected Lua data into a Defs struct.
func compile(coll *collector) (*state.Defs, error) {
	if coll.game == nil {
		return nil, fmt.Errorf("no Game{} definition found")
	}
	defs := &state.Defs{Game: compileGame(coll.game)}

	player, err := compilePlayer(coll.player)
	if err != nil {
		return nil, fmt.Errorf("compiling player: %w", err)
	}
	defs.Player = player

	for _, raw := range coll.adversaries {
		defs.Roster = append(defs.Roster, compileAdversary(raw))
	}

	entries := make([]types.CatalogEntry, 0, len(coll.items))
	for _, raw := range coll.items {
		entry, err := compileItem(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling item %s: %w", raw.id, err)
		}
		entries = append(entries, entry)
	}
	defs.Catalog = shop.New(entries)

	// The stock loadout only carries items this content actually sells.
	if coll.player == nil || getTable(coll.player, "inventory") == nil {
		for kind := range defs.Player.Inventory {
			if _, ok := defs.Catalog.Lookup(kind); !ok {
				delete(defs.Player.Inventory, kind)
			}
		}
	}

	return defs, nil
}

func compileGame(tbl *lua.LTable) types.GameDef {
	return types.GameDef{
		Title:   getString(tbl, "title"),
		Author:  getString(tbl, "author"),
		Version: getString(tbl, "version"),
		Intro:   getString(tbl, "intro"),
		Outro:   getString(tbl, "outro"),
	}
}

// compilePlayer compiles the starting loadout. Missing fields keep their defaults.
func compilePlayer(tbl *lua.LTable) (types.PlayerDef, error) {
	def := actor.DefaultPlayerDef()
	if tbl == nil {
		return def, nil
	}
	def.MaxHealth = getIntDefault(tbl, "max_health", def.MaxHealth)
	def.Health = getIntDefault(tbl, "health", def.MaxHealth)
	def.AttackPower = getIntDefault(tbl, "attack", def.AttackPower)
	def.Currency = getIntDefault(tbl, "currency", def.Currency)

	if inv := getTable(tbl, "inventory"); inv != nil {
		items, err := compileInventory(inv)
		if err != nil {
			return def, err
		}
		def.Inventory = items
	}
	return def, nil
}

func compileInventory(tbl *lua.LTable) (map[types.ItemKind]int, error) {
	items := map[types.ItemKind]int{}
	var bad error
	tbl.ForEach(func(k, v lua.LValue) {
		ks, ok := k.(lua.LString)
		if !ok {
			bad = fmt.Errorf("inventory keys must be item ids, got %s", k.Type())
			return
		}
		n, ok := v.(lua.LNumber)
		if !ok {
			bad = fmt.Errorf("inventory count for %q must be a number", string(ks))
			return
		}
		items[types.ItemKind(ks)] = int(n)
	})
	return items, bad
}

func compileAdversary(raw rawAdversary) types.AdversaryDef {
	tbl := raw.table
	return types.AdversaryDef{
		ID:          raw.id,
		Name:        getString(tbl, "name"),
		Health:      getInt(tbl, "health"),
		AttackPower: getInt(tbl, "attack"),
		Reward:      getInt(tbl, "reward"),
		Description: getString(tbl, "description"),
	}
}

func compileItem(raw rawItem) (types.CatalogEntry, error) {
	tbl := raw.table
	entry := types.CatalogEntry{
		Kind:        types.ItemKind(raw.id),
		Name:        getString(tbl, "name"),
		Category:    getString(tbl, "category"),
		Cost:        getInt(tbl, "cost"),
		Description: getString(tbl, "description"),
	}
	switch v := tbl.RawGetString("effect").(type) {
	case *lua.LTable:
		entry.Effect = compileEffect(v)
	case *lua.LNilType:
	default:
		return entry, fmt.Errorf("effect must be Heal(n), Damage(n) or AttackBoost(n), got %s", v.Type())
	}
	return entry, nil
}

func compileEffect(tbl *lua.LTable) types.Effect {
	return types.Effect{
		Kind:   types.EffectKind(getString(tbl, "type")),
		Amount: getInt(tbl, "amount"),
	}
}

// sortedLuaFiles returns .lua files in a directory, with game.lua first
// and the rest sorted alphabetically.
func sortedLuaFiles(files []string) []string {
	var gameFile string
	var others []string
	for _, f := range files {
		if f == "game.lua" {
			gameFile = f
		} else {
			others = append(others, f)
		}
	}
	sort.Strings(others)
	if gameFile != "" {
		return append([]string{gameFile}, others...)
	}
	return others
}

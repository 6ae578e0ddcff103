package loader

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/ecohero/types"
)

// registerAPI registers all Lua constructors and helpers as globals.
func registerAPI(L *lua.LState, coll *collector) {
	registerConstructors(L, coll)
	registerEffectHelpers(L)
}

func registerConstructors(L *lua.LState, coll *collector) {
	// Game { title = "...", ... }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		coll.game = L.CheckTable(1)
		return 0
	}))

	// Player { health = 100, attack = 20, inventory = { ... } }
	L.SetGlobal("Player", L.NewFunction(func(L *lua.LState) int {
		coll.player = L.CheckTable(1)
		return 0
	}))

	// Adversary "id" { ... } is curried; declaration order is fight order.
	L.SetGlobal("Adversary", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.adversaries = append(coll.adversaries, rawAdversary{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Item "id" { ... } is curried; declaration order is listing order.
	L.SetGlobal("Item", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.items = append(coll.items, rawItem{id: id, table: tbl})
			return 0
		}))
		return 1
	}))
}

func registerEffectHelpers(L *lua.LState) {
	effect := func(kind types.EffectKind) lua.LGFunction {
		return func(L *lua.LState) int {
			amount := L.CheckNumber(1)
			tbl := L.NewTable()
			tbl.RawSetString("type", lua.LString(kind))
			tbl.RawSetString("amount", amount)
			L.Push(tbl)
			return 1
		}
	}

	// Heal(25)
	L.SetGlobal("Heal", L.NewFunction(effect(types.EffectHeal)))
	// Damage(20)
	L.SetGlobal("Damage", L.NewFunction(effect(types.EffectDamage)))
	// AttackBoost(5)
	L.SetGlobal("AttackBoost", L.NewFunction(effect(types.EffectAttackBoost)))
}

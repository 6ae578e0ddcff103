package play

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nathoo/ecohero/engine/shop"
	"github.com/nathoo/ecohero/types"
)

var titler = cases.Title(language.English)

// ItemName returns the display name of an item kind.
func ItemName(catalog shop.Catalog, kind types.ItemKind) string {
	if e, ok := catalog.Lookup(kind); ok && e.Name != "" {
		return e.Name
	}
	return titler.String(strings.ReplaceAll(string(kind), "_", " "))
}

// Narrate renders one event as a player-facing line.
func Narrate(catalog shop.Catalog, ev types.Event) string {
	switch ev.Kind {
	case types.EventBattleStarted:
		return fmt.Sprintf("A wild %s appears!", ev.Actor)
	case types.EventAttack:
		return fmt.Sprintf("%s attacks %s and deals %d damage!", ev.Actor, ev.Target, ev.Amount)
	case types.EventDefend:
		return fmt.Sprintf("%s defends and regains %d HP.", ev.Actor, ev.Amount)
	case types.EventHeal:
		return fmt.Sprintf("%s uses a %s and regains %d HP.", ev.Actor, strings.ToLower(ItemName(catalog, ev.Item)), ev.Amount)
	case types.EventPotionDamage:
		return fmt.Sprintf("%s uses a %s and deals %d damage to %s!", ev.Actor, strings.ToLower(ItemName(catalog, ev.Item)), ev.Amount, ev.Target)
	case types.EventOutOfStock:
		return fmt.Sprintf("%s has no %s left!", ev.Actor, strings.ToLower(ItemName(catalog, ev.Item)))
	case types.EventAdversaryDefeated:
		return fmt.Sprintf("%s defeated %s!", ev.Actor, ev.Target)
	case types.EventReward:
		return fmt.Sprintf("%s earned %d dollars. Total dollars: %d", ev.Actor, ev.Amount, ev.Currency)
	case types.EventPlayerDefeated:
		return fmt.Sprintf("%s was defeated by %s.", ev.Target, ev.Actor)
	case types.EventPurchase:
		return fmt.Sprintf("%s bought a %s. Remaining dollars: %d", ev.Actor, ItemName(catalog, ev.Item), ev.Currency)
	case types.EventAttackBoost:
		return fmt.Sprintf("Attack power increased by %d.", ev.Amount)
	default:
		return fmt.Sprintf("%s: %s", ev.Kind, ev.Detail)
	}
}

// Trace renders an event for the debug trace.
func Trace(ev types.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[trace] #%d r%d %s", ev.Seq, ev.Round, ev.Kind)
	if ev.Item != "" {
		fmt.Fprintf(&b, " item=%s", ev.Item)
	}
	if ev.Amount != 0 {
		fmt.Fprintf(&b, " amount=%d", ev.Amount)
	}
	fmt.Fprintf(&b, " player_hp=%d adversary_hp=%d currency=%d", ev.PlayerHealth, ev.AdversaryHealth, ev.Currency)
	return b.String()
}

// errorLine turns a domain error into a sentence.
func errorLine(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	r := []rune(msg)
	r[0] = unicode.ToUpper(r[0])
	if !strings.HasSuffix(msg, ".") && !strings.HasSuffix(msg, "?") && !strings.HasSuffix(msg, ")") {
		return string(r) + "."
	}
	return string(r)
}

// Package parser converts command strings into Intent structs.
// Intentionally dumb: no NLP, just pattern matching.
package parser

import (
	"strings"

	"github.com/nathoo/ecohero/engine/errs"
	"github.com/nathoo/ecohero/types"
)

// Canonical verbs.
const (
	VerbList   = "list"
	VerbFight  = "fight"
	VerbShop   = "shop"
	VerbBuy    = "buy"
	VerbStats  = "stats"
	VerbAttack = "attack"
	VerbDefend = "defend"
	VerbHeal   = "heal"
	VerbBomb   = "bomb"
)

var verbAliases = map[string]string{
	// Roster
	"ls":       VerbList,
	"look":     VerbList,
	"roster":   VerbList,
	"monsters": VerbList,
	"enemies":  VerbList,

	// Challenge
	"challenge": VerbFight,
	"battle":    VerbFight,
	"engage":    VerbFight,
	"f":         VerbFight,

	// Shop
	"store":   VerbShop,
	"catalog": VerbShop,
	"market":  VerbShop,

	"purchase": VerbBuy,
	"b":        VerbBuy,

	// Status
	"status":    VerbStats,
	"st":        VerbStats,
	"inventory": VerbStats,
	"inv":       VerbStats,
	"i":         VerbStats,

	// Battle actions, also selectable by menu number.
	"1":      VerbAttack,
	"a":      VerbAttack,
	"hit":    VerbAttack,
	"strike": VerbAttack,
	"2":      VerbDefend,
	"d":      VerbDefend,
	"block":  VerbDefend,
	"guard":  VerbDefend,
	"3":      VerbHeal,
	"h":      VerbHeal,
	"drink":  VerbHeal,
	"quaff":  VerbHeal,
	"4":      VerbBomb,
	"damage": VerbBomb,
	"throw":  VerbBomb,
}

var actions = map[string]types.Action{
	VerbAttack: types.ActionAttack,
	VerbDefend: types.ActionDefend,
	VerbHeal:   types.ActionUseHealthPotion,
	VerbBomb:   types.ActionUseDamagePotion,
}

var articles = map[string]bool{
	"the": true, "a": true, "an": true,
}

// Parse converts a raw command string into an Intent.
func Parse(input string) types.Intent {
	input = strings.TrimSpace(input)
	if input == "" {
		return types.Intent{}
	}

	words := strings.Fields(strings.ToLower(input))

	// Handle multi-word verb phrases before general parsing.
	words = expandMultiWordVerbs(words)

	// Apply verb aliases.
	if alias, ok := verbAliases[words[0]]; ok {
		words[0] = alias
	}

	return types.Intent{
		Verb:   words[0],
		Object: strings.Join(stripArticles(words[1:]), " "),
	}
}

// Action maps a battle intent to its Action.
func Action(intent types.Intent) (types.Action, error) {
	if a, ok := actions[intent.Verb]; ok {
		return a, nil
	}
	if intent.Verb == "" {
		return types.ActionNone, errs.InvalidAction("choose an action")
	}
	return types.ActionNone, errs.InvalidAction("unknown action %q", intent.Verb)
}

// ParseAction parses input straight to a battle Action.
func ParseAction(input string) (types.Action, error) {
	return Action(Parse(input))
}

// IsAction reports whether the verb names a battle action.
func IsAction(verb string) bool {
	_, ok := actions[verb]
	return ok
}

// expandMultiWordVerbs handles "use health potion", "look around" etc.
func expandMultiWordVerbs(words []string) []string {
	if len(words) < 2 {
		return words
	}

	switch words[0] {
	case "use", "drink", "throw":
		rest := strings.Join(stripArticles(words[1:]), " ")
		switch rest {
		case "health potion", "health_potion", "potion", "hp":
			return []string{VerbHeal}
		case "damage potion", "damage_potion", "bomb", "dp":
			return []string{VerbBomb}
		}
	case "look":
		if words[1] == "around" {
			return []string{VerbList}
		}
	case "go":
		if words[1] == "shopping" || words[1] == "to" {
			return []string{VerbShop}
		}
	}

	return words
}

// stripArticles removes articles ("the", "a", "an") from the word list.
func stripArticles(words []string) []string {
	result := make([]string, 0, len(words))
	for _, w := range words {
		if !articles[w] {
			result = append(result, w)
		}
	}
	return result
}

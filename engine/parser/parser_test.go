package parser

import (
	"errors"
	"testing"

	"github.com/nathoo/ecohero/engine/errs"
	"github.com/nathoo/ecohero/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.Intent
	}{
		// Empty / whitespace
		{
			name:  "empty string",
			input: "",
			want:  types.Intent{},
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  types.Intent{},
		},

		// Session verbs
		{
			name:  "list",
			input: "list",
			want:  types.Intent{Verb: "list"},
		},
		{
			name:  "ls → list",
			input: "ls",
			want:  types.Intent{Verb: "list"},
		},
		{
			name:  "look around → list",
			input: "look around",
			want:  types.Intent{Verb: "list"},
		},
		{
			name:  "fight by index",
			input: "fight 2",
			want:  types.Intent{Verb: "fight", Object: "2"},
		},
		{
			name:  "challenge the smog monster → fight smog monster",
			input: "challenge the Smog Monster",
			want:  types.Intent{Verb: "fight", Object: "smog monster"},
		},
		{
			name:  "store → shop",
			input: "store",
			want:  types.Intent{Verb: "shop"},
		},
		{
			name:  "go shopping → shop",
			input: "go shopping",
			want:  types.Intent{Verb: "shop"},
		},
		{
			name:  "buy a sword",
			input: "buy a sword",
			want:  types.Intent{Verb: "buy", Object: "sword"},
		},
		{
			name:  "purchase health potion → buy",
			input: "purchase health potion",
			want:  types.Intent{Verb: "buy", Object: "health potion"},
		},
		{
			name:  "i → stats",
			input: "i",
			want:  types.Intent{Verb: "stats"},
		},

		// Battle actions
		{
			name:  "menu number 1",
			input: "1",
			want:  types.Intent{Verb: "attack"},
		},
		{
			name:  "menu number 4",
			input: "4",
			want:  types.Intent{Verb: "bomb"},
		},
		{
			name:  "block → defend",
			input: "block",
			want:  types.Intent{Verb: "defend"},
		},
		{
			name:  "use health potion → heal",
			input: "use health potion",
			want:  types.Intent{Verb: "heal"},
		},
		{
			name:  "use the damage_potion → bomb",
			input: "use the damage_potion",
			want:  types.Intent{Verb: "bomb"},
		},
		{
			name:  "throw bomb → bomb",
			input: "throw bomb",
			want:  types.Intent{Verb: "bomb"},
		},

		// Case insensitivity
		{
			name:  "ATTACK",
			input: "ATTACK",
			want:  types.Intent{Verb: "attack"},
		},

		// Unknown verb passes through
		{
			name:  "unknown verb",
			input: "dance",
			want:  types.Intent{Verb: "dance"},
		},
		{
			name:  "use unknown item passes through",
			input: "use shield",
			want:  types.Intent{Verb: "use", Object: "shield"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		input string
		want  types.Action
	}{
		{"attack", types.ActionAttack},
		{"1", types.ActionAttack},
		{"defend", types.ActionDefend},
		{"2", types.ActionDefend},
		{"heal", types.ActionUseHealthPotion},
		{"3", types.ActionUseHealthPotion},
		{"use potion", types.ActionUseHealthPotion},
		{"bomb", types.ActionUseDamagePotion},
		{"4", types.ActionUseDamagePotion},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAction(tt.input)
			if err != nil {
				t.Fatalf("ParseAction(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAction(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAction_Invalid(t *testing.T) {
	for _, input := range []string{"", "5", "dance", "fight 1", "shop"} {
		_, err := ParseAction(input)
		if !errors.Is(err, errs.ErrInvalidAction) {
			t.Errorf("ParseAction(%q) error = %v, want invalid_action", input, err)
		}
	}
}

func TestIsAction(t *testing.T) {
	if !IsAction(VerbBomb) {
		t.Error("expected bomb to be an action")
	}
	if IsAction(VerbShop) {
		t.Error("expected shop not to be an action")
	}
}

package resolve

import (
	"errors"
	"testing"

	"github.com/nathoo/ecohero/engine/errs"
	"github.com/nathoo/ecohero/types"
)

func testRoster() []types.AdversaryView {
	return []types.AdversaryView{
		{Index: 1, ID: "smog_monster", Name: "Smog Monster"},
		{Index: 2, ID: "deforestation_giant", Name: "Deforestation Giant"},
		{Index: 3, ID: "oil_spill_serpent", Name: "Oil Spill Serpent"},
		{Index: 4, ID: "plastic_kraken", Name: "Plastic Kraken"},
		{Index: 5, ID: "smog", Name: "Smog"},
	}
}

func testCatalog() []types.CatalogEntry {
	return []types.CatalogEntry{
		{Kind: types.HealthPotion, Name: "Health Potion"},
		{Kind: types.DamagePotion, Name: "Damage Potion"},
		{Kind: types.Sword, Name: "Sword"},
		{Kind: types.SuperSword, Name: "Super Sword"},
	}
}

func TestAdversary(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"index", "2", 2},
		{"exact name", "Plastic Kraken", 4},
		{"lower case", "oil spill serpent", 3},
		{"single word", "kraken", 4},
		{"id", "deforestation_giant", 2},
		{"spaces for underscores", "deforestation giant", 2},
		{"exact wins over partial", "smog", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Adversary(testRoster(), tt.input)
			if err != nil {
				t.Fatalf("Adversary(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Adversary(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestAdversary_OutOfRange(t *testing.T) {
	for _, input := range []string{"0", "6", "-1"} {
		_, err := Adversary(testRoster(), input)
		if !errors.Is(err, errs.ErrInvalidTarget) {
			t.Errorf("Adversary(%q) error = %v, want invalid_target", input, err)
		}
	}
}

func TestAdversary_NotFound(t *testing.T) {
	_, err := Adversary(testRoster(), "dragon")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Name != "dragon" {
		t.Errorf("expected name 'dragon', got %q", nf.Name)
	}
	if !errors.Is(err, errs.ErrInvalidTarget) {
		t.Error("expected NotFoundError to match invalid_target")
	}
}

func TestAdversary_Ambiguous(t *testing.T) {
	roster := []types.AdversaryView{
		{Index: 1, ID: "smog_monster", Name: "Smog Monster"},
		{Index: 2, ID: "sea_monster", Name: "Sea Monster"},
	}
	_, err := Adversary(roster, "monster")
	var amb *AmbiguityError
	if !errors.As(err, &amb) {
		t.Fatalf("expected AmbiguityError, got %v", err)
	}
	if len(amb.Candidates) != 2 {
		t.Errorf("expected 2 candidates, got %v", amb.Candidates)
	}
}

func TestItem(t *testing.T) {
	tests := []struct {
		input string
		want  types.ItemKind
	}{
		{"health_potion", types.HealthPotion},
		{"Health Potion", types.HealthPotion},
		{"damage potion", types.DamagePotion},
		{"sword", types.Sword},
		{"super sword", types.SuperSword},
		{"super", types.SuperSword},
		{"health", types.HealthPotion},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Item(testCatalog(), tt.input)
			if err != nil {
				t.Fatalf("Item(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Item(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestItem_Ambiguous(t *testing.T) {
	_, err := Item(testCatalog(), "potion")
	var amb *AmbiguityError
	if !errors.As(err, &amb) {
		t.Fatalf("expected AmbiguityError, got %v", err)
	}
	if amb.Error() != "which potion? (health_potion, damage_potion)" {
		t.Errorf("unexpected message: %s", amb.Error())
	}
}

func TestItem_NotFound(t *testing.T) {
	for _, input := range []string{"", "shield"} {
		_, err := Item(testCatalog(), input)
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Errorf("Item(%q): expected NotFoundError, got %v", input, err)
		}
	}
}

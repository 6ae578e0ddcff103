package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestIs_MatchesByCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"insufficient funds", InsufficientFunds("sword", 50, 10), ErrInsufficientFunds},
		{"out of stock", OutOfStock("damage_potion"), ErrOutOfStock},
		{"invalid target", InvalidTarget(9, 4), ErrInvalidTarget},
		{"invalid action", InvalidAction("unknown action %q", "dance"), ErrInvalidAction},
		{"wrapped", fmt.Errorf("shop: %w", OutOfStock("x")), ErrOutOfStock},
	}
	for _, tt := range tests {
		if !errors.Is(tt.err, tt.want) {
			t.Errorf("%s: errors.Is(%v, %v) = false", tt.name, tt.err, tt.want)
		}
	}
}

func TestIs_DifferentCodes(t *testing.T) {
	if errors.Is(OutOfStock("x"), ErrInsufficientFunds) {
		t.Error("out_of_stock should not match insufficient_funds")
	}
	if errors.Is(errors.New("plain"), ErrOutOfStock) {
		t.Error("plain error should not match a domain sentinel")
	}
}

func TestCodeOf(t *testing.T) {
	code, ok := CodeOf(fmt.Errorf("outer: %w", InvalidTarget(0, 3)))
	if !ok || code != CodeInvalidTarget {
		t.Errorf("CodeOf = (%q, %v), want (%q, true)", code, ok, CodeInvalidTarget)
	}
	if _, ok := CodeOf(errors.New("plain")); ok {
		t.Error("CodeOf(plain) should report false")
	}
}

func TestMeta(t *testing.T) {
	e := InsufficientFunds("sword", 50, 15)
	if e.Meta["cost"] != 50 || e.Meta["balance"] != 15 {
		t.Errorf("unexpected meta: %v", e.Meta)
	}
}

func TestWrap_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	e := Wrap(cause, CodeInvalidContent, "loading content")
	if !errors.Is(e, cause) {
		t.Error("wrapped cause should be reachable")
	}
	if e.Error() != "loading content: boom" {
		t.Errorf("Error() = %q", e.Error())
	}
}

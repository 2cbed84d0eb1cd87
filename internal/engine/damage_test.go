package engine

import (
	"testing"

	"github.com/xieyx/turn-based-battle/internal/game"
)

func TestBaseDamage_FloorOfOne(t *testing.T) {
	cases := []struct {
		atk, def, want int
	}{
		{20, 5, 15},
		{10, 10, 1},
		{3, 50, 1},
		{0, 0, 1},
		{1, 0, 1},
	}
	for _, c := range cases {
		if got := BaseDamage(c.atk, c.def); got != c.want {
			t.Fatalf("BaseDamage(%d, %d) = %d, want %d", c.atk, c.def, got, c.want)
		}
	}
}

func TestApplyCharacterDamage_FloorsAtZero(t *testing.T) {
	c := game.Character{Name: "Hero", MaxHitPoints: 100, CurrentHitPoints: 10, Attack: 5, Defense: 2}
	out := ApplyCharacterDamage(c, 25)
	if out.CurrentHitPoints != 0 {
		t.Fatalf("expected HP floored at 0, got %d", out.CurrentHitPoints)
	}
	if out.Attack != c.Attack || out.Defense != c.Defense || out.MaxHitPoints != c.MaxHitPoints {
		t.Fatalf("other fields must be unchanged: %+v", out)
	}
	if c.CurrentHitPoints != 10 {
		t.Fatalf("input must not be mutated, got HP=%d", c.CurrentHitPoints)
	}
}

func TestApplyStackDamage_Boundaries(t *testing.T) {
	cases := []struct {
		name            string
		hp, qty, dmg    int
		wantHP, wantQty int
	}{
		{name: "partial front unit", hp: 30, qty: 3, dmg: 10, wantHP: 20, wantQty: 3},
		{name: "exactly one unit", hp: 30, qty: 3, dmg: 30, wantHP: 30, wantQty: 2},
		{name: "carry-over kills one extra", hp: 30, qty: 3, dmg: 40, wantHP: 20, wantQty: 2},
		{name: "exact multiple kills two", hp: 30, qty: 3, dmg: 60, wantHP: 30, wantQty: 1},
		{name: "exact stack wipe", hp: 30, qty: 3, dmg: 90, wantHP: 0, wantQty: 0},
		{name: "overkill forces zero HP", hp: 30, qty: 3, dmg: 500, wantHP: 0, wantQty: 0},
		{name: "damaged front unit", hp: 5, qty: 2, dmg: 7, wantHP: 28, wantQty: 1},
	}
	for _, c := range cases {
		s := game.SoldierStack{Name: "Grunts", UnitMaxHitPoints: 30, UnitHitPoints: c.hp, Quantity: c.qty, MaxQuantity: 3}
		out := ApplyStackDamage(s, c.dmg)
		if out.UnitHitPoints != c.wantHP || out.Quantity != c.wantQty {
			t.Fatalf("%s: got hp=%d qty=%d, want hp=%d qty=%d", c.name, out.UnitHitPoints, out.Quantity, c.wantHP, c.wantQty)
		}
		if out.Quantity == 0 && out.UnitHitPoints != 0 {
			t.Fatalf("%s: empty stack must hold no partial health", c.name)
		}
		if out.Quantity < 0 || out.Quantity > out.MaxQuantity {
			t.Fatalf("%s: quantity out of bounds: %d", c.name, out.Quantity)
		}
	}
}

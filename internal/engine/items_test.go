package engine

import (
	"errors"
	"testing"

	"github.com/xieyx/turn-based-battle/internal/game"
)

func TestStartBattlePhase_ItemUseSuppressesOnlyTheLeadAttack(t *testing.T) {
	ally := game.NewSoldierStack("Spearmen", 30, 6, 0, 2)
	player := testCharacter(game.SidePlayer, 100, 20, 5, game.FormationLeaderFirst, ally)
	player.CurrentHitPoints = 40
	enemy := testCharacter(game.SideEnemy, 80, 15, 3, game.FormationLeaderFirst)
	potion := game.NewItem(game.ItemTypeHealingPotion, "Healing Potion", 25, 1)
	b := NewBattle(player, enemy, []game.Item{potion})

	b, err := SelectItem(b, potion.EntityID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := StartBattlePhase(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, rec := range out.DamageRecords {
		if rec.AttackerID == out.PlayerCharacter().EntityID {
			t.Fatalf("the lead's attack must be suppressed on an item round")
		}
	}
	// soldiers still fought: spearmen hit the enemy lead for 3
	if len(out.DamageRecords) != 2 {
		t.Fatalf("expected soldier and enemy attacks only, got %d records", len(out.DamageRecords))
	}
	// heal applied before the enemy attack was resolved: 40+25=65, then -10
	if got := out.PlayerCharacter().CurrentHitPoints; got != 55 {
		t.Fatalf("expected player at 55 HP, got %d", got)
	}
	if got := out.ItemByEntityID(potion.EntityID).Quantity; got != 0 {
		t.Fatalf("expected potion consumed, got quantity %d", got)
	}
	if out.PendingItemID != "" {
		t.Fatalf("pending item use must be cleared")
	}
}

func TestItemUse_RedirectsToScreeningStackFrontUnit(t *testing.T) {
	ally := game.NewSoldierStack("Spearmen", 30, 6, 0, 2)
	ally.UnitHitPoints = 10
	player := testCharacter(game.SidePlayer, 100, 20, 5, game.FormationSoldiersFirst, ally)
	enemy := testCharacter(game.SideEnemy, 300, 1, 3, game.FormationLeaderFirst)
	potion := game.NewItem(game.ItemTypeHealingPotion, "Healing Potion", 50, 1)
	b := NewBattle(player, enemy, []game.Item{potion})

	b, err := SelectItem(b, potion.EntityID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := StartBattlePhase(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	healed := out.PlayerCharacter().SoldierByEntityID(ally.EntityID)
	// front unit healed to its cap of 30, then screened the enemy lead's
	// attack: BaseDamage(1, 0) = 1
	if healed.UnitHitPoints != 29 {
		t.Fatalf("expected front unit at 29 HP, got %d", healed.UnitHitPoints)
	}
	if healed.Quantity != 2 {
		t.Fatalf("healing must never change quantity, got %d", healed.Quantity)
	}
	if got := out.PlayerCharacter().CurrentHitPoints; got != 100 {
		t.Fatalf("the lead must not absorb the heal nor the hit, got %d HP", got)
	}
}

func TestExecutePendingItemUse_Guards(t *testing.T) {
	player := testCharacter(game.SidePlayer, 100, 20, 5, game.FormationLeaderFirst)
	enemy := testCharacter(game.SideEnemy, 80, 15, 3, game.FormationLeaderFirst)
	potion := game.NewItem(game.ItemTypeHealingPotion, "Healing Potion", 25, 1)
	b := NewBattle(player, enemy, []game.Item{potion})

	if _, err := ExecutePendingItemUse(b); !errors.Is(err, ErrInvalidPhase) {
		t.Fatalf("expected ErrInvalidPhase outside battle, got %v", err)
	}

	b.Phase = game.PhaseBattle
	out, err := ExecutePendingItemUse(b)
	if err != nil {
		t.Fatalf("a missing pending use must be a no-op, got %v", err)
	}
	if got := out.ItemByEntityID(potion.EntityID).Quantity; got != 1 {
		t.Fatalf("no-op must not consume the item, got %d", got)
	}

	b.PendingItemID = "itm_missing"
	b.PendingItemTargetID = b.PlayerCharacter().EntityID
	if _, err := ExecutePendingItemUse(b); !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("expected ErrInvalidAction for unknown item, got %v", err)
	}

	b.PendingItemID = potion.EntityID
	b.Items[0].Quantity = 0
	if _, err := ExecutePendingItemUse(b); !errors.Is(err, ErrInsufficientItems) {
		t.Fatalf("expected ErrInsufficientItems, got %v", err)
	}
}

func TestItemUse_HealIsCappedAtMaxHP(t *testing.T) {
	player := testCharacter(game.SidePlayer, 100, 20, 5, game.FormationLeaderFirst)
	player.CurrentHitPoints = 95
	enemy := testCharacter(game.SideEnemy, 80, 1, 3, game.FormationLeaderFirst)
	potion := game.NewItem(game.ItemTypeHealingPotion, "Healing Potion", 50, 1)
	b := NewBattle(player, enemy, []game.Item{potion})
	b.Phase = game.PhaseBattle
	b.PendingItemID = potion.EntityID
	b.PendingItemTargetID = player.EntityID

	out, err := ExecutePendingItemUse(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := out.PlayerCharacter().CurrentHitPoints; got != 100 {
		t.Fatalf("expected heal capped at 100, got %d", got)
	}
}

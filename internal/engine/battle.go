package engine

import (
	"fmt"

	"github.com/xieyx/turn-based-battle/internal/game"
)

// NewBattle creates round 1 of a battle between the two characters with
// the given item inventory. The battle opens in the preparation phase
// with a full countdown.
func NewBattle(player, enemy game.Character, items []game.Item) *game.Battle {
	b := &game.Battle{
		Round:           1,
		Phase:           game.PhasePreparation,
		PreparationLeft: game.PreparationSeconds,
		Characters:      []game.Character{player, enemy},
		Items:           items,
	}
	bc := &battleContext{b: b}
	bc.log("The battle begins! " + player.Name + " versus " + enemy.Name + ".")
	return b
}

// StartPreparationPhase moves the battle (back) into preparation with a
// fresh countdown. It is a no-op on phase history: the round number is
// kept as-is.
func StartPreparationPhase(b *game.Battle) (*game.Battle, error) {
	if b.IsGameOver {
		return nil, ErrBattleEnded
	}
	nb := b.Clone()
	nb.Phase = game.PhasePreparation
	nb.PreparationLeft = game.PreparationSeconds
	nb.ActionTaken = false
	bc := &battleContext{b: nb}
	bc.log("Preparation phase begins.")
	return nb, nil
}

// EnterBattle records the player's intent to fight this round. It only
// checks the lead character: a player side surviving on soldiers alone
// cannot enter (covered by tests; kept deliberately).
func EnterBattle(b *game.Battle) (*game.Battle, error) {
	if b.IsGameOver {
		return nil, ErrBattleEnded
	}
	if b.Phase != game.PhasePreparation {
		return nil, ErrInvalidPhase
	}
	player := b.PlayerCharacter()
	if player == nil || !player.Alive() {
		return nil, ErrCharacterDead
	}
	nb := b.Clone()
	bc := &battleContext{b: nb}
	bc.log(player.Name + " enters the battle!")
	return nb, nil
}

// SelectItem records a pending item use for this round. At most one item
// may be selected per round; execution is deferred to the battle phase.
// The default heal target is the player's lead character (the battle
// phase may redirect it to a screening soldier stack).
func SelectItem(b *game.Battle, itemID string) (*game.Battle, error) {
	if b.IsGameOver {
		return nil, ErrBattleEnded
	}
	if b.Phase != game.PhasePreparation {
		return nil, ErrInvalidPhase
	}
	if b.PendingItemID != "" {
		return nil, fmt.Errorf("%w: an item is already selected this round", ErrInvalidAction)
	}
	item := b.ItemByEntityID(itemID)
	if item == nil {
		return nil, fmt.Errorf("%w: unknown item %q", ErrInvalidAction, itemID)
	}
	if !item.Usable() {
		return nil, ErrInsufficientItems
	}
	nb := b.Clone()
	player := nb.PlayerCharacter()
	if player == nil {
		return nil, fmt.Errorf("%w: battle has no player side", ErrInvalidAction)
	}
	nb.PendingItemID = itemID
	nb.PendingItemTargetID = player.EntityID
	bc := &battleContext{b: nb}
	bc.log(player.Name + " readies a " + item.Name + ".")
	return nb, nil
}

// DecreasePreparationTimer ticks the preparation countdown down by one,
// floored at 0. When the countdown hits 0 and no action was taken this
// round, an automatic-advance notice is logged; actually driving the
// phase forward is the caller's job, the engine never self-schedules.
func DecreasePreparationTimer(b *game.Battle) (*game.Battle, error) {
	if b.IsGameOver {
		return nil, ErrBattleEnded
	}
	if b.Phase != game.PhasePreparation {
		return nil, ErrInvalidPhase
	}
	nb := b.Clone()
	if nb.PreparationLeft > 0 {
		nb.PreparationLeft--
		if nb.PreparationLeft == 0 && !nb.ActionTaken {
			bc := &battleContext{b: nb}
			bc.log("Preparation time is up. The battle advances automatically.")
		}
	}
	return nb, nil
}

// MarkPreparationActionTaken flags that the player acted this round,
// which suppresses the countdown auto-advance notice.
func MarkPreparationActionTaken(b *game.Battle) (*game.Battle, error) {
	if b.IsGameOver {
		return nil, ErrBattleEnded
	}
	if b.Phase != game.PhasePreparation {
		return nil, ErrInvalidPhase
	}
	nb := b.Clone()
	nb.ActionTaken = true
	return nb, nil
}

// StartBattlePhase runs one full round: it transitions to the battle
// phase, executes any pending item use, computes every attacker's damage
// record in fixed order (player lead, player stacks, enemy lead, enemy
// stacks) and then resolves the round. Callers observe the returned
// battle either back in preparation for the next round or terminal —
// never hanging mid-battle.
func StartBattlePhase(b *game.Battle) (*game.Battle, error) {
	if b.IsGameOver {
		return nil, ErrBattleEnded
	}
	if b.Phase != game.PhasePreparation {
		return nil, ErrInvalidPhase
	}
	nb := b.Clone()
	bc := &battleContext{b: nb}
	nb.Phase = game.PhaseBattle
	bc.log("Battle phase begins.")

	player := nb.PlayerCharacter()
	enemy := nb.EnemyCharacter()
	if player == nil || enemy == nil {
		return nil, fmt.Errorf("%w: battle is missing a side", ErrInvalidAction)
	}

	// A round spent drinking a potion costs the lead character its
	// attack; the soldiers still fight.
	usedItem := nb.PendingItemID != ""
	if usedItem {
		if err := bc.executePendingItemUse(); err != nil {
			return nil, err
		}
	}

	// Running simulations of each defending side's stacks. Damage to
	// stacks is tracked here immediately so later attackers in the same
	// round re-resolve against current occupancy, while the published
	// characters stay untouched until resolution.
	enemySim := append([]game.SoldierStack(nil), enemy.Soldiers...)
	playerSim := append([]game.SoldierStack(nil), player.Soldiers...)

	records := make([]game.DamageRecord, 0, 2+len(player.Soldiers)+len(enemy.Soldiers))
	attack := func(attackerID, attackerName string, atk int, defender *game.Character, sim []game.SoldierStack) {
		t := ResolveTarget(defender, sim)
		dmg := BaseDamage(atk, t.Defense())
		rec := game.DamageRecord{
			BattleID:     nb.ID,
			AttackerID:   attackerID,
			AttackerName: attackerName,
			TargetID:     defender.EntityID,
			TargetType:   t.Type,
			Amount:       dmg,
		}
		if t.Type == game.TargetSoldier {
			rec.StackID = t.Stack.EntityID
			rec.StackName = t.Stack.Name
			*t.Stack = ApplyStackDamage(*t.Stack, dmg)
		}
		records = append(records, rec)
	}

	if !usedItem && player.Alive() {
		attack(player.EntityID, player.Name, player.Attack, enemy, enemySim)
	}
	for i := range player.Soldiers {
		if s := &player.Soldiers[i]; s.Alive() {
			attack(s.EntityID, s.Name, s.Attack, enemy, enemySim)
		}
	}
	if enemy.Alive() {
		attack(enemy.EntityID, enemy.Name, enemy.Attack, player, playerSim)
	}
	for i := range enemy.Soldiers {
		if s := &enemy.Soldiers[i]; s.Alive() {
			attack(s.EntityID, s.Name, s.Attack, player, playerSim)
		}
	}

	nb.DamageRecords = records
	for _, rec := range records {
		if rec.Amount == 0 {
			continue
		}
		targetName := ""
		if rec.TargetType == game.TargetSoldier {
			targetName = rec.StackName
		} else if t := nb.CharacterByEntityID(rec.TargetID); t != nil {
			targetName = t.Name
		}
		bc.log(fmt.Sprintf("%s hits %s for %d damage.", rec.AttackerName, targetName, rec.Amount))
	}

	bc.resolveRound()
	return nb, nil
}

// StartResolutionPhase applies the round's damage records to the battle.
// StartBattlePhase already runs this internally; the standalone operation
// exists for callers that stage damage records themselves.
func StartResolutionPhase(b *game.Battle) (*game.Battle, error) {
	if b.IsGameOver {
		return nil, ErrBattleEnded
	}
	if b.Phase != game.PhaseBattle {
		return nil, ErrInvalidPhase
	}
	if b.PlayerCharacter() == nil || b.EnemyCharacter() == nil {
		return nil, fmt.Errorf("%w: battle is missing a side", ErrInvalidAction)
	}
	nb := b.Clone()
	bc := &battleContext{b: nb}
	bc.resolveRound()
	return nb, nil
}

// resolveRound commits the accumulated damage records in original order,
// then either ends the battle or advances into the next round's
// preparation phase.
func (bc *battleContext) resolveRound() {
	nb := bc.b
	for _, rec := range nb.DamageRecords {
		target := nb.CharacterByEntityID(rec.TargetID)
		if target == nil {
			continue
		}
		switch rec.TargetType {
		case game.TargetCharacter:
			*target = ApplyCharacterDamage(*target, rec.Amount)
		case game.TargetSoldier:
			if s := target.SoldierByEntityID(rec.StackID); s != nil {
				*s = ApplyStackDamage(*s, rec.Amount)
			}
		}
	}

	nb.Phase = game.PhaseResolution
	nb.PendingItemID = ""
	nb.PendingItemTargetID = ""

	player := nb.PlayerCharacter()
	enemy := nb.EnemyCharacter()
	playerAlive := player.SideAlive()
	enemyAlive := enemy.SideAlive()
	switch {
	case playerAlive && !enemyAlive:
		nb.IsGameOver = true
		nb.Winner = game.SidePlayer
		bc.log(player.Name + " wins the battle!")
	case !playerAlive && enemyAlive:
		nb.IsGameOver = true
		nb.Winner = game.SideEnemy
		bc.log(enemy.Name + " wins the battle!")
	case !playerAlive && !enemyAlive:
		nb.IsGameOver = true
		nb.Winner = ""
		bc.log("Both sides have fallen. The battle ends in a draw.")
	default:
		nb.Round++
		nb.Phase = game.PhasePreparation
		nb.PreparationLeft = game.PreparationSeconds
		nb.ActionTaken = false
		bc.log(fmt.Sprintf("Round %d begins. Prepare for battle.", nb.Round))
	}
}

// ResetBattle restores round 1 / preparation with the freshly rebuilt
// characters and inventory the caller supplies. The battle identity
// (code, player name) is preserved; the log restarts with a single entry.
func ResetBattle(b *game.Battle, player, enemy game.Character, items []game.Item) *game.Battle {
	nb := b.Clone()
	nb.Round = 1
	nb.Phase = game.PhasePreparation
	nb.IsGameOver = false
	nb.Winner = ""
	nb.PreparationLeft = game.PreparationSeconds
	nb.ActionTaken = false
	nb.PendingItemID = ""
	nb.PendingItemTargetID = ""
	nb.StatsCounted = false
	nb.Characters = []game.Character{player, enemy}
	nb.Items = items
	nb.Log = nil
	nb.DamageRecords = nil
	bc := &battleContext{b: nb}
	bc.log("The battle has been restarted.")
	return nb
}

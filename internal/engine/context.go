package engine

import "github.com/xieyx/turn-based-battle/internal/game"

// battleContext wraps the battle clone an operation is transforming and
// appends its log lines. Every exported operation builds one over a
// fresh clone so the published state is never touched.
type battleContext struct {
	b *game.Battle
}

func (bc *battleContext) log(msg string) {
	bc.b.Log = append(bc.b.Log, game.LogEntry{
		BattleID: bc.b.ID,
		Round:    bc.b.Round,
		Phase:    bc.b.Phase,
		Message:  msg,
	})
}

// firstAliveStack returns the first living stack in declaration order.
func firstAliveStack(c *game.Character) *game.SoldierStack {
	for i := range c.Soldiers {
		if c.Soldiers[i].Alive() {
			return &c.Soldiers[i]
		}
	}
	return nil
}

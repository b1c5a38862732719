/* duel.go
 * Contains Duel, the reference battle used when no other battle is plugged into the bracket engine.
 * Both teams send out the next member of their lineup and the two trade one simultaneous attack per round. Members
 * still standing go back into their lineup before the next round, so a team's strategy decides who fights next
 */

package team

import (
	"bracket-bot/api/bracket"
)

// Fielder is a competitor that can produce a lineup of members for a battle
type Fielder interface {
	Lineup() Lineup
}

// Duel is a deterministic Battler. Teams are not modified: each battle works on fresh lineups
type Duel struct{}

var _ bracket.Battler = Duel{}

// Battle fights first against second.
// Preconditions: None. A competitor that cannot field a lineup fights with an empty one
// Postconditions: Returns Draw when both lineups are wiped out together, FirstWins when only second is, otherwise SecondWins
func (Duel) Battle(first, second bracket.Competitor) bracket.Outcome {
	a, b := lineupOf(first), lineupOf(second)

	for {
		ma, okA := a.Retrieve()
		mb, okB := b.Retrieve()
		if !okA || !okB {
			if okA {
				a.Return(ma)
			}
			if okB {
				b.Return(mb)
			}
			break
		}

		ma.HP -= mb.Attack
		mb.HP -= ma.Attack
		a.Return(ma)
		b.Return(mb)
	}

	switch {
	case a.Len() == 0 && b.Len() == 0:
		return bracket.Draw
	case b.Len() == 0:
		return bracket.FirstWins
	default:
		return bracket.SecondWins
	}
}

func lineupOf(c bracket.Competitor) Lineup {
	if f, ok := c.(Fielder); ok {
		return f.Lineup()
	}
	return RotateFront{}.Lineup(nil)
}

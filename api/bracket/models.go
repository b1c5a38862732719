/* models.go
 * This file contain the interfaces and structs the bracket engine shares with its collaborators: the competitors
 * it moves around, the battle it delegates every match to, and the resolver that maps tokens to competitors
 */

package bracket

import (
	"fmt"

	"bracket-bot/api/typeset"
)

// Competitor is a caller owned entrant. The engine only stores and forwards references to it; the attribute and
// defeated accessors exist for the meta annotator. Competitors are identified by reference, so implementations must
// be comparable (usually a pointer type)
type Competitor interface {
	Name() string
	// Attributes returns the attribute kinds present in the competitor's roster
	Attributes() typeset.Set
	// Defeated returns the first opponent this competitor beat, or nil
	Defeated() Competitor
	// SetDefeated records opponent if no opponent has been recorded yet and reports whether it was stored
	SetDefeated(opponent Competitor) bool
}

// Outcome is the code returned by a battle
type Outcome int

const (
	Draw       Outcome = 0
	FirstWins  Outcome = 1
	SecondWins Outcome = 2
)

// Valid reports whether o is one of the three codes a battle may return
func (o Outcome) Valid() bool {
	return o == Draw || o == FirstWins || o == SecondWins
}

// FirstSurvives reports whether the first entrant advances. A draw advances the first entrant
func (o Outcome) FirstSurvives() bool {
	return o == Draw || o == FirstWins
}

func (o Outcome) String() string {
	switch o {
	case Draw:
		return "draw"
	case FirstWins:
		return "first wins"
	case SecondWins:
		return "second wins"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Battler resolves a single match between two competitors
type Battler interface {
	Battle(first, second Competitor) Outcome
}

// BattlerFunc adapts a function to the Battler interface
type BattlerFunc func(first, second Competitor) Outcome

func (f BattlerFunc) Battle(first, second Competitor) Outcome {
	return f(first, second)
}

// Resolver maps a competitor token from a bracket string to a caller owned competitor
type Resolver interface {
	Resolve(name string) (Competitor, error)
}

// ResolverFunc adapts a function to the Resolver interface
type ResolverFunc func(name string) (Competitor, error)

func (f ResolverFunc) Resolve(name string) (Competitor, error) {
	return f(name)
}

// Match is the result of one call to Engine.Advance
type Match struct {
	First   Competitor
	Second  Competitor
	Outcome Outcome
}

// Winner returns the entrant that advanced from the match
func (m Match) Winner() Competitor {
	if m.Outcome.FirstSurvives() {
		return m.First
	}
	return m.Second
}

// Loser returns the entrant that was eliminated by the match
func (m Match) Loser() Competitor {
	if m.Outcome.FirstSurvives() {
		return m.Second
	}
	return m.First
}

// State is the lifecycle position of an Engine
type State int

const (
	Idle State = iota
	Running
	Exhausted
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Exhausted:
		return "exhausted"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

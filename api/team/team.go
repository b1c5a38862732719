/* team.go
 * Contains the Team entity that is entered into brackets. A team is built from the number of members it fields of
 * each attribute kind and carries the write-once record of the first opponent it defeated
 */

package team

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"bracket-bot/api/bracket"
	"bracket-bot/api/shared"
	"bracket-bot/api/typeset"
)

// MaxSize is the largest number of members a team may field
const MaxSize = 6

var (
	ErrInvalidTeam = errors.New("invalid team")
	ErrUnknownTeam = fmt.Errorf("%w: no such team", bracket.ErrUnknownCompetitor)
)

// stats are the starting values of a member of each kind, indexed by kind-1
var stats = [typeset.Size]struct {
	level  int
	hp     int
	attack int
}{
	{level: 3, hp: 8, attack: 6},  // FIRE
	{level: 2, hp: 9, attack: 5},  // GRASS
	{level: 2, hp: 10, attack: 4}, // WATER
	{level: 4, hp: 6, attack: 6},  // GHOST
	{level: 1, hp: 12, attack: 3}, // NORMAL
}

// Member is a single fighter of a team
type Member struct {
	Kind   typeset.Kind
	Level  int
	HP     int
	Attack int
}

// NewMember creates a member of kind k with its starting stats
func NewMember(k typeset.Kind) Member {
	s := stats[k-1]
	return Member{Kind: k, Level: s.level, HP: s.hp, Attack: s.attack}
}

// Fainted reports whether the member can no longer fight
func (m Member) Fainted() bool {
	return m.HP <= 0
}

// Team is a bracket competitor. It is safe to read concurrently but the defeated record is only written by the
// meta annotator, which runs on a single goroutine per bracket
type Team struct {
	name     string
	counts   [typeset.Size]int
	attrs    typeset.Set
	strategy Strategy
	defeated bracket.Competitor
}

var _ bracket.Competitor = (*Team)(nil)

// New creates a team from its member counts in kind order.
// Preconditions: name is non-empty and has no whitespace, counts are non-negative and sum to at most MaxSize
// Postconditions: Returns the team, or an error wrapping ErrInvalidTeam
func New(name string, counts [typeset.Size]int, strategy Strategy) (*Team, error) {
	if name == "" || strings.IndexFunc(name, unicode.IsSpace) >= 0 || name == bracket.MergeMarker {
		return nil, fmt.Errorf("%w: name %q cannot be used in a bracket", ErrInvalidTeam, name)
	}
	if strategy == nil {
		strategy = RotateFront{}
	}

	total := 0
	var present [typeset.Size]bool
	for i, c := range counts {
		if c < 0 {
			return nil, fmt.Errorf("%w: %s has a negative count for %s", ErrInvalidTeam, name, typeset.Kind(i+1))
		}
		total += c
		present[i] = c > 0
	}
	if total > MaxSize {
		return nil, fmt.Errorf("%w: %s fields %d members but the limit is %d", ErrInvalidTeam, name, total, MaxSize)
	}

	return &Team{
		name:     name,
		counts:   counts,
		attrs:    typeset.FromVector(present),
		strategy: strategy,
	}, nil
}

// FromSpec creates a team from a shared.TeamSpec
func FromSpec(spec shared.TeamSpec, strategy Strategy) (*Team, error) {
	return New(spec.Name, spec.Counts, strategy)
}

func (t *Team) Name() string {
	return t.name
}

// Attributes returns the kinds the team fields at least one member of
func (t *Team) Attributes() typeset.Set {
	return t.attrs
}

// Counts returns the number of members of each kind
func (t *Team) Counts() [typeset.Size]int {
	return t.counts
}

// Size returns the number of members in the team
func (t *Team) Size() int {
	total := 0
	for _, c := range t.counts {
		total += c
	}
	return total
}

// Defeated returns the first opponent the team beat, or nil
func (t *Team) Defeated() bracket.Competitor {
	return t.defeated
}

// SetDefeated records opponent as the first team beaten. Later calls leave the record untouched and report false
func (t *Team) SetDefeated(opponent bracket.Competitor) bool {
	if t.defeated != nil || opponent == nil {
		return false
	}
	t.defeated = opponent
	return true
}

// Lineup returns a fresh lineup of the team's members ordered by its strategy. Members are created in kind order
func (t *Team) Lineup() Lineup {
	members := make([]Member, 0, t.Size())
	for i, c := range t.counts {
		for j := 0; j < c; j++ {
			members = append(members, NewMember(typeset.Kind(i+1)))
		}
	}
	return t.strategy.Lineup(members)
}

// String formats the team as Name([FIRE WATER])
func (t *Team) String() string {
	return fmt.Sprintf("%s(%v)", t.name, t.attrs.Names())
}

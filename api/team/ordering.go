/* ordering.go
 * Contains the strategies a team can use to decide which member fights next. Every strategy hands out members from
 * the front of its lineup; they differ in where a member that survived a round goes back in
 */

package team

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Lineup is the ordered set of members a team still has available during a battle
type Lineup interface {
	// Retrieve removes and returns the next member to fight, or false if none remain
	Retrieve() (Member, bool)
	// Return puts a member that is still standing back into the lineup. Fainted members are dropped
	Return(m Member)
	Len() int
}

// Strategy builds a lineup from a team's members
type Strategy interface {
	Lineup(members []Member) Lineup
}

// RotateFront returns a surviving member to the front, so it keeps fighting until it faints
type RotateFront struct{}

// RotateBack returns a surviving member to the back, so members take turns
type RotateBack struct{}

// Sorted keeps members in descending order of a criterion, ties broken by kind order
type Sorted struct {
	By Criterion
}

// Criterion is the member stat used by Sorted
type Criterion int

const (
	ByLevel Criterion = iota
	ByHP
	ByAttack
)

func (c Criterion) value(m Member) int {
	switch c {
	case ByHP:
		return m.HP
	case ByAttack:
		return m.Attack
	default:
		return m.Level
	}
}

// ParseStrategy maps a config value (front, back, sorted) and criterion (level, hp, attack) to a Strategy
func ParseStrategy(name string, criterion string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "front":
		return RotateFront{}, nil
	case "back":
		return RotateBack{}, nil
	case "sorted":
		switch strings.ToLower(strings.TrimSpace(criterion)) {
		case "", "level":
			return Sorted{By: ByLevel}, nil
		case "hp":
			return Sorted{By: ByHP}, nil
		case "attack":
			return Sorted{By: ByAttack}, nil
		}
		return nil, fmt.Errorf("unknown sort criterion %q", criterion)
	}
	return nil, fmt.Errorf("unknown ordering %q", name)
}

func (RotateFront) Lineup(members []Member) Lineup {
	return &queue{members: slices.Clone(members), toFront: true}
}

func (RotateBack) Lineup(members []Member) Lineup {
	return &queue{members: slices.Clone(members)}
}

func (s Sorted) Lineup(members []Member) Lineup {
	l := &sortedLineup{by: s.By}
	for _, m := range members {
		l.Return(m)
	}
	return l
}

type queue struct {
	members []Member
	toFront bool
}

func (q *queue) Retrieve() (Member, bool) {
	if len(q.members) == 0 {
		return Member{}, false
	}
	m := q.members[0]
	q.members = q.members[1:]
	return m, true
}

func (q *queue) Return(m Member) {
	if m.Fainted() {
		return
	}
	if q.toFront {
		q.members = slices.Insert(q.members, 0, m)
		return
	}
	q.members = append(q.members, m)
}

func (q *queue) Len() int {
	return len(q.members)
}

type sortedLineup struct {
	members []Member
	by      Criterion
}

func (s *sortedLineup) Retrieve() (Member, bool) {
	if len(s.members) == 0 {
		return Member{}, false
	}
	m := s.members[0]
	s.members = s.members[1:]
	return m, true
}

// Return inserts m after every member that ranks at least as high, so equal members keep arrival order
func (s *sortedLineup) Return(m Member) {
	if m.Fainted() {
		return
	}
	i, _ := slices.BinarySearchFunc(s.members, m, func(existing, target Member) int {
		if c := cmp.Compare(s.by.value(target), s.by.value(existing)); c != 0 {
			return c
		}
		if c := cmp.Compare(existing.Kind, target.Kind); c != 0 {
			return c
		}
		return -1
	})
	s.members = slices.Insert(s.members, i, m)
}

func (s *sortedLineup) Len() int {
	return len(s.members)
}

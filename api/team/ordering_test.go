/* ordering_test.go
 * Contains unit tests for ordering.go
 */

package team

import (
	"testing"

	"bracket-bot/api/typeset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allKinds() []Member {
	var members []Member
	for k := typeset.Kind(1); k <= typeset.Size; k++ {
		members = append(members, NewMember(k))
	}
	return members
}

func drain(l Lineup) []typeset.Kind {
	var kinds []typeset.Kind
	for {
		m, ok := l.Retrieve()
		if !ok {
			return kinds
		}
		kinds = append(kinds, m.Kind)
	}
}

// TestRotateFront_SurvivorFightsAgain tests that a returned member is next in line
func TestRotateFront_SurvivorFightsAgain(t *testing.T) {
	l := RotateFront{}.Lineup(allKinds())

	m, ok := l.Retrieve()
	require.True(t, ok)
	l.Return(m)

	next, _ := l.Retrieve()
	assert.Equal(t, typeset.Fire, next.Kind)
}

// TestRotateBack_SurvivorWaits tests that a returned member goes to the end of the line
func TestRotateBack_SurvivorWaits(t *testing.T) {
	l := RotateBack{}.Lineup(allKinds())

	m, _ := l.Retrieve()
	l.Return(m)

	assert.Equal(t, []typeset.Kind{typeset.Grass, typeset.Water, typeset.Ghost, typeset.Normal, typeset.Fire}, drain(l))
}

// TestReturn_FaintedDropped tests that fainted members leave the lineup for every strategy
func TestReturn_FaintedDropped(t *testing.T) {
	for _, s := range []Strategy{RotateFront{}, RotateBack{}, Sorted{By: ByHP}} {
		l := s.Lineup(allKinds())
		m, _ := l.Retrieve()
		m.HP = 0
		l.Return(m)
		assert.Equal(t, 4, l.Len())
	}
}

// TestSorted_ByLevel tests descending level order with kind order breaking ties
func TestSorted_ByLevel(t *testing.T) {
	l := Sorted{By: ByLevel}.Lineup(allKinds())

	assert.Equal(t, []typeset.Kind{typeset.Ghost, typeset.Fire, typeset.Grass, typeset.Water, typeset.Normal}, drain(l))
}

// TestSorted_ReturnReorders tests that a damaged member is placed by its new value
func TestSorted_ReturnReorders(t *testing.T) {
	l := Sorted{By: ByHP}.Lineup(allKinds())

	first, _ := l.Retrieve()
	assert.Equal(t, typeset.Normal, first.Kind)
	first.HP = 7
	l.Return(first)

	assert.Equal(t, []typeset.Kind{typeset.Water, typeset.Grass, typeset.Fire, typeset.Normal, typeset.Ghost}, drain(l))
}

// TestSorted_EqualMembersKeepOrder tests that identical members keep arrival order
func TestSorted_EqualMembersKeepOrder(t *testing.T) {
	a := NewMember(typeset.Fire)
	b := NewMember(typeset.Fire)
	b.Level = 3
	l := Sorted{By: ByAttack}.Lineup([]Member{a, b, NewMember(typeset.Normal)})

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []typeset.Kind{typeset.Fire, typeset.Fire, typeset.Normal}, drain(l))
}

// TestParseStrategy tests config values
func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("", "")
	require.NoError(t, err)
	assert.Equal(t, RotateFront{}, s)

	s, err = ParseStrategy("BACK", "")
	require.NoError(t, err)
	assert.Equal(t, RotateBack{}, s)

	s, err = ParseStrategy("sorted", "hp")
	require.NoError(t, err)
	assert.Equal(t, Sorted{By: ByHP}, s)

	_, err = ParseStrategy("sorted", "speed")
	assert.Error(t, err)

	_, err = ParseStrategy("random", "")
	assert.Error(t, err)
}

/* typeset_test.go
 * Contains unit tests for typeset.go
 */

package typeset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAdd_MarksKind tests that Add sets only the requested kind
func TestAdd_MarksKind(t *testing.T) {
	s := Set(0).Add(Water)

	assert.True(t, s.Contains(Water))
	assert.False(t, s.Contains(Fire))
	assert.Equal(t, []string{"WATER"}, s.Names())
}

// TestAdd_OutOfRangePanics tests that kinds outside [1,5] fail fast
func TestAdd_OutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { Set(0).Add(0) })
	assert.Panics(t, func() { Set(0).Add(6) })
}

// TestUnion_CombinesSets tests bitwise or semantics
func TestUnion_CombinesSets(t *testing.T) {
	a := Set(0).Add(Fire).Add(Ghost)
	b := Set(0).Add(Ghost).Add(Normal)

	assert.Equal(t, []Kind{Fire, Ghost, Normal}, a.Union(b).Kinds())
}

// TestDifference_RemovesOther tests that the difference keeps only elements missing from other
func TestDifference_RemovesOther(t *testing.T) {
	present := FromVector([Size]bool{true, true, false, true, true})

	absent := All.Difference(present)

	assert.Equal(t, []string{"WATER"}, absent.Names())
	assert.True(t, absent.Equal(present.Complement()))
}

// TestIntersect_KeepsShared tests the intersection of two sets
func TestIntersect_KeepsShared(t *testing.T) {
	a := FromVector([Size]bool{false, false, true, true, false})
	b := FromVector([Size]bool{false, false, true, false, false})

	assert.Equal(t, []Kind{Water}, a.Intersect(b).Kinds())
}

// TestContains_OutOfRange tests that out of range kinds are never members
func TestContains_OutOfRange(t *testing.T) {
	assert.False(t, All.Contains(0))
	assert.False(t, All.Contains(Size+1))
}

// TestEqual_ValueSemantics tests that sets built differently compare equal
func TestEqual_ValueSemantics(t *testing.T) {
	a := Set(0).Add(Normal).Add(Fire)
	b := FromVector([Size]bool{true, false, false, false, true})

	assert.True(t, a.Equal(b))
	assert.Equal(t, a, b)
}

// TestNames_EmptySet tests that the empty set gives an empty slice rather than nil
func TestNames_EmptySet(t *testing.T) {
	names := Set(0).Names()

	assert.NotNil(t, names)
	assert.Empty(t, names)
	assert.True(t, Set(0).IsEmpty())
}

// TestKindString tests kind names in universe order
func TestKindString(t *testing.T) {
	assert.Equal(t, "FIRE", Fire.String())
	assert.Equal(t, "NORMAL", Normal.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

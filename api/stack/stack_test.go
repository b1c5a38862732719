/* stack_test.go
 * Contains unit tests for stack.go
 */

package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPushPop_LastInFirstOut tests ordering of pushed items
func TestPushPop_LastInFirstOut(t *testing.T) {
	s := New[string](3)
	require.NoError(t, s.Push("A"))
	require.NoError(t, s.Push("B"))
	require.NoError(t, s.Push("C"))

	for _, want := range []string{"C", "B", "A"} {
		got, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, s.IsEmpty())
}

// TestPop_Underflow tests that popping an empty stack returns ErrEmpty
func TestPop_Underflow(t *testing.T) {
	s := New[int](1)

	_, err := s.Pop()

	assert.ErrorIs(t, err, ErrEmpty)
}

// TestPeek_DoesNotRemove tests that Peek leaves the item in place
func TestPeek_DoesNotRemove(t *testing.T) {
	s := New[int](2)
	require.NoError(t, s.Push(7))

	top, err := s.Peek()

	require.NoError(t, err)
	assert.Equal(t, 7, top)
	assert.Equal(t, 1, s.Len())
}

// TestPeek_Underflow tests that peeking an empty stack returns ErrEmpty
func TestPeek_Underflow(t *testing.T) {
	_, err := New[int](0).Peek()

	assert.ErrorIs(t, err, ErrEmpty)
}

// TestPush_Full tests that pushing past capacity returns ErrFull
func TestPush_Full(t *testing.T) {
	s := New[int](1)
	require.NoError(t, s.Push(1))

	err := s.Push(2)

	assert.ErrorIs(t, err, ErrFull)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, s.Cap())
}

// TestNew_NegativeCapacity tests that a negative capacity behaves as zero
func TestNew_NegativeCapacity(t *testing.T) {
	s := New[int](-4)

	assert.ErrorIs(t, s.Push(1), ErrFull)
	assert.Equal(t, 0, s.Cap())
}

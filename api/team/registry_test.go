/* registry_test.go
 * Contains unit tests for registry.go
 */

package team

import (
	"testing"

	"bracket-bot/api/bracket"
	"bracket-bot/api/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry(nil)
	for _, spec := range []shared.TeamSpec{
		{Name: "Roark", Counts: [5]int{0, 2, 1, 1, 1}},
		{Name: "Gardenia", Counts: [5]int{0, 0, 2, 0, 1}},
		{Name: "Crasher_Wake", Counts: [5]int{0, 2, 0, 1, 0}},
	} {
		require.NoError(t, r.Add(spec))
	}
	return r
}

// TestRegistry_AddInvalid tests that invalid specs are not stored
func TestRegistry_AddInvalid(t *testing.T) {
	r := NewRegistry(nil)

	err := r.Add(shared.TeamSpec{Name: "Big", Counts: [5]int{7, 0, 0, 0, 0}})

	assert.ErrorIs(t, err, ErrInvalidTeam)
	assert.Equal(t, 0, r.Len())
}

// TestRegistry_Names tests alphabetical listing
func TestRegistry_Names(t *testing.T) {
	r := newTestRegistry(t)

	assert.Equal(t, []string{"Crasher_Wake", "Gardenia", "Roark"}, r.Names())
}

// TestRegistry_LookupExact tests case insensitive exact matches
func TestRegistry_LookupExact(t *testing.T) {
	r := newTestRegistry(t)

	spec, err := r.Lookup("ROARK")

	require.NoError(t, err)
	assert.Equal(t, "Roark", spec.Name)
}

// TestRegistry_LookupFuzzy tests partial names
func TestRegistry_LookupFuzzy(t *testing.T) {
	r := newTestRegistry(t)

	spec, err := r.Lookup("crash")
	require.NoError(t, err)
	assert.Equal(t, "Crasher_Wake", spec.Name)

	// matches both Roark and Gardenia, Roark is closer
	spec, err = r.Lookup("ar")
	require.NoError(t, err)
	assert.Equal(t, "Roark", spec.Name)
}

// TestRegistry_LookupUnknown tests the error for names that match nothing
func TestRegistry_LookupUnknown(t *testing.T) {
	r := newTestRegistry(t)

	_, err := r.Lookup("Volkner")

	assert.ErrorIs(t, err, ErrUnknownTeam)
	assert.ErrorIs(t, err, bracket.ErrUnknownCompetitor)
}

// TestRegistry_AddReplaces tests that re-adding a name replaces its counts
func TestRegistry_AddReplaces(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Add(shared.TeamSpec{Name: "roark", Counts: [5]int{1, 0, 0, 0, 0}}))

	spec, err := r.Lookup("Roark")

	require.NoError(t, err)
	assert.Equal(t, [5]int{1, 0, 0, 0, 0}, spec.Counts)
	assert.Equal(t, 3, r.Len())
}

// TestRegistry_ResolverFreshPerRun tests that each resolver builds its own teams and reuses them within a run
func TestRegistry_ResolverFreshPerRun(t *testing.T) {
	r := newTestRegistry(t)

	run1 := r.Resolver()
	a, err := run1.Resolve("Roark")
	require.NoError(t, err)
	again, err := run1.Resolve("roark")
	require.NoError(t, err)
	assert.Same(t, a, again)

	b, err := r.Resolver().Resolve("Roark")
	require.NoError(t, err)
	assert.NotSame(t, a, b)
}

// TestRegistry_ResolverUnknown tests that resolver errors wrap ErrUnknownCompetitor
func TestRegistry_ResolverUnknown(t *testing.T) {
	_, err := newTestRegistry(t).Resolver().Resolve("Nobody")

	assert.ErrorIs(t, err, bracket.ErrUnknownCompetitor)
}

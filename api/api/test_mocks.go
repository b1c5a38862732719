/* test_mocks.go
 * Contains mock structures for testing the API package and its consumers
 */

package api

import (
	"sync"

	"bracket-bot/api/bracket"
	"bracket-bot/api/shared"
)

// MockBattler implements bracket.Battler with scripted outcomes
type MockBattler struct {
	mu sync.Mutex

	// Outcomes are returned in order. Once used up, Default is returned
	Outcomes []bracket.Outcome
	Default  bracket.Outcome

	// Calls stores every pairing the battler was asked to resolve, as "first v second"
	Calls []string
}

// Battle mock implementation
func (m *MockBattler) Battle(first, second bracket.Competitor) bracket.Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, first.Name()+" v "+second.Name())
	if len(m.Outcomes) == 0 {
		return m.Default
	}
	next := m.Outcomes[0]
	m.Outcomes = m.Outcomes[1:]
	return next
}

// SampleRoster is an eight team roster used across tests
func SampleRoster() []shared.TeamSpec {
	return []shared.TeamSpec{
		{Name: "Roark", Counts: [5]int{0, 2, 1, 1, 1}},
		{Name: "Gardenia", Counts: [5]int{0, 0, 2, 0, 1}},
		{Name: "Maylene", Counts: [5]int{6, 0, 0, 0, 0}},
		{Name: "Crasher_Wake", Counts: [5]int{0, 2, 0, 1, 0}},
		{Name: "Fantina", Counts: [5]int{0, 0, 1, 1, 1}},
		{Name: "Byron", Counts: [5]int{0, 2, 0, 0, 1}},
		{Name: "Candice", Counts: [5]int{2, 2, 1, 0, 0}},
		{Name: "Volkner", Counts: [5]int{0, 5, 0, 0, 0}},
	}
}

// NewMockAPI creates an API over SampleRoster with a MockBattler that lets the first entrant advance by default
func NewMockAPI() (*API, *MockBattler) {
	battler := &MockBattler{Default: bracket.FirstWins}
	a, err := NewAPI(SampleRoster(), nil, battler)
	if err != nil {
		panic(err)
	}
	return a, battler
}

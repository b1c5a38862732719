/* helpers_test.go
 * Contains fakes shared by the bracket package tests
 */

package bracket

import (
	"fmt"

	"bracket-bot/api/typeset"
)

// fakeCompetitor is a minimal Competitor
type fakeCompetitor struct {
	name     string
	attrs    typeset.Set
	defeated Competitor
}

func (f *fakeCompetitor) Name() string            { return f.name }
func (f *fakeCompetitor) Attributes() typeset.Set { return f.attrs }
func (f *fakeCompetitor) Defeated() Competitor    { return f.defeated }

func (f *fakeCompetitor) SetDefeated(opponent Competitor) bool {
	if f.defeated != nil {
		return false
	}
	f.defeated = opponent
	return true
}

// fakeRoster resolves names to one fakeCompetitor each, creating them on first use
type fakeRoster map[string]*fakeCompetitor

func (r fakeRoster) Resolve(name string) (Competitor, error) {
	if c, ok := r[name]; ok {
		return c, nil
	}
	c := &fakeCompetitor{name: name}
	r[name] = c
	return c, nil
}

// scriptedBattler answers with queued outcomes in order and records every pairing it was asked about.
// Once the queue is empty it answers FirstWins
type scriptedBattler struct {
	outcomes []Outcome
	calls    [][2]string
}

func (s *scriptedBattler) Battle(first, second Competitor) Outcome {
	s.calls = append(s.calls, [2]string{first.Name(), second.Name()})
	if len(s.outcomes) == 0 {
		return FirstWins
	}
	next := s.outcomes[0]
	s.outcomes = s.outcomes[1:]
	return next
}

// tokensFor builds engine tokens without validation, resolving names through roster
func tokensFor(roster fakeRoster, names ...string) []Token {
	tokens := make([]Token, len(names))
	for i, name := range names {
		if name == MergeMarker {
			tokens[i] = Token{Name: name}
			continue
		}
		c, _ := roster.Resolve(name)
		tokens[i] = Token{Name: name, Competitor: c}
	}
	return tokens
}

// pairing formats a match as "A v B"
func pairing(m Match) string {
	return fmt.Sprintf("%s v %s", m.First.Name(), m.Second.Name())
}

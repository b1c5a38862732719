/* registry.go
 * Contains the Registry of known teams. Bracket tokens are matched to registered teams the same way user input is
 * matched to team names elsewhere in the bot: exact (case insensitive) first, then fuzzy
 */

package team

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"bracket-bot/api/bracket"
	"bracket-bot/api/shared"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Registry holds team specs by name. It is safe for concurrent use
type Registry struct {
	mu       sync.RWMutex
	specs    map[string]shared.TeamSpec // keyed by lower case name
	strategy Strategy
}

// NewRegistry creates an empty registry whose teams all use strategy
func NewRegistry(strategy Strategy) *Registry {
	if strategy == nil {
		strategy = RotateFront{}
	}
	return &Registry{
		specs:    make(map[string]shared.TeamSpec),
		strategy: strategy,
	}
}

// Add registers spec, replacing any team with the same name.
// Preconditions: spec describes a valid team (see New)
// Postconditions: The team can be resolved by name, or an error wrapping ErrInvalidTeam is returned
func (r *Registry) Add(spec shared.TeamSpec) error {
	if _, err := FromSpec(spec, r.strategy); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.specs[strings.ToLower(spec.Name)] = spec
	return nil
}

// Names returns the registered team names in alphabetical order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.specs))
	for _, spec := range r.specs {
		names = append(names, spec.Name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered teams
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.specs)
}

// Lookup finds the spec that best matches name.
// Preconditions: None
// Postconditions: Returns the spec of an exact match if there is one, else the best ranked fuzzy match, or an error
// wrapping ErrUnknownTeam
func (r *Registry) Lookup(name string) (shared.TeamSpec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lower := strings.ToLower(name)
	if spec, ok := r.specs[lower]; ok {
		return spec, nil
	}

	keys := make([]string, 0, len(r.specs))
	for k := range r.specs {
		keys = append(keys, k)
	}
	ranks := fuzzy.RankFind(lower, keys)
	if len(ranks) == 0 {
		return shared.TeamSpec{}, fmt.Errorf("%q: %w", name, ErrUnknownTeam)
	}
	// Closest match first, alphabetical among equals so the choice does not depend on map order
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].Target < ranks[j].Target
	})
	return r.specs[ranks[0].Target], nil
}

// Resolver returns a resolver for a single bracket run. Each team named by the bracket is built fresh on first use,
// so teams start the run with no defeated opponent recorded, and repeated names resolve to the same team
func (r *Registry) Resolver() bracket.Resolver {
	built := make(map[string]*Team)
	return bracket.ResolverFunc(func(name string) (bracket.Competitor, error) {
		spec, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}
		key := strings.ToLower(spec.Name)
		if t, ok := built[key]; ok {
			return t, nil
		}
		t, err := FromSpec(spec, r.strategy)
		if err != nil {
			return nil, err
		}
		built[key] = t
		return t, nil
	})
}

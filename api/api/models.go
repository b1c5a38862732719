/* models.go
 * This file contain the helper types that are used by api consumers
 */

package api

import (
	"fmt"
	"strconv"
	"strings"

	"bracket-bot/api/shared"
)

// ParseRoster parses a roster string of the form "Name:c1,c2,c3,c4,c5;Name2:..." where the counts are the number of
// FIRE, GRASS, WATER, GHOST and NORMAL members. Blank entries are skipped
func ParseRoster(str string) ([]shared.TeamSpec, error) {
	var roster []shared.TeamSpec
	for _, entry := range strings.Split(str, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, counts, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("roster entry %q is missing ':'", entry)
		}
		spec, err := ParseTeamSpec(strings.TrimSpace(name), strings.Split(counts, ","))
		if err != nil {
			return nil, err
		}
		roster = append(roster, spec)
	}
	return roster, nil
}

// ParseTeamSpec builds a spec from a name and exactly five count strings
func ParseTeamSpec(name string, counts []string) (shared.TeamSpec, error) {
	spec := shared.TeamSpec{Name: name}
	if len(counts) != len(spec.Counts) {
		return shared.TeamSpec{}, fmt.Errorf("team %s needs %d counts but got %d", name, len(spec.Counts), len(counts))
	}
	for i, c := range counts {
		n, err := strconv.Atoi(strings.TrimSpace(c))
		if err != nil {
			return shared.TeamSpec{}, fmt.Errorf("team %s has an invalid count %q: %w", name, c, err)
		}
		spec.Counts[i] = n
	}
	return spec, nil
}

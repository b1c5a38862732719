/* api.go
 * This file contains the public methods for interacting with this package. Front-ends (bot, web, cli) should only
 * call into the bracket engine through these methods, not the sub packages directly
 */

package api

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"bracket-bot/api/bracket"
	"bracket-bot/api/meta"
	"bracket-bot/api/shared"
	"bracket-bot/api/team"
	"bracket-bot/api/tower"
)

// DefaultTowerLives is the lives an opponent starts with when none are given
const DefaultTowerLives = 3

// API provides methods for validating and running brackets over a roster of registered teams
type API struct {
	Teams   *team.Registry
	Battler bracket.Battler
}

// NewAPI creates a new API with the teams in roster registered.
// Preconditions: Receives the roster, the ordering strategy teams use in battle and the battle collaborator. A nil
// battler falls back to team.Duel
// Postconditions: Returns the API, or an error naming the first invalid team
func NewAPI(roster []shared.TeamSpec, strategy team.Strategy, battler bracket.Battler) (*API, error) {
	if battler == nil {
		battler = team.Duel{}
	}
	registry := team.NewRegistry(strategy)
	for _, spec := range roster {
		if err := registry.Add(spec); err != nil {
			return nil, fmt.Errorf("failed to register roster: %w", err)
		}
	}
	return &API{
		Teams:   registry,
		Battler: battler,
	}, nil
}

// ValidateBracket checks the structure of a bracket string and that every entrant is a registered team.
// It returns nil if the bracket can be run, or an error wrapping bracket.ErrInvalidBracket or bracket.ErrUnknownCompetitor.
// A team may only be entered once, however it is spelled
func (a *API) ValidateBracket(str string) error {
	tokens := bracket.Tokenize(str)
	if err := bracket.Validate(tokens); err != nil {
		return err
	}
	var unknown, duplicates []string
	entered := make(map[string]string) // lower case team name to the first token naming it
	for _, tok := range tokens {
		if tok == bracket.MergeMarker {
			continue
		}
		spec, err := a.Teams.Lookup(tok)
		if err != nil {
			unknown = append(unknown, tok)
			continue
		}
		key := strings.ToLower(spec.Name)
		if prev, ok := entered[key]; ok {
			duplicates = append(duplicates, fmt.Sprintf("'%s' and '%s' are both %s", prev, tok, spec.Name))
			continue
		}
		entered[key] = tok
	}
	if len(unknown) > 0 {
		return fmt.Errorf("the following teams are not registered: '%s': %w", strings.Join(unknown, "', '"), bracket.ErrUnknownCompetitor)
	}
	if len(duplicates) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(duplicates, ", "), bracket.ErrDuplicateEntrant)
	}
	return nil
}

// RunBracket plays every match of the bracket and returns them newest first.
// Each run builds fresh teams from the registry, so runs do not affect each other
func (a *API) RunBracket(str string) ([]shared.MatchLine, error) {
	e, err := a.start(str)
	if err != nil {
		return nil, err
	}
	games, err := meta.Games(e)
	if err != nil {
		return nil, err
	}

	lines := make([]shared.MatchLine, 0, len(games))
	for _, g := range games {
		lines = append(lines, shared.MatchLine{Team1: g.First.Name(), Team2: g.Second.Name(), Winner: g.Winner.Name()})
	}
	log.Printf("bracket run complete: %d matches", len(lines))
	return lines, nil
}

// RunBracketWithMetas plays every match of the bracket and returns them newest first, each with the attribute
// kinds that were trending for it
func (a *API) RunBracketWithMetas(str string) ([]shared.MatchLine, error) {
	e, err := a.start(str)
	if err != nil {
		return nil, err
	}
	annotated, err := meta.WithMetas(e)
	if err != nil {
		return nil, err
	}

	lines := make([]shared.MatchLine, 0, len(annotated))
	for _, m := range annotated {
		lines = append(lines, shared.MatchLine{Team1: m.First.Name(), Team2: m.Second.Name(), Winner: m.Winner.Name(), Metas: m.Metas})
	}
	log.Printf("bracket run with metas complete: %d matches", len(lines))
	return lines, nil
}

// GetTeams returns the names of all registered teams in alphabetical order
func (a *API) GetTeams() []string {
	return a.Teams.Names()
}

// AddTeam registers a team, replacing any team of the same name
func (a *API) AddTeam(spec shared.TeamSpec) error {
	if err := a.Teams.Add(spec); err != nil {
		return err
	}
	log.Printf("registered team %s %v", spec.Name, spec.Counts)
	return nil
}

// FormatMatches renders match lines oldest first, one per line, e.g. "1. Roark VS Gardenia: Roark advances [WATER]".
// lines are expected newest first as returned by RunBracket
func FormatMatches(lines []shared.MatchLine) string {
	if len(lines) == 0 {
		return "No matches were played"
	}
	var res strings.Builder
	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]
		res.WriteString(fmt.Sprintf("%d. %s VS %s: %s advances", len(lines)-i, line.Team1, line.Team2, line.Winner))
		if len(line.Metas) > 0 {
			res.WriteString(fmt.Sprintf(" [%s]", strings.Join(line.Metas, ", ")))
		}
		res.WriteString("\n")
	}
	res.WriteString(fmt.Sprintf("Champion: %s\n", lines[0].Winner))
	return res.String()
}

// RunTower sends challenger through a battle tower of registered opponents, fought in the order given.
// Preconditions: Receives the challenger name, the opponents with their lives, and whether to drop opponents that
// field more than one member of any kind. Names are looked up like bracket entrants
// Postconditions: Returns every round in the order fought, or an error wrapping tower.ErrInvalidTower or
// bracket.ErrUnknownCompetitor
func (a *API) RunTower(challenger string, opponents []shared.TowerEntry, avoidDuplicates bool) (shared.TowerReport, error) {
	resolve := a.Teams.Resolver()
	first, err := resolve.Resolve(challenger)
	if err != nil {
		return shared.TowerReport{}, err
	}
	entries := make([]tower.Opponent, 0, len(opponents))
	for _, o := range opponents {
		c, err := resolve.Resolve(o.Name)
		if err != nil {
			return shared.TowerReport{}, err
		}
		entries = append(entries, tower.Opponent{Competitor: c, Lives: o.Lives})
	}

	tw, err := tower.New(a.Battler, first, entries)
	if err != nil {
		return shared.TowerReport{}, err
	}
	if avoidDuplicates {
		tw.AvoidDuplicates()
	}
	rounds, err := tw.Rounds()
	if err != nil {
		return shared.TowerReport{}, err
	}

	report := shared.TowerReport{Rounds: make([]shared.TowerRound, 0, len(rounds)), Victorious: tw.Victorious()}
	for _, r := range rounds {
		result := "lost"
		switch r.Outcome {
		case bracket.FirstWins:
			result = "won"
		case bracket.Draw:
			result = "drew"
		}
		report.Rounds = append(report.Rounds, shared.TowerRound{
			Challenger: first.Name(),
			Opponent:   r.Opponent.Name(),
			Result:     result,
			LivesLeft:  r.LivesLeft,
		})
	}
	log.Printf("tower run complete for %s: %d rounds, victorious %t", first.Name(), len(rounds), report.Victorious)
	return report, nil
}

// ParseTowerEntries reads opponents written as "Name" or "Name:lives". Opponents without lives get DefaultTowerLives
func ParseTowerEntries(args []string) ([]shared.TowerEntry, error) {
	entries := make([]shared.TowerEntry, 0, len(args))
	for _, arg := range args {
		name, lives, found := strings.Cut(arg, ":")
		entry := shared.TowerEntry{Name: name, Lives: DefaultTowerLives}
		if found {
			n, err := strconv.Atoi(lives)
			if err != nil {
				return nil, fmt.Errorf("%w: lives for %s must be a number, got %q", tower.ErrInvalidTower, name, lives)
			}
			entry.Lives = n
		}
		if name == "" {
			return nil, fmt.Errorf("%w: opponent %q has no name", tower.ErrInvalidTower, arg)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// FormatTower renders a tower report one round per line, e.g. "1. Roark beat Byron (1 lives left)"
func FormatTower(report shared.TowerReport) string {
	var res strings.Builder
	for i, r := range report.Rounds {
		verb := "lost to"
		switch r.Result {
		case "won":
			verb = "beat"
		case "drew":
			verb = "drew with"
		}
		res.WriteString(fmt.Sprintf("%d. %s %s %s (%d lives left)\n", i+1, r.Challenger, verb, r.Opponent, r.LivesLeft))
	}
	if report.Victorious {
		res.WriteString("You are victorious!\n")
	} else {
		res.WriteString("Sorry, you lost!\n")
	}
	return res.String()
}

// IsUserError reports whether err was caused by the bracket or team input rather than a fault in the engine
func IsUserError(err error) bool {
	return errors.Is(err, bracket.ErrInvalidBracket) ||
		errors.Is(err, bracket.ErrUnknownCompetitor) ||
		errors.Is(err, team.ErrInvalidTeam) ||
		errors.Is(err, tower.ErrInvalidTower)
}

func (a *API) start(str string) (*bracket.Engine, error) {
	e, err := bracket.Start(str, a.Teams.Resolver(), a.Battler)
	if err != nil {
		return nil, fmt.Errorf("failed to start bracket: %w", err)
	}
	return e, nil
}

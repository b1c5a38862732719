/* meta.go
 * Contains the match log and the meta annotator. Both drain a started bracket engine and fold its matches into a
 * list that is newest first, the same order a caller gets by prepending each match as it is played.
 *
 * The meta of a match is the set of attribute kinds absent from both entrants but present in the opponents each of
 * them beat earlier: kinds that were recently competitive yet are missing from this pairing
 */

package meta

import (
	"fmt"
	"slices"

	"bracket-bot/api/bracket"
	"bracket-bot/api/typeset"
)

// Game is a pairing from the match log, in the argument order the battle was called with
type Game struct {
	First  bracket.Competitor
	Second bracket.Competitor
	Winner bracket.Competitor
}

// Annotated is a pairing with the attribute names that were trending for it
type Annotated struct {
	First  bracket.Competitor
	Second bracket.Competitor
	Winner bracket.Competitor
	Metas  []string
}

// Advancer is the part of the bracket engine the log needs
type Advancer interface {
	Advance() (bracket.Match, bool, error)
}

var _ Advancer = (*bracket.Engine)(nil)

// Games plays every remaining match of e and returns the pairings newest first.
// Preconditions: Receives a started engine
// Postconditions: Returns the pairings, or the first fatal error the engine reported
func Games(e Advancer) ([]Game, error) {
	var games []Game
	for {
		m, ok, err := e.Advance()
		if err != nil {
			return nil, fmt.Errorf("advancing bracket after %d games: %w", len(games), err)
		}
		if !ok {
			break
		}
		games = append(games, Game{First: m.First, Second: m.Second, Winner: m.Winner()})
	}
	slices.Reverse(games)
	return games, nil
}

// WithMetas plays every remaining match of e, annotating each with its meta, and returns them newest first.
// The first opponent each winner beats is recorded on the winner as a side effect.
// Preconditions: Receives a started engine whose competitors have not been through another bracket
// Postconditions: Returns the annotated pairings, or the first fatal error the engine reported
func WithMetas(e Advancer) ([]Annotated, error) {
	var annotated []Annotated
	for {
		m, ok, err := e.Advance()
		if err != nil {
			return nil, fmt.Errorf("advancing bracket after %d games: %w", len(annotated), err)
		}
		if !ok {
			break
		}
		annotated = append(annotated, Annotated{First: m.First, Second: m.Second, Winner: m.Winner(), Metas: Annotate(m)})
	}
	slices.Reverse(annotated)
	return annotated, nil
}

// Annotate computes the meta of a single match and then records the loser as the winner's first defeated opponent
// if the winner had none. The record is written after the meta so a match never feeds its own annotation.
// Returns an empty, non-nil slice unless both entrants had already beaten someone before this match
func Annotate(m bracket.Match) []string {
	winner, loser := m.Winner(), m.Loser()
	winnerPrev, loserPrev := winner.Defeated(), loser.Defeated()

	metas := []string{}
	if winnerPrev != nil && loserPrev != nil {
		metas = Trending(winner, loser, winnerPrev, loserPrev).Names()
	}

	if winnerPrev == nil {
		winner.SetDefeated(loser)
	}
	return metas
}

// Trending returns the kinds missing from both a and b that at least one of their previous opponents fielded
func Trending(a, b, aPrev, bPrev bracket.Competitor) typeset.Set {
	present := a.Attributes().Union(b.Attributes())
	absent := typeset.All.Difference(present)
	recent := aPrev.Attributes().Union(bPrev.Attributes())
	return absent.Intersect(recent)
}

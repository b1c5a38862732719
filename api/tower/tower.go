/* tower.go
 * Contains the battle tower, a gauntlet where one challenger fights a circular queue of opponents.
 * Every opponent has a number of lives. When the challenger wins or draws, the opponent loses a life and goes to the
 * back of the queue if it has any left. The run ends when the challenger loses or the queue is empty
 */

package tower

import (
	"errors"
	"fmt"

	"bracket-bot/api/bracket"
	"bracket-bot/api/typeset"
)

// MaxLives is the most lives an opponent may start with
const MaxLives = 10

var (
	ErrInvalidTower = errors.New("invalid tower")
	// ErrDuplicateOpponent is returned when a competitor appears in the tower twice, or as both challenger and opponent
	ErrDuplicateOpponent = fmt.Errorf("%w: competitor entered more than once", ErrInvalidTower)
)

// Opponent is a competitor waiting in the tower with the lives it has left
type Opponent struct {
	Competitor bracket.Competitor
	Lives      int
}

// Round is the result of one battle in the tower
type Round struct {
	Opponent bracket.Competitor
	Outcome  bracket.Outcome
	// LivesLeft is the opponent's lives after the battle
	LivesLeft int
}

// Won reports whether the challenger survived the round. A draw counts as a win, as in brackets
func (r Round) Won() bool {
	return r.Outcome.FirstSurvives()
}

// Counter is a competitor that can report its members per kind. Only such competitors can be checked for duplicates
type Counter interface {
	Counts() [typeset.Size]int
}

// Tower runs a gauntlet one battle at a time. It is not safe for concurrent use
type Tower struct {
	battler    bracket.Battler
	challenger bracket.Competitor
	queue      []Opponent
	lost       bool
	err        error
	played     int
}

// New creates a tower for challenger against opponents, who are fought in the order given.
// Preconditions: Receives the battle collaborator, the challenger and at least one opponent
// Postconditions: Returns the tower, or an error wrapping ErrInvalidTower if a competitor is missing or repeated or an
// opponent's lives are outside [1, MaxLives]
func New(battler bracket.Battler, challenger bracket.Competitor, opponents []Opponent) (*Tower, error) {
	if battler == nil || challenger == nil {
		return nil, fmt.Errorf("%w: battler and challenger are required", ErrInvalidTower)
	}
	if len(opponents) == 0 {
		return nil, fmt.Errorf("%w: no opponents", ErrInvalidTower)
	}

	seen := map[bracket.Competitor]bool{challenger: true}
	for _, o := range opponents {
		if o.Competitor == nil {
			return nil, fmt.Errorf("%w: opponent is missing", ErrInvalidTower)
		}
		if seen[o.Competitor] {
			return nil, fmt.Errorf("%s: %w", o.Competitor.Name(), ErrDuplicateOpponent)
		}
		seen[o.Competitor] = true
		if o.Lives < 1 || o.Lives > MaxLives {
			return nil, fmt.Errorf("%w: %s has %d lives, must be between 1 and %d", ErrInvalidTower, o.Competitor.Name(), o.Lives, MaxLives)
		}
	}

	return &Tower{
		battler:    battler,
		challenger: challenger,
		queue:      append([]Opponent(nil), opponents...),
	}, nil
}

// AvoidDuplicates removes every opponent that fields more than one member of any kind. Opponents that cannot report
// their counts are kept. The order of the remaining opponents is unchanged
func (t *Tower) AvoidDuplicates() {
	kept := t.queue[:0]
	for _, o := range t.queue {
		if c, ok := o.Competitor.(Counter); ok && hasDuplicates(c.Counts()) {
			continue
		}
		kept = append(kept, o)
	}
	t.queue = kept
}

func hasDuplicates(counts [typeset.Size]int) bool {
	for _, c := range counts {
		if c > 1 {
			return true
		}
	}
	return false
}

// Next fights the opponent at the front of the queue.
// Preconditions: None. Calling Next after the run has ended is the way to detect the end
// Postconditions: Returns the round and true, or false once the challenger has lost or no opponents remain. An invalid
// outcome from the battler is returned as an error and ends the run
func (t *Tower) Next() (Round, bool, error) {
	if t.err != nil {
		return Round{}, false, t.err
	}
	if t.lost || len(t.queue) == 0 {
		return Round{}, false, nil
	}

	opponent := t.queue[0]
	t.queue = t.queue[1:]

	outcome := t.battler.Battle(t.challenger, opponent.Competitor)
	if !outcome.Valid() {
		t.err = fmt.Errorf("%s vs %s returned %d: %w", t.challenger.Name(), opponent.Competitor.Name(), int(outcome), bracket.ErrInvalidOutcome)
		return Round{}, false, t.err
	}

	round := Round{Opponent: opponent.Competitor, Outcome: outcome, LivesLeft: opponent.Lives}
	if round.Won() {
		round.LivesLeft--
		if round.LivesLeft > 0 {
			t.queue = append(t.queue, Opponent{Competitor: opponent.Competitor, Lives: round.LivesLeft})
		}
	} else {
		t.queue = append([]Opponent{opponent}, t.queue...)
		t.lost = true
	}
	t.played++
	return round, true, nil
}

// Victorious reports whether every opponent has run out of lives without the challenger losing
func (t *Tower) Victorious() bool {
	return t.err == nil && !t.lost && len(t.queue) == 0
}

// Remaining returns the number of opponents still in the tower, including one that beat the challenger
func (t *Tower) Remaining() int {
	return len(t.queue)
}

// Played returns the number of battles fought so far
func (t *Tower) Played() int {
	return t.played
}

// Rounds fights until the run ends and returns every round in the order fought
func (t *Tower) Rounds() ([]Round, error) {
	var rounds []Round
	for {
		r, ok, err := t.Next()
		if err != nil {
			return nil, fmt.Errorf("tower failed after %d rounds: %w", len(rounds), err)
		}
		if !ok {
			return rounds, nil
		}
		rounds = append(rounds, r)
	}
}

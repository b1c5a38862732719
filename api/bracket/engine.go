/* engine.go
 * Contains the bracket engine. The engine is pull based: each call to Advance plays exactly one match and leaves
 * enough state behind for the next call to carry on where it stopped.
 *
 * primary holds the tokens not yet consumed with the first token on top. pending holds the results that are
 * available to merge (entrants moved off primary and winners of earlier matches). mergeChain counts merge markers
 * that immediately followed a merge and are still owed against the top of pending; they are drained one per call
 * before primary is touched again
 */

package bracket

import (
	"errors"
	"fmt"

	"bracket-bot/api/stack"
)

// Engine resolves a started bracket one match at a time. It is not safe for concurrent use
type Engine struct {
	battler    Battler
	primary    *stack.Stack[Token]
	pending    *stack.Stack[Competitor]
	mergeChain int
	state      State
	err        error
	played     int
}

// Start validates a bracket string, resolves every competitor token and returns an engine ready to Advance.
// Preconditions: Receives a bracket string, a resolver for its competitor tokens and the battle collaborator
// Postconditions: Returns the engine in the Idle state, or an error wrapping ErrInvalidBracket before any match is played.
// Two tokens that resolve to the same competitor are rejected with ErrDuplicateEntrant
func Start(bracket string, resolver Resolver, battler Battler) (*Engine, error) {
	if resolver == nil || battler == nil {
		return nil, errors.New("bracket: resolver and battler are required")
	}

	names := Tokenize(bracket)
	if err := Validate(names); err != nil {
		return nil, err
	}

	tokens := make([]Token, len(names))
	entered := make(map[Competitor]string)
	for i, name := range names {
		if name == MergeMarker {
			tokens[i] = Token{Name: name}
			continue
		}
		competitor, err := resolver.Resolve(name)
		if err != nil {
			return nil, fmt.Errorf("resolving %q: %w", name, err)
		}
		if competitor == nil {
			return nil, fmt.Errorf("resolving %q: %w", name, ErrUnknownCompetitor)
		}
		if prev, ok := entered[competitor]; ok {
			return nil, fmt.Errorf("%q and %q are both %s: %w", prev, name, competitor.Name(), ErrDuplicateEntrant)
		}
		entered[competitor] = name
		tokens[i] = Token{Name: name, Competitor: competitor}
	}

	return newEngine(tokens, battler)
}

// newEngine loads tokens onto primary in reverse so that the first token is on top. It does not validate
func newEngine(tokens []Token, battler Battler) (*Engine, error) {
	e := &Engine{
		battler: battler,
		primary: stack.New[Token](len(tokens)),
		pending: stack.New[Competitor](len(tokens)),
	}
	for i := len(tokens) - 1; i >= 0; i-- {
		if err := e.primary.Push(tokens[i]); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInternal, err)
		}
	}
	return e, nil
}

// State returns where the engine is in its lifecycle
func (e *Engine) State() State {
	return e.state
}

// Played returns the number of matches produced so far
func (e *Engine) Played() int {
	return e.played
}

// Advance plays the next match of the bracket.
// Preconditions: None. Calling Advance on an exhausted engine is the way to detect the end of the bracket
// Postconditions: Returns the match and true, or false once no matches remain. A non-nil error is fatal: the engine
// moves to the Failed state and keeps returning the same error
func (e *Engine) Advance() (Match, bool, error) {
	switch e.state {
	case Exhausted:
		return Match{}, false, nil
	case Failed:
		return Match{}, false, e.err
	case Idle:
		e.state = Running
	}

	var (
		match Match
		err   error
	)
	switch {
	case e.mergeChain > 0:
		match, err = e.playTop()
		if err == nil {
			e.mergeChain--
		}
	case !e.primary.IsEmpty():
		var ok bool
		match, ok, err = e.nextFromPrimary()
		if err == nil && !ok {
			e.state = Exhausted
			return Match{}, false, nil
		}
	default:
		e.state = Exhausted
		return Match{}, false, nil
	}

	if err != nil {
		e.state = Failed
		e.err = err
		return Match{}, false, err
	}

	e.played++
	if e.mergeChain == 0 && e.primary.IsEmpty() && e.pending.Len() <= 1 {
		e.state = Exhausted
	}
	return match, true, nil
}

// nextFromPrimary moves entrants onto pending until a merge marker is reached, folds any markers directly behind it
// into mergeChain and plays the merge. It reports false when primary runs out without a merge
func (e *Engine) nextFromPrimary() (Match, bool, error) {
	for !e.primary.IsEmpty() {
		tok, err := e.primary.Pop()
		if err != nil {
			return Match{}, false, fmt.Errorf("%w: %w", ErrInternal, err)
		}
		if !tok.IsMerge() {
			if err := e.pending.Push(tok.Competitor); err != nil {
				return Match{}, false, fmt.Errorf("%w: %w", ErrInternal, err)
			}
			continue
		}

		for {
			next, err := e.primary.Peek()
			if err != nil || !next.IsMerge() {
				break
			}
			if _, err := e.primary.Pop(); err != nil {
				return Match{}, false, fmt.Errorf("%w: %w", ErrInternal, err)
			}
			e.mergeChain++
		}

		match, err := e.playTop()
		if err != nil {
			return Match{}, false, err
		}
		return match, true, nil
	}
	return Match{}, false, nil
}

// playTop battles the two results on top of pending and pushes the survivor back
func (e *Engine) playTop() (Match, error) {
	second, err := e.pending.Pop()
	if err != nil {
		return Match{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	first, err := e.pending.Pop()
	if err != nil {
		return Match{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	outcome := e.battler.Battle(first, second)
	if !outcome.Valid() {
		return Match{}, fmt.Errorf("%s vs %s returned %d: %w", first.Name(), second.Name(), int(outcome), ErrInvalidOutcome)
	}

	match := Match{First: first, Second: second, Outcome: outcome}
	if err := e.pending.Push(match.Winner()); err != nil {
		return Match{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return match, nil
}

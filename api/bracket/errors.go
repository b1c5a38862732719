/* errors.go
 * Contains the sentinel errors returned by the bracket package. Callers should branch with errors.Is
 */

package bracket

import "errors"

var (
	// ErrInvalidBracket is the class of every structural bracket error. The more specific reasons below wrap it
	ErrInvalidBracket = errors.New("invalid bracket")

	ErrEmptyBracket       = newReason("bracket has no entrants")
	ErrLeadingMerge       = newReason("bracket cannot open with a merge marker")
	ErrMergeUnderflow     = newReason("merge marker has fewer than two results to merge")
	ErrUnresolvedEntrants = newReason("bracket does not reduce to a single winner")
	ErrDuplicateEntrant   = newReason("bracket enters the same competitor more than once")

	// ErrUnknownCompetitor is returned when a resolver cannot map a token to a competitor
	ErrUnknownCompetitor = errors.New("unknown competitor")

	// ErrInvalidOutcome is returned when a Battler answers with a code outside {0, 1, 2}
	ErrInvalidOutcome = errors.New("battle returned an invalid outcome")

	// ErrInternal marks a broken engine invariant, such as a stack underflow on a validated bracket
	ErrInternal = errors.New("bracket engine invariant violated")
)

// reason is an error that also matches ErrInvalidBracket
type reason struct {
	msg string
}

func newReason(msg string) error {
	return &reason{msg: msg}
}

func (r *reason) Error() string {
	return ErrInvalidBracket.Error() + ": " + r.msg
}

func (r *reason) Unwrap() error {
	return ErrInvalidBracket
}

/* tokens.go
 * Contains the tokenizer and structural validator for bracket strings.
 * A bracket is a whitespace separated list of competitor names and merge markers (+) in postfix order,
 * e.g. "A B + C D + +" is the semi finals A v B and C v D followed by a final between their winners
 */

package bracket

import (
	"fmt"
	"strings"
)

// MergeMarker is the token that reduces the two most recent results to one winner
const MergeMarker = "+"

// Token is a single element of a started bracket. Merge markers carry no competitor
type Token struct {
	Name       string
	Competitor Competitor
}

// IsMerge reports whether the token is a merge marker
func (t Token) IsMerge() bool {
	return t.Name == MergeMarker
}

// Tokenize splits a bracket string on whitespace
func Tokenize(bracket string) []string {
	return strings.Fields(bracket)
}

// Validate checks that tokens describe a single elimination bracket.
// Preconditions: Receives the tokens of a bracket string
// Postconditions: Returns nil when every merge has two results available and exactly one result remains at the end,
// otherwise an error wrapping ErrInvalidBracket that names the position of the problem
func Validate(tokens []string) error {
	if len(tokens) == 0 {
		return ErrEmptyBracket
	}
	if tokens[0] == MergeMarker {
		return ErrLeadingMerge
	}

	depth := 0
	for i, tok := range tokens {
		if tok != MergeMarker {
			depth++
			continue
		}
		if depth < 2 {
			return fmt.Errorf("token %d: %w", i+1, ErrMergeUnderflow)
		}
		depth--
	}

	if depth != 1 {
		return fmt.Errorf("%d results left unmerged: %w", depth, ErrUnresolvedEntrants)
	}
	return nil
}

// IsValid reports whether the bracket string is structurally valid
func IsValid(bracket string) bool {
	return Validate(Tokenize(bracket)) == nil
}

// Entrants counts the competitor tokens in a bracket string
func Entrants(bracket string) int {
	count := 0
	for _, tok := range Tokenize(bracket) {
		if tok != MergeMarker {
			count++
		}
	}
	return count
}

/* typeset.go
 * Contains the fixed universe set used to reason about which attribute kinds a team fields.
 * The universe is small (5 kinds) so a set is a single byte and every operation is O(1)
 */

package typeset

import "fmt"

// Kind is an attribute kind in the range [1, Size]
type Kind int

const (
	Fire Kind = iota + 1
	Grass
	Water
	Ghost
	Normal
)

// Size is the number of kinds in the universe
const Size = 5

var kindNames = [Size]string{"FIRE", "GRASS", "WATER", "GHOST", "NORMAL"}

// String returns the upper case name of the kind, e.g. FIRE
func (k Kind) String() string {
	if k < 1 || k > Size {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k-1]
}

// Set is a bitset over the kinds. Bit k-1 is set when kind k is present.
// The zero value is the empty set and two sets are equal when == is true
type Set uint8

// All contains every kind in the universe
const All Set = 1<<Size - 1

// FromVector builds a set from a presence vector where index i describes kind i+1
func FromVector(present [Size]bool) Set {
	var s Set
	for i, ok := range present {
		if ok {
			s = s.Add(Kind(i + 1))
		}
	}
	return s
}

// Add returns a copy of s with k marked present.
// Preconditions: k is in [1, Size]. Anything else is a programming error and panics
func (s Set) Add(k Kind) Set {
	if k < 1 || k > Size {
		panic(fmt.Sprintf("typeset: kind %d outside universe [1,%d]", int(k), Size))
	}
	return s | 1<<(k-1)
}

// Union returns the kinds present in either set
func (s Set) Union(other Set) Set {
	return s | other
}

// Difference returns the kinds of s that are not in other
func (s Set) Difference(other Set) Set {
	return s &^ other
}

// Intersect returns the kinds present in both sets
func (s Set) Intersect(other Set) Set {
	return s & other
}

// Complement returns the kinds of the universe missing from s
func (s Set) Complement() Set {
	return All.Difference(s)
}

// Contains reports whether k is in the set. Kinds outside the universe are never contained
func (s Set) Contains(k Kind) bool {
	if k < 1 || k > Size {
		return false
	}
	return s&(1<<(k-1)) != 0
}

// Equal reports whether both sets hold exactly the same kinds
func (s Set) Equal(other Set) bool {
	return s == other
}

// IsEmpty reports whether no kind is present
func (s Set) IsEmpty() bool {
	return s == 0
}

// Kinds lists the present kinds in universe order
func (s Set) Kinds() []Kind {
	var kinds []Kind
	for k := Kind(1); k <= Size; k++ {
		if s.Contains(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Names lists the names of the present kinds in universe order. An empty set gives an empty, non-nil slice
func (s Set) Names() []string {
	names := []string{}
	for _, k := range s.Kinds() {
		names = append(names, k.String())
	}
	return names
}

// String formats the set as {FIRE, WATER}
func (s Set) String() string {
	return fmt.Sprintf("%v", s.Names())
}

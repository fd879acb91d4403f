package clinic

import (
	"fmt"
	"strings"
)

// Profile identifies a person by name and date of birth. Name matching is
// case-insensitive; the date of birth must match exactly.
type Profile struct {
	FirstName   string
	LastName    string
	DateOfBirth Date
}

// Equal reports whether two profiles identify the same person.
func (p Profile) Equal(other Profile) bool {
	return strings.EqualFold(p.FirstName, other.FirstName) &&
		strings.EqualFold(p.LastName, other.LastName) &&
		p.DateOfBirth == other.DateOfBirth
}

// Compare orders profiles by last name, then first name (both
// case-insensitive), then date of birth.
func (p Profile) Compare(other Profile) int {
	if c := compareFold(p.LastName, other.LastName); c != 0 {
		return c
	}
	if c := compareFold(p.FirstName, other.FirstName); c != 0 {
		return c
	}
	return p.DateOfBirth.Compare(other.DateOfBirth)
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// String renders "First Last M/D/YYYY".
func (p Profile) String() string {
	return fmt.Sprintf("%s %s %s", p.FirstName, p.LastName, p.DateOfBirth)
}

package radix

import "fmt"

// DuplicateError is returned by Tree.Add when the exact pattern being
// inserted already has a payload attached to it.
type DuplicateError struct {
	Pattern string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("radix: pattern %q already registered", e.Pattern)
}

// SharedKeyError is returned by Tree.Add when the pattern being
// inserted would introduce a named parameter with a different name
// than an existing sibling at the same branching position. A
// position in the tree can carry only one parameter name.
type SharedKeyError struct {
	Pattern  string
	Existing string
	New      string
}

func (e *SharedKeyError) Error() string {
	return fmt.Sprintf(
		"radix: conflicting parameter names %q and %q at the same position in pattern %q",
		e.Existing, e.New, e.Pattern,
	)
}

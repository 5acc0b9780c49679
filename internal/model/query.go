package model

// Action selects what a query reports.
type Action byte

const (
	// ActionCount reports only the number of partitions.
	ActionCount Action = '#'
	// ActionList reports every partition followed by the count.
	ActionList Action = '?'
)

// Valid reports whether a is one of the known actions.
func (a Action) Valid() bool {
	return a == ActionCount || a == ActionList
}

// WantSolutions reports whether the action asks for the solution listing.
func (a Action) WantSolutions() bool {
	return a == ActionList
}

func (a Action) String() string {
	return string(rune(a))
}

// Query is one validated input record.
type Query struct {
	Index  int // 1-based position in the input
	Action Action
	Digits Digits
}

// Result is the outcome of enumerating one digit string.
type Result struct {
	Count     int64
	Solutions string // formatted lines, empty unless requested
	Capped    bool   // true when the length cap bypassed the search
}

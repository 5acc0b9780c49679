package domain

import m "github.com/natiilollll/Code-Sequence-Validator/internal/model"

// IsEven reports whether the numeric value of c is even. Only the last digit matters.
// An empty code is never even.
func IsEven(c m.Code) bool {
	if len(c) == 0 {
		return false
	}

	return (c[len(c)-1]-'0')%2 == 0
}

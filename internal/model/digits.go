// Package model defines the data structures shared by the enumerator and its callers.
package model

import "strings"

// Digits is a string over the alphabet '0'..'9'.
type Digits string

// Code is a non-empty contiguous run of digits used as one element of a partition.
// It may carry leading zeros.
type Code string

// Partition is an ordered sequence of codes whose concatenation reproduces the digits.
type Partition []Code

// Len returns the number of digits.
func (d Digits) Len() int {
	return len(d)
}

// Slice returns the code covering d[from:to].
func (d Digits) Slice(from, to int) Code {
	return Code(d[from:to])
}

// String joins the codes back into the digit string they cover.
func (p Partition) String() string {
	var sb strings.Builder

	for _, c := range p {
		sb.WriteString(string(c))
	}

	return sb.String()
}

// Last returns the final code and true, or false for an empty partition.
func (p Partition) Last() (Code, bool) {
	if len(p) == 0 {
		return "", false
	}

	return p[len(p)-1], true
}

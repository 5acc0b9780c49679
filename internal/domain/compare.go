package domain

import (
	"strings"

	m "github.com/natiilollll/Code-Sequence-Validator/internal/model"
)

// Compare orders two codes by numeric value, ignoring leading zeros.
// It returns -1, 0 or +1. Both codes must consist of digits only.
func Compare(a, b m.Code) int {
	sa := strings.TrimLeft(string(a), "0")
	sb := strings.TrimLeft(string(b), "0")

	switch {
	case len(sa) < len(sb):
		return -1
	case len(sa) > len(sb):
		return 1
	}

	// Same width: digit-wise order is numeric order.
	return strings.Compare(sa, sb)
}

package domain

import m "github.com/natiilollll/Code-Sequence-Validator/internal/model"

const (
	solutionPrefix    = "* "
	solutionSeparator = ','
)

// FormatPartition renders p as a solution line: "* c1,c2,...,cn\n".
func FormatPartition(p m.Partition) string {
	return string(AppendPartition(nil, p))
}

// AppendPartition appends the solution line for p to dst and returns the extended buffer.
func AppendPartition(dst []byte, p m.Partition) []byte {
	dst = append(dst, solutionPrefix...)

	for i, c := range p {
		if i > 0 {
			dst = append(dst, solutionSeparator)
		}

		dst = append(dst, c...)
	}

	return append(dst, '\n')
}

// partitionLineLen is the exact byte length of the line AppendPartition writes for p.
func partitionLineLen(p m.Partition) int {
	n := len(solutionPrefix) + 1

	for i, c := range p {
		if i > 0 {
			n++
		}

		n += len(c)
	}

	return n
}

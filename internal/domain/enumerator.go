package domain

import (
	"fmt"
	"math"

	m "github.com/natiilollll/Code-Sequence-Validator/internal/model"
)

// enumerator walks every partition of digits that satisfies the ordering rule.
// It owns its backtracking stack, counter and output buffer, so one enumerator
// serves exactly one query.
type enumerator struct {
	digits    m.Digits
	list      bool
	maxOutput int // 0 means unbounded

	stack m.Partition
	count int64
	out   []byte
}

func newEnumerator(digits m.Digits, list bool, maxOutput int) *enumerator {
	return &enumerator{
		digits:    digits,
		list:      list,
		maxOutput: maxOutput,
		stack:     make(m.Partition, 0, digits.Len()),
	}
}

// run enumerates from offset 0 and returns the first error that stopped the search.
func (e *enumerator) run() error {
	return e.walk(0)
}

func (e *enumerator) walk(offset int) error {
	if offset == e.digits.Len() {
		return e.accept()
	}

	last, hasLast := e.stack.Last()
	mustNotDecrease := hasLast && IsEven(last)

	for end := offset + 1; end <= e.digits.Len(); end++ {
		segment := e.digits.Slice(offset, end)

		// A shorter segment can still be larger once leading zeros are involved,
		// so a rejected length never ends the loop.
		if mustNotDecrease && Compare(segment, last) < 0 {
			continue
		}

		e.stack = append(e.stack, segment)
		err := e.walk(end)
		e.stack = e.stack[:len(e.stack)-1]

		if err != nil {
			return err
		}
	}

	return nil
}

// accept records the partition currently on the stack.
func (e *enumerator) accept() error {
	if e.count == math.MaxInt64 {
		return ErrCountOverflow
	}

	e.count++

	if !e.list {
		return nil
	}

	if e.maxOutput > 0 && len(e.out)+partitionLineLen(e.stack) > e.maxOutput {
		return fmt.Errorf("%w: more than %d bytes after %d solutions", ErrOutputLimit, e.maxOutput, e.count-1)
	}

	e.out = AppendPartition(e.out, e.stack)

	return nil
}

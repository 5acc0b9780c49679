package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/natiilollll/Code-Sequence-Validator/internal/model"
)

func TestFormatPartition(t *testing.T) {
	tests := []struct {
		name string
		in   m.Partition
		want string
	}{
		{name: "empty partition", in: nil, want: "* \n"},
		{name: "single code", in: m.Partition{"1"}, want: "* 1\n"},
		{name: "codes keep leading zeros", in: m.Partition{"0", "012", "3"}, want: "* 0,012,3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatPartition(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, partitionLineLen(tt.in))
		})
	}
}

func TestAppendPartition_ExtendsBuffer(t *testing.T) {
	buf := AppendPartition([]byte("* 1\n"), m.Partition{"2", "2"})
	assert.Equal(t, "* 1\n* 2,2\n", string(buf))
}

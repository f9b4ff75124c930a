package numberutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToUint(t *testing.T) {
	cases := []struct {
		in   string
		want uint
		ok   bool
	}{
		{"1", 1, true},
		{" 42 ", 42, true},
		{"0", 0, false},
		{"", 0, false},
		{"-3", 0, false},
		{"+3", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
		{"٣", 0, false},
		{"99999999999999999999999", 0, false},
	}
	for _, c := range cases {
		got, ok := ToUint(c.in)
		assert.Equal(t, c.ok, ok, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestToUintPtr(t *testing.T) {
	assert.Nil(t, ToUintPtr("nope"))
	if assert.NotNil(t, ToUintPtr("7")) {
		assert.Equal(t, uint(7), *ToUintPtr("7"))
	}
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRandomID(t *testing.T) {
	a := NewRandomID()
	b := NewRandomID()

	assert.NotEqual(t, a, b)
	assert.True(t, IsValidID(a))
	assert.True(t, IsValidID(b))
}

func TestIsValidID(t *testing.T) {
	cases := []struct {
		Name   string
		Given  string
		Expect bool
	}{
		{"Empty", "", false},
		{"Garbage", "not-an-id", false},
		{"Valid", "0b4b3d8e-4a41-4a8e-8b3f-0e1f6d0c4d2a", true},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, c.Expect, IsValidID(c.Given))
		})
	}
}

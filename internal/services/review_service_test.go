// internal/services/review_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundRating(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{5, 5},
		{4.25, 4.3},
		{4.24, 4.2},
		{3.333333, 3.3},
		{2.666666, 2.7},
		{1.05, 1.1},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, RoundRating(c.in), "RoundRating(%v)", c.in)
	}
}

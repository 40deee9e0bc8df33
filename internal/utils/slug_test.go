// internal/utils/slug_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Wireless Headphones", "wireless-headphones"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Multi   space", "multi-space"},
		{"Café & Bar", "café-bar"},
		{"100% Cotton T-Shirt", "100-cotton-t-shirt"},
		{"UPPER", "upper"},
		{"---", ""},
		{"", ""},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Slugify(c.in), "Slugify(%q)", c.in)
	}
}

package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountLabel(t *testing.T) {
	tests := []struct {
		n        int
		singular string
		plural   string
		want     string
	}{
		{0, "follower", "followers", "0 followers"},
		{1, "follower", "followers", "1 follower"},
		{2, "follower", "followers", "2 followers"},
		{1, "following", "following", "1 following"},
		{2, "following", "following", "2 following"},
		{3, "post", "posts", "3 posts"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, CountLabel(tt.n, tt.singular, tt.plural))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello there", 6, "hello…"},
		{"one", "hello", 1, "…"},
		{"zero", "hello", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.max))
		})
	}
}

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Science & Nature!  ", "science-nature"},
		{"What's the Capital?", "what-s-the-capital"},
		{"Café Culture Quiz", "cafe-culture-quiz"},
		{"Moon Landing-1969", "moon-landing-1969"},
		{"---", ""},
		{"90s Pop -- Hits", "90s-pop-hits"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugify_Deterministic(t *testing.T) {
	title := "The Ultimate Physics Challenge"
	assert.Equal(t, Slugify(title), Slugify(title))
}

func TestIntBetween(t *testing.T) {
	r := fixedRand{n: 3}
	assert.Equal(t, 8, IntBetween(r, 5, 10))
	assert.Equal(t, 5, IntBetween(r, 5, 5))
}

func TestNewULID(t *testing.T) {
	a, b := NewULID(), NewULID()
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
	assert.Less(t, a, b)
}

type fixedRand struct{ n int }

func (f fixedRand) IntN(int) int { return f.n }

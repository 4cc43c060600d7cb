package lessons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllReturnsCopy(t *testing.T) {
	first := All()
	require.NotEmpty(t, first)

	first[0].Slug = "mutated"

	second := All()
	assert.NotEqual(t, "mutated", second[0].Slug, "All must not expose the backing array")
}

func TestBySlug(t *testing.T) {
	for _, l := range All() {
		got, ok := BySlug(l.Slug)
		require.True(t, ok, "lesson %q should be found", l.Slug)
		assert.Equal(t, l, got)
	}

	_, ok := BySlug("no-such-lesson")
	assert.False(t, ok)
}

func TestManifestShape(t *testing.T) {
	seen := map[string]bool{}
	for _, l := range All() {
		assert.False(t, seen[l.Slug], "duplicate slug %q", l.Slug)
		seen[l.Slug] = true

		assert.NotEmpty(t, l.Title, "%s: title", l.Slug)
		assert.NotEmpty(t, l.Term, "%s: term", l.Slug)
		assert.NotEmpty(t, l.Summary, "%s: summary", l.Slug)
		assert.Equal(t, "lessons/"+l.Slug, l.Dir())
	}

	// Reading order matters: the dispatch chapter builds on abstraction,
	// which builds on everything before it.
	var order []string
	for _, l := range All() {
		order = append(order, l.Slug)
	}
	assert.Equal(t, []string{
		"objects",
		"visibility",
		"encapsulation",
		"lifecycle",
		"inheritance",
		"abstraction",
		"polymorphism",
		"generics",
	}, order)
}

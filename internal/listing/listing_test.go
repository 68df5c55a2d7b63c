package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDStable(t *testing.T) {
	a := ID("Acme", "SWE Intern", "NYC, NY", "Software Engineering")
	b := ID("Acme", "SWE Intern", "NYC, NY", "Software Engineering")
	require.Equal(t, a, b)
	assert.Equal(t, "Acme_SWE_Intern_NYC__NY_Software_Engineering", a)
}

func TestIDChangesWithAnyField(t *testing.T) {
	base := ID("Acme", "SWE Intern", "NYC", "Software Engineering")

	assert.NotEqual(t, base, ID("Acme2", "SWE Intern", "NYC", "Software Engineering"))
	assert.NotEqual(t, base, ID("Acme", "Backend Intern", "NYC", "Software Engineering"))
	assert.NotEqual(t, base, ID("Acme", "SWE Intern", "Remote", "Software Engineering"))
	assert.NotEqual(t, base, ID("Acme", "SWE Intern", "NYC", "Quantitative Finance"))
}

func TestIDMergesSubstitutedCharacters(t *testing.T) {
	// Space, slash and comma all map to underscore, so listings differing
	// only in those characters collapse to one key. Known tradeoff.
	a := ID("Acme", "SWE/ML Intern", "NYC", "Software Engineering")
	b := ID("Acme", "SWE ML Intern", "NYC", "Software Engineering")
	assert.Equal(t, a, b)
}

func TestNewExcludesObservedAtFromID(t *testing.T) {
	l1 := New("Acme", "SWE Intern", "NYC", "Software Engineering")
	l2 := New("Acme", "SWE Intern", "NYC", "Software Engineering")
	require.Equal(t, l1.ID, l2.ID)
	assert.False(t, l1.ObservedAt.IsZero())
}

package generator

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDefaults(t *testing.T) {
	g, err := New(Options{Seed: 7})
	require.NoError(t, err)
	assert.Equal(t, 30, g.Size())

	d := g.Generate()
	require.NoError(t, d.Validate())
	require.Len(t, d.Records, 30)
	assert.Equal(t, uint64(7), d.Seed)

	for i, r := range d.Records {
		assert.Equal(t, DefaultStartDate.AddDate(0, 0, i), r.Date, "dates stay ordered")
		assert.False(t, r.Labelled())
	}
	assert.Equal(t, "2025-04-30", d.Records[29].Day())
}

func TestGenerateKeepsPoolMultiset(t *testing.T) {
	g, err := New(Options{Seed: 42})
	require.NoError(t, err)

	got := g.Generate().Comments()
	var want []string
	for i := 0; i < DefaultReplicas; i++ {
		want = append(want, DefaultPool...)
	}
	sort.Strings(got)
	sort.Strings(want)
	assert.Equal(t, want, got)
}

func TestGenerateSeeded(t *testing.T) {
	a, err := New(Options{Seed: 99})
	require.NoError(t, err)
	b, err := New(Options{Seed: 99})
	require.NoError(t, err)

	assert.Equal(t, a.Generate().Comments(), b.Generate().Comments())
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestGenerateUnseededDrawsSeed(t *testing.T) {
	g, err := New(Options{})
	require.NoError(t, err)
	assert.NotZero(t, g.Generate().Seed)
}

func TestFingerprintChangesWithInputs(t *testing.T) {
	base, err := New(Options{Seed: 1})
	require.NoError(t, err)

	variants := []Options{
		{Seed: 2},
		{Seed: 1, Replicas: 2},
		{Seed: 1, StartDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)},
		{Seed: 1, Pool: []string{"only one comment"}},
	}
	for _, opts := range variants {
		g, err := New(opts)
		require.NoError(t, err)
		assert.NotEqual(t, base.Fingerprint(), g.Fingerprint())
	}
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	_, err := New(Options{Replicas: -1})
	assert.Error(t, err)

	_, err = New(Options{Pool: []string{"ok", ""}})
	assert.Error(t, err)
}

func TestGenerateUsesClock(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g, err := New(Options{Seed: 3, Now: func() time.Time { return fixed }})
	require.NoError(t, err)
	assert.Equal(t, fixed, g.Generate().GeneratedAt)
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
- id: 1
  title: "first"
  filename: "first.jpg"
  date: "2025-06-11"
- id: 2
  title: "second"
  filename: "second.jpg"
  date: "2025-06-11"
- id: 3
  title: "third"
  filename: "third.png"
  date: "2025-07-01"
  description: "Oil on linen"
`

func newSample(t *testing.T) *Catalog {
	t.Helper()
	c, err := Parse([]byte(sample))
	require.NoError(t, err)
	return c
}

func ids(items []Artwork) []int {
	out := make([]int, 0, len(items))
	for _, a := range items {
		out = append(out, a.ID)
	}
	return out
}

func TestSortedNewestFirstStable(t *testing.T) {
	c := newSample(t)
	assert.Equal(t, []int{3, 1, 2}, ids(c.Sorted()))
}

func TestByID(t *testing.T) {
	c := newSample(t)

	a, ok := c.ByID(3)
	require.True(t, ok)
	assert.Equal(t, "Oil on linen", a.Description)
	assert.Equal(t, "2025-07-01", a.Date.Format(dateLayout))

	_, ok = c.ByID(99)
	assert.False(t, ok)

	assert.True(t, c.Has(2))
	assert.False(t, c.Has(-1))
}

func TestLatest(t *testing.T) {
	c := newSample(t)
	assert.Equal(t, []int{3}, ids(c.Latest(1)))
	assert.Equal(t, []int{3, 1, 2}, ids(c.Latest(0)))
	assert.Len(t, c.Latest(10), 3)
}

func TestAdjacent(t *testing.T) {
	c := newSample(t)

	prev, next := c.Adjacent(3)
	assert.Nil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, 1, *next)

	prev, next = c.Adjacent(2)
	require.NotNil(t, prev)
	assert.Equal(t, 1, *prev)
	assert.Nil(t, next)

	prev, next = c.Adjacent(42)
	assert.Nil(t, prev)
	assert.Nil(t, next)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("- id: 1\n  date: \"June\"\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("- id: 1\n  date: \"2025-01-01\"\n- id: 1\n  date: \"2025-01-02\"\n"))
	assert.Error(t, err)
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	assert.Equal(t, 47, c.Len())
	assert.Equal(t, 47, c.Latest(1)[0].ID)
}

func TestParseSanitizesDescription(t *testing.T) {
	c, err := Parse([]byte(`
- id: 5
  title: "marked up"
  filename: "m.jpg"
  date: "2025-01-02"
  description: '<p>Oil <script>alert(1)</script>on <b onclick="x()">linen</b></p>'
`))
	require.NoError(t, err)

	a, ok := c.ByID(5)
	require.True(t, ok)
	assert.Equal(t, "<p>Oil on <b>linen</b></p>", a.Description)
}

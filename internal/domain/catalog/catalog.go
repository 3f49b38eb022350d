// Package catalog is the fixed, read-only list of published artworks.
package catalog

import (
	_ "embed"
	"fmt"
	"slices"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// DefaultLatest is how many artworks Latest returns when asked for none.
const DefaultLatest = 3

// descriptionPolicy limits descriptions to the inline markup the gallery
// renders; scripts, styles and event handlers are dropped.
var descriptionPolicy = bluemonday.UGCPolicy()

//go:embed artworks.yaml
var artworksYAML []byte

type Artwork struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Filename    string    `json:"filename"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
}

type entry struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	Filename    string `yaml:"filename"`
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
}

// Catalog holds artworks in insertion order plus a date-sorted view.
type Catalog struct {
	items  []Artwork
	sorted []Artwork
	byID   map[int]int
}

// Default loads the embedded catalog. It panics on malformed data since the
// file ships with the binary.
func Default() *Catalog {
	c, err := Parse(artworksYAML)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse reads a YAML list of artworks. Ids must be unique and dates use
// YYYY-MM-DD. Descriptions may carry light HTML and are sanitized.
func Parse(data []byte) (*Catalog, error) {
	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("catalog: decoding: %w", err)
	}

	items := make([]Artwork, 0, len(entries))
	for _, e := range entries {
		d, err := time.Parse(dateLayout, e.Date)
		if err != nil {
			return nil, fmt.Errorf("catalog: artwork %d: bad date %q: %w", e.ID, e.Date, err)
		}
		items = append(items, Artwork{
			ID:          e.ID,
			Title:       e.Title,
			Filename:    e.Filename,
			Date:        d,
			Description: descriptionPolicy.Sanitize(e.Description),
		})
	}
	return New(items)
}

func New(items []Artwork) (*Catalog, error) {
	c := &Catalog{
		items: slices.Clone(items),
		byID:  make(map[int]int, len(items)),
	}
	for i, a := range c.items {
		if _, dup := c.byID[a.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate artwork id %d", a.ID)
		}
		c.byID[a.ID] = i
	}

	// newest first; SortStableFunc keeps insertion order for equal dates
	c.sorted = slices.Clone(c.items)
	slices.SortStableFunc(c.sorted, func(a, b Artwork) int {
		return b.Date.Compare(a.Date)
	})
	return c, nil
}

func (c *Catalog) Len() int { return len(c.items) }

func (c *Catalog) ByID(id int) (Artwork, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Artwork{}, false
	}
	return c.items[i], true
}

// Has reports whether id is in the catalog.
func (c *Catalog) Has(id int64) bool {
	if id < 0 || id > int64(^uint(0)>>1) {
		return false
	}
	_, ok := c.byID[int(id)]
	return ok
}

// Sorted returns every artwork, newest first.
func (c *Catalog) Sorted() []Artwork {
	return slices.Clone(c.sorted)
}

// Latest returns the n newest artworks (DefaultLatest when n <= 0).
func (c *Catalog) Latest(n int) []Artwork {
	if n <= 0 {
		n = DefaultLatest
	}
	if n > len(c.sorted) {
		n = len(c.sorted)
	}
	return slices.Clone(c.sorted[:n])
}

// Adjacent returns the ids before and after id in newest-first order. Both
// are nil when id is unknown.
func (c *Catalog) Adjacent(id int) (prev, next *int) {
	idx := slices.IndexFunc(c.sorted, func(a Artwork) bool { return a.ID == id })
	if idx < 0 {
		return nil, nil
	}
	if idx > 0 {
		p := c.sorted[idx-1].ID
		prev = &p
	}
	if idx < len(c.sorted)-1 {
		n := c.sorted[idx+1].ID
		next = &n
	}
	return prev, next
}

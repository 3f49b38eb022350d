package origin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllow(t *testing.T) {
	p := Policy{
		Origins: []string{"https://gallery.example", "https://gallery.pages.dev", "http://localhost:3000"},
		Suffix:  ".gallery.pages.dev",
	}

	tests := []struct {
		name   string
		origin string
		want   string
	}{
		{"exact match", "http://localhost:3000", "http://localhost:3000"},
		{"preview subdomain", "https://a1b2c3.gallery.pages.dev", "https://a1b2c3.gallery.pages.dev"},
		{"unknown falls back to first", "https://evil.example", "https://gallery.example"},
		{"missing origin falls back", "", "https://gallery.example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.Allow(tt.origin)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllowStrict(t *testing.T) {
	p := Policy{Origins: []string{"https://gallery.example"}, Suffix: ".gallery.pages.dev", Strict: true}

	_, ok := p.Allow("https://evil.example")
	assert.False(t, ok)

	got, ok := p.Allow("https://x.gallery.pages.dev")
	assert.True(t, ok)
	assert.Equal(t, "https://x.gallery.pages.dev", got)
}

func TestMatchesWithoutSuffix(t *testing.T) {
	p := Policy{Origins: []string{"https://gallery.example"}}
	assert.False(t, p.Matches("https://sub.gallery.example"))
	assert.True(t, p.Matches("https://gallery.example"))
}

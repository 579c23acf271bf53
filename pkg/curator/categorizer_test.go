package curator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/startupwire/startupwire/pkg/lexicon"
)

func TestCategorizer_Categories(t *testing.T) {
	c := NewCategorizer(lexicon.Default())

	t.Run("two matches assign category", func(t *testing.T) {
		got := c.Categories("Fintech startup launches UPI product",
			"The payments company expects rapid growth.")
		assert.Equal(t, []string{"fintech"}, got)
	})

	t.Run("single match is below threshold", func(t *testing.T) {
		got := c.Categories("Company adds lending arm", "The business grows steadily.")
		assert.Equal(t, []string{FallbackCategory}, got)
	})

	t.Run("repeat occurrences count", func(t *testing.T) {
		// one term appearing twice clears the threshold on its own
		got := c.Categories("Telemedicine is growing", "Telemedicine adoption doubled last year.")
		assert.Equal(t, []string{"healthtech"}, got)
	})

	t.Run("multiple categories", func(t *testing.T) {
		got := c.Categories("Healthtech and edtech startups raise funding",
			"The healthcare platform and the education company both announced learning and diagnostics products.")
		assert.Contains(t, got, "healthtech")
		assert.Contains(t, got, "edtech")
	})

	t.Run("no match falls back to general", func(t *testing.T) {
		got := c.Categories("Weather report", "Sunny with light winds.")
		assert.Equal(t, []string{FallbackCategory}, got)
	})

	t.Run("never empty", func(t *testing.T) {
		assert.NotEmpty(t, c.Categories("", ""))
	})
}

func TestCategorizer_Keywords(t *testing.T) {
	c := NewCategorizer(lexicon.Default())

	t.Run("collects present terms once", func(t *testing.T) {
		got := c.Keywords("Startup funding news from Bengaluru",
			"The startup closed its funding round in Bengaluru, India.")
		assert.Contains(t, got, "startup")
		assert.Contains(t, got, "funding")
		assert.Contains(t, got, "bengaluru")
		assert.Contains(t, got, "india")

		seen := map[string]int{}
		for _, kw := range got {
			seen[kw]++
		}
		for kw, n := range seen {
			assert.Equal(t, 1, n, "keyword %q duplicated", kw)
		}
	})

	t.Run("no threshold, single occurrence is enough", func(t *testing.T) {
		got := c.Keywords("Valuation talk", "Nothing else matches.")
		assert.Contains(t, got, "valuation")
	})

	t.Run("no matches yields empty list", func(t *testing.T) {
		assert.Empty(t, c.Keywords("Weather", "Sunny all week."))
	})
}

package catalog

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	c := Builtin()

	assert.Len(t, c.Destinations(), 6)
	assert.Equal(t, []Theme{Heritage, Nightlife, Adventure, Wellness, Shopping, Food}, c.Themes())

	food, ok := c.ActivitiesFor(Food)
	require.True(t, ok)
	require.Len(t, food, 2)
	assert.Equal(t, int64(800), food[0].Cost)
	assert.Equal(t, int64(1500), food[1].Cost)

	goa, ok := c.Destination("goa")
	assert.True(t, ok)
	assert.Equal(t, "Goa", goa.Name)

	_, ok = c.Destination("atlantis")
	assert.False(t, ok)
}

func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	c := Builtin()

	// when
	food, _ := c.ActivitiesFor(Food)
	food[0].Cost = 1
	themes := c.Themes()
	themes[0] = "changed"

	// then
	again, _ := c.ActivitiesFor(Food)
	assert.Equal(t, int64(800), again[0].Cost)
	assert.Equal(t, Heritage, c.Themes()[0])
}

func TestCatalog_Places(t *testing.T) {
	c := Builtin()

	t.Run("should filter by destination and category", func(t *testing.T) {
		restaurants := c.Places("delhi", Restaurant)

		require.Len(t, restaurants, 1)
		assert.Equal(t, "Karim's", restaurants[0].Name)
		assert.Len(t, c.Places("delhi", ""), 4)
		assert.Empty(t, c.Places("atlantis", ""))
	})

	t.Run("should suggest places rated at least 4.2", func(t *testing.T) {
		suggestions := c.Suggestions("delhi", nil)

		require.Len(t, suggestions, 3)
		assert.Equal(t, "delhi-3", suggestions[0].Id)
		assert.Equal(t, "delhi-2", suggestions[1].Id)
		assert.Equal(t, "delhi-1", suggestions[2].Id)
	})

	t.Run("should rank the remaining places after exclusions", func(t *testing.T) {
		suggestions := c.Suggestions("rajasthan", []string{"rajasthan-3"})

		require.Len(t, suggestions, 3)
		assert.Equal(t, []string{"rajasthan-1", "rajasthan-4", "rajasthan-2"}, []string{suggestions[0].Id, suggestions[1].Id, suggestions[2].Id})
	})

	t.Run("should not let callers modify the catalog", func(t *testing.T) {
		places := c.Places("goa", "")
		places[0].Name = "changed"

		assert.Equal(t, "Baga Beach", c.Places("goa", "")[0].Name)
	})

	t.Run("should not center a destination without places", func(t *testing.T) {
		_, _, ok := New(nil, nil, nil).Center("goa")

		assert.False(t, ok)
	})
}

func TestParseCategory(t *testing.T) {
	category, err := ParseCategory("hotel")
	require.NoError(t, err)
	assert.Equal(t, Hotel, category)

	_, err = ParseCategory("")
	assert.Error(t, err)
	_, err = ParseCategory("Hotel")
	assert.Error(t, err)
}

func TestActivity_FindAlternative(t *testing.T) {
	adventure, _ := Builtin().ActivitiesFor(Adventure)

	alt, ok := adventure[0].FindAlternative("adventure-1b")
	require.True(t, ok)
	assert.Equal(t, "Indoor Surf Simulator", alt.Name)

	asActivity := alt.AsActivity()
	assert.Equal(t, alt.Cost, asActivity.Cost)
	assert.Empty(t, asActivity.Alternatives)

	_, ok = adventure[1].FindAlternative("adventure-1b")
	assert.False(t, ok)
}

const testCatalogYAML = `
themes: [food, beach]
destinations:
  - id: lisbon
    name: Lisbon
    region: Lisboa
    country: Portugal
    description: Hills and trams
activities:
  food:
    - id: pastel
      name: Pastel de Nata Tasting
      duration: 1 hour
      cost: 400
      location: Belem
    - id: fado
      name: Fado Dinner
      duration: 2h30m
      cost: 4500
  beach:
    - id: surf
      name: Surf Lesson
      duration: 3 hours
      cost: 3000
      alternativereason: Storm
      alternatives:
        - id: aquarium
          name: Oceanarium Visit
          theme: indoor
          duration: 90 minutes
          cost: 2200
places:
  - id: jeronimos
    destinationid: lisbon
    name: Jeronimos Monastery
    category: attraction
    lat: 38.6979
    lng: -9.2068
    cost: 1000
    rating: 4.7
    address: Praca do Imperio, Lisboa
  - id: ramiro
    destinationid: lisbon
    name: Cervejaria Ramiro
    category: restaurant
    rating: 4.5
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_LoadFromFile(t *testing.T) {
	// given
	loader := NewLoader(writeCatalog(t, testCatalogYAML))

	// when
	c, err := loader.Load()

	// then
	require.NoError(t, err)
	assert.Equal(t, []Theme{"food", "beach"}, c.Themes())

	food, ok := c.ActivitiesFor("food")
	require.True(t, ok)
	require.Len(t, food, 2)
	assert.Equal(t, "pastel", food[0].Id)
	assert.Equal(t, 60, food[0].DurationMinutes)
	assert.Equal(t, 150, food[1].DurationMinutes)
	assert.Equal(t, Theme("food"), food[1].Theme)

	beach, _ := c.ActivitiesFor("beach")
	require.Len(t, beach[0].Alternatives, 1)
	assert.Equal(t, "Storm", beach[0].AlternativeReason)
	assert.Equal(t, Theme("indoor"), beach[0].Alternatives[0].Theme)
	assert.Equal(t, 90, beach[0].Alternatives[0].DurationMinutes)

	lisbon, ok := c.Destination("lisbon")
	require.True(t, ok)
	assert.Equal(t, "Portugal", lisbon.Country)

	places := c.Places("lisbon", "")
	require.Len(t, places, 2)
	assert.Equal(t, Attraction, places[0].Category)
	assert.Equal(t, -9.2068, places[0].Lng)
	assert.Equal(t, int64(1000), places[0].Cost)
	assert.Equal(t, []Place{places[1]}, c.Places("lisbon", Restaurant))
}

func TestLoader_EmptyPathUsesBuiltin(t *testing.T) {
	c, err := NewLoader("").Load()

	require.NoError(t, err)
	assert.Len(t, c.Destinations(), 6)
}

func TestLoader_LoadsOnce(t *testing.T) {
	// given
	path := writeCatalog(t, testCatalogYAML)
	loader := NewLoader(path)

	// when
	var wg sync.WaitGroup
	results := make([]*Catalog, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = loader.Load()
		}(i)
	}
	wg.Wait()
	require.NoError(t, os.Remove(path))
	again, err := loader.Load()

	// then
	require.NoError(t, err)
	for _, c := range results {
		assert.Same(t, results[0], c)
	}
	assert.Same(t, results[0], again)
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "missing.yaml")).Load()

	assert.Error(t, err)
}

func TestLoader_RejectsInvalidCatalogs(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative cost", "activities:\n  food:\n    - {id: a, name: A, cost: -1}\n"},
		{"cost above the limit", "activities:\n  food:\n    - {id: a, name: A, cost: 1000000000001}\n"},
		{"alternative cost above the limit", "activities:\n  food:\n    - id: a\n      name: A\n      alternatives:\n        - {id: b, name: B, cost: 9223372036854775807}\n"},
		{"duplicate activity", "activities:\n  food:\n    - {id: a, name: A}\n  art:\n    - {id: a, name: B}\n"},
		{"duplicate destination", "destinations:\n  - {id: x, name: X}\n  - {id: x, name: Y}\n"},
		{"undeclared theme", "themes: [food]\nactivities:\n  art:\n    - {id: a, name: A}\n"},
		{"bad duration", "activities:\n  food:\n    - {id: a, name: A, duration: forever}\n"},
		{"missing name", "activities:\n  food:\n    - {id: a}\n"},
		{"place of unknown destination", "places:\n  - {id: p, name: P, destinationid: nowhere, category: hotel}\n"},
		{"unknown place category", "destinations:\n  - {id: x, name: X}\nplaces:\n  - {id: p, name: P, destinationid: x, category: museum}\n"},
		{"place rating above five", "destinations:\n  - {id: x, name: X}\nplaces:\n  - {id: p, name: P, destinationid: x, category: hotel, rating: 5.5}\n"},
		{"duplicate place", "destinations:\n  - {id: x, name: X}\nplaces:\n  - {id: p, name: P, destinationid: x, category: hotel}\n  - {id: p, name: Q, destinationid: x, category: hotel}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader(writeCatalog(t, tt.content)).Load()

			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestLoader_AcceptsCostAtLimit(t *testing.T) {
	c, err := NewLoader(writeCatalog(t, "activities:\n  food:\n    - {id: a, name: A, cost: 1000000000000}\n")).Load()

	require.NoError(t, err)
	activities, ok := c.ActivitiesFor(Food)
	require.True(t, ok)
	assert.Equal(t, MaxCost, activities[0].Cost)
}

func TestParseDurationMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"3 hours", 180, false},
		{"1 hour", 60, false},
		{"1.5 hrs", 90, false},
		{"45 minutes", 45, false},
		{"2 days", 2880, false},
		{"2h30m", 150, false},
		{"soon", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDurationMinutes(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

package catalog

import (
	"cmp"
	"fmt"
	"slices"
)

type Category string

const (
	Attraction Category = "attraction"
	Hotel      Category = "hotel"
	Restaurant Category = "restaurant"
)

var categories = []Category{Attraction, Hotel, Restaurant}

// ParseCategory returns the category named s. The empty string is not a category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !slices.Contains(categories, c) {
		return "", fmt.Errorf("unknown place category %q", s)
	}
	return c, nil
}

const (
	minSuggestionRating = 4.2
	maxSuggestions      = 3
)

// Place is a point of interest shown on a destination's map.
type Place struct {
	Id            string
	DestinationId string
	Name          string
	Category      Category
	Lat           float64
	Lng           float64
	Description   string
	// Cost is a typical spend per person; zero for free places.
	Cost    int64
	Image   string
	Rating  float64
	Address string
}

// Places returns the places of a destination in catalog order. An empty category matches
// every place.
func (c *Catalog) Places(destinationId string, category Category) []Place {
	places := make([]Place, 0)
	for _, p := range c.places {
		if p.DestinationId == destinationId && (category == "" || p.Category == category) {
			places = append(places, p)
		}
	}
	return places
}

// Suggestions returns up to three well rated places of a destination, best first, leaving
// out the excluded ids.
func (c *Catalog) Suggestions(destinationId string, exclude []string) []Place {
	suggestions := slices.DeleteFunc(c.Places(destinationId, ""), func(p Place) bool {
		return p.Rating < minSuggestionRating || slices.Contains(exclude, p.Id)
	})
	slices.SortStableFunc(suggestions, func(a, b Place) int {
		return cmp.Compare(b.Rating, a.Rating)
	})
	return suggestions[:min(len(suggestions), maxSuggestions)]
}

// Center is the mean position of a destination's places. ok is false when the destination
// has none.
func (c *Catalog) Center(destinationId string) (lat, lng float64, ok bool) {
	places := c.Places(destinationId, "")
	if len(places) == 0 {
		return 0, 0, false
	}
	for _, p := range places {
		lat += p.Lat
		lng += p.Lng
	}
	n := float64(len(places))
	return lat / n, lng / n, true
}

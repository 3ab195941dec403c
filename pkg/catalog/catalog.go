package catalog

import "slices"

type Theme string

type Destination struct {
	Id          string
	Name        string
	Region      string
	Country     string
	Description string
	Image       string
}

type Activity struct {
	Id   string
	Name string
	// Theme is the pool the activity belongs to.
	Theme Theme
	// Duration is the human-readable duration, e.g. "3 hours".
	Duration        string
	DurationMinutes int
	// Cost is expressed in the smallest currency unit.
	Cost        int64
	Description string
	Location    string
	Image       string
	// AlternativeReason is the condition under which Alternatives should be offered, e.g. "Rain".
	AlternativeReason string
	Alternatives      []Alternative
}

// Alternative is a substitute for an Activity. It cannot carry alternatives of its own.
type Alternative struct {
	Id              string
	Name            string
	Theme           Theme
	Duration        string
	DurationMinutes int
	Cost            int64
	Description     string
	Location        string
	Image           string
}

// AsActivity converts the alternative into a plain activity without alternatives.
func (a Alternative) AsActivity() Activity {
	return Activity{
		Id:              a.Id,
		Name:            a.Name,
		Theme:           a.Theme,
		Duration:        a.Duration,
		DurationMinutes: a.DurationMinutes,
		Cost:            a.Cost,
		Description:     a.Description,
		Location:        a.Location,
		Image:           a.Image,
	}
}

// FindAlternative returns the alternative with the given id.
func (a Activity) FindAlternative(id string) (Alternative, bool) {
	for _, alt := range a.Alternatives {
		if alt.Id == id {
			return alt, true
		}
	}
	return Alternative{}, false
}

// Catalog is the read-only reference data the planner draws from.
// It must not be modified after construction; accessors hand out copies.
type Catalog struct {
	destinations      []Destination
	themes            []Theme
	activitiesByTheme map[Theme][]Activity
	places            []Place
}

func New(destinations []Destination, themes []Theme, activitiesByTheme map[Theme][]Activity, places ...Place) *Catalog {
	byTheme := make(map[Theme][]Activity, len(activitiesByTheme))
	for theme, activities := range activitiesByTheme {
		byTheme[theme] = slices.Clone(activities)
	}
	return &Catalog{
		destinations:      slices.Clone(destinations),
		themes:            slices.Clone(themes),
		activitiesByTheme: byTheme,
		places:            slices.Clone(places),
	}
}

func (c *Catalog) Destinations() []Destination {
	return slices.Clone(c.destinations)
}

func (c *Catalog) Destination(id string) (Destination, bool) {
	for _, d := range c.destinations {
		if d.Id == id {
			return d, true
		}
	}
	return Destination{}, false
}

func (c *Catalog) Themes() []Theme {
	return slices.Clone(c.themes)
}

// HasTheme reports whether the theme is known to the catalog, even when its pool is empty.
func (c *Catalog) HasTheme(theme Theme) bool {
	_, ok := c.activitiesByTheme[theme]
	return ok
}

// ActivitiesFor returns the activities of a theme in catalog order.
func (c *Catalog) ActivitiesFor(theme Theme) ([]Activity, bool) {
	activities, ok := c.activitiesByTheme[theme]
	if !ok {
		return nil, false
	}
	return slices.Clone(activities), true
}

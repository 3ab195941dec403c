package catalog

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// MaxCost bounds every cost read from a catalog file, so that itinerary totals stay far
// from int64 overflow.
const MaxCost int64 = 1_000_000_000_000

// Loader loads the catalog exactly once. Concurrent callers of Load block until the
// first load has finished and then all observe the same result.
type Loader struct {
	path    string
	once    sync.Once
	catalog *Catalog
	err     error
}

// NewLoader returns a loader reading the YAML catalog at path, or the built-in catalog
// when path is empty.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

func (l *Loader) Load() (*Catalog, error) {
	l.once.Do(func() {
		l.catalog, l.err = l.load()
	})
	return l.catalog, l.err
}

func (l *Loader) load() (*Catalog, error) {
	if l.path == "" {
		log.Info("Using built-in activity catalog")
		return Builtin(), nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(l.path), yaml.Parser()); err != nil {
		log.Errorf("error loading catalog from %s: %v", l.path, err)
		return nil, fmt.Errorf("failed to load catalog file %s: %w", l.path, err)
	}

	var f catalogFile
	if err := k.Unmarshal("", &f); err != nil {
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", l.path, err)
	}

	c, err := f.toCatalog()
	if err != nil {
		log.Errorf("catalog file %s rejected: %v", l.path, err)
		return nil, err
	}
	log.Infof("Loaded activity catalog from %s: %d destinations, %d themes, %d places", l.path, len(c.destinations), len(c.themes), len(c.places))
	return c, nil
}

type catalogFile struct {
	Themes       []string                  `koanf:"themes"`
	Destinations []destinationFile         `koanf:"destinations"`
	Activities   map[string][]activityFile `koanf:"activities"`
	Places       []placeFile               `koanf:"places"`
}

type destinationFile struct {
	Id          string `koanf:"id"`
	Name        string `koanf:"name"`
	Region      string `koanf:"region"`
	Country     string `koanf:"country"`
	Description string `koanf:"description"`
	Image       string `koanf:"image"`
}

type activityFile struct {
	Id                string            `koanf:"id"`
	Name              string            `koanf:"name"`
	Duration          string            `koanf:"duration"`
	DurationMinutes   int               `koanf:"durationminutes"`
	Cost              int64             `koanf:"cost"`
	Description       string            `koanf:"description"`
	Location          string            `koanf:"location"`
	Image             string            `koanf:"image"`
	AlternativeReason string            `koanf:"alternativereason"`
	Alternatives      []alternativeFile `koanf:"alternatives"`
}

type placeFile struct {
	Id            string  `koanf:"id"`
	DestinationId string  `koanf:"destinationid"`
	Name          string  `koanf:"name"`
	Category      string  `koanf:"category"`
	Lat           float64 `koanf:"lat"`
	Lng           float64 `koanf:"lng"`
	Description   string  `koanf:"description"`
	Cost          int64   `koanf:"cost"`
	Image         string  `koanf:"image"`
	Rating        float64 `koanf:"rating"`
	Address       string  `koanf:"address"`
}

type alternativeFile struct {
	Id              string `koanf:"id"`
	Name            string `koanf:"name"`
	Theme           string `koanf:"theme"`
	Duration        string `koanf:"duration"`
	DurationMinutes int    `koanf:"durationminutes"`
	Cost            int64  `koanf:"cost"`
	Description     string `koanf:"description"`
	Location        string `koanf:"location"`
	Image           string `koanf:"image"`
}

func (f catalogFile) toCatalog() (*Catalog, error) {
	destinations := make([]Destination, 0, len(f.Destinations))
	seenDestinations := map[string]bool{}
	for _, d := range f.Destinations {
		if d.Id == "" || d.Name == "" {
			return nil, fmt.Errorf("%w: destination requires id and name", ErrInvalidCatalog)
		}
		if seenDestinations[d.Id] {
			return nil, fmt.Errorf("%w: duplicate destination id %q", ErrInvalidCatalog, d.Id)
		}
		seenDestinations[d.Id] = true
		destinations = append(destinations, Destination(d))
	}

	themeNames := f.Themes
	if len(themeNames) == 0 {
		for name := range f.Activities {
			themeNames = append(themeNames, name)
		}
		slices.Sort(themeNames)
	}

	themes := make([]Theme, 0, len(themeNames))
	seenActivities := map[string]bool{}
	byTheme := make(map[Theme][]Activity, len(themeNames))
	for _, name := range themeNames {
		theme := Theme(name)
		if _, dup := byTheme[theme]; dup {
			return nil, fmt.Errorf("%w: duplicate theme %q", ErrInvalidCatalog, name)
		}
		activities := make([]Activity, 0, len(f.Activities[name]))
		for _, a := range f.Activities[name] {
			if seenActivities[a.Id] {
				return nil, fmt.Errorf("%w: duplicate activity id %q", ErrInvalidCatalog, a.Id)
			}
			seenActivities[a.Id] = true
			activity, err := a.toActivity(theme)
			if err != nil {
				return nil, err
			}
			activities = append(activities, activity)
		}
		themes = append(themes, theme)
		byTheme[theme] = activities
	}
	for name := range f.Activities {
		if _, ok := byTheme[Theme(name)]; !ok {
			return nil, fmt.Errorf("%w: activities listed for undeclared theme %q", ErrInvalidCatalog, name)
		}
	}

	places := make([]Place, 0, len(f.Places))
	seenPlaces := map[string]bool{}
	for _, p := range f.Places {
		if seenPlaces[p.Id] {
			return nil, fmt.Errorf("%w: duplicate place id %q", ErrInvalidCatalog, p.Id)
		}
		seenPlaces[p.Id] = true
		place, err := p.toPlace(seenDestinations)
		if err != nil {
			return nil, err
		}
		places = append(places, place)
	}

	return New(destinations, themes, byTheme, places...), nil
}

func (p placeFile) toPlace(destinations map[string]bool) (Place, error) {
	if p.Id == "" || p.Name == "" {
		return Place{}, fmt.Errorf("%w: place requires id and name", ErrInvalidCatalog)
	}
	if !destinations[p.DestinationId] {
		return Place{}, fmt.Errorf("%w: place %q refers to unknown destination %q", ErrInvalidCatalog, p.Id, p.DestinationId)
	}
	category, err := ParseCategory(p.Category)
	if err != nil {
		return Place{}, fmt.Errorf("%w: place %q: %v", ErrInvalidCatalog, p.Id, err)
	}
	if err := checkCost(p.Cost); err != nil {
		return Place{}, fmt.Errorf("%w: place %q: %v", ErrInvalidCatalog, p.Id, err)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return Place{}, fmt.Errorf("%w: place %q has rating %.1f outside 0 to 5", ErrInvalidCatalog, p.Id, p.Rating)
	}
	if p.Lat < -90 || p.Lat > 90 || p.Lng < -180 || p.Lng > 180 {
		return Place{}, fmt.Errorf("%w: place %q has invalid coordinates", ErrInvalidCatalog, p.Id)
	}
	return Place{
		Id:            p.Id,
		DestinationId: p.DestinationId,
		Name:          p.Name,
		Category:      category,
		Lat:           p.Lat,
		Lng:           p.Lng,
		Description:   p.Description,
		Cost:          p.Cost,
		Image:         p.Image,
		Rating:        p.Rating,
		Address:       p.Address,
	}, nil
}

func (a activityFile) toActivity(theme Theme) (Activity, error) {
	if a.Id == "" || a.Name == "" {
		return Activity{}, fmt.Errorf("%w: activity in theme %q requires id and name", ErrInvalidCatalog, theme)
	}
	if err := checkCost(a.Cost); err != nil {
		return Activity{}, fmt.Errorf("%w: activity %q: %v", ErrInvalidCatalog, a.Id, err)
	}
	minutes, err := resolveMinutes(a.Duration, a.DurationMinutes)
	if err != nil {
		return Activity{}, fmt.Errorf("%w: activity %q: %v", ErrInvalidCatalog, a.Id, err)
	}

	alternatives := make([]Alternative, 0, len(a.Alternatives))
	for _, alt := range a.Alternatives {
		if alt.Id == "" || alt.Name == "" {
			return Activity{}, fmt.Errorf("%w: alternative of %q requires id and name", ErrInvalidCatalog, a.Id)
		}
		if err := checkCost(alt.Cost); err != nil {
			return Activity{}, fmt.Errorf("%w: alternative %q: %v", ErrInvalidCatalog, alt.Id, err)
		}
		altMinutes, err := resolveMinutes(alt.Duration, alt.DurationMinutes)
		if err != nil {
			return Activity{}, fmt.Errorf("%w: alternative %q: %v", ErrInvalidCatalog, alt.Id, err)
		}
		altTheme := Theme(alt.Theme)
		if altTheme == "" {
			altTheme = theme
		}
		alternatives = append(alternatives, Alternative{
			Id:              alt.Id,
			Name:            alt.Name,
			Theme:           altTheme,
			Duration:        alt.Duration,
			DurationMinutes: altMinutes,
			Cost:            alt.Cost,
			Description:     alt.Description,
			Location:        alt.Location,
			Image:           alt.Image,
		})
	}

	return Activity{
		Id:                a.Id,
		Name:              a.Name,
		Theme:             theme,
		Duration:          a.Duration,
		DurationMinutes:   minutes,
		Cost:              a.Cost,
		Description:       a.Description,
		Location:          a.Location,
		Image:             a.Image,
		AlternativeReason: a.AlternativeReason,
		Alternatives:      alternatives,
	}, nil
}

func checkCost(cost int64) error {
	switch {
	case cost < 0:
		return fmt.Errorf("negative cost %d", cost)
	case cost > MaxCost:
		return fmt.Errorf("cost %d exceeds %d", cost, MaxCost)
	}
	return nil
}

func resolveMinutes(text string, minutes int) (int, error) {
	if minutes < 0 {
		return 0, fmt.Errorf("negative duration")
	}
	if minutes > 0 || text == "" {
		return minutes, nil
	}
	return ParseDurationMinutes(text)
}

// ParseDurationMinutes normalizes free-text durations such as "3 hours", "45 minutes",
// "1.5 hrs" or Go duration strings like "2h30m" into whole minutes.
func ParseDurationMinutes(text string) (int, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	if len(fields) == 2 {
		value, err := strconv.ParseFloat(fields[0], 64)
		if err == nil && value >= 0 {
			unit := fields[1]
			switch {
			case strings.HasPrefix(unit, "h"):
				return int(math.Round(value * 60)), nil
			case strings.HasPrefix(unit, "m"):
				return int(math.Round(value)), nil
			case strings.HasPrefix(unit, "d"):
				return int(math.Round(value * 24 * 60)), nil
			}
		}
	}
	if len(fields) == 1 {
		d, err := time.ParseDuration(fields[0])
		if err == nil && d >= 0 {
			return int(d.Minutes()), nil
		}
	}
	return 0, fmt.Errorf("unrecognized duration %q", text)
}

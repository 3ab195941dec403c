package catalog

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/smarttravellers/tripplanner/internal/rest"
)

type DestinationDTO struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Region      string `json:"region"`
	Country     string `json:"country"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

type ThemeDTO struct {
	Id         string `json:"id"`
	Activities int    `json:"activities"`
}

type ActivityDTO struct {
	Id                string           `json:"id"`
	Name              string           `json:"name"`
	Theme             string           `json:"theme"`
	Duration          string           `json:"duration"`
	DurationMinutes   int              `json:"durationMinutes"`
	Cost              int64            `json:"cost"`
	Description       string           `json:"description"`
	Location          string           `json:"location"`
	Image             string           `json:"image,omitempty"`
	AlternativeReason string           `json:"alternativeReason,omitempty"`
	Alternatives      []AlternativeDTO `json:"alternatives,omitempty"`
}

type AlternativeDTO struct {
	Id              string `json:"id"`
	Name            string `json:"name"`
	Theme           string `json:"theme"`
	Duration        string `json:"duration"`
	DurationMinutes int    `json:"durationMinutes"`
	Cost            int64  `json:"cost"`
	Description     string `json:"description"`
	Location        string `json:"location"`
	Image           string `json:"image,omitempty"`
}

type PlaceDTO struct {
	Id            string  `json:"id"`
	DestinationId string  `json:"destinationId"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	Description   string  `json:"description"`
	Cost          int64   `json:"cost"`
	Image         string  `json:"image,omitempty"`
	Rating        float64 `json:"rating"`
	Address       string  `json:"address"`
}

type PlaceListDTO struct {
	Center *CoordinatesDTO `json:"center,omitempty"`
	Places []PlaceDTO      `json:"places"`
}

type CoordinatesDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Handler struct {
	catalog *Catalog
}

func NewHandler(c *Catalog) *Handler {
	return &Handler{catalog: c}
}

// ListDestinations godoc
// @Summary List destinations
// @Tags Catalog
// @Produce json
// @Success 200 {array} DestinationDTO
// @Router /api/destination [get]
func (h *Handler) ListDestinations(w http.ResponseWriter, r *http.Request) {
	log.Debug("Listing destinations")
	destinations := h.catalog.Destinations()
	dtos := make([]DestinationDTO, 0, len(destinations))
	for _, d := range destinations {
		dtos = append(dtos, DestinationToDTO(d))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

// GetDestination godoc
// @Summary Get a destination
// @Tags Catalog
// @Produce json
// @Param destinationId path string true "Destination ID"
// @Success 200 {object} DestinationDTO
// @Failure 404 {object} rest.ErrorDTO "Destination not found"
// @Router /api/destination/{destinationId} [get]
func (h *Handler) GetDestination(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["destinationId"]
	log.Debugf("Getting destination %s", id)
	destination, ok := h.catalog.Destination(id)
	if !ok {
		rest.WriteError(w, http.StatusNotFound, fmt.Errorf("destination %q not found", id), "")
		return
	}
	rest.WriteJSON(w, http.StatusOK, DestinationToDTO(destination))
}

// ListThemes godoc
// @Summary List themes with the number of activities each offers
// @Tags Catalog
// @Produce json
// @Success 200 {array} ThemeDTO
// @Router /api/theme [get]
func (h *Handler) ListThemes(w http.ResponseWriter, r *http.Request) {
	log.Debug("Listing themes")
	themes := h.catalog.Themes()
	dtos := make([]ThemeDTO, 0, len(themes))
	for _, t := range themes {
		activities, _ := h.catalog.ActivitiesFor(t)
		dtos = append(dtos, ThemeDTO{Id: string(t), Activities: len(activities)})
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

// ListActivities godoc
// @Summary List the activities of a theme
// @Tags Catalog
// @Produce json
// @Param theme path string true "Theme"
// @Success 200 {array} ActivityDTO
// @Failure 404 {object} rest.ErrorDTO "Theme not found"
// @Router /api/theme/{theme}/activity [get]
func (h *Handler) ListActivities(w http.ResponseWriter, r *http.Request) {
	theme := Theme(mux.Vars(r)["theme"])
	log.Debugf("Listing activities for theme %s", theme)
	activities, ok := h.catalog.ActivitiesFor(theme)
	if !ok {
		rest.WriteError(w, http.StatusNotFound, fmt.Errorf("theme %q not found", theme), "unknown_theme")
		return
	}
	rest.WriteJSON(w, http.StatusOK, ActivitiesToDTO(activities))
}

// ListPlaces godoc
// @Summary List the places of a destination
// @Tags Catalog
// @Produce json
// @Param destinationId path string true "Destination ID"
// @Param category query string false "attraction, hotel or restaurant"
// @Success 200 {object} PlaceListDTO
// @Failure 404 {object} rest.ErrorDTO "Destination not found"
// @Failure 422 {object} rest.ErrorDTO "Unknown category"
// @Router /api/destination/{destinationId}/place [get]
func (h *Handler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["destinationId"]
	if _, ok := h.catalog.Destination(id); !ok {
		rest.WriteError(w, http.StatusNotFound, fmt.Errorf("destination %q not found", id), "")
		return
	}
	var category Category
	if raw := r.URL.Query().Get("category"); raw != "" {
		var err error
		if category, err = ParseCategory(raw); err != nil {
			rest.WriteError(w, http.StatusUnprocessableEntity, err, "unknown_category")
			return
		}
	}
	log.Debugf("Listing places of %s, category %q", id, category)

	dto := PlaceListDTO{Places: PlacesToDTO(h.catalog.Places(id, category))}
	if lat, lng, ok := h.catalog.Center(id); ok {
		dto.Center = &CoordinatesDTO{Lat: lat, Lng: lng}
	}
	rest.WriteJSON(w, http.StatusOK, dto)
}

// SuggestPlaces godoc
// @Summary Suggest well rated places of a destination
// @Tags Catalog
// @Produce json
// @Param destinationId path string true "Destination ID"
// @Param exclude query string false "Comma separated place ids to leave out"
// @Success 200 {array} PlaceDTO
// @Failure 404 {object} rest.ErrorDTO "Destination not found"
// @Router /api/destination/{destinationId}/place/suggestion [get]
func (h *Handler) SuggestPlaces(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["destinationId"]
	if _, ok := h.catalog.Destination(id); !ok {
		rest.WriteError(w, http.StatusNotFound, fmt.Errorf("destination %q not found", id), "")
		return
	}
	var exclude []string
	if raw := r.URL.Query().Get("exclude"); raw != "" {
		exclude = strings.Split(raw, ",")
	}
	rest.WriteJSON(w, http.StatusOK, PlacesToDTO(h.catalog.Suggestions(id, exclude)))
}

func PlacesToDTO(places []Place) []PlaceDTO {
	dtos := make([]PlaceDTO, 0, len(places))
	for _, p := range places {
		dtos = append(dtos, PlaceDTO{
			Id:            p.Id,
			DestinationId: p.DestinationId,
			Name:          p.Name,
			Category:      string(p.Category),
			Lat:           p.Lat,
			Lng:           p.Lng,
			Description:   p.Description,
			Cost:          p.Cost,
			Image:         p.Image,
			Rating:        p.Rating,
			Address:       p.Address,
		})
	}
	return dtos
}

func DestinationToDTO(d Destination) DestinationDTO {
	return DestinationDTO{
		Id:          d.Id,
		Name:        d.Name,
		Region:      d.Region,
		Country:     d.Country,
		Description: d.Description,
		Image:       d.Image,
	}
}

func ActivitiesToDTO(activities []Activity) []ActivityDTO {
	dtos := make([]ActivityDTO, 0, len(activities))
	for _, a := range activities {
		dtos = append(dtos, ActivityToDTO(a))
	}
	return dtos
}

func ActivityToDTO(a Activity) ActivityDTO {
	dto := ActivityDTO{
		Id:                a.Id,
		Name:              a.Name,
		Theme:             string(a.Theme),
		Duration:          a.Duration,
		DurationMinutes:   a.DurationMinutes,
		Cost:              a.Cost,
		Description:       a.Description,
		Location:          a.Location,
		Image:             a.Image,
		AlternativeReason: a.AlternativeReason,
	}
	for _, alt := range a.Alternatives {
		dto.Alternatives = append(dto.Alternatives, AlternativeDTO{
			Id:              alt.Id,
			Name:            alt.Name,
			Theme:           string(alt.Theme),
			Duration:        alt.Duration,
			DurationMinutes: alt.DurationMinutes,
			Cost:            alt.Cost,
			Description:     alt.Description,
			Location:        alt.Location,
			Image:           alt.Image,
		})
	}
	return dto
}

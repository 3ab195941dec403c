package profile

import (
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/smarttravellers/tripplanner/internal/rest"
	"github.com/smarttravellers/tripplanner/pkg/session"
)

type ProfileDTO struct {
	PlannedTrips         int                      `json:"plannedTrips"`
	BookedTrips          int                      `json:"bookedTrips"`
	TotalSpent           int64                    `json:"totalSpent"`
	UpcomingTrips        []BookedTripDTO          `json:"upcomingTrips"`
	FavoriteDestinations []FavoriteDestinationDTO `json:"favoriteDestinations"`
}

type BookedTripDTO struct {
	BookingId       string `json:"bookingId"`
	Reference       string `json:"reference"`
	PlanId          string `json:"planId"`
	DestinationId   string `json:"destinationId"`
	DestinationName string `json:"destinationName"`
	StartDate       string `json:"startDate"`
	Duration        int    `json:"duration"`
	Amount          int64  `json:"amount"`
}

type FavoriteDestinationDTO struct {
	DestinationId   string `json:"destinationId"`
	DestinationName string `json:"destinationName"`
	Trips           int    `json:"trips"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CurrentProfile godoc
// @Summary Get the travel profile of the current session
// @Tags Profile
// @Produce json
// @Success 200 {object} ProfileDTO
// @Failure 403 {object} rest.ErrorDTO "Session not found"
// @Router /api/profile/current [get]
// @Security XSessionId
func (h *Handler) CurrentProfile(w http.ResponseWriter, r *http.Request) {
	log.Debug("Getting current profile")
	profile, err := h.service.Current(r.Context())
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			rest.WriteError(w, http.StatusForbidden, err, "")
			return
		}
		log.Errorf("failed to get profile: %v", err)
		rest.WriteError(w, http.StatusInternalServerError, errors.New("internal server error"), "")
		return
	}
	rest.WriteJSON(w, http.StatusOK, profileToDTO(profile))
}

func profileToDTO(p Profile) ProfileDTO {
	upcoming := make([]BookedTripDTO, 0, len(p.UpcomingTrips))
	for _, trip := range p.UpcomingTrips {
		upcoming = append(upcoming, BookedTripDTO{
			BookingId:       trip.BookingId,
			Reference:       trip.Reference,
			PlanId:          trip.PlanId,
			DestinationId:   trip.DestinationId,
			DestinationName: trip.DestinationName,
			StartDate:       trip.StartDate.Format(time.DateOnly),
			Duration:        trip.Duration,
			Amount:          trip.Amount,
		})
	}
	favorites := make([]FavoriteDestinationDTO, 0, len(p.FavoriteDestinations))
	for _, f := range p.FavoriteDestinations {
		favorites = append(favorites, FavoriteDestinationDTO{
			DestinationId:   f.DestinationId,
			DestinationName: f.DestinationName,
			Trips:           f.Trips,
		})
	}
	return ProfileDTO{
		PlannedTrips:         p.PlannedTrips,
		BookedTrips:          p.BookedTrips,
		TotalSpent:           p.TotalSpent,
		UpcomingTrips:        upcoming,
		FavoriteDestinations: favorites,
	}
}

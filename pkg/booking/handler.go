package booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/smarttravellers/tripplanner/internal/rest"
	"github.com/smarttravellers/tripplanner/pkg/trip_plan"
)

type BookingRequestDTO struct {
	PlanId      string                    `json:"planId"`
	FullName    string                    `json:"fullName"`
	Email       string                    `json:"email"`
	Phone       string                    `json:"phone"`
	Adjustments []trip_plan.AdjustmentDTO `json:"adjustments,omitempty"`
}

type BookingDTO struct {
	Id               string                     `json:"id"`
	Reference        string                     `json:"reference"`
	PlanId           string                     `json:"planId"`
	FullName         string                     `json:"fullName"`
	Email            string                     `json:"email"`
	Phone            string                     `json:"phone"`
	DestinationId    string                     `json:"destinationId"`
	DestinationName  string                     `json:"destinationName"`
	StartDate        string                     `json:"startDate"`
	Duration         int                        `json:"duration"`
	Amount           int64                      `json:"amount"`
	Costs            trip_plan.CostBreakdownDTO `json:"costs"`
	Adjustments      []trip_plan.AdjustmentDTO  `json:"adjustments"`
	ConfirmationCode string                     `json:"confirmationCode"`
	Status           string                     `json:"status"`
	CreatedAt        time.Time                  `json:"createdAt"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateBooking godoc
// @Summary Book a stored plan
// @Description Charges the plan total, or the adjusted total when adjustments are given
// @Tags Booking
// @Accept json
// @Produce json
// @Param booking body BookingRequestDTO true "Booking request"
// @Success 201 {object} BookingDTO
// @Failure 400 {object} rest.ErrorDTO "Malformed request"
// @Failure 403 {object} rest.ErrorDTO "Session not found"
// @Failure 404 {object} rest.ErrorDTO "Plan not found"
// @Failure 422 {object} rest.ErrorDTO "Invalid contact details or adjustment"
// @Router /api/booking [post]
// @Security XSessionId
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating booking")
	var request BookingRequestDTO
	if err := rest.DecodeJSON(r, &request); err != nil {
		rest.WriteError(w, http.StatusBadRequest, err, "")
		return
	}

	booking, err := h.service.Create(r.Context(), Request{
		PlanId:      request.PlanId,
		FullName:    request.FullName,
		Email:       request.Email,
		Phone:       request.Phone,
		Adjustments: trip_plan.DTOToAdjustments(request.Adjustments),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, BookingToDTO(booking))
}

// ListBookings godoc
// @Summary List the bookings of the current session
// @Tags Booking
// @Produce json
// @Success 200 {array} BookingDTO
// @Failure 403 {object} rest.ErrorDTO "Session not found"
// @Router /api/booking [get]
// @Security XSessionId
func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	log.Debug("Listing bookings")
	bookings, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	dtos := make([]BookingDTO, 0, len(bookings))
	for _, b := range bookings {
		dtos = append(dtos, BookingToDTO(b))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

// GetBooking godoc
// @Summary Get a booking
// @Tags Booking
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} BookingDTO
// @Failure 403 {object} rest.ErrorDTO "Session not found"
// @Failure 404 {object} rest.ErrorDTO "Booking not found"
// @Router /api/booking/{bookingId} [get]
// @Security XSessionId
func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingId := mux.Vars(r)["bookingId"]
	log.Debugf("Getting booking %s", bookingId)
	booking, err := h.service.Get(r.Context(), bookingId)
	if err != nil {
		writeError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, BookingToDTO(booking))
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidBooking):
		rest.WriteError(w, http.StatusUnprocessableEntity, err, "invalid_booking")
	case errors.Is(err, ErrBookingNotFound):
		rest.WriteError(w, http.StatusNotFound, err, "")
	default:
		trip_plan.WriteServiceError(w, err)
	}
}

func BookingToDTO(b Booking) BookingDTO {
	adjustments := make([]trip_plan.AdjustmentDTO, 0, len(b.Adjustments))
	for _, adj := range b.Adjustments {
		adjustments = append(adjustments, trip_plan.AdjustmentDTO{
			Day:           adj.Day,
			Position:      adj.Position,
			Kind:          string(adj.Kind),
			AlternativeId: adj.AlternativeId,
		})
	}
	return BookingDTO{
		Id:               b.Id,
		Reference:        b.Reference,
		PlanId:           b.PlanId,
		FullName:         b.FullName,
		Email:            b.Email,
		Phone:            b.Phone,
		DestinationId:    b.DestinationId,
		DestinationName:  b.DestinationName,
		StartDate:        b.StartDate.Format(time.DateOnly),
		Duration:         b.Duration,
		Amount:           b.Amount,
		Costs:            trip_plan.CostsToDTO(b.Costs),
		Adjustments:      adjustments,
		ConfirmationCode: b.ConfirmationCode,
		Status:           string(b.Status),
		CreatedAt:        b.CreatedAt,
	}
}

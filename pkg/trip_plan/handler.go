package trip_plan

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/smarttravellers/tripplanner/internal/rest"
	"github.com/smarttravellers/tripplanner/pkg/catalog"
	"github.com/smarttravellers/tripplanner/pkg/plan_overlay"
	"github.com/smarttravellers/tripplanner/pkg/planner"
	"github.com/smarttravellers/tripplanner/pkg/session"
)

const dateLayout = time.DateOnly

type TripRequestDTO struct {
	Budget        int64    `json:"budget"`
	Duration      int      `json:"duration"`
	DestinationId string   `json:"destinationId"`
	Themes        []string `json:"themes"`
	Origin        string   `json:"origin,omitempty"`
	// StartDate is formatted as YYYY-MM-DD. Today is used when empty.
	StartDate string `json:"startDate,omitempty"`
}

type TripPlanDTO struct {
	Id              string           `json:"id"`
	DestinationId   string           `json:"destinationId"`
	DestinationName string           `json:"destinationName"`
	Origin          string           `json:"origin,omitempty"`
	StartDate       string           `json:"startDate"`
	Duration        int              `json:"duration"`
	Budget          int64            `json:"budget"`
	Themes          []string         `json:"themes"`
	Days            []DayDTO         `json:"days"`
	Costs           CostBreakdownDTO `json:"costs"`
	Advisories      []string         `json:"advisories"`
	CreatedAt       time.Time        `json:"createdAt"`
}

type DayDTO struct {
	Day        int                   `json:"day"`
	Date       string                `json:"date"`
	Activities []catalog.ActivityDTO `json:"activities"`
	TotalCost  int64                 `json:"totalCost"`
}

type CostBreakdownDTO struct {
	Accommodation       int64 `json:"accommodation"`
	Transport           int64 `json:"transport"`
	Activities          int64 `json:"activities"`
	Food                int64 `json:"food"`
	Total               int64 `json:"total"`
	ActivitiesRequested int64 `json:"activitiesRequested"`
	Overage             int64 `json:"overage"`
}

// AdjustmentDTO targets the activity at Position (0-based) of Day (1-based).
type AdjustmentDTO struct {
	Day           int    `json:"day"`
	Position      int    `json:"position"`
	Kind          string `json:"kind"`
	AlternativeId string `json:"alternativeId,omitempty"`
}

type PreviewRequestDTO struct {
	Adjustments []AdjustmentDTO `json:"adjustments"`
}

type PlanViewDTO struct {
	PlanId  string           `json:"planId"`
	Days    []DayDTO         `json:"days"`
	Costs   CostBreakdownDTO `json:"costs"`
	Applied []AdjustmentDTO  `json:"applied"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GeneratePlan godoc
// @Summary Generate a trip plan
// @Description Select activities for the chosen themes, spread them over the trip and split the budget
// @Tags TripPlan
// @Accept json
// @Produce json
// @Param trip body TripRequestDTO true "Trip input"
// @Success 201 {object} TripPlanDTO
// @Failure 400 {object} rest.ErrorDTO "Malformed request"
// @Failure 403 {object} rest.ErrorDTO "Session not found"
// @Failure 422 {object} rest.ErrorDTO "Invalid trip input"
// @Router /api/trip/plan [post]
// @Security XSessionId
func (h *Handler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	log.Debug("Generating trip plan")
	var request TripRequestDTO
	if err := rest.DecodeJSON(r, &request); err != nil {
		rest.WriteError(w, http.StatusBadRequest, err, "")
		return
	}
	input, err := DTOToInput(request)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, err, "")
		return
	}

	plan, err := h.service.Generate(r.Context(), input)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, PlanToDTO(plan))
}

// ListPlans godoc
// @Summary List the plans of the current session
// @Tags TripPlan
// @Produce json
// @Success 200 {array} TripPlanDTO
// @Failure 403 {object} rest.ErrorDTO "Session not found"
// @Router /api/trip/plan [get]
// @Security XSessionId
func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	log.Debug("Listing trip plans")
	plans, err := h.service.ListPlans(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	dtos := make([]TripPlanDTO, 0, len(plans))
	for _, plan := range plans {
		dtos = append(dtos, PlanToDTO(plan))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

// GetPlan godoc
// @Summary Get a plan
// @Tags TripPlan
// @Produce json
// @Param planId path string true "Plan ID"
// @Success 200 {object} TripPlanDTO
// @Failure 403 {object} rest.ErrorDTO "Session not found"
// @Failure 404 {object} rest.ErrorDTO "Plan not found"
// @Router /api/trip/plan/{planId} [get]
// @Security XSessionId
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	planId := mux.Vars(r)["planId"]
	log.Debugf("Getting trip plan %s", planId)
	plan, err := h.service.GetPlan(r.Context(), planId)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, PlanToDTO(plan))
}

// DeletePlan godoc
// @Summary Delete a plan
// @Tags TripPlan
// @Param planId path string true "Plan ID"
// @Success 204
// @Failure 403 {object} rest.ErrorDTO "Session not found"
// @Failure 404 {object} rest.ErrorDTO "Plan not found"
// @Router /api/trip/plan/{planId} [delete]
// @Security XSessionId
func (h *Handler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	planId := mux.Vars(r)["planId"]
	log.Debugf("Deleting trip plan %s", planId)
	deleted, err := h.service.DeletePlan(r.Context(), planId)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	if !deleted {
		WriteServiceError(w, ErrPlanNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PreviewPlan godoc
// @Summary Preview a plan with skipped or replaced activities
// @Description The stored plan is not changed; totals are recomputed for the adjusted days
// @Tags TripPlan
// @Accept json
// @Produce json
// @Param planId path string true "Plan ID"
// @Param adjustments body PreviewRequestDTO true "Adjustments"
// @Success 200 {object} PlanViewDTO
// @Failure 400 {object} rest.ErrorDTO "Malformed request"
// @Failure 404 {object} rest.ErrorDTO "Plan not found"
// @Failure 422 {object} rest.ErrorDTO "Invalid adjustment"
// @Router /api/trip/plan/{planId}/preview [post]
// @Security XSessionId
func (h *Handler) PreviewPlan(w http.ResponseWriter, r *http.Request) {
	planId := mux.Vars(r)["planId"]
	log.Debugf("Previewing trip plan %s", planId)
	var request PreviewRequestDTO
	if err := rest.DecodeJSON(r, &request); err != nil {
		rest.WriteError(w, http.StatusBadRequest, err, "")
		return
	}

	view, err := h.service.Preview(r.Context(), planId, DTOToAdjustments(request.Adjustments))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, ViewToDTO(view))
}

// WriteServiceError maps errors of the planning services to HTTP responses.
func WriteServiceError(w http.ResponseWriter, err error) {
	if reason, ok := planner.ReasonOf(err); ok {
		rest.WriteError(w, http.StatusUnprocessableEntity, err, string(reason))
		return
	}
	switch {
	case errors.Is(err, session.ErrNoSession):
		rest.WriteError(w, http.StatusForbidden, err, "")
	case errors.Is(err, ErrPlanNotFound):
		rest.WriteError(w, http.StatusNotFound, err, "")
	case errors.Is(err, plan_overlay.ErrInvalidAdjustment):
		rest.WriteError(w, http.StatusUnprocessableEntity, err, "invalid_adjustment")
	default:
		log.Errorf("request failed: %v", err)
		rest.WriteError(w, http.StatusInternalServerError, errors.New("internal server error"), "")
	}
}

func DTOToInput(dto TripRequestDTO) (planner.TripInput, error) {
	input := planner.TripInput{
		Budget:        dto.Budget,
		Duration:      dto.Duration,
		DestinationId: dto.DestinationId,
		Origin:        dto.Origin,
	}
	for _, t := range dto.Themes {
		input.Themes = append(input.Themes, catalog.Theme(t))
	}
	if dto.StartDate != "" {
		startDate, err := time.Parse(dateLayout, dto.StartDate)
		if err != nil {
			return planner.TripInput{}, fmt.Errorf("startDate must be formatted as YYYY-MM-DD: %w", err)
		}
		input.StartDate = startDate
	}
	return input, nil
}

func DTOToAdjustments(dtos []AdjustmentDTO) []plan_overlay.Adjustment {
	adjustments := make([]plan_overlay.Adjustment, 0, len(dtos))
	for _, dto := range dtos {
		adjustments = append(adjustments, plan_overlay.Adjustment{
			Day:           dto.Day,
			Position:      dto.Position,
			Kind:          plan_overlay.Kind(dto.Kind),
			AlternativeId: dto.AlternativeId,
		})
	}
	return adjustments
}

func PlanToDTO(plan planner.TripPlan) TripPlanDTO {
	themes := make([]string, 0, len(plan.Themes))
	for _, t := range plan.Themes {
		themes = append(themes, string(t))
	}
	return TripPlanDTO{
		Id:              plan.Id,
		DestinationId:   plan.DestinationId,
		DestinationName: plan.DestinationName,
		Origin:          plan.Origin,
		StartDate:       plan.StartDate.Format(dateLayout),
		Duration:        plan.Duration,
		Budget:          plan.Budget,
		Themes:          themes,
		Days:            DaysToDTO(plan.Days),
		Costs:           CostsToDTO(plan.Costs),
		Advisories:      plan.Advisories,
		CreatedAt:       plan.CreatedAt,
	}
}

func ViewToDTO(view plan_overlay.View) PlanViewDTO {
	applied := make([]AdjustmentDTO, 0, len(view.Applied))
	for _, adj := range view.Applied {
		applied = append(applied, AdjustmentDTO{
			Day:           adj.Day,
			Position:      adj.Position,
			Kind:          string(adj.Kind),
			AlternativeId: adj.AlternativeId,
		})
	}
	return PlanViewDTO{
		PlanId:  view.PlanId,
		Days:    DaysToDTO(view.Days),
		Costs:   CostsToDTO(view.Costs),
		Applied: applied,
	}
}

func DaysToDTO(days []planner.ItineraryDay) []DayDTO {
	dtos := make([]DayDTO, 0, len(days))
	for _, d := range days {
		dtos = append(dtos, DayDTO{
			Day:        d.Day,
			Date:       d.Date.Format(dateLayout),
			Activities: catalog.ActivitiesToDTO(d.Activities),
			TotalCost:  d.TotalCost(),
		})
	}
	return dtos
}

func CostsToDTO(c planner.CostBreakdown) CostBreakdownDTO {
	return CostBreakdownDTO{
		Accommodation:       c.Accommodation,
		Transport:           c.Transport,
		Activities:          c.Activities,
		Food:                c.Food,
		Total:               c.Total(),
		ActivitiesRequested: c.ActivitiesRequested,
		Overage:             c.Overage(),
	}
}

package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/smarttravellers/tripplanner/internal/rest"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Catalog
	r.HandleFunc("/api/destination", deps.CatalogHandler.ListDestinations).Methods("GET")
	r.HandleFunc("/api/destination/{destinationId}", deps.CatalogHandler.GetDestination).Methods("GET")
	r.HandleFunc("/api/destination/{destinationId}/place", deps.CatalogHandler.ListPlaces).Methods("GET")
	r.HandleFunc("/api/destination/{destinationId}/place/suggestion", deps.CatalogHandler.SuggestPlaces).Methods("GET")
	r.HandleFunc("/api/theme", deps.CatalogHandler.ListThemes).Methods("GET")
	r.HandleFunc("/api/theme/{theme}/activity", deps.CatalogHandler.ListActivities).Methods("GET")

	// Trip plans
	r.HandleFunc("/api/trip/plan", deps.TripPlanHandler.GeneratePlan).Methods("POST")
	r.HandleFunc("/api/trip/plan", deps.TripPlanHandler.ListPlans).Methods("GET")
	r.HandleFunc("/api/trip/plan/{planId}", deps.TripPlanHandler.GetPlan).Methods("GET")
	r.HandleFunc("/api/trip/plan/{planId}", deps.TripPlanHandler.DeletePlan).Methods("DELETE")
	r.HandleFunc("/api/trip/plan/{planId}/preview", deps.TripPlanHandler.PreviewPlan).Methods("POST")

	// Bookings
	r.HandleFunc("/api/booking", deps.BookingHandler.CreateBooking).Methods("POST")
	r.HandleFunc("/api/booking", deps.BookingHandler.ListBookings).Methods("GET")
	r.HandleFunc("/api/booking/{bookingId}", deps.BookingHandler.GetBooking).Methods("GET")

	// Profile
	r.HandleFunc("/api/profile/current", deps.ProfileHandler.CurrentProfile).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		rest.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
}

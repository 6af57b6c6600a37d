// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/footprint/internal/domain/estimator"
)

// EstimateHandler handles the per-category estimate requests.
type EstimateHandler struct {
	deps Dependencies
}

// NewEstimateHandler creates a new estimate handler.
func NewEstimateHandler(deps Dependencies) *EstimateHandler {
	return &EstimateHandler{deps: deps}
}

// Request bodies mirror the OpenAPI schemas for /api/estimate/*. The range
// bounds on the validate tags are the inbound contract: out-of-range values
// are rejected here, before the estimator sees them.

type householdRequest struct {
	Members        int     `json:"members" validate:"required,gte=1,lte=20"`
	ElectricityKWh float64 `json:"electricity_kwh" validate:"gte=0,lte=100000"`
	GasKWh         float64 `json:"gas_kwh" validate:"gte=0,lte=100000"`
	OilLitres      float64 `json:"oil_litres" validate:"gte=0,lte=10000"`
	CoalKg         float64 `json:"coal_kg" validate:"gte=0,lte=10000"`
}

type transportRequest struct {
	BusKm    float64 `json:"bus_km" validate:"gte=0,lte=50000"`
	TrainKm  float64 `json:"train_km" validate:"gte=0,lte=50000"`
	TaxiKm   float64 `json:"taxi_km" validate:"gte=0,lte=50000"`
	FlightKm float64 `json:"flight_km" validate:"gte=0,lte=500000"`
}

type carRequest struct {
	DistanceKm     float64 `json:"distance_km" validate:"gte=0,lte=100000"`
	FuelType       string  `json:"fuel_type" validate:"required,oneof=Petrol Diesel Hybrid Electric"`
	FuelEfficiency float64 `json:"fuel_efficiency_l_per_100km" validate:"gte=0,lte=20"`
}

type foodRequest struct {
	DietType     string `json:"diet_type" validate:"required,oneof='Meat lover' 'Average' 'Vegetarian' 'Vegan'"`
	MealsPerWeek int    `json:"meals_per_week" validate:"required,gte=1,lte=21"`
}

// HandleHousehold handles POST /api/estimate/household requests.
func (h *EstimateHandler) HandleHousehold(w http.ResponseWriter, r *http.Request, sessionID string) {
	const op = "api.estimate_household"
	var req householdRequest
	if !decodeAndValidate(w, r, op, &req) {
		return
	}
	assessment, err := h.deps.EstimateHousehold(r.Context(), sessionID, estimator.HouseholdInput{
		Members:        req.Members,
		ElectricityKWh: req.ElectricityKWh,
		GasKWh:         req.GasKWh,
		OilLitres:      req.OilLitres,
		CoalKg:         req.CoalKg,
	})
	respond(w, assessment, err)
}

// HandleTransport handles POST /api/estimate/transport requests.
func (h *EstimateHandler) HandleTransport(w http.ResponseWriter, r *http.Request, sessionID string) {
	const op = "api.estimate_transport"
	var req transportRequest
	if !decodeAndValidate(w, r, op, &req) {
		return
	}
	assessment, err := h.deps.EstimateTransport(r.Context(), sessionID, estimator.TransportInput{
		BusKm:    req.BusKm,
		TrainKm:  req.TrainKm,
		TaxiKm:   req.TaxiKm,
		FlightKm: req.FlightKm,
	})
	respond(w, assessment, err)
}

// HandleCar handles POST /api/estimate/car requests.
func (h *EstimateHandler) HandleCar(w http.ResponseWriter, r *http.Request, sessionID string) {
	const op = "api.estimate_car"
	var req carRequest
	if !decodeAndValidate(w, r, op, &req) {
		return
	}
	assessment, err := h.deps.EstimateCar(r.Context(), sessionID, estimator.CarInput{
		DistanceKm:     req.DistanceKm,
		FuelType:       estimator.FuelType(req.FuelType),
		FuelEfficiency: req.FuelEfficiency,
	})
	respond(w, assessment, err)
}

// HandleFood handles POST /api/estimate/food requests.
func (h *EstimateHandler) HandleFood(w http.ResponseWriter, r *http.Request, sessionID string) {
	const op = "api.estimate_food"
	var req foodRequest
	if !decodeAndValidate(w, r, op, &req) {
		return
	}
	assessment, err := h.deps.EstimateFood(r.Context(), sessionID, estimator.FoodInput{
		DietType:     estimator.DietType(req.DietType),
		MealsPerWeek: req.MealsPerWeek,
	})
	respond(w, assessment, err)
}

// decodeAndValidate parses the JSON body into req and enforces its validate
// tags. It writes the error response itself and reports whether the handler
// should continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, op string, req any) bool {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrap(op, ErrBadRequest, err))
		return false
	}
	if err := validateStruct(req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrap(op, ErrBadRequest, err))
		return false
	}
	return true
}

// respond translates service results into HTTP responses. Invalid input is
// the caller's fault; everything else is ours.
func respond(w http.ResponseWriter, v any, err error) {
	if err != nil {
		if errors.Is(err, estimator.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_input", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// Package estimator converts validated consumption figures into emission
// estimates, expressed in metric tons of CO2-equivalent per category.
//
// Each estimate function is pure: identical inputs always yield identical
// outputs, and results are rounded to two decimals before they are returned
// so the rounded value is what gets classified and stored.
package estimator

import (
	"fmt"

	"github.com/okian/footprint/internal/domain/model"
)

// Emission factors. These coefficients are the system's domain knowledge
// and must not drift; downstream results are compared against them.
const (
	// Household, metric tons CO2e per unit of consumption.
	electricityTonsPerKWh = 0.000708
	gasTonsPerKWh         = 0.0002
	oilTonsPerLitre       = 0.0027
	coalTonsPerKg         = 0.00288

	// Transport, metric tons CO2e per kilometre travelled.
	busTonsPerKm    = 0.0001
	trainTonsPerKm  = 0.00004
	taxiTonsPerKm   = 0.0001
	flightTonsPerKm = 0.0002

	// Car, kg CO2e per litre of fuel burned (per km for electric).
	petrolKgPerLitre = 2.31
	dieselKgPerLitre = 2.68
	hybridKgPerLitre = 1.50
	electricKgPerKm  = 0.05

	weeksPerYear     = 52
	kgPerMetricTon   = 1000
	litresPerEff     = 100 // fuel efficiency is given in litres per 100 km
	minMealsPerWeek  = 1
	maxMealsPerWeek  = 21
)

// FuelType enumerates the supported car fuel variants.
type FuelType string

// Supported fuel types.
const (
	FuelPetrol   FuelType = "Petrol"
	FuelDiesel   FuelType = "Diesel"
	FuelHybrid   FuelType = "Hybrid"
	FuelElectric FuelType = "Electric"
)

// fuelKgPerLitre maps consumption-based fuel types to their per-litre factor.
// Electric is intentionally absent: it uses a per-km factor instead.
var fuelKgPerLitre = map[FuelType]float64{
	FuelPetrol: petrolKgPerLitre,
	FuelDiesel: dieselKgPerLitre,
	FuelHybrid: hybridKgPerLitre,
}

// ParseFuelType converts a string into a FuelType.
func ParseFuelType(s string) (FuelType, error) {
	f := FuelType(s)
	switch f {
	case FuelPetrol, FuelDiesel, FuelHybrid, FuelElectric:
		return f, nil
	}
	return "", fmt.Errorf("unknown fuel type %q: %w", s, ErrInvalidInput)
}

// DietType enumerates the supported diet variants.
type DietType string

// Supported diet types.
const (
	DietMeatLover  DietType = "Meat lover"
	DietAverage    DietType = "Average"
	DietVegetarian DietType = "Vegetarian"
	DietVegan      DietType = "Vegan"
)

// dietKgPerMeal maps diet types to their per-meal factor in kg CO2e.
var dietKgPerMeal = map[DietType]float64{
	DietMeatLover:  3.5,
	DietAverage:    2.5,
	DietVegetarian: 1.5,
	DietVegan:      1.0,
}

// ParseDietType converts a string into a DietType.
func ParseDietType(s string) (DietType, error) {
	d := DietType(s)
	if _, ok := dietKgPerMeal[d]; !ok {
		return "", fmt.Errorf("unknown diet type %q: %w", s, ErrInvalidInput)
	}
	return d, nil
}

// HouseholdInput carries the consumption figures for a household estimate.
type HouseholdInput struct {
	Members        int
	ElectricityKWh float64
	GasKWh         float64
	OilLitres      float64
	CoalKg         float64
}

// TransportInput carries the distances travelled per public transport mode.
type TransportInput struct {
	BusKm    float64
	TrainKm  float64
	TaxiKm   float64
	FlightKm float64
}

// CarInput carries the driving figures for a car estimate. FuelEfficiency
// is litres per 100 km and is ignored for the Electric variant.
type CarInput struct {
	DistanceKm     float64
	FuelType       FuelType
	FuelEfficiency float64
}

// FoodInput carries the diet figures for an annualized food estimate.
type FoodInput struct {
	DietType     DietType
	MealsPerWeek int
}

// Household estimates the per-capita household footprint in metric tons.
// Members must be at least 1; the division yields a per-person figure.
func Household(in HouseholdInput) (float64, error) {
	if in.Members < 1 {
		return 0, fmt.Errorf("household members must be at least 1, got %d: %w", in.Members, ErrInvalidInput)
	}
	if err := nonNegative("electricity_kwh", in.ElectricityKWh); err != nil {
		return 0, err
	}
	if err := nonNegative("gas_kwh", in.GasKWh); err != nil {
		return 0, err
	}
	if err := nonNegative("oil_litres", in.OilLitres); err != nil {
		return 0, err
	}
	if err := nonNegative("coal_kg", in.CoalKg); err != nil {
		return 0, err
	}

	tons := (in.ElectricityKWh*electricityTonsPerKWh +
		in.GasKWh*gasTonsPerKWh +
		in.OilLitres*oilTonsPerLitre +
		in.CoalKg*coalTonsPerKg) / float64(in.Members)
	return model.Round2(tons), nil
}

// Transport estimates the public-transport footprint in metric tons.
func Transport(in TransportInput) (float64, error) {
	if err := nonNegative("bus_km", in.BusKm); err != nil {
		return 0, err
	}
	if err := nonNegative("train_km", in.TrainKm); err != nil {
		return 0, err
	}
	if err := nonNegative("taxi_km", in.TaxiKm); err != nil {
		return 0, err
	}
	if err := nonNegative("flight_km", in.FlightKm); err != nil {
		return 0, err
	}

	tons := in.BusKm*busTonsPerKm +
		in.TrainKm*trainTonsPerKm +
		in.TaxiKm*taxiTonsPerKm +
		in.FlightKm*flightTonsPerKm
	return model.Round2(tons), nil
}

// Car estimates the driving footprint in metric tons.
//
// The Electric variant applies a per-km grid factor and ignores fuel
// efficiency; all other fuel types derive litres burned from distance and
// efficiency and apply a per-litre factor. The two branches use different
// physical bases on purpose; do not unify them.
func Car(in CarInput) (float64, error) {
	if err := nonNegative("distance_km", in.DistanceKm); err != nil {
		return 0, err
	}
	if err := nonNegative("fuel_efficiency", in.FuelEfficiency); err != nil {
		return 0, err
	}

	if in.FuelType == FuelElectric {
		return model.Round2(in.DistanceKm * electricKgPerKm / kgPerMetricTon), nil
	}
	factor, ok := fuelKgPerLitre[in.FuelType]
	if !ok {
		return 0, fmt.Errorf("unknown fuel type %q: %w", in.FuelType, ErrInvalidInput)
	}
	litres := in.DistanceKm * in.FuelEfficiency / litresPerEff
	return model.Round2(litres * factor / kgPerMetricTon), nil
}

// Food estimates the annualized food footprint in metric tons from a weekly
// meal count.
func Food(in FoodInput) (float64, error) {
	if in.MealsPerWeek < minMealsPerWeek || in.MealsPerWeek > maxMealsPerWeek {
		return 0, fmt.Errorf("meals per week must be within %d..%d, got %d: %w",
			minMealsPerWeek, maxMealsPerWeek, in.MealsPerWeek, ErrInvalidInput)
	}
	factor, ok := dietKgPerMeal[in.DietType]
	if !ok {
		return 0, fmt.Errorf("unknown diet type %q: %w", in.DietType, ErrInvalidInput)
	}

	tons := float64(in.MealsPerWeek) * factor * weeksPerYear / kgPerMetricTon
	return model.Round2(tons), nil
}

// nonNegative rejects negative quantities instead of clamping them.
func nonNegative(field string, v float64) error {
	if v < 0 {
		return fmt.Errorf("%s must not be negative, got %g: %w", field, v, ErrInvalidInput)
	}
	return nil
}
